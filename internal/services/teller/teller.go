// Package teller provides the PIN authentication and lockout policy for
// a single card. It layers stateful attempt tracking over the card's
// stateless PIN comparator, so the policy can change without touching
// card or account code.
package teller

import (
	"errors"
	"fmt"
	"time"

	"github.com/openteller/atmcore/internal/config"
	"github.com/openteller/atmcore/internal/models"
)

var (
	ErrInvalidPIN     = errors.New("incorrect PIN")
	ErrNotAwaitingPIN = errors.New("no PIN entry in progress")
	ErrInvalidToken   = errors.New("invalid token")
	ErrSessionExpired = errors.New("session expired")
)

// LockedOutError reports that authentication is temporarily refused,
// regardless of PIN correctness, and how long the caller must wait.
type LockedOutError struct {
	Remaining time.Duration
}

func (e *LockedOutError) Error() string {
	return fmt.Sprintf("card temporarily locked, retry in %s", e.Remaining.Round(time.Second))
}

// State identifies where an authentication flow currently is
type State string

const (
	StateAwaitingPIN   State = "awaiting_pin"
	StateLockedOut     State = "locked_out"
	StateAuthenticated State = "authenticated"
	StateEnded         State = "ended"
)

// Authenticator runs the authentication flow for one inserted card.
// Lockout expiry is observed by wall-clock comparison on the next
// submission; there is no background timer.
type Authenticator struct {
	cfg         *config.Config
	card        models.Card
	state       State
	attempts    int
	lockedUntil time.Time
	session     *Session

	now func() time.Time // overridable in tests
}

// New starts an authentication flow for card, awaiting the first PIN.
func New(cfg *config.Config, card models.Card) *Authenticator {
	return &Authenticator{
		cfg:   cfg,
		card:  card,
		state: StateAwaitingPIN,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// State returns the current state of the flow.
func (a *Authenticator) State() State {
	return a.state
}

// AttemptsRemaining returns how many failed submissions remain before a
// lockout is imposed.
func (a *Authenticator) AttemptsRemaining() int {
	if a.state != StateAwaitingPIN {
		return 0
	}
	return a.cfg.MaxPINAttempts - a.attempts
}

// LockoutRemaining returns how long the current lockout still lasts, or
// zero when the card is not locked.
func (a *Authenticator) LockoutRemaining() time.Duration {
	if a.state != StateLockedOut {
		return 0
	}
	remaining := a.lockedUntil.Sub(a.now())
	if remaining < 0 {
		return 0
	}
	return remaining
}

// SubmitPIN submits one PIN candidate. On a match it returns the
// authenticated session. A mismatch counts towards the lockout
// threshold; once reached, submissions are refused for the lockout
// duration without being compared.
func (a *Authenticator) SubmitPIN(pin string) (*Session, error) {
	switch a.state {
	case StateAuthenticated, StateEnded:
		return nil, ErrNotAwaitingPIN
	case StateLockedOut:
		if remaining := a.lockedUntil.Sub(a.now()); remaining > 0 {
			return nil, &LockedOutError{Remaining: remaining}
		}
		// Cooldown elapsed. The attempt counter was already reset when
		// the lockout was imposed, so a fresh full run of failures is
		// needed to trigger another one.
		a.state = StateAwaitingPIN
	}

	if !a.card.ValidatePIN(pin) {
		a.attempts++
		if a.attempts >= a.cfg.MaxPINAttempts {
			a.state = StateLockedOut
			a.lockedUntil = a.now().Add(a.cfg.LockoutDuration)
			a.attempts = 0
			return nil, &LockedOutError{Remaining: a.cfg.LockoutDuration}
		}
		return nil, fmt.Errorf("%w: %d attempts remaining", ErrInvalidPIN, a.cfg.MaxPINAttempts-a.attempts)
	}

	a.attempts = 0
	a.state = StateAuthenticated

	session, err := newSession(a.cfg, a.card, a.now())
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	a.session = session
	return session, nil
}

// Session returns the authenticated session, or nil before
// authentication succeeds or after End.
func (a *Authenticator) Session() *Session {
	return a.session
}

// End terminates the flow and discards any session. Further
// submissions are rejected.
func (a *Authenticator) End() {
	a.state = StateEnded
	a.session = nil
}
