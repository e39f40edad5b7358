package teller

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/openteller/atmcore/internal/config"
	"github.com/openteller/atmcore/internal/models"
)

// Session is the transient binding between a validated card and its
// linked account for one client interaction.
type Session struct {
	ID        uuid.UUID `json:"id"`
	Token     string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`

	card models.Card
}

func newSession(cfg *config.Config, card models.Card, now time.Time) (*Session, error) {
	token, err := createToken(cfg, card, now)
	if err != nil {
		return nil, err
	}
	return &Session{
		ID:        uuid.New(),
		Token:     token,
		CreatedAt: now,
		ExpiresAt: now.Add(cfg.SessionDuration),
		card:      card,
	}, nil
}

// Card returns the card this session was authenticated with.
func (s *Session) Card() models.Card {
	return s.card
}

// Account returns the account reached through the authenticated card.
func (s *Session) Account() models.Account {
	return s.card.Account()
}

func createToken(cfg *config.Config, card models.Card, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub": card.Details().CardNumber, // masked, never the full number
		"exp": now.Add(cfg.SessionDuration).Unix(),
		"iat": now.Unix(),
		"jti": generateJTI(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.SecretKey))
}

func generateJTI() string {
	b := make([]byte, 16)
	rand.Read(b)
	return base64.URLEncoding.EncodeToString(b)
}

// ValidateToken verifies a session token and returns the masked card
// number it was issued for.
func ValidateToken(cfg *config.Config, tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(cfg.SecretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrSessionExpired
		}
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", ErrInvalidToken
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return "", ErrInvalidToken
	}
	return sub, nil
}
