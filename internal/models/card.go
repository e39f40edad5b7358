package models

import "strings"

// CardType categorizes cards by kind. The kind is a presentation and
// identity attribute; it says nothing about the linked account's kind.
type CardType string

const (
	CardTypeDebit  CardType = "debit"
	CardTypeCredit CardType = "credit"
)

// Card binds a card number and PIN to exactly one account. Cards are
// immutable after creation; ValidatePIN is a pure query.
type Card interface {
	// Type returns the kind tag of the card.
	Type() CardType
	// ValidatePIN reports whether candidate matches the card's PIN. It
	// performs no attempt tracking; that policy lives in the teller
	// engine.
	ValidatePIN(candidate string) bool
	// Account returns the account the card is linked to.
	Account() Account
	// Details returns a snapshot exposing only the last 4 digits of the
	// card number.
	Details() CardDetails
}

// CardDetails is the public snapshot of a card. The full card number is
// never exposed outside the card itself.
type CardDetails struct {
	CardNumber string   `json:"card_number"` // last 4 digits only
	CardType   CardType `json:"card_type"`
}

type baseCard struct {
	number  string
	pin     string
	account Account
}

func (c *baseCard) ValidatePIN(candidate string) bool {
	return c.pin == candidate
}

func (c *baseCard) Account() Account { return c.account }

// maskedNumber returns the last 4 digits of the card number, ignoring
// separators like "1234-5678-9012-3456".
func (c *baseCard) maskedNumber() string {
	var digits strings.Builder
	for _, r := range c.number {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	s := digits.String()
	if len(s) <= 4 {
		return s
	}
	return s[len(s)-4:]
}

// DebitCard operates directly on the linked account's balance.
type DebitCard struct {
	baseCard
}

// NewDebitCard creates a debit card bound to account.
func NewDebitCard(number, pin string, account Account) *DebitCard {
	return &DebitCard{baseCard{number: number, pin: pin, account: account}}
}

func (c *DebitCard) Type() CardType { return CardTypeDebit }

func (c *DebitCard) Details() CardDetails {
	return CardDetails{CardNumber: c.maskedNumber(), CardType: CardTypeDebit}
}

// CreditCard is identified as a credit card but operates on its linked
// account exactly like a debit card. A revolving balance of its own is
// future work.
type CreditCard struct {
	baseCard
}

// NewCreditCard creates a credit card bound to account.
func NewCreditCard(number, pin string, account Account) *CreditCard {
	return &CreditCard{baseCard{number: number, pin: pin, account: account}}
}

func (c *CreditCard) Type() CardType { return CardTypeCredit }

func (c *CreditCard) Details() CardDetails {
	return CardDetails{CardNumber: c.maskedNumber(), CardType: CardTypeCredit}
}
