package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// AccountConfig carries the named fields the account factory needs.
// CreditLimit and InterestRate are only read for credit accounts.
type AccountConfig struct {
	Holder       string
	Number       string
	Balance      decimal.Decimal
	CreditLimit  decimal.Decimal
	InterestRate decimal.Decimal
}

// NewAccount constructs an account of the given kind: "savings",
// "checking" or "credit". An unrecognized kind is a configuration
// error and aborts setup.
func NewAccount(kind string, cfg AccountConfig) (Account, error) {
	switch kind {
	case "savings":
		return NewSavingsAccount(cfg.Holder, cfg.Number, cfg.Balance), nil
	case "checking":
		return NewCheckingAccount(cfg.Holder, cfg.Number, cfg.Balance), nil
	case "credit":
		return NewCreditAccount(cfg.Holder, cfg.Number, cfg.CreditLimit, cfg.InterestRate, cfg.Balance)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAccountType, kind)
	}
}

// CardConfig carries the named fields the card factory needs.
type CardConfig struct {
	Number  string
	PIN     string
	Account Account
}

// NewCard constructs a card of the given kind: "debit" or "credit".
// The card must be bound to an account at creation.
func NewCard(kind string, cfg CardConfig) (Card, error) {
	if cfg.Account == nil {
		return nil, ErrNoLinkedAccount
	}
	switch kind {
	case "debit":
		return NewDebitCard(cfg.Number, cfg.PIN, cfg.Account), nil
	case "credit":
		return NewCreditCard(cfg.Number, cfg.PIN, cfg.Account), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCardType, kind)
	}
}
