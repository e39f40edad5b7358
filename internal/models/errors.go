package models

import "errors"

var (
	// ErrNonPositiveAmount is returned when a deposit, withdrawal or
	// repayment amount is zero or negative.
	ErrNonPositiveAmount = errors.New("amount must be positive")
	// ErrInsufficientFunds is returned when a withdrawal exceeds the
	// balance of a savings or checking account.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrCreditLimitExceeded is returned when a withdrawal would take a
	// credit account below its credit limit.
	ErrCreditLimitExceeded = errors.New("credit limit exceeded")
	// ErrNegativeCreditLimit is returned when a credit account is
	// constructed with a negative limit.
	ErrNegativeCreditLimit = errors.New("credit limit must not be negative")
	// ErrUnknownAccountType is returned by the account factory for an
	// unrecognized kind discriminator.
	ErrUnknownAccountType = errors.New("unknown account type")
	// ErrUnknownCardType is returned by the card factory for an
	// unrecognized kind discriminator.
	ErrUnknownCardType = errors.New("unknown card type")
	// ErrNoLinkedAccount is returned when a card is constructed without
	// an account to bind to.
	ErrNoLinkedAccount = errors.New("card requires a linked account")
)
