// Package models defines the core account and card domain types
package models

import (
	"github.com/shopspring/decimal"
)

// AccountType categorizes accounts by kind
type AccountType string

const (
	AccountTypeSavings  AccountType = "Savings"
	AccountTypeChecking AccountType = "Checking"
	AccountTypeCredit   AccountType = "Credit"
)

// AllAccountTypes returns all valid account types for iteration
func AllAccountTypes() []AccountType {
	return []AccountType{
		AccountTypeSavings,
		AccountTypeChecking,
		AccountTypeCredit,
	}
}

// Account is the capability set every account kind implements.
// The balance is only ever changed through Deposit/Withdraw (and, for
// credit accounts, ApplyInterest/MakeRepayment); a failed operation
// leaves it untouched.
type Account interface {
	// Number returns the unique account number.
	Number() string
	// Holder returns the name of the account holder.
	Holder() string
	// Type returns the kind tag of the account.
	Type() AccountType
	// Balance returns the current balance.
	Balance() decimal.Decimal
	// Deposit adds amount to the balance. Amount must be positive.
	Deposit(amount decimal.Decimal) error
	// Withdraw removes amount from the balance, subject to the
	// kind-specific funds rule.
	Withdraw(amount decimal.Decimal) error
	// Details returns a snapshot of the account's public fields.
	Details() AccountDetails
}

// AccountDetails is a point-in-time snapshot of an account's public
// fields. CreditLimit and InterestRate are set for credit accounts only.
type AccountDetails struct {
	AccountNumber string           `json:"account_number"`
	AccountHolder string           `json:"account_holder"`
	AccountType   AccountType      `json:"account_type"`
	Balance       decimal.Decimal  `json:"balance"`
	CreditLimit   *decimal.Decimal `json:"credit_limit,omitempty"`
	InterestRate  *decimal.Decimal `json:"interest_rate,omitempty"`
}

// baseAccount carries the identity and balance shared by every account
// kind. Variants embed it and supply their own Withdraw rule.
type baseAccount struct {
	number  string
	holder  string
	balance decimal.Decimal
}

func (a *baseAccount) Number() string { return a.number }

func (a *baseAccount) Holder() string { return a.holder }

func (a *baseAccount) Balance() decimal.Decimal { return a.balance }

func (a *baseAccount) Deposit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrNonPositiveAmount
	}
	a.balance = a.balance.Add(amount)
	return nil
}

// withdrawUpTo removes amount from the balance if it does not exceed
// available. Both the positivity and the funds check live here so that
// a rejected withdrawal never partially applies.
func (a *baseAccount) withdrawUpTo(amount, available decimal.Decimal, insufficient error) error {
	if !amount.IsPositive() {
		return ErrNonPositiveAmount
	}
	if amount.GreaterThan(available) {
		return insufficient
	}
	a.balance = a.balance.Sub(amount)
	return nil
}
