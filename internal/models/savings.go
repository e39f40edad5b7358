package models

import "github.com/shopspring/decimal"

// SavingsAccount is a plain deposit account. Withdrawals may never take
// the balance negative.
type SavingsAccount struct {
	baseAccount
}

// NewSavingsAccount creates a savings account with an opening balance.
func NewSavingsAccount(holder, number string, balance decimal.Decimal) *SavingsAccount {
	return &SavingsAccount{baseAccount{number: number, holder: holder, balance: balance}}
}

func (a *SavingsAccount) Type() AccountType { return AccountTypeSavings }

func (a *SavingsAccount) Withdraw(amount decimal.Decimal) error {
	return a.withdrawUpTo(amount, a.balance, ErrInsufficientFunds)
}

func (a *SavingsAccount) Details() AccountDetails {
	return AccountDetails{
		AccountNumber: a.number,
		AccountHolder: a.holder,
		AccountType:   AccountTypeSavings,
		Balance:       a.balance,
	}
}
