package models

import "github.com/shopspring/decimal"

// CheckingAccount is an everyday transaction account. Its funds rule is
// the same as savings: no overdraft.
type CheckingAccount struct {
	baseAccount
}

// NewCheckingAccount creates a checking account with an opening balance.
func NewCheckingAccount(holder, number string, balance decimal.Decimal) *CheckingAccount {
	return &CheckingAccount{baseAccount{number: number, holder: holder, balance: balance}}
}

func (a *CheckingAccount) Type() AccountType { return AccountTypeChecking }

func (a *CheckingAccount) Withdraw(amount decimal.Decimal) error {
	return a.withdrawUpTo(amount, a.balance, ErrInsufficientFunds)
}

func (a *CheckingAccount) Details() AccountDetails {
	return AccountDetails{
		AccountNumber: a.number,
		AccountHolder: a.holder,
		AccountType:   AccountTypeChecking,
		Balance:       a.balance,
	}
}
