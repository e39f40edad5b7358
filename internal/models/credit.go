package models

import "github.com/shopspring/decimal"

// CreditAccount is a revolving credit account. Debt is represented as a
// negative balance; withdrawals may draw the balance down to
// -creditLimit but no further. The limit and interest rate are fixed at
// creation.
type CreditAccount struct {
	baseAccount
	creditLimit  decimal.Decimal
	interestRate decimal.Decimal // annual percentage, e.g. 12 for 12%
}

// NewCreditAccount creates a credit account. The credit limit must not
// be negative.
func NewCreditAccount(holder, number string, creditLimit, interestRate, balance decimal.Decimal) (*CreditAccount, error) {
	if creditLimit.IsNegative() {
		return nil, ErrNegativeCreditLimit
	}
	return &CreditAccount{
		baseAccount:  baseAccount{number: number, holder: holder, balance: balance},
		creditLimit:  creditLimit,
		interestRate: interestRate,
	}, nil
}

func (a *CreditAccount) Type() AccountType { return AccountTypeCredit }

// CreditLimit returns the fixed credit limit.
func (a *CreditAccount) CreditLimit() decimal.Decimal { return a.creditLimit }

// InterestRate returns the fixed annual interest rate in percent.
func (a *CreditAccount) InterestRate() decimal.Decimal { return a.interestRate }

func (a *CreditAccount) Withdraw(amount decimal.Decimal) error {
	return a.withdrawUpTo(amount, a.balance.Add(a.creditLimit), ErrCreditLimitExceeded)
}

// CalculateInterest returns the interest accrued on a positive balance
// over the given number of months. A drawn-down (negative) balance
// accrues nothing under this rule.
func (a *CreditAccount) CalculateInterest(months int) decimal.Decimal {
	if !a.balance.IsPositive() {
		return decimal.Zero
	}
	monthlyRate := a.interestRate.Div(decimal.NewFromInt(12)).Div(decimal.NewFromInt(100))
	return a.balance.Mul(monthlyRate).Mul(decimal.NewFromInt(int64(months)))
}

// ApplyInterest adds the calculated interest to the balance and returns
// the amount applied. When no interest accrues the balance is left
// untouched and zero is returned.
func (a *CreditAccount) ApplyInterest(months int) decimal.Decimal {
	interest := a.CalculateInterest(months)
	if interest.IsPositive() {
		a.balance = a.balance.Add(interest)
	}
	return interest
}

// MakeRepayment pays amount towards the account, reducing debt (or
// raising a positive balance further). Amount must be positive.
func (a *CreditAccount) MakeRepayment(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrNonPositiveAmount
	}
	a.balance = a.balance.Add(amount)
	return nil
}

// WithinCreditLimit reports whether a withdrawal of amount would stay
// within the available balance plus credit limit.
func (a *CreditAccount) WithinCreditLimit(amount decimal.Decimal) bool {
	return amount.LessThanOrEqual(a.balance.Add(a.creditLimit))
}

func (a *CreditAccount) Details() AccountDetails {
	limit := a.creditLimit
	rate := a.interestRate
	return AccountDetails{
		AccountNumber: a.number,
		AccountHolder: a.holder,
		AccountType:   AccountTypeCredit,
		Balance:       a.balance,
		CreditLimit:   &limit,
		InterestRate:  &rate,
	}
}
