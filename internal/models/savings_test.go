package models

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestNewSavingsAccount(t *testing.T) {
	a := NewSavingsAccount("Ana Torres", "12345", decimal.NewFromInt(1000))

	if a.Number() != "12345" {
		t.Errorf("Expected account number 12345, got %s", a.Number())
	}
	if a.Holder() != "Ana Torres" {
		t.Errorf("Expected holder Ana Torres, got %s", a.Holder())
	}
	if a.Type() != AccountTypeSavings {
		t.Errorf("Expected type Savings, got %s", a.Type())
	}
	if !a.Balance().Equal(decimal.NewFromInt(1000)) {
		t.Errorf("Expected balance 1000, got %s", a.Balance())
	}
}

func TestSavingsAccount_Deposit(t *testing.T) {
	tests := []struct {
		name    string
		amount  decimal.Decimal
		wantErr error
		balance decimal.Decimal
	}{
		{"positive amount", decimal.NewFromInt(250), nil, decimal.NewFromInt(1250)},
		{"zero amount", decimal.Zero, ErrNonPositiveAmount, decimal.NewFromInt(1000)},
		{"negative amount", decimal.NewFromInt(-10), ErrNonPositiveAmount, decimal.NewFromInt(1000)},
	}

	for _, tt := range tests {
		a := NewSavingsAccount("Ana Torres", "12345", decimal.NewFromInt(1000))
		err := a.Deposit(tt.amount)
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("%s: expected error %v, got %v", tt.name, tt.wantErr, err)
		}
		if !a.Balance().Equal(tt.balance) {
			t.Errorf("%s: expected balance %s, got %s", tt.name, tt.balance, a.Balance())
		}
	}
}

func TestSavingsAccount_Withdraw(t *testing.T) {
	tests := []struct {
		name    string
		amount  decimal.Decimal
		wantErr error
		balance decimal.Decimal
	}{
		{"within balance", decimal.NewFromInt(200), nil, decimal.NewFromInt(800)},
		{"entire balance", decimal.NewFromInt(1000), nil, decimal.Zero},
		{"over balance", decimal.NewFromInt(1001), ErrInsufficientFunds, decimal.NewFromInt(1000)},
		{"zero amount", decimal.Zero, ErrNonPositiveAmount, decimal.NewFromInt(1000)},
		{"negative amount", decimal.NewFromInt(-50), ErrNonPositiveAmount, decimal.NewFromInt(1000)},
	}

	for _, tt := range tests {
		a := NewSavingsAccount("Ana Torres", "12345", decimal.NewFromInt(1000))
		err := a.Withdraw(tt.amount)
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("%s: expected error %v, got %v", tt.name, tt.wantErr, err)
		}
		if !a.Balance().Equal(tt.balance) {
			t.Errorf("%s: expected balance %s, got %s", tt.name, tt.balance, a.Balance())
		}
	}
}

func TestSavingsAccount_WithdrawSequence(t *testing.T) {
	a := NewSavingsAccount("Ana Torres", "12345", decimal.NewFromInt(1000))

	if err := a.Withdraw(decimal.NewFromInt(200)); err != nil {
		t.Fatalf("Expected first withdrawal to succeed, got %v", err)
	}
	if !a.Balance().Equal(decimal.NewFromInt(800)) {
		t.Errorf("Expected balance 800, got %s", a.Balance())
	}

	if err := a.Withdraw(decimal.NewFromInt(900)); !errors.Is(err, ErrInsufficientFunds) {
		t.Errorf("Expected ErrInsufficientFunds, got %v", err)
	}
	if !a.Balance().Equal(decimal.NewFromInt(800)) {
		t.Errorf("Expected balance to stay 800, got %s", a.Balance())
	}
}

func TestSavingsAccount_Details(t *testing.T) {
	a := NewSavingsAccount("Ana Torres", "12345", decimal.NewFromInt(1000))
	d := a.Details()

	if d.AccountNumber != "12345" {
		t.Errorf("Expected account number 12345, got %s", d.AccountNumber)
	}
	if d.AccountType != AccountTypeSavings {
		t.Errorf("Expected account type Savings, got %s", d.AccountType)
	}
	if !d.Balance.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("Expected balance 1000, got %s", d.Balance)
	}
	if d.CreditLimit != nil || d.InterestRate != nil {
		t.Error("Expected no credit fields on a savings snapshot")
	}
}
