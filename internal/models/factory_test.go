package models

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestNewAccount(t *testing.T) {
	tests := []struct {
		kind     string
		expected AccountType
	}{
		{"savings", AccountTypeSavings},
		{"checking", AccountTypeChecking},
		{"credit", AccountTypeCredit},
	}

	for _, tt := range tests {
		a, err := NewAccount(tt.kind, AccountConfig{
			Holder:       "Ana Torres",
			Number:       "12345",
			Balance:      decimal.NewFromInt(1000),
			CreditLimit:  decimal.NewFromInt(500),
			InterestRate: decimal.NewFromInt(12),
		})
		if err != nil {
			t.Fatalf("NewAccount(%q): unexpected error %v", tt.kind, err)
		}
		if a.Type() != tt.expected {
			t.Errorf("NewAccount(%q): expected type %s, got %s", tt.kind, tt.expected, a.Type())
		}
		if !a.Balance().Equal(decimal.NewFromInt(1000)) {
			t.Errorf("NewAccount(%q): expected balance 1000, got %s", tt.kind, a.Balance())
		}
	}
}

func TestNewAccount_UnknownKind(t *testing.T) {
	_, err := NewAccount("investment", AccountConfig{Number: "12345"})
	if !errors.Is(err, ErrUnknownAccountType) {
		t.Errorf("Expected ErrUnknownAccountType, got %v", err)
	}
}

func TestNewCard(t *testing.T) {
	account := NewSavingsAccount("Ana Torres", "12345", decimal.NewFromInt(1000))

	tests := []struct {
		kind     string
		expected CardType
	}{
		{"debit", CardTypeDebit},
		{"credit", CardTypeCredit},
	}

	for _, tt := range tests {
		c, err := NewCard(tt.kind, CardConfig{
			Number:  "1234-5678-9012-3456",
			PIN:     "1234",
			Account: account,
		})
		if err != nil {
			t.Fatalf("NewCard(%q): unexpected error %v", tt.kind, err)
		}
		if c.Type() != tt.expected {
			t.Errorf("NewCard(%q): expected type %s, got %s", tt.kind, tt.expected, c.Type())
		}
	}
}

func TestNewCard_UnknownKind(t *testing.T) {
	account := NewSavingsAccount("Ana Torres", "12345", decimal.NewFromInt(1000))
	_, err := NewCard("prepaid", CardConfig{Number: "1111", PIN: "1234", Account: account})
	if !errors.Is(err, ErrUnknownCardType) {
		t.Errorf("Expected ErrUnknownCardType, got %v", err)
	}
}

func TestNewCard_NoAccount(t *testing.T) {
	_, err := NewCard("debit", CardConfig{Number: "1111", PIN: "1234"})
	if !errors.Is(err, ErrNoLinkedAccount) {
		t.Errorf("Expected ErrNoLinkedAccount, got %v", err)
	}
}
