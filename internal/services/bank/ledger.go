package bank

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType categorizes ledger entries
type TransactionType string

const (
	TransactionDeposit    TransactionType = "deposit"
	TransactionWithdrawal TransactionType = "withdrawal"
	TransactionInterest   TransactionType = "interest"
	TransactionRepayment  TransactionType = "repayment"
)

// TransactionRecord is one successfully applied balance mutation.
// Rejected operations are never recorded.
type TransactionRecord struct {
	ID            uuid.UUID       `json:"id"`
	AccountNumber string          `json:"account_number"`
	Type          TransactionType `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	BalanceAfter  decimal.Decimal `json:"balance_after"`
	CreatedAt     time.Time       `json:"created_at"`
}
