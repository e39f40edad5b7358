// Package bank holds the explicitly constructed registry of accounts
// and cards, and runs validated transaction commands against accounts
// reached through an authenticated session. Successful commands are
// appended to an in-memory ledger.
package bank

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/openteller/atmcore/internal/models"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Service is the registry and command surface for one banking scenario.
// It is owned by whichever component bootstraps the scenario and is not
// safe for concurrent use.
type Service struct {
	log      zerolog.Logger
	accounts map[string]models.Account
	cards    map[string]models.Card
	ledger   []TransactionRecord
}

// NewService creates an empty registry.
func NewService(log zerolog.Logger) *Service {
	return &Service{
		log:      log,
		accounts: make(map[string]models.Account),
		cards:    make(map[string]models.Card),
	}
}

// CreateAccount constructs an account of the given kind and registers
// it. An unknown kind or duplicate number is a setup error.
func (s *Service) CreateAccount(kind string, cfg models.AccountConfig) (models.Account, error) {
	if _, exists := s.accounts[cfg.Number]; exists {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateAccount, cfg.Number)
	}
	account, err := models.NewAccount(kind, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}
	s.accounts[account.Number()] = account
	s.log.Info().
		Str("account", account.Number()).
		Str("type", string(account.Type())).
		Str("balance", account.Balance().String()).
		Msg("account created")
	return account, nil
}

// IssueCard constructs a card of the given kind, bound to an already
// registered account, and registers it under its full number.
func (s *Service) IssueCard(kind string, cfg models.CardConfig) (models.Card, error) {
	if _, exists := s.cards[cfg.Number]; exists {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateCard, cfg.Number)
	}
	card, err := models.NewCard(kind, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to issue card: %w", err)
	}
	s.cards[cfg.Number] = card
	s.log.Info().
		Str("card", card.Details().CardNumber).
		Str("type", string(card.Type())).
		Str("account", card.Account().Number()).
		Msg("card issued")
	return card, nil
}

// Account looks up a registered account by number.
func (s *Service) Account(number string) (models.Account, error) {
	account, ok := s.accounts[number]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrAccountNotFound, number)
	}
	return account, nil
}

// Card looks up an issued card by its full number.
func (s *Service) Card(number string) (models.Card, error) {
	card, ok := s.cards[number]
	if !ok {
		return nil, ErrCardNotFound
	}
	return card, nil
}

// Deposit adds amount to the account. A rejected deposit leaves both
// the balance and the ledger untouched.
func (s *Service) Deposit(account models.Account, amount decimal.Decimal) error {
	if err := account.Deposit(amount); err != nil {
		s.logRejected(account, TransactionDeposit, amount, err)
		return err
	}
	s.record(account, TransactionDeposit, amount)
	return nil
}

// Withdraw removes amount from the account, subject to the account
// kind's funds rule.
func (s *Service) Withdraw(account models.Account, amount decimal.Decimal) error {
	if err := account.Withdraw(amount); err != nil {
		s.logRejected(account, TransactionWithdrawal, amount, err)
		return err
	}
	s.record(account, TransactionWithdrawal, amount)
	return nil
}

// ApplyInterest accrues months of interest on a credit account and
// returns the amount applied. Nothing is recorded when no interest
// accrues.
func (s *Service) ApplyInterest(account models.Account, months int) (decimal.Decimal, error) {
	credit, ok := account.(*models.CreditAccount)
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrNotCreditAccount, account.Number())
	}
	interest := credit.ApplyInterest(months)
	if interest.IsPositive() {
		s.record(account, TransactionInterest, interest)
	}
	return interest, nil
}

// Repay pays amount towards a credit account's debt.
func (s *Service) Repay(account models.Account, amount decimal.Decimal) error {
	credit, ok := account.(*models.CreditAccount)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotCreditAccount, account.Number())
	}
	if err := credit.MakeRepayment(amount); err != nil {
		s.logRejected(account, TransactionRepayment, amount, err)
		return err
	}
	s.record(account, TransactionRepayment, amount)
	return nil
}

// History returns a copy of the ledger entries for one account, oldest
// first.
func (s *Service) History(accountNumber string) []TransactionRecord {
	var out []TransactionRecord
	for _, rec := range s.ledger {
		if rec.AccountNumber == accountNumber {
			out = append(out, rec)
		}
	}
	return out
}

func (s *Service) record(account models.Account, txType TransactionType, amount decimal.Decimal) {
	rec := TransactionRecord{
		ID:            uuid.New(),
		AccountNumber: account.Number(),
		Type:          txType,
		Amount:        amount,
		BalanceAfter:  account.Balance(),
		CreatedAt:     time.Now().UTC(),
	}
	s.ledger = append(s.ledger, rec)
	s.log.Info().
		Str("account", rec.AccountNumber).
		Str("type", string(rec.Type)).
		Str("amount", rec.Amount.String()).
		Str("balance", rec.BalanceAfter.String()).
		Msg("transaction applied")
}

func (s *Service) logRejected(account models.Account, txType TransactionType, amount decimal.Decimal, err error) {
	s.log.Warn().
		Str("account", account.Number()).
		Str("type", string(txType)).
		Str("amount", amount.String()).
		Err(err).
		Msg("transaction rejected")
}
