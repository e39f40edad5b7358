// ATM core - line-mode teller demo
// Entry point for the interactive demo driver
package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/openteller/atmcore/internal/config"
	"github.com/openteller/atmcore/internal/logger"
	"github.com/openteller/atmcore/internal/models"
	"github.com/openteller/atmcore/internal/services/bank"
	"github.com/openteller/atmcore/internal/services/teller"
	"github.com/shopspring/decimal"
)

func main() {
	// Load environment variables from .env if present
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.New()

	svc := bank.NewService(log)
	card, err := seedDemoData(svc)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to seed demo data")
	}

	in := bufio.NewScanner(os.Stdin)

	fmt.Println("Welcome to the ATM. Please insert your card.")
	details := card.Details()
	fmt.Printf("Card ending in %s inserted (%s card).\n", details.CardNumber, details.CardType)

	auth := teller.New(cfg, card)
	session := authenticate(auth, in)
	if session == nil {
		return
	}
	defer auth.End()

	account := session.Account()
	fmt.Printf("Current balance: %s\n", account.Balance())

	fmt.Print("Enter amount to withdraw: ")
	if !in.Scan() {
		return
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(in.Text()))
	if err != nil {
		fmt.Println("Invalid amount.")
		return
	}

	if err := svc.Withdraw(account, amount); err != nil {
		fmt.Printf("Withdrawal rejected: %v\n", err)
		return
	}
	fmt.Printf("Withdrew %s. New balance: %s\n", amount, account.Balance())
}

// authenticate runs the PIN prompt loop until the card authenticates or
// stdin closes. Lockout expiry is observed by re-polling the engine.
func authenticate(auth *teller.Authenticator, in *bufio.Scanner) *teller.Session {
	for {
		if remaining := auth.LockoutRemaining(); remaining > 0 {
			fmt.Printf("Card temporarily locked. Try again in %s...\n", remaining.Round(time.Second))
			time.Sleep(time.Second)
			continue
		}

		fmt.Print("Enter your PIN: ")
		if !in.Scan() {
			return nil
		}

		session, err := auth.SubmitPIN(strings.TrimSpace(in.Text()))
		if err == nil {
			fmt.Println("PIN accepted.")
			return session
		}

		var locked *teller.LockedOutError
		switch {
		case errors.As(err, &locked):
			fmt.Printf("Too many failed attempts. Card locked for %s.\n", locked.Remaining.Round(time.Second))
		case errors.Is(err, teller.ErrInvalidPIN):
			fmt.Printf("Incorrect PIN. Attempts remaining: %d\n", auth.AttemptsRemaining())
		default:
			fmt.Printf("Authentication error: %v\n", err)
			return nil
		}
	}
}

// seedDemoData sets up the bank-side state the demo operates on: one
// savings account and a debit card linked to it.
func seedDemoData(svc *bank.Service) (models.Card, error) {
	account, err := svc.CreateAccount("savings", models.AccountConfig{
		Holder:  "Ana Torres",
		Number:  "12345",
		Balance: decimal.NewFromInt(1000),
	})
	if err != nil {
		return nil, err
	}
	return svc.IssueCard("debit", models.CardConfig{
		Number:  "1234-5678-9012-3456",
		PIN:     "1234",
		Account: account,
	})
}
