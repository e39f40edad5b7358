package bank

import "errors"

// Service errors
var (
	ErrDuplicateAccount = errors.New("account number already registered")
	ErrDuplicateCard    = errors.New("card number already issued")
	ErrAccountNotFound  = errors.New("account not found")
	ErrCardNotFound     = errors.New("card not found")
	ErrNotCreditAccount = errors.New("operation requires a credit account")
)
