// Package domain provides definitions of all entities.
package domain

import "github.com/go-petr/pet-ledger/pkg/errorspkg"

var (
	// ErrAccountIDMissing indicates an empty account id.
	ErrAccountIDMissing = errorspkg.New(errorspkg.BadRequest, "account id is missing")
	// ErrAccountNotFound indicates that the account is not found.
	ErrAccountNotFound = errorspkg.New(errorspkg.NotFound, "account not found")
	// ErrAccountCurrencyConflict indicates that the account exists with another currency.
	ErrAccountCurrencyConflict = errorspkg.New(errorspkg.Conflict, "account already exists with different currency")
	// ErrInsufficientBalance indicates that the change would make the balance negative.
	ErrInsufficientBalance = errorspkg.New(errorspkg.PreconditionFailed, "insufficient balance")
)

// Account holds a snapshot of an account balance.
type Account struct {
	ID       string `json:"id"`
	Currency string `json:"currency"`
	Balance  string `json:"balance"`
}
