// Package ledger keeps accounts and applies operations to them in memory.
//
// An operation changes the balances of any number of accounts atomically and is
// identified by a caller supplied id: repeating the same request is a no-op that
// reports the first outcome, reusing the id for a different request is a conflict.
// No balance ever becomes negative and currencies are never mixed.
package ledger

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/text/currency"

	"github.com/go-petr/pet-ledger/internal/domain"
)

// Ledger holds all accounts and operations. It is safe for concurrent use.
type Ledger struct {
	accounts   table[*Account]
	operations table[*Operation]
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{}
}

// CreateAccount creates an account with zero balance.
//
// Creating an existing account again succeeds if the currency is the same and
// leaves its balance untouched.
func (l *Ledger) CreateAccount(ctx context.Context, id string, cur currency.Unit) error {
	if id == "" {
		return domain.ErrAccountIDMissing
	}

	account := newAccount(id, cur)

	actual, loaded := l.accounts.getOrInsert(id, account)
	if loaded && !actual.sameAs(account) {
		zerolog.Ctx(ctx).Info().
			Str("account_id", id).
			Str("currency", cur.String()).
			Str("existing_currency", actual.currency.String()).
			Msg("account currency conflict")

		return domain.ErrAccountCurrencyConflict
	}

	if !loaded {
		zerolog.Ctx(ctx).Debug().Str("account_id", id).Str("currency", cur.String()).Msg("account created")
	}

	return nil
}

// Account returns the account with the given id.
func (l *Ledger) Account(id string) (*Account, error) {
	account, ok := l.accounts.get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrAccountNotFound, id)
	}

	return account, nil
}

// GetAccount returns a snapshot of the account with the given id.
func (l *Ledger) GetAccount(ctx context.Context, id string) (domain.Account, error) {
	account, err := l.Account(id)
	if err != nil {
		zerolog.Ctx(ctx).Debug().Err(err).Send()
		return domain.Account{}, err
	}

	return account.Snapshot(), nil
}

// Operation returns the operation with the given id, if it was ever requested.
func (l *Ledger) Operation(id string) (*Operation, bool) {
	return l.operations.get(id)
}

// Apply applies the operation id, changing each account in diff by its amount.
//
// The first request for an id creates the operation and runs it; repeated requests
// with an identical diff return the recorded outcome. A failed operation stays
// failed, even if the cause has since gone away.
func (l *Ledger) Apply(ctx context.Context, id string, diff map[string]string) error {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("operation_id", id).Interface("diff", diff).Msg("about to execute")

	if id == "" {
		return domain.ErrOperationIDMissing
	}

	op, loaded := l.operations.getOrInsert(id, newOperation(id, diff))
	if loaded && !op.matches(diff) {
		return domain.ErrOperationMismatch
	}

	logger.Info().Stringer("operation", op).Msg("executing")

	return op.apply(l.Account)
}

// Stats returns the number of accounts and operations held.
func (l *Ledger) Stats() (accounts, operations int) {
	return l.accounts.len(), l.operations.len()
}
