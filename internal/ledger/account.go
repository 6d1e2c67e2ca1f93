package ledger

import (
	"sync"

	"golang.org/x/text/currency"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/pkg/moneypkg"
)

// Account is a balance cell identified by its id and currency.
//
// The balance is only changed by update while every participating account is locked.
type Account struct {
	id       string
	currency currency.Unit

	mu      sync.Mutex
	balance moneypkg.Money
}

func newAccount(id string, cur currency.Unit) *Account {
	return &Account{
		id:       id,
		currency: cur,
		balance:  moneypkg.Zero(cur),
	}
}

// ID returns the account id.
func (a *Account) ID() string {
	return a.id
}

// Currency returns the account currency.
func (a *Account) Currency() currency.Unit {
	return a.currency
}

// Balance returns the current balance. It never observes a partially applied update.
func (a *Account) Balance() moneypkg.Money {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.balance
}

// Snapshot returns the read model of the account.
func (a *Account) Snapshot() domain.Account {
	return domain.Account{
		ID:       a.id,
		Currency: a.currency.String(),
		Balance:  a.Balance().String(),
	}
}

// sameAs reports whether both accounts have the same identity.
func (a *Account) sameAs(b *Account) bool {
	return a.id == b.id && a.currency == b.currency
}

// less orders accounts by id, then by currency code.
func (a *Account) less(b *Account) bool {
	if a.id != b.id {
		return a.id < b.id
	}

	return a.currency.String() < b.currency.String()
}

// verify checks that diff can be added to the balance. Caller must hold a.mu.
func (a *Account) verify(diff moneypkg.Money) error {
	next, err := a.balance.Plus(diff)
	if err != nil {
		return err
	}

	if next.IsNegative() {
		return domain.ErrInsufficientBalance
	}

	return nil
}

// execute adds diff to the balance. Caller must hold a.mu and have verified diff.
func (a *Account) execute(diff moneypkg.Money) {
	a.balance, _ = a.balance.Plus(diff)
}
