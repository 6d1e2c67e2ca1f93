package ledger

import (
	"sort"

	"github.com/go-petr/pet-ledger/pkg/moneypkg"
)

// update applies every delta or none of them.
//
// Accounts are locked one at a time in a single global order, so updates sharing
// any accounts never wait on each other in a cycle.
func update(deltas map[*Account]moneypkg.Money) error {
	accounts := make([]*Account, 0, len(deltas))
	for a := range deltas {
		accounts = append(accounts, a)
	}

	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].less(accounts[j])
	})

	unlock := lockAll(accounts)
	defer unlock()

	for _, a := range accounts {
		if err := a.verify(deltas[a]); err != nil {
			return err
		}
	}

	for _, a := range accounts {
		a.execute(deltas[a])
	}

	return nil
}

// lockAll locks the sorted accounts in order and returns a func that releases them in reverse.
func lockAll(accounts []*Account) func() {
	held := make([]*Account, 0, len(accounts))

	for _, a := range accounts {
		a.mu.Lock()
		held = append(held, a)
	}

	return func() {
		for i := len(held) - 1; i >= 0; i-- {
			held[i].mu.Unlock()
		}
	}
}
