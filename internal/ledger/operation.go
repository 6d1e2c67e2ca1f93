package ledger

import (
	"fmt"
	"maps"
	"sort"
	"sync"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/pkg/errorspkg"
	"github.com/go-petr/pet-ledger/pkg/moneypkg"
)

// Operation is a named change of several account balances that runs at most once.
type Operation struct {
	id   string
	diff map[string]string

	mu   sync.Mutex
	done bool
	err  error
}

func newOperation(id string, diff map[string]string) *Operation {
	return &Operation{
		id:   id,
		diff: maps.Clone(diff),
	}
}

// ID returns the operation id.
func (o *Operation) ID() string {
	return o.id
}

// Diff returns a copy of the requested balance changes keyed by account id.
func (o *Operation) Diff() map[string]string {
	return maps.Clone(o.diff)
}

// Status returns the operation state and, for a failed operation, its error.
func (o *Operation) Status() (domain.Status, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	switch {
	case !o.done:
		return domain.NotRun, nil
	case o.err != nil:
		return domain.Failed, o.err
	default:
		return domain.Succeeded, nil
	}
}

// matches reports whether diff is the same request as the one o was created with.
func (o *Operation) matches(diff map[string]string) bool {
	return maps.Equal(o.diff, diff)
}

// apply runs the operation on its first call and records the outcome.
// Later calls return the recorded outcome without touching any account.
func (o *Operation) apply(resolve func(id string) (*Account, error)) (err error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.done {
		return o.err
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: operation %s panicked: %v", errorspkg.ErrInternal, o.id, r)
		}

		o.done, o.err = true, err
	}()

	return o.run(resolve)
}

func (o *Operation) run(resolve func(id string) (*Account, error)) error {
	ids := make([]string, 0, len(o.diff))
	for id := range o.diff {
		ids = append(ids, id)
	}

	sort.Strings(ids)

	deltas := make(map[*Account]moneypkg.Money, len(ids))

	for _, id := range ids {
		account, err := resolve(id)
		if err != nil {
			return err
		}

		delta, err := moneypkg.Parse(o.diff[id])
		if err != nil {
			return err
		}

		if prev, ok := deltas[account]; ok {
			if delta, err = prev.Plus(delta); err != nil {
				return err
			}
		}

		deltas[account] = delta
	}

	return update(deltas)
}

func (o *Operation) String() string {
	o.mu.Lock()
	defer o.mu.Unlock()

	status := domain.NotRun.String()

	if o.done {
		status = domain.Succeeded.String()
		if o.err != nil {
			status = o.err.Error()
		}
	}

	return fmt.Sprintf("operation(id=%s, status=%s, diff=%v)", o.id, status, o.diff)
}
