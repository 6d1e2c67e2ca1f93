// Package moneypkg provides an immutable amount of money in a single currency.
package moneypkg

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"

	"github.com/go-petr/pet-ledger/pkg/currencypkg"
	"github.com/go-petr/pet-ledger/pkg/errorspkg"
)

var (
	// ErrCurrencyMismatch indicates an attempt to combine amounts of different currencies.
	ErrCurrencyMismatch = errorspkg.New(errorspkg.PreconditionFailed, "Currencies differ")
	// ErrInvalidAmount indicates malformed amount text.
	ErrInvalidAmount = errorspkg.New(errorspkg.BadRequest, "invalid amount")
)

var amountPattern = regexp.MustCompile(`^[+-]?[0-9]+(\.[0-9]+)?$`)

// Money is an amount in a currency. The zero value is not usable, use Zero or Parse.
type Money struct {
	currency currency.Unit
	amount   decimal.Decimal
}

// Zero returns no money in the given currency.
func Zero(cur currency.Unit) Money {
	return Money{currency: cur, amount: decimal.Zero}
}

// New returns money of the given amount, rejecting amounts finer than the currency allows.
func New(cur currency.Unit, amount decimal.Decimal) (Money, error) {
	if scale := currencypkg.Scale(cur); -amount.Exponent() > scale {
		return Money{}, fmt.Errorf("%w: scale of %s exceeds %s scale %d", ErrInvalidAmount, amount, cur, scale)
	}

	return Money{currency: cur, amount: amount}, nil
}

// Parse parses text of the form "<CODE><amount>", e.g. "USD1", "USD-1" or "USD 0.00".
func Parse(s string) (Money, error) {
	if len(s) < 4 {
		return Money{}, fmt.Errorf("%w: '%s' cannot be parsed", ErrInvalidAmount, s)
	}

	cur, err := currencypkg.Parse(s[:3])
	if err != nil {
		return Money{}, err
	}

	text := strings.TrimLeft(s[3:], " ")
	if !amountPattern.MatchString(text) {
		return Money{}, fmt.Errorf("%w: '%s' cannot be parsed", ErrInvalidAmount, s)
	}

	amount, err := decimal.NewFromString(text)
	if err != nil {
		return Money{}, fmt.Errorf("%w: '%s' cannot be parsed", ErrInvalidAmount, s)
	}

	return New(cur, amount)
}

// MustParse is like Parse but panics on malformed input.
func MustParse(s string) Money {
	m, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return m
}

// Currency returns the currency of m.
func (m Money) Currency() currency.Unit {
	return m.currency
}

// Amount returns the decimal amount of m.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Plus returns m + o. It fails if the currencies differ.
func (m Money) Plus(o Money) (Money, error) {
	if m.currency != o.currency {
		return Money{}, fmt.Errorf("%w: %s/%s", ErrCurrencyMismatch, m.currency, o.currency)
	}

	return Money{currency: m.currency, amount: m.amount.Add(o.amount)}, nil
}

// Negated returns -m.
func (m Money) Negated() Money {
	return Money{currency: m.currency, amount: m.amount.Neg()}
}

// Cmp compares m and o, returning -1, 0 or +1. It fails if the currencies differ.
func (m Money) Cmp(o Money) (int, error) {
	if m.currency != o.currency {
		return 0, fmt.Errorf("%w: %s/%s", ErrCurrencyMismatch, m.currency, o.currency)
	}

	return m.amount.Cmp(o.amount), nil
}

// IsNegative reports whether m is less than zero.
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// IsZero reports whether m is zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// String formats m with the currency's standard decimal places, e.g. "USD 1.00".
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.currency, m.amount.StringFixed(currencypkg.Scale(m.currency)))
}
