// Package currencypkg provides common currency related functionality for apps.
package currencypkg

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/currency"

	"github.com/go-petr/pet-ledger/pkg/errorspkg"
)

// ErrUnknownCurrency indicates that the code is not an ISO 4217 currency.
var ErrUnknownCurrency = errorspkg.New(errorspkg.BadRequest, "Unknown currency")

// Commonly used currencies.
var (
	USD = currency.USD
	EUR = currency.EUR
	GBP = currency.GBP
	JPY = currency.JPY
)

// Parse returns the currency for an upper-case ISO 4217 code.
func Parse(code string) (currency.Unit, error) {
	if !isUpperAlpha3(code) {
		return currency.Unit{}, fmt.Errorf("%w '%s'", ErrUnknownCurrency, code)
	}

	unit, err := currency.ParseISO(code)
	if err != nil {
		return currency.Unit{}, fmt.Errorf("%w '%s'", ErrUnknownCurrency, code)
	}

	return unit, nil
}

// IsSupportedCurrency returns true if the currency code is known.
func IsSupportedCurrency(code string) bool {
	_, err := Parse(code)
	return err == nil
}

// Scale returns the standard number of decimal places of the currency.
func Scale(unit currency.Unit) int32 {
	scale, _ := currency.Standard.Rounding(unit)
	return int32(scale)
}

// ValidCurrency validates whether the currency is supported.
var ValidCurrency validator.Func = func(fl validator.FieldLevel) bool {
	if c, ok := fl.Field().Interface().(string); ok {
		return IsSupportedCurrency(c)
	}

	return false
}

func isUpperAlpha3(s string) bool {
	if len(s) != 3 {
		return false
	}

	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}

	return true
}
