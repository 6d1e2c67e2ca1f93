// Package randompkg provides functionality for generating random ledger items in tests.
package randompkg

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"

	"github.com/go-petr/pet-ledger/pkg/currencypkg"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// Intn is a shortcut for generating a random integer between 0 and max using crypto/rand.
func Intn(max int) int64 {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		panic(err)
	}

	return nBig.Int64()
}

// String generates a random string of length n.
func String(n int) string {
	var sb strings.Builder

	k := len(alphabet)

	for i := 0; i < n; i++ {
		c := alphabet[Intn(k)]

		_ = sb.WriteByte(c) // The returned err is always nil.
	}

	return sb.String()
}

// AccountID generates a random account id.
func AccountID() string {
	return String(8)
}

// OperationID generates a unique operation id.
func OperationID() string {
	return uuid.NewString()
}

// Currency generates a random currency.
func Currency() currency.Unit {
	currencies := []currency.Unit{currencypkg.USD, currencypkg.EUR, currencypkg.GBP}
	return currencies[Intn(len(currencies))]
}

// Amount generates a random amount in minor units between 0 and maxMinor,
// scaled to the currency's decimal places.
func Amount(cur currency.Unit, maxMinor int) decimal.Decimal {
	return decimal.New(Intn(maxMinor+1), -currencypkg.Scale(cur))
}

// MoneyString formats an amount the way operation diffs expect it, e.g. "USD-1.25".
func MoneyString(cur currency.Unit, amount decimal.Decimal) string {
	return fmt.Sprintf("%s%s", cur, amount.StringFixed(currencypkg.Scale(cur)))
}
