package moneypkg

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-petr/pet-ledger/pkg/currencypkg"
	"github.com/go-petr/pet-ledger/pkg/errorspkg"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    string
		wantErr error
		wantMsg string
	}{
		{name: "Integer", input: "USD1", want: "USD 1.00"},
		{name: "Negative", input: "USD-1", want: "USD -1.00"},
		{name: "ExplicitPlus", input: "USD+2.5", want: "USD 2.50"},
		{name: "SpaceBeforeAmount", input: "USD 0.00", want: "USD 0.00"},
		{name: "SeveralSpaces", input: "GBP   12.34", want: "GBP 12.34"},
		{name: "ZeroScaleCurrency", input: "JPY100", want: "JPY 100"},
		{
			name:    "UnknownCurrency",
			input:   "usd1",
			wantErr: currencypkg.ErrUnknownCurrency,
			wantMsg: "Unknown currency 'usd'",
		},
		{
			name:    "TooShort",
			input:   "USD",
			wantErr: ErrInvalidAmount,
			wantMsg: "invalid amount: 'USD' cannot be parsed",
		},
		{
			name:    "Garbage",
			input:   "USD1x",
			wantErr: ErrInvalidAmount,
			wantMsg: "invalid amount: 'USD1x' cannot be parsed",
		},
		{
			name:    "TrailingDot",
			input:   "USD1.",
			wantErr: ErrInvalidAmount,
			wantMsg: "invalid amount: 'USD1.' cannot be parsed",
		},
		{
			name:    "ScaleTooFine",
			input:   "USD1.001",
			wantErr: ErrInvalidAmount,
			wantMsg: "invalid amount: scale of 1.001 exceeds USD scale 2",
		},
		{
			name:    "FractionOfYen",
			input:   "JPY1.5",
			wantErr: ErrInvalidAmount,
			wantMsg: "invalid amount: scale of 1.5 exceeds JPY scale 0",
		},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.input)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				require.EqualError(t, err, tc.wantMsg)
				require.Equal(t, errorspkg.BadRequest, errorspkg.KindOf(err))

				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.want, got.String())
		})
	}
}

func TestPlus(t *testing.T) {
	sum, err := MustParse("USD1").Plus(MustParse("USD 0.50"))
	require.NoError(t, err)
	require.Equal(t, "USD 1.50", sum.String())

	sum, err = Zero(currencypkg.USD).Plus(MustParse("USD-1"))
	require.NoError(t, err)
	require.True(t, sum.IsNegative())

	_, err = Zero(currencypkg.USD).Plus(MustParse("GBP1"))
	require.ErrorIs(t, err, ErrCurrencyMismatch)
	require.EqualError(t, err, "Currencies differ: USD/GBP")
	require.Equal(t, errorspkg.PreconditionFailed, errorspkg.KindOf(err))
}

func TestCmp(t *testing.T) {
	one := MustParse("USD1")

	got, err := one.Cmp(MustParse("USD 1.00"))
	require.NoError(t, err)
	require.Zero(t, got)

	got, err = one.Cmp(one.Negated())
	require.NoError(t, err)
	require.Equal(t, 1, got)

	_, err = one.Cmp(MustParse("EUR1"))
	require.ErrorIs(t, err, ErrCurrencyMismatch)
}

func TestZero(t *testing.T) {
	z := Zero(currencypkg.GBP)

	require.True(t, z.IsZero())
	require.False(t, z.IsNegative())
	require.Equal(t, currencypkg.GBP, z.Currency())
	require.Equal(t, "GBP 0.00", z.String())
}
