package errorspkg

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	errNotFound := New(NotFound, "thing not found")

	testCases := []struct {
		name string
		err  error
		want Kind
	}{
		{name: "Sentinel", err: errNotFound, want: NotFound},
		{name: "Wrapped", err: fmt.Errorf("%w: 42", errNotFound), want: NotFound},
		{name: "DoubleWrapped", err: fmt.Errorf("lookup: %w", fmt.Errorf("%w: 42", errNotFound)), want: NotFound},
		{name: "Plain", err: errors.New("boom"), want: Internal},
		{name: "Nil", err: nil, want: Internal},
		{name: "ErrInternal", err: ErrInternal, want: Internal},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, KindOf(tc.err))
		})
	}
}

func TestWrappedMessage(t *testing.T) {
	errMismatch := New(PreconditionFailed, "Currencies differ")
	err := fmt.Errorf("%w: %s/%s", errMismatch, "USD", "GBP")

	require.EqualError(t, err, "Currencies differ: USD/GBP")
	require.ErrorIs(t, err, errMismatch)
	require.Equal(t, "precondition failed", KindOf(err).String())
}
