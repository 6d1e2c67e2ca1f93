// Package errorspkg provides common app errors.
package errorspkg

import "errors"

// Kind classifies an error by who caused it and how a caller should react.
type Kind int

// Error kinds known to the app. The zero value is Internal.
const (
	Internal Kind = iota
	BadRequest
	NotFound
	Conflict
	PreconditionFailed
)

var kindNames = map[Kind]string{
	Internal:           "internal",
	BadRequest:         "bad request",
	NotFound:           "not found",
	Conflict:           "conflict",
	PreconditionFailed: "precondition failed",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}

	return "unknown"
}

// Error is a sentinel error carrying its Kind.
//
// Sentinels are compared by identity, so wrap them with fmt.Errorf("%w: ...")
// to add context and keep errors.Is working.
type Error struct {
	Kind Kind
	msg  string
}

// New returns a new sentinel error of the given kind.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, msg: msg}
}

func (e *Error) Error() string {
	return e.msg
}

// ErrInternal indicates internal server error.
var ErrInternal = New(Internal, "internal")

// KindOf returns the kind of the first kinded error in err's chain.
// Errors without a kind are Internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}

	return Internal
}
