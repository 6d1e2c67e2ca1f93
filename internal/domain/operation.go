package domain

import "github.com/go-petr/pet-ledger/pkg/errorspkg"

var (
	// ErrOperationIDMissing indicates an empty operation id.
	ErrOperationIDMissing = errorspkg.New(errorspkg.BadRequest, "operation id is missing")
	// ErrOperationMismatch indicates reuse of an operation id with a different diff.
	ErrOperationMismatch = errorspkg.New(errorspkg.Conflict, "operation mismatch")
)

// Status is the lifecycle state of an operation.
type Status int

// Operation statuses. Succeeded and Failed are terminal.
const (
	NotRun Status = iota
	Succeeded
	Failed
)

func (s Status) String() string {
	switch s {
	case Succeeded:
		return "done"
	case Failed:
		return "failed"
	default:
		return "not started"
	}
}
