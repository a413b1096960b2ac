package engine

import "github.com/pkg/errors"

// Sentinel errors, match with errors.Is
var (
	// ErrBorrowConflict reports two borrows of the same storage that cannot coexist
	ErrBorrowConflict = errors.New("borrow conflict")
	// ErrUndeclaredAccess reports a running system touching storage it did not declare
	ErrUndeclaredAccess = errors.New("undeclared storage access")
	// ErrMissingUnique reports a required unique resource that was never added
	ErrMissingUnique = errors.New("missing unique")
	// ErrQueryOpen reports an entity deletion while a query iteration is in progress
	ErrQueryOpen = errors.New("entity deleted during open query")
	// ErrSignatureMismatch reports a bulk spawn whose rows do not share one component set
	ErrSignatureMismatch = errors.New("bulk spawn signature mismatch")
	// ErrUnknownWorkload reports a run of a workload that was never added
	ErrUnknownWorkload = errors.New("unknown workload")
	// ErrDuplicateWorkload reports a second workload registered under an existing name
	ErrDuplicateWorkload = errors.New("duplicate workload")
)
