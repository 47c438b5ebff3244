package content

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrUnknownType rejects content type strings outside the closed set.
	ErrUnknownType = errors.New("unknown content type")

	// ErrNoRemoteSource marks content types that have no remote catalog
	// endpoint wired. The resolver treats it like any other remote failure so
	// the precedence chain stays uniform.
	ErrNoRemoteSource = errors.New("no remote source for content type")

	// ErrStoreUnavailable wraps persistence failures, the only condition a
	// resolution surfaces to its caller.
	ErrStoreUnavailable = errors.New("content store unavailable")
)

// StoreError carries the failed operation alongside the cause.
type StoreError struct {
	Op    string
	Cause error
}

func (e StoreError) Error() string {
	return fmt.Sprintf("content store %s failed: %v", e.Op, e.Cause)
}

func (e StoreError) Unwrap() error {
	return e.Cause
}

func (e StoreError) Is(target error) bool {
	return target == ErrStoreUnavailable
}

func newStoreError(op string, cause error) error {
	return StoreError{Op: op, Cause: cause}
}
