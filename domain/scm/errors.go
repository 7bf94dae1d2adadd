package scm

import (
	"errors"
	"fmt"
)

// Branch-level sync statuses. Both are reported rather than fatal: the
// repository synchronizer records them and moves on to the next branch.
var (
	// ErrNoRevisions indicates the VCS reported an empty revision range for
	// a branch that has never been imported.
	ErrNoRevisions = errors.New("no revisions to sync")

	// ErrUpToDate indicates the effective start revision exceeds the
	// VCS-reported end: everything is already imported.
	ErrUpToDate = errors.New("up to date")
)

// ErrIdentityConflict marks a unique-constraint violation during
// lookup-or-create. It is recovered internally by a single re-lookup and
// never surfaces to callers of the identity resolver.
var ErrIdentityConflict = errors.New("identity already created")

// AccessError indicates the VCS adapter could not reach or authorize
// against the remote repository. Fatal for the branch being processed.
type AccessError struct {
	URL string
	Err error
}

// Error implements the error interface.
func (e *AccessError) Error() string {
	return fmt.Sprintf("scm access %s: %v", e.URL, e.Err)
}

// Unwrap returns the underlying cause.
func (e *AccessError) Unwrap() error { return e.Err }

// NewAccessError wraps a connectivity or authorization failure.
func NewAccessError(url string, err error) *AccessError {
	return &AccessError{URL: url, Err: err}
}
