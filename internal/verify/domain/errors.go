package domain

import (
	"errors"
	"fmt"
)

// NotFoundError indicates the remote host has no object at the given
// location: a missing file at a ref, or a commit the repository does not
// contain.
type NotFoundError struct {
	What string // file path or commit SHA
	Ref  string // branch or ref, empty for commit lookups
}

// NewNotFoundError creates a NotFoundError for the given object and ref.
func NewNotFoundError(what, ref string) *NotFoundError {
	return &NotFoundError{What: what, Ref: ref}
}

func (e *NotFoundError) Error() string {
	if e.Ref == "" {
		return fmt.Sprintf("%s not found", e.What)
	}
	return fmt.Sprintf("%s not found at %s", e.What, e.Ref)
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
