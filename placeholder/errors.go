// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package placeholder

import (
	"errors"
	"fmt"
)

// ErrNoSuchPost is returned by backends that look up a post by ID and
// cannot find it.
type ErrNoSuchPost struct {
	ID int
}

func (err ErrNoSuchPost) Error() string {
	return fmt.Sprintf("No such post %v", err.ID)
}

// NotFound always returns true.
func (err ErrNoSuchPost) NotFound() bool {
	return true
}

// ErrNoSuchUser is returned by backends that look up a user by ID and
// cannot find it.
type ErrNoSuchUser struct {
	ID int
}

func (err ErrNoSuchUser) Error() string {
	return fmt.Sprintf("No such user %v", err.ID)
}

// NotFound always returns true.
func (err ErrNoSuchUser) NotFound() bool {
	return true
}

// notFound is implemented by errors that can describe a missing record,
// including HTTP errors that carry a 404 status.
type notFound interface {
	NotFound() bool
}

// IsNotFound reports whether err (or anything it wraps) describes a
// missing record.  This does not change err; callers that need more
// detail can still inspect its concrete type.
func IsNotFound(err error) bool {
	var nf notFound
	if errors.As(err, &nf) {
		return nf.NotFound()
	}
	return false
}
