// Copyright 2015-2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package placeholdertest provides generic functional tests for the
// Placeholder interface.  The backend under test must start out
// holding placeholder.DefaultSeed().  A typical backend test module
// wraps Suite to create its backend:
//
//     package mybackend
//
//     import (
//             "testing"
//             "github.com/diffeo/go-placeholder/placeholder/placeholdertest"
//             "github.com/stretchr/testify/suite"
//     )
//
//     // Suite is the per-backend generic test suite.
//     type Suite struct{
//             placeholdertest.Suite
//     }
//
//     // SetupSuite does global setup for the test suite.
//     func (s *Suite) SetupSuite() {
//             s.Suite.SetupSuite()
//             s.Placeholder = New()
//     }
//
//     // TestPlaceholder runs the Placeholder generic tests.
//     func TestPlaceholder(t *testing.T) {
//             suite.Run(t, &Suite{})
//     }
//
// Tests that create records only remove what they created, so the
// seeded records stay intact for the whole run.
package placeholdertest

import (
	"context"

	"github.com/diffeo/go-placeholder/placeholder"
	"github.com/stretchr/testify/suite"
)

// Suite is the generic Placeholder backend test suite.
type Suite struct {
	suite.Suite

	// Placeholder contains the top-level interface to the backend
	// under test.  It is set by importing packages.
	Placeholder placeholder.Placeholder

	// ctx is passed to every call.
	ctx context.Context
}

// SetupSuite does one-time initialization for the test suite.
func (s *Suite) SetupSuite() {
	s.ctx = context.Background()
}

// NotFound asserts that err describes a missing record.
func (s *Suite) NotFound(err error) bool {
	if s.Error(err) {
		return s.True(placeholder.IsNotFound(err), "%+v is not a not-found error", err)
	}
	return false
}

// postIDs extracts the IDs from a list of posts.
func postIDs(posts []placeholder.Post) []int {
	ids := make([]int, len(posts))
	for i, post := range posts {
		ids[i] = post.ID
	}
	return ids
}
