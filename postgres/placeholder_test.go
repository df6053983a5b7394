// Copyright 2015-2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package postgres_test

import (
	"os"
	"testing"

	"github.com/diffeo/go-placeholder/placeholder/placeholdertest"
	"github.com/diffeo/go-placeholder/postgres"
	"github.com/stretchr/testify/suite"
)

// Suite runs the generic tests against a PostgreSQL backend.
//
// This creates the backend using an empty string as the connection
// string.  This means that, when you run "go test", you must set
// environment variables as described in
// http://www.postgresql.org/docs/current/static/libpq-envars.html
type Suite struct {
	placeholdertest.Suite
}

// SetupSuite connects to the database.
func (s *Suite) SetupSuite() {
	s.Suite.SetupSuite()
	p, err := postgres.New("")
	s.Require().NoError(err)
	s.Placeholder = p
}

// TestPlaceholder runs the Placeholder generic tests.
func TestPlaceholder(t *testing.T) {
	if os.Getenv("PGHOST") == "" {
		t.Skip("PGHOST not set")
	}
	suite.Run(t, &Suite{})
}
