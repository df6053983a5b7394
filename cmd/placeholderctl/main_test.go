// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package main

import (
	"bytes"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/diffeo/go-placeholder/memory"
	"github.com/diffeo/go-placeholder/placeholder"
	"github.com/diffeo/go-placeholder/restdata"
	"github.com/diffeo/go-placeholder/restserver"
	"github.com/stretchr/testify/assert"
)

// harness runs placeholderctl against a local server.
type harness struct {
	t      *testing.T
	server *httptest.Server
	clock  *clock.Mock
}

func newHarness(t *testing.T) *harness {
	server := httptest.NewServer(restserver.NewRouter(memory.New()))
	t.Cleanup(server.Close)
	mock := clock.NewMock()
	mock.Set(time.Date(2024, time.January, 5, 12, 0, 0, 0, time.UTC))
	return &harness{t: t, server: server, clock: mock}
}

// Run runs one command line and returns its standard output and
// error.
func (h *harness) Run(args ...string) (string, string, error) {
	var out, errOut bytes.Buffer
	c := &ctl{Out: &out, Err: &errOut}
	app := newApp(c, h.clock)
	argv := append([]string{"placeholderctl", "--base-url", h.server.URL}, args...)
	err := app.Run(argv)
	return out.String(), errOut.String(), err
}

func TestPostsGet(t *testing.T) {
	h := newHarness(t)
	out, _, err := h.Run("posts", "get", "12")
	if assert.NoError(t, err) {
		assert.Contains(t, out, "Post 12 by user 2")
		assert.Contains(t, out, "post 12 by user 2")
	}
}

func TestPostsGetMissing(t *testing.T) {
	h := newHarness(t)
	_, _, err := h.Run("posts", "get", "987654")
	assert.True(t, placeholder.IsNotFound(err))

	_, _, err = h.Run("posts", "get", "twelve")
	assert.Error(t, err)

	_, _, err = h.Run("posts", "get")
	assert.Error(t, err)
}

func TestPostsList(t *testing.T) {
	h := newHarness(t)
	out, _, err := h.Run("posts", "list", "--user", "2", "--page", "2", "--limit", "3")
	if assert.NoError(t, err) {
		assert.Contains(t, out, "TITLE")
		assert.Contains(t, out, "post 14 by user 2")
		assert.Contains(t, out, "post 16 by user 2")
		assert.NotContains(t, out, "post 17 by user 2")
	}
}

func TestPostsCreateToasts(t *testing.T) {
	h := newHarness(t)
	out, errOut, err := h.Run("posts", "create", "--user", "1", "--title", "hello", "--body", "world")
	if assert.NoError(t, err) {
		assert.Contains(t, out, "hello")
		assert.Contains(t, errOut, "[success] Post 101 created on 2024-01-05")
	}
}

func TestPostsUpdate(t *testing.T) {
	h := newHarness(t)
	out, errOut, err := h.Run("posts", "update", "--title", "renamed", "3")
	if assert.NoError(t, err) {
		assert.Contains(t, out, "Post 3 by user 1")
		assert.Contains(t, out, "renamed")
		assert.Contains(t, out, "body of post 3")
		assert.Contains(t, errOut, "[success] Post 3 updated")
	}

	_, _, err = h.Run("posts", "update", "3")
	assert.Equal(t, errNoChanges, err)
}

func TestPostsDelete(t *testing.T) {
	h := newHarness(t)
	_, errOut, err := h.Run("posts", "delete", "4")
	if assert.NoError(t, err) {
		assert.Contains(t, errOut, "[success] Post 4 deleted")
	}
}

func TestCommentsJSON(t *testing.T) {
	h := newHarness(t)
	out, _, err := h.Run("--json", "comments", "7")
	if assert.NoError(t, err) {
		var comments []placeholder.Comment
		err = restdata.Decode(restdata.JSONMediaType, bytes.NewBufferString(out), &comments)
		if assert.NoError(t, err) && assert.Len(t, comments, 5) {
			assert.Equal(t, 31, comments[0].ID)
			assert.Equal(t, 7, comments[0].PostID)
		}
	}
}

func TestUsers(t *testing.T) {
	h := newHarness(t)
	out, _, err := h.Run("users", "list", "--username", "Bret")
	if assert.NoError(t, err) {
		assert.Contains(t, out, "Leanne Graham")
		assert.NotContains(t, out, "Ervin Howell")
	}

	out, _, err = h.Run("users", "get", "2")
	if assert.NoError(t, err) {
		assert.Contains(t, out, "Ervin Howell (Antonette) <Shanna@melissa.tv>")
	}
}

func TestDate(t *testing.T) {
	h := newHarness(t)
	out, _, err := h.Run("date", "2024-03-01T10:00:00Z", "garbage")
	if assert.NoError(t, err) {
		assert.Equal(t, "2024-03-01\nInvalid Date\n", out)
	}

	out, _, err = h.Run("date")
	if assert.NoError(t, err) {
		assert.Equal(t, "2024-01-05\n", out)
	}
}

func TestBadBaseURL(t *testing.T) {
	var out, errOut bytes.Buffer
	app := newApp(&ctl{Out: &out, Err: &errOut}, clock.NewMock())
	err := app.Run([]string{"placeholderctl", "--base-url", "not a url", "users", "get", "1"})
	assert.Error(t, err)
}
