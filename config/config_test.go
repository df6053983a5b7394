// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()
	assert.Equal(t, "https://jsonplaceholder.typicode.com", c.API.BaseURL)
	assert.Equal(t, 60*time.Second, c.API.Timeout)
	assert.Equal(t, 3*time.Second, c.Alert.Delay)
	assert.Equal(t, ":5980", c.Server.Listen)
	assert.Equal(t, "memory", c.Server.Backend)
	assert.False(t, c.Server.LogRequests)
}

func TestReadOverrides(t *testing.T) {
	c, err := Read(strings.NewReader(`
api:
  base_url: http://localhost:5980
  timeout: 10s
alert:
  delay: 1500ms
server:
  listen: 127.0.0.1:8080
  log_requests: true
`))
	if assert.NoError(t, err) {
		assert.Equal(t, "http://localhost:5980", c.API.BaseURL)
		assert.Equal(t, 10*time.Second, c.API.Timeout)
		assert.Equal(t, 1500*time.Millisecond, c.Alert.Delay)
		assert.Equal(t, "127.0.0.1:8080", c.Server.Listen)
		assert.True(t, c.Server.LogRequests)
		// Unmentioned keys keep their defaults.
		assert.Equal(t, "memory", c.Server.Backend)
	}
}

func TestReadEmpty(t *testing.T) {
	c, err := Read(strings.NewReader(""))
	if assert.NoError(t, err) {
		assert.Equal(t, Default(), c)
	}
}

func TestReadUnknownKey(t *testing.T) {
	_, err := Read(strings.NewReader("api:\n  base_uri: http://localhost\n"))
	assert.Error(t, err)
}

func TestReadBadDuration(t *testing.T) {
	_, err := Read(strings.NewReader("alert:\n  delay: soon\n"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	c, err := Load("")
	if assert.NoError(t, err) {
		assert.Equal(t, Default(), c)
	}

	dir, err := ioutil.TempDir("", "config")
	require.NoError(t, err)
	defer os.RemoveAll(dir)
	filename := filepath.Join(dir, "placeholder.yaml")
	require.NoError(t, ioutil.WriteFile(filename, []byte("server:\n  backend: postgres:dbname=test\n"), 0644))

	c, err = Load(filename)
	if assert.NoError(t, err) {
		assert.Equal(t, "postgres:dbname=test", c.Server.Backend)
	}

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
