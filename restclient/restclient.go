// Copyright 2015-2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package restclient provides a placeholder.Placeholder that talks to a
// JSONPlaceholder-compatible HTTP service, such as the public one at
// https://jsonplaceholder.typicode.com or the bundled server in
// cmd/placeholderd.
//
// All resources share a single HTTP client built from a Config:
//
//     c, err := restclient.New(restclient.DefaultConfig())
//     post, err := c.Posts().GetByID(ctx, 1)
//
// Each call issues exactly one request.  Nothing is cached or retried.
// A non-2xx response is returned as an ErrorHTTP; network failures and
// timeouts are returned as the net/http error.
package restclient

import (
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/diffeo/go-placeholder/placeholder"
	"github.com/diffeo/go-placeholder/restdata"
	"github.com/sirupsen/logrus"
)

// DefaultBaseURL is the public JSONPlaceholder service.
const DefaultBaseURL = "https://jsonplaceholder.typicode.com"

// DefaultTimeout bounds each request, including reading the response
// body.
const DefaultTimeout = 60000 * time.Millisecond

// Config holds the client settings.  It is copied into the Client and
// never changes afterwards.
type Config struct {
	// BaseURL is the service root.  If empty, DefaultBaseURL.
	BaseURL string `mapstructure:"base_url"`

	// Timeout is the per-request timeout.  If zero, DefaultTimeout.
	Timeout time.Duration `mapstructure:"timeout"`
}

// DefaultConfig returns a Config pointing at the public service.
func DefaultConfig() Config {
	return Config{BaseURL: DefaultBaseURL, Timeout: DefaultTimeout}
}

// withDefaults fills in unset fields.
func (c Config) withDefaults() Config {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	return c
}

// Client is a placeholder.Placeholder backed by HTTP.
type Client struct {
	config   Config
	posts    *postAPI
	comments *commentAPI
	users    *userAPI
}

// errNotAbsolute is returned from New if the base URL has no scheme or
// host.
var errNotAbsolute = errors.New("base URL must be absolute")

// New creates a client using the standard logrus logger.
func New(config Config) (*Client, error) {
	return NewWithLogger(config, logrus.StandardLogger())
}

// NewWithLogger creates a client that logs each request at debug level
// to logger.
func NewWithLogger(config Config, logger logrus.FieldLogger) (*Client, error) {
	config = config.withDefaults()
	base, err := url.Parse(config.BaseURL)
	if err != nil {
		return nil, err
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, errNotAbsolute
	}
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}

	httpClient := &http.Client{Timeout: config.Timeout}
	shared := func(name string) resource {
		return resource{
			URL:    base,
			Name:   name,
			HTTP:   httpClient,
			Logger: logger,
		}
	}
	return &Client{
		config:   config,
		posts:    &postAPI{resource: shared(restdata.PostsResource)},
		comments: &commentAPI{resource: shared(restdata.CommentsResource)},
		users:    &userAPI{resource: shared(restdata.UsersResource)},
	}, nil
}

// Config returns the settings the client was built with, after
// defaults were applied.
func (c *Client) Config() Config {
	return c.config
}

// Posts returns the /posts call wrappers.
func (c *Client) Posts() placeholder.PostService {
	return c.posts
}

// Comments returns the comment call wrappers.
func (c *Client) Comments() placeholder.CommentService {
	return c.comments
}

// Users returns the /users call wrappers.
func (c *Client) Users() placeholder.UserService {
	return c.users
}
