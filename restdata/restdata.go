// Copyright 2015-2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package restdata defines common data structures shared between the
// restserver and restclient packages.
//
// API Usage
//
// The wire format is the one used by JSONPlaceholder
// (https://jsonplaceholder.typicode.com): plain JSON objects and
// arrays of the records defined in the placeholder package, at fixed
// paths:
//
//     GET    /posts                  list posts (?userId=&_page=&_limit=)
//     POST   /posts                  create a post, returns 201
//     GET    /posts/{id}             one post
//     PUT    /posts/{id}             replace a post
//     DELETE /posts/{id}             delete a post, returns {}
//     GET    /posts/{postId}/comments
//     GET    /users                  list users (?username=&email=&_page=&_limit=)
//     GET    /users/{id}             one user
//
// The path constants in this package are RFC 6570 URI templates,
// relative to the service root.
//
// Errors
//
// Errors from the bundled server are returned as encodings of the
// ErrorResponse type with a failing HTTP status.  The public
// JSONPlaceholder service returns an empty object instead; clients
// must not depend on the body of an error response.
package restdata

// JSONMediaType is the MIME type of every request and response body.
const JSONMediaType = "application/json"

// URI templates for each resource, relative to the service root.
const (
	PostsPath        = "posts"
	PostPath         = "posts/{id}"
	PostCommentsPath = "posts/{postId}/comments"
	UsersPath        = "users"
	UserPath         = "users/{id}"
)

// Resource names, as used in metrics labels and logs.
const (
	PostsResource    = "posts"
	CommentsResource = "comments"
	UsersResource    = "users"
)

// RequestIDHeader names the HTTP header that carries a per-request
// identifier from client to server.
const RequestIDHeader = "X-Request-Id"

// Empty is the body of a successful DELETE response.
type Empty struct{}

// ErrorResponse can be a response to any method, generally accompanied
// by a failing HTTP status code.
type ErrorResponse struct {
	// Error is a short description of the failure.  This may be
	// the name of a placeholder API error, the string "panic", or
	// the string "error" for some other kind of error.
	Error string `json:"error"`

	// Message is a human-readable description of the failure.
	Message string `json:"message"`

	// Value is an extra parameter to the error if applicable,
	// such as the missing record's ID.
	Value int `json:"value,omitempty"`

	// Stack holds a formatted backtrace, if the method failed
	// due to a panic.
	Stack string `json:"stack,omitempty"`
}
