// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package placeholder defines an abstract API to a JSONPlaceholder-style
// REST service with posts, comments, and users.
//
// Applications generally get an implementation of Placeholder from the
// restclient package, which talks to a real (or fake) HTTP service.  The
// memory and postgres packages provide backends that the restserver
// package can publish over HTTP.
//
// Records are plain values.  Nothing here caches, retries, or validates
// input; an implementation forwards whatever it is given and reports
// whatever its underlying store or transport reports.
package placeholder

import "context"

// Placeholder is the principal interface to the service.  It groups
// the per-resource call wrappers.
type Placeholder interface {
	// Posts returns the call wrappers for the /posts resource.
	Posts() PostService

	// Comments returns the call wrappers for comments nested
	// under posts.
	Comments() CommentService

	// Users returns the call wrappers for the /users resource.
	Users() UserService
}

// PostService holds the operations on posts.
type PostService interface {
	// GetList returns the posts matching params.  Zero-valued
	// fields of params do not filter.
	GetList(ctx context.Context, params ListPostsParams) ([]Post, error)

	// GetByID returns a single post.  If it does not exist, the
	// returned error satisfies IsNotFound.
	GetByID(ctx context.Context, id int) (Post, error)

	// Create adds a new post and returns it, including its newly
	// assigned ID.
	Create(ctx context.Context, data PostInput) (Post, error)

	// Update replaces the post with the given ID and returns the
	// new representation.
	Update(ctx context.Context, id int, data PostInput) (Post, error)

	// Remove deletes a post.
	Remove(ctx context.Context, id int) error
}

// CommentService holds the operations on comments.
type CommentService interface {
	// GetByPost returns all of the comments on a single post.
	GetByPost(ctx context.Context, postID int) ([]Comment, error)
}

// UserService holds the operations on users.
type UserService interface {
	// GetList returns the users matching params.
	GetList(ctx context.Context, params ListUsersParams) ([]User, error)

	// GetByID returns a single user.  If it does not exist, the
	// returned error satisfies IsNotFound.
	GetByID(ctx context.Context, id int) (User, error)
}
