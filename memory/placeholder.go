// Copyright 2015-2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package memory provides an in-process, in-memory implementation of
// placeholder.Placeholder.  There is no persistence.  The entire data
// set is behind a single global lock.
//
// This is mostly intended as a simple reference implementation that
// can be used for testing, including in-process testing of the REST
// client through the restserver package.
package memory

import (
	"sync"

	"github.com/diffeo/go-placeholder/placeholder"
)

// New creates a new Placeholder that operates purely in memory,
// populated with placeholder.DefaultSeed().
func New() placeholder.Placeholder {
	return NewWithSeed(placeholder.DefaultSeed())
}

// NewWithSeed creates a new in-memory Placeholder with explicit
// initial content.  The seed is copied.
func NewWithSeed(seed placeholder.Seed) placeholder.Placeholder {
	c := &memPlaceholder{
		users: make(map[int]placeholder.User),
		posts: make(map[int]placeholder.Post),
	}
	for _, user := range seed.Users {
		c.users[user.ID] = user
	}
	for _, post := range seed.Posts {
		c.posts[post.ID] = post
		if post.ID > c.lastPostID {
			c.lastPostID = post.ID
		}
	}
	c.comments = append(c.comments, seed.Comments...)
	return c
}

type memPlaceholder struct {
	sem        sync.Mutex
	users      map[int]placeholder.User
	posts      map[int]placeholder.Post
	comments   []placeholder.Comment
	lastPostID int
}

func (c *memPlaceholder) Posts() placeholder.PostService {
	return postService{c}
}

func (c *memPlaceholder) Comments() placeholder.CommentService {
	return commentService{c}
}

func (c *memPlaceholder) Users() placeholder.UserService {
	return userService{c}
}
