// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package memory

import (
	"context"
	"sort"

	"github.com/diffeo/go-placeholder/placeholder"
)

type postService struct {
	c *memPlaceholder
}

func (s postService) GetList(ctx context.Context, params placeholder.ListPostsParams) ([]placeholder.Post, error) {
	s.c.sem.Lock()
	defer s.c.sem.Unlock()

	result := make([]placeholder.Post, 0, len(s.c.posts))
	for _, post := range s.c.posts {
		if params.UserID != 0 && post.UserID != params.UserID {
			continue
		}
		result = append(result, post)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	start, end := placeholder.Paginate(len(result), params.Page, params.Limit)
	return result[start:end], nil
}

func (s postService) GetByID(ctx context.Context, id int) (placeholder.Post, error) {
	s.c.sem.Lock()
	defer s.c.sem.Unlock()

	post, present := s.c.posts[id]
	if !present {
		return placeholder.Post{}, placeholder.ErrNoSuchPost{ID: id}
	}
	return post, nil
}

func (s postService) Create(ctx context.Context, data placeholder.PostInput) (placeholder.Post, error) {
	s.c.sem.Lock()
	defer s.c.sem.Unlock()

	s.c.lastPostID++
	post := placeholder.Post{
		UserID: data.UserID,
		ID:     s.c.lastPostID,
		Title:  data.Title,
		Body:   data.Body,
	}
	s.c.posts[post.ID] = post
	return post, nil
}

func (s postService) Update(ctx context.Context, id int, data placeholder.PostInput) (placeholder.Post, error) {
	s.c.sem.Lock()
	defer s.c.sem.Unlock()

	if _, present := s.c.posts[id]; !present {
		return placeholder.Post{}, placeholder.ErrNoSuchPost{ID: id}
	}
	post := placeholder.Post{
		UserID: data.UserID,
		ID:     id,
		Title:  data.Title,
		Body:   data.Body,
	}
	s.c.posts[id] = post
	return post, nil
}

func (s postService) Remove(ctx context.Context, id int) error {
	s.c.sem.Lock()
	defer s.c.sem.Unlock()

	if _, present := s.c.posts[id]; !present {
		return placeholder.ErrNoSuchPost{ID: id}
	}
	delete(s.c.posts, id)

	// Comments go with their post
	kept := s.c.comments[:0]
	for _, comment := range s.c.comments {
		if comment.PostID != id {
			kept = append(kept, comment)
		}
	}
	s.c.comments = kept
	return nil
}

type commentService struct {
	c *memPlaceholder
}

func (s commentService) GetByPost(ctx context.Context, postID int) ([]placeholder.Comment, error) {
	s.c.sem.Lock()
	defer s.c.sem.Unlock()

	result := make([]placeholder.Comment, 0)
	for _, comment := range s.c.comments {
		if comment.PostID == postID {
			result = append(result, comment)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}
