// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package placeholdertest

import (
	"math"

	"github.com/diffeo/go-placeholder/placeholder"
)

// unseededUser is a user ID with no seeded posts.  Posts created by
// tests belong to it so that seeded listings do not change.
const unseededUser = 4242

// TestPostListByUser checks filtering posts by author.
func (s *Suite) TestPostListByUser() {
	posts, err := s.Placeholder.Posts().GetList(s.ctx, placeholder.ListPostsParams{UserID: 1})
	if s.NoError(err) {
		s.Equal([]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, postIDs(posts))
		for _, post := range posts {
			s.Equal(1, post.UserID)
		}
	}
}

// TestPostListAll checks that an unfiltered listing includes every
// seeded post, in ID order.
func (s *Suite) TestPostListAll() {
	posts, err := s.Placeholder.Posts().GetList(s.ctx, placeholder.ListPostsParams{})
	if s.NoError(err) && s.True(len(posts) >= 100) {
		for i := 1; i < len(posts); i++ {
			s.True(posts[i-1].ID < posts[i].ID, "posts out of order at %d", i)
		}
		s.Equal(1, posts[0].ID)
	}
}

// TestPostListPaging checks _page and _limit handling.
func (s *Suite) TestPostListPaging() {
	posts, err := s.Placeholder.Posts().GetList(s.ctx, placeholder.ListPostsParams{
		UserID: 2,
		Page:   2,
		Limit:  3,
	})
	if s.NoError(err) {
		s.Equal([]int{14, 15, 16}, postIDs(posts))
	}

	posts, err = s.Placeholder.Posts().GetList(s.ctx, placeholder.ListPostsParams{
		UserID: 2,
		Page:   5,
		Limit:  3,
	})
	if s.NoError(err) {
		s.Empty(posts)
	}

	// A page number whose offset does not fit in an int is simply
	// past the end.
	posts, err = s.Placeholder.Posts().GetList(s.ctx, placeholder.ListPostsParams{
		Page:  math.MaxInt,
		Limit: 2,
	})
	if s.NoError(err) {
		s.Empty(posts)
	}
}

// TestPostGetByID fetches a seeded post.
func (s *Suite) TestPostGetByID() {
	post, err := s.Placeholder.Posts().GetByID(s.ctx, 12)
	if s.NoError(err) {
		s.Equal(12, post.ID)
		s.Equal(2, post.UserID)
		s.Equal("post 12 by user 2", post.Title)
	}
}

// TestPostGetMissing checks that fetching an absent post fails with a
// not-found error.
func (s *Suite) TestPostGetMissing() {
	_, err := s.Placeholder.Posts().GetByID(s.ctx, 987654)
	s.NotFound(err)
}

// TestPostLifecycle creates, reads, updates, and removes a post.
func (s *Suite) TestPostLifecycle() {
	posts := s.Placeholder.Posts()
	created, err := posts.Create(s.ctx, placeholder.PostInput{
		UserID: unseededUser,
		Title:  "fresh",
		Body:   "new post",
	})
	if !s.NoError(err) {
		return
	}
	s.NotZero(created.ID)
	s.Equal(unseededUser, created.UserID)
	s.Equal("fresh", created.Title)
	s.Equal("new post", created.Body)

	fetched, err := posts.GetByID(s.ctx, created.ID)
	if s.NoError(err) {
		s.Equal(created, fetched)
	}

	updated, err := posts.Update(s.ctx, created.ID, placeholder.PostInput{
		UserID: unseededUser,
		Title:  "revised",
		Body:   "edited post",
	})
	if s.NoError(err) {
		s.Equal(placeholder.Post{
			UserID: unseededUser,
			ID:     created.ID,
			Title:  "revised",
			Body:   "edited post",
		}, updated)
	}

	fetched, err = posts.GetByID(s.ctx, created.ID)
	if s.NoError(err) {
		s.Equal("revised", fetched.Title)
	}

	listed, err := posts.GetList(s.ctx, placeholder.ListPostsParams{UserID: unseededUser})
	if s.NoError(err) {
		s.Contains(postIDs(listed), created.ID)
	}

	err = posts.Remove(s.ctx, created.ID)
	s.NoError(err)

	_, err = posts.GetByID(s.ctx, created.ID)
	s.NotFound(err)

	err = posts.Remove(s.ctx, created.ID)
	s.NotFound(err)
}

// TestPostCreateDistinctIDs checks that two creations get different
// IDs.
func (s *Suite) TestPostCreateDistinctIDs() {
	posts := s.Placeholder.Posts()
	a, err := posts.Create(s.ctx, placeholder.PostInput{UserID: unseededUser, Title: "a"})
	if !s.NoError(err) {
		return
	}
	b, err := posts.Create(s.ctx, placeholder.PostInput{UserID: unseededUser, Title: "b"})
	if s.NoError(err) {
		s.NotEqual(a.ID, b.ID)
		s.NoError(posts.Remove(s.ctx, b.ID))
	}
	s.NoError(posts.Remove(s.ctx, a.ID))
}

// TestPostUpdateMissing checks that updating an absent post fails.
func (s *Suite) TestPostUpdateMissing() {
	_, err := s.Placeholder.Posts().Update(s.ctx, 987654, placeholder.PostInput{Title: "x"})
	s.NotFound(err)
}

// TestCommentsByPost checks the nested comment listing.
func (s *Suite) TestCommentsByPost() {
	comments, err := s.Placeholder.Comments().GetByPost(s.ctx, 7)
	if s.NoError(err) && s.Len(comments, placeholder.SeedCommentsPerPost) {
		for i, comment := range comments {
			s.Equal(7, comment.PostID)
			s.Equal(31+i, comment.ID)
			s.NotEmpty(comment.Email)
		}
	}
}

// TestCommentsByMissingPost checks that an absent post has no
// comments, and that this is not an error.
func (s *Suite) TestCommentsByMissingPost() {
	comments, err := s.Placeholder.Comments().GetByPost(s.ctx, 987654)
	if s.NoError(err) {
		s.Empty(comments)
	}
}
