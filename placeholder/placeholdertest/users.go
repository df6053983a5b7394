// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package placeholdertest

import (
	"github.com/diffeo/go-placeholder/placeholder"
)

// TestUserList checks the full user listing.
func (s *Suite) TestUserList() {
	users, err := s.Placeholder.Users().GetList(s.ctx, placeholder.ListUsersParams{})
	if s.NoError(err) && s.Len(users, placeholder.SeedUsers) {
		s.Equal(1, users[0].ID)
		s.Equal("Bret", users[0].Username)
		s.Equal(placeholder.SeedUsers, users[len(users)-1].ID)
	}
}

// TestUserListFilter checks filtering users by username and email.
func (s *Suite) TestUserListFilter() {
	users, err := s.Placeholder.Users().GetList(s.ctx, placeholder.ListUsersParams{Username: "Samantha"})
	if s.NoError(err) && s.Len(users, 1) {
		s.Equal(3, users[0].ID)
	}

	users, err = s.Placeholder.Users().GetList(s.ctx, placeholder.ListUsersParams{Email: "Shanna@melissa.tv"})
	if s.NoError(err) && s.Len(users, 1) {
		s.Equal(2, users[0].ID)
	}

	users, err = s.Placeholder.Users().GetList(s.ctx, placeholder.ListUsersParams{Username: "nobody"})
	if s.NoError(err) {
		s.Empty(users)
	}
}

// TestUserListPaging checks _page and _limit handling for users.
func (s *Suite) TestUserListPaging() {
	users, err := s.Placeholder.Users().GetList(s.ctx, placeholder.ListUsersParams{Page: 3, Limit: 4})
	if s.NoError(err) && s.Len(users, 2) {
		s.Equal(9, users[0].ID)
		s.Equal(10, users[1].ID)
	}
}

// TestUserGetByID fetches a seeded user, including nested records.
func (s *Suite) TestUserGetByID() {
	user, err := s.Placeholder.Users().GetByID(s.ctx, 1)
	if s.NoError(err) {
		s.Equal("Leanne Graham", user.Name)
		s.Equal("Sincere@april.biz", user.Email)
		s.Equal("Gwenborough", user.Address.City)
		s.NotEmpty(user.Address.Geo.Lat)
		s.NotEmpty(user.Company.Name)
	}
}

// TestUserGetMissing checks that fetching an absent user fails with a
// not-found error.
func (s *Suite) TestUserGetMissing() {
	_, err := s.Placeholder.Users().GetByID(s.ctx, 987654)
	s.NotFound(err)
}
