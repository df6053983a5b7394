// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package memory

import (
	"context"
	"sort"

	"github.com/diffeo/go-placeholder/placeholder"
)

type userService struct {
	c *memPlaceholder
}

func (s userService) GetList(ctx context.Context, params placeholder.ListUsersParams) ([]placeholder.User, error) {
	s.c.sem.Lock()
	defer s.c.sem.Unlock()

	result := make([]placeholder.User, 0, len(s.c.users))
	for _, user := range s.c.users {
		if params.Username != "" && user.Username != params.Username {
			continue
		}
		if params.Email != "" && user.Email != params.Email {
			continue
		}
		result = append(result, user)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	start, end := placeholder.Paginate(len(result), params.Page, params.Limit)
	return result[start:end], nil
}

func (s userService) GetByID(ctx context.Context, id int) (placeholder.User, error) {
	s.c.sem.Lock()
	defer s.c.sem.Unlock()

	user, present := s.c.users[id]
	if !present {
		return placeholder.User{}, placeholder.ErrNoSuchUser{ID: id}
	}
	return user, nil
}
