// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"github.com/diffeo/go-placeholder/placeholder"
)

// UserList returns users, filtered by ?username= and ?email= and
// paged.
func (api *restAPI) UserList(ctx *requestContext) (interface{}, error) {
	params := placeholder.ListUsersParams{
		Username: ctx.QueryParams.Get("username"),
		Email:    ctx.QueryParams.Get("email"),
	}
	var err error
	params.Page, params.Limit, err = ctx.Paging()
	if err != nil {
		return nil, err
	}
	users, err := api.Placeholder.Users().GetList(ctx.Ctx, params)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []placeholder.User{}
	}
	return users, nil
}

// UserGet returns a single user.
func (api *restAPI) UserGet(ctx *requestContext) (interface{}, error) {
	return api.Placeholder.Users().GetByID(ctx.Ctx, ctx.ID)
}
