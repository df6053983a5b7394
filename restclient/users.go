// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restclient

import (
	"context"

	"github.com/diffeo/go-placeholder/placeholder"
	"github.com/diffeo/go-placeholder/restdata"
)

type userAPI struct {
	resource
}

func (api *userAPI) GetList(ctx context.Context, params placeholder.ListUsersParams) ([]placeholder.User, error) {
	var users []placeholder.User
	err := api.GetFrom(ctx, restdata.UsersPath, nil, params.Query(), &users)
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (api *userAPI) GetByID(ctx context.Context, id int) (placeholder.User, error) {
	var user placeholder.User
	err := api.GetFrom(ctx, restdata.UserPath, idVars("id", id), nil, &user)
	return user, err
}
