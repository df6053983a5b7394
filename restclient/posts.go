// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restclient

import (
	"context"
	"strconv"

	"github.com/diffeo/go-placeholder/placeholder"
	"github.com/diffeo/go-placeholder/restdata"
)

type postAPI struct {
	resource
}

// idVars builds the template variables for a path with a single {id}.
func idVars(name string, id int) map[string]interface{} {
	return map[string]interface{}{name: strconv.Itoa(id)}
}

func (api *postAPI) GetList(ctx context.Context, params placeholder.ListPostsParams) ([]placeholder.Post, error) {
	var posts []placeholder.Post
	err := api.GetFrom(ctx, restdata.PostsPath, nil, params.Query(), &posts)
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (api *postAPI) GetByID(ctx context.Context, id int) (placeholder.Post, error) {
	var post placeholder.Post
	err := api.GetFrom(ctx, restdata.PostPath, idVars("id", id), nil, &post)
	return post, err
}

func (api *postAPI) Create(ctx context.Context, data placeholder.PostInput) (placeholder.Post, error) {
	var post placeholder.Post
	err := api.PostTo(ctx, restdata.PostsPath, nil, data, &post)
	return post, err
}

func (api *postAPI) Update(ctx context.Context, id int, data placeholder.PostInput) (placeholder.Post, error) {
	var post placeholder.Post
	err := api.PutTo(ctx, restdata.PostPath, idVars("id", id), data, &post)
	return post, err
}

func (api *postAPI) Remove(ctx context.Context, id int) error {
	return api.DeleteAt(ctx, restdata.PostPath, idVars("id", id))
}
