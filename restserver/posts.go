// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"strconv"

	"github.com/diffeo/go-placeholder/placeholder"
	"github.com/diffeo/go-placeholder/restdata"
)

// PostList returns posts, filtered by ?userId= and paged.
func (api *restAPI) PostList(ctx *requestContext) (interface{}, error) {
	var (
		params placeholder.ListPostsParams
		err    error
	)
	params.UserID, err = ctx.IntParam("userId")
	if err == nil {
		params.Page, params.Limit, err = ctx.Paging()
	}
	if err != nil {
		return nil, err
	}
	posts, err := api.Placeholder.Posts().GetList(ctx.Ctx, params)
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []placeholder.Post{}
	}
	return posts, nil
}

// PostCreate adds a new post.
func (api *restAPI) PostCreate(ctx *requestContext, in interface{}) (interface{}, error) {
	data, valid := in.(placeholder.PostInput)
	if !valid {
		return nil, errUnmarshal
	}
	post, err := api.Placeholder.Posts().Create(ctx.Ctx, data)
	if err != nil {
		return nil, err
	}
	location, err := api.Router.Get("post").URL("id", strconv.Itoa(post.ID))
	if err != nil {
		return nil, err
	}
	return responseCreated{
		Location: location.String(),
		Body:     post,
	}, nil
}

// PostGet returns a single post.
func (api *restAPI) PostGet(ctx *requestContext) (interface{}, error) {
	return api.Placeholder.Posts().GetByID(ctx.Ctx, ctx.ID)
}

// PostPut replaces a single post.
func (api *restAPI) PostPut(ctx *requestContext, in interface{}) (interface{}, error) {
	data, valid := in.(placeholder.PostInput)
	if !valid {
		return nil, errUnmarshal
	}
	return api.Placeholder.Posts().Update(ctx.Ctx, ctx.ID, data)
}

// PostDelete removes a single post.
func (api *restAPI) PostDelete(ctx *requestContext) (interface{}, error) {
	err := api.Placeholder.Posts().Remove(ctx.Ctx, ctx.ID)
	if err != nil {
		return nil, err
	}
	return restdata.Empty{}, nil
}

// PostComments returns the comments on a post.
func (api *restAPI) PostComments(ctx *requestContext) (interface{}, error) {
	comments, err := api.Placeholder.Comments().GetByPost(ctx.Ctx, ctx.ID)
	if err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []placeholder.Comment{}
	}
	return comments, nil
}
