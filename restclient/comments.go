// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restclient

import (
	"context"

	"github.com/diffeo/go-placeholder/placeholder"
	"github.com/diffeo/go-placeholder/restdata"
)

type commentAPI struct {
	resource
}

func (api *commentAPI) GetByPost(ctx context.Context, postID int) ([]placeholder.Comment, error) {
	var comments []placeholder.Comment
	err := api.GetFrom(ctx, restdata.PostCommentsPath, idVars("postId", postID), nil, &comments)
	if err != nil {
		return nil, err
	}
	return comments, nil
}
