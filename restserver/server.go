// Copyright 2015-2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"net/http"

	"github.com/diffeo/go-placeholder/placeholder"
	"github.com/diffeo/go-placeholder/restdata"
	"github.com/gorilla/mux"
)

// NewRouter creates a new HTTP handler that processes all placeholder
// requests.  All resources are under the URL path root, e.g.
// /posts/1.  For more control over this setup, create a mux.Router
// and call PopulateRouter instead.
func NewRouter(p placeholder.Placeholder) http.Handler {
	r := mux.NewRouter()
	PopulateRouter(r, p)
	return r
}

// PopulateRouter adds placeholder routes to an existing
// github.com/gorilla/mux router object.  This can be used, for
// instance, to place the service under a subpath:
//
//     r := mux.NewRouter()
//     s := r.PathPrefix("/api").Subrouter()
//     PopulateRouter(s, memory.New())
func PopulateRouter(r *mux.Router, p placeholder.Placeholder) {
	api := &restAPI{Placeholder: p, Router: r}
	api.PopulateRouter(r)
}

// restAPI holds the persistent state for the REST API.
type restAPI struct {
	Placeholder placeholder.Placeholder
	Router      *mux.Router
}

// PopulateRouter adds all URL paths to a router.
func (api *restAPI) PopulateRouter(r *mux.Router) {
	r.Path("/" + restdata.PostsPath).Name("posts").Handler(&resourceHandler{
		Representation: placeholder.PostInput{},
		Context:        api.Context,
		Get:            api.PostList,
		Post:           api.PostCreate,
	})
	r.Path("/" + restdata.PostPath).Name("post").Handler(&resourceHandler{
		Representation: placeholder.PostInput{},
		Context:        api.Context,
		Get:            api.PostGet,
		Put:            api.PostPut,
		Delete:         api.PostDelete,
	})
	r.Path("/" + restdata.PostCommentsPath).Name("postComments").Handler(&resourceHandler{
		Context: api.Context,
		Get:     api.PostComments,
	})
	r.Path("/" + restdata.UsersPath).Name("users").Handler(&resourceHandler{
		Context: api.Context,
		Get:     api.UserList,
	})
	r.Path("/" + restdata.UserPath).Name("user").Handler(&resourceHandler{
		Context: api.Context,
		Get:     api.UserGet,
	})
}
