// Copyright 2015-2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/diffeo/go-placeholder/placeholder"
	"github.com/diffeo/go-placeholder/restdata"
	"github.com/gorilla/mux"
)

// errUnmarshal is returned if the put/post contract is violated and
// a handler function is passed the wrong type.
var errUnmarshal = restdata.ErrBadRequest{
	Err: errors.New("Invalid input format"),
}

// requestContext holds all of the information and objects that can be
// extracted from URL parameters.
type requestContext struct {
	// Ctx is the request's context, passed on to the backend.
	Ctx context.Context

	// ID is the {id} or {postId} path parameter, if the route has
	// one.
	ID int

	QueryParams url.Values
}

func (api *restAPI) Context(req *http.Request) (ctx *requestContext, err error) {
	ctx = &requestContext{
		Ctx:         req.Context(),
		QueryParams: req.URL.Query(),
	}
	vars := mux.Vars(req)
	for _, name := range []string{"id", "postId"} {
		value, present := vars[name]
		if !present {
			continue
		}
		ctx.ID, err = strconv.Atoi(value)
		if err != nil {
			// The public service treats these as missing
			// records rather than bad requests
			err = restdata.ErrNotFound{Err: fmt.Errorf("No such record %q", value)}
		}
		break
	}
	return
}

// IntParam looks at ctx.QueryParams for a parameter named name.  If it
// is absent, returns 0.  If it is present but not an integer, returns
// a bad-request error.
func (ctx *requestContext) IntParam(name string) (int, error) {
	value := ctx.QueryParams.Get(name)
	if value == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, restdata.ErrBadRequest{Err: fmt.Errorf("Invalid %s %q", name, value)}
	}
	return n, nil
}

// Paging extracts the _page and _limit query parameters.
func (ctx *requestContext) Paging() (page, limit int, err error) {
	page, err = ctx.IntParam(placeholder.PageParam)
	if err == nil {
		limit, err = ctx.IntParam(placeholder.LimitParam)
	}
	return
}
