// Copyright 2015-2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

// This file contains a REST skeleton framework.
//
// The bulk of this is dealing with HTTP content type negotiation, and
// providing a standard way to deal with input and output values.

import (
	"errors"
	"fmt"
	"mime"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/diffeo/go-placeholder/restdata"
)

// errBadAccept is returned from negotiateResponse() if the Accept:
// header is malformed (and no more specific error applies).
var errBadAccept = restdata.ErrBadRequest{Err: errors.New("Invalid Accept: header")}

// errNotAcceptable is returned from negotiateResponse() if the Accept:
// header does not mention any media types we can actually return.
type errNotAcceptable struct{}

func (e errNotAcceptable) Error() string {
	return "No acceptable representation for response"
}

func (e errNotAcceptable) HTTPStatus() int {
	return http.StatusNotAcceptable
}

// errMethodNotAllowed is used within the resourceHandler implementation
// to flag an error if a particular HTTP method is not allowed.  This
// corresponds exactly to the 405 Method Not Allowed HTTP status code.
type errMethodNotAllowed struct {
	Method string
}

func (e errMethodNotAllowed) Error() string {
	return fmt.Sprintf("Method %v not allowed", e.Method)
}

func (e errMethodNotAllowed) HTTPStatus() int {
	return http.StatusMethodNotAllowed
}

// responseCreated is returned as a value response from handler
// functions that want to indicate that a new resource was created.
type responseCreated struct {
	// Location holds the canonical URL to the newly created resource.
	Location string

	// Body contains the object sent in the body of the response.
	Body interface{}
}

type resourceHandler struct {
	// Representation is the type of the request body for PUT and
	// POST.  A decoded value of the same type is passed to the
	// handler functions.
	Representation interface{}

	// Context reads an HTTP request and produces a context object.
	Context func(req *http.Request) (*requestContext, error)

	// Get, if non-nil, returns a representation of the object.
	Get func(*requestContext) (interface{}, error)

	// Put, if non-nil, replaces the object.  The interface
	// parameter is guaranteed to be the same type as
	// Representation.
	Put func(*requestContext, interface{}) (interface{}, error)

	// Post, if non-nil, creates something.  The interface
	// parameter is guaranteed to be the same type as
	// Representation.  The return can be any useful return
	// value, including responseCreated.
	Post func(*requestContext, interface{}) (interface{}, error)

	// Delete, if non-nil, deletes the object.
	Delete func(*requestContext) (interface{}, error)
}

func (h *resourceHandler) ServeHTTP(resp http.ResponseWriter, req *http.Request) {
	var (
		ctx          *requestContext
		in, out      interface{}
		err          error
		status       int
		responseType string
	)

	// Recover from panics by sending an HTTP error.
	defer func() {
		if recovered := recover(); recovered != nil {
			response := restdata.ErrorResponse{}
			response.FromPanic(recovered)
			resp.Header().Set("Content-Type", restdata.JSONMediaType)
			resp.WriteHeader(http.StatusInternalServerError)
			_ = restdata.EncodeTo(resp, response)
		}
	}()

	// Start by trying to come up with a response type, even before
	// trying to parse the input.
	responseType, err = negotiateResponse(req)

	// Get bits from URL parameters
	if err == nil {
		ctx, err = h.Context(req)
	}

	// Read the JSON body, if it's there
	if err == nil && h.Representation != nil && (req.Method == http.MethodPut || req.Method == http.MethodPost) {
		ptr := reflect.New(reflect.TypeOf(h.Representation))
		contentType := req.Header.Get("Content-Type")
		err = restdata.Decode(contentType, req.Body, ptr.Interface())
		if err == nil {
			in = ptr.Elem().Interface()
		} else if _, isStatus := err.(restdata.ErrorStatus); !isStatus {
			err = restdata.ErrBadRequest{Err: err}
		}
	}

	// Actually call the handler method
	if err == nil {
		// We will return this if the method is unexpected or
		// we don't have a handler for it
		err = errMethodNotAllowed{Method: req.Method}
		switch req.Method {
		case http.MethodGet, http.MethodHead:
			if h.Get != nil {
				out, err = h.Get(ctx)
			}
		case http.MethodPut:
			if h.Put != nil {
				out, err = h.Put(ctx, in)
			}
		case http.MethodPost:
			if h.Post != nil {
				out, err = h.Post(ctx, in)
			}
		case http.MethodDelete:
			if h.Delete != nil {
				out, err = h.Delete(ctx)
			}
		}
	}

	// Fix up the final result based on what we know.
	if err != nil {
		status = restdata.StatusOf(err)
		errResp := restdata.ErrorResponse{}
		errResp.FromError(err)
		out = errResp
	} else if out == nil {
		status = http.StatusNoContent
	} else if created, isCreated := out.(responseCreated); isCreated {
		status = http.StatusCreated
		if created.Location != "" {
			resp.Header().Set("Location", created.Location)
		}
		out = created.Body
	} else {
		status = http.StatusOK
	}
	if req.Method == http.MethodHead {
		out = nil
	}

	// Actually send the response.  If the writer fails we have
	// already sent a status line, so there is nothing better to do
	// than drop the error.
	if out != nil {
		resp.Header().Set("Content-Type", responseType+"; charset=utf-8")
	}
	resp.WriteHeader(status)
	if out != nil {
		_ = restdata.EncodeTo(resp, out)
	}
}

// negotiateResponse returns a supported MIME type for the response
// body, following the path laid out in RFC 7231 section 5.3.  If this
// fails it still returns a usable type for the error response.
func negotiateResponse(req *http.Request) (string, error) {
	accept := req.Header.Get("Accept")
	if accept == "" {
		accept = "*/*"
	}
	bestType := ""
	bestQ := 0.0
	for _, mediaRange := range strings.Split(accept, ",") {
		mediaRange = strings.TrimSpace(mediaRange)
		mediaType, params, err := mime.ParseMediaType(mediaRange)
		if err != nil {
			return restdata.JSONMediaType, errBadAccept
		}

		q := 1.0
		if qStr, haveQ := params["q"]; haveQ {
			q, err = strconv.ParseFloat(qStr, 64)
			if err != nil || q < 0.0 || q > 1.0 {
				return restdata.JSONMediaType, errBadAccept
			}
		}
		if q == 0.0 || q < bestQ {
			continue
		}

		// Concrete JSON types override any wildcard; the first
		// one at a given q wins.  Wildcards only displace a
		// less specific wildcard.
		switch {
		case restdata.IsJSON(mediaType):
			if q > bestQ || strings.HasSuffix(bestType, "*") {
				bestType, bestQ = mediaType, q
			}
		case mediaType == "application/*" || mediaType == "text/*":
			if q > bestQ || bestType == "*/*" {
				bestType, bestQ = mediaType, q
			}
		case mediaType == "*/*":
			if q > bestQ {
				bestType, bestQ = mediaType, q
			}
		}
	}
	switch bestType {
	case "":
		return restdata.JSONMediaType, errNotAcceptable{}
	case "*/*", "application/*":
		return restdata.JSONMediaType, nil
	case "text/*":
		return "text/json", nil
	default:
		return bestType, nil
	}
}
