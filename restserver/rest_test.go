// Regression tests for rest.go.
//
// Main tests are really by running the end-to-end path, using the
// placeholdertest tests driven from restclient.  This mostly contains
// special-case protocol tests.
//
// Copyright 2016-2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/diffeo/go-placeholder/memory"
	"github.com/diffeo/go-placeholder/placeholder"
	"github.com/diffeo/go-placeholder/restdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failResponseWriter struct {
	Headers    http.Header
	StatusCode int
}

func (rw *failResponseWriter) Header() http.Header {
	if rw.Headers == nil {
		rw.Headers = make(http.Header)
	}
	return rw.Headers
}

func (rw *failResponseWriter) Write([]byte) (int, error) {
	return 0, errors.New("foo")
}

func (rw *failResponseWriter) WriteHeader(code int) {
	rw.StatusCode = code
}

// TestDoubleFault checks that, if there is an error serializing a JSON
// response, it doesn't actually panic the process.
func TestDoubleFault(t *testing.T) {
	router := NewRouter(memory.New())
	req := &http.Request{
		Method: http.MethodGet,
		URL: &url.URL{
			Path: "/posts/1",
		},
		Proto:      "HTTP/1.1",
		ProtoMajor: 1,
		ProtoMinor: 1,
		Header:     http.Header{},
		Close:      true,
		Host:       "localhost",
	}
	resp := &failResponseWriter{}
	router.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func serve(t *testing.T, method, target, contentType, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	resp := httptest.NewRecorder()
	NewRouter(memory.New()).ServeHTTP(resp, req)
	return resp
}

func decodeError(t *testing.T, resp *httptest.ResponseRecorder) restdata.ErrorResponse {
	var errResp restdata.ErrorResponse
	err := restdata.Decode(resp.Header().Get("Content-Type"), resp.Body, &errResp)
	require.NoError(t, err)
	return errResp
}

func TestGetPost(t *testing.T) {
	resp := serve(t, http.MethodGet, "/posts/12", "", "")
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "application/json; charset=utf-8", resp.Header().Get("Content-Type"))

	var post placeholder.Post
	err := restdata.Decode(resp.Header().Get("Content-Type"), resp.Body, &post)
	if assert.NoError(t, err) {
		assert.Equal(t, 12, post.ID)
		assert.Equal(t, 2, post.UserID)
	}
}

func TestMissingPost(t *testing.T) {
	resp := serve(t, http.MethodGet, "/posts/987654", "", "")
	assert.Equal(t, http.StatusNotFound, resp.Code)
	errResp := decodeError(t, resp)
	assert.Equal(t, "ErrNoSuchPost", errResp.Error)
	assert.Equal(t, 987654, errResp.Value)
}

func TestNonIntegerID(t *testing.T) {
	resp := serve(t, http.MethodGet, "/users/bret", "", "")
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestBadQuery(t *testing.T) {
	resp := serve(t, http.MethodGet, "/posts?userId=one", "", "")
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHugePage(t *testing.T) {
	resp := serve(t, http.MethodGet, "/posts?_page=9223372036854775807&_limit=2", "", "")
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `[]`, resp.Body.String())
}

func TestCreateLocation(t *testing.T) {
	resp := serve(t, http.MethodPost, "/posts", "application/json",
		`{"userId": 1, "title": "hello", "body": "world"}`)
	assert.Equal(t, http.StatusCreated, resp.Code)

	var post placeholder.Post
	err := restdata.Decode(resp.Header().Get("Content-Type"), resp.Body, &post)
	if assert.NoError(t, err) {
		assert.Equal(t, "hello", post.Title)
		assert.Equal(t, "world", post.Body)
		assert.Equal(t, 1, post.UserID)
		assert.Equal(t, "/posts/"+strconv.Itoa(post.ID), resp.Header().Get("Location"))
	}
}

func TestUnsupportedMediaType(t *testing.T) {
	resp := serve(t, http.MethodPost, "/posts", "text/plain", "title=hello")
	assert.Equal(t, http.StatusUnsupportedMediaType, resp.Code)
}

func TestMalformedBody(t *testing.T) {
	resp := serve(t, http.MethodPut, "/posts/1", "application/json", "{not json")
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestMethodNotAllowed(t *testing.T) {
	resp := serve(t, http.MethodDelete, "/users/1", "", "")
	assert.Equal(t, http.StatusMethodNotAllowed, resp.Code)
}

func TestDeleteReturnsEmptyObject(t *testing.T) {
	resp := serve(t, http.MethodDelete, "/posts/3", "", "")
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{}`, resp.Body.String())
}

func TestCommentsOfMissingPost(t *testing.T) {
	resp := serve(t, http.MethodGet, "/posts/987654/comments", "", "")
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `[]`, resp.Body.String())
}

func TestHead(t *testing.T) {
	resp := serve(t, http.MethodHead, "/users/1", "", "")
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, 0, resp.Body.Len())
}

func TestNegotiateResponse(t *testing.T) {
	for _, test := range []struct {
		Accept string
		Type   string
		Status int
	}{
		{"", "application/json", 0},
		{"*/*", "application/json", 0},
		{"application/json", "application/json", 0},
		{"text/*", "text/json", 0},
		{"text/html, application/json;q=0.5", "application/json", 0},
		{"*/*;q=0.1, text/json", "text/json", 0},
		{"text/html", "application/json", http.StatusNotAcceptable},
		{"application/json;q=0", "application/json", http.StatusNotAcceptable},
		{"application/json;q=2", "application/json", http.StatusBadRequest},
	} {
		req := httptest.NewRequest(http.MethodGet, "/users", nil)
		if test.Accept != "" {
			req.Header.Set("Accept", test.Accept)
		}
		mediaType, err := negotiateResponse(req)
		assert.Equal(t, test.Type, mediaType, "Accept: %s", test.Accept)
		if test.Status == 0 {
			assert.NoError(t, err, "Accept: %s", test.Accept)
		} else if assert.Error(t, err, "Accept: %s", test.Accept) {
			assert.Equal(t, test.Status, restdata.StatusOf(err), "Accept: %s", test.Accept)
		}
	}
}
