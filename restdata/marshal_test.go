// Copyright 2015-2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restdata

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/diffeo/go-placeholder/placeholder"
	"github.com/stretchr/testify/assert"
)

func TestDecodeMediaTypes(t *testing.T) {
	tests := []struct {
		ContentType string
		OK          bool
	}{
		{"application/json", true},
		{"application/json; charset=utf-8", true},
		{"text/json", true},
		{"application/vnd.example.v1+json", true},
		{"text/plain", false},
		{"", false},
	}
	for _, test := range tests {
		var post placeholder.Post
		err := Decode(test.ContentType, strings.NewReader(`{"id":1,"userId":2,"title":"t"}`), &post)
		if test.OK {
			if assert.NoError(t, err, test.ContentType) {
				assert.Equal(t, placeholder.Post{ID: 1, UserID: 2, Title: "t"}, post)
			}
		} else {
			assert.IsType(t, ErrUnsupportedMediaType{}, err, test.ContentType)
		}
	}
}

func TestDecodeList(t *testing.T) {
	var comments []placeholder.Comment
	body := `[{"postId":7,"id":31,"name":"n","email":"e@example.com","body":"b"}]`
	err := Decode("application/json", strings.NewReader(body), &comments)
	if assert.NoError(t, err) && assert.Len(t, comments, 1) {
		assert.Equal(t, 7, comments[0].PostID)
		assert.Equal(t, "e@example.com", comments[0].Email)
	}
}

func TestEncodeFieldNames(t *testing.T) {
	b, err := Encode(placeholder.PostInput{UserID: 1, Title: "hello", Body: "world"})
	if assert.NoError(t, err) {
		assert.JSONEq(t, `{"userId":1,"title":"hello","body":"world"}`, string(b))
	}

	var buf bytes.Buffer
	err = EncodeTo(&buf, Empty{})
	if assert.NoError(t, err) {
		assert.JSONEq(t, `{}`, buf.String())
	}
}

func TestErrorResponseRoundTrip(t *testing.T) {
	for _, err := range []error{
		placeholder.ErrNoSuchPost{ID: 4},
		placeholder.ErrNoSuchUser{ID: 11},
	} {
		var resp ErrorResponse
		resp.FromError(err)
		assert.Equal(t, err, resp.ToError())
	}

	var resp ErrorResponse
	resp.FromError(errors.New("boom"))
	assert.Equal(t, "error", resp.Error)
	assert.EqualError(t, resp.ToError(), "boom")
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, StatusOf(placeholder.ErrNoSuchPost{ID: 1}))
	assert.Equal(t, http.StatusBadRequest, StatusOf(ErrBadRequest{Err: errors.New("x")}))
	assert.Equal(t, http.StatusBadRequest,
		StatusOf(fmt.Errorf("wrapped: %w", ErrBadRequest{Err: errors.New("x")})))
	assert.Equal(t, http.StatusUnsupportedMediaType, StatusOf(ErrUnsupportedMediaType{Type: "a/b"}))
	assert.Equal(t, http.StatusInternalServerError, StatusOf(errors.New("x")))
}

func TestFromPanic(t *testing.T) {
	var resp ErrorResponse
	resp.FromPanic("oops")
	assert.Equal(t, "panic", resp.Error)
	assert.Equal(t, "oops", resp.Message)
	assert.NotEmpty(t, resp.Stack)
}
