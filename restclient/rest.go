// Copyright 2015-2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restclient

// This file provides generic REST client code.

import (
	"bytes"
	"context"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/diffeo/go-placeholder/restdata"
	"github.com/jtacoma/uritemplates"
	"github.com/satori/go.uuid"
	"github.com/sirupsen/logrus"
)

// resource is a named collection of endpoints below a shared base URL,
// all reached through one shared HTTP client.
type resource struct {
	// URL is the service root.  Its path always ends in "/" so
	// that relative templates resolve below it.
	URL *url.URL

	// Name labels this resource in logs and metrics.
	Name string

	HTTP   *http.Client
	Logger logrus.FieldLogger
}

// Template expands a URI template with vars and returns the result
// relative to the resource's URL.  Values are escaped with ordinary
// RFC 3986 percent-encoding and nothing else.
func (r *resource) Template(template string, vars map[string]interface{}) (*url.URL, error) {
	tmpl, err := uritemplates.Parse(template)
	if err != nil {
		return nil, err
	}
	if vars == nil {
		vars = map[string]interface{}{}
	}
	expanded, err := tmpl.Expand(vars)
	if err != nil {
		return nil, err
	}
	return r.URL.Parse(expanded)
}

// Do performs some HTTP action.  If in is non-nil, the request data is
// serialized and sent as the body of, for instance, a POST request.
// If out is non-nil, the response data (if any) is deserialized into
// this object, which must be of pointer type.
func (r *resource) Do(ctx context.Context, method string, u *url.URL, in, out interface{}) (err error) {
	var body io.Reader
	if in != nil {
		var encoded *bytes.Reader
		encoded, err = restdata.NewBody(in)
		if err != nil {
			return err
		}
		body = encoded
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", restdata.JSONMediaType+"; charset=utf-8")
	}
	req.Header.Set("Accept", restdata.JSONMediaType)
	requestID := uuid.NewV4().String()
	req.Header.Set(restdata.RequestIDHeader, requestID)

	start := time.Now()
	resp, err := r.HTTP.Do(req)
	elapsed := time.Since(start)

	status := "error"
	if resp != nil {
		status = strconv.Itoa(resp.StatusCode)
	}
	observeRequest(method, r.Name, status, elapsed)
	log := r.Logger.WithFields(logrus.Fields{
		"method":     method,
		"url":        u.String(),
		"request_id": requestID,
		"status":     status,
		"elapsed":    elapsed,
	})
	if err != nil {
		log.WithError(err).Debug("request failed")
		return err
	}
	log.Debug("request complete")

	defer func() {
		err = firstError(err, resp.Body.Close())
	}()

	if err = checkHTTPStatus(resp); err != nil {
		return err
	}

	if out != nil {
		contentType := resp.Header.Get("Content-Type")
		err = restdata.Decode(contentType, resp.Body, out)
	}
	return err
}

// GetFrom retrieves a resource from a URL template, with an optional
// query string.  The result is stored in out, which must be of pointer
// type.
func (r *resource) GetFrom(ctx context.Context, template string, vars map[string]interface{}, query url.Values, out interface{}) error {
	u, err := r.Template(template, vars)
	if err != nil {
		return err
	}
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return r.Do(ctx, http.MethodGet, u, nil, out)
}

// PutTo replaces a resource at a URL template.  The server response is
// stored in out, which must be of pointer type.
func (r *resource) PutTo(ctx context.Context, template string, vars map[string]interface{}, in, out interface{}) error {
	u, err := r.Template(template, vars)
	if err == nil {
		err = r.Do(ctx, http.MethodPut, u, in, out)
	}
	return err
}

// PostTo submits data to a URL template.  The server response is
// stored in out, which must be of pointer type.
func (r *resource) PostTo(ctx context.Context, template string, vars map[string]interface{}, in, out interface{}) error {
	u, err := r.Template(template, vars)
	if err == nil {
		err = r.Do(ctx, http.MethodPost, u, in, out)
	}
	return err
}

// DeleteAt deletes the resource at a URL template.  Any response body
// is discarded.
func (r *resource) DeleteAt(ctx context.Context, template string, vars map[string]interface{}) error {
	u, err := r.Template(template, vars)
	if err == nil {
		err = r.Do(ctx, http.MethodDelete, u, nil, nil)
	}
	return err
}

// ErrorHTTP is a catch-all error for non-successes returned from the
// REST endpoint.
type ErrorHTTP struct {
	// Response holds a pointer to the failing HTTP response.  Its
	// body has already been consumed and closed.
	Response *http.Response

	// Body holds the contents of the message body, presumed to
	// be text.
	Body string

	// Detail holds the decoded body, if the server sent a
	// restdata.ErrorResponse.  The public service does not.
	Detail *restdata.ErrorResponse
}

func (e ErrorHTTP) Error() string {
	msg := e.Response.Status
	if req := e.Response.Request; req != nil {
		msg = req.Method + " " + req.URL.String() + ": " + msg
	}
	if e.Detail != nil && e.Detail.Message != "" {
		msg += ": " + e.Detail.Message
	}
	return msg
}

// HTTPStatus returns the response's status code.
func (e ErrorHTTP) HTTPStatus() int {
	return e.Response.StatusCode
}

// NotFound reports whether this was a 404 response.
func (e ErrorHTTP) NotFound() bool {
	return e.Response.StatusCode == http.StatusNotFound
}

// checkHTTPStatus examines an HTTP response and returns an error if
// it is not successful.
func checkHTTPStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	// Always collect the entire body; we will need it as a fallback
	// and can only read it once.
	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	result := ErrorHTTP{Response: resp, Body: string(body)}
	var detail restdata.ErrorResponse
	contentType := resp.Header.Get("Content-Type")
	if restdata.Decode(contentType, bytes.NewReader(body), &detail) == nil && detail.Error != "" {
		result.Detail = &detail
	}
	return result
}

func firstError(e1, e2 error) error {
	if e1 != nil {
		return e1
	}
	return e2
}
