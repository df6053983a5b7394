// Copyright 2015-2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package restserver publishes a placeholder.Placeholder as a REST
// service that is wire-compatible with JSONPlaceholder.  The
// restclient package is a matching client.
//
// The wire format and URL layout are described in the restdata
// package.
//
// HTTP Considerations
//
// Bodies are always JSON.  Requests with a body must declare a JSON
// Content-Type:; anything else is rejected with 415 Unsupported Media
// Type.  The Accept: header is honored to the extent of refusing
// requests that accept no JSON flavor at all (406 Not Acceptable).
//
// A successful POST returns 201 Created with a Location: header.  A
// successful DELETE returns 200 OK with an empty JSON object, as the
// public service does.  A missing record, or an ID that is not an
// integer, is 404 Not Found.
//
// This interface does not support HTTP caching, authentication, or
// PATCH.
package restserver
