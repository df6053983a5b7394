// Copyright 2015-2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restdata

import (
	"bytes"
	"io"
	"mime"
	"strings"

	"github.com/ugorji/go/codec"
)

// Decode tries to decode a restdata object from a reader, such as an
// HTTP request or response.  out must be a pointer type.
func Decode(contentType string, r io.Reader, out interface{}) error {
	if contentType == "" {
		// RFC 7231 section 3.1.1.5
		contentType = "application/octet-stream"
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return err
	}
	if !IsJSON(mediaType) {
		return ErrUnsupportedMediaType{Type: mediaType}
	}

	decoder := codec.NewDecoder(r, jsonHandle())
	return decoder.Decode(out)
}

// IsJSON decides whether a bare media type (no parameters) names some
// flavor of JSON that Decode understands.
func IsJSON(mediaType string) bool {
	switch mediaType {
	case "text/json", JSONMediaType:
		return true
	}
	return strings.HasPrefix(mediaType, "application/") &&
		strings.HasSuffix(mediaType, "+json")
}

// Encode serializes an object as JSON.
func Encode(in interface{}) ([]byte, error) {
	var out []byte
	encoder := codec.NewEncoderBytes(&out, jsonHandle())
	err := encoder.Encode(in)
	return out, err
}

// EncodeTo serializes an object as JSON directly to a writer.
func EncodeTo(w io.Writer, in interface{}) error {
	encoder := codec.NewEncoder(w, jsonHandle())
	return encoder.Encode(in)
}

// NewBody serializes an object and returns a reader over the encoded
// bytes, suitable for an HTTP request body.
func NewBody(in interface{}) (*bytes.Reader, error) {
	b, err := Encode(in)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(b), nil
}

func jsonHandle() *codec.JsonHandle {
	return &codec.JsonHandle{}
}
