package restclient

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/restbase/restbase/codec"
)

// Typed wraps a response decoded into a concrete type. Found is false
// on a soft miss (GET meeting 404/410); Data is the zero value then.
type Typed[T any] struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Headers are the response headers.
	Headers map[string]string
	// Found is false when the requested resource does not exist.
	Found bool
	// Data is the decoded response body.
	Data T
}

// Get performs a GET request and decodes the JSON response into type T.
func Get[T any](ctx context.Context, c *Client, path string, opts ...RequestOption) (*Typed[T], error) {
	return doTyped[T](ctx, c, http.MethodGet, path, nil, opts...)
}

// Post performs a POST request and decodes the JSON response into type T.
func Post[T any](ctx context.Context, c *Client, path string, body any, opts ...RequestOption) (*Typed[T], error) {
	return doTyped[T](ctx, c, http.MethodPost, path, body, opts...)
}

// Put performs a PUT request and decodes the JSON response into type T.
func Put[T any](ctx context.Context, c *Client, path string, body any, opts ...RequestOption) (*Typed[T], error) {
	return doTyped[T](ctx, c, http.MethodPut, path, body, opts...)
}

// Patch performs a PATCH request and decodes the JSON response into type T.
func Patch[T any](ctx context.Context, c *Client, path string, body any, opts ...RequestOption) (*Typed[T], error) {
	return doTyped[T](ctx, c, http.MethodPatch, path, body, opts...)
}

// Delete performs a DELETE request and decodes the JSON response into type T.
func Delete[T any](ctx context.Context, c *Client, path string, opts ...RequestOption) (*Typed[T], error) {
	return doTyped[T](ctx, c, http.MethodDelete, path, nil, opts...)
}

// doTyped executes a request and decodes the JSON response into T,
// bypassing the client's response mode.
func doTyped[T any](ctx context.Context, c *Client, method, path string, body any, opts ...RequestOption) (*Typed[T], error) {
	var ro requestOpts
	for _, opt := range opts {
		opt(&ro)
	}

	resp, err := c.send(ctx, method, path, body, ro)
	if err != nil {
		return nil, err
	}

	result := &Typed[T]{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
	}

	if method == http.MethodGet && (resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone) {
		return result, nil
	}
	if !resp.IsSuccess() {
		return nil, NewRemoteError(resp)
	}

	result.Found = true
	if len(resp.Body) > 0 {
		if err := json.Unmarshal(resp.Body, &result.Data); err != nil {
			return nil, &codec.DeserializationError{Err: err}
		}
	}
	return result, nil
}
