package restclient

import (
	"errors"
	"sync"

	"github.com/restbase/restbase/codec"
)

// ErrNoContent signals a successful response whose body was empty when
// a decoded payload was requested. It is distinct from a soft miss: the
// server answered 2xx, there is just nothing to decode.
var ErrNoContent = errors.New("restclient: response has no content")

// Outcome is the terminal result of a call that did not fail. It is one
// of three shapes:
//
//   - soft miss: Missing() is true (GET met 404/410, resource absent)
//   - no content: NoContent() is true (2xx with empty body, raw mode)
//   - success: Payload() in raw mode, Wrapper() in wrapped mode
//
// Hard failures never produce an Outcome; they surface as *Error on the
// error return.
type Outcome struct {
	resp    *Response
	payload any
	wrapper *ResponseWrapper
	missing bool
	empty   bool
}

// Missing reports whether the requested resource does not exist.
func (o *Outcome) Missing() bool {
	return o.missing
}

// NoContent reports a successful response with an empty body.
func (o *Outcome) NoContent() bool {
	return o.empty
}

// Payload returns the deserialized response payload (raw mode).
func (o *Outcome) Payload() any {
	return o.payload
}

// Wrapper returns the response wrapper (wrapped mode), nil otherwise.
func (o *Outcome) Wrapper() *ResponseWrapper {
	return o.wrapper
}

// Response returns the final response, for callers that need status or
// headers alongside the payload.
func (o *Outcome) Response() *Response {
	return o.resp
}

// ResponseWrapper owns one final response and defers body decoding
// until asked. It is a per-call value, not safe to share across
// goroutines beyond the lazy decode guard.
type ResponseWrapper struct {
	resp        *Response
	deserialize codec.Deserializer

	once      sync.Once
	decoded   any
	decodeErr error
}

// NewResponseWrapper wraps a response with a deserializer for lazy
// decoding.
func NewResponseWrapper(resp *Response, deserialize codec.Deserializer) *ResponseWrapper {
	return &ResponseWrapper{resp: resp, deserialize: deserialize}
}

// StatusCode returns the HTTP status code.
func (w *ResponseWrapper) StatusCode() int {
	return w.resp.StatusCode
}

// Headers returns the response headers.
func (w *ResponseWrapper) Headers() map[string]string {
	return w.resp.Headers
}

// Body returns the raw response body.
func (w *ResponseWrapper) Body() []byte {
	return w.resp.Body
}

// Success reports whether the status code is 2xx.
func (w *ResponseWrapper) Success() bool {
	return w.resp.IsSuccess()
}

// Payload decodes the body on first use and caches the result. An
// empty body returns ErrNoContent rather than a decode failure.
func (w *ResponseWrapper) Payload() (any, error) {
	if len(w.resp.Body) == 0 {
		return nil, ErrNoContent
	}
	w.once.Do(func() {
		w.decoded, w.decodeErr = w.deserialize(w.resp.Body)
	})
	return w.decoded, w.decodeErr
}
