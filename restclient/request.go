package restclient

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// Request is the prepared outbound request handed to the transport.
// Header keys are canonicalized, so lookups are case-insensitive.
type Request struct {
	// Method is the HTTP method (GET, POST, PUT, PATCH, DELETE).
	Method string
	// URL is the fully resolved absolute URL, query string included.
	URL string
	// Headers are the merged request headers.
	Headers map[string]string
	// Body is the serialized request body, nil when there is none.
	Body []byte
}

// SetHeader sets a header using the canonical key form.
func (r *Request) SetHeader(key, value string) {
	if r.Headers == nil {
		r.Headers = make(map[string]string)
	}
	r.Headers[http.CanonicalHeaderKey(key)] = value
}

// Header returns a header value by case-insensitive key.
func (r *Request) Header(key string) string {
	return r.Headers[http.CanonicalHeaderKey(key)]
}

// Response is the result of one transport attempt.
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Headers are the response headers, flattened to single values.
	Headers map[string]string
	// Body is the raw response body.
	Body []byte
}

// IsSuccess returns true if the status code is 2xx.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// isServerError reports whether the response is in the retryable
// server-error class.
func (r *Response) isServerError() bool {
	return r.StatusCode >= 500 && r.StatusCode <= 599
}

// Query maps parameter names to a scalar or a sequence of scalars.
// Sequences repeat the key with a [] suffix: key[]=v1&key[]=v2.
type Query map[string]any

// Encode flattens the query into a query string. Keys are emitted in
// sorted order. Values are concatenated literally, without URL
// escaping; callers must pre-encode values that need it.
func (q Query) Encode() string {
	if len(q) == 0 {
		return ""
	}

	keys := make([]string, 0, len(q))
	for k := range q {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, k := range keys {
		switch v := q[k].(type) {
		case []string:
			for _, item := range v {
				appendParam(&sb, k+"[]", item)
			}
		case []any:
			for _, item := range v {
				appendParam(&sb, k+"[]", fmt.Sprint(item))
			}
		default:
			appendParam(&sb, k, fmt.Sprint(v))
		}
	}
	return sb.String()
}

func appendParam(sb *strings.Builder, key, value string) {
	if sb.Len() > 0 {
		sb.WriteByte('&')
	}
	sb.WriteString(key)
	sb.WriteByte('=')
	sb.WriteString(value)
}

func flattenHeaders(h http.Header) map[string]string {
	result := make(map[string]string, len(h))
	for k, v := range h {
		if len(v) > 0 {
			result[k] = v[0]
		}
	}
	return result
}
