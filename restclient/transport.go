package restclient

import (
	"bytes"
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

// Transport sends a prepared request and returns the raw response. It
// is the injected collaborator the executor dispatches through; the
// core never constructs one behind the caller's back beyond the default
// HTTPTransport. Implementations must be safe for concurrent use.
type Transport interface {
	Send(ctx context.Context, req *Request) (*Response, error)
}

// HTTPTransport is the default Transport backed by net/http.
type HTTPTransport struct {
	client *http.Client
}

// TransportOption customizes an HTTPTransport.
type TransportOption func(*transportOpts)

type transportOpts struct {
	client    *http.Client
	tlsConfig *tls.Config
}

// WithHTTPClient replaces the default *http.Client.
func WithHTTPClient(hc *http.Client) TransportOption {
	return func(o *transportOpts) { o.client = hc }
}

// WithTLSConfig sets the TLS configuration on the underlying transport.
func WithTLSConfig(cfg *tls.Config) TransportOption {
	return func(o *transportOpts) { o.tlsConfig = cfg }
}

// NewHTTPTransport creates an HTTPTransport with the given request
// timeout.
func NewHTTPTransport(timeout time.Duration, opts ...TransportOption) *HTTPTransport {
	var o transportOpts
	for _, opt := range opts {
		opt(&o)
	}

	hc := o.client
	if hc == nil {
		transport := http.DefaultTransport.(*http.Transport).Clone()
		if o.tlsConfig != nil {
			transport.TLSClientConfig = o.tlsConfig
		}
		hc = &http.Client{Transport: transport}
	}
	hc.Timeout = timeout

	return &HTTPTransport{client: hc}
}

// Send executes the request and drains the response body.
func (t *HTTPTransport) Send(ctx context.Context, req *Request) (*Response, error) {
	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return nil, NewConfigError(fmt.Sprintf("create request: %v", err))
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	resp, err := t.client.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil || isTimeout(err) {
			return nil, NewTimeoutError(err)
		}
		return nil, NewConnectionError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewConnectionError(fmt.Errorf("read response body: %w", err))
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Headers:    flattenHeaders(resp.Header),
		Body:       data,
	}, nil
}

// Unwrap returns the underlying *http.Client for advanced use cases.
func (t *HTTPTransport) Unwrap() *http.Client {
	return t.client
}

func isTimeout(err error) bool {
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
