package restclient

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/restbase/restbase/codec"
	"github.com/restbase/restbase/logger"
)

// Caller is the capability set downstream API clients embed or wrap.
// A concrete client supplies its base URL and auth middleware at
// construction and exposes endpoint methods on top of these verbs.
type Caller interface {
	Get(ctx context.Context, path string, opts ...RequestOption) (*Outcome, error)
	Post(ctx context.Context, path string, body any, opts ...RequestOption) (*Outcome, error)
	Put(ctx context.Context, path string, body any, opts ...RequestOption) (*Outcome, error)
	Patch(ctx context.Context, path string, body any, opts ...RequestOption) (*Outcome, error)
	Delete(ctx context.Context, path string, opts ...RequestOption) (*Outcome, error)
	Req(ctx context.Context, method, path string, body any, opts ...RequestOption) (*Outcome, error)
}

// Client executes REST calls against one remote API. It holds no
// mutable state between calls; a single instance is safe for
// concurrent use as long as its Transport is.
type Client struct {
	config      Config
	transport   Transport
	middlewares []Middleware
	log         *logger.Logger
	tracer      trace.Tracer
}

var _ Caller = (*Client)(nil)

// Option customizes a Client at construction.
type Option func(*Client)

// WithTransport injects a custom Transport. The default is an
// HTTPTransport honoring the configured timeout.
func WithTransport(t Transport) Option {
	return func(c *Client) { c.transport = t }
}

// WithLogger overrides the config-level logger.
func WithLogger(l *logger.Logger) Option {
	return func(c *Client) { c.log = l }
}

// WithMiddleware appends request middlewares, run in the order given.
func WithMiddleware(mw ...Middleware) Option {
	return func(c *Client) { c.middlewares = append(c.middlewares, mw...) }
}

// WithTracing enables an OpenTelemetry span around each call, created
// by the named tracer from the global provider.
func WithTracing(name string) Option {
	return func(c *Client) { c.tracer = otel.Tracer(name) }
}

// New creates a Client from the given configuration. BaseURL is
// required; everything else has defaults.
func New(cfg Config, opts ...Option) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Client{
		config: cfg,
		log:    cfg.Logger,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.transport == nil {
		c.transport = NewHTTPTransport(cfg.Timeout)
	}
	if c.log == nil {
		c.log = logger.Nop()
	}
	c.log = c.log.WithComponent("restclient")

	return c, nil
}

// Config returns the client configuration.
func (c *Client) Config() Config {
	return c.config
}

// RequestOption customizes a single call.
type RequestOption func(*requestOpts)

type requestOpts struct {
	headers      map[string]string
	query        Query
	serializer   codec.Serializer
	deserializer codec.Deserializer
}

// WithHeader adds one header to the request.
func WithHeader(key, value string) RequestOption {
	return func(o *requestOpts) {
		if o.headers == nil {
			o.headers = make(map[string]string)
		}
		o.headers[key] = value
	}
}

// WithHeaders merges the given headers over the client defaults.
func WithHeaders(headers map[string]string) RequestOption {
	return func(o *requestOpts) {
		if o.headers == nil {
			o.headers = make(map[string]string, len(headers))
		}
		for k, v := range headers {
			o.headers[k] = v
		}
	}
}

// WithQuery attaches query parameters. Values may be scalars or
// sequences; see Query.
func WithQuery(q Query) RequestOption {
	return func(o *requestOpts) { o.query = q }
}

// WithSerializer overrides the body serializer for this call. Pass
// codec.PassthroughSerialize to send a pre-encoded body unchanged.
func WithSerializer(s codec.Serializer) RequestOption {
	return func(o *requestOpts) { o.serializer = s }
}

// WithDeserializer overrides the response deserializer for this call.
// Pass codec.PassthroughDeserialize to receive raw bytes.
func WithDeserializer(d codec.Deserializer) RequestOption {
	return func(o *requestOpts) { o.deserializer = d }
}

// Get issues a GET request.
func (c *Client) Get(ctx context.Context, path string, opts ...RequestOption) (*Outcome, error) {
	return c.Req(ctx, http.MethodGet, path, nil, opts...)
}

// Post issues a POST request with an optional body.
func (c *Client) Post(ctx context.Context, path string, body any, opts ...RequestOption) (*Outcome, error) {
	return c.Req(ctx, http.MethodPost, path, body, opts...)
}

// Put issues a PUT request with an optional body.
func (c *Client) Put(ctx context.Context, path string, body any, opts ...RequestOption) (*Outcome, error) {
	return c.Req(ctx, http.MethodPut, path, body, opts...)
}

// Patch issues a PATCH request with an optional body.
func (c *Client) Patch(ctx context.Context, path string, body any, opts ...RequestOption) (*Outcome, error) {
	return c.Req(ctx, http.MethodPatch, path, body, opts...)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string, opts ...RequestOption) (*Outcome, error) {
	return c.Req(ctx, http.MethodDelete, path, nil, opts...)
}

// Req issues a request with an arbitrary method and classifies the
// final response. Soft misses (GET meeting 404/410) return an Outcome
// with Missing() true and no error; any other non-2xx response returns
// a remote *Error carrying the full response.
func (c *Client) Req(ctx context.Context, method, path string, body any, opts ...RequestOption) (*Outcome, error) {
	var ro requestOpts
	for _, opt := range opts {
		opt(&ro)
	}

	resp, err := c.send(ctx, method, path, body, ro)
	if err != nil {
		return nil, err
	}

	return c.classify(method, resp, ro)
}

// send runs the pipeline up to and including the retry loop and
// returns the final response regardless of status.
func (c *Client) send(ctx context.Context, method, path string, body any, ro requestOpts) (*Response, error) {
	reqURL, err := resolvePath(c.config.BaseURL, path)
	if err != nil {
		return nil, err
	}
	if encoded := ro.query.Encode(); encoded != "" {
		reqURL += "?" + encoded
	}

	headers := mergeHeaders(c.config.Headers, ro.headers, c.config.ContentType)

	serialize := c.config.Serializer
	if ro.serializer != nil {
		serialize = ro.serializer
	}
	content, err := prepareBody(body, headers[headerContentType], serialize)
	if err != nil {
		return nil, err
	}

	req := &Request{
		Method:  method,
		URL:     reqURL,
		Headers: headers,
		Body:    content,
	}

	for _, mw := range c.middlewares {
		if err := mw(ctx, req); err != nil {
			return nil, err
		}
	}

	if c.tracer != nil {
		var span trace.Span
		ctx, span = c.tracer.Start(ctx, fmt.Sprintf("%s %s", method, path),
			trace.WithSpanKind(trace.SpanKindClient),
			trace.WithAttributes(
				attribute.String("http.request.method", method),
				attribute.String("url.full", req.URL),
			),
		)
		defer span.End()

		resp, err := c.dispatch(ctx, req)
		switch {
		case err != nil:
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		case resp != nil:
			span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
		}
		return resp, err
	}

	return c.dispatch(ctx, req)
}

// dispatch sends the request and retries on server-error responses
// until the budget is spent. Transport-level failures are not retried;
// they propagate to the caller immediately.
func (c *Client) dispatch(ctx context.Context, req *Request) (*Response, error) {
	c.logRequest(req)

	resp, err := c.transport.Send(ctx, req)
	if err != nil {
		return nil, err
	}
	c.logResponse(resp, 1)

	for retries := 0; resp.isServerError() && retries < c.config.MaxRetries; retries++ {
		c.log.Debug("retrying after server error", logger.Fields(
			logger.FieldStatus, resp.StatusCode,
			logger.FieldBackoff, c.config.RetryBackoff.Milliseconds(),
		))
		if err := sleep(ctx, c.config.RetryBackoff); err != nil {
			return nil, err
		}

		resp, err = c.transport.Send(ctx, req)
		if err != nil {
			return nil, err
		}
		c.logResponse(resp, retries+2)
	}

	return resp, nil
}

// classify maps the final response to its terminal outcome.
func (c *Client) classify(method string, resp *Response, ro requestOpts) (*Outcome, error) {
	if method == http.MethodGet && (resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone) {
		return &Outcome{resp: resp, missing: true}, nil
	}
	if !resp.IsSuccess() {
		return nil, NewRemoteError(resp)
	}

	deserialize := c.config.Deserializer
	if ro.deserializer != nil {
		deserialize = ro.deserializer
	}

	if c.config.ResponseMode == ModeWrapped {
		return &Outcome{resp: resp, wrapper: NewResponseWrapper(resp, deserialize)}, nil
	}

	if len(resp.Body) == 0 {
		return &Outcome{resp: resp, empty: true}, nil
	}
	payload, err := deserialize(resp.Body)
	if err != nil {
		return nil, err
	}
	return &Outcome{resp: resp, payload: payload}, nil
}

func (c *Client) logRequest(req *Request) {
	fields := logger.Fields(
		logger.FieldMethod, req.Method,
		logger.FieldURL, req.URL,
	)
	if len(req.Body) > 0 {
		fields[logger.FieldBody] = string(req.Body)
	}
	c.log.Debug("sending request", fields)
}

func (c *Client) logResponse(resp *Response, attempt int) {
	c.log.Debug("received response", logger.Fields(
		logger.FieldStatus, resp.StatusCode,
		logger.FieldAttempt, attempt,
		logger.FieldBody, string(resp.Body),
	))
}

// sleep waits for the backoff interval, honoring context cancellation.
func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return NewTimeoutError(ctx.Err())
	case <-timer.C:
		return nil
	}
}
