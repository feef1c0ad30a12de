package restclient

import (
	"context"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

// Middleware mutates a prepared request before dispatch. Middlewares
// run in registration order, after header/body preparation and before
// the first transport attempt; their mutations persist across retries.
// Downstream clients use them to inject credentials or correlation
// headers without wrapping the executor.
type Middleware func(ctx context.Context, req *Request) error

// RequestID returns a middleware that sets an X-Request-Id header with
// a random UUID when the caller did not supply one.
func RequestID() Middleware {
	return func(_ context.Context, req *Request) error {
		if req.Header("X-Request-Id") == "" {
			req.SetHeader("X-Request-Id", uuid.NewString())
		}
		return nil
	}
}

// TraceContext returns a middleware that injects W3C trace context
// headers from the call context using the global OpenTelemetry
// propagator.
func TraceContext() Middleware {
	return func(ctx context.Context, req *Request) error {
		otel.GetTextMapPropagator().Inject(ctx, headerCarrier{req: req})
		return nil
	}
}

// headerCarrier adapts a Request to the propagation.TextMapCarrier
// interface.
type headerCarrier struct {
	req *Request
}

var _ propagation.TextMapCarrier = headerCarrier{}

func (c headerCarrier) Get(key string) string {
	return c.req.Header(key)
}

func (c headerCarrier) Set(key, value string) {
	c.req.SetHeader(key, value)
}

func (c headerCarrier) Keys() []string {
	keys := make([]string, 0, len(c.req.Headers))
	for k := range c.req.Headers {
		keys = append(keys, k)
	}
	return keys
}
