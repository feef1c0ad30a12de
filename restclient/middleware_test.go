package restclient

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

func TestRequestID(t *testing.T) {
	req := &Request{Method: http.MethodGet, URL: "http://x"}
	if err := RequestID()(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Header("X-Request-Id") == "" {
		t.Error("expected generated request id")
	}
}

func TestRequestID_KeepsExisting(t *testing.T) {
	req := &Request{}
	req.SetHeader("X-Request-Id", "caller-supplied")

	if err := RequestID()(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := req.Header("X-Request-Id"); got != "caller-supplied" {
		t.Errorf("expected caller id kept, got %q", got)
	}
}

func TestTraceContextInjection(t *testing.T) {
	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    trace.TraceID{0x01},
		SpanID:     trace.SpanID{0x02},
		TraceFlags: trace.FlagsSampled,
	})
	ctx := trace.ContextWithSpanContext(context.Background(), sc)

	req := &Request{}
	carrier := headerCarrier{req: req}
	propagation.TraceContext{}.Inject(ctx, carrier)

	tp := req.Header("Traceparent")
	if tp == "" {
		t.Fatal("expected traceparent header")
	}
	if !strings.Contains(tp, "01000000000000000000000000000000") {
		t.Errorf("expected trace id in header, got %q", tp)
	}
}

func TestBearerAuth(t *testing.T) {
	req := &Request{}
	if err := BearerAuth("secret")(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := req.Header("Authorization"); got != "Bearer secret" {
		t.Errorf("expected bearer header, got %q", got)
	}
}

func TestBasicAuth(t *testing.T) {
	req := &Request{}
	if err := BasicAuth("user", "pass")(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// base64("user:pass")
	if got := req.Header("Authorization"); got != "Basic dXNlcjpwYXNz" {
		t.Errorf("expected basic header, got %q", got)
	}
}

func TestAPIKeyAuth(t *testing.T) {
	req := &Request{}
	if err := APIKeyAuth("k1", "")(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := req.Header("X-API-Key"); got != "k1" {
		t.Errorf("expected default header name, got %q", got)
	}

	req = &Request{}
	if err := APIKeyAuth("k2", "X-Custom-Key")(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := req.Header("X-Custom-Key"); got != "k2" {
		t.Errorf("expected custom header name, got %q", got)
	}
}
