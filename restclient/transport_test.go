package restclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestHTTPTransport_Send(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("X-Probe"); got != "1" {
			t.Errorf("expected request header forwarded, got %q", got)
		}
		w.Header().Set("X-Echo", "ok")
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	tr := NewHTTPTransport(time.Second)
	resp, err := tr.Send(context.Background(), &Request{
		Method:  http.MethodGet,
		URL:     srv.URL + "/probe",
		Headers: map[string]string{"X-Probe": "1"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusAccepted {
		t.Errorf("expected 202, got %d", resp.StatusCode)
	}
	if resp.Headers["X-Echo"] != "ok" {
		t.Errorf("expected flattened response headers, got %v", resp.Headers)
	}
}

func TestHTTPTransport_ConnectionError(t *testing.T) {
	tr := NewHTTPTransport(time.Second)

	_, err := tr.Send(context.Background(), &Request{
		Method: http.MethodGet,
		URL:    "http://127.0.0.1:1/unreachable",
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsConnection(err) {
		t.Errorf("expected connection error, got %v", err)
	}
	if !IsTransport(err) {
		t.Errorf("expected transport classification, got %v", err)
	}
}

func TestHTTPTransport_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	tr := NewHTTPTransport(10 * time.Millisecond)

	_, err := tr.Send(context.Background(), &Request{Method: http.MethodGet, URL: srv.URL})
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsTimeout(err) {
		t.Errorf("expected timeout error, got %v", err)
	}
}

func TestHTTPTransport_ContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(time.Second)
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	tr := NewHTTPTransport(time.Minute)
	_, err := tr.Send(ctx, &Request{Method: http.MethodGet, URL: srv.URL})
	if !IsTimeout(err) {
		t.Errorf("expected timeout error, got %v", err)
	}
}
