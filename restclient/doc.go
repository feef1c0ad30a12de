// Package restclient implements a reusable base for building JSON REST
// API clients. It supplies the request/response pipeline every concrete
// client needs — URL composition, header merging, pluggable
// (de)serialization, retry on server errors, and typed outcomes — so a
// downstream client only brings its base URL and auth middleware.
//
// # Basic Usage
//
//	client, err := restclient.New(restclient.Config{
//	    BaseURL: "https://api.example.com",
//	}, restclient.WithMiddleware(restclient.BearerAuth("token")))
//
//	out, err := client.Get(ctx, "/users/123")
//	switch {
//	case err != nil:
//	    // restclient.IsRemote(err): non-2xx with full response attached
//	case out.Missing():
//	    // GET met 404/410: the resource does not exist
//	default:
//	    data := out.Payload() // decoded JSON value
//	}
//
// # Wrapped Mode
//
// With Config.ResponseMode set to ModeWrapped, successful calls return
// a ResponseWrapper that exposes status, headers, and raw body, and
// decodes the payload lazily on first use.
//
// # Retries
//
// Responses in the 500–599 class are resent up to MaxRetries additional
// times, separated by the fixed RetryBackoff interval. Retries apply to
// all verbs uniformly; retrying a non-idempotent POST can duplicate
// side effects if the server partially processed the original request.
// Transport-level failures (connection refused, DNS, timeout) are never
// retried.
//
// # Typed Helpers
//
// The generic Get, Post, Put, Patch, and Delete functions decode the
// response body straight into a caller-supplied type:
//
//	user, err := restclient.Get[User](ctx, client, "/users/123")
package restclient
