package restclient

import (
	"context"
	"encoding/base64"
)

// Auth middlewares cover the common credential schemes downstream
// clients configure at construction. Anything beyond header injection
// belongs in a custom Middleware.

// BearerAuth returns a middleware that sets an Authorization header
// with a bearer token.
func BearerAuth(token string) Middleware {
	return func(_ context.Context, req *Request) error {
		req.SetHeader("Authorization", "Bearer "+token)
		return nil
	}
}

// BasicAuth returns a middleware that sets an Authorization header
// with HTTP Basic credentials.
func BasicAuth(username, password string) Middleware {
	cred := base64.StdEncoding.EncodeToString([]byte(username + ":" + password))
	return func(_ context.Context, req *Request) error {
		req.SetHeader("Authorization", "Basic "+cred)
		return nil
	}
}

// APIKeyAuth returns a middleware that sets an API key header. An
// empty header name defaults to X-API-Key.
func APIKeyAuth(key, headerName string) Middleware {
	if headerName == "" {
		headerName = "X-API-Key"
	}
	return func(_ context.Context, req *Request) error {
		req.SetHeader(headerName, key)
		return nil
	}
}
