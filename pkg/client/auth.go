package client

import (
	"context"
	"net/http"
)

// BearerToken returns a Middleware that sends token as a bearer
// Authorization header.
func BearerToken(token string) Middleware {
	return func(_ context.Context, req *http.Request) error {
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		return nil
	}
}

// APIKey returns a Middleware that sends key in the named header. An
// empty header name means "Authorization".
func APIKey(header, key string) Middleware {
	if header == "" {
		header = "Authorization"
	}
	return func(_ context.Context, req *http.Request) error {
		if key != "" {
			req.Header.Set(header, key)
		}
		return nil
	}
}
