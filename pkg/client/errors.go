package client

import (
	"fmt"
	"io"
	"net/http"

	json "github.com/goccy/go-json"
)

// APIError is returned for a non-2xx response. Code and Description are
// filled from a STAC API error body when one is present.
type APIError struct {
	Status      int    `json:"-"`
	URL         string `json:"-"`
	Code        string `json:"code"`
	Description string `json:"description"`
	Raw         []byte `json:"-"`
}

func newAPIError(resp *http.Response, u string) *APIError {
	apiErr := &APIError{Status: resp.StatusCode, URL: u}
	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return apiErr
	}
	apiErr.Raw = data
	if err := json.Unmarshal(data, apiErr); err != nil {
		// Fallback to plain message.
		apiErr.Description = string(data)
	}
	return apiErr
}

func (e *APIError) Error() string {
	if e == nil {
		return "<nil>"
	}
	switch {
	case e.Code != "" && e.Description != "":
		return fmt.Sprintf("unexpected status %d for %s: %s (%s)", e.Status, e.URL, e.Code, e.Description)
	case e.Description != "":
		return fmt.Sprintf("unexpected status %d for %s: %s", e.Status, e.URL, e.Description)
	case e.Code != "":
		return fmt.Sprintf("unexpected status %d for %s: %s", e.Status, e.URL, e.Code)
	default:
		return fmt.Sprintf("unexpected status %d for %s", e.Status, e.URL)
	}
}

// NotFound reports whether the server answered 404.
func (e *APIError) NotFound() bool {
	return e != nil && e.Status == http.StatusNotFound
}
