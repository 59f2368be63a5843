package dnsimple

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
)

// Sentinel errors for classifying API failures. An *ErrorResponse matches
// one of these through errors.Is based on its HTTP status.
//
//	if errors.Is(err, dnsimple.ErrNotFound) { ... }
var (
	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrUnauthorized indicates invalid, expired, or missing credentials,
	// or a token without access to the requested account.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrRateLimited indicates the API throttled the request.
	ErrRateLimited = errors.New("rate limited")

	// ErrConflict indicates a state or uniqueness conflict.
	ErrConflict = errors.New("conflict")

	// ErrValidation indicates the API rejected the request parameters.
	ErrValidation = errors.New("validation failed")
)

// ErrorResponse is returned for any non-2xx response. Message and
// AttributeErrors come from the provider error body when it has one.
type ErrorResponse struct {
	HTTPResponse *http.Response `json:"-"`

	// Message is the human readable error from the API.
	Message string `json:"message"`

	// AttributeErrors maps request attributes to validation messages.
	AttributeErrors map[string][]string `json:"errors,omitempty"`
}

func (r *ErrorResponse) Error() string {
	var b strings.Builder
	if r.HTTPResponse != nil && r.HTTPResponse.Request != nil {
		fmt.Fprintf(&b, "%s %s: %d",
			r.HTTPResponse.Request.Method,
			r.HTTPResponse.Request.URL.Path,
			r.HTTPResponse.StatusCode,
		)
	} else if r.HTTPResponse != nil {
		fmt.Fprintf(&b, "%d", r.HTTPResponse.StatusCode)
	}

	msg := r.Message
	if msg == "" && r.HTTPResponse != nil {
		msg = http.StatusText(r.HTTPResponse.StatusCode)
	}
	if msg != "" {
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		b.WriteString(msg)
	}

	if len(r.AttributeErrors) > 0 {
		b.WriteString(" (")
		b.WriteString(attributeErrorString(r.AttributeErrors))
		b.WriteString(")")
	}

	return b.String()
}

// Is reports whether the response status maps to target.
func (r *ErrorResponse) Is(target error) bool {
	if r.HTTPResponse == nil {
		return false
	}
	switch r.HTTPResponse.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return target == ErrUnauthorized
	case http.StatusNotFound:
		return target == ErrNotFound
	case http.StatusConflict:
		return target == ErrConflict
	case http.StatusTooManyRequests:
		return target == ErrRateLimited
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return target == ErrValidation
	}
	return false
}

// attributeErrorString renders attribute errors in a stable order.
func attributeErrorString(attrs map[string][]string) string {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+strings.Join(attrs[k], ", "))
	}
	return strings.Join(parts, "; ")
}

// checkResponse returns nil for 2xx responses and an *ErrorResponse
// otherwise. Bodies that are not JSON leave Message empty.
func checkResponse(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	errResp := &ErrorResponse{HTTPResponse: resp}
	data, err := io.ReadAll(resp.Body)
	if err == nil && len(data) > 0 {
		_ = json.Unmarshal(data, errResp)
	}
	return errResp
}
