package dnsimple

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestErrorResponse_StatusMapping(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrUnauthorized},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusConflict, ErrConflict},
		{http.StatusTooManyRequests, ErrRateLimited},
		{http.StatusBadRequest, ErrValidation},
		{http.StatusUnprocessableEntity, ErrValidation},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := newRouter(t, map[string]http.HandlerFunc{
				"GET /v2/1010/domains/example.com": func(w http.ResponseWriter, r *http.Request) {
					writeJSON(w, tt.status, map[string]any{"message": "boom"})
				},
			})

			c := newTestClient(t, srv.URL)
			_, _, err := c.Domains.GetDomain(context.Background(), "1010", "example.com")
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}

			var errResp *ErrorResponse
			if !errors.As(err, &errResp) {
				t.Fatalf("expected *ErrorResponse, got %T", err)
			}
			if errResp.Message != "boom" {
				t.Errorf("Message = %q, want %q", errResp.Message, "boom")
			}
		})
	}
}

func TestErrorResponse_ServerErrorHasNoSentinel(t *testing.T) {
	srv := newRouter(t, map[string]http.HandlerFunc{
		"GET /v2/whoami": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("<html>oops</html>"))
		},
	})

	c := newTestClient(t, srv.URL)
	_, _, err := c.Identity.Whoami(context.Background())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	for _, sentinel := range []error{ErrNotFound, ErrUnauthorized, ErrConflict, ErrRateLimited, ErrValidation} {
		if errors.Is(err, sentinel) {
			t.Errorf("500 should not match %v", sentinel)
		}
	}
	if !strings.Contains(err.Error(), "Internal Server Error") {
		t.Errorf("error = %q, want status text fallback", err.Error())
	}
}

func TestErrorResponse_AttributeErrors(t *testing.T) {
	srv := newRouter(t, map[string]http.HandlerFunc{
		"POST /v2/1010/zones/example.com/records": func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"message": "Validation failed",
				"errors": map[string]any{
					"type":    []string{"is not included in the list"},
					"content": []string{"can't be blank", "is invalid"},
				},
			})
		},
	})

	c := newTestClient(t, srv.URL)
	_, _, err := c.Zones.CreateRecord(context.Background(), "1010", "example.com", ZoneRecordAttributes{Type: "BOGUS"})

	var errResp *ErrorResponse
	if !errors.As(err, &errResp) {
		t.Fatalf("expected *ErrorResponse, got %v", err)
	}

	want := map[string][]string{
		"type":    {"is not included in the list"},
		"content": {"can't be blank", "is invalid"},
	}
	if diff := cmp.Diff(want, errResp.AttributeErrors); diff != "" {
		t.Errorf("AttributeErrors mismatch (-want +got):\n%s", diff)
	}

	msg := errResp.Error()
	for _, part := range []string{"POST", "/v2/1010/zones/example.com/records", "400", "Validation failed", "content: can't be blank, is invalid; type: is not included in the list"} {
		if !strings.Contains(msg, part) {
			t.Errorf("Error() = %q, missing %q", msg, part)
		}
	}
}

func TestErrorResponse_WrappedWithOperation(t *testing.T) {
	srv := newRouter(t, map[string]http.HandlerFunc{})

	c := newTestClient(t, srv.URL)
	_, _, err := c.Zones.GetZone(context.Background(), "1010", "missing.com")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.HasPrefix(err.Error(), `failed to get zone "missing.com"`) {
		t.Errorf("error = %q, want operation prefix", err.Error())
	}
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
