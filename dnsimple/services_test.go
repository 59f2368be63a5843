package dnsimple

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestServices(t *testing.T) {
	srv := newRouter(t, map[string]http.HandlerFunc{
		"GET /v2/services/wordpress": func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, dataEnvelope(map[string]any{
				"id": 1, "sid": "wordpress", "name": "WordPress", "requires_setup": true,
				"settings": []any{map[string]any{"name": "site", "label": "Site", "password": false}},
			}))
		},
		"GET /v2/1010/domains/example.com/services": func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, listEnvelope([]any{map[string]any{"id": 1, "sid": "wordpress"}}, 1, 1))
		},
		"POST /v2/1010/domains/example.com/services/wordpress": func(w http.ResponseWriter, r *http.Request) {
			body := decodeBody(t, r)
			want := map[string]any{"settings": map[string]any{"site": "blog"}}
			if diff := cmp.Diff(want, body); diff != "" {
				t.Errorf("body mismatch (-want +got):\n%s", diff)
			}
			w.WriteHeader(http.StatusNoContent)
		},
		"DELETE /v2/1010/domains/example.com/services/wordpress": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		},
	})

	c := newTestClient(t, srv.URL)
	ctx := context.Background()

	service, _, err := c.Services.GetService(ctx, "wordpress")
	if err != nil {
		t.Fatalf("GetService() error: %v", err)
	}
	if len(service.Settings) != 1 || service.Settings[0].Name != "site" {
		t.Errorf("Settings = %+v", service.Settings)
	}

	applied, _, err := c.Services.AppliedServices(ctx, "1010", "example.com", nil)
	if err != nil || len(applied) != 1 {
		t.Errorf("AppliedServices() = %v, %v", applied, err)
	}

	settings := DomainServiceSettings{Settings: map[string]string{"site": "blog"}}
	if _, err := c.Services.ApplyService(ctx, "1010", "wordpress", "example.com", settings); err != nil {
		t.Errorf("ApplyService() error: %v", err)
	}
	if _, err := c.Services.UnapplyService(ctx, "1010", "wordpress", "example.com"); err != nil {
		t.Errorf("UnapplyService() error: %v", err)
	}
}
