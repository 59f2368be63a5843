package dnsimple

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTemplatesCRUD(t *testing.T) {
	templateJSON := map[string]any{
		"id": 1, "sid": "alpha", "account_id": 1010,
		"name": "Alpha", "description": "An alpha template.",
	}

	srv := newRouter(t, map[string]http.HandlerFunc{
		"GET /v2/1010/templates": func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, listEnvelope([]any{templateJSON}, 1, 1))
		},
		"POST /v2/1010/templates": func(w http.ResponseWriter, r *http.Request) {
			body := decodeBody(t, r)
			want := map[string]any{"sid": "alpha", "name": "Alpha"}
			if diff := cmp.Diff(want, body); diff != "" {
				t.Errorf("body mismatch (-want +got):\n%s", diff)
			}
			writeJSON(w, http.StatusCreated, dataEnvelope(templateJSON))
		},
		"GET /v2/1010/templates/alpha": func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, dataEnvelope(templateJSON))
		},
		"PATCH /v2/1010/templates/alpha": func(w http.ResponseWriter, r *http.Request) {
			body := decodeBody(t, r)
			if body["description"] != "Updated." {
				t.Errorf("description = %v", body["description"])
			}
			writeJSON(w, http.StatusOK, dataEnvelope(map[string]any{"id": 1, "sid": "alpha", "description": "Updated."}))
		},
		"DELETE /v2/1010/templates/alpha": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		},
	})

	c := newTestClient(t, srv.URL)
	ctx := context.Background()

	want := &Template{ID: 1, SID: "alpha", AccountID: 1010, Name: "Alpha", Description: "An alpha template."}

	list, err := c.Templates.ListTemplatesAll(ctx, "1010", nil)
	if err != nil {
		t.Fatalf("ListTemplatesAll() error: %v", err)
	}
	if diff := cmp.Diff([]Template{*want}, list); diff != "" {
		t.Errorf("ListTemplatesAll() mismatch (-want +got):\n%s", diff)
	}

	created, _, err := c.Templates.CreateTemplate(ctx, "1010", Template{SID: "alpha", Name: "Alpha"})
	if err != nil {
		t.Fatalf("CreateTemplate() error: %v", err)
	}
	if diff := cmp.Diff(want, created); diff != "" {
		t.Errorf("CreateTemplate() mismatch (-want +got):\n%s", diff)
	}

	if _, _, err := c.Templates.GetTemplate(ctx, "1010", "alpha"); err != nil {
		t.Errorf("GetTemplate() error: %v", err)
	}

	updated, _, err := c.Templates.UpdateTemplate(ctx, "1010", "alpha", Template{Description: "Updated."})
	if err != nil {
		t.Fatalf("UpdateTemplate() error: %v", err)
	}
	if updated.Description != "Updated." {
		t.Errorf("Description = %q", updated.Description)
	}

	if _, err := c.Templates.DeleteTemplate(ctx, "1010", "alpha"); err != nil {
		t.Errorf("DeleteTemplate() error: %v", err)
	}
}

func TestTemplateRecords(t *testing.T) {
	srv := newRouter(t, map[string]http.HandlerFunc{
		"GET /v2/1010/templates/alpha/records": func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, listEnvelope([]any{
				map[string]any{"id": 296, "template_id": 268, "name": "", "content": "192.168.1.1", "ttl": 3600, "type": "A"},
			}, 1, 1))
		},
		"POST /v2/1010/templates/alpha/records": func(w http.ResponseWriter, r *http.Request) {
			body := decodeBody(t, r)
			want := map[string]any{"name": "", "type": "MX", "content": "mx.example.com", "ttl": float64(600), "priority": float64(10)}
			if diff := cmp.Diff(want, body); diff != "" {
				t.Errorf("body mismatch (-want +got):\n%s", diff)
			}
			writeJSON(w, http.StatusCreated, dataEnvelope(map[string]any{"id": 300, "template_id": 268, "name": "", "type": "MX"}))
		},
		"GET /v2/1010/templates/alpha/records/300": func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, dataEnvelope(map[string]any{"id": 300, "template_id": 268, "name": "", "type": "MX"}))
		},
		"DELETE /v2/1010/templates/alpha/records/300": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		},
	})

	c := newTestClient(t, srv.URL)
	ctx := context.Background()

	records, err := c.Templates.ListTemplateRecordsAll(ctx, "1010", "alpha", nil)
	if err != nil || len(records) != 1 {
		t.Fatalf("ListTemplateRecordsAll() = %v, %v", records, err)
	}

	created, _, err := c.Templates.CreateTemplateRecord(ctx, "1010", "alpha", TemplateRecord{
		Type: "MX", Content: "mx.example.com", TTL: 600, Priority: 10,
	})
	if err != nil {
		t.Fatalf("CreateTemplateRecord() error: %v", err)
	}
	if created.ID != 300 {
		t.Errorf("ID = %d, want 300", created.ID)
	}

	if _, _, err := c.Templates.GetTemplateRecord(ctx, "1010", "alpha", 300); err != nil {
		t.Errorf("GetTemplateRecord() error: %v", err)
	}
	if _, err := c.Templates.DeleteTemplateRecord(ctx, "1010", "alpha", 300); err != nil {
		t.Errorf("DeleteTemplateRecord() error: %v", err)
	}
}

func TestApplyTemplate(t *testing.T) {
	applied := false
	srv := newRouter(t, map[string]http.HandlerFunc{
		"POST /v2/1010/domains/example.com/templates/alpha": func(w http.ResponseWriter, r *http.Request) {
			applied = true
			w.WriteHeader(http.StatusNoContent)
		},
	})

	c := newTestClient(t, srv.URL)
	if _, err := c.Templates.ApplyTemplate(context.Background(), "1010", "alpha", "example.com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !applied {
		t.Error("expected the template to be applied")
	}
}
