package dnsimple

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// testRecordJSON returns a sample zone record object.
func testRecordJSON(id int, name, typ, content string, ttl, priority int) map[string]any {
	return map[string]any{
		"id":            id,
		"zone_id":       "example.com",
		"parent_id":     nil,
		"name":          name,
		"type":          typ,
		"content":       content,
		"ttl":           ttl,
		"priority":      priority,
		"system_record": false,
		"regions":       []string{"global"},
		"created_at":    "2016-03-22T10:20:53Z",
		"updated_at":    "2016-10-05T09:26:38Z",
	}
}

func TestListZones_Filters(t *testing.T) {
	srv := newRouter(t, map[string]http.HandlerFunc{
		"GET /v2/1010/zones": func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			if q.Get("name_like") != "example" || q.Get("sort") != "name:desc" {
				t.Errorf("unexpected query %q", r.URL.RawQuery)
			}
			writeJSON(w, http.StatusOK, listEnvelope([]any{
				map[string]any{"id": 1, "account_id": 1010, "name": "example-alpha.com", "reverse": false, "active": true},
			}, 1, 1))
		},
	})

	c := newTestClient(t, srv.URL)
	zones, resp, err := c.Zones.ListZones(context.Background(), "1010", &ZoneListOptions{
		NameLike:    "example",
		ListOptions: ListOptions{Sort: "name:desc"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []Zone{{ID: 1, AccountID: 1010, Name: "example-alpha.com", Active: true}}
	if diff := cmp.Diff(want, zones); diff != "" {
		t.Errorf("ListZones() mismatch (-want +got):\n%s", diff)
	}
	wantPage := &Pagination{CurrentPage: 1, PerPage: 1, TotalEntries: 1, TotalPages: 1}
	if diff := cmp.Diff(wantPage, resp.Pagination); diff != "" {
		t.Errorf("Pagination mismatch (-want +got):\n%s", diff)
	}
}

func TestGetZoneFile(t *testing.T) {
	srv := newRouter(t, map[string]http.HandlerFunc{
		"GET /v2/1010/zones/example.com/file": func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, dataEnvelope(map[string]any{"zone": "$ORIGIN example.com.\n"}))
		},
	})

	c := newTestClient(t, srv.URL)
	file, _, err := c.Zones.GetZoneFile(context.Background(), "1010", "example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if file.Zone != "$ORIGIN example.com.\n" {
		t.Errorf("Zone = %q", file.Zone)
	}
}

func TestZoneDistributionAndActivation(t *testing.T) {
	srv := newRouter(t, map[string]http.HandlerFunc{
		"GET /v2/1010/zones/example.com/distribution": func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, dataEnvelope(map[string]any{"distributed": true}))
		},
		"GET /v2/1010/zones/example.com/records/5/distribution": func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, dataEnvelope(map[string]any{"distributed": false}))
		},
		"PUT /v2/1010/zones/example.com/activation": func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, dataEnvelope(map[string]any{"id": 1, "name": "example.com", "active": true}))
		},
		"DELETE /v2/1010/zones/example.com/activation": func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, dataEnvelope(map[string]any{"id": 1, "name": "example.com", "active": false}))
		},
	})

	c := newTestClient(t, srv.URL)
	ctx := context.Background()

	dist, _, err := c.Zones.CheckZoneDistribution(ctx, "1010", "example.com")
	if err != nil || !dist.Distributed {
		t.Errorf("CheckZoneDistribution() = %+v, %v", dist, err)
	}

	recDist, _, err := c.Zones.CheckZoneRecordDistribution(ctx, "1010", "example.com", 5)
	if err != nil || recDist.Distributed {
		t.Errorf("CheckZoneRecordDistribution() = %+v, %v", recDist, err)
	}

	zone, _, err := c.Zones.ActivateZoneDns(ctx, "1010", "example.com")
	if err != nil || !zone.Active {
		t.Errorf("ActivateZoneDns() = %+v, %v", zone, err)
	}

	zone, _, err = c.Zones.DeactivateZoneDns(ctx, "1010", "example.com")
	if err != nil || zone.Active {
		t.Errorf("DeactivateZoneDns() = %+v, %v", zone, err)
	}
}

func TestListRecordsAll_AccumulatesPages(t *testing.T) {
	srv := newRouter(t, map[string]http.HandlerFunc{
		"GET /v2/1010/zones/example.com/records": func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			if q.Get("type") != "A" {
				t.Errorf("type filter = %q, want A", q.Get("type"))
			}
			switch q.Get("page") {
			case "1":
				writeJSON(w, http.StatusOK, listEnvelope([]any{
					testRecordJSON(1, "", "A", "1.2.3.4", 3600, 0),
				}, 1, 2))
			case "2":
				writeJSON(w, http.StatusOK, listEnvelope([]any{
					testRecordJSON(2, "www", "A", "1.2.3.5", 600, 0),
				}, 2, 2))
			default:
				t.Errorf("unexpected page %q", q.Get("page"))
			}
		},
	})

	c := newTestClient(t, srv.URL)
	records, err := c.Zones.ListRecordsAll(context.Background(), "1010", "example.com", &ZoneRecordListOptions{Type: "A"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Name != "" || records[1].Name != "www" {
		t.Errorf("unexpected names: %q, %q", records[0].Name, records[1].Name)
	}
	if diff := cmp.Diff([]string{"global"}, records[1].Regions); diff != "" {
		t.Errorf("Regions mismatch (-want +got):\n%s", diff)
	}
}

func TestCreateRecord_ApexNameIsSent(t *testing.T) {
	srv := newRouter(t, map[string]http.HandlerFunc{
		"POST /v2/1010/zones/example.com/records": func(w http.ResponseWriter, r *http.Request) {
			body := decodeBody(t, r)
			name, ok := body["name"]
			if !ok || name != "" {
				t.Errorf("expected empty name in body, got %v (present=%v)", name, ok)
			}
			if body["type"] != "MX" || body["content"] != "mx.example.com" || body["priority"] != float64(10) {
				t.Errorf("unexpected body %v", body)
			}
			writeJSON(w, http.StatusCreated, dataEnvelope(testRecordJSON(7, "", "MX", "mx.example.com", 3600, 10)))
		},
	})

	c := newTestClient(t, srv.URL)
	rec, _, err := c.Zones.CreateRecord(context.Background(), "1010", "example.com", ZoneRecordAttributes{
		Name:     String(""),
		Type:     "MX",
		Content:  "mx.example.com",
		Priority: 10,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := &ZoneRecord{
		ID: 7, ZoneID: "example.com", Name: "", Type: "MX", Content: "mx.example.com",
		TTL: 3600, Priority: 10, Regions: []string{"global"},
		CreatedAt: "2016-03-22T10:20:53Z", UpdatedAt: "2016-10-05T09:26:38Z",
	}
	if diff := cmp.Diff(want, rec); diff != "" {
		t.Errorf("CreateRecord() mismatch (-want +got):\n%s", diff)
	}
}

func TestUpdateRecord_OmitsUnsetName(t *testing.T) {
	srv := newRouter(t, map[string]http.HandlerFunc{
		"PATCH /v2/1010/zones/example.com/records/5": func(w http.ResponseWriter, r *http.Request) {
			body := decodeBody(t, r)
			if _, ok := body["name"]; ok {
				t.Errorf("name should be omitted, body = %v", body)
			}
			if body["content"] != "5.6.7.8" {
				t.Errorf("content = %v", body["content"])
			}
			writeJSON(w, http.StatusOK, dataEnvelope(testRecordJSON(5, "www", "A", "5.6.7.8", 3600, 0)))
		},
	})

	c := newTestClient(t, srv.URL)
	rec, _, err := c.Zones.UpdateRecord(context.Background(), "1010", "example.com", 5, ZoneRecordAttributes{Content: "5.6.7.8"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Content != "5.6.7.8" {
		t.Errorf("Content = %q", rec.Content)
	}
}

func TestGetAndDeleteRecord(t *testing.T) {
	srv := newRouter(t, map[string]http.HandlerFunc{
		"GET /v2/1010/zones/example.com/records/5": func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, dataEnvelope(testRecordJSON(5, "www", "CNAME", "example.com", 3600, 0)))
		},
		"DELETE /v2/1010/zones/example.com/records/5": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		},
	})

	c := newTestClient(t, srv.URL)
	ctx := context.Background()

	rec, _, err := c.Zones.GetRecord(ctx, "1010", "example.com", 5)
	if err != nil {
		t.Fatalf("GetRecord() error: %v", err)
	}
	if rec.Type != "CNAME" {
		t.Errorf("Type = %q, want CNAME", rec.Type)
	}

	if _, err := c.Zones.DeleteRecord(ctx, "1010", "example.com", 5); err != nil {
		t.Fatalf("DeleteRecord() error: %v", err)
	}
}
