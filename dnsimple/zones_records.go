package dnsimple

import (
	"context"
	"fmt"
	"net/http"
)

// ZoneRecord is a single resource record in a zone.
type ZoneRecord struct {
	ID           int64    `json:"id,omitempty"`
	ZoneID       string   `json:"zone_id,omitempty"`
	ParentID     int64    `json:"parent_id,omitempty"`
	Type         string   `json:"type,omitempty"`
	Name         string   `json:"name"`
	Content      string   `json:"content,omitempty"`
	TTL          int      `json:"ttl,omitempty"`
	Priority     int      `json:"priority,omitempty"`
	SystemRecord bool     `json:"system_record,omitempty"`
	Regions      []string `json:"regions,omitempty"`
	CreatedAt    string   `json:"created_at,omitempty"`
	UpdatedAt    string   `json:"updated_at,omitempty"`
}

// ZoneRecordAttributes are the parameters for creating or updating a record.
// Name is a pointer so that an empty string can target the zone apex; nil
// leaves the name unchanged on update.
type ZoneRecordAttributes struct {
	ZoneID   string   `json:"zone_id,omitempty"`
	Type     string   `json:"type,omitempty"`
	Name     *string  `json:"name,omitempty"`
	Content  string   `json:"content,omitempty"`
	TTL      int      `json:"ttl,omitempty"`
	Priority int      `json:"priority,omitempty"`
	Regions  []string `json:"regions,omitempty"`
}

// ZoneRecordListOptions filters and pages the record list.
type ZoneRecordListOptions struct {
	// Name matches records with exactly this name. An empty pointer value
	// selects apex records.
	Name *string `url:"name,omitempty"`

	// NameLike matches records whose name contains the value.
	NameLike string `url:"name_like,omitempty"`

	// Type matches records of the given type.
	Type string `url:"type,omitempty"`

	ListOptions
}

func zoneRecordPath(accountID, zoneName string, recordID int64) string {
	path := zonePath(accountID, zoneName) + "/records"
	if recordID != 0 {
		path += fmt.Sprintf("/%d", recordID)
	}
	return path
}

// ListRecords lists one page of records in a zone.
func (s *ZonesService) ListRecords(ctx context.Context, accountID, zoneName string, opts *ZoneRecordListOptions) ([]ZoneRecord, *Response, error) {
	records, resp, err := getList[ZoneRecord](ctx, s.client, zoneRecordPath(accountID, zoneName, 0), opts)
	if err != nil {
		return nil, resp, fmt.Errorf("failed to list records for %q: %w", zoneName, err)
	}
	return records, resp, nil
}

// ListRecordsAll lists every record in a zone across all pages.
func (s *ZonesService) ListRecordsAll(ctx context.Context, accountID, zoneName string, opts *ZoneRecordListOptions) ([]ZoneRecord, error) {
	var filter ZoneRecordListOptions
	if opts != nil {
		filter = *opts
	}
	return ListAll(ctx, &filter.ListOptions, func(ctx context.Context, page ListOptions) ([]ZoneRecord, *Response, error) {
		filter.ListOptions = page
		return s.ListRecords(ctx, accountID, zoneName, &filter)
	})
}

// CreateRecord adds a record to a zone.
func (s *ZonesService) CreateRecord(ctx context.Context, accountID, zoneName string, recordAttributes ZoneRecordAttributes) (*ZoneRecord, *Response, error) {
	record, resp, err := getData[ZoneRecord](ctx, s.client, http.MethodPost, zoneRecordPath(accountID, zoneName, 0), recordAttributes)
	if err != nil {
		return nil, resp, fmt.Errorf("failed to create record for %q: %w", zoneName, err)
	}
	return &record, resp, nil
}

// GetRecord fetches a record by ID.
func (s *ZonesService) GetRecord(ctx context.Context, accountID, zoneName string, recordID int64) (*ZoneRecord, *Response, error) {
	record, resp, err := getData[ZoneRecord](ctx, s.client, http.MethodGet, zoneRecordPath(accountID, zoneName, recordID), nil)
	if err != nil {
		return nil, resp, fmt.Errorf("failed to get record %d for %q: %w", recordID, zoneName, err)
	}
	return &record, resp, nil
}

// UpdateRecord applies the non-empty attributes to an existing record.
func (s *ZonesService) UpdateRecord(ctx context.Context, accountID, zoneName string, recordID int64, recordAttributes ZoneRecordAttributes) (*ZoneRecord, *Response, error) {
	record, resp, err := getData[ZoneRecord](ctx, s.client, http.MethodPatch, zoneRecordPath(accountID, zoneName, recordID), recordAttributes)
	if err != nil {
		return nil, resp, fmt.Errorf("failed to update record %d for %q: %w", recordID, zoneName, err)
	}
	return &record, resp, nil
}

// DeleteRecord removes a record from a zone.
func (s *ZonesService) DeleteRecord(ctx context.Context, accountID, zoneName string, recordID int64) (*Response, error) {
	resp, err := s.client.request(ctx, http.MethodDelete, zoneRecordPath(accountID, zoneName, recordID), nil, nil)
	if err != nil {
		return resp, fmt.Errorf("failed to delete record %d for %q: %w", recordID, zoneName, err)
	}
	return resp, nil
}

// CheckZoneRecordDistribution reports whether a record change has reached
// every name server.
func (s *ZonesService) CheckZoneRecordDistribution(ctx context.Context, accountID, zoneName string, recordID int64) (*ZoneDistribution, *Response, error) {
	dist, resp, err := getData[ZoneDistribution](ctx, s.client, http.MethodGet, zoneRecordPath(accountID, zoneName, recordID)+"/distribution", nil)
	if err != nil {
		return nil, resp, fmt.Errorf("failed to check distribution of record %d for %q: %w", recordID, zoneName, err)
	}
	return &dist, resp, nil
}
