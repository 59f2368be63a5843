package dnsimple

import (
	"context"
	"fmt"
	"net/http"
)

// ZonesService handles the zones and zone records endpoints.
type ZonesService struct {
	client *Client
}

// Zone is a DNS zone hosted by DNSimple.
type Zone struct {
	ID                int64  `json:"id"`
	AccountID         int64  `json:"account_id"`
	Name              string `json:"name"`
	Reverse           bool   `json:"reverse"`
	Secondary         bool   `json:"secondary"`
	Active            bool   `json:"active"`
	LastTransferredAt string `json:"last_transferred_at,omitempty"`
	CreatedAt         string `json:"created_at,omitempty"`
	UpdatedAt         string `json:"updated_at,omitempty"`
}

// ZoneFile is the BIND representation of a zone.
type ZoneFile struct {
	Zone string `json:"zone"`
}

// ZoneDistribution reports whether a zone or record has propagated to
// every name server.
type ZoneDistribution struct {
	Distributed bool `json:"distributed"`
}

// ZoneListOptions filters and pages the zone list.
type ZoneListOptions struct {
	// NameLike matches zones whose name contains the value.
	NameLike string `url:"name_like,omitempty"`

	ListOptions
}

func zonePath(accountID, zoneName string) string {
	path := fmt.Sprintf("/%s/zones", accountID)
	if zoneName != "" {
		path += "/" + zoneName
	}
	return path
}

// ListZones lists one page of zones in the account.
func (s *ZonesService) ListZones(ctx context.Context, accountID string, opts *ZoneListOptions) ([]Zone, *Response, error) {
	zones, resp, err := getList[Zone](ctx, s.client, zonePath(accountID, ""), opts)
	if err != nil {
		return nil, resp, fmt.Errorf("failed to list zones: %w", err)
	}
	return zones, resp, nil
}

// ListZonesAll lists every zone in the account across all pages.
func (s *ZonesService) ListZonesAll(ctx context.Context, accountID string, opts *ZoneListOptions) ([]Zone, error) {
	var filter ZoneListOptions
	if opts != nil {
		filter = *opts
	}
	return ListAll(ctx, &filter.ListOptions, func(ctx context.Context, page ListOptions) ([]Zone, *Response, error) {
		filter.ListOptions = page
		return s.ListZones(ctx, accountID, &filter)
	})
}

// GetZone fetches a zone by name.
func (s *ZonesService) GetZone(ctx context.Context, accountID, zoneName string) (*Zone, *Response, error) {
	zone, resp, err := getData[Zone](ctx, s.client, http.MethodGet, zonePath(accountID, zoneName), nil)
	if err != nil {
		return nil, resp, fmt.Errorf("failed to get zone %q: %w", zoneName, err)
	}
	return &zone, resp, nil
}

// GetZoneFile returns the zone in BIND file format.
func (s *ZonesService) GetZoneFile(ctx context.Context, accountID, zoneName string) (*ZoneFile, *Response, error) {
	file, resp, err := getData[ZoneFile](ctx, s.client, http.MethodGet, zonePath(accountID, zoneName)+"/file", nil)
	if err != nil {
		return nil, resp, fmt.Errorf("failed to get zone file for %q: %w", zoneName, err)
	}
	return &file, resp, nil
}

// CheckZoneDistribution reports whether the zone is fully distributed.
func (s *ZonesService) CheckZoneDistribution(ctx context.Context, accountID, zoneName string) (*ZoneDistribution, *Response, error) {
	dist, resp, err := getData[ZoneDistribution](ctx, s.client, http.MethodGet, zonePath(accountID, zoneName)+"/distribution", nil)
	if err != nil {
		return nil, resp, fmt.Errorf("failed to check distribution of %q: %w", zoneName, err)
	}
	return &dist, resp, nil
}

// ActivateZoneDns enables DNS resolution for the zone.
func (s *ZonesService) ActivateZoneDns(ctx context.Context, accountID, zoneName string) (*Zone, *Response, error) {
	zone, resp, err := getData[Zone](ctx, s.client, http.MethodPut, zonePath(accountID, zoneName)+"/activation", nil)
	if err != nil {
		return nil, resp, fmt.Errorf("failed to activate DNS for %q: %w", zoneName, err)
	}
	return &zone, resp, nil
}

// DeactivateZoneDns disables DNS resolution for the zone.
func (s *ZonesService) DeactivateZoneDns(ctx context.Context, accountID, zoneName string) (*Zone, *Response, error) {
	zone, resp, err := getData[Zone](ctx, s.client, http.MethodDelete, zonePath(accountID, zoneName)+"/activation", nil)
	if err != nil {
		return nil, resp, fmt.Errorf("failed to deactivate DNS for %q: %w", zoneName, err)
	}
	return &zone, resp, nil
}
