package dnsimple

import (
	"context"
	"fmt"
	"net/http"
)

// Dnssec is the DNSSEC status of a domain.
type Dnssec struct {
	Enabled   bool   `json:"enabled"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// DelegationSignerRecord is a DS record published at the registry.
type DelegationSignerRecord struct {
	ID         int64  `json:"id,omitempty"`
	DomainID   int64  `json:"domain_id,omitempty"`
	Algorithm  string `json:"algorithm"`
	Digest     string `json:"digest,omitempty"`
	DigestType string `json:"digest_type,omitempty"`
	Keytag     string `json:"keytag,omitempty"`
	PublicKey  string `json:"public_key,omitempty"`
	CreatedAt  string `json:"created_at,omitempty"`
	UpdatedAt  string `json:"updated_at,omitempty"`
}

func dnssecPath(accountID, domainIdentifier string) string {
	return domainPath(accountID, domainIdentifier) + "/dnssec"
}

func delegationSignerRecordPath(accountID, domainIdentifier string, dsRecordID int64) string {
	path := domainPath(accountID, domainIdentifier) + "/ds_records"
	if dsRecordID != 0 {
		path += fmt.Sprintf("/%d", dsRecordID)
	}
	return path
}

// EnableDnssec turns on DNSSEC signing for a domain.
func (s *DomainsService) EnableDnssec(ctx context.Context, accountID, domainIdentifier string) (*Dnssec, *Response, error) {
	dnssec, resp, err := getData[Dnssec](ctx, s.client, http.MethodPost, dnssecPath(accountID, domainIdentifier), nil)
	if err != nil {
		return nil, resp, fmt.Errorf("failed to enable DNSSEC for %q: %w", domainIdentifier, err)
	}
	return &dnssec, resp, nil
}

// DisableDnssec turns off DNSSEC signing for a domain.
func (s *DomainsService) DisableDnssec(ctx context.Context, accountID, domainIdentifier string) (*Response, error) {
	resp, err := s.client.request(ctx, http.MethodDelete, dnssecPath(accountID, domainIdentifier), nil, nil)
	if err != nil {
		return resp, fmt.Errorf("failed to disable DNSSEC for %q: %w", domainIdentifier, err)
	}
	return resp, nil
}

// GetDnssec returns the DNSSEC status of a domain.
func (s *DomainsService) GetDnssec(ctx context.Context, accountID, domainIdentifier string) (*Dnssec, *Response, error) {
	dnssec, resp, err := getData[Dnssec](ctx, s.client, http.MethodGet, dnssecPath(accountID, domainIdentifier), nil)
	if err != nil {
		return nil, resp, fmt.Errorf("failed to get DNSSEC status for %q: %w", domainIdentifier, err)
	}
	return &dnssec, resp, nil
}

// ListDelegationSignerRecords lists the DS records of a domain.
func (s *DomainsService) ListDelegationSignerRecords(ctx context.Context, accountID, domainIdentifier string, opts *ListOptions) ([]DelegationSignerRecord, *Response, error) {
	records, resp, err := getList[DelegationSignerRecord](ctx, s.client, delegationSignerRecordPath(accountID, domainIdentifier, 0), opts)
	if err != nil {
		return nil, resp, fmt.Errorf("failed to list DS records for %q: %w", domainIdentifier, err)
	}
	return records, resp, nil
}

// ListDelegationSignerRecordsAll lists every DS record of a domain.
func (s *DomainsService) ListDelegationSignerRecordsAll(ctx context.Context, accountID, domainIdentifier string, opts *ListOptions) ([]DelegationSignerRecord, error) {
	return ListAll(ctx, opts, func(ctx context.Context, page ListOptions) ([]DelegationSignerRecord, *Response, error) {
		return s.ListDelegationSignerRecords(ctx, accountID, domainIdentifier, &page)
	})
}

// CreateDelegationSignerRecord adds a DS record to a domain.
func (s *DomainsService) CreateDelegationSignerRecord(ctx context.Context, accountID, domainIdentifier string, dsRecordAttributes DelegationSignerRecord) (*DelegationSignerRecord, *Response, error) {
	record, resp, err := getData[DelegationSignerRecord](ctx, s.client, http.MethodPost, delegationSignerRecordPath(accountID, domainIdentifier, 0), dsRecordAttributes)
	if err != nil {
		return nil, resp, fmt.Errorf("failed to create DS record for %q: %w", domainIdentifier, err)
	}
	return &record, resp, nil
}

// GetDelegationSignerRecord fetches a DS record by ID.
func (s *DomainsService) GetDelegationSignerRecord(ctx context.Context, accountID, domainIdentifier string, dsRecordID int64) (*DelegationSignerRecord, *Response, error) {
	record, resp, err := getData[DelegationSignerRecord](ctx, s.client, http.MethodGet, delegationSignerRecordPath(accountID, domainIdentifier, dsRecordID), nil)
	if err != nil {
		return nil, resp, fmt.Errorf("failed to get DS record %d for %q: %w", dsRecordID, domainIdentifier, err)
	}
	return &record, resp, nil
}

// DeleteDelegationSignerRecord removes a DS record.
func (s *DomainsService) DeleteDelegationSignerRecord(ctx context.Context, accountID, domainIdentifier string, dsRecordID int64) (*Response, error) {
	resp, err := s.client.request(ctx, http.MethodDelete, delegationSignerRecordPath(accountID, domainIdentifier, dsRecordID), nil, nil)
	if err != nil {
		return resp, fmt.Errorf("failed to delete DS record %d for %q: %w", dsRecordID, domainIdentifier, err)
	}
	return resp, nil
}
