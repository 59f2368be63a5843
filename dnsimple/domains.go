package dnsimple

import (
	"context"
	"fmt"
	"net/http"
)

// DomainsService handles the domains endpoints and their sub-resources:
// collaborators, DNSSEC, delegation signer records, email forwards and pushes.
type DomainsService struct {
	client *Client
}

// Domain is a domain in a DNSimple account.
type Domain struct {
	ID           int64  `json:"id"`
	AccountID    int64  `json:"account_id"`
	RegistrantID int64  `json:"registrant_id,omitempty"`
	Name         string `json:"name"`
	UnicodeName  string `json:"unicode_name"`
	State        string `json:"state"`
	AutoRenew    bool   `json:"auto_renew"`
	PrivateWhois bool   `json:"private_whois"`
	ExpiresAt    string `json:"expires_at,omitempty"`
	CreatedAt    string `json:"created_at,omitempty"`
	UpdatedAt    string `json:"updated_at,omitempty"`
}

// DomainListOptions filters and pages the domain list.
type DomainListOptions struct {
	// NameLike matches domains whose name contains the value.
	NameLike string `url:"name_like,omitempty"`

	// RegistrantID matches domains registered to the given contact.
	RegistrantID int64 `url:"registrant_id,omitempty"`

	ListOptions
}

// domainPath returns the domains collection path, or a single domain path
// when domainIdentifier is not empty.
func domainPath(accountID, domainIdentifier string) string {
	path := fmt.Sprintf("/%s/domains", accountID)
	if domainIdentifier != "" {
		path += "/" + domainIdentifier
	}
	return path
}

// ListDomains lists one page of domains in the account.
func (s *DomainsService) ListDomains(ctx context.Context, accountID string, opts *DomainListOptions) ([]Domain, *Response, error) {
	domains, resp, err := getList[Domain](ctx, s.client, domainPath(accountID, ""), opts)
	if err != nil {
		return nil, resp, fmt.Errorf("failed to list domains: %w", err)
	}
	return domains, resp, nil
}

// ListDomainsAll lists every domain in the account across all pages.
func (s *DomainsService) ListDomainsAll(ctx context.Context, accountID string, opts *DomainListOptions) ([]Domain, error) {
	var filter DomainListOptions
	if opts != nil {
		filter = *opts
	}
	return ListAll(ctx, &filter.ListOptions, func(ctx context.Context, page ListOptions) ([]Domain, *Response, error) {
		filter.ListOptions = page
		return s.ListDomains(ctx, accountID, &filter)
	})
}

// CreateDomain adds a domain to the account without registering it.
func (s *DomainsService) CreateDomain(ctx context.Context, accountID string, domainAttributes Domain) (*Domain, *Response, error) {
	body := struct {
		Name string `json:"name"`
	}{Name: domainAttributes.Name}

	domain, resp, err := getData[Domain](ctx, s.client, http.MethodPost, domainPath(accountID, ""), body)
	if err != nil {
		return nil, resp, fmt.Errorf("failed to create domain %q: %w", domainAttributes.Name, err)
	}
	return &domain, resp, nil
}

// GetDomain fetches a domain by name or ID.
func (s *DomainsService) GetDomain(ctx context.Context, accountID, domainIdentifier string) (*Domain, *Response, error) {
	domain, resp, err := getData[Domain](ctx, s.client, http.MethodGet, domainPath(accountID, domainIdentifier), nil)
	if err != nil {
		return nil, resp, fmt.Errorf("failed to get domain %q: %w", domainIdentifier, err)
	}
	return &domain, resp, nil
}

// DeleteDomain removes a domain from the account.
func (s *DomainsService) DeleteDomain(ctx context.Context, accountID, domainIdentifier string) (*Response, error) {
	resp, err := s.client.request(ctx, http.MethodDelete, domainPath(accountID, domainIdentifier), nil, nil)
	if err != nil {
		return resp, fmt.Errorf("failed to delete domain %q: %w", domainIdentifier, err)
	}
	return resp, nil
}
