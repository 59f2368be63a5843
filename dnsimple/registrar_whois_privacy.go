package dnsimple

import (
	"context"
	"fmt"
	"net/http"
)

// WhoisPrivacy is the whois privacy subscription of a domain.
type WhoisPrivacy struct {
	ID        int64  `json:"id,omitempty"`
	DomainID  int64  `json:"domain_id,omitempty"`
	Enabled   bool   `json:"enabled,omitempty"`
	ExpiresOn string `json:"expires_on,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// WhoisPrivacyRenewal is a whois privacy renewal order.
type WhoisPrivacyRenewal struct {
	ID             int64  `json:"id"`
	DomainID       int64  `json:"domain_id"`
	WhoisPrivacyID int64  `json:"whois_privacy_id"`
	State          string `json:"state"`
	Enabled        bool   `json:"enabled"`
	ExpiresOn      string `json:"expires_on,omitempty"`
	CreatedAt      string `json:"created_at,omitempty"`
	UpdatedAt      string `json:"updated_at,omitempty"`
}

func whoisPrivacyPath(accountID, domainName string) string {
	return registrarPath(accountID, domainName) + "/whois_privacy"
}

// GetWhoisPrivacy returns the whois privacy status of a domain.
func (s *RegistrarService) GetWhoisPrivacy(ctx context.Context, accountID, domainName string) (*WhoisPrivacy, *Response, error) {
	privacy, resp, err := getData[WhoisPrivacy](ctx, s.client, http.MethodGet, whoisPrivacyPath(accountID, domainName), nil)
	if err != nil {
		return nil, resp, fmt.Errorf("failed to get whois privacy of %q: %w", domainName, err)
	}
	return &privacy, resp, nil
}

// EnableWhoisPrivacy turns on whois privacy, purchasing it if needed.
func (s *RegistrarService) EnableWhoisPrivacy(ctx context.Context, accountID, domainName string) (*WhoisPrivacy, *Response, error) {
	privacy, resp, err := getData[WhoisPrivacy](ctx, s.client, http.MethodPut, whoisPrivacyPath(accountID, domainName), nil)
	if err != nil {
		return nil, resp, fmt.Errorf("failed to enable whois privacy for %q: %w", domainName, err)
	}
	return &privacy, resp, nil
}

// DisableWhoisPrivacy turns off whois privacy.
func (s *RegistrarService) DisableWhoisPrivacy(ctx context.Context, accountID, domainName string) (*WhoisPrivacy, *Response, error) {
	privacy, resp, err := getData[WhoisPrivacy](ctx, s.client, http.MethodDelete, whoisPrivacyPath(accountID, domainName), nil)
	if err != nil {
		return nil, resp, fmt.Errorf("failed to disable whois privacy for %q: %w", domainName, err)
	}
	return &privacy, resp, nil
}

// RenewWhoisPrivacy renews the whois privacy subscription.
func (s *RegistrarService) RenewWhoisPrivacy(ctx context.Context, accountID, domainName string) (*WhoisPrivacyRenewal, *Response, error) {
	renewal, resp, err := getData[WhoisPrivacyRenewal](ctx, s.client, http.MethodPost, whoisPrivacyPath(accountID, domainName)+"/renewals", nil)
	if err != nil {
		return nil, resp, fmt.Errorf("failed to renew whois privacy for %q: %w", domainName, err)
	}
	return &renewal, resp, nil
}
