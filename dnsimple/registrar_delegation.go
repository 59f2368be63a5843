package dnsimple

import (
	"context"
	"fmt"
	"net/http"
)

// Delegation is the list of name servers a domain is delegated to.
type Delegation []string

// VanityNameServer is a name server under the customer's own domain.
type VanityNameServer struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	IPv4      string `json:"ipv4"`
	IPv6      string `json:"ipv6"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

func delegationPath(accountID, domainName string) string {
	return registrarPath(accountID, domainName) + "/delegation"
}

// GetDomainDelegation returns the name servers of a domain.
func (s *RegistrarService) GetDomainDelegation(ctx context.Context, accountID, domainName string) (Delegation, *Response, error) {
	delegation, resp, err := getData[Delegation](ctx, s.client, http.MethodGet, delegationPath(accountID, domainName), nil)
	if err != nil {
		return nil, resp, fmt.Errorf("failed to get delegation of %q: %w", domainName, err)
	}
	return delegation, resp, nil
}

// ChangeDomainDelegation replaces the name servers of a domain.
func (s *RegistrarService) ChangeDomainDelegation(ctx context.Context, accountID, domainName string, newDelegation Delegation) (Delegation, *Response, error) {
	delegation, resp, err := getData[Delegation](ctx, s.client, http.MethodPut, delegationPath(accountID, domainName), newDelegation)
	if err != nil {
		return nil, resp, fmt.Errorf("failed to change delegation of %q: %w", domainName, err)
	}
	return delegation, resp, nil
}

// ChangeDomainDelegationToVanity delegates a domain to vanity name servers.
func (s *RegistrarService) ChangeDomainDelegationToVanity(ctx context.Context, accountID, domainName string, newDelegation Delegation) ([]VanityNameServer, *Response, error) {
	servers, resp, err := getData[[]VanityNameServer](ctx, s.client, http.MethodPut, delegationPath(accountID, domainName)+"/vanity", newDelegation)
	if err != nil {
		return nil, resp, fmt.Errorf("failed to change delegation of %q to vanity name servers: %w", domainName, err)
	}
	return servers, resp, nil
}

// ChangeDomainDelegationFromVanity moves a domain back to the default name servers.
func (s *RegistrarService) ChangeDomainDelegationFromVanity(ctx context.Context, accountID, domainName string) (*Response, error) {
	resp, err := s.client.request(ctx, http.MethodDelete, delegationPath(accountID, domainName)+"/vanity", nil, nil)
	if err != nil {
		return resp, fmt.Errorf("failed to change delegation of %q from vanity name servers: %w", domainName, err)
	}
	return resp, nil
}
