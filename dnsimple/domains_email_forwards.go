package dnsimple

import (
	"context"
	"fmt"
	"net/http"
)

// EmailForward forwards mail for an address on the domain to another address.
type EmailForward struct {
	ID        int64  `json:"id,omitempty"`
	DomainID  int64  `json:"domain_id,omitempty"`
	AliasName string `json:"alias_name,omitempty"`

	// From is the local part or full address being forwarded.
	From string `json:"from,omitempty"`

	// To is the destination address.
	To string `json:"to,omitempty"`

	DestinationEmail string `json:"destination_email,omitempty"`
	Active           bool   `json:"active,omitempty"`
	CreatedAt        string `json:"created_at,omitempty"`
	UpdatedAt        string `json:"updated_at,omitempty"`
}

func emailForwardPath(accountID, domainIdentifier string, forwardID int64) string {
	path := domainPath(accountID, domainIdentifier) + "/email_forwards"
	if forwardID != 0 {
		path += fmt.Sprintf("/%d", forwardID)
	}
	return path
}

// ListEmailForwards lists the email forwards of a domain.
func (s *DomainsService) ListEmailForwards(ctx context.Context, accountID, domainIdentifier string, opts *ListOptions) ([]EmailForward, *Response, error) {
	forwards, resp, err := getList[EmailForward](ctx, s.client, emailForwardPath(accountID, domainIdentifier, 0), opts)
	if err != nil {
		return nil, resp, fmt.Errorf("failed to list email forwards for %q: %w", domainIdentifier, err)
	}
	return forwards, resp, nil
}

// ListEmailForwardsAll lists every email forward of a domain.
func (s *DomainsService) ListEmailForwardsAll(ctx context.Context, accountID, domainIdentifier string, opts *ListOptions) ([]EmailForward, error) {
	return ListAll(ctx, opts, func(ctx context.Context, page ListOptions) ([]EmailForward, *Response, error) {
		return s.ListEmailForwards(ctx, accountID, domainIdentifier, &page)
	})
}

// CreateEmailForward adds an email forward to a domain.
func (s *DomainsService) CreateEmailForward(ctx context.Context, accountID, domainIdentifier string, forwardAttributes EmailForward) (*EmailForward, *Response, error) {
	forward, resp, err := getData[EmailForward](ctx, s.client, http.MethodPost, emailForwardPath(accountID, domainIdentifier, 0), forwardAttributes)
	if err != nil {
		return nil, resp, fmt.Errorf("failed to create email forward for %q: %w", domainIdentifier, err)
	}
	return &forward, resp, nil
}

// GetEmailForward fetches an email forward by ID.
func (s *DomainsService) GetEmailForward(ctx context.Context, accountID, domainIdentifier string, forwardID int64) (*EmailForward, *Response, error) {
	forward, resp, err := getData[EmailForward](ctx, s.client, http.MethodGet, emailForwardPath(accountID, domainIdentifier, forwardID), nil)
	if err != nil {
		return nil, resp, fmt.Errorf("failed to get email forward %d for %q: %w", forwardID, domainIdentifier, err)
	}
	return &forward, resp, nil
}

// DeleteEmailForward removes an email forward.
func (s *DomainsService) DeleteEmailForward(ctx context.Context, accountID, domainIdentifier string, forwardID int64) (*Response, error) {
	resp, err := s.client.request(ctx, http.MethodDelete, emailForwardPath(accountID, domainIdentifier, forwardID), nil, nil)
	if err != nil {
		return resp, fmt.Errorf("failed to delete email forward %d for %q: %w", forwardID, domainIdentifier, err)
	}
	return resp, nil
}
