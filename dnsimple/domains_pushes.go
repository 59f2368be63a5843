package dnsimple

import (
	"context"
	"fmt"
	"net/http"
)

// DomainPush is a pending move of a domain to another account.
type DomainPush struct {
	ID         int64  `json:"id"`
	DomainID   int64  `json:"domain_id"`
	ContactID  int64  `json:"contact_id,omitempty"`
	AccountID  int64  `json:"account_id"`
	CreatedAt  string `json:"created_at,omitempty"`
	UpdatedAt  string `json:"updated_at,omitempty"`
	AcceptedAt string `json:"accepted_at,omitempty"`
}

// DomainPushAttributes are the parameters for initiating or accepting a push.
type DomainPushAttributes struct {
	NewAccountEmail string `json:"new_account_email,omitempty"`
	ContactID       int64  `json:"contact_id,omitempty"`
}

func pushPath(accountID string, pushID int64) string {
	path := fmt.Sprintf("/%s/pushes", accountID)
	if pushID != 0 {
		path += fmt.Sprintf("/%d", pushID)
	}
	return path
}

// InitiatePush starts moving a domain to the account owning NewAccountEmail.
func (s *DomainsService) InitiatePush(ctx context.Context, accountID, domainIdentifier string, pushAttributes DomainPushAttributes) (*DomainPush, *Response, error) {
	push, resp, err := getData[DomainPush](ctx, s.client, http.MethodPost, domainPath(accountID, domainIdentifier)+"/pushes", pushAttributes)
	if err != nil {
		return nil, resp, fmt.Errorf("failed to initiate push for %q: %w", domainIdentifier, err)
	}
	return &push, resp, nil
}

// ListPushes lists the pushes waiting for the account.
func (s *DomainsService) ListPushes(ctx context.Context, accountID string, opts *ListOptions) ([]DomainPush, *Response, error) {
	pushes, resp, err := getList[DomainPush](ctx, s.client, pushPath(accountID, 0), opts)
	if err != nil {
		return nil, resp, fmt.Errorf("failed to list pushes: %w", err)
	}
	return pushes, resp, nil
}

// ListPushesAll lists every pending push for the account.
func (s *DomainsService) ListPushesAll(ctx context.Context, accountID string, opts *ListOptions) ([]DomainPush, error) {
	return ListAll(ctx, opts, func(ctx context.Context, page ListOptions) ([]DomainPush, *Response, error) {
		return s.ListPushes(ctx, accountID, &page)
	})
}

// AcceptPush accepts a push, assigning the domain to ContactID.
func (s *DomainsService) AcceptPush(ctx context.Context, accountID string, pushID int64, pushAttributes DomainPushAttributes) (*Response, error) {
	resp, err := s.client.request(ctx, http.MethodPost, pushPath(accountID, pushID), pushAttributes, nil)
	if err != nil {
		return resp, fmt.Errorf("failed to accept push %d: %w", pushID, err)
	}
	return resp, nil
}

// RejectPush rejects a push.
func (s *DomainsService) RejectPush(ctx context.Context, accountID string, pushID int64) (*Response, error) {
	resp, err := s.client.request(ctx, http.MethodDelete, pushPath(accountID, pushID), nil, nil)
	if err != nil {
		return resp, fmt.Errorf("failed to reject push %d: %w", pushID, err)
	}
	return resp, nil
}
