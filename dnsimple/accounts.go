package dnsimple

import (
	"context"
	"fmt"
)

// AccountsService handles the accounts endpoint.
type AccountsService struct {
	client *Client
}

// Account is a DNSimple account.
type Account struct {
	ID             int64  `json:"id"`
	Email          string `json:"email"`
	PlanIdentifier string `json:"plan_identifier,omitempty"`
	CreatedAt      string `json:"created_at,omitempty"`
	UpdatedAt      string `json:"updated_at,omitempty"`
}

// ListAccounts lists the accounts the current credentials can access.
// Account tokens only see their own account.
func (s *AccountsService) ListAccounts(ctx context.Context, opts *ListOptions) ([]Account, *Response, error) {
	accounts, resp, err := getList[Account](ctx, s.client, "/accounts", opts)
	if err != nil {
		return nil, resp, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, resp, nil
}
