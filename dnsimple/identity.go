package dnsimple

import (
	"context"
	"fmt"
	"net/http"
)

// IdentityService handles the identity (whoami) endpoint.
type IdentityService struct {
	client *Client
}

// User is a DNSimple user.
type User struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// WhoamiData describes the authenticated entity. A user token populates
// User; an account token populates Account.
type WhoamiData struct {
	User    *User    `json:"user,omitempty"`
	Account *Account `json:"account,omitempty"`
}

// Whoami returns the identity behind the current credentials.
func (s *IdentityService) Whoami(ctx context.Context) (*WhoamiData, *Response, error) {
	data, resp, err := getData[WhoamiData](ctx, s.client, http.MethodGet, "/whoami", nil)
	if err != nil {
		return nil, resp, fmt.Errorf("failed to get identity: %w", err)
	}
	return &data, resp, nil
}

// Whoami is a shortcut for c.Identity.Whoami.
func Whoami(ctx context.Context, c *Client) (*WhoamiData, error) {
	data, _, err := c.Identity.Whoami(ctx)
	return data, err
}
