package dnsimple

import (
	"context"
	"fmt"
	"net/http"
)

// WebhooksService handles webhook subscriptions.
type WebhooksService struct {
	client *Client
}

// Webhook is a URL that receives account events.
type Webhook struct {
	ID  int64  `json:"id,omitempty"`
	URL string `json:"url,omitempty"`
}

func webhookPath(accountID string, webhookID int64) string {
	path := fmt.Sprintf("/%s/webhooks", accountID)
	if webhookID != 0 {
		path += fmt.Sprintf("/%d", webhookID)
	}
	return path
}

// ListWebhooks lists the webhooks of the account. The endpoint is not
// paginated; opts only controls sorting.
func (s *WebhooksService) ListWebhooks(ctx context.Context, accountID string, opts *ListOptions) ([]Webhook, *Response, error) {
	webhooks, resp, err := getList[Webhook](ctx, s.client, webhookPath(accountID, 0), opts)
	if err != nil {
		return nil, resp, fmt.Errorf("failed to list webhooks: %w", err)
	}
	return webhooks, resp, nil
}

// CreateWebhook subscribes a URL to account events.
func (s *WebhooksService) CreateWebhook(ctx context.Context, accountID string, webhookAttributes Webhook) (*Webhook, *Response, error) {
	webhook, resp, err := getData[Webhook](ctx, s.client, http.MethodPost, webhookPath(accountID, 0), webhookAttributes)
	if err != nil {
		return nil, resp, fmt.Errorf("failed to create webhook for %q: %w", webhookAttributes.URL, err)
	}
	return &webhook, resp, nil
}

// GetWebhook fetches a webhook by ID.
func (s *WebhooksService) GetWebhook(ctx context.Context, accountID string, webhookID int64) (*Webhook, *Response, error) {
	webhook, resp, err := getData[Webhook](ctx, s.client, http.MethodGet, webhookPath(accountID, webhookID), nil)
	if err != nil {
		return nil, resp, fmt.Errorf("failed to get webhook %d: %w", webhookID, err)
	}
	return &webhook, resp, nil
}

// DeleteWebhook removes a webhook.
func (s *WebhooksService) DeleteWebhook(ctx context.Context, accountID string, webhookID int64) (*Response, error) {
	resp, err := s.client.request(ctx, http.MethodDelete, webhookPath(accountID, webhookID), nil, nil)
	if err != nil {
		return resp, fmt.Errorf("failed to delete webhook %d: %w", webhookID, err)
	}
	return resp, nil
}
