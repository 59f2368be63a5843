package dnsimple

import (
	"context"
	"fmt"
	"net/http"
)

// TemplatesService handles record templates and their application to domains.
type TemplatesService struct {
	client *Client
}

// Template is a reusable set of records.
type Template struct {
	ID          int64  `json:"id,omitempty"`
	SID         string `json:"sid,omitempty"`
	AccountID   int64  `json:"account_id,omitempty"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

// TemplateRecord is a record inside a template.
type TemplateRecord struct {
	ID         int64  `json:"id,omitempty"`
	TemplateID int64  `json:"template_id,omitempty"`
	Name       string `json:"name"`
	Content    string `json:"content,omitempty"`
	TTL        int    `json:"ttl,omitempty"`
	Type       string `json:"type,omitempty"`
	Priority   int    `json:"priority,omitempty"`
	CreatedAt  string `json:"created_at,omitempty"`
	UpdatedAt  string `json:"updated_at,omitempty"`
}

func templatePath(accountID, templateIdentifier string) string {
	path := fmt.Sprintf("/%s/templates", accountID)
	if templateIdentifier != "" {
		path += "/" + templateIdentifier
	}
	return path
}

func templateRecordPath(accountID, templateIdentifier string, recordID int64) string {
	path := templatePath(accountID, templateIdentifier) + "/records"
	if recordID != 0 {
		path += fmt.Sprintf("/%d", recordID)
	}
	return path
}

// ListTemplates lists the templates in the account.
func (s *TemplatesService) ListTemplates(ctx context.Context, accountID string, opts *ListOptions) ([]Template, *Response, error) {
	templates, resp, err := getList[Template](ctx, s.client, templatePath(accountID, ""), opts)
	if err != nil {
		return nil, resp, fmt.Errorf("failed to list templates: %w", err)
	}
	return templates, resp, nil
}

// ListTemplatesAll lists every template in the account.
func (s *TemplatesService) ListTemplatesAll(ctx context.Context, accountID string, opts *ListOptions) ([]Template, error) {
	return ListAll(ctx, opts, func(ctx context.Context, page ListOptions) ([]Template, *Response, error) {
		return s.ListTemplates(ctx, accountID, &page)
	})
}

// CreateTemplate creates a template.
func (s *TemplatesService) CreateTemplate(ctx context.Context, accountID string, templateAttributes Template) (*Template, *Response, error) {
	template, resp, err := getData[Template](ctx, s.client, http.MethodPost, templatePath(accountID, ""), templateAttributes)
	if err != nil {
		return nil, resp, fmt.Errorf("failed to create template %q: %w", templateAttributes.Name, err)
	}
	return &template, resp, nil
}

// GetTemplate fetches a template by ID or SID.
func (s *TemplatesService) GetTemplate(ctx context.Context, accountID, templateIdentifier string) (*Template, *Response, error) {
	template, resp, err := getData[Template](ctx, s.client, http.MethodGet, templatePath(accountID, templateIdentifier), nil)
	if err != nil {
		return nil, resp, fmt.Errorf("failed to get template %q: %w", templateIdentifier, err)
	}
	return &template, resp, nil
}

// UpdateTemplate changes a template's name, SID or description.
func (s *TemplatesService) UpdateTemplate(ctx context.Context, accountID, templateIdentifier string, templateAttributes Template) (*Template, *Response, error) {
	template, resp, err := getData[Template](ctx, s.client, http.MethodPatch, templatePath(accountID, templateIdentifier), templateAttributes)
	if err != nil {
		return nil, resp, fmt.Errorf("failed to update template %q: %w", templateIdentifier, err)
	}
	return &template, resp, nil
}

// DeleteTemplate removes a template.
func (s *TemplatesService) DeleteTemplate(ctx context.Context, accountID, templateIdentifier string) (*Response, error) {
	resp, err := s.client.request(ctx, http.MethodDelete, templatePath(accountID, templateIdentifier), nil, nil)
	if err != nil {
		return resp, fmt.Errorf("failed to delete template %q: %w", templateIdentifier, err)
	}
	return resp, nil
}

// ListTemplateRecords lists the records of a template.
func (s *TemplatesService) ListTemplateRecords(ctx context.Context, accountID, templateIdentifier string, opts *ListOptions) ([]TemplateRecord, *Response, error) {
	records, resp, err := getList[TemplateRecord](ctx, s.client, templateRecordPath(accountID, templateIdentifier, 0), opts)
	if err != nil {
		return nil, resp, fmt.Errorf("failed to list records of template %q: %w", templateIdentifier, err)
	}
	return records, resp, nil
}

// ListTemplateRecordsAll lists every record of a template.
func (s *TemplatesService) ListTemplateRecordsAll(ctx context.Context, accountID, templateIdentifier string, opts *ListOptions) ([]TemplateRecord, error) {
	return ListAll(ctx, opts, func(ctx context.Context, page ListOptions) ([]TemplateRecord, *Response, error) {
		return s.ListTemplateRecords(ctx, accountID, templateIdentifier, &page)
	})
}

// CreateTemplateRecord adds a record to a template.
func (s *TemplatesService) CreateTemplateRecord(ctx context.Context, accountID, templateIdentifier string, recordAttributes TemplateRecord) (*TemplateRecord, *Response, error) {
	record, resp, err := getData[TemplateRecord](ctx, s.client, http.MethodPost, templateRecordPath(accountID, templateIdentifier, 0), recordAttributes)
	if err != nil {
		return nil, resp, fmt.Errorf("failed to create record in template %q: %w", templateIdentifier, err)
	}
	return &record, resp, nil
}

// GetTemplateRecord fetches a template record by ID.
func (s *TemplatesService) GetTemplateRecord(ctx context.Context, accountID, templateIdentifier string, recordID int64) (*TemplateRecord, *Response, error) {
	record, resp, err := getData[TemplateRecord](ctx, s.client, http.MethodGet, templateRecordPath(accountID, templateIdentifier, recordID), nil)
	if err != nil {
		return nil, resp, fmt.Errorf("failed to get record %d of template %q: %w", recordID, templateIdentifier, err)
	}
	return &record, resp, nil
}

// DeleteTemplateRecord removes a record from a template.
func (s *TemplatesService) DeleteTemplateRecord(ctx context.Context, accountID, templateIdentifier string, recordID int64) (*Response, error) {
	resp, err := s.client.request(ctx, http.MethodDelete, templateRecordPath(accountID, templateIdentifier, recordID), nil, nil)
	if err != nil {
		return resp, fmt.Errorf("failed to delete record %d of template %q: %w", recordID, templateIdentifier, err)
	}
	return resp, nil
}

// ApplyTemplate adds the records of a template to a domain's zone.
func (s *TemplatesService) ApplyTemplate(ctx context.Context, accountID, templateIdentifier, domainIdentifier string) (*Response, error) {
	path := domainPath(accountID, domainIdentifier) + "/templates/" + templateIdentifier
	resp, err := s.client.request(ctx, http.MethodPost, path, nil, nil)
	if err != nil {
		return resp, fmt.Errorf("failed to apply template %q to %q: %w", templateIdentifier, domainIdentifier, err)
	}
	return resp, nil
}
