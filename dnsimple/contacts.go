package dnsimple

import (
	"context"
	"fmt"
	"net/http"
)

// ContactsService handles registrant contacts.
type ContactsService struct {
	client *Client
}

// Contact is a registrant or administrative contact.
type Contact struct {
	ID            int64  `json:"id,omitempty"`
	AccountID     int64  `json:"account_id,omitempty"`
	Label         string `json:"label,omitempty"`
	FirstName     string `json:"first_name,omitempty"`
	LastName      string `json:"last_name,omitempty"`
	JobTitle      string `json:"job_title,omitempty"`
	Organization  string `json:"organization_name,omitempty"`
	Address1      string `json:"address1,omitempty"`
	Address2      string `json:"address2,omitempty"`
	City          string `json:"city,omitempty"`
	StateProvince string `json:"state_province,omitempty"`
	PostalCode    string `json:"postal_code,omitempty"`
	Country       string `json:"country,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Fax           string `json:"fax,omitempty"`
	Email         string `json:"email,omitempty"`
	CreatedAt     string `json:"created_at,omitempty"`
	UpdatedAt     string `json:"updated_at,omitempty"`
}

func contactPath(accountID string, contactID int64) string {
	path := fmt.Sprintf("/%s/contacts", accountID)
	if contactID != 0 {
		path += fmt.Sprintf("/%d", contactID)
	}
	return path
}

// ListContacts lists the contacts in the account.
func (s *ContactsService) ListContacts(ctx context.Context, accountID string, opts *ListOptions) ([]Contact, *Response, error) {
	contacts, resp, err := getList[Contact](ctx, s.client, contactPath(accountID, 0), opts)
	if err != nil {
		return nil, resp, fmt.Errorf("failed to list contacts: %w", err)
	}
	return contacts, resp, nil
}

// ListContactsAll lists every contact in the account.
func (s *ContactsService) ListContactsAll(ctx context.Context, accountID string, opts *ListOptions) ([]Contact, error) {
	return ListAll(ctx, opts, func(ctx context.Context, page ListOptions) ([]Contact, *Response, error) {
		return s.ListContacts(ctx, accountID, &page)
	})
}

// CreateContact creates a contact.
func (s *ContactsService) CreateContact(ctx context.Context, accountID string, contactAttributes Contact) (*Contact, *Response, error) {
	contact, resp, err := getData[Contact](ctx, s.client, http.MethodPost, contactPath(accountID, 0), contactAttributes)
	if err != nil {
		return nil, resp, fmt.Errorf("failed to create contact: %w", err)
	}
	return &contact, resp, nil
}

// GetContact fetches a contact by ID.
func (s *ContactsService) GetContact(ctx context.Context, accountID string, contactID int64) (*Contact, *Response, error) {
	contact, resp, err := getData[Contact](ctx, s.client, http.MethodGet, contactPath(accountID, contactID), nil)
	if err != nil {
		return nil, resp, fmt.Errorf("failed to get contact %d: %w", contactID, err)
	}
	return &contact, resp, nil
}

// UpdateContact applies the non-empty attributes to a contact.
func (s *ContactsService) UpdateContact(ctx context.Context, accountID string, contactID int64, contactAttributes Contact) (*Contact, *Response, error) {
	contact, resp, err := getData[Contact](ctx, s.client, http.MethodPatch, contactPath(accountID, contactID), contactAttributes)
	if err != nil {
		return nil, resp, fmt.Errorf("failed to update contact %d: %w", contactID, err)
	}
	return &contact, resp, nil
}

// DeleteContact removes a contact. Contacts in use by a domain cannot be deleted.
func (s *ContactsService) DeleteContact(ctx context.Context, accountID string, contactID int64) (*Response, error) {
	resp, err := s.client.request(ctx, http.MethodDelete, contactPath(accountID, contactID), nil, nil)
	if err != nil {
		return resp, fmt.Errorf("failed to delete contact %d: %w", contactID, err)
	}
	return resp, nil
}
