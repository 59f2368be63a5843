package dnsimple

import (
	"context"
	"fmt"
	"net/http"
)

// TldsService handles the TLD catalogue.
type TldsService struct {
	client *Client
}

// Tld describes a top-level domain DNSimple can register.
type Tld struct {
	Tld                 string `json:"tld"`
	TldType             int    `json:"tld_type"`
	WhoisPrivacy        bool   `json:"whois_privacy"`
	AutoRenewOnly       bool   `json:"auto_renew_only"`
	MinimumRegistration int    `json:"minimum_registration"`
	RegistrationEnabled bool   `json:"registration_enabled"`
	RenewalEnabled      bool   `json:"renewal_enabled"`
	TransferEnabled     bool   `json:"transfer_enabled"`
	DnssecInterfaceType string `json:"dnssec_interface_type,omitempty"`
}

// TldExtendedAttribute is an extra registration field a TLD requires.
type TldExtendedAttribute struct {
	Name        string                       `json:"name"`
	Description string                       `json:"description"`
	Required    bool                         `json:"required"`
	Options     []TldExtendedAttributeOption `json:"options"`
}

// TldExtendedAttributeOption is one allowed value of an extended attribute.
type TldExtendedAttributeOption struct {
	Title       string `json:"title"`
	Value       string `json:"value"`
	Description string `json:"description"`
}

// ListTlds lists the supported TLDs.
func (s *TldsService) ListTlds(ctx context.Context, opts *ListOptions) ([]Tld, *Response, error) {
	tlds, resp, err := getList[Tld](ctx, s.client, "/tlds", opts)
	if err != nil {
		return nil, resp, fmt.Errorf("failed to list TLDs: %w", err)
	}
	return tlds, resp, nil
}

// ListTldsAll lists every supported TLD.
func (s *TldsService) ListTldsAll(ctx context.Context, opts *ListOptions) ([]Tld, error) {
	return ListAll(ctx, opts, func(ctx context.Context, page ListOptions) ([]Tld, *Response, error) {
		return s.ListTlds(ctx, &page)
	})
}

// GetTld fetches the details of a TLD.
func (s *TldsService) GetTld(ctx context.Context, tld string) (*Tld, *Response, error) {
	out, resp, err := getData[Tld](ctx, s.client, http.MethodGet, "/tlds/"+tld, nil)
	if err != nil {
		return nil, resp, fmt.Errorf("failed to get TLD %q: %w", tld, err)
	}
	return &out, resp, nil
}

// GetTldExtendedAttributes lists the extended attributes a TLD requires.
func (s *TldsService) GetTldExtendedAttributes(ctx context.Context, tld string) ([]TldExtendedAttribute, *Response, error) {
	attrs, resp, err := getData[[]TldExtendedAttribute](ctx, s.client, http.MethodGet, "/tlds/"+tld+"/extended_attributes", nil)
	if err != nil {
		return nil, resp, fmt.Errorf("failed to get extended attributes of TLD %q: %w", tld, err)
	}
	return attrs, resp, nil
}
