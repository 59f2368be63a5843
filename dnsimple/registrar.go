package dnsimple

import (
	"context"
	"fmt"
	"net/http"
)

// RegistrarService handles domain registration, transfer, renewal and the
// registrar-side settings of a domain (auto renewal, delegation and whois
// privacy).
type RegistrarService struct {
	client *Client
}

// DomainCheck is the availability of a domain name.
type DomainCheck struct {
	Domain    string `json:"domain"`
	Available bool   `json:"available"`
	Premium   bool   `json:"premium"`
}

// DomainPremiumPrice is the premium price for an action on a premium domain.
type DomainPremiumPrice struct {
	PremiumPrice string `json:"premium_price"`
	Action       string `json:"action"`
}

// DomainPrice lists the registration, renewal and transfer prices of a domain.
type DomainPrice struct {
	Domain            string  `json:"domain"`
	Premium           bool    `json:"premium"`
	RegistrationPrice float64 `json:"registration_price"`
	RenewalPrice      float64 `json:"renewal_price"`
	TransferPrice     float64 `json:"transfer_price"`
}

// DomainPremiumPriceOptions selects the action to price: registration,
// renewal or transfer. The API defaults to registration.
type DomainPremiumPriceOptions struct {
	Action string `url:"action,omitempty"`
}

// DomainRegistration is a registration order.
type DomainRegistration struct {
	ID           int64  `json:"id"`
	DomainID     int64  `json:"domain_id"`
	RegistrantID int64  `json:"registrant_id"`
	Period       int    `json:"period"`
	State        string `json:"state"`
	AutoRenew    bool   `json:"auto_renew"`
	WhoisPrivacy bool   `json:"whois_privacy"`
	CreatedAt    string `json:"created_at,omitempty"`
	UpdatedAt    string `json:"updated_at,omitempty"`
}

// RegisterDomainInput are the parameters for registering a domain.
type RegisterDomainInput struct {
	// RegistrantID is the contact that will own the domain. Required.
	RegistrantID int64 `json:"registrant_id"`

	WhoisPrivacy       bool              `json:"whois_privacy,omitempty"`
	EnableAutoRenewal  bool              `json:"auto_renew,omitempty"`
	ExtendedAttributes map[string]string `json:"extended_attributes,omitempty"`

	// PremiumPrice must match the current premium price for premium names.
	PremiumPrice string `json:"premium_price,omitempty"`
}

// DomainTransfer is an inbound transfer order.
type DomainTransfer struct {
	ID                int64  `json:"id"`
	DomainID          int64  `json:"domain_id"`
	RegistrantID      int64  `json:"registrant_id"`
	State             string `json:"state"`
	AutoRenew         bool   `json:"auto_renew"`
	WhoisPrivacy      bool   `json:"whois_privacy"`
	StatusDescription string `json:"status_description,omitempty"`
	CreatedAt         string `json:"created_at,omitempty"`
	UpdatedAt         string `json:"updated_at,omitempty"`
}

// TransferDomainInput are the parameters for transferring a domain in.
type TransferDomainInput struct {
	RegistrantID       int64             `json:"registrant_id"`
	WhoisPrivacy       bool              `json:"whois_privacy,omitempty"`
	AuthCode           string            `json:"auth_code,omitempty"`
	EnableAutoRenewal  bool              `json:"auto_renew,omitempty"`
	ExtendedAttributes map[string]string `json:"extended_attributes,omitempty"`
	PremiumPrice       string            `json:"premium_price,omitempty"`
}

// DomainRenewal is a renewal order.
type DomainRenewal struct {
	ID        int64  `json:"id"`
	DomainID  int64  `json:"domain_id"`
	Period    int    `json:"period"`
	State     string `json:"state"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// RenewDomainInput are the parameters for renewing a domain.
type RenewDomainInput struct {
	// Period is the number of years. The API defaults to 1.
	Period       int    `json:"period,omitempty"`
	PremiumPrice string `json:"premium_price,omitempty"`
}

func registrarPath(accountID, domainName string) string {
	return fmt.Sprintf("/%s/registrar/domains/%s", accountID, domainName)
}

// CheckDomain checks whether a domain is available for registration.
func (s *RegistrarService) CheckDomain(ctx context.Context, accountID, domainName string) (*DomainCheck, *Response, error) {
	check, resp, err := getData[DomainCheck](ctx, s.client, http.MethodGet, registrarPath(accountID, domainName)+"/check", nil)
	if err != nil {
		return nil, resp, fmt.Errorf("failed to check domain %q: %w", domainName, err)
	}
	return &check, resp, nil
}

// GetDomainPremiumPrice returns the premium price of a domain for an action.
// Non-premium domains return a validation error.
func (s *RegistrarService) GetDomainPremiumPrice(ctx context.Context, accountID, domainName string, opts *DomainPremiumPriceOptions) (*DomainPremiumPrice, *Response, error) {
	path, err := addURLQueryOptions(registrarPath(accountID, domainName)+"/premium_price", opts)
	if err != nil {
		return nil, nil, err
	}
	price, resp, err := getData[DomainPremiumPrice](ctx, s.client, http.MethodGet, path, nil)
	if err != nil {
		return nil, resp, fmt.Errorf("failed to get premium price of %q: %w", domainName, err)
	}
	return &price, resp, nil
}

// GetDomainPrices returns the registration, renewal and transfer prices.
func (s *RegistrarService) GetDomainPrices(ctx context.Context, accountID, domainName string) (*DomainPrice, *Response, error) {
	price, resp, err := getData[DomainPrice](ctx, s.client, http.MethodGet, registrarPath(accountID, domainName)+"/prices", nil)
	if err != nil {
		return nil, resp, fmt.Errorf("failed to get prices of %q: %w", domainName, err)
	}
	return &price, resp, nil
}

// RegisterDomain registers a domain.
func (s *RegistrarService) RegisterDomain(ctx context.Context, accountID, domainName string, input *RegisterDomainInput) (*DomainRegistration, *Response, error) {
	reg, resp, err := getData[DomainRegistration](ctx, s.client, http.MethodPost, registrarPath(accountID, domainName)+"/registrations", input)
	if err != nil {
		return nil, resp, fmt.Errorf("failed to register %q: %w", domainName, err)
	}
	return &reg, resp, nil
}

// GetDomainRegistration fetches a registration order.
func (s *RegistrarService) GetDomainRegistration(ctx context.Context, accountID, domainName string, registrationID int64) (*DomainRegistration, *Response, error) {
	path := fmt.Sprintf("%s/registrations/%d", registrarPath(accountID, domainName), registrationID)
	reg, resp, err := getData[DomainRegistration](ctx, s.client, http.MethodGet, path, nil)
	if err != nil {
		return nil, resp, fmt.Errorf("failed to get registration %d of %q: %w", registrationID, domainName, err)
	}
	return &reg, resp, nil
}

// TransferDomain starts transferring a domain into the account.
func (s *RegistrarService) TransferDomain(ctx context.Context, accountID, domainName string, input *TransferDomainInput) (*DomainTransfer, *Response, error) {
	transfer, resp, err := getData[DomainTransfer](ctx, s.client, http.MethodPost, registrarPath(accountID, domainName)+"/transfers", input)
	if err != nil {
		return nil, resp, fmt.Errorf("failed to transfer %q: %w", domainName, err)
	}
	return &transfer, resp, nil
}

// GetDomainTransfer fetches a transfer order.
func (s *RegistrarService) GetDomainTransfer(ctx context.Context, accountID, domainName string, transferID int64) (*DomainTransfer, *Response, error) {
	path := fmt.Sprintf("%s/transfers/%d", registrarPath(accountID, domainName), transferID)
	transfer, resp, err := getData[DomainTransfer](ctx, s.client, http.MethodGet, path, nil)
	if err != nil {
		return nil, resp, fmt.Errorf("failed to get transfer %d of %q: %w", transferID, domainName, err)
	}
	return &transfer, resp, nil
}

// CancelDomainTransfer cancels an in-progress transfer.
func (s *RegistrarService) CancelDomainTransfer(ctx context.Context, accountID, domainName string, transferID int64) (*DomainTransfer, *Response, error) {
	path := fmt.Sprintf("%s/transfers/%d", registrarPath(accountID, domainName), transferID)
	transfer, resp, err := getData[DomainTransfer](ctx, s.client, http.MethodDelete, path, nil)
	if err != nil {
		return nil, resp, fmt.Errorf("failed to cancel transfer %d of %q: %w", transferID, domainName, err)
	}
	return &transfer, resp, nil
}

// RenewDomain renews a domain.
func (s *RegistrarService) RenewDomain(ctx context.Context, accountID, domainName string, input *RenewDomainInput) (*DomainRenewal, *Response, error) {
	renewal, resp, err := getData[DomainRenewal](ctx, s.client, http.MethodPost, registrarPath(accountID, domainName)+"/renewals", input)
	if err != nil {
		return nil, resp, fmt.Errorf("failed to renew %q: %w", domainName, err)
	}
	return &renewal, resp, nil
}

// GetDomainRenewal fetches a renewal order.
func (s *RegistrarService) GetDomainRenewal(ctx context.Context, accountID, domainName string, renewalID int64) (*DomainRenewal, *Response, error) {
	path := fmt.Sprintf("%s/renewals/%d", registrarPath(accountID, domainName), renewalID)
	renewal, resp, err := getData[DomainRenewal](ctx, s.client, http.MethodGet, path, nil)
	if err != nil {
		return nil, resp, fmt.Errorf("failed to get renewal %d of %q: %w", renewalID, domainName, err)
	}
	return &renewal, resp, nil
}

// TransferDomainOut unlocks a domain and emails the auth code to the registrant.
func (s *RegistrarService) TransferDomainOut(ctx context.Context, accountID, domainName string) (*Response, error) {
	resp, err := s.client.request(ctx, http.MethodPost, registrarPath(accountID, domainName)+"/authorize_transfer_out", nil, nil)
	if err != nil {
		return resp, fmt.Errorf("failed to authorize transfer out of %q: %w", domainName, err)
	}
	return resp, nil
}

// EnableDomainAutoRenewal turns on auto renewal.
func (s *RegistrarService) EnableDomainAutoRenewal(ctx context.Context, accountID, domainName string) (*Response, error) {
	resp, err := s.client.request(ctx, http.MethodPut, registrarPath(accountID, domainName)+"/auto_renewal", nil, nil)
	if err != nil {
		return resp, fmt.Errorf("failed to enable auto renewal for %q: %w", domainName, err)
	}
	return resp, nil
}

// DisableDomainAutoRenewal turns off auto renewal.
func (s *RegistrarService) DisableDomainAutoRenewal(ctx context.Context, accountID, domainName string) (*Response, error) {
	resp, err := s.client.request(ctx, http.MethodDelete, registrarPath(accountID, domainName)+"/auto_renewal", nil, nil)
	if err != nil {
		return resp, fmt.Errorf("failed to disable auto renewal for %q: %w", domainName, err)
	}
	return resp, nil
}
