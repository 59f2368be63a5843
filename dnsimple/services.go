package dnsimple

import (
	"context"
	"fmt"
	"net/http"
)

// ServicesService handles one-click services and their application to domains.
type ServicesService struct {
	client *Client
}

// Service is a one-click service such as a hosted mail or blog provider.
type Service struct {
	ID               int64            `json:"id"`
	SID              string           `json:"sid"`
	Name             string           `json:"name"`
	Description      string           `json:"description"`
	SetupDescription string           `json:"setup_description,omitempty"`
	RequiresSetup    bool             `json:"requires_setup"`
	DefaultSubdomain string           `json:"default_subdomain,omitempty"`
	Settings         []ServiceSetting `json:"settings,omitempty"`
	CreatedAt        string           `json:"created_at,omitempty"`
	UpdatedAt        string           `json:"updated_at,omitempty"`
}

// ServiceSetting is a value a service asks for when it is applied.
type ServiceSetting struct {
	Name        string `json:"name"`
	Label       string `json:"label"`
	Append      string `json:"append,omitempty"`
	Description string `json:"description"`
	Example     string `json:"example,omitempty"`
	Password    bool   `json:"password"`
}

// DomainServiceSettings are the values supplied when applying a service.
type DomainServiceSettings struct {
	Settings map[string]string `json:"settings,omitempty"`
}

func servicePath(serviceIdentifier string) string {
	if serviceIdentifier == "" {
		return "/services"
	}
	return "/services/" + serviceIdentifier
}

func domainServicePath(accountID, domainIdentifier, serviceIdentifier string) string {
	path := domainPath(accountID, domainIdentifier) + "/services"
	if serviceIdentifier != "" {
		path += "/" + serviceIdentifier
	}
	return path
}

// ListServices lists the available one-click services.
func (s *ServicesService) ListServices(ctx context.Context, opts *ListOptions) ([]Service, *Response, error) {
	services, resp, err := getList[Service](ctx, s.client, servicePath(""), opts)
	if err != nil {
		return nil, resp, fmt.Errorf("failed to list services: %w", err)
	}
	return services, resp, nil
}

// ListServicesAll lists every available one-click service.
func (s *ServicesService) ListServicesAll(ctx context.Context, opts *ListOptions) ([]Service, error) {
	return ListAll(ctx, opts, func(ctx context.Context, page ListOptions) ([]Service, *Response, error) {
		return s.ListServices(ctx, &page)
	})
}

// GetService fetches a service by ID or SID.
func (s *ServicesService) GetService(ctx context.Context, serviceIdentifier string) (*Service, *Response, error) {
	service, resp, err := getData[Service](ctx, s.client, http.MethodGet, servicePath(serviceIdentifier), nil)
	if err != nil {
		return nil, resp, fmt.Errorf("failed to get service %q: %w", serviceIdentifier, err)
	}
	return &service, resp, nil
}

// AppliedServices lists the services applied to a domain.
func (s *ServicesService) AppliedServices(ctx context.Context, accountID, domainIdentifier string, opts *ListOptions) ([]Service, *Response, error) {
	services, resp, err := getList[Service](ctx, s.client, domainServicePath(accountID, domainIdentifier, ""), opts)
	if err != nil {
		return nil, resp, fmt.Errorf("failed to list services applied to %q: %w", domainIdentifier, err)
	}
	return services, resp, nil
}

// ApplyService applies a service to a domain.
func (s *ServicesService) ApplyService(ctx context.Context, accountID, serviceIdentifier, domainIdentifier string, settings DomainServiceSettings) (*Response, error) {
	resp, err := s.client.request(ctx, http.MethodPost, domainServicePath(accountID, domainIdentifier, serviceIdentifier), settings, nil)
	if err != nil {
		return resp, fmt.Errorf("failed to apply service %q to %q: %w", serviceIdentifier, domainIdentifier, err)
	}
	return resp, nil
}

// UnapplyService removes a service from a domain.
func (s *ServicesService) UnapplyService(ctx context.Context, accountID, serviceIdentifier, domainIdentifier string) (*Response, error) {
	resp, err := s.client.request(ctx, http.MethodDelete, domainServicePath(accountID, domainIdentifier, serviceIdentifier), nil, nil)
	if err != nil {
		return resp, fmt.Errorf("failed to unapply service %q from %q: %w", serviceIdentifier, domainIdentifier, err)
	}
	return resp, nil
}
