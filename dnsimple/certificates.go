package dnsimple

import (
	"context"
	"fmt"
	"net/http"
)

// CertificatesService handles SSL certificate endpoints, including Let's
// Encrypt purchases and renewals.
type CertificatesService struct {
	client *Client
}

// Certificate is an SSL certificate attached to a domain.
type Certificate struct {
	ID                  int64    `json:"id"`
	DomainID            int64    `json:"domain_id"`
	ContactID           int64    `json:"contact_id,omitempty"`
	CommonName          string   `json:"common_name"`
	AlternateNames      []string `json:"alternate_names,omitempty"`
	Years               int      `json:"years"`
	State               string   `json:"state"`
	AuthorityIdentifier string   `json:"authority_identifier"`
	AutoRenew           bool     `json:"auto_renew"`
	CertificateRequest  string   `json:"csr,omitempty"`
	CreatedAt           string   `json:"created_at,omitempty"`
	UpdatedAt           string   `json:"updated_at,omitempty"`
	ExpiresAt           string   `json:"expires_at,omitempty"`
}

// CertificateBundle holds the PEM material of an issued certificate.
type CertificateBundle struct {
	ServerCertificate        string   `json:"server,omitempty"`
	RootCertificate          string   `json:"root,omitempty"`
	IntermediateCertificates []string `json:"chain,omitempty"`
	PrivateKey               string   `json:"private_key,omitempty"`
}

// CertificatePurchase is the order created when buying a certificate.
type CertificatePurchase struct {
	ID            int64  `json:"id"`
	CertificateID int64  `json:"certificate_id"`
	State         string `json:"state"`
	AutoRenew     bool   `json:"auto_renew"`
	CreatedAt     string `json:"created_at,omitempty"`
	UpdatedAt     string `json:"updated_at,omitempty"`
}

// CertificateRenewal is the order created when renewing a certificate.
type CertificateRenewal struct {
	ID               int64  `json:"id"`
	OldCertificateID int64  `json:"old_certificate_id"`
	NewCertificateID int64  `json:"new_certificate_id"`
	State            string `json:"state"`
	AutoRenew        bool   `json:"auto_renew"`
	CreatedAt        string `json:"created_at,omitempty"`
	UpdatedAt        string `json:"updated_at,omitempty"`
}

// LetsencryptCertificateAttributes are the parameters for ordering a Let's
// Encrypt certificate.
type LetsencryptCertificateAttributes struct {
	ContactID          int64    `json:"contact_id,omitempty"`
	Name               string   `json:"name,omitempty"`
	AutoRenew          bool     `json:"auto_renew,omitempty"`
	AlternateNames     []string `json:"alternate_names,omitempty"`
	SignatureAlgorithm string   `json:"signature_algorithm,omitempty"`
}

func certificatePath(accountID, domainIdentifier string, certificateID int64) string {
	path := domainPath(accountID, domainIdentifier) + "/certificates"
	if certificateID != 0 {
		path += fmt.Sprintf("/%d", certificateID)
	}
	return path
}

func letsencryptPath(accountID, domainIdentifier string) string {
	return domainPath(accountID, domainIdentifier) + "/certificates/letsencrypt"
}

// ListCertificates lists the certificates of a domain.
func (s *CertificatesService) ListCertificates(ctx context.Context, accountID, domainIdentifier string, opts *ListOptions) ([]Certificate, *Response, error) {
	certs, resp, err := getList[Certificate](ctx, s.client, certificatePath(accountID, domainIdentifier, 0), opts)
	if err != nil {
		return nil, resp, fmt.Errorf("failed to list certificates for %q: %w", domainIdentifier, err)
	}
	return certs, resp, nil
}

// ListCertificatesAll lists every certificate of a domain.
func (s *CertificatesService) ListCertificatesAll(ctx context.Context, accountID, domainIdentifier string, opts *ListOptions) ([]Certificate, error) {
	return ListAll(ctx, opts, func(ctx context.Context, page ListOptions) ([]Certificate, *Response, error) {
		return s.ListCertificates(ctx, accountID, domainIdentifier, &page)
	})
}

// GetCertificate fetches certificate details.
func (s *CertificatesService) GetCertificate(ctx context.Context, accountID, domainIdentifier string, certificateID int64) (*Certificate, *Response, error) {
	cert, resp, err := getData[Certificate](ctx, s.client, http.MethodGet, certificatePath(accountID, domainIdentifier, certificateID), nil)
	if err != nil {
		return nil, resp, fmt.Errorf("failed to get certificate %d for %q: %w", certificateID, domainIdentifier, err)
	}
	return &cert, resp, nil
}

// DownloadCertificate returns the server, root and chain certificates.
func (s *CertificatesService) DownloadCertificate(ctx context.Context, accountID, domainIdentifier string, certificateID int64) (*CertificateBundle, *Response, error) {
	bundle, resp, err := getData[CertificateBundle](ctx, s.client, http.MethodGet, certificatePath(accountID, domainIdentifier, certificateID)+"/download", nil)
	if err != nil {
		return nil, resp, fmt.Errorf("failed to download certificate %d for %q: %w", certificateID, domainIdentifier, err)
	}
	return &bundle, resp, nil
}

// GetCertificatePrivateKey returns the private key of a certificate.
func (s *CertificatesService) GetCertificatePrivateKey(ctx context.Context, accountID, domainIdentifier string, certificateID int64) (*CertificateBundle, *Response, error) {
	bundle, resp, err := getData[CertificateBundle](ctx, s.client, http.MethodGet, certificatePath(accountID, domainIdentifier, certificateID)+"/private_key", nil)
	if err != nil {
		return nil, resp, fmt.Errorf("failed to get private key of certificate %d for %q: %w", certificateID, domainIdentifier, err)
	}
	return &bundle, resp, nil
}

// PurchaseLetsencryptCertificate orders a Let's Encrypt certificate.
// The certificate must then be issued with IssueLetsencryptCertificate.
func (s *CertificatesService) PurchaseLetsencryptCertificate(ctx context.Context, accountID, domainIdentifier string, certificateAttributes LetsencryptCertificateAttributes) (*CertificatePurchase, *Response, error) {
	purchase, resp, err := getData[CertificatePurchase](ctx, s.client, http.MethodPost, letsencryptPath(accountID, domainIdentifier), certificateAttributes)
	if err != nil {
		return nil, resp, fmt.Errorf("failed to purchase certificate for %q: %w", domainIdentifier, err)
	}
	return &purchase, resp, nil
}

// IssueLetsencryptCertificate issues a purchased certificate.
func (s *CertificatesService) IssueLetsencryptCertificate(ctx context.Context, accountID, domainIdentifier string, certificateID int64) (*Certificate, *Response, error) {
	path := fmt.Sprintf("%s/%d/issue", letsencryptPath(accountID, domainIdentifier), certificateID)
	cert, resp, err := getData[Certificate](ctx, s.client, http.MethodPost, path, nil)
	if err != nil {
		return nil, resp, fmt.Errorf("failed to issue certificate %d for %q: %w", certificateID, domainIdentifier, err)
	}
	return &cert, resp, nil
}

// PurchaseLetsencryptCertificateRenewal orders the renewal of a certificate.
func (s *CertificatesService) PurchaseLetsencryptCertificateRenewal(ctx context.Context, accountID, domainIdentifier string, certificateID int64, certificateAttributes LetsencryptCertificateAttributes) (*CertificateRenewal, *Response, error) {
	path := fmt.Sprintf("%s/%d/renewals", letsencryptPath(accountID, domainIdentifier), certificateID)
	renewal, resp, err := getData[CertificateRenewal](ctx, s.client, http.MethodPost, path, certificateAttributes)
	if err != nil {
		return nil, resp, fmt.Errorf("failed to purchase renewal of certificate %d for %q: %w", certificateID, domainIdentifier, err)
	}
	return &renewal, resp, nil
}

// IssueLetsencryptCertificateRenewal issues a purchased renewal.
func (s *CertificatesService) IssueLetsencryptCertificateRenewal(ctx context.Context, accountID, domainIdentifier string, certificateID, renewalID int64) (*Certificate, *Response, error) {
	path := fmt.Sprintf("%s/%d/renewals/%d/issue", letsencryptPath(accountID, domainIdentifier), certificateID, renewalID)
	cert, resp, err := getData[Certificate](ctx, s.client, http.MethodPost, path, nil)
	if err != nil {
		return nil, resp, fmt.Errorf("failed to issue renewal %d of certificate %d for %q: %w", renewalID, certificateID, domainIdentifier, err)
	}
	return &cert, resp, nil
}
