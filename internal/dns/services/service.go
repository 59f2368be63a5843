// Package services provides the DNS service layer.
//
// The Service type wraps a domain.Provider and normalises user input before
// delegating to the provider. CLI commands construct a Service from a
// resolved provider and call service methods rather than calling the
// provider directly.
package services

import (
	"context"
	"fmt"
	"sort"

	"nathanbeddoewebdev/dnsimple/internal/dns/domain"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentZones bounds ListRecordsMany fan-out so a long domain list
// does not trip the API rate limit.
const maxConcurrentZones = 4

// Service is the DNS business logic layer. It sits between CLI commands and
// the provider, applying normalisation to all inputs.
type Service struct {
	provider domain.Provider
	logger   *zap.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger used for service-level debug output.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New returns a Service backed by the given provider.
func New(provider domain.Provider, opts ...Option) *Service {
	svc := &Service{provider: provider, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// ListDomains returns all domains in the provider account.
func (s *Service) ListDomains(ctx context.Context) ([]domain.Domain, error) {
	return s.provider.ListDomains(ctx)
}

// ListRecords returns all DNS records for the given domain.
func (s *Service) ListRecords(ctx context.Context, domainName string) ([]domain.Record, error) {
	domainName = normalizeDomain(domainName)
	if domainName == "" {
		return nil, fmt.Errorf("domain name is required")
	}
	return s.provider.ListRecords(ctx, domainName)
}

// ListRecordsMany fetches the records of several zones concurrently and
// returns them grouped by zone in the order the domains were given.
// The first failure cancels the remaining fetches.
func (s *Service) ListRecordsMany(ctx context.Context, domainNames []string) ([]domain.Record, error) {
	normalized := make([]string, 0, len(domainNames))
	for _, d := range domainNames {
		d = normalizeDomain(d)
		if d == "" {
			return nil, fmt.Errorf("domain name is required")
		}
		normalized = append(normalized, d)
	}

	results := make([][]domain.Record, len(normalized))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentZones)
	for i, d := range normalized {
		g.Go(func() error {
			records, err := s.provider.ListRecords(gctx, d)
			if err != nil {
				return fmt.Errorf("%s: %w", d, err)
			}
			s.logger.Debug("listed zone records", zap.String("zone", d), zap.Int("count", len(records)))
			results[i] = records
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []domain.Record
	for _, records := range results {
		all = append(all, records...)
	}
	return all, nil
}

// GetRecord returns a single DNS record by domain and ID.
func (s *Service) GetRecord(ctx context.Context, domainName string, id string) (*domain.Record, error) {
	domainName = normalizeDomain(domainName)
	if domainName == "" {
		return nil, fmt.Errorf("domain name is required")
	}
	if id == "" {
		return nil, fmt.Errorf("record ID is required")
	}
	return s.provider.GetRecord(ctx, domainName, id)
}

// CreateRecord creates a new DNS record after normalising the opts.
func (s *Service) CreateRecord(ctx context.Context, domainName string, opts domain.CreateRecordOpts) (*domain.Record, error) {
	domainName = normalizeDomain(domainName)
	if domainName == "" {
		return nil, fmt.Errorf("domain name is required")
	}

	opts.Type = normalizeRecordType(opts.Type)
	if opts.Type == "" {
		return nil, fmt.Errorf("record type is required")
	}
	if err := requireContent(opts.Content); err != nil {
		return nil, err
	}
	if opts.TTL < 0 {
		return nil, fmt.Errorf("TTL cannot be negative")
	}

	opts.Name = normalizeSubdomain(opts.Name, domainName)

	return s.provider.CreateRecord(ctx, domainName, opts)
}

// UpdateRecord updates an existing DNS record after normalising opts.
func (s *Service) UpdateRecord(ctx context.Context, domainName string, id string, opts domain.UpdateRecordOpts) (*domain.Record, error) {
	domainName = normalizeDomain(domainName)
	if domainName == "" {
		return nil, fmt.Errorf("domain name is required")
	}
	if id == "" {
		return nil, fmt.Errorf("record ID is required")
	}
	if err := requireContent(opts.Content); err != nil {
		return nil, err
	}
	if opts.TTL < 0 {
		return nil, fmt.Errorf("TTL cannot be negative")
	}

	if opts.Name != nil {
		name := normalizeSubdomain(*opts.Name, domainName)
		opts.Name = &name
	}

	return s.provider.UpdateRecord(ctx, domainName, id, opts)
}

// DeleteRecord deletes a DNS record by domain and ID.
func (s *Service) DeleteRecord(ctx context.Context, domainName string, id string) error {
	domainName = normalizeDomain(domainName)
	if domainName == "" {
		return fmt.Errorf("domain name is required")
	}
	if id == "" {
		return fmt.Errorf("record ID is required")
	}
	return s.provider.DeleteRecord(ctx, domainName, id)
}

// SortRecords orders records by zone, then name, then type, so table output
// is stable across API page orderings.
func SortRecords(records []domain.Record) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if a.Domain != b.Domain {
			return a.Domain < b.Domain
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.Type < b.Type
	})
}
