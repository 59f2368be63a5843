package providers

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"nathanbeddoewebdev/dnsimple/dnsimple"
	"nathanbeddoewebdev/dnsimple/internal/dns/domain"
	"nathanbeddoewebdev/dnsimple/internal/services"
	"nathanbeddoewebdev/dnsimple/internal/services/auth"

	"go.uber.org/zap"
)

// DNSimpleName is the registry key for the DNSimple provider.
const DNSimpleName = "dnsimple"

// DNSimpleProvider implements domain.Provider on top of the DNSimple zones
// and domains endpoints.
type DNSimpleProvider struct {
	session *services.Session
	logger  *zap.Logger
}

// Compile-time check that DNSimpleProvider implements domain.Provider.
var _ domain.Provider = (*DNSimpleProvider)(nil)

// NewDNSimpleProvider returns a provider that acts through session.
func NewDNSimpleProvider(session *services.Session, logger *zap.Logger) *DNSimpleProvider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DNSimpleProvider{session: session, logger: logger}
}

// RegisterDNSimple registers the DNSimple provider factory with the global registry.
func RegisterDNSimple() {
	Register(DNSimpleName, func(ctx context.Context, store auth.Store) (domain.Provider, error) {
		session, err := services.Open(ctx, store)
		if err != nil {
			return nil, err
		}
		return NewDNSimpleProvider(session, zap.L()), nil
	})
}

func (p *DNSimpleProvider) GetDisplayName() string {
	return "DNSimple"
}

// ListDomains returns every domain in the account, across all pages.
func (p *DNSimpleProvider) ListDomains(ctx context.Context) ([]domain.Domain, error) {
	accountID, err := p.session.AccountID(ctx)
	if err != nil {
		return nil, err
	}

	domains, err := p.session.Client.Domains.ListDomainsAll(ctx, accountID, nil)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Domain, 0, len(domains))
	for _, d := range domains {
		result = append(result, domain.Domain{
			Name:      d.Name,
			State:     d.State,
			TLD:       extractTLD(d.Name),
			AutoRenew: d.AutoRenew,
			CreatedAt: d.CreatedAt,
			ExpiresAt: d.ExpiresAt,
		})
	}
	return result, nil
}

// ListRecords returns every record in the zone, across all pages.
func (p *DNSimpleProvider) ListRecords(ctx context.Context, zone string) ([]domain.Record, error) {
	accountID, err := p.session.AccountID(ctx)
	if err != nil {
		return nil, err
	}

	records, err := p.session.Client.Zones.ListRecordsAll(ctx, accountID, zone, nil)
	if err != nil {
		return nil, err
	}
	p.logger.Debug("listed records", zap.String("zone", zone), zap.Int("count", len(records)))

	result := make([]domain.Record, 0, len(records))
	for _, r := range records {
		result = append(result, toDomainRecord(zone, r))
	}
	return result, nil
}

func (p *DNSimpleProvider) GetRecord(ctx context.Context, zone string, id string) (*domain.Record, error) {
	recordID, err := parseRecordID(id)
	if err != nil {
		return nil, err
	}
	accountID, err := p.session.AccountID(ctx)
	if err != nil {
		return nil, err
	}

	record, _, err := p.session.Client.Zones.GetRecord(ctx, accountID, zone, recordID)
	if err != nil {
		return nil, err
	}
	rec := toDomainRecord(zone, *record)
	return &rec, nil
}

func (p *DNSimpleProvider) CreateRecord(ctx context.Context, zone string, opts domain.CreateRecordOpts) (*domain.Record, error) {
	accountID, err := p.session.AccountID(ctx)
	if err != nil {
		return nil, err
	}

	attrs := dnsimple.ZoneRecordAttributes{
		Type:     string(opts.Type),
		Name:     dnsimple.String(opts.Name),
		Content:  opts.Content,
		TTL:      opts.TTL,
		Priority: opts.Priority,
		Regions:  opts.Regions,
	}
	record, _, err := p.session.Client.Zones.CreateRecord(ctx, accountID, zone, attrs)
	if err != nil {
		return nil, err
	}
	rec := toDomainRecord(zone, *record)
	return &rec, nil
}

func (p *DNSimpleProvider) UpdateRecord(ctx context.Context, zone string, id string, opts domain.UpdateRecordOpts) (*domain.Record, error) {
	recordID, err := parseRecordID(id)
	if err != nil {
		return nil, err
	}
	accountID, err := p.session.AccountID(ctx)
	if err != nil {
		return nil, err
	}

	attrs := dnsimple.ZoneRecordAttributes{
		Name:     opts.Name,
		Content:  opts.Content,
		TTL:      opts.TTL,
		Priority: opts.Priority,
		Regions:  opts.Regions,
	}
	record, _, err := p.session.Client.Zones.UpdateRecord(ctx, accountID, zone, recordID, attrs)
	if err != nil {
		return nil, err
	}
	rec := toDomainRecord(zone, *record)
	return &rec, nil
}

func (p *DNSimpleProvider) DeleteRecord(ctx context.Context, zone string, id string) error {
	recordID, err := parseRecordID(id)
	if err != nil {
		return err
	}
	accountID, err := p.session.AccountID(ctx)
	if err != nil {
		return err
	}

	_, err = p.session.Client.Zones.DeleteRecord(ctx, accountID, zone, recordID)
	return err
}

// --- helpers ---

// parseRecordID converts a CLI record ID into the numeric API form.
func parseRecordID(id string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(id), 10, 64)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid record ID %q: %w", id, domain.ErrValidation)
	}
	return n, nil
}

func toDomainRecord(zone string, r dnsimple.ZoneRecord) domain.Record {
	return domain.Record{
		ID:       strconv.FormatInt(r.ID, 10),
		Domain:   zone,
		Name:     qualifyName(r.Name, zone),
		Type:     domain.RecordType(r.Type),
		Content:  r.Content,
		TTL:      r.TTL,
		Priority: r.Priority,
		Regions:  r.Regions,
		System:   r.SystemRecord,
	}
}

// qualifyName turns a zone-relative record name into a fully-qualified one.
// The API uses "" for the apex.
func qualifyName(name, zone string) string {
	if name == "" {
		return zone
	}
	return name + "." + zone
}

// extractTLD returns the label after the last dot.
func extractTLD(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[i+1:]
	}
	return ""
}
