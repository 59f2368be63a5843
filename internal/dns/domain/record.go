package domain

// RecordType represents a DNS record type.
type RecordType string

const (
	RecordTypeA     RecordType = "A"
	RecordTypeAAAA  RecordType = "AAAA"
	RecordTypeALIAS RecordType = "ALIAS"
	RecordTypeCAA   RecordType = "CAA"
	RecordTypeCNAME RecordType = "CNAME"
	RecordTypeHINFO RecordType = "HINFO"
	RecordTypeMX    RecordType = "MX"
	RecordTypeNAPTR RecordType = "NAPTR"
	RecordTypeNS    RecordType = "NS"
	RecordTypePOOL  RecordType = "POOL"
	RecordTypeSPF   RecordType = "SPF"
	RecordTypeSRV   RecordType = "SRV"
	RecordTypeSSHFP RecordType = "SSHFP"
	RecordTypeTXT   RecordType = "TXT"
	RecordTypeURL   RecordType = "URL"
)

// Record represents a single DNS record.
type Record struct {
	// ID is the provider-assigned record identifier.
	ID string `json:"id"`

	// Domain is the zone this record belongs to (e.g. "example.com").
	Domain string `json:"domain"`

	// Name is the fully-qualified record name
	// (e.g. "www.example.com" or "example.com" for an apex record).
	Name string `json:"name"`

	// Type is the DNS record type (A, AAAA, CNAME, etc.).
	Type RecordType `json:"type"`

	// Content is the record value (IP address, hostname, text, etc.).
	Content string `json:"content"`

	// TTL is the time-to-live in seconds.
	TTL int `json:"ttl"`

	// Priority is used for record types that support it (MX, SRV, etc.).
	// Zero means not applicable.
	Priority int `json:"priority"`

	// Regions lists the regions the record is served from.
	Regions []string `json:"regions,omitempty"`

	// System reports whether the record is managed by the provider
	// (SOA, apex NS) and cannot be edited.
	System bool `json:"system"`
}

// Domain represents a domain name in the provider account.
type Domain struct {
	// Name is the domain name (e.g. "example.com").
	Name string `json:"name"`

	// State is the current domain state (e.g. "hosted", "registered").
	State string `json:"state"`

	// TLD is the top-level domain suffix (e.g. "com").
	TLD string `json:"tld"`

	// AutoRenew reports whether the registration renews automatically.
	AutoRenew bool `json:"auto_renew"`

	// CreatedAt is when the domain was added to the account.
	CreatedAt string `json:"created_at"`

	// ExpiresAt is when the domain registration expires.
	// Empty for domains that are only hosted.
	ExpiresAt string `json:"expires_at"`
}
