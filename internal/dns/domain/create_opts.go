package domain

// CreateRecordOpts holds the parameters for creating a new DNS record.
type CreateRecordOpts struct {
	// Name is the subdomain portion of the record, not including the zone name.
	// Leave empty to create a record at the zone apex.
	// Use "*" to create a wildcard record.
	Name string

	// Type is the DNS record type. Required.
	Type RecordType

	// Content is the record value. Required.
	Content string

	// TTL is the time-to-live in seconds.
	// Zero means use the provider default.
	TTL int

	// Priority is used for record types that support it (MX, SRV, etc.).
	Priority int

	// Regions restricts the record to the given DNSimple regions.
	// Empty means global.
	Regions []string
}

// UpdateRecordOpts holds the parameters for updating an existing DNS record.
// Zero values leave the corresponding attribute unchanged.
type UpdateRecordOpts struct {
	// Name is the new subdomain portion.
	// nil means no change; pointer to empty string moves the record to the apex.
	Name *string

	// Content is the new record value. Required.
	Content string

	// TTL is the new time-to-live in seconds.
	TTL int

	// Priority is the new priority value.
	Priority int

	// Regions replaces the record regions when not empty.
	Regions []string
}
