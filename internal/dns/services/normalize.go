package services

import (
	"fmt"
	"strings"

	"nathanbeddoewebdev/dnsimple/internal/dns/domain"
)

// normalizeDomain lowercases and strips any trailing dot from a domain name.
func normalizeDomain(d string) string {
	return strings.ToLower(strings.TrimRight(strings.TrimSpace(d), "."))
}

// normalizeSubdomain strips the zone suffix from a subdomain if the
// user passes a fully-qualified name (e.g. "www.example.com" when the
// domain is "example.com"), and lowercases the result.
func normalizeSubdomain(sub, domainName string) string {
	sub = strings.ToLower(strings.TrimRight(strings.TrimSpace(sub), "."))

	if trimmed, ok := strings.CutSuffix(sub, "."+domainName); ok {
		sub = trimmed
	}
	// "@" and the bare domain both mean the apex.
	if sub == domainName || sub == "@" {
		sub = ""
	}

	return sub
}

// normalizeRecordType uppercases t. The provider is the authority on which
// types it accepts.
func normalizeRecordType(t domain.RecordType) domain.RecordType {
	return domain.RecordType(strings.ToUpper(strings.TrimSpace(string(t))))
}

func requireContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("record content cannot be empty")
	}
	return nil
}
