// Package webhook decodes the event payloads DNSimple posts to webhook URLs.
package webhook

import (
	"encoding/json"
	"errors"
	"fmt"

	"nathanbeddoewebdev/dnsimple/dnsimple"
)

// ErrMissingName is returned for payloads without an event name.
var ErrMissingName = errors.New("webhook: event name is missing")

// Actor is the entity that triggered an event.
type Actor struct {
	ID     string `json:"id"`
	Entity string `json:"entity"`
	Pretty string `json:"pretty"`
}

// Account is the account an event belongs to.
type Account struct {
	ID      int64  `json:"id"`
	Display string `json:"display"`

	// Identifier is the account's unique handle, usually its owner email.
	Identifier string `json:"identifier"`
}

// Event is a decoded webhook payload. Data holds the event specific body;
// use the typed accessors to decode it.
type Event struct {
	Name              string          `json:"name"`
	APIVersion        string          `json:"api_version"`
	RequestIdentifier string          `json:"request_identifier"`
	Actor             *Actor          `json:"actor,omitempty"`
	Account           *Account        `json:"account,omitempty"`
	Data              json.RawMessage `json:"data"`
}

// ParseEvent decodes a raw webhook payload.
func ParseEvent(payload []byte) (*Event, error) {
	var e Event
	if err := json.Unmarshal(payload, &e); err != nil {
		return nil, fmt.Errorf("webhook: failed to decode payload: %w", err)
	}
	if e.Name == "" {
		return nil, ErrMissingName
	}
	return &e, nil
}

// DomainEventData is the body of domain.* events.
type DomainEventData struct {
	Domain *dnsimple.Domain `json:"domain"`
}

// ZoneRecordEventData is the body of zone_record.* events.
type ZoneRecordEventData struct {
	ZoneRecord *dnsimple.ZoneRecord `json:"zone_record"`
}

// CertificateEventData is the body of certificate.* events.
type CertificateEventData struct {
	Certificate *dnsimple.Certificate `json:"certificate"`
}

// WebhookEventData is the body of webhook.* events.
type WebhookEventData struct {
	Webhook *dnsimple.Webhook `json:"webhook"`
}

// DomainData decodes the body of a domain event.
func (e *Event) DomainData() (*DomainEventData, error) {
	return decodeData[DomainEventData](e)
}

// ZoneRecordData decodes the body of a zone record event.
func (e *Event) ZoneRecordData() (*ZoneRecordEventData, error) {
	return decodeData[ZoneRecordEventData](e)
}

// CertificateData decodes the body of a certificate event.
func (e *Event) CertificateData() (*CertificateEventData, error) {
	return decodeData[CertificateEventData](e)
}

// WebhookData decodes the body of a webhook event.
func (e *Event) WebhookData() (*WebhookEventData, error) {
	return decodeData[WebhookEventData](e)
}

func decodeData[T any](e *Event) (*T, error) {
	var out T
	if len(e.Data) == 0 {
		return &out, nil
	}
	if err := json.Unmarshal(e.Data, &out); err != nil {
		return nil, fmt.Errorf("webhook: failed to decode %s data: %w", e.Name, err)
	}
	return &out, nil
}
