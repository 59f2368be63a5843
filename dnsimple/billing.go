package dnsimple

import (
	"context"
	"fmt"
)

// BillingService handles account billing charges.
type BillingService struct {
	client *Client
}

// Charge is a billed transaction.
type Charge struct {
	InvoicedAt    string       `json:"invoiced_at"`
	TotalAmount   string       `json:"total_amount"`
	BalanceAmount string       `json:"balance_amount"`
	Reference     string       `json:"reference"`
	State         string       `json:"state"`
	Items         []ChargeItem `json:"items"`
}

// ChargeItem is a line of a charge.
type ChargeItem struct {
	Description      string `json:"description"`
	Amount           string `json:"amount"`
	ProductID        int64  `json:"product_id"`
	ProductType      string `json:"product_type"`
	ProductReference string `json:"product_reference,omitempty"`
}

// BillingChargeListOptions filters and pages the charges list. Dates use
// the YYYY-MM-DD format.
type BillingChargeListOptions struct {
	StartDate string `url:"start_date,omitempty"`
	EndDate   string `url:"end_date,omitempty"`

	ListOptions
}

// ListCharges lists one page of charges for the account.
func (s *BillingService) ListCharges(ctx context.Context, accountID string, opts *BillingChargeListOptions) ([]Charge, *Response, error) {
	charges, resp, err := getList[Charge](ctx, s.client, fmt.Sprintf("/%s/billing/charges", accountID), opts)
	if err != nil {
		return nil, resp, fmt.Errorf("failed to list charges: %w", err)
	}
	return charges, resp, nil
}

// ListChargesAll lists every charge matching opts.
func (s *BillingService) ListChargesAll(ctx context.Context, accountID string, opts *BillingChargeListOptions) ([]Charge, error) {
	var filter BillingChargeListOptions
	if opts != nil {
		filter = *opts
	}
	return ListAll(ctx, &filter.ListOptions, func(ctx context.Context, page ListOptions) ([]Charge, *Response, error) {
		filter.ListOptions = page
		return s.ListCharges(ctx, accountID, &filter)
	})
}
