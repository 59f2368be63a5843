package dnsimple

import "context"

// ListOptions are the paging and sorting options shared by every list
// endpoint.
type ListOptions struct {
	// Page is the 1-based page to fetch.
	Page *int `url:"page,omitempty"`

	// PerPage is the page size. The API caps this at 100.
	PerPage *int `url:"per_page,omitempty"`

	// Sort is a comma separated list of fields with :asc or :desc suffixes,
	// for example "name:asc,id:desc".
	Sort string `url:"sort,omitempty"`
}

// Pagination is the paging metadata returned with list responses.
type Pagination struct {
	CurrentPage  int `json:"current_page"`
	PerPage      int `json:"per_page"`
	TotalEntries int `json:"total_entries"`
	TotalPages   int `json:"total_pages"`
}

// PageFunc fetches a single page of T using the given options.
type PageFunc[T any] func(ctx context.Context, opts ListOptions) ([]T, *Response, error)

// ListAll walks every page returned by fetch, starting at opts.Page (or 1),
// and returns the accumulated items. It stops after the last page reported
// by the API, when the reported page lags the requested one, or as soon as
// a response carries no pagination. Any error
// aborts the walk and no partial result is returned.
func ListAll[T any](ctx context.Context, opts *ListOptions, fetch PageFunc[T]) ([]T, error) {
	var current ListOptions
	if opts != nil {
		current = *opts
	}
	page := 1
	if current.Page != nil && *current.Page > 0 {
		page = *current.Page
	}

	var all []T
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		current.Page = Int(page)
		items, resp, err := fetch(ctx, current)
		if err != nil {
			return nil, err
		}
		all = append(all, items...)

		if resp == nil || resp.Pagination == nil {
			break
		}
		// A server that does not report the page it was asked for is treated
		// as having no further pages.
		if resp.Pagination.CurrentPage < page || page >= resp.Pagination.TotalPages {
			break
		}
		page++
	}

	return all, nil
}
