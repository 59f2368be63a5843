package dnsimple

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestListAll_WalksEveryPage(t *testing.T) {
	var pages []int
	fetch := func(ctx context.Context, opts ListOptions) ([]int, *Response, error) {
		page := *opts.Page
		pages = append(pages, page)
		return []int{page * 10, page*10 + 1}, &Response{Pagination: &Pagination{CurrentPage: page, TotalPages: 3}}, nil
	}

	got, err := ListAll(context.Background(), nil, fetch)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if diff := cmp.Diff([]int{10, 11, 20, 21, 30, 31}, got); diff != "" {
		t.Errorf("items mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{1, 2, 3}, pages); diff != "" {
		t.Errorf("pages mismatch (-want +got):\n%s", diff)
	}
}

func TestListAll_StartsAtRequestedPageAndKeepsOptions(t *testing.T) {
	var seen []ListOptions
	fetch := func(ctx context.Context, opts ListOptions) ([]string, *Response, error) {
		seen = append(seen, opts)
		return []string{"x"}, &Response{Pagination: &Pagination{CurrentPage: *opts.Page, TotalPages: 3}}, nil
	}

	_, err := ListAll(context.Background(), &ListOptions{Page: Int(2), PerPage: Int(5), Sort: "id:desc"}, fetch)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []ListOptions{
		{Page: Int(2), PerPage: Int(5), Sort: "id:desc"},
		{Page: Int(3), PerPage: Int(5), Sort: "id:desc"},
	}
	if diff := cmp.Diff(want, seen); diff != "" {
		t.Errorf("options mismatch (-want +got):\n%s", diff)
	}
}

func TestListAll_StopsWithoutPagination(t *testing.T) {
	calls := 0
	fetch := func(ctx context.Context, opts ListOptions) ([]string, *Response, error) {
		calls++
		return []string{"a", "b"}, &Response{}, nil
	}

	got, err := ListAll(context.Background(), nil, fetch)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
	if len(got) != 2 {
		t.Errorf("expected 2 items, got %d", len(got))
	}
}

func TestListAll_NonAdvancingPagination(t *testing.T) {
	tests := []struct {
		name        string
		currentPage func(requested int) int
		wantCalls   int
	}{
		{name: "current page zero", currentPage: func(int) int { return 0 }, wantCalls: 1},
		{name: "stuck on first page", currentPage: func(int) int { return 1 }, wantCalls: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			calls := 0
			fetch := func(ctx context.Context, opts ListOptions) ([]int, *Response, error) {
				calls++
				page := *opts.Page
				return []int{page}, &Response{Pagination: &Pagination{CurrentPage: tt.currentPage(page), TotalPages: 5}}, nil
			}

			got, err := ListAll(ctx, nil, fetch)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if calls != tt.wantCalls {
				t.Errorf("expected %d calls, got %d", tt.wantCalls, calls)
			}
			if len(got) != tt.wantCalls {
				t.Errorf("expected %d items, got %v", tt.wantCalls, got)
			}
		})
	}
}

func TestListAll_StopsAtTotalPages(t *testing.T) {
	calls := 0
	fetch := func(ctx context.Context, opts ListOptions) ([]int, *Response, error) {
		calls++
		// Server echoes a page ahead of the request.
		return []int{*opts.Page}, &Response{Pagination: &Pagination{CurrentPage: *opts.Page + 1, TotalPages: 2}}, nil
	}

	got, err := ListAll(context.Background(), nil, fetch)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]int{1, 2}, got); diff != "" {
		t.Errorf("items mismatch (-want +got):\n%s", diff)
	}
	if calls != 2 {
		t.Errorf("expected 2 calls, got %d", calls)
	}
}

func TestListAll_EmptyResult(t *testing.T) {
	fetch := func(ctx context.Context, opts ListOptions) ([]string, *Response, error) {
		return nil, &Response{Pagination: &Pagination{CurrentPage: 1, TotalPages: 0}}, nil
	}

	got, err := ListAll(context.Background(), nil, fetch)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no items, got %v", got)
	}
}

func TestListAll_ErrorDiscardsPartialResult(t *testing.T) {
	boom := errors.New("boom")
	fetch := func(ctx context.Context, opts ListOptions) ([]string, *Response, error) {
		if *opts.Page == 2 {
			return nil, nil, boom
		}
		return []string{"a"}, &Response{Pagination: &Pagination{CurrentPage: 1, TotalPages: 3}}, nil
	}

	got, err := ListAll(context.Background(), nil, fetch)
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if got != nil {
		t.Errorf("expected nil result on error, got %v", got)
	}
}

func TestListAll_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	fetch := func(ctx context.Context, opts ListOptions) ([]string, *Response, error) {
		calls++
		return nil, nil, nil
	}

	_, err := ListAll(ctx, nil, fetch)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if calls != 0 {
		t.Errorf("expected no calls, got %d", calls)
	}
}

func TestListDomainsAll_OverHTTP(t *testing.T) {
	srv := newRouter(t, map[string]http.HandlerFunc{
		"GET /v2/1010/domains": func(w http.ResponseWriter, r *http.Request) {
			if got := r.URL.Query().Get("name_like"); got != "example" {
				t.Errorf("name_like = %q, want %q", got, "example")
			}
			page, _ := strconv.Atoi(r.URL.Query().Get("page"))
			writeJSON(w, http.StatusOK, listEnvelope([]any{
				map[string]any{"id": page, "account_id": 1010, "name": "example-" + strconv.Itoa(page) + ".com", "state": "hosted"},
			}, page, 2))
		},
	})

	c := newTestClient(t, srv.URL)
	domains, err := c.Domains.ListDomainsAll(context.Background(), "1010", &DomainListOptions{NameLike: "example"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []Domain{
		{ID: 1, AccountID: 1010, Name: "example-1.com", State: "hosted"},
		{ID: 2, AccountID: 1010, Name: "example-2.com", State: "hosted"},
	}
	if diff := cmp.Diff(want, domains); diff != "" {
		t.Errorf("ListDomainsAll() mismatch (-want +got):\n%s", diff)
	}
}
