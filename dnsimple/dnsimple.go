// Package dnsimple is a client for the DNSimple API v2.
//
// Every remote endpoint is exposed as one method on a per-resource service
// hanging off Client. Methods build the request path, encode query or body
// parameters, send the request and unwrap the {data, pagination} envelope
// into plain Go structs.
//
//	client := dnsimple.NewClient(dnsimple.StaticTokenHTTPClient(ctx, token))
//	resp, err := client.Zones.ListRecords(ctx, "1010", "example.com", nil)
package dnsimple

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/google/go-querystring/query"
	"go.uber.org/zap"
)

const (
	// Version identifies this client in the User-Agent header.
	Version = "1.0.0"

	defaultBaseURL = "https://api.dnsimple.com"
	sandboxBaseURL = "https://api.sandbox.dnsimple.com"
	apiVersion     = "v2"
	defaultTimeout = 30 * time.Second
)

// Client talks to the DNSimple API. Create one with NewClient.
type Client struct {
	// BaseURL is the API origin, without the version prefix.
	BaseURL string

	// UserAgent is prepended to the default user agent when set.
	UserAgent string

	httpClient *http.Client
	logger     *zap.Logger

	Identity     *IdentityService
	Accounts     *AccountsService
	Billing      *BillingService
	Certificates *CertificatesService
	Contacts     *ContactsService
	Domains      *DomainsService
	Oauth        *OauthService
	Registrar    *RegistrarService
	Services     *ServicesService
	Templates    *TemplatesService
	Tlds         *TldsService
	Webhooks     *WebhooksService
	Zones        *ZonesService
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at a different API origin.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.BaseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithSandbox points the client at the sandbox environment.
func WithSandbox() Option {
	return WithBaseURL(sandboxBaseURL)
}

// WithUserAgent sets a custom user agent prefix.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.UserAgent = ua
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient returns a Client that sends requests through httpClient.
// Authentication is the job of httpClient's transport; see
// StaticTokenHTTPClient and BasicAuthTransport. A nil httpClient gets a
// plain client with a 30 second timeout.
func NewClient(httpClient *http.Client, opts ...Option) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	c := &Client{
		BaseURL:    defaultBaseURL,
		httpClient: httpClient,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.Identity = &IdentityService{client: c}
	c.Accounts = &AccountsService{client: c}
	c.Billing = &BillingService{client: c}
	c.Certificates = &CertificatesService{client: c}
	c.Contacts = &ContactsService{client: c}
	c.Domains = &DomainsService{client: c}
	c.Oauth = &OauthService{client: c}
	c.Registrar = &RegistrarService{client: c}
	c.Services = &ServicesService{client: c}
	c.Templates = &TemplatesService{client: c}
	c.Tlds = &TldsService{client: c}
	c.Webhooks = &WebhooksService{client: c}
	c.Zones = &ZonesService{client: c}

	return c
}

func (c *Client) userAgent() string {
	base := "dnsimple-go/" + Version
	if c.UserAgent == "" {
		return base
	}
	return c.UserAgent + " " + base
}

// versioned prefixes path with the API version.
func versioned(path string) string {
	return "/" + apiVersion + path
}

// --- Response types ---

// Response wraps the raw HTTP response together with the pagination and
// rate limit metadata the API returns.
type Response struct {
	HTTPResponse *http.Response

	Pagination *Pagination

	// RateLimit is the maximum number of requests per hour.
	RateLimit int

	// RateLimitRemaining is the number of requests left in the current window.
	RateLimitRemaining int

	// RateLimitReset is when the current window resets.
	RateLimitReset time.Time
}

func newResponse(resp *http.Response) *Response {
	r := &Response{HTTPResponse: resp}
	r.RateLimit, _ = strconv.Atoi(resp.Header.Get("X-RateLimit-Limit"))
	r.RateLimitRemaining, _ = strconv.Atoi(resp.Header.Get("X-RateLimit-Remaining"))
	if reset, err := strconv.ParseInt(resp.Header.Get("X-RateLimit-Reset"), 10, 64); err == nil && reset > 0 {
		r.RateLimitReset = time.Unix(reset, 0).UTC()
	}
	return r
}

// envelope is the {data, pagination} wrapper around every payload.
type envelope[T any] struct {
	Data       T           `json:"data"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// --- HTTP helpers ---

// NewRequest builds a request for the given versioned API path. A non-nil
// body is encoded as JSON.
func (c *Client) NewRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var bodyReader io.Reader
	hasBody := !isNilBody(body)
	if hasBody {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("dnsimple: failed to encode request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("dnsimple: failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent())
	if hasBody {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, nil
}

// isNilBody reports whether body is nil or a nil pointer.
func isNilBody(body any) bool {
	if body == nil {
		return true
	}
	v := reflect.ValueOf(body)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// Do sends req and decodes a successful JSON body into out. A non-2xx status
// yields an *ErrorResponse. out may be nil, in which case the body is
// discarded.
func (c *Client) Do(req *http.Request, out any) (*Response, error) {
	resp, response, err := c.send(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := checkResponse(resp); err != nil {
		return response, err
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return response, nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return response, fmt.Errorf("dnsimple: failed to read response: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return response, nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return response, fmt.Errorf("dnsimple: failed to decode response: %w", err)
	}

	return response, nil
}

// send performs req and logs its outcome. The caller closes the body.
func (c *Client) send(req *http.Request) (*http.Response, *Response, error) {
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("request failed",
			zap.String("method", req.Method),
			zap.String("path", req.URL.Path),
			zap.Error(err),
		)
		return nil, nil, fmt.Errorf("dnsimple: request failed: %w", err)
	}

	response := newResponse(resp)
	c.logger.Debug("request completed",
		zap.String("method", req.Method),
		zap.String("path", req.URL.Path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
		zap.Int("rate_limit_remaining", response.RateLimitRemaining),
	)
	return resp, response, nil
}

// request builds and sends a request against a versioned path, decoding the
// envelope into out.
func (c *Client) request(ctx context.Context, method, path string, body any, out any) (*Response, error) {
	req, err := c.NewRequest(ctx, method, versioned(path), body)
	if err != nil {
		return nil, err
	}
	return c.Do(req, out)
}

// getData fetches path and unwraps a single-object envelope.
func getData[T any](ctx context.Context, c *Client, method, path string, body any) (T, *Response, error) {
	var out envelope[T]
	resp, err := c.request(ctx, method, path, body, &out)
	if err != nil {
		var zero T
		return zero, resp, err
	}
	return out.Data, resp, nil
}

// getList fetches a paginated list and stores the pagination on the response.
func getList[T any](ctx context.Context, c *Client, path string, opts any) ([]T, *Response, error) {
	path, err := addURLQueryOptions(path, opts)
	if err != nil {
		return nil, nil, err
	}

	var out envelope[[]T]
	resp, err := c.request(ctx, http.MethodGet, path, nil, &out)
	if err != nil {
		return nil, resp, err
	}
	resp.Pagination = out.Pagination
	return out.Data, resp, nil
}

// addURLQueryOptions encodes opts with its url struct tags and merges the
// result into the query string of path. Nil options leave path unchanged.
func addURLQueryOptions(path string, opts any) (string, error) {
	qs, err := query.Values(opts)
	if err != nil {
		return path, fmt.Errorf("dnsimple: failed to encode query options: %w", err)
	}
	if len(qs) == 0 {
		return path, nil
	}

	u, err := url.Parse(path)
	if err != nil {
		return path, fmt.Errorf("dnsimple: invalid path %q: %w", path, err)
	}

	existing := u.Query()
	for k, vs := range qs {
		for _, v := range vs {
			existing.Add(k, v)
		}
	}
	u.RawQuery = existing.Encode()
	return u.String(), nil
}

// --- Small value helpers ---

// Int returns a pointer to v.
func Int(v int) *int { return &v }

// String returns a pointer to v.
func String(v string) *string { return &v }

// Bool returns a pointer to v.
func Bool(v bool) *bool { return &v }
