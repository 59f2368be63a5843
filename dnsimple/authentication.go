package dnsimple

import (
	"context"
	"net/http"

	"golang.org/x/oauth2"
)

// StaticTokenHTTPClient returns an *http.Client that sends token as a Bearer
// credential on every request. It works for both account API tokens and
// OAuth access tokens.
func StaticTokenHTTPClient(ctx context.Context, token string) *http.Client {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	client := oauth2.NewClient(ctx, ts)
	client.Timeout = defaultTimeout
	return client
}

// BasicAuthTransport authenticates with HTTP basic credentials. OTPToken is
// sent as X-Dnsimple-OTP when two-factor authentication is enabled.
type BasicAuthTransport struct {
	Username string
	Password string
	OTPToken string

	// Transport is the underlying round tripper. http.DefaultTransport when nil.
	Transport http.RoundTripper
}

// RoundTrip implements http.RoundTripper.
func (t *BasicAuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	r := req.Clone(req.Context())
	r.SetBasicAuth(t.Username, t.Password)
	if t.OTPToken != "" {
		r.Header.Set("X-Dnsimple-OTP", t.OTPToken)
	}
	return t.transport().RoundTrip(r)
}

// Client returns an *http.Client that authenticates through t.
func (t *BasicAuthTransport) Client() *http.Client {
	return &http.Client{Transport: t, Timeout: defaultTimeout}
}

func (t *BasicAuthTransport) transport() http.RoundTripper {
	if t.Transport != nil {
		return t.Transport
	}
	return http.DefaultTransport
}
