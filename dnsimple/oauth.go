package dnsimple

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/oauth2"
)

// OauthService handles the OAuth 2 authorization code flow.
type OauthService struct {
	client *Client
}

// GrantType is the OAuth grant used when exchanging a code.
type GrantType string

// AuthorizationCodeGrant is the only grant DNSimple supports.
const AuthorizationCodeGrant = GrantType("authorization_code")

// AccessToken is the result of a successful code exchange.
type AccessToken struct {
	Token     string `json:"access_token"`
	Type      string `json:"token_type"`
	AccountID int64  `json:"account_id"`
	Scope     string `json:"scope,omitempty"`
}

// ExchangeAuthorizationRequest are the parameters for exchanging an
// authorization code for an access token.
type ExchangeAuthorizationRequest struct {
	Code         string    `json:"code"`
	ClientID     string    `json:"client_id"`
	ClientSecret string    `json:"client_secret"`
	RedirectURI  string    `json:"redirect_uri,omitempty"`
	State        string    `json:"state,omitempty"`
	GrantType    GrantType `json:"grant_type,omitempty"`
}

// ExchangeAuthorizationError is the OAuth error body returned when an
// exchange fails.
type ExchangeAuthorizationError struct {
	HTTPResponse *http.Response `json:"-"`

	// ErrorCode is the OAuth error, for example "invalid_grant".
	ErrorCode string `json:"error"`

	// ErrorDescription is the human readable explanation.
	ErrorDescription string `json:"error_description"`
}

func (e *ExchangeAuthorizationError) Error() string {
	status := 0
	if e.HTTPResponse != nil {
		status = e.HTTPResponse.StatusCode
	}
	return fmt.Sprintf("oauth exchange failed: %d %s: %s", status, e.ErrorCode, e.ErrorDescription)
}

// Is maps invalid client and grant errors to ErrUnauthorized.
func (e *ExchangeAuthorizationError) Is(target error) bool {
	switch e.ErrorCode {
	case "invalid_client", "invalid_grant", "unauthorized_client":
		return target == ErrUnauthorized
	case "invalid_request":
		return target == ErrValidation
	}
	return false
}

// AuthorizationOptions are the optional parameters of the authorize URL.
type AuthorizationOptions struct {
	RedirectURI string
	Scope       string
	// State is an opaque value echoed back to the redirect URI. Callers
	// should always set it and compare it on the way back.
	State string
}

// ExchangeAuthorizationForToken exchanges an authorization code for an
// access token.
func (s *OauthService) ExchangeAuthorizationForToken(ctx context.Context, authorization *ExchangeAuthorizationRequest) (*AccessToken, error) {
	if authorization == nil {
		return nil, fmt.Errorf("dnsimple: authorization request is required")
	}
	body := *authorization
	if body.GrantType == "" {
		body.GrantType = AuthorizationCodeGrant
	}

	req, err := s.client.NewRequest(ctx, http.MethodPost, versioned("/oauth/access_token"), body)
	if err != nil {
		return nil, err
	}

	resp, _, err := s.client.send(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("dnsimple: failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		exchangeErr := &ExchangeAuthorizationError{HTTPResponse: resp}
		_ = json.Unmarshal(data, exchangeErr)
		return nil, exchangeErr
	}

	var token AccessToken
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, fmt.Errorf("dnsimple: failed to decode access token: %w", err)
	}
	return &token, nil
}

// AuthorizeURL returns the URL to send a user to in order to start the
// authorization code flow.
func (s *OauthService) AuthorizeURL(clientID string, opts *AuthorizationOptions) string {
	u, _ := url.Parse(s.siteURL() + "/oauth/authorize")

	q := url.Values{}
	q.Set("response_type", "code")
	q.Set("client_id", clientID)
	if opts != nil {
		if opts.RedirectURI != "" {
			q.Set("redirect_uri", opts.RedirectURI)
		}
		if opts.Scope != "" {
			q.Set("scope", opts.Scope)
		}
		if opts.State != "" {
			q.Set("state", opts.State)
		}
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// Endpoint returns the OAuth endpoints for use with golang.org/x/oauth2.
func (s *OauthService) Endpoint() oauth2.Endpoint {
	return oauth2.Endpoint{
		AuthURL:   s.siteURL() + "/oauth/authorize",
		TokenURL:  s.client.BaseURL + versioned("/oauth/access_token"),
		AuthStyle: oauth2.AuthStyleInParams,
	}
}

// Config returns an oauth2.Config for the given application credentials.
func (s *OauthService) Config(clientID, clientSecret, redirectURI string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURI,
		Endpoint:     s.Endpoint(),
	}
}

// siteURL derives the web origin from the API origin by dropping the
// leading "api." host label.
func (s *OauthService) siteURL() string {
	u, err := url.Parse(s.client.BaseURL)
	if err != nil || u.Host == "" {
		return "https://dnsimple.com"
	}
	u.Host = strings.TrimPrefix(u.Host, "api.")
	u.Path = ""
	return u.String()
}
