// Package auth stores and resolves DNSimple API tokens.
package auth

import (
	"errors"
	"os"
	"strings"

	"nathanbeddoewebdev/dnsimple/internal/util"
)

const ServiceName = "dnsimple-cli"

// DefaultProvider is the keychain entry the CLI stores its token under.
const DefaultProvider = "dnsimple"

// EnvToken names the environment variable that overrides the stored token.
const EnvToken = "DNSIMPLE_TOKEN"

var ErrTokenNotFound = errors.New("auth token not found")

type Store interface {
	SetToken(provider string, token string) error
	GetToken(provider string) (string, error)
	DeleteToken(provider string) error
}

// DefaultStore returns the standard auth store backed by the OS keychain.
func DefaultStore() Store {
	return NewKeyringStore(ServiceName)
}

// NormalizeProvider normalizes a provider name for consistent key lookup.
func NormalizeProvider(provider string) string {
	return util.NormalizeKey(provider)
}

// TokenSource reports where a resolved token came from.
type TokenSource string

const (
	SourceEnv      TokenSource = "environment"
	SourceKeychain TokenSource = "keychain"
)

// ResolveToken returns the token for provider, preferring $DNSIMPLE_TOKEN
// over the store.
func ResolveToken(store Store, provider string) (string, TokenSource, error) {
	if token := strings.TrimSpace(os.Getenv(EnvToken)); token != "" {
		return token, SourceEnv, nil
	}

	token, err := store.GetToken(provider)
	if err != nil {
		return "", "", err
	}
	return token, SourceKeychain, nil
}
