package auth

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zalando/go-keyring"
)

// KeyringStore keeps tokens in the OS keychain, one entry per provider
// under a shared service name.
type KeyringStore struct {
	serviceName string
}

func NewKeyringStore(serviceName string) *KeyringStore {
	if serviceName == "" {
		serviceName = ServiceName
	}
	return &KeyringStore{serviceName: serviceName}
}

func (k *KeyringStore) SetToken(provider string, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return fmt.Errorf("auth: refusing to store an empty token")
	}
	if err := keyring.Set(k.serviceName, NormalizeProvider(provider), token); err != nil {
		return fmt.Errorf("auth: failed to write keychain: %w", err)
	}
	return nil
}

func (k *KeyringStore) GetToken(provider string) (string, error) {
	token, err := keyring.Get(k.serviceName, NormalizeProvider(provider))
	switch {
	case err == nil:
		return token, nil
	case errors.Is(err, keyring.ErrNotFound):
		return "", ErrTokenNotFound
	default:
		return "", fmt.Errorf("auth: failed to read keychain: %w", err)
	}
}

func (k *KeyringStore) DeleteToken(provider string) error {
	err := keyring.Delete(k.serviceName, NormalizeProvider(provider))
	if errors.Is(err, keyring.ErrNotFound) {
		return ErrTokenNotFound
	}
	if err != nil {
		return fmt.Errorf("auth: failed to delete keychain entry: %w", err)
	}
	return nil
}
