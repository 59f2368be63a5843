package providers

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"nathanbeddoewebdev/dnsimple/internal/dns/domain"
	"nathanbeddoewebdev/dnsimple/internal/services/auth"
	"nathanbeddoewebdev/dnsimple/internal/util"
)

// Factory builds a DNS provider. It resolves credentials from store and may
// contact the API, so it receives the caller's context.
type Factory func(ctx context.Context, store auth.Store) (domain.Provider, error)

var (
	mu       sync.RWMutex
	registry = map[string]Factory{}
)

// Register adds a provider factory under a case-insensitive name.
// It panics on empty name, nil factory, or duplicate registration.
func Register(name string, factory Factory) {
	key := util.NormalizeKey(name)
	if key == "" {
		panic("dns/providers: empty provider name")
	}
	if factory == nil {
		panic("dns/providers: nil factory")
	}

	mu.Lock()
	defer mu.Unlock()
	if _, exists := registry[key]; exists {
		panic(fmt.Sprintf("dns/providers: provider %q already registered", name))
	}
	registry[key] = factory
}

// Get builds the provider registered under name.
func Get(ctx context.Context, name string, store auth.Store) (domain.Provider, error) {
	mu.RLock()
	factory, ok := registry[util.NormalizeKey(name)]
	mu.RUnlock()

	if !ok {
		known := List()
		if len(known) == 0 {
			return nil, fmt.Errorf("dns/providers: unknown provider %q", name)
		}
		return nil, fmt.Errorf("dns/providers: unknown provider %q (available: %s)", name, strings.Join(known, ", "))
	}

	return factory(ctx, store)
}

// List returns the registered provider names in sorted order.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Reset clears the registry. Tests only.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	registry = map[string]Factory{}
}
