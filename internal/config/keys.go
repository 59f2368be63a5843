package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"nathanbeddoewebdev/dnsimple/internal/util"
)

// KeySpec describes a single configuration key.
type KeySpec struct {
	// Name is the CLI-facing key name (e.g. "account").
	Name string

	// Description is a short human-readable explanation shown in help text.
	Description string

	// Get returns the current value for this key from a loaded Config.
	// An empty string means the key is not set.
	Get func(cfg *Config) string

	// Set validates value and applies it to the given Config (in memory
	// only; the caller is responsible for calling Save). It returns the
	// stored form of the value.
	Set func(cfg *Config, value string) (string, error)
}

// Keys is the authoritative list of all supported configuration keys.
// To add a new option: add a field to Config and append a KeySpec here.
var Keys = []KeySpec{
	{
		Name:        "account",
		Description: "DNSimple account ID used for DNS commands",
		Get:         func(cfg *Config) string { return cfg.Account },
		Set: func(cfg *Config, v string) (string, error) {
			v = strings.TrimSpace(v)
			if err := util.ValidateAccountID(v); err != nil {
				return "", err
			}
			cfg.Account = v
			return v, nil
		},
	},
	{
		Name:        "sandbox",
		Description: "Use the DNSimple sandbox environment (true/false)",
		Get: func(cfg *Config) string {
			if !cfg.Sandbox {
				return ""
			}
			return "true"
		},
		Set: func(cfg *Config, v string) (string, error) {
			sandbox, err := strconv.ParseBool(util.NormalizeKey(v))
			if err != nil {
				return "", fmt.Errorf("sandbox must be true or false, got %q", v)
			}
			cfg.Sandbox = sandbox
			return strconv.FormatBool(sandbox), nil
		},
	},
	{
		Name:        "base-url",
		Description: "API origin override (e.g. http://localhost:8080)",
		Get:         func(cfg *Config) string { return cfg.BaseURL },
		Set: func(cfg *Config, v string) (string, error) {
			v = strings.TrimRight(strings.TrimSpace(v), "/")
			if v == "" {
				cfg.BaseURL = ""
				return "", nil
			}
			u, err := url.Parse(v)
			if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
				return "", fmt.Errorf("base-url must be an absolute http(s) URL, got %q", v)
			}
			cfg.BaseURL = v
			return v, nil
		},
	},
}

// Lookup returns the KeySpec for the given name, or nil if not found.
// The name is matched case-insensitively after trimming whitespace.
func Lookup(name string) *KeySpec {
	normalized := util.NormalizeKey(name)
	for i := range Keys {
		if Keys[i].Name == normalized {
			return &Keys[i]
		}
	}
	return nil
}

// KeyNames returns the names of all registered keys.
func KeyNames() []string {
	names := make([]string, len(Keys))
	for i, k := range Keys {
		names[i] = k.Name
	}
	return names
}

// KeysHelp builds a formatted block listing all available keys and their
// descriptions, suitable for inclusion in Cobra Long help text.
func KeysHelp() string {
	if len(Keys) == 0 {
		return ""
	}

	maxLen := 0
	for _, k := range Keys {
		if len(k.Name) > maxLen {
			maxLen = len(k.Name)
		}
	}

	var b strings.Builder
	b.WriteString("Available keys:\n")
	for _, k := range Keys {
		fmt.Fprintf(&b, "  %-*s   %s\n", maxLen, k.Name, k.Description)
	}
	return b.String()
}
