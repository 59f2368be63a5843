package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Environment variables that override file settings.
const (
	EnvAccount = "DNSIMPLE_ACCOUNT"
	EnvSandbox = "DNSIMPLE_SANDBOX"
	EnvBaseURL = "DNSIMPLE_BASE_URL"
)

// Resolve loads the config file and applies environment overrides on top.
func Resolve() (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvAccount); ok && strings.TrimSpace(v) != "" {
		c.Account = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvSandbox); ok && strings.TrimSpace(v) != "" {
		sandbox, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("config: invalid %s value %q: %w", EnvSandbox, v, err)
		}
		c.Sandbox = sandbox
	}
	if v, ok := lookup(EnvBaseURL); ok && strings.TrimSpace(v) != "" {
		c.BaseURL = strings.TrimSpace(v)
	}
	return nil
}
