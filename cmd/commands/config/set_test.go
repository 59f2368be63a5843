package config

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"nathanbeddoewebdev/dnsimple/internal/config"

	"github.com/google/go-cmp/cmp"
)

// setupTestConfig points the config package at a temp file and returns its path.
func setupTestConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	config.SetPath(path)
	t.Cleanup(config.ResetPath)
	return path
}

// execConfig creates the config command, wires up output buffers, runs with the
// given args, and returns what was written to stdout and stderr.
func execConfig(t *testing.T, args ...string) (stdout, stderr string) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	cmd := NewCommand()
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)
	cmd.Execute()
	return outBuf.String(), errBuf.String()
}

func TestSet_Account(t *testing.T) {
	setupTestConfig(t)

	stdout, stderr := execConfig(t, "set", "account", "1010")

	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if !strings.Contains(stdout, `account set to "1010"`) {
		t.Errorf("expected confirmation with account ID, got: %s", stdout)
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Account != "1010" {
		t.Errorf("expected Account %q, got %q", "1010", cfg.Account)
	}
}

func TestSet_Account_Invalid(t *testing.T) {
	path := setupTestConfig(t)

	_, stderr := execConfig(t, "set", "account", "my-account")

	if !strings.Contains(stderr, "must be numeric") {
		t.Errorf("expected validation error, got: %s", stderr)
	}

	cfg, err := config.LoadFrom(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Account != "" {
		t.Errorf("expected nothing saved, got Account %q", cfg.Account)
	}
}

func TestSet_Sandbox_CaseInsensitive(t *testing.T) {
	setupTestConfig(t)

	stdout, stderr := execConfig(t, "set", "sandbox", "TRUE")

	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if !strings.Contains(stdout, `sandbox set to "true"`) {
		t.Errorf("expected normalized value, got: %s", stdout)
	}
}

func TestSet_KeepsOtherKeys(t *testing.T) {
	path := setupTestConfig(t)

	if err := (&config.Config{Account: "1010"}).SaveTo(path); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	execConfig(t, "set", "base-url", "http://localhost:8080/")

	got, err := config.LoadFrom(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	want := &config.Config{Account: "1010", BaseURL: "http://localhost:8080"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestSet_UnknownKey(t *testing.T) {
	setupTestConfig(t)

	_, stderr := execConfig(t, "set", "bogus-key", "value")

	if !strings.Contains(stderr, "unknown configuration key") {
		t.Errorf("expected 'unknown configuration key' error, got: %s", stderr)
	}
}
