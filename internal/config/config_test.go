package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoad_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent", "config.json")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(&Config{}, cfg); diff != "" {
		t.Errorf("expected zero config (-want +got):\n%s", diff)
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dnsimple-cli", "config.json")

	want := &Config{Account: "1010", Sandbox: true, BaseURL: "http://localhost:8080"}
	if err := want.SaveTo(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestSave_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "deep")
	path := filepath.Join(dir, "config.json")

	cfg := &Config{Account: "1010"}
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected config file at %s: %v", path, err)
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json}"), 0o644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	_, err := LoadFrom(path)
	if err == nil {
		t.Fatal("expected error for invalid JSON, got nil")
	}
}

func TestSave_OverwritesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	first := &Config{Account: "1010", Sandbox: true}
	if err := first.SaveTo(path); err != nil {
		t.Fatalf("first Save failed: %v", err)
	}

	second := &Config{Account: "2020"}
	if err := second.SaveTo(path); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}

	got, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if diff := cmp.Diff(second, got); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestSave_OmitsUnsetFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	if err := (&Config{Account: "1010"}).SaveTo(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read config: %v", err)
	}
	want := "{\n  \"account\": \"1010\"\n}\n"
	if string(data) != want {
		t.Errorf("file contents = %q, want %q", data, want)
	}
}

func TestSave_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	for _, account := range []string{"1010", "2020"} {
		if err := (&Config{Account: account}).SaveTo(path); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "config.json" {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("expected only config.json, got %v", names)
	}
}

func TestUpdate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	SetPath(path)
	t.Cleanup(ResetPath)

	if err := (&Config{Account: "1010"}).SaveTo(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	err := Update(func(c *Config) error {
		c.Sandbox = true
		return nil
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if diff := cmp.Diff(&Config{Account: "1010", Sandbox: true}, got); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestUpdate_ErrorSkipsSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	SetPath(path)
	t.Cleanup(ResetPath)

	boom := errors.New("boom")
	err := Update(func(c *Config) error {
		c.Account = "9999"
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("expected no config file to be written, stat err = %v", err)
	}
}

func TestApplyEnv(t *testing.T) {
	tests := []struct {
		name    string
		base    Config
		env     map[string]string
		want    Config
		wantErr bool
	}{
		{
			name: "no overrides",
			base: Config{Account: "1010"},
			want: Config{Account: "1010"},
		},
		{
			name: "env wins over file",
			base: Config{Account: "1010", BaseURL: "https://a.test"},
			env:  map[string]string{EnvAccount: " 2020 ", EnvSandbox: "true", EnvBaseURL: "https://b.test"},
			want: Config{Account: "2020", Sandbox: true, BaseURL: "https://b.test"},
		},
		{
			name: "blank values are ignored",
			base: Config{Account: "1010", Sandbox: true},
			env:  map[string]string{EnvAccount: "", EnvSandbox: "  "},
			want: Config{Account: "1010", Sandbox: true},
		},
		{
			name: "sandbox can be switched off",
			base: Config{Sandbox: true},
			env:  map[string]string{EnvSandbox: "0"},
			want: Config{},
		},
		{
			name:    "invalid sandbox",
			env:     map[string]string{EnvSandbox: "maybe"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.base
			err := cfg.applyEnv(func(key string) (string, bool) {
				v, ok := tt.env[key]
				return v, ok
			})
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, cfg); diff != "" {
				t.Errorf("config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	SetPath(path)
	t.Cleanup(ResetPath)

	if err := (&Config{Account: "1010"}).SaveTo(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	t.Setenv(EnvAccount, "")
	t.Setenv(EnvSandbox, "true")
	t.Setenv(EnvBaseURL, "")

	cfg, err := Resolve()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(&Config{Account: "1010", Sandbox: true}, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}
