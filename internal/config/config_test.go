package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestResolveValid(t *testing.T) {
	tests := []struct {
		name    string
		environ map[string]string
		port    string
		env     string
	}{
		{"production", map[string]string{"PORT": "8080", "NODE_ENV": "production"}, "8080", "production"},
		{"development", map[string]string{"PORT": "3000", "NODE_ENV": "development"}, "3000", "development"},
		{"minimum lengths", map[string]string{"PORT": "80", "NODE_ENV": "dev"}, "80", "dev"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Resolve(t.TempDir(), tt.environ)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.Port != tt.port || cfg.Env != tt.env {
				t.Fatalf("got PORT=%q NODE_ENV=%q, want %q %q", cfg.Port, cfg.Env, tt.port, tt.env)
			}
		})
	}
}

func TestResolveInvalid(t *testing.T) {
	tests := []struct {
		name    string
		environ map[string]string
		wants   []string
	}{
		{"missing port", map[string]string{"NODE_ENV": "production"}, []string{"PORT is required"}},
		{"short port", map[string]string{"PORT": "8", "NODE_ENV": "production"}, []string{"PORT must be at least 2 characters"}},
		{"short mode", map[string]string{"PORT": "8080", "NODE_ENV": "pr"}, []string{"NODE_ENV must be at least 3 characters"}},
		{"everything missing", map[string]string{}, []string{"PORT is required", "NODE_ENV is required"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(t.TempDir(), tt.environ)
			if !errors.Is(err, ErrInvalidEnvironment) {
				t.Fatalf("expected ErrInvalidEnvironment, got %v", err)
			}
			for _, want := range tt.wants {
				if !strings.Contains(err.Error(), want) {
					t.Errorf("error %q does not mention %q", err.Error(), want)
				}
			}
		})
	}
}

func TestResolveDefaults(t *testing.T) {
	cfg, err := Resolve(t.TempDir(), map[string]string{"PORT": "8080", "NODE_ENV": "production"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.AppName != "upload-api" {
		t.Errorf("AppName = %q", cfg.AppName)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
	if cfg.HTTP.ShutdownTimeout != 10*time.Second {
		t.Errorf("ShutdownTimeout = %v", cfg.HTTP.ShutdownTimeout)
	}
	if cfg.HTTP.MaxBodyBytes != 1<<20 {
		t.Errorf("MaxBodyBytes = %d", cfg.HTTP.MaxBodyBytes)
	}
	if len(cfg.HTTP.CORSAllowedOrigins) != 0 {
		t.Errorf("CORSAllowedOrigins = %v, want none", cfg.HTTP.CORSAllowedOrigins)
	}
}

func TestResolveReadsModeFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".env.dev"), "PORT=3000\nLOG_LEVEL=debug\n")
	writeFile(t, filepath.Join(dir, ".env.prod"), "PORT=9000\n")

	cfg, err := Resolve(dir, map[string]string{"NODE_ENV": "development"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "3000" || cfg.LogLevel != "debug" {
		t.Fatalf("got PORT=%q LOG_LEVEL=%q from .env.dev", cfg.Port, cfg.LogLevel)
	}

	cfg, err = Resolve(dir, map[string]string{"NODE_ENV": "staging"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "9000" {
		t.Fatalf("got PORT=%q, want value from .env.prod", cfg.Port)
	}
}

func TestResolveProcessEnvWins(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".env.prod"), "PORT=9000\nNODE_ENV=production\n")

	cfg, err := Resolve(dir, map[string]string{"PORT": "7070"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "7070" {
		t.Errorf("PORT = %q, want process value", cfg.Port)
	}
	if cfg.Env != "production" {
		t.Errorf("NODE_ENV = %q, want file value", cfg.Env)
	}
}

func TestLoadDirUsesProcessEnvironment(t *testing.T) {
	t.Setenv("PORT", "4040")
	t.Setenv("NODE_ENV", "production")
	t.Setenv("HTTP_CORS_ALLOWED_ORIGINS", "http://a.test,http://b.test")

	cfg, err := LoadDir(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "4040" {
		t.Errorf("PORT = %q", cfg.Port)
	}
	if len(cfg.HTTP.CORSAllowedOrigins) != 2 {
		t.Errorf("CORSAllowedOrigins = %v", cfg.HTTP.CORSAllowedOrigins)
	}
}

func TestAddress(t *testing.T) {
	cfg := Config{Port: "8080"}
	if got := cfg.Address(); got != ":8080" {
		t.Errorf("Address() = %q", got)
	}
	cfg.HTTP.Host = "127.0.0.1"
	if got := cfg.Address(); got != "127.0.0.1:8080" {
		t.Errorf("Address() = %q", got)
	}
}

func TestEnvFile(t *testing.T) {
	if got := EnvFile("development"); got != ".env.dev" {
		t.Errorf("EnvFile(development) = %q", got)
	}
	for _, mode := range []string{"production", "test", ""} {
		if got := EnvFile(mode); got != ".env.prod" {
			t.Errorf("EnvFile(%q) = %q", mode, got)
		}
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
