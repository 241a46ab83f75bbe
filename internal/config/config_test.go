package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const baseYAML = `
server:
  host: 127.0.0.1
  port: 8080
  mode: debug
database:
  driver: sqlite
  sqlite:
    path: data/test.db
auth:
  jwt_secret: unit-test-secret
  issuer: ong-api
  token_expiry: 12h
`

func writeConfig(t *testing.T, yaml string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, baseYAML))
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Server.Host != "127.0.0.1" || cfg.Server.Port != 8080 {
		t.Errorf("server = %+v", cfg.Server)
	}
	if cfg.Database.Driver != "sqlite" || cfg.Database.SQLite.Path != "data/test.db" {
		t.Errorf("database = %+v", cfg.Database)
	}
	if got := cfg.Auth.TokenExpiryDuration(); got != 12*time.Hour {
		t.Errorf("TokenExpiryDuration() = %v, want 12h", got)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("APP__SERVER__PORT", "9090")
	t.Setenv("APP__AUTH__JWT_SECRET", "from-env")

	cfg, err := Load(writeConfig(t, baseYAML))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("port = %d, want the env override 9090", cfg.Server.Port)
	}
	if cfg.Auth.JWTSecret != "from-env" {
		t.Errorf("jwt_secret = %q, want the env override", cfg.Auth.JWTSecret)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server: ServerConfig{Host: "localhost", Port: 8080, Mode: "debug"},
			Database: DatabaseConfig{
				Driver: "sqlite",
				SQLite: SQLiteConfig{Path: "data/app.db"},
			},
			Auth: AuthConfig{JWTSecret: "a-real-secret"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"bad mode", func(c *Config) { c.Server.Mode = "prod" }, true},
		{"port out of range", func(c *Config) { c.Server.Port = 70000 }, true},
		{"missing host", func(c *Config) { c.Server.Host = "  " }, true},
		{"unknown driver", func(c *Config) { c.Database.Driver = "mysql" }, true},
		{"sqlite without path", func(c *Config) { c.Database.SQLite.Path = "" }, true},
		{"missing secret", func(c *Config) { c.Auth.JWTSecret = "" }, true},
		{"placeholder secret in release", func(c *Config) {
			c.Server.Mode = "release"
			c.Auth.JWTSecret = "change-me-to-a-random-secret"
		}, true},
		{"placeholder secret in debug", func(c *Config) {
			c.Auth.JWTSecret = "change-me-to-a-random-secret"
		}, false},
		{"bad token expiry", func(c *Config) { c.Auth.TokenExpiry = "soon" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestTokenExpiryDurationDefault(t *testing.T) {
	tests := []struct {
		raw  string
		want time.Duration
	}{
		{"", 24 * time.Hour},
		{"garbage", 24 * time.Hour},
		{"-1h", 24 * time.Hour},
		{"30m", 30 * time.Minute},
	}
	for _, tt := range tests {
		a := AuthConfig{TokenExpiry: tt.raw}
		if got := a.TokenExpiryDuration(); got != tt.want {
			t.Errorf("TokenExpiryDuration(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}
