package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ServerURL != DefaultServerURL {
		t.Errorf("server = %q, want default %q", cfg.ServerURL, DefaultServerURL)
	}
	if cfg.TokenPath == "" {
		t.Error("token path should resolve to a default")
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("STORECTL_SERVER", "http://store.internal:9090")
	t.Setenv("STORECTL_TOKEN_FILE", "/tmp/storectl-test-token")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ServerURL != "http://store.internal:9090" {
		t.Errorf("server = %q", cfg.ServerURL)
	}
	if cfg.TokenPath != "/tmp/storectl-test-token" {
		t.Errorf("token path = %q", cfg.TokenPath)
	}
}
