package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Storage.Driver != StorageFile || cfg.Invoice.Prefix != "NL" || cfg.Server.Port != "8080" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	yaml := []byte(`
server:
  port: "9090"
storage:
  driver: memory
invoice:
  prefix: FAC
security:
  hash_passwords: true
`)
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), yaml, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != "9090" || cfg.Storage.Driver != StorageMemory || cfg.Invoice.Prefix != "FAC" || !cfg.Security.HashPasswords {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.RateLimit.MaxRequests != 600 {
		t.Fatalf("defaults should fill missing keys, got %d", cfg.RateLimit.MaxRequests)
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Storage.Driver = "floppy"
	if err := cfg.Validate(); err == nil {
		t.Fatalf("unknown driver should fail")
	}

	cfg = Default()
	cfg.Storage.Driver = StorageMinio
	if err := cfg.Validate(); err == nil {
		t.Fatalf("minio without endpoint should fail")
	}

	cfg = Default()
	cfg.Invoice.Prefix = ""
	if err := cfg.Validate(); err == nil {
		t.Fatalf("empty invoice prefix should fail")
	}
}
