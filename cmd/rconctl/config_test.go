package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadClientConfigDefaultsAndOverrides(t *testing.T) {
	cfg, err := loadClientConfig("ex.config.toml")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Address != "127.0.0.1:34198" {
		t.Fatalf("unexpected address: %q", cfg.Address)
	}
	if cfg.Password != "admin" {
		t.Fatalf("unexpected password: %q", cfg.Password)
	}
	if cfg.Session.ConnectTimeout != 5*time.Second {
		t.Fatalf("unexpected connect timeout: %v", cfg.Session.ConnectTimeout)
	}
	if cfg.Session.ReadTimeout != 10*time.Second {
		t.Fatalf("unexpected read timeout: %v", cfg.Session.ReadTimeout)
	}
	if cfg.Session.MultiPacket {
		t.Fatal("expected multi_packet disabled")
	}
	if cfg.Session.CommandsPerSecond != 4.0 {
		t.Fatalf("unexpected commands_per_second: %v", cfg.Session.CommandsPerSecond)
	}
	if cfg.Session.CommandBurst != 2 {
		t.Fatalf("unexpected command_burst: %d", cfg.Session.CommandBurst)
	}
	// Keys absent from the file keep session defaults.
	if cfg.Session.Limits.MaxPacketBytes != 16*1024*1024 {
		t.Fatalf("unexpected packet limit: %d", cfg.Session.Limits.MaxPacketBytes)
	}
}

func TestLoadClientConfigRequiresAddress(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("password = \"admin\"\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := loadClientConfig(path); err == nil {
		t.Fatal("expected missing-address error")
	}
}

func TestLoadClientConfigRejectsBadDuration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := "address = \"127.0.0.1:34198\"\nread_timeout = \"soon\"\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := loadClientConfig(path); err == nil {
		t.Fatal("expected duration parse error")
	}
}
