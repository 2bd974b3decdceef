package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"retail-price/internal/config"
)

func TestConfigInitWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "retail-price.json")

	configInitCmd.SetOut(new(bytes.Buffer))
	if err := runConfigInit(configInitCmd, []string{path}); err != nil {
		t.Fatalf("config init: %v", err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("loading written config: %v", err)
	}
	if cfg.Pricing.DefaultProfile != "smartphone" {
		t.Errorf("default_profile = %q, want smartphone", cfg.Pricing.DefaultProfile)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("server addr = %q, want :8080", cfg.Server.Addr)
	}
}

func TestConfigInitRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "retail-price.json")
	if err := os.WriteFile(path, []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}

	configInitCmd.SetOut(new(bytes.Buffer))
	if err := runConfigInit(configInitCmd, []string{path}); err == nil {
		t.Error("expected error when config file already exists")
	}
}

func TestConfigShowPrintsActiveConfig(t *testing.T) {
	var buf bytes.Buffer
	configShowCmd.SetOut(&buf)
	if err := runConfigShow(configShowCmd, nil); err != nil {
		t.Fatalf("config show: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, `"default_profile"`) {
		t.Errorf("output missing default_profile:\n%s", out)
	}
}
