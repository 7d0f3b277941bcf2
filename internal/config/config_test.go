package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, "service:\n  name: radar-test\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Service.Name != "radar-test" {
		t.Errorf("Service.Name = %q, want radar-test", cfg.Service.Name)
	}
	if cfg.Service.Port != defaultServicePort {
		t.Errorf("Service.Port = %d, want default %d", cfg.Service.Port, defaultServicePort)
	}
	if cfg.Pipeline.TopN != defaultTopN {
		t.Errorf("Pipeline.TopN = %d, want default %d", cfg.Pipeline.TopN, defaultTopN)
	}
	if cfg.Logging.Level != defaultLogLevel {
		t.Errorf("Logging.Level = %q, want default %q", cfg.Logging.Level, defaultLogLevel)
	}
	if cfg.Database.SSLMode != defaultDBSSLMode {
		t.Errorf("Database.SSLMode = %q, want default %q", cfg.Database.SSLMode, defaultDBSSLMode)
	}
}

func TestLoad_FileValuesOverrideDefaults(t *testing.T) {
	path := writeConfig(t, `
service:
  port: 9999
  read_timeout: 5s
pipeline:
  top_n: 12
ranking:
  fit_weight: 0.5
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Service.Port != 9999 {
		t.Errorf("Service.Port = %d, want 9999", cfg.Service.Port)
	}
	if cfg.Service.ReadTimeout != 5*time.Second {
		t.Errorf("Service.ReadTimeout = %v, want 5s", cfg.Service.ReadTimeout)
	}
	if cfg.Pipeline.TopN != 12 {
		t.Errorf("Pipeline.TopN = %d, want 12", cfg.Pipeline.TopN)
	}
	if cfg.Ranking.FitWeight != 0.5 {
		t.Errorf("Ranking.FitWeight = %v, want 0.5", cfg.Ranking.FitWeight)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "service:\n  port: 9999\npipeline:\n  top_n: 12\n")

	t.Setenv("RADAR_PORT", "7070")
	t.Setenv("RADAR_TOP_N", "5")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Service.Port != 7070 {
		t.Errorf("Service.Port = %d, want env override 7070", cfg.Service.Port)
	}
	if cfg.Pipeline.TopN != 5 {
		t.Errorf("Pipeline.TopN = %d, want env override 5", cfg.Pipeline.TopN)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}
