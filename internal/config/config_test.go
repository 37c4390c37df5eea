package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

const validYAML = `
log:
  level: "debug"
  format: "text"

dictionary:
  dir: "./dicts"

anki:
  url: "http://localhost:8765"
  timeout: "10s"
  models:
    Mining:
      term_field: "Word"
      reading_field: "Reading"

matcher:
  threshold: 0.65
  high: 0.9
  medium: 0.7
  low: 0.5

pipeline:
  workers: 8
  known_interval_days: 30
`

func TestLoad_FromYAML(t *testing.T) {
	path := writeYAML(t, t.TempDir(), validYAML)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Log.Level != "debug" {
		t.Errorf("log.level = %q, want debug", cfg.Log.Level)
	}
	if cfg.Dictionary.Dir != "./dicts" {
		t.Errorf("dictionary.dir = %q, want ./dicts", cfg.Dictionary.Dir)
	}
	if cfg.Anki.Timeout != 10*time.Second {
		t.Errorf("anki.timeout = %v, want 10s", cfg.Anki.Timeout)
	}
	m, ok := cfg.Anki.Models["Mining"]
	if !ok {
		t.Fatal("anki.models missing Mining")
	}
	if m.TermField != "Word" || m.ReadingField != "Reading" {
		t.Errorf("anki.models.Mining = %+v", m)
	}
	if cfg.Matcher.Threshold != 0.65 {
		t.Errorf("matcher.threshold = %v, want 0.65", cfg.Matcher.Threshold)
	}
	if cfg.Pipeline.Workers != 8 {
		t.Errorf("pipeline.workers = %d, want 8", cfg.Pipeline.Workers)
	}
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	path := writeYAML(t, t.TempDir(), validYAML)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("DICT_DIR", "/data/dicts")
	t.Setenv("PIPELINE_WORKERS", "2")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Dictionary.Dir != "/data/dicts" {
		t.Errorf("dictionary.dir = %q, want /data/dicts", cfg.Dictionary.Dir)
	}
	if cfg.Pipeline.Workers != 2 {
		t.Errorf("pipeline.workers = %d, want 2", cfg.Pipeline.Workers)
	}
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Anki.URL != "http://127.0.0.1:8765" {
		t.Errorf("anki.url = %q", cfg.Anki.URL)
	}
	if cfg.Matcher.Threshold != 0.60 {
		t.Errorf("matcher.threshold = %v, want 0.60", cfg.Matcher.Threshold)
	}
	if cfg.Pipeline.KnownIntervalDays != 21 {
		t.Errorf("pipeline.known_interval_days = %d, want 21", cfg.Pipeline.KnownIntervalDays)
	}
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	t.Setenv("CONFIG_PATH", "/nonexistent/config.yaml")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	valid := func() Config {
		return Config{
			Dictionary: DictionaryConfig{Dir: "./dicts"},
			Matcher:    MatcherConfig{Threshold: 0.6, High: 0.85, Medium: 0.7, Low: 0.55},
			Pipeline:   PipelineConfig{Workers: 4, KnownIntervalDays: 21},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "empty dictionary dir", mutate: func(c *Config) { c.Dictionary.Dir = "" }, wantErr: true},
		{name: "threshold zero", mutate: func(c *Config) { c.Matcher.Threshold = 0 }, wantErr: true},
		{name: "threshold above one", mutate: func(c *Config) { c.Matcher.Threshold = 1.5 }, wantErr: true},
		{name: "unordered confidence values", mutate: func(c *Config) { c.Matcher.Medium = 0.9 }, wantErr: true},
		{name: "no workers", mutate: func(c *Config) { c.Pipeline.Workers = 0 }, wantErr: true},
		{name: "zero known interval", mutate: func(c *Config) { c.Pipeline.KnownIntervalDays = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
