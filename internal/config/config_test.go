package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vango-dev/vattr/internal/errors"
)

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.Serve.Port != DefaultPort {
		t.Errorf("Serve.Port = %d, want %d", cfg.Serve.Port, DefaultPort)
	}
	if cfg.Serve.Host != DefaultHost {
		t.Errorf("Serve.Host = %q, want %q", cfg.Serve.Host, DefaultHost)
	}
	if cfg.Metrics.Namespace != DefaultNamespace {
		t.Errorf("Metrics.Namespace = %q, want %q", cfg.Metrics.Namespace, DefaultNamespace)
	}
	if !cfg.Render.EscapeAttributes {
		t.Error("Render.EscapeAttributes should default to true")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()

	// Test loading non-existent config
	_, err := Load(tmpDir)
	if errors.Code(err) != "E100" {
		t.Errorf("error = %v, want E100", err)
	}

	configPath := filepath.Join(tmpDir, ConfigFileName)
	configJSON := `{
  "render": {
    "pretty": true
  },
  "serve": {
    "port": 9090,
    "tick": "250ms"
  },
  "log": {
    "level": "debug"
  },
  "publish": {
    "target": "s3://site/index.html",
    "region": "eu-west-1"
  }
}
`
	if err := os.WriteFile(configPath, []byte(configJSON), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if !cfg.Render.Pretty {
		t.Error("Render.Pretty should be true")
	}
	if cfg.Render.Indent != DefaultIndent {
		t.Errorf("Render.Indent = %q, want default", cfg.Render.Indent)
	}
	if cfg.Serve.Port != 9090 {
		t.Errorf("Serve.Port = %d, want 9090", cfg.Serve.Port)
	}
	if cfg.Serve.Host != DefaultHost {
		t.Errorf("Serve.Host = %q, want default", cfg.Serve.Host)
	}
	if cfg.TickInterval() != 250*time.Millisecond {
		t.Errorf("TickInterval() = %v", cfg.TickInterval())
	}
	if cfg.Publish.Region != "eu-west-1" {
		t.Errorf("Publish.Region = %q", cfg.Publish.Region)
	}
	if cfg.Path() != configPath {
		t.Errorf("Path() = %q, want %q", cfg.Path(), configPath)
	}
	if lvl, _ := cfg.LogLevel(); lvl != slog.LevelDebug {
		t.Errorf("LogLevel() = %v", lvl)
	}
}

func TestLoadOrDefault(t *testing.T) {
	cfg, err := LoadOrDefault(t.TempDir())
	if err != nil {
		t.Fatalf("LoadOrDefault() error = %v", err)
	}
	if cfg.Serve.Port != DefaultPort {
		t.Errorf("Serve.Port = %d, want default", cfg.Serve.Port)
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(dir)
	if errors.Code(err) != "E101" {
		t.Errorf("error = %v, want E101", err)
	}

	// A parse error is not a missing file.
	if _, err := LoadOrDefault(dir); err == nil {
		t.Error("LoadOrDefault should report parse errors")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"negative port", func(c *Config) { c.Serve.Port = -1 }},
		{"port too large", func(c *Config) { c.Serve.Port = 70000 }},
		{"bad tick", func(c *Config) { c.Serve.Tick = "soon" }},
		{"zero tick", func(c *Config) { c.Serve.Tick = "0s" }},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }},
		{"non-space indent", func(c *Config) { c.Render.Indent = "--" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			tt.modify(cfg)
			if err := cfg.Validate(); errors.Code(err) != "E102" {
				t.Errorf("Validate() = %v, want E102", err)
			}
		})
	}
}

func TestSaveTo(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)

	cfg := New()
	cfg.Serve.Port = 3001
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo() error = %v", err)
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if loaded.Serve.Port != 3001 {
		t.Errorf("Serve.Port = %d, want 3001", loaded.Serve.Port)
	}

	loaded.Serve.Port = 3002
	if err := loaded.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	again, _ := LoadFile(path)
	if again.Serve.Port != 3002 {
		t.Errorf("Serve.Port = %d, want 3002", again.Serve.Port)
	}
}

func TestSaveWithoutPath(t *testing.T) {
	if err := New().Save(); err == nil {
		t.Error("Save() without path should fail")
	}
}

func TestServeAddress(t *testing.T) {
	cfg := New()
	cfg.Serve.Host = "0.0.0.0"
	cfg.Serve.Port = 80
	if got := cfg.ServeAddress(); got != "0.0.0.0:80" {
		t.Errorf("ServeAddress() = %q", got)
	}
}
