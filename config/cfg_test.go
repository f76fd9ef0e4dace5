package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rupor-github/gencfg"
)

func TestLoadConfiguration_NoFile(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() with empty path error = %v", err)
	}

	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}

	if cfg.Version != 1 {
		t.Errorf("Default config version = %d, want 1", cfg.Version)
	}

	if cfg.Sprite.Placeholder != "SPRITE_PLACEHOLDER" {
		t.Errorf("Default placeholder = %q, want SPRITE_PLACEHOLDER", cfg.Sprite.Placeholder)
	}

	if cfg.Sprite.JPEGQuality != 75 {
		t.Errorf("Default JPEG quality = %d, want 75", cfg.Sprite.JPEGQuality)
	}

	if len(cfg.Sprite.Optimizer) != 0 {
		t.Errorf("Default optimizer = %v, want empty", cfg.Sprite.Optimizer)
	}

	if cfg.Preview.Enable || cfg.Manifest.Enable {
		t.Error("Preview and manifest must be disabled by default")
	}
}

func TestLoadConfiguration_WithFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `version: 1
sprite:
  image_root: ` + tmpDir + `
  output_file: ` + filepath.Join(tmpDir, "out.jpg") + `
  placeholder: MY_TOKEN
  jpeg_quality_level: 90
  optimizer: ["optipng", "-o7"]
manifest:
  enable: true
  destination: ` + filepath.Join(tmpDir, "atlas.xml") + `
logging:
  console:
    level: normal
  file:
    level: debug
    destination: ` + filepath.Join(tmpDir, "test.log") + `
    mode: append
reporting:
  destination: ` + filepath.Join(tmpDir, "test-report.zip") + `
`

	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := LoadConfiguration(configPath)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if cfg.Sprite.Placeholder != "MY_TOKEN" {
		t.Errorf("Placeholder = %q, want MY_TOKEN", cfg.Sprite.Placeholder)
	}

	if cfg.Sprite.JPEGQuality != 90 {
		t.Errorf("JPEGQuality = %d, want 90", cfg.Sprite.JPEGQuality)
	}

	if len(cfg.Sprite.Optimizer) != 2 || cfg.Sprite.Optimizer[0] != "optipng" {
		t.Errorf("Optimizer = %v, want [optipng -o7]", cfg.Sprite.Optimizer)
	}

	if !cfg.Manifest.Enable {
		t.Error("Expected manifest to be enabled")
	}
}

func TestLoadConfiguration_NonExistentFile(t *testing.T) {
	_, err := LoadConfiguration("/nonexistent/config.yaml")
	if err == nil {
		t.Error("Expected error for nonexistent file")
	}
}

func TestLoadConfiguration_UnknownFields(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "unknown.yaml")

	configWithUnknown := `version: 1
unknown_field: value
sprite:
  placeholder: MY_TOKEN
`

	if err := os.WriteFile(configPath, []byte(configWithUnknown), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	_, err := LoadConfiguration(configPath)
	if err == nil {
		t.Error("Expected error for unknown fields")
	}
}

func TestLoadConfiguration_ValidationError(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid_values.yaml")

	// quality below the allowed minimum
	configWithBadQuality := `version: 1
sprite:
  jpeg_quality_level: 10
`

	if err := os.WriteFile(configPath, []byte(configWithBadQuality), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	_, err := LoadConfiguration(configPath)
	if err == nil {
		t.Error("Expected validation error for bad quality level")
	}
}

func TestLoadConfiguration_WithOptions(t *testing.T) {
	option := func(opts *gencfg.ProcessingOptions) {
		// Options are opaque, just test that we can pass them
	}

	cfg, err := LoadConfiguration("", option)
	if err != nil {
		t.Fatalf("LoadConfiguration() with options error = %v", err)
	}

	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}
}

func TestPrepare(t *testing.T) {
	data, err := Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}

	if len(data) == 0 {
		t.Error("Prepare() returned empty data")
	}

	// Verify it's valid YAML by trying to unmarshal
	cfg := &Config{}
	_, err = unmarshalConfig(data, cfg, true)
	if err != nil {
		t.Errorf("Prepared config is not valid: %v", err)
	}
}

func TestDump(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	data, err := Dump(cfg)
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}

	if len(data) == 0 {
		t.Error("Dump() returned empty data")
	}

	// Verify we can load it back
	cfg2 := &Config{}
	if _, err := unmarshalConfig(data, cfg2, false); err != nil {
		t.Errorf("Dumped config is not valid: %v", err)
	}
	if cfg2.Sprite.Placeholder != cfg.Sprite.Placeholder {
		t.Errorf("Round trip changed placeholder: %q != %q", cfg2.Sprite.Placeholder, cfg.Sprite.Placeholder)
	}
}
