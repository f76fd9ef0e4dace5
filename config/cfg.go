// Package config defines program configuration: an embedded YAML template
// expanded with gencfg provides the defaults, values from an optional user
// file are superimposed on top, and the result is sanitized and validated.
package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	SpriteConfig struct {
		ImageRoot   string   `yaml:"image_root" sanitize:"path_clean" validate:"required"`
		OutputFile  string   `yaml:"output_file" sanitize:"path_clean,assure_dir_exists_for_file" validate:"required,filepath"`
		Placeholder string   `yaml:"placeholder" validate:"required"`
		JPEGQuality int      `yaml:"jpeg_quality_level" validate:"min=40,max=100"`
		Optimizer   []string `yaml:"optimizer,omitempty"`
	}

	PreviewConfig struct {
		Enable      bool   `yaml:"enable"`
		Destination string `yaml:"destination" sanitize:"path_clean" validate:"required_unless=Enable false,omitempty,filepath"`
	}

	ManifestConfig struct {
		Enable      bool   `yaml:"enable"`
		Destination string `yaml:"destination" sanitize:"path_clean" validate:"required_unless=Enable false,omitempty,filepath"`
	}

	Config struct {
		Version   int            `yaml:"version" validate:"eq=1"`
		Sprite    SpriteConfig   `yaml:"sprite"`
		Preview   PreviewConfig  `yaml:"preview"`
		Manifest  ManifestConfig `yaml:"manifest"`
		Logging   LoggingConfig  `yaml:"logging"`
		Reporting ReporterConfig `yaml:"reporting"`
	}
)

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		// sanitize and validate what has been loaded
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, err
		}
		if err := gencfg.Validate(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of expanded configuration template to
// provide sane defaults and performs validation.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	// overwrite cfg values with values from the file
	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare generates configuration file from template and returns it as a
// byte slice.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %v", err)
	}
	return data, nil
}
