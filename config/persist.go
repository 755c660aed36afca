package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/teranos/packgen/errors"
)

// Supported output formats for Encode
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Encode renders a configuration in the given format.
func Encode(cfg *Config, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case FormatTOML, "":
		data, err := toml.Marshal(cfg)
		return data, errors.Wrap(err, "failed to marshal config as toml")
	case FormatYAML, "yml":
		data, err := yaml.Marshal(cfg)
		return data, errors.Wrap(err, "failed to marshal config as yaml")
	case FormatJSON:
		data, err := json.MarshalIndent(cfg, "", "  ")
		return data, errors.Wrap(err, "failed to marshal config as json")
	default:
		return nil, errors.Newf("unsupported format %q (supported: toml, yaml, json)", format)
	}
}

// Save writes cfg to path as TOML, creating parent directories as needed.
// An existing file is kept as path.back1.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}

	if err := createBackup(path); err != nil {
		return errors.Wrap(err, "failed to create backup")
	}

	data, err := Encode(cfg, FormatTOML)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, "failed to write config %s", path)
	}

	return nil
}

func createBackup(path string) error {
	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to read config for backup")
	}
	return os.WriteFile(path+".back1", content, 0644)
}
