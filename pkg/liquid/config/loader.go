package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Engine settings recognized in a settings file.
const (
	// KeyParseMode selects the condition parsing mode: "lax" or
	// "strict".
	KeyParseMode = "parse_mode"
	// KeyMaxChainDepth bounds chained comparisons per condition.
	KeyMaxChainDepth = "max_chain_depth"
	// KeyCachePath points the render cache at a SQLite file.
	KeyCachePath = "cache_path"
)

// FromFile loads settings from a file, detecting the format by
// extension. Supported extensions: .yaml, .yml, .json.
func FromFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return FromYAML(data)
	case ".json":
		return FromJSON(data)
	default:
		return Config{}, fmt.Errorf("unsupported config file extension: %s", ext)
	}
}

// FromYAML parses YAML settings data.
func FromYAML(data []byte) (Config, error) {
	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Config{}, fmt.Errorf("parse yaml: %w", err)
	}
	return New(m), nil
}

// FromJSON parses JSON settings data.
func FromJSON(data []byte) (Config, error) {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return Config{}, fmt.Errorf("parse json: %w", err)
	}
	return New(m), nil
}

// ParseMode returns the validated parse_mode setting, defaulting to
// "lax" when unset.
func (c Config) ParseMode() (string, error) {
	mode := c.String(KeyParseMode, "lax")
	if mode != "lax" && mode != "strict" {
		return "", fmt.Errorf("invalid %s %q: want \"lax\" or \"strict\"", KeyParseMode, mode)
	}
	return mode, nil
}

// LoadBindings reads template render bindings from a YAML or JSON
// file. An empty path yields nil bindings, which render as if every
// variable were undefined.
func LoadBindings(path string) (map[string]any, error) {
	if path == "" {
		return nil, nil
	}
	cfg, err := FromFile(path)
	if err != nil {
		return nil, fmt.Errorf("load bindings: %w", err)
	}
	return cfg.Raw(), nil
}
