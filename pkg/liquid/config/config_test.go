package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MjAbuz/liquid/pkg/liquid/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew verifies Config creation from maps.
func TestNew(t *testing.T) {
	tests := []struct {
		name string
		data map[string]any
	}{
		{"nil map", nil},
		{"empty map", map[string]any{}},
		{"with values", map[string]any{"parse_mode": "strict"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New(tt.data)
			assert.NotNil(t, cfg.Raw())
		})
	}
}

// TestString verifies string extraction with defaults.
func TestString(t *testing.T) {
	tests := []struct {
		name       string
		data       map[string]any
		key        string
		defaultVal string
		want       string
	}{
		{"key exists", map[string]any{"parse_mode": "strict"}, "parse_mode", "lax", "strict"},
		{"key missing", map[string]any{"other": "x"}, "parse_mode", "lax", "lax"},
		{"empty string", map[string]any{"parse_mode": ""}, "parse_mode", "lax", ""},
		{"wrong type", map[string]any{"parse_mode": 1}, "parse_mode", "lax", "lax"},
		{"nil map", nil, "parse_mode", "lax", "lax"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New(tt.data)
			assert.Equal(t, tt.want, cfg.String(tt.key, tt.defaultVal))
		})
	}
}

// TestBool verifies boolean extraction with defaults.
func TestBool(t *testing.T) {
	tests := []struct {
		name       string
		data       map[string]any
		defaultVal bool
		want       bool
	}{
		{"true value", map[string]any{"k": true}, false, true},
		{"false value", map[string]any{"k": false}, true, false},
		{"missing", map[string]any{}, true, true},
		{"wrong type", map[string]any{"k": "true"}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New(tt.data)
			assert.Equal(t, tt.want, cfg.Bool("k", tt.defaultVal))
		})
	}
}

// TestInt verifies integer extraction with various input types.
func TestInt(t *testing.T) {
	tests := []struct {
		name       string
		data       map[string]any
		defaultVal int
		want       int
	}{
		{"int", map[string]any{"k": 5}, 0, 5},
		{"int64", map[string]any{"k": int64(7)}, 0, 7},
		{"whole float", map[string]any{"k": 3.0}, 0, 3},
		{"fractional float", map[string]any{"k": 3.5}, 9, 9},
		{"missing", map[string]any{}, 42, 42},
		{"wrong type", map[string]any{"k": "5"}, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New(tt.data)
			assert.Equal(t, tt.want, cfg.Int("k", tt.defaultVal))
		})
	}
}

// TestFromYAML verifies YAML parsing.
func TestFromYAML(t *testing.T) {
	cfg, err := config.FromYAML([]byte("parse_mode: strict\nmax_chain_depth: 10\n"))
	require.NoError(t, err)
	assert.Equal(t, "strict", cfg.String("parse_mode", "lax"))
	assert.Equal(t, 10, cfg.Int("max_chain_depth", 0))

	_, err = config.FromYAML([]byte(": : :"))
	assert.Error(t, err)
}

// TestFromJSON verifies JSON parsing.
func TestFromJSON(t *testing.T) {
	cfg, err := config.FromJSON([]byte(`{"parse_mode": "lax", "max_chain_depth": 5}`))
	require.NoError(t, err)
	assert.Equal(t, "lax", cfg.String("parse_mode", "strict"))
	assert.Equal(t, 5, cfg.Int("max_chain_depth", 0))

	_, err = config.FromJSON([]byte("{"))
	assert.Error(t, err)
}

// TestFromFile verifies file loading with extension detection.
func TestFromFile(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "engine.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("parse_mode: strict\n"), 0o644))

	cfg, err := config.FromFile(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, "strict", cfg.String("parse_mode", "lax"))

	t.Run("unsupported extension", func(t *testing.T) {
		badPath := filepath.Join(dir, "engine.toml")
		require.NoError(t, os.WriteFile(badPath, []byte(""), 0o644))
		_, err := config.FromFile(badPath)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := config.FromFile(filepath.Join(dir, "absent.yaml"))
		assert.Error(t, err)
	})
}

// TestParseMode verifies parse_mode validation and defaulting.
func TestParseMode(t *testing.T) {
	tests := []struct {
		name    string
		data    map[string]any
		want    string
		wantErr bool
	}{
		{"unset defaults to lax", nil, "lax", false},
		{"lax", map[string]any{config.KeyParseMode: "lax"}, "lax", false},
		{"strict", map[string]any{config.KeyParseMode: "strict"}, "strict", false},
		{"unknown mode", map[string]any{config.KeyParseMode: "pedantic"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mode, err := config.New(tt.data).ParseMode()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), config.KeyParseMode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, mode)
		})
	}
}

// TestLoadBindings verifies bindings-file loading.
func TestLoadBindings(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "bindings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("user:\n  name: ada\nunread: 3\n"), 0o644))

	vars, err := config.LoadBindings(path)
	require.NoError(t, err)
	assert.Equal(t, 3, vars["unread"])
	user, ok := vars["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "ada", user["name"])

	t.Run("empty path", func(t *testing.T) {
		vars, err := config.LoadBindings("")
		require.NoError(t, err)
		assert.Nil(t, vars)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := config.LoadBindings(filepath.Join(dir, "absent.yaml"))
		assert.Error(t, err)
	})
}
