package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ryan-rushton/devtools/internal/keys"
	"github.com/ryan-rushton/devtools/internal/registry"
	"github.com/ryan-rushton/devtools/internal/scale"
)

const (
	MaxIndent     = 8
	defaultIndent = 4
)

// Config holds the user's settings. A missing file yields Default().
type Config struct {
	ScaleFactor float64             `yaml:"scale_factor"`
	DefaultTool string              `yaml:"default_tool"`
	ExportDir   string              `yaml:"export_dir"`
	JSONIndent  *int                `yaml:"json_indent"`
	UUIDVersion int                 `yaml:"uuid_version"`
	Keys        map[string][]string `yaml:"keys"`

	// Warnings collects non-fatal problems found while loading.
	Warnings []string `yaml:"-"`
}

// Default returns the built-in configuration.
func Default() *Config {
	indent := defaultIndent
	return &Config{
		ScaleFactor: float64(scale.Default),
		DefaultTool: registry.UUIDGenerator.String(),
		ExportDir:   ".",
		JSONIndent:  &indent,
		UUIDVersion: 4,
	}
}

// DefaultPath returns ~/.config/devtools/config.yaml.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "devtools", "config.yaml")
}

// Load reads the config at path, falling back to DefaultPath when path is
// empty. Fields absent from the file keep their defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.normalize(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) normalize() error {
	clamped := float64(scale.New(c.ScaleFactor))
	if clamped != c.ScaleFactor {
		c.Warnings = append(c.Warnings,
			fmt.Sprintf("scale_factor %v clamped to %v", c.ScaleFactor, clamped))
		c.ScaleFactor = clamped
	}

	if _, ok := registry.Parse(c.DefaultTool); !ok {
		c.Warnings = append(c.Warnings,
			fmt.Sprintf("unknown default_tool %q, using %s", c.DefaultTool, registry.UUIDGenerator))
		c.DefaultTool = registry.UUIDGenerator.String()
	}

	if c.ExportDir == "" {
		c.ExportDir = "."
	}

	if c.JSONIndent == nil {
		indent := defaultIndent
		c.JSONIndent = &indent
	} else if *c.JSONIndent < 0 || *c.JSONIndent > MaxIndent {
		indent := min(max(*c.JSONIndent, 0), MaxIndent)
		c.Warnings = append(c.Warnings,
			fmt.Sprintf("json_indent %d clamped to %d", *c.JSONIndent, indent))
		c.JSONIndent = &indent
	}

	switch c.UUIDVersion {
	case 4, 7:
	default:
		return fmt.Errorf("uuid_version must be 4 or 7, got %d", c.UUIDVersion)
	}

	if _, err := keys.Default().Override(c.Keys); err != nil {
		return err
	}
	return nil
}

// Tool returns the configured default tool.
func (c *Config) Tool() registry.ID {
	id, _ := registry.Parse(c.DefaultTool)
	return id
}

// Indent returns the JSON indentation width.
func (c *Config) Indent() int {
	if c.JSONIndent == nil {
		return defaultIndent
	}
	return *c.JSONIndent
}

// KeyMap returns the default bindings with the configured overrides
// applied. Load has already validated them.
func (c *Config) KeyMap() keys.KeyMap {
	km, err := keys.Default().Override(c.Keys)
	if err != nil {
		return keys.Default()
	}
	return km
}
