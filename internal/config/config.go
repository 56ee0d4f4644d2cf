// Package config loads project settings for decomment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/seanhalberthal/decomment/internal/jsonc"
)

// errUnknownFormat indicates a config file with an unrecognised extension.
var errUnknownFormat = errors.New("unknown config format")

// FileNames lists the config files looked for, in order of preference.
var FileNames = []string{
	".decomment.yaml",
	".decomment.yml",
	".decomment.jsonc",
	".decomment.json",
}

// Config holds the settings that control which files are filtered and how.
type Config struct {
	// Extensions are the file extensions treated as source files.
	Extensions []string `yaml:"extensions" json:"extensions"`

	// ExcludeDirs are directory names never descended into.
	ExcludeDirs []string `yaml:"exclude_dirs" json:"exclude_dirs"`

	// Recursive makes directory walks descend by default.
	Recursive bool `yaml:"recursive" json:"recursive"`

	// Workers caps how many files are processed at once.
	Workers int `yaml:"workers" json:"workers"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Extensions: []string{
			".c", ".h", ".cc", ".cpp", ".hpp", ".cs",
			".java", ".js", ".ts", ".go", ".rs", ".json", ".jsonc",
		},
		ExcludeDirs: []string{"node_modules", "vendor"},
		Workers:     4,
	}
}

// Load reads the first config file found in dir. A directory without a
// config file yields the defaults.
func Load(dir string) (*Config, error) {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return LoadFile(path)
		}
	}
	return Default(), nil
}

// LoadFile reads an explicit config file. The format follows the extension.
func LoadFile(path string) (*Config, error) {
	// #nosec G304 -- path is supplied by the user on purpose
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case ".json", ".jsonc":
		if err := jsonc.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", errUnknownFormat, path)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// applyDefaults fills unset fields and normalises extensions.
func (c *Config) applyDefaults() {
	def := Default()
	if len(c.Extensions) == 0 {
		c.Extensions = def.Extensions
	}
	if c.ExcludeDirs == nil {
		c.ExcludeDirs = def.ExcludeDirs
	}
	if c.Workers <= 0 {
		c.Workers = def.Workers
	}
	c.Extensions = normaliseExtensions(c.Extensions)
}

// normaliseExtensions lower-cases extensions and ensures a leading dot.
func normaliseExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		out = append(out, ext)
	}
	return out
}
