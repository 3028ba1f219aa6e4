// Package config loads gitie settings from .gitie.yaml and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileNames are looked for, in order, in every directory from the working
// directory up to the filesystem root.
var FileNames = []string{".gitie.yaml", ".gitie.yml"}

// ErrNotFound is returned by Find when no config file exists.
var ErrNotFound = errors.New("no .gitie.yaml or .gitie.yml found")

// Config holds every user-tunable setting.
type Config struct {
	Product  string      `yaml:"product"`
	Output   string      `yaml:"output"`
	Defaults []string    `yaml:"defaults"`
	Catalog  string      `yaml:"catalog"`
	Color    *bool       `yaml:"color"`
	Serve    ServeConfig `yaml:"serve"`

	// Path is the file the config was read from, empty for defaults.
	Path string `yaml:"-"`
}

// ServeConfig configures the HTTP API.
type ServeConfig struct {
	Addr string `yaml:"addr"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Product: "Gitie",
		Output:  "-",
		Serve:   ServeConfig{Addr: ":8080"},
	}
}

// ColorEnabled reports whether colored output is wanted. NO_COLOR wins over
// the file setting; without either, fallback is used.
func (c *Config) ColorEnabled(fallback bool) bool {
	if c.Color != nil {
		return *c.Color
	}
	return fallback
}

// Find searches dir and its parents for a config file.
func Find(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve directory: %w", err)
	}
	for {
		for _, name := range FileNames {
			candidate := filepath.Join(dir, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNotFound
		}
		dir = parent
	}
}

// LoadFile reads a config file over the defaults.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	cfg.Path = path
	// Relative paths in the file are relative to the file itself.
	cfg.Catalog = resolve(filepath.Dir(path), cfg.Catalog)
	if cfg.Output != "-" {
		cfg.Output = resolve(filepath.Dir(path), cfg.Output)
	}
	return cfg, nil
}

// Load resolves the effective configuration. An explicit path must exist;
// otherwise the nearest config file above dir is used when there is one.
// Environment variables are applied last.
func Load(explicit, dir string) (*Config, error) {
	var cfg *Config
	switch {
	case explicit != "":
		c, err := LoadFile(explicit)
		if err != nil {
			return nil, err
		}
		cfg = c
	default:
		path, err := Find(dir)
		switch {
		case err == nil:
			c, err := LoadFile(path)
			if err != nil {
				return nil, err
			}
			cfg = c
		case errors.Is(err, ErrNotFound):
			cfg = Default()
		default:
			return nil, err
		}
	}
	applyEnv(cfg, os.LookupEnv)
	return cfg, nil
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) {
	if v, ok := lookup("GITIE_PRODUCT"); ok && v != "" {
		cfg.Product = v
	}
	if v, ok := lookup("GITIE_OUTPUT"); ok && v != "" {
		cfg.Output = v
	}
	if v, ok := lookup("GITIE_CATALOG"); ok && v != "" {
		cfg.Catalog = v
	}
	if v, ok := lookup("GITIE_DEFAULTS"); ok && v != "" {
		cfg.Defaults = splitList(v)
	}
	if v, ok := lookup("GITIE_ADDR"); ok && v != "" {
		cfg.Serve.Addr = v
	}
	if _, ok := lookup("NO_COLOR"); ok {
		off := false
		cfg.Color = &off
	}
}

func resolve(base, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
