package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// envPrefix is the prefix of environment overrides, e.g. FOLIO_OUTPUT_DIR.
const envPrefix = "FOLIO_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (FOLIO_*). Nested keys use a double
// underscore: FOLIO_SERVER__PORT sets server.port.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// validLogLevels is the set of recognized log levels.
var validLogLevels = map[LogLevel]bool{
	LogDebug: true,
	LogInfo:  true,
	LogWarn:  true,
	LogError: true,
	LogNone:  true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Content == "" {
		return fmt.Errorf("content is required")
	}

	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}

	seen := make(map[string]bool, len(c.Pages))
	for i, p := range c.Pages {
		if p.ID == "" {
			return fmt.Errorf("pages[%d]: id is required", i)
		}
		if strings.ContainsAny(p.ID, `/\`) {
			return fmt.Errorf("pages[%d]: id %q must not contain path separators", i, p.ID)
		}
		if seen[p.ID] {
			return fmt.Errorf("pages[%d]: duplicate id %q", i, p.ID)
		}
		seen[p.ID] = true
	}

	if c.DefaultPage != "" && !seen[c.DefaultPage] {
		return fmt.Errorf("default_page %q is not one of the configured pages", c.DefaultPage)
	}

	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d is out of range", c.Server.Port)
	}

	if c.Log.Level != "" && !validLogLevels[c.Log.Level] {
		return fmt.Errorf("invalid log.level %q: must be one of debug, info, warn, error, none", c.Log.Level)
	}

	return nil
}
