package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const fileHeader = `# rollbook configuration
#
# Precedence (highest to lowest):
#   1. CLI flags (--snapshot, --ledger, ...)
#   2. Environment variables (ROLLBOOK_LEDGER_BACKEND, ROLLBOOK_SNAPSHOT_PATH, ...)
#   3. This file
#   4. Built-in defaults
#
# ledger.backend is one of file, redis or memory.
# report.weekdays lists the weekly matrix columns as weekday glyphs.

`

// Marshal encodes cfg as YAML.
func Marshal(cfg *Config) ([]byte, error) {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return out, nil
}

// Generate writes a documented default configuration to path. It never
// overwrites an existing file.
func Generate(home, path string) error {
	if fileExists(path) {
		return fmt.Errorf("config file already exists at %s", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	body, err := Marshal(Defaults(home))
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, append([]byte(fileHeader), body...), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
