// Package config loads REPL preferences from ~/.minilang.yaml: the
// prompt string, whether color output is forced on/off, and the
// readline history file path. Grounded on CWBudde-go-dws's go.mod
// dependency on github.com/goccy/go-yaml — the YAML library this corpus
// reaches for — applied to the small per-user settings file shape every
// interactive tool in this space carries. Absence of the file is not an
// error; it just means defaults.
package config

import (
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// Color tri-state: unset defers to terminal detection, forced overrides it.
type Color string

const (
	ColorAuto Color = "auto"
	ColorOn   Color = "on"
	ColorOff  Color = "off"
)

// Config holds the REPL's user-configurable preferences.
type Config struct {
	Prompt      string `yaml:"prompt"`
	Color       Color  `yaml:"color"`
	HistoryFile string `yaml:"history_file"`
}

// Default returns the built-in preferences used when no config file
// exists or a field is left unset.
func Default() *Config {
	return &Config{
		Prompt:      "minilang >>> ",
		Color:       ColorAuto,
		HistoryFile: defaultHistoryFile(),
	}
}

func defaultHistoryFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".minilang_history")
}

// Load reads ~/.minilang.yaml, overlaying any fields it sets onto the
// defaults. A missing file is not an error.
func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Default(), nil
	}
	return LoadFrom(filepath.Join(home, ".minilang.yaml"))
}

// LoadFrom reads the config file at path, overlaying any fields it sets
// onto the defaults. A missing file is not an error.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	var overlay Config
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return nil, err
	}

	if overlay.Prompt != "" {
		cfg.Prompt = overlay.Prompt
	}
	if overlay.Color != "" {
		cfg.Color = overlay.Color
	}
	if overlay.HistoryFile != "" {
		cfg.HistoryFile = overlay.HistoryFile
	}
	return cfg, nil
}
