// Package config loads the shell's own settings: the history file location,
// a history size, a theme name and a terminal width (spec.md §6). Only
// HistoryFile is read by the rest of the shell: the history store keeps
// every entry regardless of HistorySize, internal/ui detects the theme
// itself rather than reading Theme, and completion queries the terminal
// width directly rather than reading TerminalWidth.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

type Config struct {
	HistoryFile   string `yaml:"history_file"`
	HistorySize   int    `yaml:"history_size"`
	Theme         string `yaml:"theme"`
	TerminalWidth int    `yaml:"terminal_width"`
}

const defaultHistoryFile = "./log/history.txt"

func Default() *Config {
	return &Config{
		HistoryFile:   defaultHistoryFile,
		HistorySize:   1000,
		Theme:         "auto",
		TerminalWidth: detectWidth(),
	}
}

// ConfigDir returns the shell's configuration directory, ~/.posixsh.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".posixsh"), nil
}

// ConfigPath returns the optional YAML config file's location.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the optional config file (if present) and then applies the
// HISTFILE environment override, per spec.md §6.
func Load() (*Config, error) {
	cfg := Default()

	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err == nil {
		defer f.Close()
		if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	if hist := os.Getenv("HISTFILE"); hist != "" {
		cfg.HistoryFile = hist
	}

	return cfg, nil
}

func detectWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 80
	}
	return w
}
