package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

type Config struct {
	Width     int
	Device    string
	Cancel    string
	Separator string
	LogFile   string
	SeedFile  string
	Trace     bool
}

const (
	DeviceConsole = "console"
	DeviceTcell   = "tcell"
)

const (
	defaultConfigPath = "~/.config/hms/config.toml"
	defaultWidth      = 100
	defaultCancel     = "0"
	defaultSeparator  = " > "
)

func Default() Config {
	return Config{
		Width:     defaultWidth,
		Device:    DeviceConsole,
		Cancel:    defaultCancel,
		Separator: defaultSeparator,
	}
}

// Load reads the TOML config at path, falling back to defaults when the file is missing.
func Load(path string) (Config, error) {
	cfg := Default()

	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Width     int    `toml:"width"`
		Device    string `toml:"device"`
		Cancel    string `toml:"cancel"`
		Separator string `toml:"breadcrumb_separator"`
		LogFile   string `toml:"log_file"`
		SeedFile  string `toml:"seed_file"`
		Trace     bool   `toml:"trace"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if raw.Width > 0 {
		cfg.Width = raw.Width
	}
	if device := strings.ToLower(strings.TrimSpace(raw.Device)); device != "" {
		cfg.Device = device
	}
	if cancel := strings.TrimSpace(raw.Cancel); cancel != "" {
		cfg.Cancel = cancel
	}
	if raw.Separator != "" {
		cfg.Separator = raw.Separator
	}
	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		cfg.LogFile = mustExpand(logFile)
	}
	if seedFile := strings.TrimSpace(raw.SeedFile); seedFile != "" {
		cfg.SeedFile = mustExpand(seedFile)
	}
	cfg.Trace = raw.Trace

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch c.Device {
	case DeviceConsole, DeviceTcell:
	default:
		return fmt.Errorf("unknown device %q", c.Device)
	}
	if c.Width < 20 {
		return fmt.Errorf("width %d is too narrow", c.Width)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
