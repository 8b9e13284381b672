package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type RuntimeConfig struct {
	StorageBackend string `yaml:"storage_backend"`
	StoragePath    string `yaml:"storage_path"`
	LogFile        string `yaml:"log_file"`
	LogLevel       string `yaml:"log_level"`
	ClearOnDelete  bool   `yaml:"clear_on_delete"`
	InputCharLimit int    `yaml:"input_char_limit"`
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		StorageBackend: "sqlite",
		StoragePath:    filepath.Join(defaultDataDir(), "todomatic.db"),
		LogFile:        "",
		LogLevel:       "info",
		ClearOnDelete:  true,
		InputCharLimit: 256,
	}
}

// DefaultConfigPath is where Load looks when no explicit path is given.
func DefaultConfigPath() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "todomatic", "config.yaml")
	}
	return ".todomatic.yaml"
}

// LoadFile overlays the YAML file at path on base. A missing file is not an
// error; keys absent from the file keep their base values.
func LoadFile(base RuntimeConfig, path string) (RuntimeConfig, error) {
	cfg := base
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(trimmed)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return base, fmt.Errorf("read config %s: %w", trimmed, err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return base, fmt.Errorf("parse config %s: %w", trimmed, err)
	}
	return cfg, nil
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v, ok := getEnvString("TODOMATIC_STORAGE_BACKEND"); ok {
		cfg.StorageBackend = v
	}
	if v, ok := getEnvString("TODOMATIC_STORAGE_PATH"); ok {
		cfg.StoragePath = v
	}
	if v, ok := getEnvString("TODOMATIC_LOG_FILE"); ok {
		cfg.LogFile = v
	}
	if v, ok := getEnvString("TODOMATIC_LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	if v, ok := getEnvBool("TODOMATIC_CLEAR_ON_DELETE"); ok {
		cfg.ClearOnDelete = v
	}
	if v, ok := getEnvInt("TODOMATIC_INPUT_CHAR_LIMIT"); ok && v > 0 {
		cfg.InputCharLimit = v
	}
	return cfg
}

// Load resolves defaults, then the config file, then the environment.
func Load(path string) (RuntimeConfig, error) {
	if strings.TrimSpace(path) == "" {
		path = DefaultConfigPath()
	}
	cfg, err := LoadFile(DefaultRuntimeConfig(), path)
	if err != nil {
		return DefaultRuntimeConfig(), err
	}
	return RuntimeConfigFromEnv(cfg), nil
}

func defaultDataDir() string {
	if dir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(dir, ".local", "share", "todomatic")
	}
	return "."
}

func getEnvString(name string) (string, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	return raw, raw != ""
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
