package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	defaultBackend    = "file"
	defaultAutosaveMs = 500
)

// Config holds the unified application configuration
type Config struct {
	DataDir    string
	Backend    string
	AutosaveMs int
	Mouse      bool
}

// Settings represents the config file structure
type Settings struct {
	DataDir    string `json:"data_dir,omitempty"`
	Backend    string `json:"backend,omitempty"`
	AutosaveMs int    `json:"autosave_ms,omitempty"`
	Mouse      *bool  `json:"mouse,omitempty"`
}

// CLIFlags holds parsed CLI flags
type CLIFlags struct {
	DataDir string
	Backend string
}

// Load loads configuration with priority: CLI flags > env vars > config file > default
func Load(flags CLIFlags) (*Config, error) {
	cfg := &Config{
		Backend:    defaultBackend,
		AutosaveMs: defaultAutosaveMs,
		Mouse:      true,
	}

	configPath, err := getConfigPath()
	if err == nil {
		if fileConfig, err := loadConfigFile(configPath); err == nil {
			if fileConfig.DataDir != "" {
				cfg.DataDir = expandPath(fileConfig.DataDir)
			}
			if fileConfig.Backend != "" {
				cfg.Backend = fileConfig.Backend
			}
			if fileConfig.AutosaveMs > 0 {
				cfg.AutosaveMs = fileConfig.AutosaveMs
			}
			if fileConfig.Mouse != nil {
				cfg.Mouse = *fileConfig.Mouse
			}
		}
	}

	// Environment variables override config file
	if envDir := os.Getenv("NOTEDAYS_DIR"); envDir != "" {
		cfg.DataDir = expandPath(envDir)
	}
	if envBackend := os.Getenv("NOTEDAYS_BACKEND"); envBackend != "" {
		cfg.Backend = envBackend
	}

	// CLI flags override everything
	if flags.DataDir != "" {
		cfg.DataDir = expandPath(flags.DataDir)
	}
	if flags.Backend != "" {
		cfg.Backend = flags.Backend
	}

	cfg.Backend = strings.ToLower(strings.TrimSpace(cfg.Backend))

	if cfg.DataDir == "" {
		defaultDir, err := GetDefaultDir()
		if err != nil {
			return nil, err
		}
		cfg.DataDir = defaultDir
	}

	return cfg, nil
}

// AutosaveDelay returns the debounce applied to in-row text edits.
func (c *Config) AutosaveDelay() time.Duration {
	if c.AutosaveMs <= 0 {
		return defaultAutosaveMs * time.Millisecond
	}
	return time.Duration(c.AutosaveMs) * time.Millisecond
}

// EnsureDataDir creates the data directory if missing
func (c *Config) EnsureDataDir() error {
	return os.MkdirAll(c.DataDir, 0755)
}

// GetDefaultDir returns the default data directory path
func GetDefaultDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, "notedays"), nil
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "notedays", "config.json"), nil
}

func loadConfigFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, err
	}

	return &settings, nil
}

// EnsureConfigFile creates the config file with defaults if it doesn't exist
func EnsureConfigFile() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return err
	}

	defaultDir, err := GetDefaultDir()
	if err != nil {
		return err
	}

	mouse := true
	settings := Settings{
		DataDir:    defaultDir,
		Backend:    defaultBackend,
		AutosaveMs: defaultAutosaveMs,
		Mouse:      &mouse,
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(homeDir, path[2:])
	}
	return path
}
