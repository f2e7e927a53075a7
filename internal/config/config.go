package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the name of the og configuration file
const ConfigFileName = "config.yaml"

// ConfigDirName is the name of the og configuration directory
const ConfigDirName = ".og"

// Environment variables overlaid onto the file configuration.
// Precedence is flags over environment over file over defaults.
const (
	EnvDefaultPath = "GRAPH_DEFAULT_PATH"
	EnvStrict      = "GRAPH_STRICT"
	EnvBackend     = "GRAPH_BACKEND"
)

// Config holds all og configuration
type Config struct {
	Graph    GraphConfig    `yaml:"graph"`
	Generate GenerateConfig `yaml:"generate"`
	Serve    ServeConfig    `yaml:"serve"`
	Ask      AskConfig      `yaml:"ask"`
}

// GraphConfig holds configuration for graph loading and storage
type GraphConfig struct {
	DefaultPath string `yaml:"default_path"`
	Backend     string `yaml:"backend"`
	Strict      bool   `yaml:"strict"`
}

// GenerateConfig holds configuration for the synthetic generator
type GenerateConfig struct {
	Size int   `yaml:"size"`
	Seed int64 `yaml:"seed"`
}

// ServeConfig holds configuration for the REST server
type ServeConfig struct {
	Addr string `yaml:"addr"`
}

// AskConfig holds configuration for graph-context retrieval
type AskConfig struct {
	TopK      int `yaml:"top_k"`
	MaxTokens int `yaml:"max_tokens"`
}

// ErrConfigNotFound is returned when no config file can be found
var ErrConfigNotFound = errors.New("config file not found")

// ErrInvalidConfig is returned when config validation fails
var ErrInvalidConfig = errors.New("invalid configuration")

// Load reads config from .og/config.yaml, falling back to defaults.
// It searches for the config directory starting from workDir and walking up
// the directory tree. If no config is found, returns defaults with the
// environment overlay applied.
func Load(workDir string) (*Config, error) {
	configDir, err := FindConfigDir(workDir)
	if err != nil {
		// No config dir found, defaults plus environment
		cfg := DefaultConfig()
		if err := ApplyEnv(cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	configPath := filepath.Join(configDir, ConfigFileName)
	return LoadFromPath(configPath)
}

// LoadFromPath reads config from a specific path.
// Merges loaded config with defaults, overlays the environment, and
// validates the result.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			if err := ApplyEnv(cfg); err != nil {
				return nil, err
			}
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	loaded := &Config{}
	if err := yaml.Unmarshal(data, loaded); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Merge with defaults
	merged := Merge(loaded, DefaultConfig())

	// Environment wins over the file
	if err := ApplyEnv(merged); err != nil {
		return nil, err
	}

	// Validate the merged config
	if err := Validate(merged); err != nil {
		return nil, err
	}

	return merged, nil
}

// ApplyEnv overlays GRAPH_* environment variables onto cfg.
func ApplyEnv(cfg *Config) error {
	if v := os.Getenv(EnvDefaultPath); v != "" {
		cfg.Graph.DefaultPath = v
	}
	if v := os.Getenv(EnvBackend); v != "" {
		cfg.Graph.Backend = v
	}
	if v := os.Getenv(EnvStrict); v != "" {
		strict, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s must be a boolean, got %q",
				ErrInvalidConfig, EnvStrict, v)
		}
		cfg.Graph.Strict = strict
	}
	return nil
}

// FindConfigDir locates the .og directory by walking up from startDir.
// Returns the path to the .og directory if found.
func FindConfigDir(startDir string) (string, error) {
	// Get absolute path
	absDir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	currentDir := absDir
	for {
		configDir := filepath.Join(currentDir, ConfigDirName)
		info, err := os.Stat(configDir)
		if err == nil && info.IsDir() {
			return configDir, nil
		}

		// Move to parent directory
		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root, config not found
			return "", ErrConfigNotFound
		}
		currentDir = parentDir
	}
}

// EnsureConfigDir creates the .og directory if it doesn't exist.
// Returns the path to the .og directory.
func EnsureConfigDir(workDir string) (string, error) {
	// Get absolute path
	absDir, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	configDir := filepath.Join(absDir, ConfigDirName)

	// Check if it already exists
	info, err := os.Stat(configDir)
	if err == nil {
		if info.IsDir() {
			return configDir, nil
		}
		return "", fmt.Errorf("%s exists but is not a directory", configDir)
	}

	// Create the directory
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", fmt.Errorf("creating config directory: %w", err)
	}

	return configDir, nil
}

// Validate checks that config values are valid.
// Returns an error if validation fails.
func Validate(cfg *Config) error {
	// Validate backend
	if !IsValidBackend(cfg.Graph.Backend) {
		return fmt.Errorf("%w: backend must be one of %v, got %q",
			ErrInvalidConfig, ValidBackends, cfg.Graph.Backend)
	}

	// Validate generator size (should be positive)
	if cfg.Generate.Size <= 0 {
		return fmt.Errorf("%w: size must be positive, got %d",
			ErrInvalidConfig, cfg.Generate.Size)
	}

	// Validate serve address (host:port, host may be empty)
	if cfg.Serve.Addr == "" {
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}

	// Validate top_k (should be positive)
	if cfg.Ask.TopK <= 0 {
		return fmt.Errorf("%w: top_k must be positive, got %d",
			ErrInvalidConfig, cfg.Ask.TopK)
	}

	// Validate max_tokens (should be positive)
	if cfg.Ask.MaxTokens <= 0 {
		return fmt.Errorf("%w: max_tokens must be positive, got %d",
			ErrInvalidConfig, cfg.Ask.MaxTokens)
	}

	return nil
}

// SaveDefault writes the default configuration to .og/config.yaml in workDir.
// Creates the .og directory if it doesn't exist.
func SaveDefault(workDir string) (string, error) {
	configDir, err := EnsureConfigDir(workDir)
	if err != nil {
		return "", err
	}

	configPath := filepath.Join(configDir, ConfigFileName)

	// Check if file already exists
	if _, err := os.Stat(configPath); err == nil {
		return "", fmt.Errorf("config file already exists: %s", configPath)
	}

	cfg := DefaultConfig()
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("marshaling config: %w", err)
	}

	// Add header comment
	header := "# og CLI configuration\n# See https://github.com/anthropics/og for documentation\n\n"
	data = append([]byte(header), data...)

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return "", fmt.Errorf("writing config file: %w", err)
	}

	return configPath, nil
}
