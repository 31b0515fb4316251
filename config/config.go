package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Defaults applied when the config file omits a value or no file exists.
const (
	DefaultOutput         = "table"
	DefaultTimeoutSeconds = 15
)

// knownOutputs are the output formats the renderer registry ships with.
var knownOutputs = map[string]bool{
	"table":    true,
	"json":     true,
	"markdown": true,
}

// Config is the top-level configuration for reqdiff.
type Config struct {
	Output       string       `yaml:"output"`         // Default output format: "table", "json", "markdown"
	Format       string       `yaml:"format"`         // Manifest format override; empty means auto-detect
	FailOnChange bool         `yaml:"fail_on_change"` // Exit non-zero when the manifests differ
	Source       SourceConfig `yaml:"source"`
}

// SourceConfig holds settings for remote manifest acquisition.
type SourceConfig struct {
	Token          string `yaml:"token"`           // Inline, ${ENV_VAR}, or file path
	TimeoutSeconds int    `yaml:"timeout_seconds"` // HTTP timeout for URL manifests
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// Load reads and parses a configuration file, expanding environment variables
// and resolving token file paths.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var cfg Config
	if unmarshalErr := yaml.Unmarshal(data, &cfg); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	cfg.Source.Token = ResolveToken(cfg.Source.Token)
	applyDefaults(&cfg)

	if validateErr := validate(&cfg); validateErr != nil {
		return nil, validateErr
	}

	return &cfg, nil
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".reqdiff.yaml",
		".reqdiff.yml",
		"reqdiff.yaml",
		"reqdiff.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// ResolveToken expands environment variable references (${VAR}) and, if the
// resulting string is a path to an existing file, reads the token from the file.
func ResolveToken(raw string) string {
	if raw == "" {
		return raw
	}

	resolved := envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})

	if info, statErr := os.Stat(resolved); statErr == nil && !info.IsDir() {
		data, readErr := os.ReadFile(resolved)
		if readErr != nil {
			logger.Warnf("Failed to read token file %q: %v", resolved, readErr)
			return resolved
		}
		return strings.TrimSpace(string(data))
	}

	return resolved
}

func applyDefaults(cfg *Config) {
	if cfg.Output == "" {
		cfg.Output = DefaultOutput
	}
	if cfg.Source.TimeoutSeconds <= 0 {
		cfg.Source.TimeoutSeconds = DefaultTimeoutSeconds
	}
}

func validate(cfg *Config) error {
	if !knownOutputs[cfg.Output] {
		return fmt.Errorf("unknown output format %q (expected table, json, or markdown)", cfg.Output)
	}
	return nil
}
