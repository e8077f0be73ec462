package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2html/internal/fileutil"
	"github.com/alnah/go-md2html/internal/pipeline"
	"github.com/alnah/go-md2html/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrInvalidConfig   = errors.New("invalid config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

// Log levels accepted in the config file.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// MaxTitleLength bounds the standalone document title.
const MaxTitleLength = 200

// appDirName is the directory searched under the user config directory.
const appDirName = "go-md2html"

// Config holds all configuration for a conversion run.
type Config struct {
	Engine string       `yaml:"engine"`
	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log"`
}

// OutputConfig defines how the HTML output is shaped.
type OutputConfig struct {
	Standalone bool   `yaml:"standalone"` // wrap fragment in an HTML5 document
	Title      string `yaml:"title"`      // empty = first heading, then file name
}

// LogConfig defines diagnostic logging options.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: warn)
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Engine: pipeline.EngineDialect,
		Output: OutputConfig{Standalone: false},
		Log:    LogConfig{Level: LevelWarn},
	}
}

// Validate checks enumerated values and field lengths.
// Empty values are valid and mean "use the default".
func (c *Config) Validate() error {
	if c.Engine != "" && !pipeline.IsEngine(c.Engine) {
		return fmt.Errorf("%w: engine: %q (must be one of %s)", ErrInvalidConfig, c.Engine, strings.Join(pipeline.EngineNames(), ", "))
	}

	switch strings.ToLower(c.Log.Level) {
	case "", LevelDebug, LevelInfo, LevelWarn, LevelError:
	default:
		return fmt.Errorf("%w: log.level: %q (must be debug, info, warn, or error)", ErrInvalidConfig, c.Log.Level)
	}

	if len(c.Output.Title) > MaxTitleLength {
		return fmt.Errorf("%w: output.title (%d chars, max %d)", ErrFieldTooLong, len(c.Output.Title), MaxTitleLength)
	}

	return nil
}

// applyDefaults fills empty fields from DefaultConfig.
func (c *Config) applyDefaults() {
	def := DefaultConfig()
	if c.Engine == "" {
		c.Engine = def.Engine
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
	c.Engine = strings.ToLower(c.Engine)
	c.Log.Level = strings.ToLower(c.Log.Level)
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	f, err := os.Open(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	defer f.Close()

	var cfg Config
	if err := yamlutil.DecodeStrict(f, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, configPath, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	return &cfg, nil
}

// SearchPaths returns the candidate files for a config name, in lookup order:
// current directory first, then the user config directory; .yaml before .yml.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, appDirName, name+ext))
		}
	}

	return paths
}

// resolveConfigPath returns the first existing file among SearchPaths(name).
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
