package fppc

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the .fppc.yaml configuration file.
type Config struct {
	Console ConsoleConfig `yaml:"console,omitempty"`
	Check   CheckConfig   `yaml:"check,omitempty"`
	Log     LogConfig     `yaml:"log,omitempty"`
}

// ConsoleConfig holds settings for the interactive console.
type ConsoleConfig struct {
	Prompt string `yaml:"prompt,omitempty"`
	// Color toggles styled output in the TUI. Defaults to true.
	Color *bool `yaml:"color,omitempty"`
}

// CheckConfig holds settings for golden case checking.
type CheckConfig struct {
	// Paths are searched when `fppc check` is given no arguments.
	Paths []string `yaml:"paths,omitempty"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	// Level is a zap level name: debug, info, warn, error.
	Level string `yaml:"level,omitempty"`
}

// Defaults.
const (
	DefaultPrompt   = "> "
	DefaultLogLevel = "info"
)

// PromptOrDefault returns the configured prompt or DefaultPrompt.
func (c *Config) PromptOrDefault() string {
	if c == nil || c.Console.Prompt == "" {
		return DefaultPrompt
	}

	return c.Console.Prompt
}

// ColorEnabled reports whether styled output is enabled.
func (c *Config) ColorEnabled() bool {
	if c == nil || c.Console.Color == nil {
		return true
	}

	return *c.Console.Color
}

// LogLevelOrDefault returns the configured log level or DefaultLogLevel.
func (c *Config) LogLevelOrDefault() string {
	if c == nil || c.Log.Level == "" {
		return DefaultLogLevel
	}

	return c.Log.Level
}

// CheckPaths returns the configured check paths resolved against dir.
func (c *Config) CheckPaths(dir string) []string {
	if c == nil {
		return nil
	}

	out := make([]string, 0, len(c.Check.Paths))
	for _, p := range c.Check.Paths {
		if !filepath.IsAbs(p) {
			p = filepath.Join(dir, p)
		}

		out = append(out, p)
	}

	return out
}

// DefaultConfigNames are the filenames we search for.
var DefaultConfigNames = []string{".fppc.yaml", ".fppc.yml", "fppc.yaml", "fppc.yml"}

// LoadConfig finds and loads the nearest .fppc.yaml walking up from dir.
func LoadConfig(dir string) (*Config, error) {
	path, err := FindConfig(dir)
	if err != nil {
		return nil, err
	}

	return LoadConfigFile(path)
}

// FindConfig searches for a config file starting from dir and walking up.
func FindConfig(dir string) (string, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	for dir := absDir; ; {
		for _, name := range DefaultConfigNames {
			path := filepath.Join(dir, name)

			_, err := os.Stat(path)
			if err == nil {
				return path, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrConfigNotFound
		}

		dir = parent
	}
}

// LoadConfigFile loads a config from a specific path.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}

	var cfg Config

	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}
