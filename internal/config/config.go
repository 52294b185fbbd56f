// Package config provides reading and writing of verse configuration.
// Supports both global ($VERSE_HOME/config.yaml, default ~/.verse/config.yaml)
// and local (.verse/config.yaml) files.
// Reading: uses local if it exists, otherwise global.
// Writing: goes back to wherever the config was read from.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

var (
	// ErrNoConfigPath is returned when the config path cannot be determined.
	ErrNoConfigPath = errors.New("cannot determine config path")
	// ErrUnknownKey is returned when getting/setting an unknown config key.
	ErrUnknownKey = errors.New("unknown config key")
	// ErrInvalidValue is returned when a config value is invalid.
	ErrInvalidValue = errors.New("invalid config value")
)

// HomeEnv overrides the per-user directory holding the global config and the
// audit log.
const HomeEnv = "VERSE_HOME"

// Scope represents the configuration scope (global or local).
type Scope int

const (
	// ScopeGlobal is user-wide config (default)
	ScopeGlobal Scope = iota
	// ScopeLocal is config in .verse/ under the working directory
	ScopeLocal
)

// Files names the corpus inputs and the journal output.
type Files struct {
	Bible         string `yaml:"bible,omitempty"`
	Abbreviations string `yaml:"abbreviations,omitempty"`
	Journal       string `yaml:"journal,omitempty"`
}

// Display holds output layout options.
type Display struct {
	Width *int `yaml:"width,omitempty"`
}

// Defaults applied when not configured.
const (
	DefaultBible         = "Bible.txt"
	DefaultAbbreviations = "Bible_Abbreviations.csv"
	DefaultJournal       = "verses.txt"
	DefaultWidth         = 80
)

// Validation bounds for display.width.
const (
	MinWidth = 20
	MaxWidth = 1000
)

// Config contains configuration for verse.
type Config struct {
	Files   Files   `yaml:"files,omitempty"`
	Display Display `yaml:"display,omitempty"`

	// path is the file this config was loaded from (for Save)
	path  string
	scope Scope
}

// Validate checks that all configured values are within acceptable bounds.
func (c *Config) Validate() error {
	if c.Display.Width != nil {
		v := *c.Display.Width
		if v < MinWidth || v > MaxWidth {
			return fmt.Errorf("%w: display.width must be between %d and %d, got %d",
				ErrInvalidValue, MinWidth, MaxWidth, v)
		}
	}
	return nil
}

// Bible returns the corpus path (defaults to Bible.txt).
func (c *Config) Bible() string {
	return orDefault(c.Files.Bible, DefaultBible)
}

// Abbreviations returns the abbreviation table path.
func (c *Config) Abbreviations() string {
	return orDefault(c.Files.Abbreviations, DefaultAbbreviations)
}

// Journal returns the journal path (defaults to verses.txt).
func (c *Config) Journal() string {
	return orDefault(c.Files.Journal, DefaultJournal)
}

// Width returns the wrap column (defaults to 80).
func (c *Config) Width() int {
	if c.Display.Width == nil {
		return DefaultWidth
	}
	return *c.Display.Width
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// Home returns the per-user verse directory: $VERSE_HOME if set, otherwise
// ~/.verse. Falls back to .verse in the working directory when the home
// directory is unknown.
func Home() string {
	if h := os.Getenv(HomeEnv); h != "" {
		return h
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".verse"
	}
	return filepath.Join(home, ".verse")
}

// LocalPath returns the path to the local config file.
func LocalPath() string {
	return filepath.Join(".verse", "config.yaml")
}

// GlobalPath returns the path to the global (user) config file.
func GlobalPath() string {
	return filepath.Join(Home(), "config.yaml")
}

// Load reads configuration: uses local if it exists, otherwise global.
func Load() (*Config, error) {
	if _, err := os.Stat(LocalPath()); err == nil {
		return LoadScope(ScopeLocal)
	}
	return LoadScope(ScopeGlobal)
}

// LoadScope reads configuration from a specific scope. A missing file yields
// an empty config bound to that scope's path.
func LoadScope(scope Scope) (*Config, error) {
	path := pathForScope(scope)
	if path == "" {
		return &Config{scope: scope}, nil
	}
	return loadPath(path, scope)
}

func loadPath(path string, scope Scope) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{path: path, scope: scope}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("malformed config file %s: %w\n\nTo fix: edit the file to correct the YAML syntax, or delete it to use defaults", path, err)
	}
	cfg.path = path
	cfg.scope = scope

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return &cfg, nil
}

// Scope returns which scope this config was loaded from.
func (c *Config) Scope() Scope {
	return c.scope
}

// Path returns the file this config was loaded from.
func (c *Config) Path() string {
	return c.path
}

// Save writes the configuration to its original location.
func (c *Config) Save() error {
	if c.path == "" {
		c.path = pathForScope(c.scope)
	}
	if c.path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(c.path)
}

// saveToPath writes configuration to a specific filesystem path.
// Creates parent directories as needed with mode 0755.
func (c *Config) saveToPath(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

func pathForScope(scope Scope) string {
	switch scope {
	case ScopeLocal:
		return LocalPath()
	case ScopeGlobal:
		return GlobalPath()
	default:
		return ""
	}
}
