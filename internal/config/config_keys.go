// config_keys.go provides key-value access to configuration settings for the
// "verse config" command, where settings are named by dotted keys such as
// "files.bible".

package config

import (
	"fmt"
	"slices"
	"strconv"
)

// ValidKeys returns all valid configuration keys.
func ValidKeys() []string {
	return []string{
		"files.bible", "files.abbreviations", "files.journal",
		"display.width",
	}
}

// IsValidKey returns true if the key is a valid configuration key.
func IsValidKey(key string) bool {
	return slices.Contains(ValidKeys(), key)
}

// Get returns the effective value of a configuration key as a string.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "files.bible":
		return c.Bible(), nil
	case "files.abbreviations":
		return c.Abbreviations(), nil
	case "files.journal":
		return c.Journal(), nil
	case "display.width":
		return strconv.Itoa(c.Width()), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set sets the value of a configuration key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "files.bible":
		c.Files.Bible = value
	case "files.abbreviations":
		c.Files.Abbreviations = value
	case "files.journal":
		c.Files.Journal = value
	case "display.width":
		n, err := strconv.Atoi(value)
		if err != nil || n < MinWidth || n > MaxWidth {
			return fmt.Errorf("%w: display.width must be an integer between %d and %d", ErrInvalidValue, MinWidth, MaxWidth)
		}
		c.Display.Width = &n
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}

// All returns all effective configuration values as a map.
func (c *Config) All() map[string]string {
	return map[string]string{
		"files.bible":         c.Bible(),
		"files.abbreviations": c.Abbreviations(),
		"files.journal":       c.Journal(),
		"display.width":       strconv.Itoa(c.Width()),
	}
}

// IsSet returns true if the key has an explicit value (not just defaults).
func (c *Config) IsSet(key string) bool {
	switch key {
	case "files.bible":
		return c.Files.Bible != ""
	case "files.abbreviations":
		return c.Files.Abbreviations != ""
	case "files.journal":
		return c.Files.Journal != ""
	case "display.width":
		return c.Display.Width != nil
	default:
		return false
	}
}
