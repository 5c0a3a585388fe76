package config

import (
	"errors"
	"fmt"

	"golang.org/x/text/language"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateTransliteration(); err != nil {
		return err
	}
	if err := c.validateGroups(); err != nil {
		return err
	}
	if err := c.validatePreload(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateTransliteration() error {
	if c.Transliteration.CacheSize < 0 {
		return errors.New("transliteration.cache_size must be zero (disabled) or positive")
	}
	if _, err := language.Parse(c.Transliteration.CollationLocale); err != nil {
		return fmt.Errorf("transliteration.collation_locale: invalid tag %q: %w", c.Transliteration.CollationLocale, err)
	}
	return nil
}

func (c *Config) validateGroups() error {
	if c.Groups.Authority == "" {
		return errors.New("groups.authority must be set")
	}
	return nil
}

func (c *Config) validatePreload() error {
	if c.Preload.LockTimeoutSeconds < 0 {
		return errors.New("preload.lock_timeout_seconds must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q (want console or json)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
