package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeTransliteration(); err != nil {
		return err
	}
	c.normalizeGroups()
	if err := c.normalizePreload(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	if value, ok := os.LookupEnv("NAMEKEY_DATA_DIR"); ok && strings.TrimSpace(value) != "" {
		c.Paths.DataDir = strings.TrimSpace(value)
	}
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	var err error
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeTransliteration() error {
	t := &c.Transliteration
	t.PhoneticRuleset = strings.TrimSpace(t.PhoneticRuleset)
	if t.PhoneticRuleset == "" {
		t.PhoneticRuleset = defaultPhoneticRuleset
	}
	t.FoldRuleset = strings.TrimSpace(t.FoldRuleset)
	if t.FoldRuleset == "" {
		t.FoldRuleset = defaultFoldRuleset
	}
	t.CollationLocale = strings.TrimSpace(t.CollationLocale)
	if t.CollationLocale == "" {
		t.CollationLocale = defaultCollationLocale
	}
	if strings.TrimSpace(t.DictionaryPath) != "" {
		var err error
		if t.DictionaryPath, err = expandPath(strings.TrimSpace(t.DictionaryPath)); err != nil {
			return fmt.Errorf("transliteration.dictionary_path: %w", err)
		}
	}
	return nil
}

func (c *Config) normalizeGroups() {
	c.Groups.Authority = strings.TrimSpace(c.Groups.Authority)
	if c.Groups.Authority == "" {
		c.Groups.Authority = defaultGroupsAuthority
	}
	titles := make([]string, 0, len(c.Groups.DefaultTitles))
	for _, title := range c.Groups.DefaultTitles {
		if trimmed := strings.TrimSpace(title); trimmed != "" {
			titles = append(titles, trimmed)
		}
	}
	c.Groups.DefaultTitles = titles
}

func (c *Config) normalizePreload() error {
	if strings.TrimSpace(c.Preload.File) != "" {
		var err error
		if c.Preload.File, err = expandPath(strings.TrimSpace(c.Preload.File)); err != nil {
			return fmt.Errorf("preload.file: %w", err)
		}
	}
	if c.Preload.LockTimeoutSeconds == 0 {
		c.Preload.LockTimeoutSeconds = defaultPreloadLockTimeout
	}
	return nil
}

func (c *Config) normalizeLogging() {
	if value, ok := os.LookupEnv("NAMEKEY_LOG_LEVEL"); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
