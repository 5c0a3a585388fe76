package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	DataDir string `toml:"data_dir"`
	LogDir  string `toml:"log_dir"`
}

// Transliteration configures the phonetic and folding engines used by the tokenizer.
type Transliteration struct {
	PhoneticRuleset string `toml:"phonetic_ruleset"`
	FoldRuleset     string `toml:"fold_ruleset"`
	// DictionaryPath points at an optional supplemental pinyin dictionary
	// ("U+XXXX: reading,reading" per line). A configured but unreadable file
	// disables phonetic resolution.
	DictionaryPath  string `toml:"dictionary_path"`
	CacheSize       int    `toml:"cache_size"`
	CollationLocale string `toml:"collation_locale"`
}

// Groups configures the local groups store.
type Groups struct {
	Authority     string   `toml:"authority"`
	DefaultTitles []string `toml:"default_titles"`
}

// Preload configures the preloaded contacts import.
type Preload struct {
	File               string `toml:"file"`
	LockTimeoutSeconds int    `toml:"lock_timeout_seconds"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for namekey.
//
// Configuration sections by subsystem:
//   - Paths: database and log directories
//   - Transliteration: phonetic/fold rulesets, dictionary, cache, collation locale
//   - Groups: local groups URI authority and seeded titles
//   - Preload: preloaded contacts file and import lock
//   - Logging: log format and level
type Config struct {
	Paths           Paths           `toml:"paths"`
	Transliteration Transliteration `toml:"transliteration"`
	Groups          Groups          `toml:"groups"`
	Preload         Preload         `toml:"preload"`
	Logging         Logging         `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath(defaultConfigPath)
}

// Load locates, parses, and validates a configuration file. The returned config has all
// path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := expandPath(defaultConfigPath)
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("namekey.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the data and log directories.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.DataDir, c.Paths.LogDir} {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// GroupsDatabasePath returns the SQLite file backing the local groups store.
func (c *Config) GroupsDatabasePath() string {
	return filepath.Join(c.Paths.DataDir, "local_groups.db")
}

// ContactsDatabasePath returns the SQLite file backing the contacts store.
func (c *Config) ContactsDatabasePath() string {
	return filepath.Join(c.Paths.DataDir, "contacts.db")
}

// PreloadLockPath returns the lock file guarding preloaded contact imports.
func (c *Config) PreloadLockPath() string {
	return filepath.Join(c.Paths.DataDir, "preload.lock")
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
