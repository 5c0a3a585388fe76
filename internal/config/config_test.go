package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"namekey/internal/config"
)

func TestLoadDefaultConfigExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("NAMEKEY_DATA_DIR", "")
	t.Setenv("NAMEKEY_LOG_LEVEL", "")
	t.Chdir(tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantData := filepath.Join(tempHome, ".local", "share", "namekey")
	if cfg.Paths.DataDir != wantData {
		t.Fatalf("unexpected data dir: got %q want %q", cfg.Paths.DataDir, wantData)
	}
	if cfg.Transliteration.PhoneticRuleset != "Han-Latin/Names; Latin-Ascii; Any-Upper" {
		t.Fatalf("unexpected phonetic ruleset: %q", cfg.Transliteration.PhoneticRuleset)
	}
	if cfg.Transliteration.CollationLocale != "zh" {
		t.Fatalf("unexpected collation locale: %q", cfg.Transliteration.CollationLocale)
	}
	if got := strings.Join(cfg.Groups.DefaultTitles, ","); got != "Family,Friend,Work" {
		t.Fatalf("unexpected default group titles: %q", got)
	}
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	for _, dir := range []string{cfg.Paths.DataDir, cfg.Paths.LogDir} {
		info, err := os.Stat(dir)
		if err != nil {
			t.Fatalf("expected directory %q to exist: %v", dir, err)
		}
		if !info.IsDir() {
			t.Fatalf("expected %q to be directory", dir)
		}
	}
	if filepath.Dir(cfg.GroupsDatabasePath()) != cfg.Paths.DataDir {
		t.Fatalf("groups database outside data dir: %q", cfg.GroupsDatabasePath())
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "namekey.toml")
	t.Setenv("NAMEKEY_DATA_DIR", "")
	t.Setenv("NAMEKEY_LOG_LEVEL", "")

	type payload struct {
		Paths struct {
			DataDir string `toml:"data_dir"`
		} `toml:"paths"`
		Transliteration struct {
			CacheSize       int    `toml:"cache_size"`
			CollationLocale string `toml:"collation_locale"`
		} `toml:"transliteration"`
		Groups struct {
			DefaultTitles []string `toml:"default_titles"`
		} `toml:"groups"`
		Logging struct {
			Format string `toml:"format"`
		} `toml:"logging"`
	}
	custom := payload{}
	custom.Paths.DataDir = filepath.Join(tempDir, "data")
	custom.Transliteration.CacheSize = 16
	custom.Transliteration.CollationLocale = "zh-Hant"
	custom.Groups.DefaultTitles = []string{" Team ", "", "Club"}
	custom.Logging.Format = "JSON"
	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists to be true")
	}
	if resolved != configPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, configPath)
	}
	if cfg.Paths.DataDir != filepath.Join(tempDir, "data") {
		t.Fatalf("unexpected data dir: %q", cfg.Paths.DataDir)
	}
	if cfg.Transliteration.CacheSize != 16 {
		t.Fatalf("expected cache size 16, got %d", cfg.Transliteration.CacheSize)
	}
	if cfg.Transliteration.CollationLocale != "zh-Hant" {
		t.Fatalf("unexpected collation locale: %q", cfg.Transliteration.CollationLocale)
	}
	if got := strings.Join(cfg.Groups.DefaultTitles, ","); got != "Team,Club" {
		t.Fatalf("expected trimmed titles, got %q", got)
	}
	if cfg.Logging.Format != "json" {
		t.Fatalf("expected lowercased log format, got %q", cfg.Logging.Format)
	}
	if cfg.Transliteration.PhoneticRuleset == "" {
		t.Fatal("expected phonetic ruleset default to survive partial config")
	}
}

func TestEnvVarOverridesDataDirAndLevel(t *testing.T) {
	dataDir := filepath.Join(t.TempDir(), "env-data")
	t.Setenv("NAMEKEY_DATA_DIR", dataDir)
	t.Setenv("NAMEKEY_LOG_LEVEL", "DEBUG")

	cfg, _, _, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Paths.DataDir != dataDir {
		t.Errorf("expected data dir from env, got %q", cfg.Paths.DataDir)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level from env, got %q", cfg.Logging.Level)
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "sample.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(contents), "Han-Latin/Names") {
		t.Fatalf("sample config missing phonetic ruleset: %s", contents)
	}

	var cfg config.Config
	if err := toml.Unmarshal(contents, &cfg); err != nil {
		t.Fatalf("unmarshal sample: %v", err)
	}
	if !strings.Contains(cfg.Paths.DataDir, "namekey") {
		t.Fatalf("expected data dir to contain namekey, got %q", cfg.Paths.DataDir)
	}
}

func TestValidateDetectsInvalidValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
		want   string
	}{
		{"negative cache", func(c *config.Config) { c.Transliteration.CacheSize = -1 }, "cache_size"},
		{"bad locale", func(c *config.Config) { c.Transliteration.CollationLocale = "not a locale!" }, "collation_locale"},
		{"bad format", func(c *config.Config) { c.Logging.Format = "xml" }, "logging.format"},
		{"bad level", func(c *config.Config) { c.Logging.Level = "loud" }, "logging.level"},
		{"empty authority", func(c *config.Config) { c.Groups.Authority = "" }, "groups.authority"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error mentioning %q, got %v", tc.want, err)
			}
		})
	}
}

func TestDefaultValidates(t *testing.T) {
	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}
