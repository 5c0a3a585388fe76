package testsupport

import (
	"path/filepath"
	"testing"

	"namekey/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.DataDir = filepath.Join(base, "data")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.Preload.LockTimeoutSeconds = 0

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithDictionary points the phonetic engine at a supplemental dictionary.
func WithDictionary(path string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Transliteration.DictionaryPath = path
	}
}

// WithPhoneticRuleset overrides the phonetic ruleset ID.
func WithPhoneticRuleset(id string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Transliteration.PhoneticRuleset = id
	}
}

// WithGroupTitles overrides the titles seeded into a new groups database.
func WithGroupTitles(titles ...string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Groups.DefaultTitles = titles
	}
}

// WithPreloadFile writes content to a preload file under the base dir and
// configures it as the default import source.
func WithPreloadFile(content string) ConfigOption {
	return func(b *configBuilder) {
		path := filepath.Join(b.baseDir, "preloaded_contacts.json")
		WriteFile(b.t, path, content)
		b.cfg.Preload.File = path
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.DataDir)
}
