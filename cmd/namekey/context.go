package main

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"namekey/internal/config"
	"namekey/internal/contacts"
	"namekey/internal/groups"
	"namekey/internal/hanzi"
	"namekey/internal/logging"
)

type commandContext struct {
	configFlag *string

	configOnce   sync.Once
	config       *config.Config
	configPath   string
	configExists bool
	configErr    error

	loggerOnce sync.Once
	logger     *slog.Logger

	tokenizerOnce sync.Once
	tokenizer     *hanzi.Tokenizer
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, resolved, exists, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = resolved
		c.configExists = exists
	})
	return c.config, c.configErr
}

// loggerValue returns the configured logger, falling back to stderr-only
// console output when the log file cannot be opened.
func (c *commandContext) loggerValue() *slog.Logger {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		logger, err := logging.NewFromConfig(cfg)
		if err != nil {
			logger, _ = logging.New(logging.Options{Level: cfg.Logging.Level, Format: cfg.Logging.Format})
		}
		if logger == nil {
			logger = logging.NewNop()
		}
		c.logger = logger
	})
	return c.logger
}

func (c *commandContext) tokenizerValue() (*hanzi.Tokenizer, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	c.tokenizerOnce.Do(func() {
		opts := hanzi.OptionsFromConfig(*cfg)
		opts.Logger = c.loggerValue()
		c.tokenizer = hanzi.New(opts)
	})
	return c.tokenizer, nil
}

func (c *commandContext) withGroups(cmd *cobra.Command, fn func(*groups.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	store, err := groups.Open(cmd.Context(), cfg, c.loggerValue())
	if err != nil {
		return err
	}
	defer store.Close()
	return fn(store)
}

func (c *commandContext) withContacts(cmd *cobra.Command, fn func(*contacts.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	tok, err := c.tokenizerValue()
	if err != nil {
		return err
	}
	store, err := contacts.Open(cmd.Context(), cfg, tok, c.loggerValue())
	if err != nil {
		return err
	}
	defer store.Close()
	return fn(store)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
