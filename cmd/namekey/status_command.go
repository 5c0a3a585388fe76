package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"namekey/internal/contacts"
	"namekey/internal/groups"
	"namekey/internal/hanzi"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show configuration, engine, and store status",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			tok, err := ctx.tokenizerValue()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)

			var lines []string
			lines = append(lines, renderSectionHeader("Configuration", colorize)...)
			lines = append(lines, renderStatusLines([]statusLine{
				infoLine("Config", fmt.Sprintf("%s (exists: %s)", ctx.configPath, yesNo(ctx.configExists))),
				infoLine("Data dir", cfg.Paths.DataDir),
				infoLine("Log dir", cfg.Paths.LogDir),
			}, colorize)...)

			lines = append(lines, "")
			lines = append(lines, renderSectionHeader("Transliteration", colorize)...)
			lines = append(lines, renderStatusLines([]statusLine{
				engineLine(tok.State()),
				infoLine("Phonetic ruleset", cfg.Transliteration.PhoneticRuleset),
				infoLine("Fold ruleset", cfg.Transliteration.FoldRuleset),
				infoLine("Dictionary", valueOrNone(cfg.Transliteration.DictionaryPath)),
				infoLine("Collation locale", cfg.Transliteration.CollationLocale),
				infoLine("Surname overrides", strconv.Itoa(len(hanzi.Surnames()))),
			}, colorize)...)

			lines = append(lines, "")
			lines = append(lines, renderSectionHeader("Stores", colorize)...)
			lines = append(lines, renderStatusLines([]statusLine{
				groupsStatus(cmd, ctx),
				contactsStatus(cmd, ctx),
			}, colorize)...)

			_, err = fmt.Fprintln(out, strings.Join(lines, "\n"))
			return err
		},
	}
}

func groupsStatus(cmd *cobra.Command, ctx *commandContext) statusLine {
	var count int
	err := ctx.withGroups(cmd, func(store *groups.Store) error {
		rows, err := store.Query(cmd.Context(), store.CollectionURI(), groups.Selection{}, "")
		count = len(rows)
		return err
	})
	return storeLine("Local groups", count, "groups", err)
}

func contactsStatus(cmd *cobra.Command, ctx *commandContext) statusLine {
	var count int
	err := ctx.withContacts(cmd, func(store *contacts.Store) error {
		var err error
		count, err = store.Count(cmd.Context())
		return err
	})
	return storeLine("Contacts", count, "contacts", err)
}

func valueOrNone(value string) string {
	if strings.TrimSpace(value) == "" {
		return "none"
	}
	return value
}
