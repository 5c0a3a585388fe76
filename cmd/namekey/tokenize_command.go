package main

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"namekey/internal/hanzi"
	"namekey/internal/namelookup"
)

type tokenizedName struct {
	Name   string        `json:"name"`
	Tokens []hanzi.Token `json:"tokens"`
}

func newTokenizeCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "tokenize NAME...",
		Short: "Split names into latin, phonetic, and unclassified tokens",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tok, err := ctx.tokenizerValue()
			if err != nil {
				return err
			}
			results := make([]tokenizedName, 0, len(args))
			for _, name := range args {
				results = append(results, tokenizedName{Name: name, Tokens: tok.Tokenize(name)})
			}
			return writeOutput(cmd, asJSON, results, func() string {
				var rows [][]string
				for _, r := range results {
					for i, t := range r.Tokens {
						rows = append(rows, []string{r.Name, strconv.Itoa(i + 1), t.Class.String(), t.Source, t.Target})
					}
				}
				return renderTable(
					[]string{"Name", "#", "Class", "Source", "Target"},
					rows,
					[]columnAlignment{alignLeft, alignRight},
					noTokensMessage(tok),
				)
			})
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output tokens as JSON")
	return cmd
}

type sortKeyRow struct {
	Name         string   `json:"name"`
	SortKey      string   `json:"sort_key"`
	PhoneticName string   `json:"phonetic_name"`
	LookupKeys   []string `json:"lookup_keys"`
}

func newSortKeyCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "sortkey NAME...",
		Short: "Show sort keys, phonetic names, and lookup keys for names",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tok, err := ctx.tokenizerValue()
			if err != nil {
				return err
			}
			results := make([]sortKeyRow, 0, len(args))
			for _, name := range args {
				tokens := tok.Tokenize(name)
				results = append(results, sortKeyRow{
					Name:         name,
					SortKey:      namelookup.SortKey(tokens),
					PhoneticName: namelookup.PhoneticName(tokens),
					LookupKeys:   namelookup.Keys(tokens),
				})
			}
			return writeOutput(cmd, asJSON, results, func() string {
				rows := make([][]string, 0, len(results))
				for _, r := range results {
					rows = append(rows, []string{r.Name, r.SortKey, r.PhoneticName, strings.Join(r.LookupKeys, ", ")})
				}
				return renderTable([]string{"Name", "Sort Key", "Phonetic", "Lookup Keys"}, rows, nil, "")
			})
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output keys as JSON")
	return cmd
}

func noTokensMessage(tok *hanzi.Tokenizer) string {
	if !tok.HasEngine() {
		return "No tokens: phonetic engine unavailable (run `namekey status`)"
	}
	return "No tokens"
}
