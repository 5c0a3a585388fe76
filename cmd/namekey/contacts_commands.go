package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"namekey/internal/contacts"
	"namekey/internal/preload"
)

func newContactsCommand(ctx *commandContext) *cobra.Command {
	contactsCmd := &cobra.Command{
		Use:   "contacts",
		Short: "Import, list, and search contacts",
	}

	contactsCmd.AddCommand(newContactsImportCommand(ctx))
	contactsCmd.AddCommand(newContactsListCommand(ctx))
	contactsCmd.AddCommand(newContactsSearchCommand(ctx))

	return contactsCmd
}

func newContactsImportCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "import [FILE]",
		Short: "Import a preloaded contacts JSON file (defaults to preload.file)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			var path string
			if len(args) == 1 {
				path = args[0]
			}
			return ctx.withContacts(cmd, func(store *contacts.Store) error {
				summary, err := preload.NewImporter(cfg, store, ctx.loggerValue()).Import(cmd.Context(), path)
				if err != nil {
					return err
				}
				if asJSON {
					return writeJSON(cmd, summary)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Imported %d contact(s) with %d data row(s) from %s (batch %s)\n",
					summary.Contacts, summary.DataRows, summary.File, summary.BatchID)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output the import summary as JSON")
	return cmd
}

func newContactsListCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List contacts in sort order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withContacts(cmd, func(store *contacts.Store) error {
				list, err := store.List(cmd.Context())
				if err != nil {
					return err
				}
				return writeContacts(cmd, asJSON, list, "No contacts")
			})
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output contacts as JSON")
	return cmd
}

func newContactsSearchCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "search QUERY",
		Short: "Find contacts by name, pinyin, or initials",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withContacts(cmd, func(store *contacts.Store) error {
				found, err := store.Search(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return writeContacts(cmd, asJSON, found, fmt.Sprintf("No contacts match %q", args[0]))
			})
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output matches as JSON")
	return cmd
}

func writeContacts(cmd *cobra.Command, asJSON bool, list []contacts.Contact, empty string) error {
	if list == nil {
		list = []contacts.Contact{}
	}
	return writeOutput(cmd, asJSON, list, func() string {
		rows := make([][]string, 0, len(list))
		for _, c := range list {
			rows = append(rows, []string{strconv.FormatInt(c.ID, 10), c.DisplayName, c.SortKey, c.PhoneticName})
		}
		return renderTable(
			[]string{"ID", "Name", "Sort Key", "Phonetic"},
			rows,
			[]columnAlignment{alignRight},
			empty,
		)
	})
}
