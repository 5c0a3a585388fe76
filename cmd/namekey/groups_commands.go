package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"namekey/internal/groups"
)

func newGroupsCommand(ctx *commandContext) *cobra.Command {
	groupsCmd := &cobra.Command{
		Use:   "groups",
		Short: "Manage local contact groups",
	}

	groupsCmd.AddCommand(newGroupsListCommand(ctx))
	groupsCmd.AddCommand(newGroupsAddCommand(ctx))
	groupsCmd.AddCommand(newGroupsRenameCommand(ctx))
	groupsCmd.AddCommand(newGroupsDeleteCommand(ctx))

	return groupsCmd
}

func newGroupsListCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool
	var sortOrder string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List local groups",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withGroups(cmd, func(store *groups.Store) error {
				rows, err := store.Query(cmd.Context(), store.CollectionURI(), groups.Selection{}, sortOrder)
				if err != nil {
					return err
				}
				if rows == nil {
					rows = []groups.Group{}
				}
				return writeOutput(cmd, asJSON, rows, func() string {
					table := make([][]string, 0, len(rows))
					for _, g := range rows {
						table = append(table, []string{
							strconv.FormatInt(g.ID, 10),
							g.Title,
							strconv.FormatInt(g.Count, 10),
							store.ItemURI(g.ID),
						})
					}
					return renderTable(
						[]string{"ID", "Title", "Count", "URI"},
						table,
						[]columnAlignment{alignRight, alignLeft, alignRight},
						"No groups",
					)
				})
			})
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output groups as JSON")
	cmd.Flags().StringVar(&sortOrder, "sort", "", "Sort order, e.g. \"title DESC\"")
	return cmd
}

func newGroupsAddCommand(ctx *commandContext) *cobra.Command {
	var count int64

	cmd := &cobra.Command{
		Use:   "add TITLE",
		Short: "Create a local group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := strings.TrimSpace(args[0])
			if title == "" {
				return fmt.Errorf("group title is required")
			}
			return ctx.withGroups(cmd, func(store *groups.Store) error {
				values := groups.Values{groups.ColumnTitle: title}
				if cmd.Flags().Changed("count") {
					values[groups.ColumnCount] = count
				}
				uri, err := store.Insert(cmd.Context(), store.CollectionURI(), values)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Created group %q at %s\n", title, uri)
				return nil
			})
		},
	}
	cmd.Flags().Int64Var(&count, "count", 0, "Initial member count")
	return cmd
}

func newGroupsRenameCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "rename ID TITLE",
		Short: "Rename a local group",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseGroupID(args[0])
			if err != nil {
				return err
			}
			title := strings.TrimSpace(args[1])
			if title == "" {
				return fmt.Errorf("group title is required")
			}
			return ctx.withGroups(cmd, func(store *groups.Store) error {
				n, err := store.Update(cmd.Context(), store.ItemURI(id), groups.Values{groups.ColumnTitle: title}, groups.Selection{})
				if err != nil {
					return err
				}
				if n == 0 {
					return fmt.Errorf("group %d not found", id)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Renamed group %d to %q\n", id, title)
				return nil
			})
		},
	}
}

func newGroupsDeleteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID...",
		Short: "Delete local groups",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := make([]int64, 0, len(args))
			for _, arg := range args {
				id, err := parseGroupID(arg)
				if err != nil {
					return err
				}
				ids = append(ids, id)
			}
			return ctx.withGroups(cmd, func(store *groups.Store) error {
				var removed int64
				for _, id := range ids {
					n, err := store.Delete(cmd.Context(), store.ItemURI(id), groups.Selection{})
					if err != nil {
						return err
					}
					removed += n
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d group(s)\n", removed)
				return nil
			})
		},
	}
}

func parseGroupID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid group id %q", raw)
	}
	return id, nil
}
