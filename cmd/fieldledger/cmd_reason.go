package main

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fieldledger/fieldledger/client"
)

func newReasonCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reason",
		Short: "Manage coverage reasons",
	}
	cmd.AddCommand(reasonListCmd())
	cmd.AddCommand(reasonCreateCmd())
	cmd.AddCommand(reasonRenameCmd())
	cmd.AddCommand(reasonDeleteCmd())
	return cmd
}

func reasonListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List coverage reasons",
		Run: func(cmd *cobra.Command, args []string) {
			reasons, err := apiClient.CoverageReasons.List(context.Background())
			if err != nil {
				fatal("list coverage reasons", err)
			}
			if flagFmt == "table" {
				rows := make([][]string, 0, len(reasons))
				for _, cr := range reasons {
					rows = append(rows, []string{strconv.FormatInt(cr.ID, 10), cr.Name})
				}
				formatTable([]string{"ID", "NAME"}, rows)
				return
			}
			output(reasons, "")
		},
	}
}

func reasonCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <name>",
		Short: "Create a coverage reason",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			reason, err := apiClient.CoverageReasons.Create(context.Background(), &client.CreateCoverageReasonRequest{Name: args[0]})
			if err != nil {
				fatal("create coverage reason", err)
			}
			output(reason, strconv.FormatInt(reason.ID, 10))
		},
	}
}

func reasonRenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <id> <name>",
		Short: "Rename a coverage reason",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			name := args[1]
			reason, err := apiClient.CoverageReasons.Update(context.Background(), parseID(args[0]), &client.UpdateCoverageReasonRequest{Name: &name})
			if err != nil {
				fatal("rename coverage reason", err)
			}
			output(reason, strconv.FormatInt(reason.ID, 10))
		},
	}
}

func reasonDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a coverage reason",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := apiClient.CoverageReasons.Delete(context.Background(), parseID(args[0])); err != nil {
				fatal("delete coverage reason", err)
			}
			formatQuiet(args[0])
		},
	}
}
