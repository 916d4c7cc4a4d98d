package main

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fieldledger/fieldledger/client"
)

func newAuditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Inspect the audit trail (admin only)",
	}
	cmd.AddCommand(auditListCmd())
	return cmd
}

func auditListCmd() *cobra.Command {
	var (
		entity, action string
		limit, offset  int
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List audit entries newest first",
		Run: func(cmd *cobra.Command, args []string) {
			entries, hasMore, err := apiClient.Audit.List(context.Background(), &client.AuditListOptions{
				Entity: entity,
				Action: action,
				Limit:  limit,
				Offset: offset,
			})
			if err != nil {
				fatal("list audit entries", err)
			}
			if flagFmt == "table" {
				rows := make([][]string, 0, len(entries))
				for _, e := range entries {
					rows = append(rows, []string{
						strconv.FormatInt(e.ID, 10),
						e.CreatedAt.Format("2006-01-02 15:04:05"),
						strOrDash(e.Username),
						e.Action,
						e.Entity,
						strconv.FormatInt(e.EntityID, 10),
					})
				}
				formatTable([]string{"ID", "WHEN", "USER", "ACTION", "ENTITY", "ENTITY_ID"}, rows)
				if hasMore {
					formatQuiet("(more results available)")
				}
				return
			}
			output(map[string]any{"audit_logs": entries, "has_more": hasMore}, "")
		},
	}
	cmd.Flags().StringVar(&entity, "entity", "", "Filter by entity, e.g. companies")
	cmd.Flags().StringVar(&action, "action", "", "Filter by action: CREATE|UPDATE|DELETE|UPDATE_PASSWORD")
	cmd.Flags().IntVar(&limit, "limit", 50, "Page size")
	cmd.Flags().IntVar(&offset, "offset", 0, "Page offset")
	return cmd
}
