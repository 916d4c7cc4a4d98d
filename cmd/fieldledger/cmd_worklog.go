package main

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fieldledger/fieldledger/client"
)

func newWorkLogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "worklog",
		Short: "Manage work logs",
	}
	cmd.AddCommand(workLogListCmd())
	cmd.AddCommand(workLogGetCmd())
	cmd.AddCommand(workLogCreateCmd())
	cmd.AddCommand(workLogUpdateCmd())
	cmd.AddCommand(workLogPayCmd())
	cmd.AddCommand(workLogDeleteCmd())
	return cmd
}

func workLogListCmd() *cobra.Command {
	var limit, offset int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List work logs newest first",
		Run: func(cmd *cobra.Command, args []string) {
			logs, hasMore, err := apiClient.WorkLogs.List(context.Background(), limit, offset)
			if err != nil {
				fatal("list work logs", err)
			}
			if flagFmt == "table" {
				rows := make([][]string, 0, len(logs))
				for _, wl := range logs {
					rows = append(rows, []string{
						strconv.FormatInt(wl.ID, 10),
						wl.Date,
						strOrDash(wl.CompanyName),
						strOrDash(wl.ClientName),
						strOrDash(wl.EmployeeName),
						strconv.FormatFloat(wl.Value, 'f', 2, 64),
						wl.Status,
					})
				}
				formatTable([]string{"ID", "DATE", "COMPANY", "CLIENT", "EMPLOYEE", "VALUE", "STATUS"}, rows)
				if hasMore {
					formatQuiet("(more results available)")
				}
				return
			}
			output(map[string]any{"work_logs": logs, "has_more": hasMore}, "")
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 50, "Page size")
	cmd.Flags().IntVar(&offset, "offset", 0, "Page offset")
	return cmd
}

func workLogGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get a work log with resolved names",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			entry, err := apiClient.WorkLogs.Get(context.Background(), parseID(args[0]))
			if err != nil {
				fatal("get work log", err)
			}
			output(entry, strconv.FormatInt(entry.ID, 10))
		},
	}
}

func workLogCreateCmd() *cobra.Command {
	var (
		companyID, clientID, employeeID, serviceID, originClientID, reasonID int64
		value                                                               float64
		description, postName, status, originPostName                       string
	)
	cmd := &cobra.Command{
		Use:   "create <date>",
		Short: "Create a work log for a YYYY-MM-DD date",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			req := &client.CreateWorkLogRequest{
				Date:             args[0],
				Value:            value,
				Description:      description,
				PostName:         postName,
				Status:           status,
				OriginPostName:   originPostName,
				CompanyID:        optInt64(cmd.Flags().Changed("company"), companyID),
				ClientID:         optInt64(cmd.Flags().Changed("client"), clientID),
				EmployeeID:       optInt64(cmd.Flags().Changed("employee"), employeeID),
				ServiceID:        optInt64(cmd.Flags().Changed("service"), serviceID),
				OriginClientID:   optInt64(cmd.Flags().Changed("origin-client"), originClientID),
				CoverageReasonID: optInt64(cmd.Flags().Changed("reason"), reasonID),
			}
			wl, err := apiClient.WorkLogs.Create(context.Background(), req)
			if err != nil {
				fatal("create work log", err)
			}
			output(wl, strconv.FormatInt(wl.ID, 10))
		},
	}
	cmd.Flags().Int64Var(&companyID, "company", 0, "Company ID")
	cmd.Flags().Int64Var(&clientID, "client", 0, "Client ID")
	cmd.Flags().Int64Var(&employeeID, "employee", 0, "Employee ID")
	cmd.Flags().Int64Var(&serviceID, "service", 0, "Service ID")
	cmd.Flags().Float64Var(&value, "value", 0, "Billed value")
	cmd.Flags().StringVar(&description, "description", "", "Description")
	cmd.Flags().StringVar(&postName, "post", "", "Post name")
	cmd.Flags().StringVar(&status, "status", "", "Status: pending|paid (default pending)")
	cmd.Flags().Int64Var(&originClientID, "origin-client", 0, "Origin client ID for coverage shifts")
	cmd.Flags().StringVar(&originPostName, "origin-post", "", "Origin post name for coverage shifts")
	cmd.Flags().Int64Var(&reasonID, "reason", 0, "Coverage reason ID")
	return cmd
}

func workLogUpdateCmd() *cobra.Command {
	var (
		date, description, postName, status string
		value                               float64
	)
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a work log (only provided flags change)",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			req := &client.UpdateWorkLogRequest{}
			if cmd.Flags().Changed("date") {
				req.Date = &date
			}
			if cmd.Flags().Changed("value") {
				req.Value = &value
			}
			if cmd.Flags().Changed("description") {
				req.Description = &description
			}
			if cmd.Flags().Changed("post") {
				req.PostName = &postName
			}
			if cmd.Flags().Changed("status") {
				req.Status = &status
			}
			wl, err := apiClient.WorkLogs.Update(context.Background(), parseID(args[0]), req)
			if err != nil {
				fatal("update work log", err)
			}
			output(wl, strconv.FormatInt(wl.ID, 10))
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD)")
	cmd.Flags().Float64Var(&value, "value", 0, "Billed value")
	cmd.Flags().StringVar(&description, "description", "", "Description")
	cmd.Flags().StringVar(&postName, "post", "", "Post name")
	cmd.Flags().StringVar(&status, "status", "", "Status: pending|paid")
	return cmd
}

func workLogPayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pay <id>",
		Short: "Mark a work log as paid",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			wl, err := apiClient.WorkLogs.MarkPaid(context.Background(), parseID(args[0]))
			if err != nil {
				fatal("mark work log paid", err)
			}
			output(wl, strconv.FormatInt(wl.ID, 10))
		},
	}
}

func workLogDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a work log",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := apiClient.WorkLogs.Delete(context.Background(), parseID(args[0])); err != nil {
				fatal("delete work log", err)
			}
			formatQuiet(args[0])
		},
	}
}
