package main

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fieldledger/fieldledger/client"
)

func newServiceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "service",
		Short: "Manage the service catalog",
	}
	cmd.AddCommand(serviceListCmd())
	cmd.AddCommand(serviceGetCmd())
	cmd.AddCommand(serviceCreateCmd())
	cmd.AddCommand(serviceUpdateCmd())
	cmd.AddCommand(serviceDeleteCmd())
	return cmd
}

func serviceListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List catalog services",
		Run: func(cmd *cobra.Command, args []string) {
			services, err := apiClient.Services.List(context.Background())
			if err != nil {
				fatal("list services", err)
			}
			if flagFmt == "table" {
				rows := make([][]string, 0, len(services))
				for _, sv := range services {
					rows = append(rows, []string{
						strconv.FormatInt(sv.ID, 10),
						sv.Name,
						strconv.FormatFloat(sv.DefaultValue, 'f', 2, 64),
					})
				}
				formatTable([]string{"ID", "NAME", "DEFAULT"}, rows)
				return
			}
			output(services, "")
		},
	}
}

func serviceGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get a catalog service by ID",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			svc, err := apiClient.Services.Get(context.Background(), parseID(args[0]))
			if err != nil {
				fatal("get service", err)
			}
			output(svc, strconv.FormatInt(svc.ID, 10))
		},
	}
}

func serviceCreateCmd() *cobra.Command {
	var description string
	var defaultValue float64
	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a catalog service",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			req := &client.CreateServiceRequest{
				Name:         args[0],
				Description:  description,
				DefaultValue: defaultValue,
			}
			svc, err := apiClient.Services.Create(context.Background(), req)
			if err != nil {
				fatal("create service", err)
			}
			output(svc, strconv.FormatInt(svc.ID, 10))
		},
	}
	cmd.Flags().StringVar(&description, "description", "", "Description")
	cmd.Flags().Float64Var(&defaultValue, "default-value", 0, "Default billing value")
	return cmd
}

func serviceUpdateCmd() *cobra.Command {
	var name, description string
	var defaultValue float64
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a catalog service (only provided flags change)",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			req := &client.UpdateServiceRequest{}
			if cmd.Flags().Changed("name") {
				req.Name = &name
			}
			if cmd.Flags().Changed("description") {
				req.Description = &description
			}
			if cmd.Flags().Changed("default-value") {
				req.DefaultValue = &defaultValue
			}
			svc, err := apiClient.Services.Update(context.Background(), parseID(args[0]), req)
			if err != nil {
				fatal("update service", err)
			}
			output(svc, strconv.FormatInt(svc.ID, 10))
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Name")
	cmd.Flags().StringVar(&description, "description", "", "Description")
	cmd.Flags().Float64Var(&defaultValue, "default-value", 0, "Default billing value")
	return cmd
}

func serviceDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a catalog service",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := apiClient.Services.Delete(context.Background(), parseID(args[0])); err != nil {
				fatal("delete service", err)
			}
			formatQuiet(args[0])
		},
	}
}
