package main

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fieldledger/fieldledger/client"
)

func newCompanyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "company",
		Short: "Manage companies",
	}
	cmd.AddCommand(companyListCmd())
	cmd.AddCommand(companyGetCmd())
	cmd.AddCommand(companyCreateCmd())
	cmd.AddCommand(companyUpdateCmd())
	cmd.AddCommand(companyDeleteCmd())
	return cmd
}

func companyListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List companies",
		Run: func(cmd *cobra.Command, args []string) {
			companies, err := apiClient.Companies.List(context.Background())
			if err != nil {
				fatal("list companies", err)
			}
			if flagFmt == "table" {
				rows := make([][]string, 0, len(companies))
				for _, co := range companies {
					rows = append(rows, []string{strconv.FormatInt(co.ID, 10), co.Name, co.CNPJ, co.Phone})
				}
				formatTable([]string{"ID", "NAME", "CNPJ", "PHONE"}, rows)
				return
			}
			output(companies, "")
		},
	}
}

func companyGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get a company by ID",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			id := parseID(args[0])
			company, err := apiClient.Companies.Get(context.Background(), id)
			if err != nil {
				fatal("get company", err)
			}
			output(company, strconv.FormatInt(company.ID, 10))
		},
	}
}

func companyCreateCmd() *cobra.Command {
	var cnpj, address, phone, email string
	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a company",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			req := &client.CreateCompanyRequest{
				Name:    args[0],
				CNPJ:    cnpj,
				Address: address,
				Phone:   phone,
				Email:   email,
			}
			company, err := apiClient.Companies.Create(context.Background(), req)
			if err != nil {
				fatal("create company", err)
			}
			output(company, strconv.FormatInt(company.ID, 10))
		},
	}
	cmd.Flags().StringVar(&cnpj, "cnpj", "", "CNPJ registration")
	cmd.Flags().StringVar(&address, "address", "", "Address")
	cmd.Flags().StringVar(&phone, "phone", "", "Phone")
	cmd.Flags().StringVar(&email, "email", "", "Email")
	return cmd
}

func companyUpdateCmd() *cobra.Command {
	var name, cnpj, address, phone, email string
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a company (only provided flags change)",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			id := parseID(args[0])
			req := &client.UpdateCompanyRequest{}
			if cmd.Flags().Changed("name") {
				req.Name = &name
			}
			if cmd.Flags().Changed("cnpj") {
				req.CNPJ = &cnpj
			}
			if cmd.Flags().Changed("address") {
				req.Address = &address
			}
			if cmd.Flags().Changed("phone") {
				req.Phone = &phone
			}
			if cmd.Flags().Changed("email") {
				req.Email = &email
			}
			company, err := apiClient.Companies.Update(context.Background(), id, req)
			if err != nil {
				fatal("update company", err)
			}
			output(company, strconv.FormatInt(company.ID, 10))
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Name")
	cmd.Flags().StringVar(&cnpj, "cnpj", "", "CNPJ registration")
	cmd.Flags().StringVar(&address, "address", "", "Address")
	cmd.Flags().StringVar(&phone, "phone", "", "Phone")
	cmd.Flags().StringVar(&email, "email", "", "Email")
	return cmd
}

func companyDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a company",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			id := parseID(args[0])
			if err := apiClient.Companies.Delete(context.Background(), id); err != nil {
				fatal("delete company", err)
			}
			formatQuiet(args[0])
		},
	}
}
