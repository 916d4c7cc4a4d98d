package main

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fieldledger/fieldledger/client"
)

func newEmployeeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "employee",
		Short: "Manage employees",
	}
	cmd.AddCommand(employeeListCmd())
	cmd.AddCommand(employeeGetCmd())
	cmd.AddCommand(employeeCreateCmd())
	cmd.AddCommand(employeeUpdateCmd())
	cmd.AddCommand(employeeDeleteCmd())
	return cmd
}

func employeeListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List employees",
		Run: func(cmd *cobra.Command, args []string) {
			employees, err := apiClient.Employees.List(context.Background())
			if err != nil {
				fatal("list employees", err)
			}
			if flagFmt == "table" {
				rows := make([][]string, 0, len(employees))
				for _, e := range employees {
					rows = append(rows, []string{strconv.FormatInt(e.ID, 10), e.Name, e.Role, e.RE})
				}
				formatTable([]string{"ID", "NAME", "ROLE", "RE"}, rows)
				return
			}
			output(employees, "")
		},
	}
}

func employeeGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get an employee by ID",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			employee, err := apiClient.Employees.Get(context.Background(), parseID(args[0]))
			if err != nil {
				fatal("get employee", err)
			}
			output(employee, strconv.FormatInt(employee.ID, 10))
		},
	}
}

func employeeCreateCmd() *cobra.Command {
	var cpf, role, phone, email, re string
	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create an employee",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			req := &client.CreateEmployeeRequest{
				Name:  args[0],
				CPF:   cpf,
				Role:  role,
				Phone: phone,
				Email: email,
				RE:    re,
			}
			employee, err := apiClient.Employees.Create(context.Background(), req)
			if err != nil {
				fatal("create employee", err)
			}
			output(employee, strconv.FormatInt(employee.ID, 10))
		},
	}
	cmd.Flags().StringVar(&cpf, "cpf", "", "CPF registration")
	cmd.Flags().StringVar(&role, "role", "", "Role classification")
	cmd.Flags().StringVar(&phone, "phone", "", "Phone")
	cmd.Flags().StringVar(&email, "email", "", "Email")
	cmd.Flags().StringVar(&re, "re", "", "Internal registration number")
	return cmd
}

func employeeUpdateCmd() *cobra.Command {
	var name, cpf, role, phone, email, re string
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an employee (only provided flags change)",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			req := &client.UpdateEmployeeRequest{}
			if cmd.Flags().Changed("name") {
				req.Name = &name
			}
			if cmd.Flags().Changed("cpf") {
				req.CPF = &cpf
			}
			if cmd.Flags().Changed("role") {
				req.Role = &role
			}
			if cmd.Flags().Changed("phone") {
				req.Phone = &phone
			}
			if cmd.Flags().Changed("email") {
				req.Email = &email
			}
			if cmd.Flags().Changed("re") {
				req.RE = &re
			}
			employee, err := apiClient.Employees.Update(context.Background(), parseID(args[0]), req)
			if err != nil {
				fatal("update employee", err)
			}
			output(employee, strconv.FormatInt(employee.ID, 10))
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Name")
	cmd.Flags().StringVar(&cpf, "cpf", "", "CPF registration")
	cmd.Flags().StringVar(&role, "role", "", "Role classification")
	cmd.Flags().StringVar(&phone, "phone", "", "Phone")
	cmd.Flags().StringVar(&email, "email", "", "Email")
	cmd.Flags().StringVar(&re, "re", "", "Internal registration number")
	return cmd
}

func employeeDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an employee",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := apiClient.Employees.Delete(context.Background(), parseID(args[0])); err != nil {
				fatal("delete employee", err)
			}
			formatQuiet(args[0])
		},
	}
}
