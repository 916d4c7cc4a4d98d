package main

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fieldledger/fieldledger/client"
)

func newUserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage users (admin only, except passwd)",
	}
	cmd.AddCommand(userListCmd())
	cmd.AddCommand(userGetCmd())
	cmd.AddCommand(userCreateCmd())
	cmd.AddCommand(userUpdateCmd())
	cmd.AddCommand(userPasswdCmd())
	cmd.AddCommand(userDeleteCmd())
	return cmd
}

func permissionsFromFlags(cmd *cobra.Command) client.Permissions {
	read := func(name string) bool {
		v, _ := cmd.Flags().GetBool(name)
		return v
	}
	return client.Permissions{
		Registries: client.PermissionFlags{
			Create: read("reg-create"),
			Edit:   read("reg-edit"),
			Delete: read("reg-delete"),
		},
		WorkLogs: client.PermissionFlags{
			Create: read("wl-create"),
			Edit:   read("wl-edit"),
			Delete: read("wl-delete"),
		},
	}
}

func addPermissionFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("reg-create", false, "Allow creating registry records")
	cmd.Flags().Bool("reg-edit", false, "Allow editing registry records")
	cmd.Flags().Bool("reg-delete", false, "Allow deleting registry records")
	cmd.Flags().Bool("wl-create", false, "Allow creating work logs")
	cmd.Flags().Bool("wl-edit", false, "Allow editing work logs")
	cmd.Flags().Bool("wl-delete", false, "Allow deleting work logs")
}

func permissionFlagsChanged(cmd *cobra.Command) bool {
	for _, name := range []string{"reg-create", "reg-edit", "reg-delete", "wl-create", "wl-edit", "wl-delete"} {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

func userListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List users",
		Run: func(cmd *cobra.Command, args []string) {
			users, err := apiClient.Users.List(context.Background())
			if err != nil {
				fatal("list users", err)
			}
			if flagFmt == "table" {
				rows := make([][]string, 0, len(users))
				for _, u := range users {
					rows = append(rows, []string{
						strconv.FormatInt(u.ID, 10),
						u.Username,
						u.Role,
					})
				}
				formatTable([]string{"ID", "USERNAME", "ROLE"}, rows)
				return
			}
			output(map[string]any{"users": users}, "")
		},
	}
}

func userGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get a user",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			u, err := apiClient.Users.Get(context.Background(), parseID(args[0]))
			if err != nil {
				fatal("get user", err)
			}
			output(u, strconv.FormatInt(u.ID, 10))
		},
	}
}

func userCreateCmd() *cobra.Command {
	var password, role string
	cmd := &cobra.Command{
		Use:   "create <username>",
		Short: "Create a user",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			u, err := apiClient.Users.Create(context.Background(), &client.CreateUserRequest{
				Username:    args[0],
				Password:    password,
				Role:        role,
				Permissions: permissionsFromFlags(cmd),
			})
			if err != nil {
				fatal("create user", err)
			}
			output(u, strconv.FormatInt(u.ID, 10))
		},
	}
	cmd.Flags().StringVar(&password, "password", "", "Password (min 6 characters)")
	cmd.Flags().StringVar(&role, "role", client.RoleUser, "Role: admin|user")
	addPermissionFlags(cmd)
	return cmd
}

func userUpdateCmd() *cobra.Command {
	var username, password, role string
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a user (only provided flags change)",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			req := &client.UpdateUserRequest{}
			if cmd.Flags().Changed("username") {
				req.Username = &username
			}
			if cmd.Flags().Changed("password") {
				req.Password = &password
			}
			if cmd.Flags().Changed("role") {
				req.Role = &role
			}
			if permissionFlagsChanged(cmd) {
				perms := permissionsFromFlags(cmd)
				req.Permissions = &perms
			}
			u, err := apiClient.Users.Update(context.Background(), parseID(args[0]), req)
			if err != nil {
				fatal("update user", err)
			}
			output(u, strconv.FormatInt(u.ID, 10))
		},
	}
	cmd.Flags().StringVar(&username, "username", "", "New username")
	cmd.Flags().StringVar(&password, "password", "", "New password")
	cmd.Flags().StringVar(&role, "role", "", "Role: admin|user")
	addPermissionFlags(cmd)
	return cmd
}

func userPasswdCmd() *cobra.Command {
	var password string
	cmd := &cobra.Command{
		Use:   "passwd",
		Short: "Change your own password",
		Run: func(cmd *cobra.Command, args []string) {
			if password == "" {
				password = promptLine("New password: ")
			}
			if err := apiClient.Users.ChangePassword(context.Background(), password); err != nil {
				fatal("change password", err)
			}
			formatQuiet("password changed")
		},
	}
	cmd.Flags().StringVar(&password, "password", "", "New password (prompted when omitted)")
	return cmd
}

func userDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a user",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := apiClient.Users.Delete(context.Background(), parseID(args[0])); err != nil {
				fatal("delete user", err)
			}
			formatQuiet(args[0])
		},
	}
}
