package main

import (
	"context"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fieldledger/fieldledger/client"
)

func newClientCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "client",
		Short: "Manage clients and their posts",
	}
	cmd.AddCommand(clientListCmd())
	cmd.AddCommand(clientGetCmd())
	cmd.AddCommand(clientCreateCmd())
	cmd.AddCommand(clientUpdateCmd())
	cmd.AddCommand(clientDeleteCmd())
	return cmd
}

func clientListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List clients",
		Run: func(cmd *cobra.Command, args []string) {
			clients, err := apiClient.Clients.List(context.Background())
			if err != nil {
				fatal("list clients", err)
			}
			if flagFmt == "table" {
				rows := make([][]string, 0, len(clients))
				for _, cl := range clients {
					rows = append(rows, []string{strconv.FormatInt(cl.ID, 10), cl.Name, strconv.Itoa(len(cl.Posts))})
				}
				formatTable([]string{"ID", "NAME", "POSTS"}, rows)
				return
			}
			output(clients, "")
		},
	}
}

func clientGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get a client by ID",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			rec, err := apiClient.Clients.Get(context.Background(), parseID(args[0]))
			if err != nil {
				fatal("get client", err)
			}
			output(rec, strconv.FormatInt(rec.ID, 10))
		},
	}
}

func clientCreateCmd() *cobra.Command {
	var cnpj, address, phone, email, posts string
	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a client",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			req := &client.CreateClientRequest{
				Name:    args[0],
				CNPJ:    cnpj,
				Address: address,
				Phone:   phone,
				Email:   email,
			}
			if posts != "" {
				req.Posts = splitPosts(posts)
			}
			rec, err := apiClient.Clients.Create(context.Background(), req)
			if err != nil {
				fatal("create client", err)
			}
			output(rec, strconv.FormatInt(rec.ID, 10))
		},
	}
	cmd.Flags().StringVar(&cnpj, "cnpj", "", "CNPJ registration")
	cmd.Flags().StringVar(&address, "address", "", "Address")
	cmd.Flags().StringVar(&phone, "phone", "", "Phone")
	cmd.Flags().StringVar(&email, "email", "", "Email")
	cmd.Flags().StringVar(&posts, "posts", "", "Comma-separated ordered post names")
	return cmd
}

func clientUpdateCmd() *cobra.Command {
	var name, posts string
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a client (only provided flags change)",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			req := &client.UpdateClientRequest{}
			if cmd.Flags().Changed("name") {
				req.Name = &name
			}
			if cmd.Flags().Changed("posts") {
				list := splitPosts(posts)
				req.Posts = &list
			}
			rec, err := apiClient.Clients.Update(context.Background(), parseID(args[0]), req)
			if err != nil {
				fatal("update client", err)
			}
			output(rec, strconv.FormatInt(rec.ID, 10))
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Name")
	cmd.Flags().StringVar(&posts, "posts", "", "Comma-separated post names; empty string clears the list")
	return cmd
}

func clientDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a client",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := apiClient.Clients.Delete(context.Background(), parseID(args[0])); err != nil {
				fatal("delete client", err)
			}
			formatQuiet(args[0])
		},
	}
}

// splitPosts turns a comma-separated flag into an ordered post list. An
// empty input yields an empty non-nil list, which clears server-side.
func splitPosts(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	posts := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			posts = append(posts, trimmed)
		}
	}
	return posts
}
