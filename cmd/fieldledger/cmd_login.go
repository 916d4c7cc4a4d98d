package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newLoginCmd() *cobra.Command {
	var (
		username string
		password string
		save     bool
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate and print a bearer token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if username == "" {
				username = promptLine("Username: ")
			}
			if password == "" {
				password = promptLine("Password: ")
			}

			resp, err := apiClient.Login(context.Background(), username, password)
			if err != nil {
				return fmt.Errorf("login: %w", err)
			}

			if save {
				if err := writeConfigFile(&configFile{URL: flagURL, Token: resp.Token}); err != nil {
					return fmt.Errorf("save config: %w", err)
				}
				fmt.Fprintln(os.Stderr, "Token saved to config.")
			}

			output(resp, resp.Token)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Username (prompted when omitted)")
	cmd.Flags().StringVar(&password, "password", "", "Password (prompted when omitted)")
	cmd.Flags().BoolVar(&save, "save", false, "Write the token to ~/.fieldledger/config.yaml")
	return cmd
}
