// Command fieldledger is the CLI for the fieldledger API.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/fieldledger/fieldledger/client"
)

// Build-time variables set via ldflags.
var (
	version   = "1.0.0"
	commit    = ""
	buildDate = ""
)

var (
	apiClient *client.Client
	flagURL   string
	flagToken string
	flagFmt   string
)

func versionString() string {
	if commit != "" && buildDate != "" {
		return fmt.Sprintf("fieldledger version %s (commit: %s, built: %s)", version, commit, buildDate)
	}
	return fmt.Sprintf("fieldledger version %s-dev", version)
}

type configFile struct {
	URL   string `yaml:"url"`
	Token string `yaml:"token"`
}

func main() {
	rootCmd := &cobra.Command{
		Use:     "fieldledger",
		Short:   "Fieldledger CLI for managing companies, clients, employees, and work logs",
		Version: versionString(),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			resolveConfig()
			var opts []client.Option
			if flagToken != "" {
				opts = append(opts, client.WithToken(flagToken))
			}
			apiClient = client.New(flagURL, opts...)
		},
		SilenceUsage: true,
	}
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&flagURL, "url", "http://localhost:8080", "Fieldledger server URL (env: FIELDLEDGER_URL)")
	rootCmd.PersistentFlags().StringVar(&flagToken, "token", "", "Bearer token (env: FIELDLEDGER_TOKEN)")
	rootCmd.PersistentFlags().StringVar(&flagFmt, "format", "json", "Output format: json|table|quiet")

	rootCmd.AddCommand(newLoginCmd())
	rootCmd.AddCommand(newCompanyCmd())
	rootCmd.AddCommand(newClientCmd())
	rootCmd.AddCommand(newEmployeeCmd())
	rootCmd.AddCommand(newServiceCmd())
	rootCmd.AddCommand(newReasonCmd())
	rootCmd.AddCommand(newWorkLogCmd())
	rootCmd.AddCommand(newUserCmd())
	rootCmd.AddCommand(newAuditCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig fills flag defaults from env, then the config file.
func resolveConfig() {
	if flagURL == "http://localhost:8080" {
		if v := os.Getenv("FIELDLEDGER_URL"); v != "" {
			flagURL = v
		}
	}
	if flagToken == "" {
		flagToken = os.Getenv("FIELDLEDGER_TOKEN")
	}

	if flagToken != "" {
		return
	}

	cfg, err := readConfigFile()
	if err != nil {
		return
	}
	if cfg.URL != "" && flagURL == "http://localhost:8080" {
		flagURL = cfg.URL
	}
	if cfg.Token != "" {
		flagToken = cfg.Token
	}
}

func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".fieldledger", "config.yaml"), nil
}

func readConfigFile() (*configFile, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg configFile
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func writeConfigFile(cfg *configFile) error {
	path, err := configPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

func fatal(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
	os.Exit(1)
}
