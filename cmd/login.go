package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/troc-app/troc/internal/config"
)

var loginAPIURL string

var loginCmd = &cobra.Command{
	Use:   "login <token>",
	Short: "Save an API token for the Troc backend",
	Long: `Login stores an API token in the config file. Tokens are issued by the
Troc web app under Account > API access.`,
	Args: cobra.ExactArgs(1),
	RunE: runLogin,
}

func init() {
	loginCmd.Flags().StringVar(&loginAPIURL, "api-url", "", "Override the backend API base URL")
	rootCmd.AddCommand(loginCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	token := args[0]

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	cfg.SetToken(token)
	if loginAPIURL != "" {
		cfg.SetAPIURL(loginAPIURL)
	}
	if err := cfg.CheckToken(time.Now()); err != nil {
		return fmt.Errorf("token rejected: %w", err)
	}
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("error saving config: %w", err)
	}

	if exp, ok := config.TokenExpiry(token); ok {
		fmt.Fprintf(cmd.OutOrStdout(), "Logged in. Token expires %s.\n", exp.Format("2006-01-02 15:04 MST"))
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), "Logged in.")
	}
	return nil
}
