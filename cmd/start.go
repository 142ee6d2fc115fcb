package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/troc-app/troc/internal/api"
	"github.com/troc-app/troc/internal/config"
	trocerrors "github.com/troc-app/troc/internal/errors"
)

var startCmd = &cobra.Command{
	Use:   "start <listing-id> <message>",
	Short: "Start a conversation about a listing without opening the TUI",
	Args:  cobra.ExactArgs(2),
	RunE:  runStart,
}

func init() {
	rootCmd.AddCommand(startCmd)
}

func runStart(cmd *cobra.Command, args []string) error {
	listingID := strings.TrimSpace(args[0])
	message := strings.TrimSpace(args[1])
	if listingID == "" || message == "" {
		return fmt.Errorf("listing id and message must not be empty")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	if err := cfg.CheckToken(time.Now()); err != nil {
		return fmt.Errorf("%v\n\nRun 'troc login <token>' to sign in", err)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
	defer cancel()

	conv, err := api.New(cfg).StartConversation(ctx, listingID, message)
	if err != nil {
		return fmt.Errorf("%s", trocerrors.UserMessage(err))
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Conversation started: %s\n", conv.ID)
	return nil
}
