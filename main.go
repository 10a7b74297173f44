package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: failed to load .env file: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "scenario-server",
		Short:        "Serve scenarios and their vehicles from a JSON file",
		SilenceUsage: true,
	}
	root.AddCommand(newServeCmd(), newRoutesCmd())
	return root
}

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Example: `  scenario-server serve
  scenario-server serve --port 8080 --data /var/lib/scenarios.json
  PORT=8080 DATA_FILE=file:///tmp/scenarios.json scenario-server serve`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := LoadConfig(cmd.Flags())
			if err != nil {
				return err
			}
			logger := NewLogger(cmd.OutOrStdout()).WithColor(cfg.Color)
			return startServer(cmd.Context(), cfg, logger)
		},
	}
	bindFlags(cmd.Flags())
	return cmd
}

func newRoutesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Print the documented HTTP endpoints",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			api, err := LoadAPIDescription(cmd.Context())
			if err != nil {
				return err
			}
			for _, e := range api.Endpoints() {
				fmt.Fprintln(cmd.OutOrStdout(), e)
			}
			return nil
		},
	}
}
