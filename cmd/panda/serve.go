package main

import (
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	internalserver "github.com/pandamcp/panda/internal/server"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}

	cmd.Flags().String("transport", "stdio", "Transport: stdio or http.")
	cmd.Flags().String("listen", "127.0.0.1:8090", "Listen address for the http transport.")
	cmd.Flags().String("data-dir", "", "Journal data directory (default ~/.panda).")
	cmd.Flags().Bool("no-journal", false, "Disable the invocation journal.")

	_ = viper.BindPFlag("transport", cmd.Flags().Lookup("transport"))
	_ = viper.BindPFlag("listen", cmd.Flags().Lookup("listen"))
	_ = viper.BindPFlag("data_dir", cmd.Flags().Lookup("data-dir"))
	_ = viper.BindPFlag("no_journal", cmd.Flags().Lookup("no-journal"))

	return cmd
}

func runServe() error {
	s, cleanup, err := internalserver.New(internalserver.Config{
		DataDir:        viper.GetString("data_dir"),
		DisableJournal: viper.GetBool("no_journal"),
	})
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}
	defer cleanup()

	switch transport := viper.GetString("transport"); transport {
	case "stdio":
		return server.ServeStdio(s)
	case "http":
		listen := viper.GetString("listen")
		slog.Info("starting http transport", "listen", listen)
		return server.NewStreamableHTTPServer(s).Start(listen)
	default:
		return fmt.Errorf("unknown transport %q (want stdio or http)", transport)
	}
}
