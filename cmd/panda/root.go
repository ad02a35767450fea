package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	internalserver "github.com/pandamcp/panda/internal/server"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "panda",
		Short: "Plan-and-Audit prompt enhancement MCP server",
		Long: "PandA is an MCP server that enhances AI reasoning with structured " +
			"planning and auditing frameworks. It suggests a framework for the " +
			"task at hand and returns its guiding questions, structure, and " +
			"phase methodology — the AI does the actual thinking.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(viper.GetString("log_level"))
		},
	}

	cmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error.")

	viper.SetEnvPrefix("PANDA")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	_ = viper.BindPFlag("log_level", cmd.PersistentFlags().Lookup("log-level"))

	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newFrameworksCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// setupLogging installs a text slog handler on stderr. Stdout stays
// clean for the MCP stdio transport.
func setupLogging(level string) error {
	var lvl slog.Level
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		lvl = slog.LevelDebug
	case "", "info":
		lvl = slog.LevelInfo
	case "warn", "warning":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		return fmt.Errorf("unknown log level %q", level)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("panda v%s\n", internalserver.Version)
		},
	}
}
