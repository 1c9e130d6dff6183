package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ironsheep/sdf-tools-mcp/internal/config"
	"github.com/ironsheep/sdf-tools-mcp/internal/server"
)

// newLogger creates a logger that writes timestamped entries to w.
// stdout carries the protocol, so w is normally stderr.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
		Prefix:          "sdf-mcp",
	})
}

// loadConfig resolves the config file from the flag or SDF_MCP_CONFIG and
// applies a --log-level override on top of it.
func loadConfig(path, level string) (config.Config, error) {
	if path == "" {
		path = os.Getenv(config.EnvConfig)
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	if level != "" {
		cfg.LogLevel = level
		if err := cfg.Validate(); err != nil {
			return config.Config{}, err
		}
	}
	return cfg, nil
}

func newRootCmd() *cobra.Command {
	var configPath, logLevel string

	root := &cobra.Command{
		Use:   "sdf-mcp",
		Short: "MCP server for signed distance fields",
		Long: `sdf-mcp thresholds images into shapes and computes their signed distance
fields with the linear-time dead reckoning transform. It speaks the Model
Context Protocol over stdin/stdout; configure it in your MCP client.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath, logLevel)
			if err != nil {
				return err
			}

			logger := newLogger(cmd.ErrOrStderr(), cfg.Level())
			logger.Debug("starting", "version", Version, "built", BuildTime, "commit", GitCommit)

			server.Version = Version
			srv, err := server.New(cfg, logger)
			if err != nil {
				return err
			}
			if err := srv.Serve(cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
				logger.Error("server stopped", "err", err)
				return err
			}
			return nil
		},
	}

	root.Flags().StringVar(&configPath, "config", "", fmt.Sprintf("path to a TOML config file (env %s)", config.EnvConfig))
	root.Flags().StringVar(&logLevel, "log-level", "", fmt.Sprintf("debug, info, warn or error (env %s)", config.EnvLogLevel))

	root.AddCommand(newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "sdf-tools-mcp %s\n", Version)
			fmt.Fprintf(out, "  Build time: %s\n", BuildTime)
			fmt.Fprintf(out, "  Git commit: %s\n", GitCommit)
		},
	}
}
