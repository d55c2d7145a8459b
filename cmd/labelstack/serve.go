// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/labelstack/internal/server"
	"github.com/pdiddy/labelstack/pkg/types"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the upload-and-download web UI",
	Long: `Serve runs a local web UI: upload a PDF, pick a page and a gap, download
the stacked result. Each request runs the same one-shot duplication as the
CLI; nothing is stored server-side.`,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default :8080)")
	serveCmd.Flags().Int64("max-upload-mb", 0, "maximum upload size in megabytes (default 50)")
	serveCmd.Flags().Duration("request-timeout", 0, "per-request timeout (default 30s)")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := serveConfig(cmd)

	logger := zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Str("service", "labelstack").Logger()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.New(cfg, logger).Run(ctx)
}

// serveConfig resolves server settings: flag beats config file beats default.
func serveConfig(cmd *cobra.Command) types.ServeConfig {
	cfg := types.DefaultConfig().Serve

	if viper.IsSet("serve.addr") {
		cfg.Addr = viper.GetString("serve.addr")
	}
	if viper.IsSet("serve.max_upload_mb") {
		cfg.MaxUploadMB = viper.GetInt64("serve.max_upload_mb")
	}
	if viper.IsSet("serve.request_timeout") {
		cfg.RequestTimeout = viper.GetDuration("serve.request_timeout")
	}

	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		cfg.Addr = addr
	}
	if mb, _ := cmd.Flags().GetInt64("max-upload-mb"); mb > 0 {
		cfg.MaxUploadMB = mb
	}
	if d, _ := cmd.Flags().GetDuration("request-timeout"); d > 0 {
		cfg.RequestTimeout = d
	}
	return cfg
}
