package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nevereverland/voxsync/internal/config"
	"github.com/nevereverland/voxsync/internal/serve"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the workspace over HTTP for the browser editor",
	Long: "Serve hosts the workspace directory (the asset root's parent) as static\n" +
		"files with the CORS and content-type headers ES-module loading needs.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.ServeAddr = addr
		}

		dir := filepath.Dir(filepath.Clean(cfg.Root))
		srv := serve.New(cfg.ServeAddr, dir, newLogger(cfg))

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return srv.Run(ctx)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default :8000)")
	rootCmd.AddCommand(serveCmd)
}
