package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"

	"github.com/nevereverland/voxsync/internal/asset"
	"github.com/nevereverland/voxsync/internal/config"
	"github.com/nevereverland/voxsync/internal/syncer"
	"github.com/nevereverland/voxsync/internal/ui"
)

var rootCmd = &cobra.Command{
	Use:   "voxsync",
	Short: "Voxel asset manifest and registry synchronizer",
	Long: "Voxsync scans category folders of voxel container files, decodes each\n" +
		"model's grid size, and regenerates the per-category manifests and the\n" +
		"cross-category registry the editor consumes.",
	RunE: runSync,
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		ui.New().Error(err.Error())
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .voxsync.yaml)")
	rootCmd.PersistentFlags().String("root", "", "asset root directory")
	rootCmd.PersistentFlags().String("registry", "", "generated registry output path")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")

	rootCmd.Flags().BoolP("watch", "w", false, "stay resident and rebuild on filesystem changes")
	rootCmd.Flags().String("log-file", "", "append logs to a rotating file (watch mode)")

	_ = viper.BindPFlag("root", rootCmd.PersistentFlags().Lookup("root"))
	_ = viper.BindPFlag("registry", rootCmd.PersistentFlags().Lookup("registry"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("log_file", rootCmd.Flags().Lookup("log-file"))
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".voxsync")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("VOXSYNC")
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}

// newLogger builds the slog logger for one invocation: text on stderr, Debug
// level with --verbose, optionally teed into a rotating log file for
// long-resident watch runs.
func newLogger(cfg config.Config) *slog.Logger {
	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}

	var w io.Writer = os.Stderr
	if cfg.LogFile != "" {
		w = io.MultiWriter(os.Stderr, &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
		})
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func runSync(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	log := newLogger(cfg)
	printer := ui.New()
	s := syncer.New(cfg, log)

	watch, _ := cmd.Flags().GetBool("watch")
	if !watch {
		if err := s.RebuildAll(cmd.Context()); err != nil {
			return err
		}
		printer.Rebuilt(countAssets(cfg.Root), cfg.Registry)
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s.OnEvent = func(e syncer.Event, count int) {
		printer.Event(e)
		printer.CategoryRebuilt(e.Category, count)
	}
	printer.Watching(cfg.Root)
	if err := s.Watch(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

// countAssets tallies containers across the fixed categories for the
// one-shot summary line.
func countAssets(root string) int {
	total := 0
	for _, category := range asset.Categories() {
		files, err := asset.ListContainers(filepath.Join(root, string(category)))
		if err != nil {
			continue
		}
		total += len(files)
	}
	return total
}
