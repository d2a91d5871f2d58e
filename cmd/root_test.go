package cmd

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/nevereverland/voxsync/internal/config"
)

func TestRootCommand_Flags(t *testing.T) {
	for _, name := range []string{"config", "root", "registry", "verbose"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("missing persistent flag --%s", name)
		}
	}
	for _, name := range []string{"watch", "log-file"} {
		if rootCmd.Flags().Lookup(name) == nil {
			t.Errorf("missing flag --%s", name)
		}
	}
}

func TestRootCommand_Subcommands(t *testing.T) {
	want := map[string]bool{"serve": false, "list": false, "check": false}
	for _, sub := range rootCmd.Commands() {
		if _, ok := want[sub.Name()]; ok {
			want[sub.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestCheckContainer_BadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.vox")
	if err := os.WriteFile(path, []byte("nope"), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	if err := checkContainer(path); err == nil {
		t.Error("expected decode error for a bad container")
	}
}

func TestNewLogger_VerboseLevel(t *testing.T) {
	log := newLogger(config.Config{Verbose: true})
	if !log.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("verbose logger should enable debug level")
	}
	quiet := newLogger(config.Config{})
	if quiet.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("default logger should not enable debug level")
	}
}
