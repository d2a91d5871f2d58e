// Package config loads runtime configuration for voxsync. Two layers feed
// one explicit Config value handed to components at startup: global settings
// via viper (flags, VOXSYNC_* env, .voxsync.yaml) and an optional per-asset-
// root voxels.toml workspace manifest.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

// Built-in defaults applied when neither viper nor the workspace manifest
// sets a value.
const (
	DefaultRoot      = "assets"
	DefaultServeAddr = ":8000"
)

// Config holds all runtime configuration for a voxsync invocation.
// Values are populated from .voxsync.yaml, VOXSYNC_* env vars, CLI flags,
// and the workspace's voxels.toml.
type Config struct {
	Root      string `mapstructure:"root"`
	Registry  string `mapstructure:"registry"`
	ServeAddr string `mapstructure:"serve_addr"`
	LogFile   string `mapstructure:"log_file"`
	Verbose   bool   `mapstructure:"verbose"`
}

// Workspace is the optional voxels.toml manifest at the asset root. A
// missing file is fine; every field is an override.
type Workspace struct {
	Name        string `toml:"name"`
	Description string `toml:"description"`
	Output      struct {
		Registry string `toml:"registry"`
	} `toml:"output"`
	Serve struct {
		Addr string `toml:"addr"`
	} `toml:"serve"`
}

// workspaceFileName is the workspace manifest filename under the asset root.
const workspaceFileName = "voxels.toml"

// Load reads configuration from viper, merges workspace overrides from
// voxels.toml under the asset root, and fills remaining gaps with built-in
// defaults. Viper-sourced values (flags, env, config file) win over the
// workspace manifest.
func Load() (Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshaling config: %w", err)
	}
	if cfg.Root == "" {
		cfg.Root = DefaultRoot
	}

	ws, err := LoadWorkspace(cfg.Root)
	if err != nil {
		return Config{}, err
	}
	if cfg.Registry == "" {
		cfg.Registry = ws.Output.Registry
	}
	if cfg.ServeAddr == "" {
		cfg.ServeAddr = ws.Serve.Addr
	}

	if cfg.Registry == "" {
		cfg.Registry = filepath.Join(cfg.Root, "registry.json")
	}
	if cfg.ServeAddr == "" {
		cfg.ServeAddr = DefaultServeAddr
	}
	return cfg, nil
}

// LoadWorkspace parses the voxels.toml manifest under root. A missing file
// yields the zero Workspace and no error; a malformed one is an error so a
// typo does not silently drop overrides.
func LoadWorkspace(root string) (Workspace, error) {
	var ws Workspace
	data, err := os.ReadFile(filepath.Join(root, workspaceFileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ws, nil
		}
		return ws, fmt.Errorf("reading workspace manifest: %w", err)
	}
	if err := toml.Unmarshal(data, &ws); err != nil {
		return ws, fmt.Errorf("parsing %s: %w", workspaceFileName, err)
	}
	return ws, nil
}
