package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nevereverland/voxsync/internal/asset"
	"github.com/nevereverland/voxsync/internal/catalog"
	"github.com/nevereverland/voxsync/internal/config"
	"github.com/nevereverland/voxsync/internal/ui"
	"github.com/nevereverland/voxsync/internal/vox"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the current asset tree as a table",
	Long:  "List scans the asset tree and renders its descriptors in memory; it reads no artifacts and writes nothing.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		resolver := vox.NewSizeResolver(newLogger(cfg))

		filter, _ := cmd.Flags().GetString("category")
		if filter != "" {
			category, ok := asset.ParseCategory(filter)
			if !ok {
				return fmt.Errorf("unknown category %q", filter)
			}
			descriptors, err := catalog.Build(cfg.Root, category, resolver)
			if err != nil {
				return err
			}
			ui.RenderAssetTable(os.Stdout, map[asset.Category][]asset.Descriptor{category: descriptors})
			return nil
		}

		all, err := catalog.BuildAll(cfg.Root, resolver)
		if err != nil {
			return err
		}
		ui.RenderAssetTable(os.Stdout, all)
		return nil
	},
}

func init() {
	listCmd.Flags().String("category", "", "limit to one category")
	rootCmd.AddCommand(listCmd)
}
