package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nevereverland/voxsync/internal/asset"
	"github.com/nevereverland/voxsync/internal/config"
	"github.com/nevereverland/voxsync/internal/ui"
	"github.com/nevereverland/voxsync/internal/vox"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Decode every container and report unhealthy files",
	Long: "Check decodes each container in the asset tree without writing anything.\n" +
		"Unlike a rebuild, decode failures are reported instead of absorbed, and\n" +
		"any unhealthy file makes the command exit non-zero.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		printer := ui.New()

		total := 0
		problems := 0
		for _, category := range asset.Categories() {
			dir := filepath.Join(cfg.Root, string(category))
			files, err := asset.ListContainers(dir)
			if err != nil {
				return err
			}
			for _, file := range files {
				total++
				path := filepath.Join(dir, file)
				if err := checkContainer(path); err != nil {
					printer.Problem(filepath.Join(string(category), file), err)
					problems++
				}
			}
		}

		if problems > 0 {
			return fmt.Errorf("%d of %d container(s) unhealthy", problems, total)
		}
		printer.Healthy(total)
		return nil
	},
}

// checkContainer decodes one container end to end, surfacing the failures a
// rebuild would absorb.
func checkContainer(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	_, err = vox.ReadDimensions(data)
	return err
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
