package cli

import (
	"github.com/spf13/cobra"

	"github.com/opencode-ai/themeforge/internal/preview"
)

var (
	previewSwatches int
	previewHex      bool
)

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().IntVar(&previewSwatches, "swatches", 0, "samples per ramp (default fits the terminal)")
	previewCmd.Flags().BoolVar(&previewHex, "hex", false, "show hex values")
}

// previewLabelSpace is the width taken by the ramp label column and hex range.
const previewLabelSpace = 40

var previewCmd = &cobra.Command{
	Use:   "preview NAME",
	Short: "Render a theme's ramps and roles as terminal swatches",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := buildOne(args[0])
		if err != nil {
			return err
		}

		swatches := previewSwatches
		if swatches <= 0 && hasTTY() {
			swatches = terminalWidth(80) - previewLabelSpace
		}
		return preview.Render(cmd.OutOrStdout(), t, preview.Options{
			Swatches: swatches,
			ShowHex:  previewHex,
		})
	},
}
