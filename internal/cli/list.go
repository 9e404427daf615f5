package cli

import (
	"github.com/spf13/cobra"

	"github.com/opencode-ai/themeforge/internal/theme"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

type seedSummary struct {
	Name       string `json:"name"`
	Slug       string `json:"slug"`
	Appearance string `json:"appearance"`
	Author     string `json:"author,omitempty"`
	Source     string `json:"source"`
}

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List available themes",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		seeds, err := loadSeeds()
		if err != nil {
			return err
		}

		summaries := make([]seedSummary, 0, len(seeds))
		for _, s := range seeds {
			summaries = append(summaries, seedSummary{
				Name:       s.Name,
				Slug:       theme.Slug(s.Name),
				Appearance: s.Appearance,
				Author:     s.Author,
				Source:     s.Source,
			})
		}

		if IsJSONOutput() {
			return WriteOutput(cmd.OutOrStdout(), summaries)
		}

		rows := make([][]string, 0, len(summaries))
		for _, s := range summaries {
			author := s.Author
			if author == "" {
				author = "-"
			}
			rows = append(rows, []string{s.Name, s.Appearance, author, s.Source})
		}
		return writeTable(cmd.OutOrStdout(), []string{"NAME", "APPEARANCE", "AUTHOR", "SOURCE"}, rows)
	},
}
