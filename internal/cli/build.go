package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/themeforge/internal/logging"
	"github.com/opencode-ai/themeforge/internal/styletree"
	"github.com/opencode-ai/themeforge/internal/theme"
)

var (
	buildOutDir      string
	buildThemes      []string
	buildParallelism int
)

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringVarP(&buildOutDir, "out", "o", "", "output directory (default from config output.dir)")
	buildCmd.Flags().StringSliceVarP(&buildThemes, "theme", "t", nil, "theme name or slug to build (repeatable; default all)")
	buildCmd.Flags().IntVar(&buildParallelism, "parallelism", 0, "themes built concurrently (default from config build.parallelism)")
}

// buildResult is the JSON summary of one written theme.
type buildResult struct {
	Name       string `json:"name"`
	Appearance string `json:"appearance"`
	Path       string `json:"path"`
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Generate theme JSON files",
	Long: `Generate every selected theme and write one JSON file per theme.

Themes come from the project .themeforge/themes directory, the user themes
directory, configured seed directories, and the builtin set. Files are named
after the theme slug.`,
	Example: `  # Build all themes into the configured output directory
  themeforge build

  # Build two themes into ./out
  themeforge build --out out --theme "Gruvbox Dark" --theme rose-pine`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

		outDir := strings.TrimSpace(buildOutDir)
		if outDir == "" {
			outDir = cfg.Output.Dir
		}
		parallelism := buildParallelism
		if parallelism <= 0 {
			parallelism = cfg.Build.Parallelism
		}
		include := buildThemes
		if len(include) == 0 {
			include = cfg.Themes.Include
		}

		seeds, err := loadSeeds()
		if err != nil {
			return err
		}
		selected, err := theme.Select(seeds, include)
		if err != nil {
			return err
		}
		if len(selected) == 0 {
			return fmt.Errorf("no themes to build")
		}

		runLogger, runID := logging.WithRunID(logging.Component("build"))
		runLogger.Info().
			Int("themes", len(selected)).
			Int("parallelism", parallelism).
			Str("out", outDir).
			Msg("building themes")

		progress := startProgress(cmd.ErrOrStderr(), fmt.Sprintf("Building %d themes", len(selected)))
		themes, err := theme.BuildAll(context.Background(), selected, styletree.DefaultLayout(), parallelism, theme.WithLogger(runLogger))
		if err != nil {
			progress.Fail(err)
			return err
		}
		progress.Done()

		results := make([]buildResult, 0, len(themes))
		for _, t := range themes {
			path, err := theme.Write(outDir, t, outputIndent())
			if err != nil {
				return err
			}
			runLogger.Debug().Str("theme", t.Name).Str("path", path).Msg("theme written")
			results = append(results, buildResult{
				Name:       t.Name,
				Appearance: string(t.Appearance),
				Path:       path,
			})
		}

		if IsJSONOutput() {
			return WriteOutput(cmd.OutOrStdout(), map[string]any{
				"run_id": runID,
				"themes": results,
			})
		}

		rows := make([][]string, 0, len(results))
		for _, r := range results {
			rows = append(rows, []string{r.Name, r.Appearance, r.Path})
		}
		if err := writeTable(cmd.OutOrStdout(), []string{"THEME", "APPEARANCE", "PATH"}, rows); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "\n%d themes written to %s\n", len(results), outDir)
		return nil
	},
}
