// Package cli implements the themeforge command line.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/opencode-ai/themeforge/internal/config"
	"github.com/opencode-ai/themeforge/internal/logging"
	"github.com/opencode-ai/themeforge/internal/styletree"
	"github.com/opencode-ai/themeforge/internal/theme"
)

// Version is stamped at build time.
var Version = "dev"

var (
	configPath     string
	logLevel       string
	jsonOutput     bool
	noProgress     bool
	nonInteractive bool
	projectDir     string

	appConfig *config.Config
	logger    = zerolog.Nop()
)

var rootCmd = &cobra.Command{
	Use:           "themeforge",
	Short:         "Generate editor themes from colour ramps",
	Long:          "themeforge builds editor themes from a few seed colours: ramps, a semantic colour scheme, and per-component style trees, written out as JSON.",
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd)
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "config file (default ~/.config/themeforge/config.yaml)")
	flags.StringVar(&logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	flags.BoolVar(&jsonOutput, "json", false, "output JSON")
	flags.BoolVar(&noProgress, "no-progress", false, "disable progress output")
	flags.BoolVar(&nonInteractive, "non-interactive", false, "never prompt; use defaults")
	flags.StringVar(&projectDir, "project-dir", "", "project directory searched for .themeforge/themes (default current directory)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// skipConfigAnnotation marks commands that may run before the --config file
// exists.
const skipConfigAnnotation = "themeforge/skip-config"

func setup(cmd *cobra.Command) error {
	path := configPath
	if cmd.Annotations[skipConfigAnnotation] == "true" {
		path = ""
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if strings.TrimSpace(logLevel) != "" {
		cfg.Logging.Level = strings.ToLower(strings.TrimSpace(logLevel))
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	appConfig = cfg

	l, err := logging.New(cmd.ErrOrStderr(), cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return err
	}
	logging.Init(l)
	logger = logging.Component("cli")

	if projectDir == "" {
		if wd, err := os.Getwd(); err == nil {
			projectDir = wd
		}
	}

	logger.Debug().
		Str("config", cfg.File).
		Str("project_dir", projectDir).
		Msg("configuration loaded")
	return nil
}

// GetConfig returns the loaded configuration.
func GetConfig() *config.Config {
	return appConfig
}

// IsJSONOutput reports whether --json was requested.
func IsJSONOutput() bool {
	return jsonOutput
}

// loadSeeds loads every seed visible from the project directory, including
// configured extra seed directories.
func loadSeeds() ([]*theme.Seed, error) {
	var extra []string
	if cfg := GetConfig(); cfg != nil {
		extra = cfg.Themes.SeedDirs
	}
	seeds, err := theme.LoadSeedsFromSearchPaths(projectDir, extra...)
	if err != nil {
		return nil, fmt.Errorf("load themes: %w", err)
	}
	return seeds, nil
}

// buildOne finds and builds a single theme by name or slug.
func buildOne(name string) (*theme.Theme, error) {
	seeds, err := loadSeeds()
	if err != nil {
		return nil, err
	}
	seed, err := theme.FindSeed(seeds, name)
	if err != nil {
		return nil, err
	}
	return theme.Build(seed, styletree.DefaultLayout())
}

func outputIndent() int {
	if cfg := GetConfig(); cfg != nil {
		return cfg.Output.Indent
	}
	return 2
}
