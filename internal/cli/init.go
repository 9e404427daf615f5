package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/themeforge/internal/config"
)

var initForce bool

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing config file")
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Long: `Write the default configuration to the --config path, or to
~/.config/themeforge/config.yaml.`,
	Args:        cobra.NoArgs,
	Annotations: map[string]string{skipConfigAnnotation: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			path = config.DefaultConfigPath()
		}
		if path == "" {
			return fmt.Errorf("cannot determine config path; pass --config")
		}

		force := initForce
		if _, err := os.Stat(path); err == nil && !force {
			if IsNonInteractive() {
				return fmt.Errorf("config %s already exists (use --force to overwrite)", path)
			}
			if !confirm(cmd.InOrStdin(), cmd.ErrOrStderr(), fmt.Sprintf("Overwrite %s?", path)) {
				return fmt.Errorf("aborted")
			}
			force = true
		}

		if err := config.WriteDefault(path, force); err != nil {
			return err
		}
		logger.Info().Str("path", path).Msg("config written")

		if IsJSONOutput() {
			return WriteOutput(cmd.OutOrStdout(), map[string]string{"path": path})
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}
