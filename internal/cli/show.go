package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/themeforge/internal/style"
	"github.com/opencode-ai/themeforge/internal/theme"
)

func init() {
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show NAME [PATH]",
	Short: "Print a generated theme",
	Long: `Print the serialized JSON of a theme, or of one dotted sub-path.

Paths use the serialized snake_case keys; camelCase segments are converted.
Keys that contain a dot, such as the emphasis.strong syntax entry, are
matched as a whole. A string leaf is printed without quotes.`,
	Example: `  themeforge show "Rose Pine"
  themeforge show gruvbox-dark editor.syntax.keyword
  themeforge show cave-light tab_bar.active_tab.background`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := buildOne(args[0])
		if err != nil {
			return err
		}

		if len(args) == 1 {
			data, err := theme.Serialize(t, outputIndent())
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}

		path := snakePath(args[1])
		tree, err := style.RenameKeys(t.Root, style.SnakeCase)
		if err != nil {
			return err
		}
		value, ok := tree.Lookup(path)
		if !ok {
			return fmt.Errorf("path %s not found in theme %s", path, t.Name)
		}
		if s, ok := value.(string); ok {
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		}

		var data []byte
		if indent := outputIndent(); indent > 0 {
			data, err = json.MarshalIndent(value, "", strings.Repeat(" ", indent))
		} else {
			data, err = json.Marshal(value)
		}
		if err != nil {
			return fmt.Errorf("encode %s: %w", path, err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

func snakePath(path string) string {
	segments := strings.Split(strings.Trim(strings.TrimSpace(path), "."), ".")
	for i, seg := range segments {
		segments[i] = style.SnakeCase(seg)
	}
	return strings.Join(segments, ".")
}
