// Command themeforge generates editor theme JSON from seed colour ramps.
package main

import (
	"fmt"
	"os"

	"github.com/opencode-ai/themeforge/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
