// circuit is a terminal puzzle for laying wire and data links across a grid
// of cells with the mouse.
//
// Usage:
//
//	circuit list                    - List available levels
//	circuit play [level-id]         - Play a level (picker if no id)
//	circuit check <file|dir>        - Validate level files
//	circuit export <level-id> -o f  - Render a level to PNG
//
// Global flags:
//
//	--config <path>     - Custom config YAML
//	--levels <dir>      - Load levels from a directory instead of the built-in set
//	--log-level <lvl>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagLevels   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "circuit",
	Short: "Circuit - lay wires and data lines in your terminal",
	Long: `Circuit is a terminal puzzle played with the mouse. Drag across cell
borders to connect neighboring cells with wire or data links.

Available commands:
  list     - Show all available levels
  play     - Play a level
  check    - Validate level files
  export   - Render a level to PNG

Examples:
  circuit list
  circuit play 01-first-wire
  circuit check ./my-levels
  circuit export 03-walls -o walls.png`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Directory of level files (default: built-in levels)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(exportCmd)
}
