package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-circuit/internal/core"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available levels",
	Long:  `Shows the levels found in --levels, or the built-in levels.`,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	lvls, err := levelLoader().LoadAll()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(lvls) == 0 {
		fmt.Fprintln(out, "No levels available.")
		return nil
	}

	fmt.Fprintln(out, "Available levels:")
	fmt.Fprintln(out)

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, l := range lvls {
		if len(l.ID) > maxIDLen {
			maxIDLen = len(l.ID)
		}
	}

	fmt.Fprintf(out, "  %-5s  %-*s  %-6s  %s\n", "#", maxIDLen, "ID", "Size", "Name")
	fmt.Fprintf(out, "  %-5s  %-*s  %-6s  %s\n", "-", maxIDLen, "--", "----", "----")
	for i, l := range lvls {
		fmt.Fprintf(out, "  %-5s  %-*s  %-6s  %s\n",
			core.Roman(i+1), maxIDLen, l.ID, fmt.Sprintf("%dx%d", l.Width, l.Height), l.Name)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'circuit play <id>' to play a level.")
	return nil
}
