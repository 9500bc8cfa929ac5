package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-circuit/internal/circuit/levels"
)

var checkCmd = &cobra.Command{
	Use:   "check <file|dir>",
	Short: "Validate level files",
	Long: `Parses and validates one level file, or every level file under a
directory, and builds each level once to prove it loads.

Examples:
  circuit check levels/05-bridge.hcl
  circuit check ./my-levels`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	files, err := levelFiles(args[0])
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no level files under %s", args[0])
	}

	out := cmd.OutOrStdout()
	failed := 0
	for _, f := range files {
		if err := checkFile(f); err != nil {
			failed++
			fmt.Fprintf(out, "FAIL  %s\n      %v\n", f, err)
			continue
		}
		fmt.Fprintf(out, "ok    %s\n", f)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d level files invalid", failed, len(files))
	}
	return nil
}

// checkFile loads, validates and builds one level.
func checkFile(path string) error {
	lvl, err := levels.LoadPath(path)
	if err != nil {
		return err
	}
	g, err := lvl.Build()
	if err != nil {
		return err
	}
	defer g.Close()
	return g.Verify()
}

// levelFiles expands root into the level files it names.
func levelFiles(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{root}, nil
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && levels.IsLevelFile(path) {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}
