package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	configFlag     string
	workingDirFlag string
	jsonFlag       bool
)

var rootCmd = &cobra.Command{
	Use:   "edl",
	Short: "Run Edit Description Language scripts against local files",
	Long: `edl parses and executes an Edit Description Language (EDL) script: a
small command language for making auditable, multi-step text edits across
one or more files in a single pass.

Examples:
  edl run script.edl
  edl run --working-dir /path/to/project script.edl
  cat script.edl | edl run -`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "path to an edl config file")
	rootCmd.PersistentFlags().StringVar(&workingDirFlag, "working-dir", "", "working directory for relative paths (default: current directory)")
	rootCmd.PersistentFlags().BoolVar(&jsonFlag, "json", false, "emit only the machine-readable JSON result")
	rootCmd.AddCommand(runCmd)
}

// Execute runs the edl CLI, exiting the process with a non-zero status on
// failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
