package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/kodeagent/edl/internal/edl"
	"github.com/kodeagent/edl/internal/edlconfig"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run SCRIPT_FILE",
	Short: "Execute an EDL script file (use - to read the script from stdin)",
	Args:  cobra.ExactArgs(1),
	RunE:  runRun,
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := edlconfig.Load(configFlag)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if workingDirFlag != "" {
		cfg.WorkingDir = workingDirFlag
	}
	if jsonFlag {
		cfg.OutputFormat = edlconfig.OutputJSON
	}

	script, err := readScript(args[0])
	if err != nil {
		return fmt.Errorf("reading script: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	logger.Debug("running edl script", "working_dir", cfg.WorkingDir)

	registers := edl.NewRegisterStore()
	out, runErr := edl.RunScript(context.Background(), script, edl.NewLocalFileIO(), registers, edl.RunOptions{
		WorkingDir: cfg.WorkingDir,
	})
	if runErr != nil {
		logger.Error("script aborted", "kind", runErr.Err.Kind, "message", runErr.Err.Message)
		fmt.Fprintln(os.Stderr, runErr.Error())
		os.Exit(1)
	}

	switch cfg.OutputFormat {
	case edlconfig.OutputJSON:
		enc, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(enc))
	case edlconfig.OutputFullEnv:
		fmt.Print(edl.Render(out))
	default:
		fmt.Print(edl.RenderHuman(out))
	}
	return nil
}

func readScript(path string) (string, error) {
	if path == "-" {
		b, err := io.ReadAll(os.Stdin)
		return string(b), err
	}
	b, err := os.ReadFile(path)
	return string(b), err
}
