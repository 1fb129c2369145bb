package cli

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/me/gatorsched/internal/command"
	"github.com/me/gatorsched/internal/sched"
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "run <input-file>",
		Short: "Replay a command file and write the transcript",
		Long: `Reads the operator command file line by line, drives the scheduling
engine, and writes the transcript next to the input: the input path with
its trailing extension stripped and "_output_file.txt" appended.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inPath := args[0]
			if outPath == "" {
				outPath = OutputPath(inPath, cfg.OutputSuffix)
			}
			runLogger := logger.With("run_id", uuid.NewString(), "input", inPath)

			in, err := os.Open(inPath)
			if err != nil {
				return fmt.Errorf("open input file: %w", err)
			}
			defer in.Close()

			out, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("open output file: %w", err)
			}
			defer out.Close()

			w := bufio.NewWriter(out)
			engine := sched.New(func(line string) {
				w.WriteString(line)
				w.WriteByte('\n')
			}, runLogger)

			if err := command.NewDispatcher(engine, runLogger).Run(in); err != nil {
				return fmt.Errorf("process %s: %w", inPath, err)
			}
			if err := w.Flush(); err != nil {
				return fmt.Errorf("write output file: %w", err)
			}
			runLogger.Info("run complete", "output", outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "output", "o", "", "transcript path (default: derived from the input path)")
	return cmd
}

// OutputPath derives the transcript path from the input path: any
// trailing extension is stripped and suffix is appended.
func OutputPath(inPath, suffix string) string {
	return strings.TrimSuffix(inPath, filepath.Ext(inPath)) + suffix
}
