package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/me/gatorsched/internal/command"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <input-file>",
		Short: "Parse a command file and report malformed lines",
		Long: `Runs the command parser over the file without executing anything.
"run" skips malformed lines silently; "check" points at them.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open input file: %w", err)
			}
			defer in.Close()

			scanner := bufio.NewScanner(in)
			lineNo, bad := 0, 0
			for scanner.Scan() {
				lineNo++
				line := strings.TrimSpace(scanner.Text())
				if line == "" || strings.HasPrefix(line, "#") {
					continue
				}
				if _, err := command.ParseLine(line); err != nil {
					bad++
					fmt.Fprintf(cmd.OutOrStdout(), "line %d: %v\n", lineNo, err)
				}
				if strings.Contains(line, "Quit") {
					break
				}
			}
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read input file: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d malformed line(s)\n", bad)
			return nil
		},
	}
}
