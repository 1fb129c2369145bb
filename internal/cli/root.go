package cli

import (
	"log/slog"

	"github.com/me/gatorsched/internal/config"
	"github.com/me/gatorsched/internal/logging"
	"github.com/spf13/cobra"
)

var (
	flagConfig    string
	flagDebug     bool
	flagLogLevel  string
	flagLogFormat string
	flagLogFile   string

	cfg    config.RunnerConfig
	logger *slog.Logger
)

// NewRootCmd creates the root cobra command for the gatorsched CLI.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "gatorsched",
		Short: "gatorsched — deterministic runway slot scheduler",
		Long: "gatorsched replays a timestamped operator command file against the\n" +
			"runway scheduling engine and writes the resulting transcript.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg = config.DefaultRunnerConfig()
			if flagConfig != "" {
				loaded, err := config.Load(flagConfig)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			// Flags win over the config file.
			f := cmd.Flags()
			if f.Changed("log-level") {
				cfg.LogLevel = flagLogLevel
			}
			if f.Changed("log-format") {
				cfg.LogFormat = flagLogFormat
			}
			if f.Changed("log-file") {
				cfg.LogFile = flagLogFile
			}
			if flagDebug {
				cfg.LogLevel = "debug"
			}
			logger = logging.New(logging.Options{
				Level:  cfg.LogLevel,
				Format: cfg.LogFormat,
				File:   cfg.LogFile,
			})
			return nil
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flagConfig, "config", "", "YAML config file")
	root.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&flagLogFormat, "log-format", "text", "Log format (text, json)")
	root.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log to a rotated file instead of stderr")

	root.AddCommand(
		newRunCmd(),
		newCheckCmd(),
	)

	return root
}
