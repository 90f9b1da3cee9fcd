package cli

import (
	"os"

	"github.com/c-a-ray/gerard/internal/core"
	"github.com/spf13/cobra"
)

// exit is replaced in tests
var exit = os.Exit

// NewRootCmd constructs the root command for gerard
func NewRootCmd(cfg *core.Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "gerard",
		Short:         "List files under directories and glob patterns",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cfg.FromFlags(cmd.Flags())
		},
	}

	rootCmd.PersistentFlags().StringP("config", "c", "", "YAML config file")
	rootCmd.PersistentFlags().StringP("delim", "d", ",", "field delimiter for csv output (single char)")
	rootCmd.PersistentFlags().StringP("encoding", "e", "utf-8", "output encoding (utf-8, latin1, windows-1252)")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress warnings and match output")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level (debug, info, warn, error, none)")

	addLsCmd(rootCmd, cfg)
	addMatchCmd(rootCmd, cfg)

	return rootCmd
}
