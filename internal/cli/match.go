package cli

import (
	"github.com/c-a-ray/gerard/internal/core"
	"github.com/c-a-ray/gerard/internal/ops"
	"github.com/spf13/cobra"
)

func addMatchCmd(root *cobra.Command, cfg *core.Config) {
	var invert bool

	cmd := &cobra.Command{
		Use:   "match <pattern> <path>...",
		Short: "Print the paths a glob pattern matches",
		Long:  "Print the paths a glob pattern matches, using the same matcher as --ignore. No filesystem access.",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := ops.MatchPaths(cmd.OutOrStdout(), ops.MatchOpts{
				Pattern: args[0],
				Paths:   args[1:],
				Invert:  invert,
				Quiet:   cfg.Quiet,
			})
			if err != nil {
				return err
			}
			if n == 0 {
				exit(2)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&invert, "invert", "v", false, "print the paths that do not match")

	root.AddCommand(cmd)
}
