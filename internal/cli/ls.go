package cli

import (
	"github.com/c-a-ray/gerard/internal/core"
	"github.com/c-a-ray/gerard/internal/ops"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// fsys is the filesystem commands traverse, replaced in tests
var fsys afero.Fs = afero.NewOsFs()

func addLsCmd(root *cobra.Command, cfg *core.Config) {
	var (
		ignore      []string
		ignoreRe    []string
		stats       bool
		keepGoing   bool
		noRecursive bool
		concurrency int
		format      string
	)

	cmd := &cobra.Command{
		Use:   "ls [flags] <path|pattern>...",
		Short: "List files under paths and glob patterns",
		Args:  cobra.MinimumNArgs(1),
		Example: `
# every file below src
gerard ls src

# Go sources at any depth, without tests
gerard ls 'src/**/*.go' -I '**/*_test.go'

# files directly under any service's config directory, with stats
gerard ls -f long 'services/*/config/*'

# best effort over unreadable directories, as CSV
gerard ls -k -f csv -d tab /var/log`,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			cfg.Ignore = append(cfg.Ignore, ignore...)
			cfg.IgnoreRe = append(cfg.IgnoreRe, ignoreRe...)
			if flags.Changed("keep-going") {
				cfg.KeepGoing = keepGoing
			}
			if flags.Changed("no-recursive") {
				cfg.NoRecursive = noRecursive
			}
			if flags.Changed("concurrency") {
				cfg.Concurrency = concurrency
			}
			if flags.Changed("format") {
				cfg.Format = format
			}

			f, err := ops.ParseFormat(cfg.Format)
			if err != nil {
				return err
			}

			inputs, err := core.CollectInputs(args)
			if err != nil {
				return err
			}

			logger, err := core.NewLogger(cmd.ErrOrStderr(), cfg.LogLevel)
			if err != nil {
				return err
			}

			res, err := ops.List(cmd.Context(), cmd.OutOrStdout(), ops.ListOpts{
				Inputs: inputs,
				Format: f,
				Stats:  stats,
				Config: cfg,
				Fs:     fsys,
				Logger: logger,
				Stderr: cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}
			if res.Entries == 0 {
				exit(2)
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&ignore, "ignore", "I", nil, "glob of paths to leave out (repeatable)")
	cmd.Flags().StringArrayVar(&ignoreRe, "ignore-regexp", nil, "regular expression of paths to leave out (repeatable)")
	cmd.Flags().BoolVarP(&stats, "stats", "s", false, "collect file stats (implied by non-plain formats)")
	cmd.Flags().BoolVarP(&keepGoing, "keep-going", "k", false, "skip unreadable entries instead of failing")
	cmd.Flags().BoolVar(&noRecursive, "no-recursive", false, "do not descend into subdirectories of plain paths")
	cmd.Flags().IntVarP(&concurrency, "concurrency", "j", cfg.Concurrency, "filesystem operations per directory run at once (0 = unlimited)")
	cmd.Flags().StringVarP(&format, "format", "f", cfg.Format, "output format: plain, long, csv, json")

	root.AddCommand(cmd)
}
