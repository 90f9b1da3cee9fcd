package ops

import (
	"context"
	"fmt"
	"io"
	"regexp"

	"github.com/go-kit/log"
	"github.com/spf13/afero"

	"github.com/c-a-ray/gerard/internal/core"
	"github.com/c-a-ray/gerard/traverse"
)

// ListOpts configures a listing
type ListOpts struct {
	Inputs []string
	Format Format
	Stats  bool
	Config *core.Config
	// Fs defaults to the OS filesystem
	Fs     afero.Fs
	Logger log.Logger
	Stderr io.Writer
}

// ListResult summarizes a listing
type ListResult struct {
	Entries int
	Skipped int
}

// List traverses the inputs and writes every entry to w
func List(ctx context.Context, w io.Writer, o ListOpts) (ListResult, error) {
	res := ListResult{}

	opts, err := walkOptions(o)
	if err != nil {
		return res, err
	}

	walker, err := traverse.New(opts...)
	if err != nil {
		return res, err
	}

	walked, err := walker.Walk(ctx, o.Inputs...)
	if err != nil {
		return res, err
	}
	res.Entries = len(walked.Entries)
	res.Skipped = walked.SkippedCount()

	out, err := core.NewEncodedWriter(w, o.Config.Encoding)
	if err != nil {
		return res, err
	}
	if err := WriteEntries(out, walked.Entries, o.Format, o.Config); err != nil {
		out.Close()
		return res, err
	}
	if err := out.Close(); err != nil {
		return res, fmt.Errorf("write: %w", err)
	}

	if res.Skipped > 0 && !o.Config.Quiet && o.Stderr != nil {
		fmt.Fprintf(o.Stderr, "[WARN] skipped %d unreadable entries:\n", res.Skipped)
		for _, err := range walked.Skipped.Errors {
			fmt.Fprintf(o.Stderr, "  - %v\n", err)
		}
	}

	return res, nil
}

func walkOptions(o ListOpts) ([]traverse.Option, error) {
	cfg := o.Config
	opts := []traverse.Option{
		traverse.WithStopOnErrors(!cfg.KeepGoing),
		traverse.WithRecursive(!cfg.NoRecursive),
		traverse.WithConcurrency(cfg.Concurrency),
		traverse.WithIgnorePatterns(cfg.Ignore...),
	}

	for _, expr := range cfg.IgnoreRe {
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("invalid ignore regexp %q: %w", expr, err)
		}
		opts = append(opts, traverse.WithIgnoreRegexp(re))
	}

	if o.Stats || o.Format.NeedsStats() {
		opts = append(opts, traverse.WithStats())
	}
	if o.Fs != nil {
		opts = append(opts, traverse.WithFs(o.Fs))
	}
	if o.Logger != nil {
		opts = append(opts, traverse.WithLogger(o.Logger))
	}

	return opts, nil
}
