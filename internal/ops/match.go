package ops

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/c-a-ray/gerard/traverse"
)

// MatchOpts configures a pattern check
type MatchOpts struct {
	Pattern string
	Paths   []string
	Invert  bool
	Quiet   bool
}

// MatchPaths prints each path the pattern matches (or fails to match when
// Invert is set) and returns how many were printed
func MatchPaths(w io.Writer, o MatchOpts) (int, error) {
	if len(o.Paths) == 0 {
		return 0, fmt.Errorf("no paths")
	}

	m, err := traverse.Glob(o.Pattern)
	if err != nil {
		return 0, err
	}

	printed := 0
	for _, p := range o.Paths {
		if m.Match(filepath.Clean(p)) == o.Invert {
			continue
		}
		printed++
		if !o.Quiet {
			fmt.Fprintln(w, p)
		}
	}
	return printed, nil
}
