package traverse

import (
	"os"
	"sort"

	"github.com/hashicorp/go-multierror"
)

// Entry is one traversal result. Path is the identity of an entry; Info is
// only kept when the walk was configured WithStats.
type Entry struct {
	Name string
	Dir  string
	Path string
	Info os.FileInfo
}

// IsDir reports whether the entry was a directory when it was visited
func (e Entry) IsDir() bool {
	return e.Info != nil && e.Info.IsDir()
}

// Result is the outcome of a Walk
type Result struct {
	Entries []Entry
	// Skipped holds the errors swallowed by a best-effort walk, or nil
	Skipped *multierror.Error
}

// Paths returns the entry paths in result order
func (r *Result) Paths() []string {
	return paths(r.Entries)
}

// SkippedCount returns the number of errors a best-effort walk swallowed
func (r *Result) SkippedCount() int {
	if r.Skipped == nil {
		return 0
	}
	return len(r.Skipped.Errors)
}

// uniq drops entries whose path was already seen, keeping the first
func uniq(entries []Entry) []Entry {
	seen := make(map[string]struct{}, len(entries))
	out := entries[:0]
	for _, e := range entries {
		if _, ok := seen[e.Path]; ok {
			continue
		}
		seen[e.Path] = struct{}{}
		out = append(out, e)
	}
	return out
}

func sortEntries(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Path < entries[j].Path
	})
}

func paths(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Path
	}
	return out
}
