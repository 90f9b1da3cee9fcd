package traverse

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-kit/log/level"

	"github.com/c-a-ray/gerard/internal/fanout"
)

type segmentKind int

const (
	segLiteral  segmentKind = iota
	segWildcard             // contains '*' but is not "**"
	segGlobstar             // "**"
)

type segment struct {
	text string
	kind segmentKind
}

func classify(s string) segment {
	switch {
	case s == "**":
		return segment{text: s, kind: segGlobstar}
	case IsPattern(s):
		return segment{text: s, kind: segWildcard}
	default:
		return segment{text: s, kind: segLiteral}
	}
}

func (s segment) matchName(name string) bool {
	if s.kind == segLiteral {
		return name == s.text
	}
	return globMatch(s.text, name)
}

// IsPattern reports whether p is resolved as a glob rather than read as a path
func IsPattern(p string) bool {
	return strings.Contains(p, "*")
}

type pattern struct {
	// root is the volume and separator of an absolute pattern, "" otherwise
	root     string
	segments []segment
	// whole is the slash-separated pattern used to filter globstar listings
	whole string
}

func parsePattern(p string) (pattern, error) {
	clean := filepath.Clean(p)

	var pat pattern
	rest := clean
	if filepath.IsAbs(clean) {
		vol := filepath.VolumeName(clean)
		pat.root = vol + string(filepath.Separator)
		rest = strings.TrimPrefix(clean[len(vol):], string(filepath.Separator))
	}

	wholeParts := make([]string, 0, strings.Count(rest, string(filepath.Separator))+1)
	for _, part := range strings.Split(rest, string(filepath.Separator)) {
		if part == "" {
			continue
		}
		seg := classify(part)
		if seg.kind == segWildcard && !doublestar.ValidatePattern(seg.text) {
			return pattern{}, fmt.Errorf("pattern %q: %w", p, doublestar.ErrBadPattern)
		}
		pat.segments = append(pat.segments, seg)

		if seg.kind == segLiteral {
			wholeParts = append(wholeParts, escapeMeta(seg.text))
		} else {
			wholeParts = append(wholeParts, seg.text)
		}
	}

	pat.whole = filepath.ToSlash(pat.root) + strings.Join(wholeParts, "/")
	return pat, nil
}

// escapeMeta quotes doublestar metacharacters in a literal segment
func escapeMeta(s string) string {
	if !strings.ContainsAny(s, `?[]{}\`) {
		return s
	}

	var b strings.Builder
	for _, r := range s {
		if strings.ContainsRune(`?[]{}\`, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// resolve expands a glob path segment by segment. frontier holds the
// directories matching every segment consumed so far.
func (w *walk) resolve(ctx context.Context, p pattern, o options) ([]Entry, error) {
	var (
		frontier []string
		results  []Entry
		// set once the frontier holds paths derived from a listing
		expanded bool
	)
	if p.root != "" {
		frontier = []string{p.root}
	}

	for i, seg := range p.segments {
		last := i == len(p.segments)-1
		if i > 0 && len(frontier) == 0 {
			// an earlier wildcard matched nothing
			return nil, nil
		}

		switch {
		case seg.kind == segGlobstar:
			if len(frontier) == 0 {
				frontier = []string{"."}
			}
			return w.globstar(ctx, frontier, p.whole, o, expanded)

		case seg.kind == segWildcard:
			if len(frontier) == 0 {
				frontier = []string{"."}
			}
			found, err := w.expand(ctx, frontier, o.narrowed(seg, !last), expanded)
			if err != nil {
				return nil, err
			}
			level.Debug(w.logger).Log("msg", "expanded wildcard segment", "segment", seg.text, "frontier", len(frontier), "matched", len(found))

			if last {
				results = found
			} else {
				frontier = paths(found)
			}
			expanded = true

		case !last:
			if len(frontier) == 0 {
				frontier = []string{seg.text}
				continue
			}
			for j, dir := range frontier {
				frontier[j] = filepath.Join(dir, seg.text)
			}

		default:
			if len(frontier) == 0 {
				frontier = []string{"."}
			}
			found, err := w.expand(ctx, frontier, o.narrowed(seg, false), expanded)
			if err != nil {
				return nil, err
			}
			results = found
		}
	}

	sortEntries(results)
	return results, nil
}

// expand reads every frontier directory with o and joins the results.
// Directories that only exist as a guess built from an earlier listing are
// allowed to be missing.
func (w *walk) expand(ctx context.Context, frontier []string, o options, expanded bool) ([]Entry, error) {
	return fanout.Map(ctx, w.policy(o), frontier, func(ctx context.Context, dir string) ([]Entry, error) {
		found, err := w.readDir(ctx, dir, o)
		if err != nil && expanded && w.notDir(dir) {
			level.Debug(w.logger).Log("msg", "no match below", "dir", dir)
			return nil, nil
		}
		return found, err
	})
}

// globstar reads every frontier directory recursively and keeps the files
// whose path matches the whole pattern
func (w *walk) globstar(ctx context.Context, frontier []string, whole string, o options, expanded bool) ([]Entry, error) {
	all, err := w.expand(ctx, frontier, o.deep(), expanded)
	if err != nil {
		return nil, err
	}

	out := all[:0]
	for _, e := range all {
		if globMatch(whole, filepath.ToSlash(e.Path)) {
			out = append(out, e)
		}
	}
	level.Debug(w.logger).Log("msg", "filtered globstar listing", "pattern", whole, "listed", len(all), "matched", len(out))

	sortEntries(out)
	return out, nil
}

// notDir reports whether path is missing or is not a directory
func (w *walk) notDir(path string) bool {
	info, err := w.fs.Stat(path)
	if err != nil {
		return errors.Is(err, fs.ErrNotExist)
	}
	return !info.IsDir()
}
