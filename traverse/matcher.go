package traverse

import (
	"fmt"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Matcher decides whether a path is excluded from the result
type Matcher interface {
	Match(path string) bool
}

// MatcherFunc adapts a predicate to a Matcher
type MatcherFunc func(path string) bool

// Match calls f(path)
func (f MatcherFunc) Match(path string) bool { return f(path) }

type globMatcher struct {
	pattern string
}

// Glob compiles a doublestar pattern into a Matcher. Patterns and paths are
// compared with forward slashes on every platform. Wildcards do not match
// hidden names: an element starting with '.' only matches a pattern element
// that starts with '.' too.
func Glob(pattern string) (Matcher, error) {
	p := filepath.ToSlash(pattern)
	if !doublestar.ValidatePattern(p) {
		return nil, fmt.Errorf("ignore pattern %q: %w", pattern, doublestar.ErrBadPattern)
	}
	return globMatcher{pattern: p}, nil
}

func (m globMatcher) Match(path string) bool {
	return globMatch(m.pattern, filepath.ToSlash(path))
}

func (m globMatcher) String() string { return m.pattern }

// globMatch matches a slash-separated path against pattern, leaving out
// hidden elements the pattern does not name explicitly
func globMatch(pattern, path string) bool {
	return doublestar.MatchUnvalidated(pattern, path) && dotMatch(pattern, path)
}

// dotMatch reports whether every hidden element of path is matched by a
// pattern element starting with '.'. The "." and ".." elements are not
// hidden names.
func dotMatch(pattern, path string) bool {
	if !strings.Contains(path, ".") {
		return true
	}

	var dotted []string
	for _, p := range strings.Split(pattern, "/") {
		if strings.HasPrefix(p, ".") {
			dotted = append(dotted, p)
		}
	}

	for _, name := range strings.Split(path, "/") {
		if !strings.HasPrefix(name, ".") || name == "." || name == ".." {
			continue
		}
		named := slices.ContainsFunc(dotted, func(p string) bool {
			return doublestar.MatchUnvalidated(p, name)
		})
		if !named {
			return false
		}
	}
	return true
}

type regexpMatcher struct {
	re *regexp.Regexp
}

// Regexp returns a Matcher excluding paths that re matches anywhere
func Regexp(re *regexp.Regexp) Matcher {
	if re == nil {
		return nil
	}
	return regexpMatcher{re: re}
}

func (m regexpMatcher) Match(path string) bool { return m.re.MatchString(path) }

func (m regexpMatcher) String() string { return m.re.String() }
