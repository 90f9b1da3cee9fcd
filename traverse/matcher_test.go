package traverse

import (
	"path/filepath"
	"regexp"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlobMatcher(t *testing.T) {
	m, err := Glob("**/*.js")
	require.NoError(t, err)

	assert.True(t, m.Match("a.js"))
	assert.True(t, m.Match(filepath.FromSlash("dirA/dirB/c.js")))
	assert.False(t, m.Match(filepath.FromSlash("dirA/c.jsx")))
	assert.Equal(t, "**/*.js", m.(globMatcher).String())

	m, err = Glob("dirA/*")
	require.NoError(t, err)
	assert.True(t, m.Match(filepath.FromSlash("dirA/a.js")))
	assert.False(t, m.Match(filepath.FromSlash("dirA/dirB/c.js")))

	_, err = Glob("{unclosed")
	assert.ErrorIs(t, err, doublestar.ErrBadPattern)
}

func TestGlobMatcherHiddenNames(t *testing.T) {
	tests := []struct {
		pattern string
		path    string
		want    bool
	}{
		{"*.js", ".hidden.js", false},
		{".*.js", ".hidden.js", true},
		{"**/*.js", "a/.git/hooks/pre.js", false},
		{"**/.git/**", "a/.git/hooks/pre.js", true},
		{"a/.git/*/*.js", "a/.git/hooks/pre.js", true},
		{"**", ".env", false},
		{"../**/*.js", "../src/a.js", true},
	}

	for _, tt := range tests {
		m, err := Glob(tt.pattern)
		require.NoError(t, err)
		assert.Equal(t, tt.want, m.Match(filepath.FromSlash(tt.path)), "%s ~ %s", tt.pattern, tt.path)
	}
}

func TestRegexpMatcher(t *testing.T) {
	m := Regexp(regexp.MustCompile(`(^|/)node_modules(/|$)`))
	assert.True(t, m.Match("web/node_modules/x.js"))
	assert.False(t, m.Match("web/modules/x.js"))

	assert.Nil(t, Regexp(nil))
}

func TestMatcherFunc(t *testing.T) {
	var m Matcher = MatcherFunc(func(path string) bool { return len(path) > 3 })
	assert.True(t, m.Match("long"))
	assert.False(t, m.Match("abc"))
}
