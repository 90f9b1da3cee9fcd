package traverse

import (
	"context"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readerTree(t *testing.T) options {
	return testOptions(memTree(t,
		"top/a.js",
		"top/b.txt",
		"top/lib/c.js",
		"top/lib/inner/d.js",
		"top/test/e.js",
	))
}

func TestReadDirModes(t *testing.T) {
	base := readerTree(t)

	tests := []struct {
		name string
		opts options
		want []string
	}{
		{
			name: "recursive",
			opts: base,
			want: []string{"top/a.js", "top/b.txt", "top/lib/c.js", "top/lib/inner/d.js", "top/test/e.js"},
		},
		{
			name: "one level",
			opts: func() options { o := base; o.recursive = false; return o }(),
			want: []string{"top/a.js", "top/b.txt", "top/lib", "top/test"},
		},
		{
			name: "directories matching a segment",
			opts: base.narrowed(classify("*"), true),
			want: []string{"top/lib", "top/test"},
		},
		{
			name: "names matching a segment",
			opts: base.narrowed(classify("*.js"), false),
			want: []string{"top/a.js"},
		},
		{
			name: "exact name",
			opts: base.narrowed(classify("lib"), false),
			want: []string{"top/lib"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newWalk(tt.opts)
			got, err := w.readDir(context.Background(), "top", tt.opts)
			require.NoError(t, err)
			sortEntries(got)
			assert.Equal(t, slashed(tt.want...), paths(got))
		})
	}
}

func TestReadDirSegmentFilterIsOneShot(t *testing.T) {
	o := readerTree(t)
	// a recursive read filtered by name at the first level only
	o.segment = &segment{text: "lib", kind: segLiteral}

	w := newWalk(o)
	got, err := w.readDir(context.Background(), "top", o)
	require.NoError(t, err)
	sortEntries(got)
	assert.Equal(t, slashed("top/lib/c.js", "top/lib/inner/d.js"), paths(got))
}

func TestOptionsCopyOnDescend(t *testing.T) {
	base := readerTree(t)
	narrowed := base.narrowed(classify("*.js"), true)

	assert.Nil(t, base.segment)
	assert.False(t, base.dirOnly)
	assert.True(t, base.recursive)

	require.NotNil(t, narrowed.segment)
	assert.False(t, narrowed.recursive)
	assert.Nil(t, narrowed.descend().segment)
	assert.NotNil(t, narrowed.segment)

	deep := narrowed.deep()
	assert.Nil(t, deep.segment)
	assert.False(t, deep.dirOnly)
	assert.True(t, deep.recursive)
}

func TestReadDirListingError(t *testing.T) {
	o := readerTree(t)
	o.stopOnErrors = false

	w := newWalk(o)
	_, err := w.readDir(context.Background(), "nope", o)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Nil(t, w.skipped)
}

func TestReadDirIgnoreSkipsWithoutStat(t *testing.T) {
	o := readerTree(t)
	o.fs = faultyFs{
		Fs:      o.fs,
		statErr: map[string]error{"top/b.txt": fs.ErrPermission},
	}
	m, err := Glob("**/*.txt")
	require.NoError(t, err)
	o.ignore = []Matcher{m}

	w := newWalk(o)
	got, err := w.readDir(context.Background(), "top", o)
	require.NoError(t, err)
	assert.Len(t, got, 4)
}
