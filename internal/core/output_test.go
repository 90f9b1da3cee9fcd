package core

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEncodedWriter(t *testing.T) {
	tests := []struct {
		enc  string
		want []byte
	}{
		{"utf-8", []byte("café/ünï.txt\n")},
		{"", []byte("café/ünï.txt\n")},
		{"latin1", []byte{'c', 'a', 'f', 0xe9, '/', 0xfc, 'n', 0xef, '.', 't', 'x', 't', '\n'}},
		{"windows-1252", []byte{'c', 'a', 'f', 0xe9, '/', 0xfc, 'n', 0xef, '.', 't', 'x', 't', '\n'}},
	}

	for _, tt := range tests {
		t.Run(tt.enc, func(t *testing.T) {
			var buf bytes.Buffer
			w, err := NewEncodedWriter(&buf, tt.enc)
			require.NoError(t, err)

			_, err = fmt.Fprintln(w, "café/ünï.txt")
			require.NoError(t, err)
			require.NoError(t, w.Close())

			assert.Equal(t, tt.want, buf.Bytes())
		})
	}
}

func TestNewEncodedWriterReplacesUnsupported(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewEncodedWriter(&buf, "latin1")
	require.NoError(t, err)

	_, err = fmt.Fprint(w, "a→b")
	require.NoError(t, err)
	require.NoError(t, w.Close())
	assert.Equal(t, []byte{'a', 0x1a, 'b'}, buf.Bytes())
}

func TestNewEncodedWriterUnknown(t *testing.T) {
	_, err := NewEncodedWriter(&bytes.Buffer{}, "ebcdic")
	assert.Error(t, err)
}

func TestNewCSVWriter(t *testing.T) {
	var buf bytes.Buffer
	cw := NewCSVWriter(&buf, '\t')
	require.NoError(t, cw.Write([]string{"a b", "c"}))
	cw.Flush()
	require.NoError(t, cw.Error())
	assert.Equal(t, "a b\tc\n", buf.String())
}
