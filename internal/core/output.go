package core

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// NewEncodedWriter wraps w with an encoder if the named encoding requires
// one. Close flushes the encoder; it never closes w.
func NewEncodedWriter(w io.Writer, enc string) (io.WriteCloser, error) {
	var cm *charmap.Charmap
	switch strings.ToLower(enc) {
	case "", "utf-8", "utf8":
		return nopCloser{w}, nil
	case "latin1", "iso-8859-1":
		cm = charmap.ISO8859_1
	case "cp1252", "windows-1252":
		cm = charmap.Windows1252
	default:
		return nil, fmt.Errorf("unsupported output encoding %q (expected utf-8, latin1 or windows-1252)", enc)
	}

	// characters outside the charset become the encoding's replacement byte
	return transform.NewWriter(w, encoding.ReplaceUnsupported(cm.NewEncoder())), nil
}

// NewCSVWriter returns a csv.Writer configured with the given delimiter
func NewCSVWriter(w io.Writer, delim rune) *csv.Writer {
	cw := csv.NewWriter(w)
	cw.Comma = delim
	return cw
}
