package ops

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/c-a-ray/gerard/internal/core"
	"github.com/c-a-ray/gerard/traverse"
)

// Format selects how entries are written
type Format int

const (
	FormatPlain Format = iota // one path per line
	FormatLong                // mode, size, mtime, path
	FormatCSV                 // name, dir, path, size, mode, mtime
	FormatJSON                // one {name, dir, path, stats} object per line
)

// ParseFormat parses a --format value
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "plain":
		return FormatPlain, nil
	case "long", "l":
		return FormatLong, nil
	case "csv":
		return FormatCSV, nil
	case "json", "ndjson":
		return FormatJSON, nil
	}
	return 0, fmt.Errorf("invalid format %q (expected plain, long, csv or json)", s)
}

// NeedsStats reports whether the format prints file metadata
func (f Format) NeedsStats() bool {
	return f != FormatPlain
}

type statRecord struct {
	Size    int64     `json:"size"`
	Mode    string    `json:"mode"`
	ModTime time.Time `json:"mtime"`
	IsDir   bool      `json:"isDir"`
}

type entryRecord struct {
	Name  string      `json:"name"`
	Dir   string      `json:"dir"`
	Path  string      `json:"path"`
	Stats *statRecord `json:"stats,omitempty"`
}

// WriteEntries writes entries to w in format f
func WriteEntries(w io.Writer, entries []traverse.Entry, f Format, cfg *core.Config) error {
	switch f {
	case FormatPlain:
		for _, e := range entries {
			if _, err := fmt.Fprintln(w, e.Path); err != nil {
				return err
			}
		}
		return nil

	case FormatLong:
		for _, e := range entries {
			if e.Info == nil {
				return fmt.Errorf("%s: no stats", e.Path)
			}
			_, err := fmt.Fprintf(w, "%s %10d %s %s\n",
				e.Info.Mode(), e.Info.Size(), e.Info.ModTime().UTC().Format(time.DateTime), e.Path)
			if err != nil {
				return err
			}
		}
		return nil

	case FormatCSV:
		out := core.NewCSVWriter(w, cfg.Delim)
		if err := out.Write([]string{"name", "dir", "path", "size", "mode", "mtime"}); err != nil {
			return fmt.Errorf("write: %w", err)
		}
		for _, e := range entries {
			rec := []string{e.Name, e.Dir, e.Path, "", "", ""}
			if e.Info != nil {
				rec[3] = fmt.Sprint(e.Info.Size())
				rec[4] = e.Info.Mode().String()
				rec[5] = e.Info.ModTime().UTC().Format(time.RFC3339)
			}
			if err := out.Write(rec); err != nil {
				return fmt.Errorf("write: %w", err)
			}
		}
		out.Flush()
		return out.Error()

	case FormatJSON:
		enc := json.NewEncoder(w)
		for _, e := range entries {
			if err := enc.Encode(toRecord(e)); err != nil {
				return fmt.Errorf("write: %w", err)
			}
		}
		return nil
	}

	return fmt.Errorf("unknown format %d", f)
}

func toRecord(e traverse.Entry) entryRecord {
	rec := entryRecord{Name: e.Name, Dir: e.Dir, Path: e.Path}
	if e.Info != nil {
		rec.Stats = &statRecord{
			Size:    e.Info.Size(),
			Mode:    e.Info.Mode().String(),
			ModTime: e.Info.ModTime().UTC(),
			IsDir:   e.Info.IsDir(),
		}
	}
	return rec
}
