package traverse

import (
	"context"
	"fmt"

	"github.com/go-kit/log/level"

	"github.com/c-a-ray/gerard/internal/fanout"
)

// Walker runs traversals with a fixed set of options
type Walker struct {
	opts options
}

// New returns a Walker configured by opts. It fails on invalid options such
// as a malformed ignore pattern.
func New(opts ...Option) (*Walker, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	return &Walker{opts: o}, nil
}

// Traverse is a shorthand for New(opts...) followed by Walk. It returns only
// the entries.
func Traverse(ctx context.Context, inputs []string, opts ...Option) ([]Entry, error) {
	w, err := New(opts...)
	if err != nil {
		return nil, err
	}
	res, err := w.Walk(ctx, inputs...)
	if err != nil {
		return nil, err
	}
	return res.Entries, nil
}

type input struct {
	path    string
	pattern *pattern
}

// Walk reads every input, concurrently, and returns the union of their
// entries without duplicates, sorted by path.
//
// Inputs containing '*' are resolved as patterns; anything else is read as a
// directory. With stop-on-errors (the default) the first filesystem error
// is returned. Otherwise failing branches are dropped and listed in
// Result.Skipped, except that a plain input which cannot be listed at all
// still fails the call.
func (wk *Walker) Walk(ctx context.Context, inputs ...string) (*Result, error) {
	parsed, err := parseInputs(inputs)
	if err != nil {
		return nil, err
	}

	o := wk.opts
	w := newWalk(o)

	// plain inputs fail the call on their own listing error and pattern
	// inputs never return filesystem errors in best-effort mode, so the
	// input group always fails fast
	p := w.policy(o)
	p.FailFast = true

	g := fanout.New[Entry](ctx, p)
	for _, in := range parsed {
		g.Go(func(ctx context.Context) ([]Entry, error) {
			if in.pattern != nil {
				return w.resolve(ctx, *in.pattern, o)
			}
			entries, err := w.readDir(ctx, in.path, o)
			if err != nil {
				return nil, fmt.Errorf("read %s: %w", in.path, err)
			}
			return entries, nil
		})
	}

	entries, err := g.Wait()
	if err != nil {
		return nil, err
	}

	entries = uniq(entries)
	sortEntries(entries)
	if !o.stats {
		for i := range entries {
			entries[i].Info = nil
		}
	}

	res := &Result{Entries: entries, Skipped: w.skipped}
	if n := res.SkippedCount(); n > 0 {
		level.Warn(w.logger).Log("msg", "skipped entries after errors", "count", n)
	}
	return res, nil
}

func parseInputs(inputs []string) ([]input, error) {
	if len(inputs) == 0 {
		return nil, ErrNoInputs
	}

	out := make([]input, 0, len(inputs))
	for _, in := range inputs {
		if in == "" {
			return nil, ErrEmptyPath
		}
		if !IsPattern(in) {
			out = append(out, input{path: in})
			continue
		}
		p, err := parsePattern(in)
		if err != nil {
			return nil, err
		}
		out = append(out, input{path: in, pattern: &p})
	}
	return out, nil
}
