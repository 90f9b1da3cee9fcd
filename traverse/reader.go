package traverse

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"

	"github.com/c-a-ray/gerard/internal/fanout"
)

// walk is the state of a single Walk call
type walk struct {
	fs     afero.Fs
	logger log.Logger
	limit  int

	mu      sync.Mutex
	skipped *multierror.Error
}

func newWalk(o options) *walk {
	return &walk{fs: o.fs, logger: o.logger, limit: o.concurrency}
}

func (w *walk) policy(o options) fanout.Policy {
	return fanout.Policy{
		FailFast: o.stopOnErrors,
		Limit:    w.limit,
		OnDrop:   w.skip,
	}
}

func (w *walk) skip(err error) {
	level.Debug(w.logger).Log("msg", "skipping failed branch", "err", err)

	w.mu.Lock()
	w.skipped = multierror.Append(w.skipped, err)
	w.mu.Unlock()
}

func (w *walk) list(dir string) ([]string, error) {
	f, err := w.fs.Open(dir)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return f.Readdirnames(-1)
}

// readDir lists dir and returns the entries selected by o. A failure to list
// dir itself is always returned; failures below it follow o.stopOnErrors.
func (w *walk) readDir(ctx context.Context, dir string, o options) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	names, err := w.list(dir)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, nil
	}

	g := fanout.New[Entry](ctx, w.policy(o))
	for _, name := range names {
		full := filepath.Join(dir, name)
		if o.ignored(full) {
			continue
		}
		if o.segment != nil && !o.segment.matchName(name) {
			continue
		}

		g.Go(func(ctx context.Context) ([]Entry, error) {
			return w.visit(ctx, dir, name, full, o)
		})
	}

	return g.Wait()
}

func (w *walk) visit(ctx context.Context, dir, name, full string, o options) ([]Entry, error) {
	info, err := w.fs.Stat(full)
	if err != nil {
		return nil, err
	}

	e := Entry{Name: name, Dir: dir, Path: full, Info: info}

	switch {
	case info.IsDir() && o.dirOnly:
		return []Entry{e}, nil
	case info.IsDir() && o.recursive:
		return w.readDir(ctx, full, o.descend())
	case o.dirOnly:
		return nil, nil
	default:
		return []Entry{e}, nil
	}
}
