package traverse

import (
	"regexp"

	"github.com/go-kit/log"
	"github.com/spf13/afero"
)

// DefaultConcurrency is the number of filesystem operations a single
// directory or frontier fan-out runs at once
const DefaultConcurrency = 32

// options is copied by value whenever a branch needs a different filter, so
// siblings never see each other's overrides. The ignore slice is shared and
// never written after New.
type options struct {
	ignore       []Matcher
	stats        bool
	stopOnErrors bool
	recursive    bool
	concurrency  int
	fs           afero.Fs
	logger       log.Logger

	// set only while resolving a pattern
	segment *segment
	dirOnly bool

	err error
}

func defaultOptions() options {
	return options{
		stopOnErrors: true,
		recursive:    true,
		concurrency:  DefaultConcurrency,
		fs:           afero.NewOsFs(),
		logger:       log.NewNopLogger(),
	}
}

// Option configures a Walker
type Option func(*options)

// WithIgnore excludes every entry whose full path is matched by any of ms
func WithIgnore(ms ...Matcher) Option {
	return func(o *options) {
		for _, m := range ms {
			if m == nil {
				o.fail(ErrNilMatcher)
				return
			}
		}
		o.ignore = append(o.ignore, ms...)
	}
}

// WithIgnorePatterns compiles each pattern with Glob and excludes matching entries
func WithIgnorePatterns(patterns ...string) Option {
	return func(o *options) {
		for _, p := range patterns {
			m, err := Glob(p)
			if err != nil {
				o.fail(err)
				return
			}
			o.ignore = append(o.ignore, m)
		}
	}
}

// WithIgnoreRegexp excludes entries whose full path matches any of res
func WithIgnoreRegexp(res ...*regexp.Regexp) Option {
	return func(o *options) {
		for _, re := range res {
			if re == nil {
				o.fail(ErrNilMatcher)
				return
			}
			o.ignore = append(o.ignore, Regexp(re))
		}
	}
}

// WithIgnoreFunc excludes entries for which fn returns true
func WithIgnoreFunc(fn func(path string) bool) Option {
	return func(o *options) {
		if fn == nil {
			o.fail(ErrNilMatcher)
			return
		}
		o.ignore = append(o.ignore, MatcherFunc(fn))
	}
}

// WithStats keeps the file metadata on every returned Entry
func WithStats() Option {
	return func(o *options) { o.stats = true }
}

// WithStopOnErrors selects fail-fast (true, the default) or best-effort traversal
func WithStopOnErrors(stop bool) Option {
	return func(o *options) { o.stopOnErrors = stop }
}

// WithKeepGoing is WithStopOnErrors(false)
func WithKeepGoing() Option {
	return WithStopOnErrors(false)
}

// WithRecursive controls descent into subdirectories of plain inputs.
// Globstar resolution is always recursive.
func WithRecursive(recursive bool) Option {
	return func(o *options) { o.recursive = recursive }
}

// WithConcurrency caps concurrent operations per fan-out; n <= 0 removes the cap
func WithConcurrency(n int) Option {
	return func(o *options) { o.concurrency = n }
}

// WithFs sets the filesystem to traverse
func WithFs(fs afero.Fs) Option {
	return func(o *options) {
		if fs != nil {
			o.fs = fs
		}
	}
}

// WithLogger sets the logger used for debug and warning output
func WithLogger(l log.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func (o *options) fail(err error) {
	if o.err == nil {
		o.err = err
	}
}

func (o options) ignored(path string) bool {
	for _, m := range o.ignore {
		if m.Match(path) {
			return true
		}
	}
	return false
}

// narrowed returns a copy listing one level and keeping only children whose
// name matches seg. With dirOnly set only matching directories are kept.
func (o options) narrowed(seg segment, dirOnly bool) options {
	o.segment = &seg
	o.dirOnly = dirOnly
	o.recursive = false
	return o
}

// deep returns a copy for a full recursive listing with no segment filter
func (o options) deep() options {
	o.segment = nil
	o.dirOnly = false
	o.recursive = true
	return o
}

// descend returns the options for a subdirectory of a recursive read. The
// segment filter only applies at the depth it was set for.
func (o options) descend() options {
	o.segment = nil
	return o
}
