package traverse

import "errors"

var (
	// ErrNoInputs is returned when no path or pattern was given
	ErrNoInputs = errors.New("traverse: no paths given")
	// ErrEmptyPath is returned for an empty input string
	ErrEmptyPath = errors.New("traverse: empty path")
	// ErrNilMatcher is returned when a nil ignore matcher is configured
	ErrNilMatcher = errors.New("traverse: nil ignore matcher")
)
