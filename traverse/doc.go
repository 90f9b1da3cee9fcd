// Package traverse lists filesystem entries under one or more paths or glob
// patterns and returns a deduplicated, sorted result.
//
// An input without a '*' is read as a directory: its children are listed,
// filtered through the ignore matchers, and subdirectories are descended into
// unless recursion is disabled. An input containing '*' is resolved one path
// segment at a time. Literal segments are joined onto the current set of
// matched directories, wildcard segments are matched against the names found
// by listing those directories, and the first '**' switches to a full
// recursive listing whose paths are then filtered by the whole pattern.
//
// Filesystem operations are fanned out concurrently. With the default
// stop-on-errors policy the first failure aborts the call; with
// WithKeepGoing the failing branch contributes nothing and the error is
// reported in Result.Skipped. A plain input whose own listing fails is always
// an error.
//
//	entries, err := traverse.Traverse(ctx, []string{"src/**/*.go"},
//		traverse.WithIgnorePatterns("**/*_test.go"))
package traverse
