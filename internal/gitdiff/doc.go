// Package gitdiff discovers the files changed in the revision under review.
//
// Discovery shells out to git and compares the working tree against the
// previous revision (or an overridden base), so uncommitted edits are
// part of the review set. The resulting paths are filtered to a fixed
// allow-list of source-file extensions. Order and duplicates from the
// git output are preserved because the report is laid out in discovery
// order.
//
// A failing git invocation is not an error from the caller's point of
// view: the captured stderr is logged and an empty list is returned,
// which downstream treats as "no files changed".
package gitdiff
