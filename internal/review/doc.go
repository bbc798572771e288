// Package review drives the per-file review loop.
//
// It builds the fixed prompt for each changed file (content capped at
// 4000 characters), sends it through a Reviewer, and collects one
// Result per file. Failures from the review call are not propagated as
// errors: they are embedded in the Result text and flow into the report
// like any other model response. The report cannot tell a transport
// failure apart from model output, and is not meant to.
package review
