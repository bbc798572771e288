package review

import "context"

// Severity labels a review result.
type Severity string

// SeverityDefault is attached to every Result. The label is never
// derived from the response text; the report computes its icons from an
// independent lexical scan.
const SeverityDefault Severity = "MEDIUM"

// Result is one file's review: the path that was analyzed and the raw
// response text. When the review call failed, Text holds the failure
// text instead.
type Result struct {
	Path     string
	Text     string
	Severity Severity
}

// Reviewer generates free-text review prose for a prompt.
type Reviewer interface {
	GenerateReview(ctx context.Context, prompt string) (string, error)
}
