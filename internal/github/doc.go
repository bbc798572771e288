// Package github is a minimal GitHub REST client for the Actions
// environment.
//
// It resolves the pull request number from the workflow event payload,
// posts the review report as an issue comment (updating the previous
// lookout comment in place via a hidden marker), and mirrors the report
// into the job's step summary. Everything here is best effort from the
// pipeline's point of view; callers log failures and move on.
package github
