// Lookout is a CI helper that reviews a pull request's changed files
// with the Gemini API and writes a markdown report.
//
// It diffs the working tree against the previous revision, sends each
// changed source file to the model one at a time, and aggregates the
// responses into .github/scripts/review-output.md. Failures from the
// model call are embedded in the report rather than failing the job.
//
// Usage:
//
//	lookout review                    # review files changed since HEAD~1
//	lookout review --base origin/main # review against another revision
//	lookout review --comment          # also post the report as a PR comment
//	lookout version                   # print the version
//
// GEMINI_API_KEY must be set; everything else has defaults.
package main
