// Package config merges lookout configuration from its sources.
//
// Precedence (highest to lowest):
//  1. CLI flags
//  2. Environment variables (LOOKOUT_MODEL, LOOKOUT_BASE, LOOKOUT_OUTPUT)
//  3. Built-in defaults
//
// There is no config file. The defaults reproduce the behavior a bare
// CI invocation expects: diff against HEAD~1, the default Gemini model,
// the report written to .github/scripts/review-output.md, redaction on.
package config
