// Package cli wires together the Cobra command tree for the lookout
// binary.
//
// It defines the root command and its subcommands (review, version),
// binds flags, checks the API credential, drives the review pipeline,
// and returns the process exit code: 0 on completion, 1 when the
// credential is missing or the report cannot be written.
package cli
