// Package logging configures the process-wide logger for lookout.
//
// All pipeline progress lines go through entries created by
// [NewLogger], tagged with the component that emitted them. Output is
// plain text on stderr so the lines stay readable in CI build logs.
// Setting LOOKOUT_DEBUG=1 (or the --verbose flag) raises the level to
// debug.
package logging
