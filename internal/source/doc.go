// Package source loads the content of changed files for review.
//
// Loads are strict: a missing file, a read error, invalid UTF-8, or an
// empty file all surface as errors so the pipeline can skip the file
// with a warning instead of sending junk to the review endpoint. No
// size limit is applied here; truncation happens in the prompt builder.
package source
