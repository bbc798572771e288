// Package redact scrubs secrets from file content before it is embedded
// in a review prompt and sent to the generative-language API.
//
// Detection uses regex heuristics covering common secret shapes: Google
// and AWS API keys, GitHub and Slack tokens, JWTs, bearer headers,
// private key blocks, and generic key/secret/password assignments.
// Matches are replaced wholesale with [REDACTED], and the number of
// replacements is reported so callers can log how much was scrubbed
// without logging the secrets themselves.
package redact
