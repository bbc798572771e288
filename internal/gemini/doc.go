// Package gemini is a minimal client for the Gemini generateContent
// REST endpoint.
//
// The client sends one synchronous POST per review with a fixed
// generation config (temperature 0.1, topK 1, topP 1, 2048 output
// tokens) and a 30-second timeout. There is no retry or backoff; the
// caller decides how failures surface. A 200 response with an empty
// candidate list is reported as ErrNoCandidates so callers can
// substitute placeholder text.
package gemini
