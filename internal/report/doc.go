// Package report assembles the markdown review report and writes it.
//
// Severity in the report is purely lexical: a file counts as high
// priority when its result text contains "HIGH" or "CRITICAL" in any
// letter case, and the per-file icon falls back to 🟡 on "MEDIUM" and
// 🟢 otherwise. The prose itself is never parsed; a transport error
// embedded as result text is scanned the same way as model output.
package report
