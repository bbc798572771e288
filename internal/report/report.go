package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"lookout/internal/review"
)

const title = "## 🤖 AI Code Review Results (Gemini)"

const attribution = "*This review was generated by Google Gemini AI using advanced code analysis.*"

// emptyDoc is written verbatim when discovery finds no changed files.
const emptyDoc = "## 🤖 AI Code Review Results\n\n" +
	"ℹ️ **No code files were changed in this pull request.**\n\n" +
	"The AI code review found no files to analyze."

const (
	iconHigh   = "🔴"
	iconMedium = "🟡"
	iconLow    = "🟢"
)

// summaryBullets caps how many result lines appear under each file in
// the summary block.
const summaryBullets = 3

// Summarize renders the summary block: analyzed and high-priority
// counts, then one icon-labeled line per file with bullets taken from
// the first three lines of its result text, blanks dropped.
func Summarize(results []review.Result) string {
	var b strings.Builder

	b.WriteString("## 📋 Code Review Summary\n\n")
	fmt.Fprintf(&b, "**Files Analyzed**: %d\n", len(results))
	fmt.Fprintf(&b, "**High Priority Issues**: %d\n\n", highPriorityCount(results))
	b.WriteString("### 🔍 Analysis Overview\n\n")

	for _, r := range results {
		fmt.Fprintf(&b, "**%s %s**\n", severityIcon(r.Text), r.Path)
		for _, line := range firstLines(r.Text, summaryBullets) {
			fmt.Fprintf(&b, "- %s\n", line)
		}
		b.WriteString("\n")
	}

	return b.String()
}

// Build assembles the full document: title, analyzed-file count, then
// when there are results the summary block and one full-text section
// per file in input order, and finally the attribution line.
func Build(results []review.Result) string {
	var b strings.Builder

	b.WriteString(title + "\n\n")
	fmt.Fprintf(&b, "**Analyzed %d files**\n\n", len(results))

	if len(results) > 0 {
		b.WriteString(Summarize(results))
		b.WriteString("---\n\n")

		for _, r := range results {
			fmt.Fprintf(&b, "## 📄 %s\n\n", r.Path)
			b.WriteString(r.Text)
			b.WriteString("\n\n---\n\n")
		}
	}

	b.WriteString(attribution)
	return b.String()
}

// BuildEmpty returns the fixed document for runs with no changed files.
func BuildEmpty() string {
	return emptyDoc
}

// Write stores doc at path, creating the parent directory if needed.
func Write(doc, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating report directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

func highPriorityCount(results []review.Result) int {
	n := 0
	for _, r := range results {
		if isHighPriority(r.Text) {
			n++
		}
	}
	return n
}

// Severity words are matched case-insensitively.
func isHighPriority(text string) bool {
	text = strings.ToUpper(text)
	return strings.Contains(text, "HIGH") || strings.Contains(text, "CRITICAL")
}

func severityIcon(text string) string {
	switch {
	case isHighPriority(text):
		return iconHigh
	case strings.Contains(strings.ToUpper(text), "MEDIUM"):
		return iconMedium
	default:
		return iconLow
	}
}

// firstLines keeps the first n lines of text, then drops blanks.
func firstLines(text string, n int) []string {
	head := strings.Split(text, "\n")
	if len(head) > n {
		head = head[:n]
	}
	var lines []string
	for _, line := range head {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
