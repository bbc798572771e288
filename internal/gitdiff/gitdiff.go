package gitdiff

import (
	"fmt"
	"os/exec"
	"strings"

	"lookout/internal/logging"
)

// DefaultBase is the revision the working HEAD is compared against.
const DefaultBase = "HEAD~1"

// sourceExtensions is the fixed allow-list of reviewable file types.
var sourceExtensions = []string{
	".ts",
	".tsx",
	".js",
	".jsx",
	".py",
	".java",
	".cpp",
	".c",
	".h",
	".hpp",
	".go",
}

var log = logging.NewLogger("gitdiff")

// ChangedFiles returns the source files changed between base and the
// working tree, in the order git reports them. Uncommitted edits count
// as changes. If the diff command fails the captured error text is
// logged and an empty list is returned.
func ChangedFiles(base string) []string {
	if base == "" {
		base = DefaultBase
	}
	out, err := gitOutput("diff", "--name-only", base)
	if err != nil {
		log.WithError(err).Warn("git diff failed; treating as no changed files")
		return nil
	}
	return FilterSourceFiles(splitLines(out))
}

// FilterSourceFiles keeps only paths with an allow-listed extension.
// Input order is preserved, as are duplicates.
func FilterSourceFiles(paths []string) []string {
	var kept []string
	for _, p := range paths {
		if isSourceFile(p) {
			kept = append(kept, p)
		}
	}
	return kept
}

func isSourceFile(path string) bool {
	for _, ext := range sourceExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

func splitLines(out string) []string {
	var lines []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func gitOutput(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	out, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return string(out), fmt.Errorf("%s: %s", err, string(exitErr.Stderr))
		}
		return "", err
	}
	return string(out), nil
}
