package review

import (
	"context"
	"errors"
	"fmt"

	"lookout/internal/config"
	"lookout/internal/gemini"
	"lookout/internal/logging"
	"lookout/internal/redact"
	"lookout/internal/source"
)

var log = logging.NewLogger("review")

// noCandidatesText substitutes for a 200 response whose candidate list
// was empty.
const noCandidatesText = "No response generated from Gemini API"

// Run reviews files one at a time, in the given order. Unreadable files
// are skipped with a warning. A failed review call never aborts the
// run; its error text becomes the Result text for that file.
func Run(ctx context.Context, r Reviewer, files []string, cfg config.Config) []Result {
	results := make([]Result, 0, len(files))
	for _, path := range files {
		content, err := source.Load(path)
		if err != nil {
			log.WithError(err).WithField("file", path).Warn("skipping file")
			continue
		}
		if cfg.RedactSecrets {
			scrubbed, n := redact.Secrets(content)
			if n > 0 {
				log.WithField("file", path).WithField("matches", n).Debug("redacted secrets")
			}
			content = scrubbed
		}

		log.WithField("file", path).Info("analyzing")
		text, err := r.GenerateReview(ctx, BuildPrompt(path, content))
		switch {
		case errors.Is(err, gemini.ErrNoCandidates):
			text = noCandidatesText
		case err != nil:
			text = fmt.Sprintf("⚠️ Analysis failed: %v", err)
		}

		results = append(results, Result{Path: path, Text: text, Severity: SeverityDefault})
	}
	return results
}
