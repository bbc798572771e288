package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"lookout/internal/config"
	"lookout/internal/gemini"
	"lookout/internal/gitdiff"
	"lookout/internal/github"
	"lookout/internal/logging"
	"lookout/internal/report"
	"lookout/internal/review"
)

var log = logging.NewLogger("cli")

var (
	flagModel    string
	flagBase     string
	flagOutput   string
	flagComment  bool
	flagNoRedact bool
	flagVerbose  bool
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Review the pull request's changed files",
	Long: "Review discovers source files changed since the base revision, sends each one " +
		"to the Gemini API, and writes the aggregated markdown report.",
	Run: func(cmd *cobra.Command, args []string) {
		runReview()
	},
}

func init() {
	reviewCmd.Flags().StringVar(&flagModel, "model", "", "Gemini model name")
	reviewCmd.Flags().StringVar(&flagBase, "base", "", "Base revision to diff against")
	reviewCmd.Flags().StringVar(&flagOutput, "output", "", "Report output path")
	reviewCmd.Flags().BoolVar(&flagComment, "comment", false, "Post the report as a PR comment")
	reviewCmd.Flags().BoolVar(&flagNoRedact, "no-redact", false, "Disable secret redaction (use with caution)")
	reviewCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")
}

func buildOverrides() map[string]string {
	m := make(map[string]string)
	if flagModel != "" {
		m["model"] = flagModel
	}
	if flagBase != "" {
		m["base"] = flagBase
	}
	if flagOutput != "" {
		m["output"] = flagOutput
	}
	return m
}

func runReview() {
	if flagVerbose {
		logging.SetDebug()
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		fmt.Fprintln(os.Stderr, "❌ GEMINI_API_KEY environment variable not set")
		exitCode = ExitError
		return
	}

	cfg := config.Load(buildOverrides())
	if flagNoRedact {
		cfg.RedactSecrets = false
		fmt.Fprintln(os.Stderr, "WARNING: secret redaction is disabled")
	}
	if flagComment {
		cfg.Comment = true
	}

	runLog := log.WithField("run_id", uuid.NewString())
	runLog.WithField("base", cfg.Base).Info("discovering changed files")

	files := gitdiff.ChangedFiles(cfg.Base)
	if len(files) == 0 {
		runLog.Info("no source files changed")
		finish(report.BuildEmpty(), cfg, runLog)
		return
	}
	runLog.WithField("files", len(files)).Info("reviewing changed files")

	client := gemini.NewClient(apiKey, cfg.Model)
	results := review.Run(context.Background(), client, files, cfg)

	finish(report.Build(results), cfg, runLog)
}

// finish writes the document and handles the GitHub surfaces. Report
// write failures are the only ones that change the exit code.
func finish(doc string, cfg config.Config, runLog *logrus.Entry) {
	if err := report.Write(doc, cfg.Output); err != nil {
		runLog.WithError(err).Error("writing report failed")
		exitCode = ExitError
		return
	}
	runLog.WithField("path", cfg.Output).Info("report written")

	if ok, err := github.AppendStepSummary(doc); err != nil {
		runLog.WithError(err).Warn("step summary mirror failed")
	} else if ok {
		runLog.Debug("report mirrored to step summary")
	}

	if cfg.Comment {
		postComment(doc, runLog)
	}

	fmt.Println("✅ AI Code Review completed!")
	fmt.Printf("📝 Review saved to %s\n", cfg.Output)
}

func postComment(doc string, runLog *logrus.Entry) {
	gh, err := github.NewClient()
	if err != nil {
		runLog.WithError(err).Warn("cannot post PR comment")
		return
	}
	pr, err := github.PRNumber()
	if err != nil {
		runLog.WithError(err).Warn("cannot resolve PR number")
		return
	}
	if pr == 0 {
		runLog.Warn("not a pull request context; skipping comment")
		return
	}
	if err := gh.UpsertComment(context.Background(), pr, doc); err != nil {
		runLog.WithError(err).Warn("posting PR comment failed")
		return
	}
	runLog.WithField("pr", pr).Info("report posted as PR comment")
}
