package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

const defaultAPIURL = "https://api.github.com"

// commentMarker is embedded invisibly in every comment lookout posts so
// a later run can find and update it instead of stacking new comments.
const commentMarker = "<!-- lookout-review -->"

// Client provides access to the GitHub REST API.
type Client struct {
	token   string
	repo    string
	apiURL  string
	httpCli *http.Client
}

// NewClient creates a client from the Actions environment. Requires
// GITHUB_TOKEN and GITHUB_REPOSITORY.
func NewClient() (*Client, error) {
	token := os.Getenv("GITHUB_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("GITHUB_TOKEN environment variable is not set")
	}
	repo := os.Getenv("GITHUB_REPOSITORY")
	if repo == "" {
		return nil, fmt.Errorf("GITHUB_REPOSITORY environment variable is not set")
	}

	apiURL := os.Getenv("GITHUB_API_URL")
	if apiURL == "" {
		apiURL = defaultAPIURL
	}

	return &Client{
		token:   token,
		repo:    repo,
		apiURL:  strings.TrimRight(apiURL, "/"),
		httpCli: &http.Client{Timeout: 60 * time.Second},
	}, nil
}

// event carries the fields of the workflow event payload lookout needs.
type event struct {
	PullRequest struct {
		Number int `json:"number"`
	} `json:"pull_request"`
	Issue struct {
		Number      int `json:"number"`
		PullRequest *struct {
			URL string `json:"url"`
		} `json:"pull_request"`
	} `json:"issue"`
	Number int `json:"number"`
}

// PRNumber resolves the pull request number for the current workflow
// run from GITHUB_EVENT_PATH, falling back to GITHUB_REF. Returns 0
// when the run is not a pull request context.
func PRNumber() (int, error) {
	eventPath := os.Getenv("GITHUB_EVENT_PATH")
	if eventPath != "" {
		data, err := os.ReadFile(eventPath)
		if err != nil {
			return 0, fmt.Errorf("reading event payload: %w", err)
		}
		var ev event
		if err := json.Unmarshal(data, &ev); err != nil {
			return 0, fmt.Errorf("parsing event payload: %w", err)
		}
		if ev.PullRequest.Number != 0 {
			return ev.PullRequest.Number, nil
		}
		if ev.Issue.Number != 0 && ev.Issue.PullRequest != nil {
			return ev.Issue.Number, nil
		}
		if ev.Number != 0 {
			return ev.Number, nil
		}
	}

	// refs/pull/<n>/merge
	if ref := os.Getenv("GITHUB_REF"); strings.HasPrefix(ref, "refs/pull/") {
		parts := strings.Split(ref, "/")
		if len(parts) >= 3 {
			if n, err := strconv.Atoi(parts[2]); err == nil && n > 0 {
				return n, nil
			}
		}
	}

	return 0, nil
}

// comment is the slice of the issue-comment resource lookout reads.
type comment struct {
	ID   int64  `json:"id"`
	Body string `json:"body"`
}

// UpsertComment posts body as an issue comment on the pull request,
// updating the previous lookout comment in place when one exists.
func (c *Client) UpsertComment(ctx context.Context, prNumber int, body string) error {
	body = commentMarker + "\n\n" + body

	id, err := c.findComment(ctx, prNumber)
	if err != nil {
		return err
	}
	if id == 0 {
		return c.createComment(ctx, prNumber, body)
	}
	return c.updateComment(ctx, id, body)
}

func (c *Client) findComment(ctx context.Context, prNumber int) (int64, error) {
	url := fmt.Sprintf("%s/repos/%s/issues/%d/comments?per_page=100", c.apiURL, c.repo, prNumber)

	respBody, err := c.do(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("listing comments: %w", err)
	}

	var comments []comment
	if err := json.Unmarshal(respBody, &comments); err != nil {
		return 0, fmt.Errorf("parsing comments: %w", err)
	}
	for _, cm := range comments {
		if strings.Contains(cm.Body, commentMarker) {
			return cm.ID, nil
		}
	}
	return 0, nil
}

func (c *Client) createComment(ctx context.Context, prNumber int, body string) error {
	url := fmt.Sprintf("%s/repos/%s/issues/%d/comments", c.apiURL, c.repo, prNumber)
	if _, err := c.do(ctx, http.MethodPost, url, map[string]string{"body": body}); err != nil {
		return fmt.Errorf("creating comment: %w", err)
	}
	return nil
}

func (c *Client) updateComment(ctx context.Context, id int64, body string) error {
	url := fmt.Sprintf("%s/repos/%s/issues/comments/%d", c.apiURL, c.repo, id)
	if _, err := c.do(ctx, http.MethodPatch, url, map[string]string{"body": body}); err != nil {
		return fmt.Errorf("updating comment: %w", err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, url string, payload any) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("marshaling payload: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/vnd.github+json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpCli.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("GitHub API error (status %d): %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}
	return respBody, nil
}

// AppendStepSummary appends doc to the file named by
// GITHUB_STEP_SUMMARY. Reports false when the variable is not set.
func AppendStepSummary(doc string) (bool, error) {
	path := os.Getenv("GITHUB_STEP_SUMMARY")
	if path == "" {
		return false, nil
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return false, fmt.Errorf("opening step summary: %w", err)
	}
	defer f.Close()
	if _, err := f.WriteString(doc); err != nil {
		return false, fmt.Errorf("writing step summary: %w", err)
	}
	return true, nil
}
