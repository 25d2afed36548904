package notifier

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	gogithub "github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"

	"github.com/loghint/loghint/internal/model"
)

// Ensure GitHubNotifier implements model.Notifier.
var _ model.Notifier = (*GitHubNotifier)(nil)

// GitHubNotifier posts analysis reports as comments on a pull request,
// so the suggestion lands next to the failing check run.
type GitHubNotifier struct {
	gh       *gogithub.Client
	owner    string
	repo     string
	prNumber int
	logger   *slog.Logger
}

// NewGitHubNotifier creates an authenticated client from a personal access
// token or Actions-provided GITHUB_TOKEN. repository must be "owner/repo".
func NewGitHubNotifier(token, repository string, prNumber int, logger *slog.Logger) (*GitHubNotifier, error) {
	owner, repo, err := splitRepo(repository)
	if err != nil {
		return nil, err
	}
	if prNumber <= 0 {
		return nil, fmt.Errorf("invalid pull request number %d", prNumber)
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(context.Background(), ts)
	return &GitHubNotifier{
		gh:       gogithub.NewClient(tc),
		owner:    owner,
		repo:     repo,
		prNumber: prNumber,
		logger:   logger,
	}, nil
}

// Notify creates one issue comment on the configured pull request.
func (n *GitHubNotifier) Notify(ctx context.Context, r model.Report) error {
	comment := &gogithub.IssueComment{Body: gogithub.String(buildCommentBody(r))}

	posted, _, err := n.gh.Issues.CreateComment(ctx, n.owner, n.repo, n.prNumber, comment)
	if err != nil {
		return fmt.Errorf("create PR comment on %s/%s#%d: %w", n.owner, n.repo, n.prNumber, err)
	}
	n.logger.Info("posted PR comment",
		"repository", n.owner+"/"+n.repo,
		"pr", n.prNumber,
		"url", posted.GetHTMLURL(),
	)
	return nil
}

// buildCommentBody produces the structured comment markdown.
func buildCommentBody(r model.Report) string {
	var sb strings.Builder
	sb.WriteString("## 🔍 CI/CD Log Analysis\n\n")

	sb.WriteString("### Suggested fixes\n")
	sb.WriteString(r.Suggestion)
	sb.WriteString("\n\n---\n")
	sb.WriteString(fmt.Sprintf("_Source: %s · generated %s_\n",
		r.Origin, r.GeneratedAt.UTC().Format(time.RFC1123)))

	return sb.String()
}

// splitRepo splits "owner/repo" into (owner, repo).
// Returns an error if the format is invalid.
func splitRepo(repository string) (owner, repo string, err error) {
	parts := strings.SplitN(repository, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid repository %q: expected \"owner/repo\"", repository)
	}
	return parts[0], parts[1], nil
}

// DetectPRNumber extracts the pull request number from an Actions ref
// such as "refs/pull/123/merge". Returns false for branch and tag refs.
func DetectPRNumber(ref string) (int, bool) {
	rest, ok := strings.CutPrefix(ref, "refs/pull/")
	if !ok {
		return 0, false
	}
	numStr, _, _ := strings.Cut(rest, "/")
	num, err := strconv.Atoi(numStr)
	if err != nil || num <= 0 {
		return 0, false
	}
	return num, true
}
