// Package githubsrc reads answer files and commit records via the GitHub API.
package githubsrc

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	gogithub "github.com/google/go-github/v68/github"

	"github.com/nathantilsley/commit-val/internal/verify/domain"
)

// Adapter implements ports.SourceControlPort using the GitHub contents and
// commits endpoints. Nothing is cached; every call hits the API.
type Adapter struct {
	client *gogithub.Client
	logger *slog.Logger
}

// New creates a new GitHub source control adapter.
func New(client *gogithub.Client, logger *slog.Logger) *Adapter {
	return &Adapter{client: client, logger: logger}
}

// FetchFile returns the decoded content of the file at path on ref.
// The contents API returns base64-encoded payloads; GetContent decodes.
// A 404 maps to domain.NotFoundError.
func (a *Adapter) FetchFile(ctx context.Context, owner, repo, ref, path string) (string, error) {
	opts := &gogithub.RepositoryContentGetOptions{Ref: ref}
	fileContent, _, resp, err := a.client.Repositories.GetContents(ctx, owner, repo, path, opts)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return "", domain.NewNotFoundError(path, ref)
		}
		a.logger.Error("fetching file failed", "path", path, "ref", ref, "error", err)
		return "", fmt.Errorf("fetching file %s: %w", path, err)
	}

	if fileContent == nil {
		// Path resolved to a directory listing.
		return "", domain.NewNotFoundError(path, ref)
	}

	content, err := fileContent.GetContent()
	if err != nil {
		a.logger.Error("decoding file failed", "path", path, "error", err)
		return "", fmt.Errorf("decoding file content %s: %w", path, err)
	}

	return content, nil
}

// GetCommit returns the commit message and changed-file list for sha.
// Both 404 and 422 (malformed or unknown sha) map to domain.NotFoundError.
func (a *Adapter) GetCommit(ctx context.Context, owner, repo, sha string) (domain.Commit, error) {
	commit, resp, err := a.client.Repositories.GetCommit(ctx, owner, repo, sha, &gogithub.ListOptions{PerPage: 100})
	if err != nil {
		if resp != nil && (resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusUnprocessableEntity) {
			return domain.Commit{}, domain.NewNotFoundError(sha, "")
		}
		a.logger.Error("fetching commit failed", "sha", sha, "error", err)
		return domain.Commit{}, fmt.Errorf("fetching commit %s: %w", sha, err)
	}

	result := domain.Commit{
		SHA:     commit.GetSHA(),
		Message: commit.GetCommit().GetMessage(),
	}
	for _, f := range commit.Files {
		result.Files = append(result.Files, f.GetFilename())
	}
	return result, nil
}
