package ports

import (
	"context"

	"github.com/nathantilsley/commit-val/internal/verify/domain"
)

// SourceControlPort abstracts reading repository state from the remote host.
// Missing files and unknown commits are reported via domain.NotFoundError.
type SourceControlPort interface {
	// FetchFile returns the decoded content of the file at path on ref.
	FetchFile(ctx context.Context, owner, repo, ref, path string) (string, error)

	// GetCommit returns the commit message and changed-file list for sha.
	GetCommit(ctx context.Context, owner, repo, sha string) (domain.Commit, error)
}

// DiffPort abstracts computing a unified diff for mismatch diagnostics.
type DiffPort interface {
	ComputeDiff(fromName, toName string, from, to []byte) string
}

// ReportingPort abstracts presenting progress and outcomes to the operator.
type ReportingPort interface {
	TaskStarted(task domain.Task)
	CheckStarted(step int, name string)
	CheckPassed(step int, detail string)
	Warning(detail string)
	TaskFinished(report domain.Report)
}
