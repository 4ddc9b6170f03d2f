package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/nathantilsley/commit-val/internal/verify/domain"
	"github.com/nathantilsley/commit-val/internal/verify/ports"
)

// Checkpoint names, in execution order.
const (
	checkPresence      = "answer file present"
	checkContent       = "answer content matches"
	checkFormat        = "sha format"
	checkCommitExists  = "commit exists"
	checkCommitDetails = "commit details"
)

// VerifyService implements ports.VerifyUseCase by running the sequential
// verification workflow: fetch the answer file, compare its content to the
// expected SHA, validate the format, confirm the commit exists, and loosely
// inspect the commit for topical relevance.
type VerifyService struct {
	source   ports.SourceControlPort
	differ   ports.DiffPort
	reporter ports.ReportingPort
	logger   *slog.Logger
}

// NewVerifyService creates a VerifyService wired with its driven ports.
func NewVerifyService(
	source ports.SourceControlPort,
	differ ports.DiffPort,
	reporter ports.ReportingPort,
	logger *slog.Logger,
) *VerifyService {
	return &VerifyService{
		source:   source,
		differ:   differ,
		reporter: reporter,
		logger:   logger,
	}
}

// Execute runs the verification checkpoints for a single task. Each
// checkpoint is terminal on hard failure; the commit-details checkpoint
// only ever warns. The returned error is reserved for context cancellation,
// every verification outcome is carried in the report.
func (s *VerifyService) Execute(ctx context.Context, task domain.Task) (domain.Report, error) {
	report := domain.Report{TaskName: task.Name}
	s.reporter.TaskStarted(task)

	// 1. Answer file must exist on the target branch.
	s.reporter.CheckStarted(1, fmt.Sprintf("checking %s exists", task.AnswerFile))
	raw, err := s.source.FetchFile(ctx, task.Owner, task.Repo, task.Branch, task.AnswerFile)
	if err != nil {
		if ctx.Err() != nil {
			return report, ctx.Err()
		}
		s.logger.Error("answer file not readable",
			"file", task.AnswerFile, "branch", task.Branch, "error", err)
		report.Fail(checkPresence,
			fmt.Sprintf("%s not found in %s/%s at %s", task.AnswerFile, task.Owner, task.Repo, task.Branch))
		s.reporter.TaskFinished(report)
		return report, nil
	}
	report.Pass(checkPresence, fmt.Sprintf("found %s", task.AnswerFile))
	s.reporter.CheckPassed(1, fmt.Sprintf("found %s", task.AnswerFile))

	// 2. Trimmed content must equal the expected SHA exactly.
	s.reporter.CheckStarted(2, fmt.Sprintf("checking %s content", task.AnswerFile))
	content := strings.TrimSpace(raw)
	if content != task.ExpectedSHA {
		s.logger.Error("answer content mismatch", "file", task.AnswerFile)
		diff := s.differ.ComputeDiff("expected", "actual", []byte(task.ExpectedSHA), []byte(content))
		report.Fail(checkContent,
			fmt.Sprintf("content mismatch: expected %s, got %s\n%s", task.ExpectedSHA, content, diff))
		s.reporter.TaskFinished(report)
		return report, nil
	}
	report.Pass(checkContent, fmt.Sprintf("%s content is correct", task.AnswerFile))
	s.reporter.CheckPassed(2, fmt.Sprintf("%s content is correct", task.AnswerFile))

	// 3. The content must be a syntactically valid commit identifier.
	s.reporter.CheckStarted(3, "validating sha format")
	if !domain.IsCommitSHA(content) {
		s.logger.Error("malformed commit sha", "content", content)
		report.Fail(checkFormat,
			fmt.Sprintf("invalid sha %q: must be 40 hexadecimal characters", content))
		s.reporter.TaskFinished(report)
		return report, nil
	}
	report.Pass(checkFormat, "sha is 40 hexadecimal characters")
	s.reporter.CheckPassed(3, "sha format is valid")

	// 4. The commit must exist in the target repository.
	s.reporter.CheckStarted(4, "verifying commit exists")
	commit, err := s.source.GetCommit(ctx, task.Owner, task.Repo, content)
	if err != nil {
		if ctx.Err() != nil {
			return report, ctx.Err()
		}
		// Transport failures and 404s both end the run here.
		s.logger.Error("commit lookup failed", "sha", content, "error", err)
		report.Fail(checkCommitExists,
			fmt.Sprintf("commit %s not found in %s/%s", content, task.Owner, task.Repo))
		s.reporter.TaskFinished(report)
		return report, nil
	}
	report.Pass(checkCommitExists, fmt.Sprintf("commit %s exists", content))
	s.reporter.CheckPassed(4, fmt.Sprintf("commit %s exists and is valid", content))

	// 5. Loose topical inspection. Warnings only, never a failure.
	if task.VerifyCommitDetails {
		s.reporter.CheckStarted(5, "inspecting commit details")
		warnings := s.inspectCommit(commit, task)
		if len(warnings) > 0 {
			for _, w := range warnings {
				s.reporter.Warning(w)
			}
			report.Warn(checkCommitDetails, strings.Join(warnings, "; "))
		} else {
			report.Pass(checkCommitDetails, "commit references the expected topic")
			s.reporter.CheckPassed(5, "commit references the expected topic")
		}
	}

	s.reporter.TaskFinished(report)
	return report, nil
}

// inspectCommit applies the loose relevance heuristics: the commit should
// change at least one Markdown file and its message should mention the
// configured entry and section keywords. Intentionally permissive.
func (s *VerifyService) inspectCommit(commit domain.Commit, task domain.Task) []string {
	var warnings []string

	if len(domain.DocFiles(commit.Files)) == 0 {
		warnings = append(warnings, "commit changed no Markdown documentation files")
	}

	if task.Entry != "" && !domain.MentionsTopic(commit.Message, task.Entry, task.AllowPartialMatch) {
		warnings = append(warnings, fmt.Sprintf("commit message does not mention entry %q", task.Entry))
	}

	if task.Section != "" && !domain.MentionsTopic(commit.Message, task.Section, task.AllowPartialMatch) {
		warnings = append(warnings, fmt.Sprintf("commit message does not mention section %q", task.Section))
	}

	for _, w := range warnings {
		s.logger.Warn(w, "sha", commit.SHA)
	}
	return warnings
}
