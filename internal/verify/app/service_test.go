package app

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/nathantilsley/commit-val/internal/platform/logger"
	"github.com/nathantilsley/commit-val/internal/verify/domain"
)

// Mock adapters for testing

type mockSource struct {
	files   map[string]string        // "ref:path" -> content
	commits map[string]domain.Commit // sha -> commit
}

func (m *mockSource) FetchFile(_ context.Context, _, _, ref, path string) (string, error) {
	content, ok := m.files[ref+":"+path]
	if !ok {
		return "", domain.NewNotFoundError(path, ref)
	}
	return content, nil
}

func (m *mockSource) GetCommit(_ context.Context, _, _, sha string) (domain.Commit, error) {
	commit, ok := m.commits[sha]
	if !ok {
		return domain.Commit{}, domain.NewNotFoundError(sha, "")
	}
	return commit, nil
}

type mockDiff struct{}

func (m *mockDiff) ComputeDiff(fromName, toName string, from, to []byte) string {
	if string(from) != string(to) {
		return fmt.Sprintf("--- %s\n+++ %s", fromName, toName)
	}
	return ""
}

type recordingReporter struct {
	started  int
	checks   []string
	warnings []string
	finished []domain.Report
}

func (r *recordingReporter) TaskStarted(_ domain.Task) { r.started++ }

func (r *recordingReporter) CheckStarted(_ int, name string) { r.checks = append(r.checks, name) }

func (r *recordingReporter) CheckPassed(_ int, _ string) {}

func (r *recordingReporter) Warning(detail string) { r.warnings = append(r.warnings, detail) }
func (r *recordingReporter) TaskFinished(report domain.Report) {
	r.finished = append(r.finished, report)
}

const validSHA = "a1b2c3d4e5f6a1b2c3d4e5f6a1b2c3d4e5f6a1b2"

func newTask() domain.Task {
	return domain.Task{
		Name:                "Find Neural Network Architectures commit SHA",
		Owner:               "octocat",
		Repo:                "tech-docs-repository",
		Branch:              "main",
		AnswerFile:          "ANSWER.md",
		ExpectedSHA:         validSHA,
		Entry:               "Neural Network Architectures",
		Section:             "Deep Learning Fundamentals",
		VerifyCommitDetails: true,
		AllowPartialMatch:   true,
	}
}

func newService(source *mockSource, reporter *recordingReporter) *VerifyService {
	return NewVerifyService(source, &mockDiff{}, reporter, logger.New("error"))
}

func TestExecute_AllChecksPass(t *testing.T) {
	source := &mockSource{
		files: map[string]string{"main:ANSWER.md": validSHA + "\n"},
		commits: map[string]domain.Commit{
			validSHA: {
				SHA:     validSHA,
				Message: "Add Neural Network Architectures to Deep Learning Fundamentals",
				Files:   []string{"docs/deep_learning.md"},
			},
		},
	}
	reporter := &recordingReporter{}

	report, err := newService(source, reporter).Execute(context.Background(), newTask())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !report.OK() {
		t.Fatalf("expected report to pass, got checks: %+v", report.Checks)
	}
	if len(report.Checks) != 5 {
		t.Errorf("expected 5 checks, got %d", len(report.Checks))
	}
	if len(reporter.warnings) != 0 {
		t.Errorf("expected no warnings, got %v", reporter.warnings)
	}
}

func TestExecute_MissingAnswerFile(t *testing.T) {
	source := &mockSource{files: map[string]string{}}
	reporter := &recordingReporter{}

	report, err := newService(source, reporter).Execute(context.Background(), newTask())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.OK() {
		t.Fatal("expected report to fail")
	}
	// Run must stop at the presence check, before any content comparison.
	if len(report.Checks) != 1 {
		t.Fatalf("expected exactly 1 check, got %d: %+v", len(report.Checks), report.Checks)
	}
	if report.Checks[0].Name != checkPresence || report.Checks[0].Status != domain.StatusFail {
		t.Errorf("unexpected first check: %+v", report.Checks[0])
	}
}

func TestExecute_ContentMismatch(t *testing.T) {
	other := strings.Repeat("b", 40)
	source := &mockSource{
		files: map[string]string{"main:ANSWER.md": other},
	}
	reporter := &recordingReporter{}

	report, err := newService(source, reporter).Execute(context.Background(), newTask())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.OK() {
		t.Fatal("expected report to fail")
	}
	last := report.Checks[len(report.Checks)-1]
	if last.Name != checkContent {
		t.Errorf("expected failure at %q, got %q", checkContent, last.Name)
	}
	if !strings.Contains(last.Detail, "--- expected") {
		t.Errorf("expected mismatch detail to carry a diff, got %q", last.Detail)
	}
}

func TestExecute_TrimsWhitespaceOnly(t *testing.T) {
	// Leading/trailing whitespace is fine; internal whitespace is a mismatch.
	source := &mockSource{
		files: map[string]string{"main:ANSWER.md": "  " + validSHA[:20] + " " + validSHA[20:]},
	}
	reporter := &recordingReporter{}

	report, err := newService(source, reporter).Execute(context.Background(), newTask())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.OK() {
		t.Fatal("internal whitespace should fail the content check")
	}
}

func TestExecute_MalformedSHA(t *testing.T) {
	// Expected value itself is malformed: equality passes, format must
	// still reject it.
	task := newTask()
	task.ExpectedSHA = "not-a-sha"
	source := &mockSource{
		files: map[string]string{"main:ANSWER.md": "not-a-sha"},
	}
	reporter := &recordingReporter{}

	report, err := newService(source, reporter).Execute(context.Background(), task)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.OK() {
		t.Fatal("expected report to fail")
	}
	last := report.Checks[len(report.Checks)-1]
	if last.Name != checkFormat || last.Status != domain.StatusFail {
		t.Errorf("expected failure at %q, got %+v", checkFormat, last)
	}
}

func TestExecute_CommitDoesNotExist(t *testing.T) {
	source := &mockSource{
		files:   map[string]string{"main:ANSWER.md": validSHA},
		commits: map[string]domain.Commit{},
	}
	reporter := &recordingReporter{}

	report, err := newService(source, reporter).Execute(context.Background(), newTask())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.OK() {
		t.Fatal("expected report to fail")
	}
	last := report.Checks[len(report.Checks)-1]
	if last.Name != checkCommitExists || last.Status != domain.StatusFail {
		t.Errorf("expected failure at %q, got %+v", checkCommitExists, last)
	}
}

func TestExecute_IrrelevantCommitOnlyWarns(t *testing.T) {
	source := &mockSource{
		files: map[string]string{"main:ANSWER.md": validSHA},
		commits: map[string]domain.Commit{
			validSHA: {
				SHA:     validSHA,
				Message: "Bump dependency versions",
				Files:   []string{"go.mod"},
			},
		},
	}
	reporter := &recordingReporter{}

	report, err := newService(source, reporter).Execute(context.Background(), newTask())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Allow-partial-match policy: topical mismatch warns, never fails.
	if !report.OK() {
		t.Fatalf("expected report to pass despite warnings, got %+v", report.Checks)
	}
	if len(reporter.warnings) != 3 {
		t.Errorf("expected 3 warnings (no docs, no entry, no section), got %v", reporter.warnings)
	}
	_, warned, _ := domain.CountByStatus(report.Checks)
	if warned != 1 {
		t.Errorf("expected 1 warned check, got %d", warned)
	}
}

func TestExecute_DetailsCheckDisabled(t *testing.T) {
	task := newTask()
	task.VerifyCommitDetails = false
	source := &mockSource{
		files: map[string]string{"main:ANSWER.md": validSHA},
		commits: map[string]domain.Commit{
			validSHA: {SHA: validSHA, Message: "unrelated", Files: nil},
		},
	}
	reporter := &recordingReporter{}

	report, err := newService(source, reporter).Execute(context.Background(), task)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !report.OK() {
		t.Fatal("expected report to pass")
	}
	if len(report.Checks) != 4 {
		t.Errorf("expected 4 checks with details disabled, got %d", len(report.Checks))
	}
	if len(reporter.warnings) != 0 {
		t.Errorf("expected no warnings, got %v", reporter.warnings)
	}
}
