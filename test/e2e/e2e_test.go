package e2e

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/nathantilsley/commit-val/internal/platform/config"
	ghclient "github.com/nathantilsley/commit-val/internal/platform/github"
	"github.com/nathantilsley/commit-val/internal/platform/logger"
	consolereport "github.com/nathantilsley/commit-val/internal/verify/adapters/console_report"
	githubsrc "github.com/nathantilsley/commit-val/internal/verify/adapters/github_src"
	linediff "github.com/nathantilsley/commit-val/internal/verify/adapters/line_diff"
	"github.com/nathantilsley/commit-val/internal/verify/app"
	"github.com/nathantilsley/commit-val/internal/verify/domain"
)

// TestE2E_VerifyAgainstGitHub runs the full workflow against the real
// GitHub API. Requires E2E_TEST=true plus the usual configuration
// (GITHUB_TOKEN, GITHUB_OWNER, EXPECTED_SHA, ...).
func TestE2E_VerifyAgainstGitHub(t *testing.T) {
	if os.Getenv("E2E_TEST") != "true" {
		t.Skip("Skipping E2E test. Set E2E_TEST=true to run.")
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("loading config: %v", err)
	}

	client, err := ghclient.NewClient(ghclient.Options{
		Token:          cfg.Token,
		AppID:          cfg.GitHubAppID,
		InstallationID: cfg.GitHubInstallationID,
		PrivateKeyPEM:  cfg.GitHubPrivateKey,
	})
	if err != nil {
		t.Fatalf("creating github client: %v", err)
	}

	log := logger.New(cfg.LogLevel)
	service := app.NewVerifyService(
		githubsrc.New(client, log),
		linediff.New(),
		consolereport.New(os.Stdout, os.Stderr),
		log,
	)

	task := domain.Task{
		Name:                cfg.TaskName,
		Owner:               cfg.Owner,
		Repo:                cfg.Repo,
		Branch:              cfg.Branch,
		AnswerFile:          cfg.AnswerFile,
		ExpectedSHA:         cfg.ExpectedSHA,
		Entry:               cfg.TargetEntry,
		Section:             cfg.TargetSection,
		VerifyCommitDetails: cfg.VerifyCommitDetails,
		AllowPartialMatch:   cfg.AllowPartialMatch,
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	report, err := service.Execute(ctx, task)
	if err != nil {
		t.Fatalf("executing verification: %v", err)
	}
	if !report.OK() {
		t.Errorf("verification failed: %+v", report.Checks)
	}
}
