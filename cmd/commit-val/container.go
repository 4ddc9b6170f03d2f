// Package main provides the commit-val CLI for verifying answer-file
// commit SHAs against a remote repository.
package main

import (
	"fmt"
	"log/slog"
	"os"

	gogithub "github.com/google/go-github/v68/github"

	"github.com/nathantilsley/commit-val/internal/platform/config"
	ghclient "github.com/nathantilsley/commit-val/internal/platform/github"
	consolereport "github.com/nathantilsley/commit-val/internal/verify/adapters/console_report"
	githubsrc "github.com/nathantilsley/commit-val/internal/verify/adapters/github_src"
	linediff "github.com/nathantilsley/commit-val/internal/verify/adapters/line_diff"
	manifestcfg "github.com/nathantilsley/commit-val/internal/verify/adapters/manifest_cfg"
	"github.com/nathantilsley/commit-val/internal/verify/app"
	"github.com/nathantilsley/commit-val/internal/verify/domain"
	"github.com/nathantilsley/commit-val/internal/verify/ports"
)

// Container holds all application dependencies.
type Container struct {
	Config       config.Config
	Logger       *slog.Logger
	GitHubClient *gogithub.Client
	Verifier     ports.VerifyUseCase
	Tasks        []domain.Task
}

// NewContainer builds and wires all dependencies.
func NewContainer(cfg config.Config, log *slog.Logger) (*Container, error) {
	// Platform dependencies
	githubClient, err := ghclient.NewClient(ghclient.Options{
		Token:          cfg.Token,
		AppID:          cfg.GitHubAppID,
		InstallationID: cfg.GitHubInstallationID,
		PrivateKeyPEM:  cfg.GitHubPrivateKey,
		Instrument:     cfg.OTelEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("creating github client: %w", err)
	}

	// Adapters
	source := githubsrc.New(githubClient, log)
	differ := linediff.New()
	reporter := consolereport.New(os.Stdout, os.Stderr)

	verifier := app.NewVerifyService(source, differ, reporter, log)

	tasks, err := resolveTasks(cfg, log)
	if err != nil {
		return nil, err
	}

	return &Container{
		Config:       cfg,
		Logger:       log,
		GitHubClient: githubClient,
		Verifier:     verifier,
		Tasks:        tasks,
	}, nil
}

// resolveTasks builds the task list: from the manifest when one is
// configured, otherwise a single task straight from the environment.
func resolveTasks(cfg config.Config, log *slog.Logger) ([]domain.Task, error) {
	base := domain.Task{
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

	if cfg.ManifestPath == "" {
		return []domain.Task{base}, nil
	}

	log.Info("loading verification manifest", "path", cfg.ManifestPath)
	tasks, err := manifestcfg.Load(cfg.ManifestPath, base)
	if err != nil {
		return nil, fmt.Errorf("loading manifest: %w", err)
	}
	log.Info("manifest loaded", "tasks", len(tasks))
	return tasks, nil
}
