// Package config provides application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Defaults applied when the corresponding variable is unset.
const (
	DefaultRepo       = "tech-docs-repository"
	DefaultBranch     = "main"
	DefaultAnswerFile = "ANSWER.md"
	DefaultEntry      = "Neural Network Architectures"
	DefaultSection    = "Deep Learning Fundamentals"
	DefaultEnvFile    = ".env"
)

// Config holds the application configuration loaded from environment
// variables. Built once at startup, read-only afterwards.
type Config struct {
	Token       string
	Owner       string
	Repo        string
	Branch      string
	ExpectedSHA string

	AnswerFile    string
	TaskName      string
	TargetEntry   string
	TargetSection string

	VerifyCommitDetails bool
	AllowPartialMatch   bool

	ManifestPath string
	LogLevel     string
	OTelEnabled  bool

	// GitHub App credentials, an alternative to Token.
	GitHubAppID          int64
	GitHubInstallationID int64
	GitHubPrivateKey     string // PEM file contents
}

// HasAppCredentials reports whether a complete set of GitHub App
// credentials is configured.
func (c Config) HasAppCredentials() bool {
	return c.GitHubAppID != 0 && c.GitHubInstallationID != 0 && c.GitHubPrivateKey != ""
}

// Load reads configuration from the environment, after loading an optional
// .env file (path from ENV_FILE, missing file ignored). It validates the
// required subset: GITHUB_OWNER always, EXPECTED_SHA unless a manifest is
// configured, and GITHUB_TOKEN unless App credentials are complete.
func Load() (Config, error) {
	// Original workflow keeps secrets in a local .env file.
	envFile := getEnvOrDefault("ENV_FILE", DefaultEnvFile)
	if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("loading %s: %w", envFile, err)
	}

	cfg := Config{
		Token:         os.Getenv("GITHUB_TOKEN"),
		Owner:         os.Getenv("GITHUB_OWNER"),
		Repo:          getEnvOrDefault("TARGET_REPO", DefaultRepo),
		Branch:        getEnvOrDefault("TARGET_BRANCH", DefaultBranch),
		ExpectedSHA:   os.Getenv("EXPECTED_SHA"),
		AnswerFile:    getEnvOrDefault("ANSWER_FILE_NAME", DefaultAnswerFile),
		TaskName:      getEnvOrDefault("TASK_NAME", "Find "+DefaultEntry+" commit SHA"),
		TargetEntry:   getEnvOrDefault("TARGET_ENTRY", DefaultEntry),
		TargetSection: getEnvOrDefault("TARGET_SECTION", DefaultSection),
		ManifestPath:  os.Getenv("VERIFY_MANIFEST"),
		LogLevel:      getEnvOrDefault("LOG_LEVEL", "info"),
		OTelEnabled:   os.Getenv("OTEL_ENABLED") == "true",
	}

	var err error
	cfg.VerifyCommitDetails, err = parseBoolOrDefault("VERIFY_COMMIT_DETAILS", true)
	if err != nil {
		return Config{}, err
	}
	cfg.AllowPartialMatch, err = parseBoolOrDefault("ALLOW_PARTIAL_MATCH", true)
	if err != nil {
		return Config{}, err
	}

	if err := loadAppCredentials(&cfg); err != nil {
		return Config{}, err
	}

	if cfg.Owner == "" {
		return Config{}, errors.New("GITHUB_OWNER is required")
	}
	if cfg.Token == "" && !cfg.HasAppCredentials() {
		return Config{}, errors.New("GITHUB_TOKEN is required (or complete GitHub App credentials)")
	}
	if cfg.ExpectedSHA == "" && cfg.ManifestPath == "" {
		return Config{}, errors.New("EXPECTED_SHA is required")
	}

	return cfg, nil
}

func loadAppCredentials(cfg *Config) error {
	var err error
	cfg.GitHubAppID, err = parseOptionalInt64("GITHUB_APP_ID")
	if err != nil {
		return err
	}
	cfg.GitHubInstallationID, err = parseOptionalInt64("GITHUB_INSTALLATION_ID")
	if err != nil {
		return err
	}
	cfg.GitHubPrivateKey = os.Getenv("GITHUB_PRIVATE_KEY")
	return nil
}

func parseOptionalInt64(envKey string) (int64, error) {
	v := os.Getenv(envKey)
	if v == "" {
		return 0, nil
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", envKey, v, err)
	}
	return id, nil
}

func parseBoolOrDefault(envKey string, defaultValue bool) (bool, error) {
	v := os.Getenv(envKey)
	if v == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: %w", envKey, v, err)
	}
	return b, nil
}

func getEnvOrDefault(envKey, defaultValue string) string {
	if v := os.Getenv(envKey); v != "" {
		return v
	}
	return defaultValue
}
