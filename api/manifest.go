package api

// Manifest is the top-level schema of the .commit-val.yaml file describing
// the verification tasks to run.
type Manifest struct {
	Tasks []ManifestTask `yaml:"tasks"`
}

// ManifestTask describes a single answer-file verification. The expected
// SHA is never stored inline; ExpectedEnv names the environment variable
// that holds it.
type ManifestTask struct {
	Name        string `yaml:"name"`
	AnswerFile  string `yaml:"answerFile"`
	ExpectedEnv string `yaml:"expectedEnv"`
	Entry       string `yaml:"entry"`
	Section     string `yaml:"section"`

	// Optional per-task overrides of the configured repository and branch.
	Repo   string `yaml:"repo"`
	Branch string `yaml:"branch"`
}
