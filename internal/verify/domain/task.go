package domain

// Task describes one answer-file verification: which file to read from the
// target repository, which commit SHA its content must equal, and which
// topic the named commit is expected to concern.
type Task struct {
	Name        string
	Owner       string
	Repo        string
	Branch      string
	AnswerFile  string
	ExpectedSHA string

	// Topic keywords for the loose commit-details checkpoint.
	Entry   string
	Section string

	// VerifyCommitDetails enables the loose commit-details checkpoint.
	// AllowPartialMatch relaxes keyword matching from the full phrase to
	// any single word of it. Neither flag can turn warnings into failures.
	VerifyCommitDetails bool
	AllowPartialMatch   bool
}
