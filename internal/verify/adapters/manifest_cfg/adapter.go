// Package manifestcfg loads verification tasks from a .commit-val.yaml file.
package manifestcfg

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nathantilsley/commit-val/api"
	"github.com/nathantilsley/commit-val/internal/verify/domain"
)

// Load reads the manifest at path and resolves each entry against the base
// task: empty repo, branch, answer file, entry, and section fall back to the
// base values, and the expected SHA is read from the environment variable the
// entry names. Strategy flags always come from the base task.
func Load(path string, base domain.Task) ([]domain.Task, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}

	var manifest api.Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	if len(manifest.Tasks) == 0 {
		return nil, fmt.Errorf("manifest %s defines no tasks", path)
	}

	tasks := make([]domain.Task, 0, len(manifest.Tasks))
	for i, entry := range manifest.Tasks {
		task, err := resolve(entry, base)
		if err != nil {
			return nil, fmt.Errorf("manifest %s, task %d: %w", path, i+1, err)
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

func resolve(entry api.ManifestTask, base domain.Task) (domain.Task, error) {
	if entry.ExpectedEnv == "" {
		return domain.Task{}, fmt.Errorf("task %q: expectedEnv is required", entry.Name)
	}
	expected := os.Getenv(entry.ExpectedEnv)
	if expected == "" {
		return domain.Task{}, fmt.Errorf("task %q: environment variable %s is empty", entry.Name, entry.ExpectedEnv)
	}

	task := base
	task.Name = entry.Name
	task.ExpectedSHA = expected
	if entry.AnswerFile != "" {
		task.AnswerFile = entry.AnswerFile
	}
	if entry.Entry != "" {
		task.Entry = entry.Entry
	}
	if entry.Section != "" {
		task.Section = entry.Section
	}
	if entry.Repo != "" {
		task.Repo = entry.Repo
	}
	if entry.Branch != "" {
		task.Branch = entry.Branch
	}
	return task, nil
}
