// Package consolereport prints verification progress and results for humans.
package consolereport

import (
	"fmt"
	"io"

	"github.com/nathantilsley/commit-val/internal/verify/domain"
)

// Adapter implements ports.ReportingPort by writing progress lines to out
// and warnings/failures to errOut. The output is informational only; the
// process exit status carries the machine-readable result.
type Adapter struct {
	out    io.Writer
	errOut io.Writer
}

// New creates a console reporter writing to the given streams.
func New(out, errOut io.Writer) *Adapter {
	return &Adapter{out: out, errOut: errOut}
}

// TaskStarted announces the task being verified.
func (a *Adapter) TaskStarted(task domain.Task) {
	fmt.Fprintf(a.out, "Verifying %q on %s/%s@%s\n", task.Name, task.Owner, task.Repo, task.Branch)
}

// CheckStarted prints a numbered progress line for a checkpoint.
func (a *Adapter) CheckStarted(step int, name string) {
	fmt.Fprintf(a.out, "%d. %s...\n", step, name)
}

// CheckPassed confirms a checkpoint succeeded.
func (a *Adapter) CheckPassed(_ int, detail string) {
	fmt.Fprintf(a.out, "   ✓ %s\n", detail)
}

// Warning prints a non-fatal warning to the error stream.
func (a *Adapter) Warning(detail string) {
	fmt.Fprintf(a.errOut, "   warning: %s\n", detail)
}

// TaskFinished prints the final summary for a task.
func (a *Adapter) TaskFinished(report domain.Report) {
	passed, warned, failed := domain.CountByStatus(report.Checks)
	if report.OK() {
		fmt.Fprintf(a.out, "\n✅ All verification checks passed (%d passed, %d warned)\n", passed, warned)
		fmt.Fprintf(a.out, "Task %q completed successfully\n", report.TaskName)
		return
	}

	fmt.Fprintf(a.errOut, "\n❌ Verification failed (%d passed, %d failed)\n", passed, failed)
	for _, check := range report.Checks {
		if check.Status == domain.StatusFail {
			fmt.Fprintf(a.errOut, "error: %s: %s\n", check.Name, check.Detail)
		}
	}
}
