package domain

// Status represents the outcome of a single verification check.
type Status int

const (
	StatusPass Status = iota // Check succeeded
	StatusWarn               // Check raised warnings but does not fail the run
	StatusFail               // Hard failure, verification stops here
)

// String returns the string representation of the Status.
// Implements the Stringer interface.
func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return "Unknown"
	}
	return statusNames[s]
}

var statusNames = [...]string{
	StatusPass: "Pass",
	StatusWarn: "Warn",
	StatusFail: "Fail",
}

// Check records the outcome of one checkpoint.
type Check struct {
	Name   string
	Status Status
	Detail string
}

// Report collects checkpoint outcomes for a single task, in order.
type Report struct {
	TaskName string
	Checks   []Check
}

// Pass appends a passing check.
func (r *Report) Pass(name, detail string) {
	r.Checks = append(r.Checks, Check{Name: name, Status: StatusPass, Detail: detail})
}

// Warn appends a check that raised warnings. Warnings never fail the run.
func (r *Report) Warn(name, detail string) {
	r.Checks = append(r.Checks, Check{Name: name, Status: StatusWarn, Detail: detail})
}

// Fail appends a failing check.
func (r *Report) Fail(name, detail string) {
	r.Checks = append(r.Checks, Check{Name: name, Status: StatusFail, Detail: detail})
}

// OK reports whether the task passed: no check failed. Warnings do not
// count against the result.
func (r Report) OK() bool {
	for _, c := range r.Checks {
		if c.Status == StatusFail {
			return false
		}
	}
	return true
}

// CountByStatus returns counts of checks grouped by status.
func CountByStatus(checks []Check) (passed, warned, failed int) {
	for _, c := range checks {
		switch c.Status {
		case StatusPass:
			passed++
		case StatusWarn:
			warned++
		case StatusFail:
			failed++
		}
	}
	return
}
