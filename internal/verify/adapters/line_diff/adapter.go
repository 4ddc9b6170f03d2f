// Package linediff renders unified diffs for mismatch diagnostics.
package linediff

import (
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Adapter implements ports.DiffPort with a line-based unified diff. Answer
// files are tiny, so minimal context is enough.
type Adapter struct{}

// New creates a new line-based diff adapter.
func New() *Adapter {
	return &Adapter{}
}

// ComputeDiff returns a unified diff between from and to, or "" when the
// inputs are identical.
func (a *Adapter) ComputeDiff(fromName, toName string, from, to []byte) string {
	ud := difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(from)),
		B:        difflib.SplitLines(string(to)),
		FromFile: fromName,
		ToFile:   toName,
		Context:  1,
	}
	text, err := difflib.GetUnifiedDiffString(ud)
	if err != nil {
		return fmt.Sprintf("error computing diff: %s", err)
	}
	return strings.TrimSpace(text)
}
