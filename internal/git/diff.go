package git

import (
	"fmt"
	"unicode/utf8"
)

const truncationMarker = "\n\n[... diff truncated ...]"

// StagedDiff returns the diff of staged changes.
func (r *Repo) StagedDiff() (string, error) {
	return r.output("diff", "--staged")
}

// StagedStat returns a short stat summary of the staged diff.
func (r *Repo) StagedStat() (string, error) {
	return r.output("diff", "--staged", "--stat")
}

// HasStagedChanges returns true if the index differs from HEAD.
func (r *Repo) HasStagedChanges() (bool, error) {
	diff, err := r.StagedDiff()
	if err != nil {
		return false, err
	}
	return diff != "", nil
}

// StageAll runs git add -A to stage all changes.
func (r *Repo) StageAll() error {
	out, err := r.command("add", "-A").CombinedOutput()
	if err != nil {
		return fmt.Errorf("%w: git add: %s", ErrRepository, trimOutput(out, err))
	}
	return nil
}

// Truncate cuts diff to at most max characters and marks the cut. It reports
// whether the diff was truncated. A non-positive max disables truncation.
func Truncate(diff string, max int) (string, bool) {
	if max <= 0 || utf8.RuneCountInString(diff) <= max {
		return diff, false
	}
	n := 0
	for i := range diff {
		if n == max {
			return diff[:i] + truncationMarker, true
		}
		n++
	}
	return diff, false
}
