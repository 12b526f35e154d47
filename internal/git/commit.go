package git

import (
	"fmt"
	"strings"
)

// Commit is one entry of git log.
type Commit struct {
	Hash    string
	Message string
}

// Commit creates a git commit with the given message.
func (r *Repo) Commit(message string) error {
	out, err := r.command("commit", "-m", message).CombinedOutput()
	if err != nil {
		return fmt.Errorf("%w: git commit: %s", ErrRepository, trimOutput(out, err))
	}
	return nil
}

// CommitsBetween returns the commits in from..to, newest first, with their
// subject lines. Malformed log lines are skipped.
func (r *Repo) CommitsBetween(from, to string) ([]Commit, error) {
	if to == "" {
		to = "HEAD"
	}
	out, err := r.output("log", from+".."+to, "--pretty=format:%H|%s")
	if err != nil {
		return nil, err
	}
	if out == "" {
		return nil, nil
	}

	var commits []Commit
	for _, line := range strings.Split(out, "\n") {
		hash, msg, ok := strings.Cut(line, "|")
		if !ok || hash == "" || msg == "" {
			continue
		}
		commits = append(commits, Commit{Hash: hash, Message: msg})
	}
	return commits, nil
}

// LatestTag returns the most recent tag reachable from HEAD.
// Returns an empty string if no tags exist.
func (r *Repo) LatestTag() string {
	out, err := r.output("describe", "--tags", "--abbrev=0")
	if err != nil {
		return ""
	}
	return out
}

// FirstCommit returns the hash of the root commit, or "" for an empty repo.
func (r *Repo) FirstCommit() string {
	out, err := r.output("rev-list", "--max-parents=0", "HEAD")
	if err != nil || out == "" {
		return ""
	}
	first, _, _ := strings.Cut(out, "\n")
	return first
}

func trimOutput(out []byte, err error) string {
	if s := strings.TrimSpace(string(out)); s != "" {
		return s
	}
	return err.Error()
}
