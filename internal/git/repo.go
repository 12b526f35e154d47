// Package git reads from and writes to a git repository through the git
// executable.
package git

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// ErrRepository wraps every failure reported by git.
var ErrRepository = errors.New("repository error")

// Repo runs git commands inside Dir. An empty Dir means the working directory.
type Repo struct {
	Dir string
}

// Open returns a Repo rooted at dir.
func Open(dir string) *Repo {
	return &Repo{Dir: dir}
}

func (r *Repo) command(args ...string) *exec.Cmd {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	return cmd
}

// output runs git and returns trimmed stdout. Failures carry git's stderr.
func (r *Repo) output(args ...string) (string, error) {
	var stderr bytes.Buffer
	cmd := r.command(args...)
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return "", fmt.Errorf("%w: git %s: %s", ErrRepository, args[0], msg)
	}
	return strings.TrimSpace(string(out)), nil
}

// IsRepo returns true if Dir is inside a git work tree.
func (r *Repo) IsRepo() bool {
	out, err := r.output("rev-parse", "--is-inside-work-tree")
	return err == nil && out == "true"
}

// HooksDir returns core.hooksPath or .git/hooks, creating it if needed.
func (r *Repo) HooksDir() (string, error) {
	dir, err := r.output("config", "core.hooksPath")
	if err != nil || dir == "" {
		gitDir, err := r.output("rev-parse", "--git-dir")
		if err != nil {
			return "", err
		}
		dir = filepath.Join(gitDir, "hooks")
	}
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(r.Dir, dir)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: create hooks dir: %v", ErrRepository, err)
	}
	return dir, nil
}
