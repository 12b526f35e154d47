// Package hook installs the commit-msg hook and lints commit messages
// against the Conventional Commits grammar.
package hook

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrHookExists is returned when a commit-msg hook not written by git-ai is
// already installed.
var ErrHookExists = errors.New("commit-msg hook already exists")

const marker = "# installed by git-ai"

// Script is the commit-msg hook body.
const Script = `#!/bin/sh
` + marker + `
# Validates the commit message against Conventional Commits.
command -v git-ai >/dev/null 2>&1 || exit 0
exec git-ai lint --file "$1"
`

// Install writes the commit-msg hook into hooksDir and returns its path.
// A hook previously installed by git-ai is replaced; any other hook is kept
// unless force is set.
func Install(hooksDir string, force bool) (string, error) {
	path := filepath.Join(hooksDir, "commit-msg")

	existing, err := os.ReadFile(path)
	switch {
	case err == nil:
		if !force && !strings.Contains(string(existing), marker) {
			return "", fmt.Errorf("%w at %s, use --force to replace it", ErrHookExists, path)
		}
	case !os.IsNotExist(err):
		return "", fmt.Errorf("failed to read existing hook: %w", err)
	}

	if err := os.WriteFile(path, []byte(Script), 0o755); err != nil {
		return "", fmt.Errorf("failed to write hook: %w", err)
	}
	// WriteFile keeps the mode of an existing file.
	if err := os.Chmod(path, 0o755); err != nil {
		return "", fmt.Errorf("failed to make hook executable: %w", err)
	}
	return path, nil
}
