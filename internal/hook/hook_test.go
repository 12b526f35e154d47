package hook

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tharlesamaro/git-ai/internal/config"
)

func TestInstall(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path, err := Install(dir, false)
	if err != nil {
		t.Fatalf("Install() error: %v", err)
	}
	if path != filepath.Join(dir, "commit-msg") {
		t.Fatalf("path got %q", path)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm()&0o100 == 0 {
		t.Fatalf("hook not executable: %v", info.Mode())
	}
	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), `git-ai lint --file "$1"`) {
		t.Fatalf("hook script got %q", data)
	}

	// Reinstalling over our own hook is fine.
	if _, err := Install(dir, false); err != nil {
		t.Fatalf("reinstall error: %v", err)
	}
}

func TestInstallKeepsForeignHook(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "commit-msg")
	if err := os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Install(dir, false); !errors.Is(err, ErrHookExists) {
		t.Fatalf("err got %v want ErrHookExists", err)
	}
	if _, err := Install(dir, true); err != nil {
		t.Fatalf("forced install error: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm()&0o100 == 0 {
		t.Fatalf("forced hook not executable: %v", info.Mode())
	}
}

func TestLint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		message   string
		cfg       func(*config.Config)
		wantErr   bool
		wantCount int
		contains  string
	}{
		{name: "valid", message: "feat(api): add users endpoint\n\nBody text.\n"},
		{name: "valid breaking", message: "refactor!: drop legacy flags"},
		{name: "comments ignored", message: "fix: handle nil\n# Please enter the commit message\n#\n"},
		{name: "merge skipped", message: "Merge branch 'main' into dev"},
		{name: "fixup skipped", message: "fixup! feat: add x"},
		{name: "empty", message: "# only comments\n\n", wantErr: true, wantCount: 1, contains: "empty"},
		{name: "no type", message: "Update readme", wantErr: true, wantCount: 1, contains: "does not match"},
		{name: "unknown type", message: "feature: add x", wantErr: true, wantCount: 1, contains: "unknown type"},
		{
			name: "type allow-list", message: "docs: update", wantErr: true, wantCount: 1, contains: "not allowed",
			cfg: func(c *config.Config) { c.Types = []string{"feat", "fix"} },
		},
		{
			name: "scope allow-list", message: "fix(db): close rows", wantErr: true, wantCount: 1, contains: `scope "db"`,
			cfg: func(c *config.Config) { c.Scopes = []string{"api", "ui"} },
		},
		{name: "long header warns", message: "feat: " + strings.Repeat("a", 80), wantCount: 1, contains: "characters"},
		{name: "missing blank line", message: "fix: a\nbody right away", wantErr: true, wantCount: 1, contains: "blank line"},
		{name: "scissors", message: "fix: a\n# ------------------------ >8 ------------------------\ndiff --git a b\n"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg := config.DefaultConfig()
			if tc.cfg != nil {
				tc.cfg(cfg)
			}
			problems := Lint(tc.message, cfg)
			if len(problems) != tc.wantCount {
				t.Fatalf("problems got %v want %d", problems, tc.wantCount)
			}
			if HasErrors(problems) != tc.wantErr {
				t.Fatalf("HasErrors got %v want %v (%v)", HasErrors(problems), tc.wantErr, problems)
			}
			if tc.contains != "" && !strings.Contains(problems[0].Message, tc.contains) {
				t.Fatalf("problem %q does not contain %q", problems[0].Message, tc.contains)
			}
		})
	}
}
