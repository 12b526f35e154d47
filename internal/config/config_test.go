package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadDefaultsWhenNoFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg, err := Load(LoadOptions{
		Dir:        dir,
		GlobalPath: filepath.Join(dir, "missing.toml"),
		Env:        []string{},
	})
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	def := DefaultConfig()
	if cfg.Provider != def.Provider || cfg.Language != "en" || cfg.MaxDiffSize != 15000 {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
	if cfg.Commit.Body != "auto" || !cfg.Commit.Footer.BreakingChange || cfg.Commit.Footer.CoAuthoredBy {
		t.Fatalf("commit defaults got %+v", cfg.Commit)
	}
	if cfg.Changelog.Path != "CHANGELOG.md" || !cfg.Changelog.WithEmojis {
		t.Fatalf("changelog defaults got %+v", cfg.Changelog)
	}
	if len(cfg.Sources) != 0 {
		t.Fatalf("sources got %v want none", cfg.Sources)
	}
}

func TestLoadLayersGlobalRepoAndEnv(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	global := filepath.Join(root, "global", "config.toml")
	writeFile(t, global, `
[git-ai]
provider = "openai"
model = "gpt-4o-mini"
language = "fr"

[git-ai.changelog]
with_emojis = false

[git-ai.templates.presets.global]
body = "never"
`)

	repo := filepath.Join(root, "repo")
	writeFile(t, filepath.Join(repo, RepoFileName), `
[git-ai]
language = "pt-BR"
scopes = ["api", "cli"]

[git-ai.commit.footer]
lines = ["Signed-off-by: Dev <dev@example.com>"]

[git-ai.templates.presets.team]
body = "always"

[git-ai.templates.presets.team.footer]
breaking_change = false
lines = ["Reviewed-by: team"]
`)

	nested := filepath.Join(repo, "internal", "pkg")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(LoadOptions{
		Dir:        nested,
		GlobalPath: global,
		Env:        []string{"GIT_AI_MODEL=gpt-4.1", "GIT_AI_CO_AUTHORED_BY=yes", "GIT_AI_TEMPLATE=team"},
	})
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if cfg.Provider != "openai" {
		t.Fatalf("provider got %q want openai", cfg.Provider)
	}
	if cfg.Model != "gpt-4.1" {
		t.Fatalf("model got %q want env override", cfg.Model)
	}
	if cfg.Language != "pt-BR" {
		t.Fatalf("language got %q want repo value", cfg.Language)
	}
	if len(cfg.Scopes) != 2 || cfg.Scopes[1] != "cli" {
		t.Fatalf("scopes got %v", cfg.Scopes)
	}
	if cfg.Changelog.WithEmojis {
		t.Fatalf("with_emojis should come from global file")
	}
	if cfg.Changelog.Path != "CHANGELOG.md" {
		t.Fatalf("changelog path got %q want default", cfg.Changelog.Path)
	}
	if !cfg.Commit.Footer.BreakingChange {
		t.Fatalf("breaking_change default lost by partial footer table")
	}
	if !cfg.Commit.Footer.CoAuthoredBy {
		t.Fatalf("co_authored_by env override not applied")
	}
	if cfg.Templates.Default != "team" {
		t.Fatalf("template default got %q", cfg.Templates.Default)
	}
	if _, ok := cfg.Templates.Presets["global"]; !ok {
		t.Fatalf("global preset dropped by repo layer: %v", cfg.Templates.Presets)
	}
	team, ok := cfg.Templates.Presets["team"]
	if !ok {
		t.Fatalf("team preset missing")
	}
	if team.Body != "always" || team.Footer.BreakingChange == nil || *team.Footer.BreakingChange {
		t.Fatalf("team preset got %+v", team)
	}
	if team.Footer.CoAuthoredBy != nil {
		t.Fatalf("unset preset field should stay nil")
	}
	if len(cfg.Sources) != 2 {
		t.Fatalf("sources got %v want 2 entries", cfg.Sources)
	}
}

func TestLoadRejectsInvalidToml(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, RepoFileName), "[git-ai\nprovider = ")

	_, err := Load(LoadOptions{Dir: dir, GlobalPath: filepath.Join(dir, "none.toml"), Env: []string{}})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("err got %v want ErrInvalidConfig", err)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		env     map[string]string
		check   func(*Config) bool
		wantErr bool
	}{
		{
			name:  "max diff size",
			env:   map[string]string{envMaxDiffSize: "2000"},
			check: func(c *Config) bool { return c.MaxDiffSize == 2000 },
		},
		{
			name:    "max diff size invalid",
			env:     map[string]string{envMaxDiffSize: "lots"},
			wantErr: true,
		},
		{
			name:    "max diff size negative",
			env:     map[string]string{envMaxDiffSize: "-5"},
			wantErr: true,
		},
		{
			name:  "commit body",
			env:   map[string]string{envCommitBody: "never"},
			check: func(c *Config) bool { return c.Commit.Body == "never" },
		},
		{
			name:  "co authored by false value",
			env:   map[string]string{envCoAuthoredBy: "no"},
			check: func(c *Config) bool { return !c.Commit.Footer.CoAuthoredBy },
		},
		{
			name:  "co authored by numeric",
			env:   map[string]string{envCoAuthoredBy: "1"},
			check: func(c *Config) bool { return c.Commit.Footer.CoAuthoredBy },
		},
		{
			name:  "provider and base url",
			env:   map[string]string{envProvider: "ollama", envBaseURL: "http://gpu:11434"},
			check: func(c *Config) bool { return c.Provider == "ollama" && c.BaseURL == "http://gpu:11434" },
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			err := applyEnv(cfg, func(k string) string { return tc.env[k] })
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidConfig) {
					t.Fatalf("err got %v want ErrInvalidConfig", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tc.check(cfg) {
				t.Fatalf("env %v not applied: %+v", tc.env, cfg)
			}
		})
	}
}

func TestGlobalPathHonorsOverride(t *testing.T) {
	t.Parallel()

	got := globalPath(func(k string) string {
		if k == envConfigPath {
			return "/tmp/custom.toml"
		}
		return ""
	})
	if got != "/tmp/custom.toml" {
		t.Fatalf("globalPath got %q", got)
	}

	def := globalPath(func(string) string { return "" })
	if filepath.Base(def) != configFile || filepath.Base(filepath.Dir(def)) != appName {
		t.Fatalf("default global path got %q", def)
	}
}

func TestWriteRoundTripsThroughLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.Provider = "claude-code"
	cfg.Language = "ja"
	cfg.Types = []string{"feat", "fix"}
	cfg.Hook.Enabled = true

	if err := Write(filepath.Join(dir, RepoFileName), cfg); err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	got, err := Load(LoadOptions{Dir: dir, GlobalPath: filepath.Join(dir, "none.toml"), Env: []string{}})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got.Provider != "claude-code" || got.Language != "ja" || !got.Hook.Enabled {
		t.Fatalf("written config not loaded back: %+v", got)
	}
	if len(got.Types) != 2 || got.Types[0] != "feat" {
		t.Fatalf("types got %v", got.Types)
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	missing, err := LoadFile(filepath.Join(dir, RepoFileName))
	if err != nil {
		t.Fatalf("LoadFile() missing file error: %v", err)
	}
	if missing.Provider != "anthropic" || len(missing.Sources) != 0 {
		t.Fatalf("missing file got %+v want defaults", missing)
	}

	path := filepath.Join(dir, RepoFileName)
	writeFile(t, path, `
[git-ai.changelog]
path = "docs/CHANGES.md"

[git-ai.templates]
default = "team"
`)
	got, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}
	if got.Changelog.Path != "docs/CHANGES.md" || got.Templates.Default != "team" {
		t.Fatalf("file values not loaded: %+v", got)
	}
	if got.MaxDiffSize != 15000 {
		t.Fatalf("max diff size got %d want 15000", got.MaxDiffSize)
	}
}
