package setup

import (
	"maps"
	"slices"
	"strings"

	"github.com/tharlesamaro/git-ai/internal/committype"
	"github.com/tharlesamaro/git-ai/internal/config"
	"github.com/tharlesamaro/git-ai/internal/llm"
)

// Answers collects the wizard's choices.
type Answers struct {
	Provider    string
	Model       string
	BaseURL     string
	Language    string
	Scopes      []string
	Types       []string
	Body        string
	InstallHook bool
}

// Config returns base with the wizard's answers applied. Settings the wizard
// does not ask about, such as presets or the changelog path, keep base's
// values. A nil base starts from the defaults.
func (a Answers) Config(base *config.Config) *config.Config {
	if base == nil {
		base = config.DefaultConfig()
	}
	cfg := *base
	cfg.Templates.Presets = maps.Clone(base.Templates.Presets)
	cfg.Commit.Footer.Lines = slices.Clone(base.Commit.Footer.Lines)
	cfg.Sources = nil
	cfg.Provider = a.Provider
	cfg.Model = strings.TrimSpace(a.Model)
	cfg.BaseURL = strings.TrimSpace(a.BaseURL)
	cfg.Language = a.Language
	cfg.Scopes = nonNil(a.Scopes)
	cfg.Types = nonNil(a.Types)
	if a.Body != "" {
		cfg.Commit.Body = a.Body
	}
	cfg.Hook.Enabled = a.InstallHook
	return &cfg
}

// EnvHints lists the environment variables to export for provider.
func EnvHints(provider, language string) []string {
	var hints []string
	if env := llm.APIKeyEnv(provider); env != "" {
		hints = append(hints, env+"=your-api-key")
	}
	hints = append(hints, "GIT_AI_PROVIDER="+provider, "GIT_AI_LANGUAGE="+language)
	switch provider {
	case "claude-code":
		hints = append(hints, "", "No API key required. Make sure Claude Code CLI is installed and configured.")
	case "ollama":
		hints = append(hints, "", "No API key required. Make sure the Ollama server is running.")
	}
	return hints
}

// ParseList splits a comma-separated answer, dropping blanks.
func ParseList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// FilterTypes keeps only registered commit types.
func FilterTypes(types []string) []string {
	valid := committype.Values()
	var out []string
	for _, t := range types {
		if slices.Contains(valid, t) {
			out = append(out, t)
		}
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
