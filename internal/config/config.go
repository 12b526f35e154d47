package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// ErrInvalidConfig is returned for unreadable files, bad TOML and bad
// environment values.
var ErrInvalidConfig = errors.New("invalid configuration")

// FooterConfig controls the footer block of generated commit messages.
type FooterConfig struct {
	BreakingChange bool     `toml:"breaking_change" yaml:"breaking_change"`
	CoAuthoredBy   bool     `toml:"co_authored_by" yaml:"co_authored_by"`
	Lines          []string `toml:"lines" yaml:"lines"`
}

// CommitConfig is used as the template when no named template is selected.
type CommitConfig struct {
	Body   string       `toml:"body" yaml:"body"`
	Footer FooterConfig `toml:"footer" yaml:"footer"`
}

// PresetFooter mirrors FooterConfig; nil fields fall back to template defaults.
type PresetFooter struct {
	BreakingChange *bool    `toml:"breaking_change,omitempty" yaml:"breaking_change,omitempty"`
	CoAuthoredBy   *bool    `toml:"co_authored_by,omitempty" yaml:"co_authored_by,omitempty"`
	Lines          []string `toml:"lines,omitempty" yaml:"lines,omitempty"`
}

// Preset is a user-defined commit template.
type Preset struct {
	Body   string       `toml:"body,omitempty" yaml:"body,omitempty"`
	Footer PresetFooter `toml:"footer" yaml:"footer"`
}

type TemplatesConfig struct {
	Default string            `toml:"default,omitempty" yaml:"default,omitempty"`
	Presets map[string]Preset `toml:"presets,omitempty" yaml:"presets,omitempty"`
}

type ChangelogConfig struct {
	Path       string `toml:"path" yaml:"path"`
	WithEmojis bool   `toml:"with_emojis" yaml:"with_emojis"`
}

// HookConfig controls the commit-msg hook. Strict hooks reject
// non-conforming messages, lenient ones only warn.
type HookConfig struct {
	Enabled bool `toml:"enabled" yaml:"enabled"`
	Strict  bool `toml:"strict" yaml:"strict"`
}

// Config is the resolved configuration for one command invocation.
type Config struct {
	Provider    string          `toml:"provider" yaml:"provider"`
	Model       string          `toml:"model,omitempty" yaml:"model,omitempty"`
	BaseURL     string          `toml:"base_url,omitempty" yaml:"base_url,omitempty"`
	Language    string          `toml:"language" yaml:"language"`
	Scopes      []string        `toml:"scopes" yaml:"scopes"`
	Types       []string        `toml:"types" yaml:"types"`
	MaxDiffSize int             `toml:"max_diff_size" yaml:"max_diff_size"`
	Commit      CommitConfig    `toml:"commit" yaml:"commit"`
	Templates   TemplatesConfig `toml:"templates" yaml:"templates"`
	Changelog   ChangelogConfig `toml:"changelog" yaml:"changelog"`
	Hook        HookConfig      `toml:"hook" yaml:"hook"`

	// Sources lists the files merged into this config, lowest precedence first.
	Sources []string `toml:"-" yaml:"-"`
}

// fileLayout is the on-disk shape: everything lives under [git-ai].
type fileLayout struct {
	GitAI Config `toml:"git-ai"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Provider:    "anthropic",
		Language:    "en",
		Scopes:      []string{},
		Types:       []string{},
		MaxDiffSize: 15000,
		Commit: CommitConfig{
			Body: "auto",
			Footer: FooterConfig{
				BreakingChange: true,
				Lines:          []string{},
			},
		},
		Templates: TemplatesConfig{
			Presets: map[string]Preset{},
		},
		Changelog: ChangelogConfig{
			Path:       "CHANGELOG.md",
			WithEmojis: true,
		},
		Hook: HookConfig{
			Strict: true,
		},
	}
}

// Write stores cfg at path in the [git-ai] layout.
func Write(path string, cfg *Config) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(fileLayout{GitAI: *cfg}); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
