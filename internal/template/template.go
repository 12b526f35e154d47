// Package template resolves commit templates: named bundles of body and
// footer policy applied when formatting a generated commit message.
package template

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/tharlesamaro/git-ai/internal/config"
)

var (
	ErrUnknownTemplate   = errors.New("unknown commit template")
	ErrInvalidBodyPolicy = errors.New("invalid body preference")
)

// BodyPolicy controls whether a commit body is requested and kept.
type BodyPolicy string

const (
	BodyAuto   BodyPolicy = "auto"
	BodyAlways BodyPolicy = "always"
	BodyNever  BodyPolicy = "never"
)

var bodyPolicies = []BodyPolicy{BodyAuto, BodyAlways, BodyNever}

// ParseBodyPolicy validates s.
func ParseBodyPolicy(s string) (BodyPolicy, error) {
	p := BodyPolicy(s)
	if slices.Contains(bodyPolicies, p) {
		return p, nil
	}
	return "", fmt.Errorf("%w: %q, must be one of: auto, always, never", ErrInvalidBodyPolicy, s)
}

// Template is an immutable set of formatting choices. Derive new values with
// WithOverrides instead of mutating one.
type Template struct {
	body           BodyPolicy
	breakingChange bool
	coAuthoredBy   bool
	footerLines    []string
}

// New validates body and returns a Template. footerLines is copied.
func New(body string, breakingChange, coAuthoredBy bool, footerLines []string) (Template, error) {
	p, err := ParseBodyPolicy(body)
	if err != nil {
		return Template{}, err
	}
	return Template{
		body:           p,
		breakingChange: breakingChange,
		coAuthoredBy:   coAuthoredBy,
		footerLines:    slices.Clone(footerLines),
	}, nil
}

func (t Template) Body() BodyPolicy           { return t.body }
func (t Template) BreakingChangeFooter() bool { return t.breakingChange }
func (t Template) CoAuthoredBy() bool         { return t.coAuthoredBy }
func (t Template) FooterLines() []string      { return slices.Clone(t.footerLines) }

// Minimal is the built-in template without body or footers.
func Minimal() Template {
	return Template{body: BodyNever}
}

// Detailed is the built-in template that always asks for a body.
func Detailed() Template {
	return Template{body: BodyAlways, breakingChange: true}
}

// BuiltinNames lists the names of the built-in templates.
func BuiltinNames() []string {
	return []string{"minimal", "detailed"}
}

func builtin(name string) (Template, bool) {
	switch name {
	case "minimal":
		return Minimal(), true
	case "detailed":
		return Detailed(), true
	}
	return Template{}, false
}

// Resolve picks the template to use. An explicit name wins over the
// configured default; with neither, the template is built from the
// [commit] section. Built-in names shadow presets of the same name.
func Resolve(name string, cfg *config.Config) (Template, error) {
	if name == "" {
		name = cfg.Templates.Default
	}
	if name == "" {
		return FromCommitConfig(cfg.Commit)
	}

	if t, ok := builtin(name); ok {
		return t, nil
	}
	if preset, ok := cfg.Templates.Presets[name]; ok {
		t, err := FromPreset(preset)
		if err != nil {
			return Template{}, fmt.Errorf("template %q: %w", name, err)
		}
		return t, nil
	}

	presets := make([]string, 0, len(cfg.Templates.Presets))
	for p := range cfg.Templates.Presets {
		if _, shadowed := builtin(p); !shadowed {
			presets = append(presets, p)
		}
	}
	sort.Strings(presets)
	available := append(BuiltinNames(), presets...)
	return Template{}, fmt.Errorf("%w: %q, available: %s", ErrUnknownTemplate, name, strings.Join(available, ", "))
}

// FromCommitConfig builds a template from the [commit] section.
func FromCommitConfig(c config.CommitConfig) (Template, error) {
	return New(c.Body, c.Footer.BreakingChange, c.Footer.CoAuthoredBy, c.Footer.Lines)
}

// FromPreset builds a template from a user preset. Unset fields default to
// body auto, breaking-change footer on, co-author off and no extra lines.
func FromPreset(p config.Preset) (Template, error) {
	body := p.Body
	if body == "" {
		body = string(BodyAuto)
	}
	breaking := true
	if p.Footer.BreakingChange != nil {
		breaking = *p.Footer.BreakingChange
	}
	coAuthor := false
	if p.Footer.CoAuthoredBy != nil {
		coAuthor = *p.Footer.CoAuthoredBy
	}
	return New(body, breaking, coAuthor, p.Footer.Lines)
}

// Overrides are command-line adjustments to a resolved template.
type Overrides struct {
	// Body replaces the body policy when non-empty.
	Body string
	// ExtraFooterLines are appended after the template's own lines.
	ExtraFooterLines []string
}

// WithOverrides returns a copy of t with o applied. t is not modified.
func (t Template) WithOverrides(o Overrides) (Template, error) {
	body := t.body
	if o.Body != "" {
		p, err := ParseBodyPolicy(o.Body)
		if err != nil {
			return Template{}, err
		}
		body = p
	}
	lines := make([]string, 0, len(t.footerLines)+len(o.ExtraFooterLines))
	lines = append(lines, t.footerLines...)
	lines = append(lines, o.ExtraFooterLines...)
	return Template{
		body:           body,
		breakingChange: t.breakingChange,
		coAuthoredBy:   t.coAuthoredBy,
		footerLines:    lines,
	}, nil
}
