// Package committype holds the closed set of Conventional Commits types and
// the metadata used to prompt for and render them.
//
// See https://www.conventionalcommits.org/en/v1.0.0/
package committype

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownType is returned when a string is not one of the known types.
var ErrUnknownType = errors.New("unknown commit type")

// Type is a Conventional Commits type.
type Type int

const (
	Feat Type = iota
	Fix
	Docs
	Style
	Refactor
	Perf
	Test
	Build
	CI
	Chore
	Revert
)

type info struct {
	value       string
	description string
	label       string
	emoji       string
}

// Indexed by Type; order is the declaration order used in prompts.
var table = [...]info{
	Feat:     {"feat", "A new feature", "Features", "✨"},
	Fix:      {"fix", "A bug fix", "Bug Fixes", "🐛"},
	Docs:     {"docs", "Documentation only changes", "Documentation", "📚"},
	Style:    {"style", "Changes that do not affect the meaning of the code (white-space, formatting, missing semi-colons, etc)", "Styles", "💎"},
	Refactor: {"refactor", "A code change that neither fixes a bug nor adds a feature", "Code Refactoring", "♻️"},
	Perf:     {"perf", "A code change that improves performance", "Performance Improvements", "⚡"},
	Test:     {"test", "Adding missing tests or correcting existing tests", "Tests", "🧪"},
	Build:    {"build", "Changes that affect the build system or external dependencies", "Build System", "📦"},
	CI:       {"ci", "Changes to CI configuration files and scripts", "Continuous Integration", "🔧"},
	Chore:    {"chore", "Other changes that do not modify src or test files", "Chores", "🔨"},
	Revert:   {"revert", "Reverts a previous commit", "Reverts", "⏪"},
}

// Parse returns the Type for s. The match is exact: "Feat" is not "feat".
func Parse(s string) (Type, error) {
	for i, t := range table {
		if t.value == s {
			return Type(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownType, s)
}

func (t Type) valid() bool {
	return t >= 0 && int(t) < len(table)
}

func (t Type) String() string {
	if !t.valid() {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return table[t].value
}

// Description returns the one-line explanation used in prompts.
func (t Type) Description() string {
	if !t.valid() {
		return ""
	}
	return table[t].description
}

// Label returns the changelog heading for the type.
func (t Type) Label() string {
	if !t.valid() {
		return ""
	}
	return table[t].label
}

func (t Type) Emoji() string {
	if !t.valid() {
		return ""
	}
	return table[t].emoji
}

// All returns every type in declaration order.
func All() []Type {
	out := make([]Type, len(table))
	for i := range table {
		out[i] = Type(i)
	}
	return out
}

// Values returns the string form of every type in declaration order.
func Values() []string {
	out := make([]string, len(table))
	for i, t := range table {
		out[i] = t.value
	}
	return out
}

// PromptDescription renders one "- <value>: <description>" line per type.
func PromptDescription() string {
	lines := make([]string, len(table))
	for i, t := range table {
		lines[i] = fmt.Sprintf("- %s: %s", t.value, t.description)
	}
	return strings.Join(lines, "\n")
}
