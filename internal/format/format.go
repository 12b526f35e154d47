// Package format renders generated commit messages and changelog blocks.
package format

import (
	"fmt"
	"slices"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/tharlesamaro/git-ai/internal/committype"
	"github.com/tharlesamaro/git-ai/internal/config"
	"github.com/tharlesamaro/git-ai/internal/llm"
	"github.com/tharlesamaro/git-ai/internal/template"
)

// now is replaced in tests.
var now = time.Now

// CommitMessage assembles the final commit message. A type outside the
// configured allow-list becomes the first allowed type, and a disallowed
// scope is dropped.
func CommitMessage(c llm.GeneratedCommit, tpl template.Template, cfg *config.Config) string {
	commitType := c.Type
	if len(cfg.Types) > 0 && !slices.Contains(cfg.Types, commitType) {
		commitType = cfg.Types[0]
	}
	scope := c.Scope
	if len(cfg.Scopes) > 0 && scope != "" && !slices.Contains(cfg.Scopes, scope) {
		scope = ""
	}
	body := c.Body
	if tpl.Body() == template.BodyNever {
		body = ""
	}

	var b strings.Builder
	b.WriteString(commitType)
	if scope != "" {
		b.WriteString("(" + scope + ")")
	}
	if c.IsBreakingChange {
		b.WriteString("!")
	}
	b.WriteString(": " + c.Description)

	if body != "" {
		b.WriteString("\n\n" + body)
	}

	var footers []string
	if c.IsBreakingChange && tpl.BreakingChangeFooter() {
		footers = append(footers, "BREAKING CHANGE: "+c.Description)
	}
	if tpl.CoAuthoredBy() {
		model := cfg.Model
		if model == "" {
			model = llm.CoAuthorName(cfg.Provider)
		}
		footers = append(footers, fmt.Sprintf("Co-Authored-By: %s <noreply@%s.com>", model, cfg.Provider))
	}
	footers = append(footers, tpl.FooterLines()...)

	if len(footers) > 0 {
		b.WriteString("\n\n" + strings.Join(footers, "\n"))
	}
	return b.String()
}

// ChangelogBlock renders one release section. Sections and entries keep
// their input order; empty sections are skipped.
func ChangelogBlock(versionTag string, sections []llm.ChangelogSection, cfg *config.Config) string {
	lines := []string{fmt.Sprintf("## [%s] - %s", versionTag, now().Format(time.DateOnly)), ""}

	for _, s := range sections {
		if len(s.Entries) == 0 {
			continue
		}

		var label, emoji string
		if t, err := committype.Parse(s.Type); err == nil {
			label = t.Label()
			if cfg.Changelog.WithEmojis {
				emoji = t.Emoji() + " "
			}
		} else {
			label = capitalize(s.Type)
		}

		lines = append(lines, "### "+emoji+label, "")
		for _, e := range s.Entries {
			lines = append(lines, "- "+e)
		}
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// capitalize upper-cases the first letter and lower-cases the rest.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
