// Package changelog groups commits for the changelog prompt, suggests the
// next version tag and writes release blocks into the changelog file.
package changelog

import (
	"fmt"
	"os"
	"strings"

	"github.com/tharlesamaro/git-ai/internal/committype"
	"github.com/tharlesamaro/git-ai/internal/git"
)

// Header opens every changelog file written by Prepend.
const Header = "# Changelog\n\nAll notable changes to this project will be documented in this file.\n\n"

const otherType = "other"

// Group holds the subjects of commits sharing a type.
type Group struct {
	Type     string
	Messages []string
}

// GroupCommits buckets commit subjects by their lowercased Conventional
// Commits type. Non-conforming subjects go to "other". Groups appear in
// order of first occurrence and keep commit order.
func GroupCommits(commits []git.Commit) []Group {
	var groups []Group
	index := map[string]int{}
	for _, c := range commits {
		typ := otherType
		if h, ok := committype.ParseHeader(c.Message); ok {
			typ = h.Type
		}
		i, ok := index[typ]
		if !ok {
			i = len(groups)
			index[typ] = i
			groups = append(groups, Group{Type: typ})
		}
		groups[i].Messages = append(groups[i].Messages, c.Message)
	}
	return groups
}

// PromptText renders groups as the input block for the changelog prompt.
func PromptText(groups []Group) string {
	var b strings.Builder
	b.WriteString("Generate a changelog from these grouped commits:\n\n")
	for _, g := range groups {
		fmt.Fprintf(&b, "## %s\n", g.Type)
		for _, m := range g.Messages {
			fmt.Fprintf(&b, "- %s\n", m)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Prepend writes block to the file at path, directly under Header and above
// earlier releases. An existing header, i.e. everything before the first
// release heading, is replaced.
func Prepend(path, block string) error {
	existing, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to read changelog: %w", err)
	}

	content := Header + block + stripHeader(string(existing))
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write changelog: %w", err)
	}
	return nil
}

func stripHeader(existing string) string {
	if !strings.HasPrefix(existing, "# Changelog\n") {
		return existing
	}
	if i := strings.Index(existing, "## ["); i >= 0 {
		return existing[i:]
	}
	return strings.TrimPrefix(existing, Header)
}
