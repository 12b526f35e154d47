package hook

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/tharlesamaro/git-ai/internal/committype"
	"github.com/tharlesamaro/git-ai/internal/config"
)

const maxHeaderLen = 72

type Severity int

const (
	Warning Severity = iota
	Error
)

func (s Severity) String() string {
	if s == Error {
		return "error"
	}
	return "warning"
}

// Problem is one finding reported by Lint.
type Problem struct {
	Severity Severity
	Message  string
}

func (p Problem) String() string {
	return p.Severity.String() + ": " + p.Message
}

// HasErrors reports whether any problem is an error.
func HasErrors(problems []Problem) bool {
	return slices.ContainsFunc(problems, func(p Problem) bool { return p.Severity == Error })
}

// Messages generated by git itself are not linted.
var autoPrefixes = []string{"Merge ", "Revert \"", "fixup! ", "squash! ", "amend! "}

// Lint checks message against the Conventional Commits header grammar and
// the scopes and types configured in cfg. Lines starting with '#' are
// ignored, as git strips them.
func Lint(message string, cfg *config.Config) []Problem {
	lines := cleanLines(message)
	if len(lines) == 0 {
		return []Problem{{Severity: Error, Message: "commit message is empty"}}
	}

	header := lines[0]
	for _, prefix := range autoPrefixes {
		if strings.HasPrefix(header, prefix) {
			return nil
		}
	}

	var problems []Problem
	add := func(sev Severity, format string, args ...any) {
		problems = append(problems, Problem{Severity: sev, Message: fmt.Sprintf(format, args...)})
	}

	h, ok := committype.ParseHeader(header)
	if !ok {
		add(Error, "header %q does not match \"type(scope)!: description\"", header)
	} else {
		if len(cfg.Types) > 0 {
			if !slices.Contains(cfg.Types, h.Type) {
				add(Error, "type %q is not allowed, use one of: %s", h.Type, strings.Join(cfg.Types, ", "))
			}
		} else if _, err := committype.Parse(h.Type); err != nil {
			add(Error, "unknown type %q, use one of: %s", h.Type, strings.Join(committype.Values(), ", "))
		}
		if len(cfg.Scopes) > 0 && h.Scope != "" && !slices.Contains(cfg.Scopes, h.Scope) {
			add(Error, "scope %q is not allowed, use one of: %s", h.Scope, strings.Join(cfg.Scopes, ", "))
		}
	}

	if n := utf8.RuneCountInString(header); n > maxHeaderLen {
		add(Warning, "header is %d characters, keep it under %d", n, maxHeaderLen)
	}
	if len(lines) > 1 && strings.TrimSpace(lines[1]) != "" {
		add(Error, "separate the header from the body with a blank line")
	}
	return problems
}

// cleanLines drops comment lines, everything below a scissors line and
// surrounding blank lines.
func cleanLines(message string) []string {
	var lines []string
	for _, line := range strings.Split(strings.ReplaceAll(message, "\r\n", "\n"), "\n") {
		if strings.HasPrefix(line, "# ------------------------ >8 ------------------------") {
			break
		}
		if strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, strings.TrimRight(line, " \t"))
	}
	for len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
