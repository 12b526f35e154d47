package committype

import (
	"regexp"
	"strings"
)

var headerPattern = regexp.MustCompile(`(?i)^([a-z]+)(?:\(([^)]+)\))?(!)?:\s*(.+)$`)

// Header is the parsed first line of a Conventional Commits message.
type Header struct {
	Type        string // lowercased; not checked against the known types
	Scope       string
	Breaking    bool
	Description string
}

// ParseHeader parses "type(scope)!: description". It reports false when the
// line does not follow the grammar.
func ParseHeader(line string) (Header, bool) {
	m := headerPattern.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return Header{}, false
	}
	return Header{
		Type:        strings.ToLower(m[1]),
		Scope:       m[2],
		Breaking:    m[3] == "!",
		Description: strings.TrimSpace(m[4]),
	}, true
}
