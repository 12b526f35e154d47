package changelog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tharlesamaro/git-ai/internal/committype"
	"github.com/tharlesamaro/git-ai/internal/git"
)

// DefaultTag is suggested when the repository has no semver tag yet.
const DefaultTag = "v1.0.0"

// SuggestVersion proposes the tag for a release containing commits. Features
// and breaking changes bump the minor version, anything else the patch.
func SuggestVersion(latestTag string, commits []git.Commit) string {
	major, minor, patch, ok := parseTagVersion(latestTag)
	if !ok {
		return DefaultTag
	}
	for _, c := range commits {
		h, ok := committype.ParseHeader(c.Message)
		if ok && (h.Breaking || h.Type == committype.Feat.String()) {
			return formatTagVersion(major, minor+1, 0)
		}
	}
	return formatTagVersion(major, minor, patch+1)
}

// parseTagVersion reads vMAJOR.MINOR.PATCH, ignoring any pre-release or
// build suffix.
func parseTagVersion(tag string) (major, minor, patch int, ok bool) {
	tag = strings.TrimLeft(strings.TrimSpace(tag), "vV")
	if i := strings.IndexAny(tag, "-+"); i >= 0 {
		tag = tag[:i]
	}

	parts := strings.Split(tag, ".")
	if len(parts) != 3 {
		return 0, 0, 0, false
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return 0, 0, 0, false
		}
		nums[i] = n
	}
	return nums[0], nums[1], nums[2], true
}

func formatTagVersion(major, minor, patch int) string {
	return fmt.Sprintf("v%d.%d.%d", major, minor, patch)
}
