package llm

import (
	"fmt"
	"strings"

	"github.com/tharlesamaro/git-ai/internal/committype"
)

var languageNames = map[string]string{
	"pt-BR": "Brazilian Portuguese",
	"es":    "Spanish",
	"fr":    "French",
	"de":    "German",
	"it":    "Italian",
	"ja":    "Japanese",
	"ko":    "Korean",
	"zh":    "Chinese",
}

// LanguageName maps a language code to the name used in prompts. Unknown
// codes are returned unchanged.
func LanguageName(code string) string {
	if code == "en" {
		return "English"
	}
	if name, ok := languageNames[code]; ok {
		return name
	}
	return code
}

// CommitPromptOptions are the project settings that shape the commit prompt.
type CommitPromptOptions struct {
	Language string
	Scopes   []string
	Types    []string
	// Body is the body policy: "always" makes the body mandatory.
	Body string
}

func languageInstruction(language string) string {
	if language == "" || language == "en" {
		return "8. Write the description and body in English."
	}
	return fmt.Sprintf("8. Write the description and body in %s. The type and scope MUST remain in English.", LanguageName(language))
}

func scopeInstruction(scopes []string) string {
	if len(scopes) == 0 {
		return "9. Choose an appropriate scope based on the files changed, or leave it empty if not applicable."
	}
	return fmt.Sprintf("9. The scope MUST be one of: %s. If none fits, leave the scope empty.", strings.Join(scopes, ", "))
}

func typesInstruction(types []string) string {
	if len(types) == 0 {
		return ""
	}
	return fmt.Sprintf("10. Only use these commit types: %s.", strings.Join(types, ", "))
}

func bodyInstruction(body string) string {
	if body == "always" {
		return "3. The `body` MUST always be provided. Explain WHAT changed and WHY (not HOW). Never leave it empty."
	}
	return "3. The `body` SHOULD explain WHAT changed and WHY (not HOW). Leave empty if the description is self-explanatory."
}

// BuildCommitPrompt renders the prompt asking for one commit message as JSON.
func BuildCommitPrompt(diff string, opts CommitPromptOptions) string {
	return fmt.Sprintf(`You are a Git commit message expert that strictly follows the Conventional Commits specification (v1.0.0).

Your task is to analyze a git diff and generate a precise, descriptive commit message.

## Conventional Commits Format
`+"```"+`
<type>[optional scope]: <description>

[optional body]

[optional footer(s)]
`+"```"+`

## Available commit types:
%s

## Rules:
1. The `+"`type`"+` MUST be one of the types listed above.
2. The `+"`description`"+` MUST be a short summary of the code changes (imperative mood, lowercase, no period at the end).
%s
4. Set `+"`is_breaking_change`"+` to true ONLY if the changes break backward compatibility.
5. Analyze the diff carefully to determine the most accurate type.
6. If multiple changes are present, focus on the primary change for the type.
7. Keep the description under 72 characters.
%s
%s
%s

You MUST respond with ONLY a valid JSON object (no markdown, no code fences, no extra text).
Use this exact structure:
{
    "type": "string",
    "scope": "string or empty string",
    "description": "string",
    "body": "string or empty string",
    "is_breaking_change": false
}

Analyze this git diff and generate a commit message:

`+"```diff"+`
%s
`+"```",
		committype.PromptDescription(),
		bodyInstruction(opts.Body),
		scopeInstruction(opts.Scopes),
		typesInstruction(opts.Types),
		languageInstruction(opts.Language),
		diff,
	)
}

// BuildChangelogPrompt renders the prompt asking for changelog sections as
// JSON. groupedCommits is appended verbatim.
func BuildChangelogPrompt(groupedCommits, language string) string {
	langInstruction := "Write in English."
	if language != "" && language != "en" {
		langInstruction = fmt.Sprintf("Write in the language identified by the code: %s. Keep technical terms in English.", language)
	}

	return fmt.Sprintf(`You are a changelog writer. You receive a list of git commits grouped by type and generate a clean, human-readable changelog.

## Rules:
1. For each commit, write a concise, user-friendly description of what changed.
2. Focus on the impact for the end user or developer, not implementation details.
3. Remove redundant or duplicate entries.
4. Keep each entry to a single line.
5. Do NOT include commit hashes, author names, or dates in the entries.
6. If a scope is present, keep it as a prefix in parentheses.
7. %s

You MUST respond with ONLY a valid JSON object (no markdown, no code fences, no extra text).
Use this exact structure:
{
    "sections": [
        {
            "type": "feat",
            "entries": ["Description of change 1", "Description of change 2"]
        }
    ]
}

%s`, langInstruction, groupedCommits)
}
