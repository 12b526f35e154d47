package llm

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

// GeneratedCommit is the structured commit message returned by a provider.
type GeneratedCommit struct {
	Type             string `json:"type"`
	Scope            string `json:"scope"`
	Description      string `json:"description"`
	Body             string `json:"body"`
	IsBreakingChange bool   `json:"is_breaking_change"`
}

// ChangelogSection is one type-grouped block of changelog entries.
type ChangelogSection struct {
	Type    string   `json:"type"`
	Entries []string `json:"entries"`
}

// Provider is the interface that all LLM providers must implement.
type Provider interface {
	// GenerateCommitMessage asks the model for a commit message describing diff.
	GenerateCommitMessage(ctx context.Context, diff string) (*GeneratedCommit, error)
	// GenerateChangelog turns grouped commit subjects into changelog sections,
	// in the order the model returned them.
	GenerateChangelog(ctx context.Context, groupedCommits string) ([]ChangelogSection, error)
}

var commitKeys = []string{"type", "scope", "description", "body", "is_breaking_change"}

// maxTokens caps every completion; the JSON replies are short.
const maxTokens = 1024

// completeFunc sends one prompt and returns the raw reply text.
type completeFunc func(ctx context.Context, prompt string) (string, error)

func generateCommit(ctx context.Context, complete completeFunc, diff string, opts CommitPromptOptions) (*GeneratedCommit, error) {
	prompt := BuildCommitPrompt(diff, opts)
	log.Debug().Int("prompt_bytes", len(prompt)).Msg("requesting commit message")

	raw, err := complete(ctx, prompt)
	if err != nil {
		return nil, err
	}
	log.Debug().Int("response_bytes", len(raw)).Msg("received commit message")

	data, err := Normalize(raw, commitKeys...)
	if err != nil {
		return nil, err
	}
	return &GeneratedCommit{
		Type:             stringField(data, "type"),
		Scope:            stringField(data, "scope"),
		Description:      stringField(data, "description"),
		Body:             stringField(data, "body"),
		IsBreakingChange: boolField(data, "is_breaking_change"),
	}, nil
}

func generateChangelog(ctx context.Context, complete completeFunc, groupedCommits, language string) ([]ChangelogSection, error) {
	prompt := BuildChangelogPrompt(groupedCommits, language)
	log.Debug().Int("prompt_bytes", len(prompt)).Msg("requesting changelog")

	raw, err := complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	data, err := Normalize(raw, "sections")
	if err != nil {
		return nil, err
	}
	return sectionsFrom(data["sections"])
}

func sectionsFrom(v any) ([]ChangelogSection, error) {
	if v == nil {
		return nil, nil
	}
	items, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: \"sections\" is %T, want a list", ErrMalformedResponse, v)
	}

	sections := make([]ChangelogSection, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		section := ChangelogSection{Type: stringField(obj, "type")}
		if section.Type == "" {
			section.Type = "other"
		}
		if entries, ok := obj["entries"].([]any); ok {
			for _, e := range entries {
				if s, ok := e.(string); ok && s != "" {
					section.Entries = append(section.Entries, s)
				}
			}
		}
		sections = append(sections, section)
	}
	return sections, nil
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

func boolField(m map[string]any, key string) bool {
	switch v := m[key].(type) {
	case bool:
		return v
	case string:
		return v == "true"
	default:
		return false
	}
}
