package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// AnthropicProvider implements Provider using the official Anthropic SDK.
type AnthropicProvider struct {
	client *anthropic.Client
	model  string
	prompt CommitPromptOptions
}

// NewAnthropicProvider creates a provider for the Anthropic API.
func NewAnthropicProvider(apiKey, model string, prompt CommitPromptOptions, opts ...option.RequestOption) *AnthropicProvider {
	client := anthropic.NewClient(append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)...)
	return &AnthropicProvider{client: &client, model: model, prompt: prompt}
}

func (p *AnthropicProvider) GenerateCommitMessage(ctx context.Context, diff string) (*GeneratedCommit, error) {
	return generateCommit(ctx, p.complete, diff, p.prompt)
}

func (p *AnthropicProvider) GenerateChangelog(ctx context.Context, groupedCommits string) ([]ChangelogSection, error) {
	return generateChangelog(ctx, p.complete, groupedCommits, p.prompt.Language)
}

func (p *AnthropicProvider) complete(ctx context.Context, prompt string) (string, error) {
	msg, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
		MaxTokens: maxTokens,
		Model:     anthropic.Model(p.model),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) {
			return "", fmt.Errorf("%w: anthropic returned status %d: %w", ErrProviderCallFailed, apiErr.StatusCode, err)
		}
		return "", fmt.Errorf("%w: anthropic: %w", ErrProviderCallFailed, err)
	}

	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	return b.String(), nil
}
