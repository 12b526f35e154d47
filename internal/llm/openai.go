package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// OpenAIProvider implements Provider using the official OpenAI SDK. With a
// base URL it talks to OpenAI-compatible APIs (Gemini, Cerebras,
// SiliconFlow, custom endpoints).
type OpenAIProvider struct {
	client *openai.Client
	model  string
	prompt CommitPromptOptions
}

// NewOpenAIProvider creates a provider for the OpenAI API, or for a
// compatible endpoint when baseURL is set.
func NewOpenAIProvider(apiKey, model, baseURL string, prompt CommitPromptOptions, opts ...option.RequestOption) *OpenAIProvider {
	reqOpts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(baseURL))
	}
	client := openai.NewClient(append(reqOpts, opts...)...)
	return &OpenAIProvider{client: &client, model: model, prompt: prompt}
}

func (p *OpenAIProvider) GenerateCommitMessage(ctx context.Context, diff string) (*GeneratedCommit, error) {
	return generateCommit(ctx, p.complete, diff, p.prompt)
}

func (p *OpenAIProvider) GenerateChangelog(ctx context.Context, groupedCommits string) ([]ChangelogSection, error) {
	return generateChangelog(ctx, p.complete, groupedCommits, p.prompt.Language)
}

func (p *OpenAIProvider) complete(ctx context.Context, prompt string) (string, error) {
	resp, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: p.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		MaxCompletionTokens: openai.Int(maxTokens),
	})
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return "", fmt.Errorf("%w: openai returned status %d: %w", ErrProviderCallFailed, apiErr.StatusCode, err)
		}
		return "", fmt.Errorf("%w: openai: %w", ErrProviderCallFailed, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: openai returned no choices", ErrMalformedResponse)
	}
	return resp.Choices[0].Message.Content, nil
}
