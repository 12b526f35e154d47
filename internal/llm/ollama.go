package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	DefaultOllamaURL = "http://localhost:11434"
	ollamaTimeout    = 2 * time.Minute
)

// OllamaProvider implements Provider against a local Ollama server.
type OllamaProvider struct {
	baseURL    string
	model      string
	httpClient *http.Client
	prompt     CommitPromptOptions
}

// NewOllamaProvider builds a provider for the Ollama API rooted at baseURL.
// An empty baseURL means DefaultOllamaURL; a nil httpClient gets a default
// client with a generous timeout.
func NewOllamaProvider(baseURL, model string, httpClient *http.Client, prompt CommitPromptOptions) *OllamaProvider {
	if baseURL == "" {
		baseURL = DefaultOllamaURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: ollamaTimeout}
	}
	return &OllamaProvider{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		model:      model,
		httpClient: httpClient,
		prompt:     prompt,
	}
}

func (p *OllamaProvider) GenerateCommitMessage(ctx context.Context, diff string) (*GeneratedCommit, error) {
	return generateCommit(ctx, p.complete, diff, p.prompt)
}

func (p *OllamaProvider) GenerateChangelog(ctx context.Context, groupedCommits string) ([]ChangelogSection, error) {
	return generateChangelog(ctx, p.complete, groupedCommits, p.prompt.Language)
}

type ollamaRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
	Format string `json:"format"`
}

type ollamaResponse struct {
	Response string `json:"response"`
	Error    string `json:"error"`
}

func (p *OllamaProvider) complete(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(ollamaRequest{Model: p.model, Prompt: prompt, Format: "json"})
	if err != nil {
		return "", fmt.Errorf("failed to encode ollama request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build ollama request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("%w: ollama: %w", ErrProviderCallFailed, err)
		}
		return "", fmt.Errorf("%w: ollama server unreachable at %s: %w", ErrProviderUnavailable, p.baseURL, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: failed to read ollama response: %w", ErrProviderCallFailed, err)
	}

	var out ollamaResponse
	decodeErr := json.Unmarshal(data, &out)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail := out.Error
		if detail == "" {
			detail = strings.TrimSpace(string(data))
		}
		return "", fmt.Errorf("%w: ollama returned status %d: %s", ErrProviderCallFailed, resp.StatusCode, detail)
	}
	if decodeErr != nil {
		return "", fmt.Errorf("%w: failed to parse ollama response: %w", ErrMalformedResponse, decodeErr)
	}
	if out.Error != "" {
		return "", fmt.Errorf("%w: ollama: %s", ErrProviderCallFailed, out.Error)
	}
	return out.Response, nil
}

