package llm

import (
	"fmt"
	"os"

	"github.com/tharlesamaro/git-ai/internal/config"
)

// Known provider base URLs for OpenAI-compatible services.
var providerBaseURLs = map[string]string{
	"gemini":      "https://generativelanguage.googleapis.com/v1beta/openai/",
	"cerebras":    "https://api.cerebras.ai/v1",
	"siliconflow": "https://api.siliconflow.cn/v1",
}

// Default models for each provider. claude-code has none: the CLI decides.
var defaultModels = map[string]string{
	"anthropic":   "claude-sonnet-4-20250514",
	"openai":      "gpt-4o",
	"gemini":      "gemini-2.5-flash-lite",
	"cerebras":    "gpt-oss-120b",
	"siliconflow": "Qwen/Qwen3-Next-80B-A3B-Instruct",
	"ollama":      "llama3.1",
}

// Environment variables holding each provider's API key.
var apiKeyEnv = map[string]string{
	"anthropic":   "ANTHROPIC_API_KEY",
	"openai":      "OPENAI_API_KEY",
	"gemini":      "GEMINI_API_KEY",
	"cerebras":    "CEREBRAS_API_KEY",
	"siliconflow": "SILICONFLOW_API_KEY",
	"custom":      "GIT_AI_API_KEY",
}

// ProviderNames returns the list of supported provider names.
func ProviderNames() []string {
	return []string{"anthropic", "openai", "claude-code", "ollama", "gemini", "cerebras", "siliconflow", "custom"}
}

// ProviderDisplayNames returns human-readable names for providers.
func ProviderDisplayNames() map[string]string {
	return map[string]string{
		"anthropic":   "Anthropic (Claude API)",
		"openai":      "OpenAI",
		"claude-code": "Claude Code CLI",
		"ollama":      "Ollama (local)",
		"gemini":      "Google Gemini",
		"cerebras":    "Cerebras",
		"siliconflow": "SiliconFlow",
		"custom":      "Custom (OpenAI-compatible)",
	}
}

// DefaultModel returns the default model for a given provider.
func DefaultModel(provider string) string {
	return defaultModels[provider]
}

// APIKeyEnv returns the environment variable a provider reads its key from,
// or "" for providers that need none.
func APIKeyEnv(provider string) string {
	return apiKeyEnv[provider]
}

// CoAuthorName is the model name used in Co-Authored-By footers when no
// model is configured.
func CoAuthorName(provider string) string {
	switch provider {
	case "openai", "gemini", "cerebras", "siliconflow", "custom":
		return "GPT"
	case "ollama":
		return "Ollama"
	default:
		return "Claude"
	}
}

// PromptOptions collects the prompt settings from cfg. body is the body
// policy of the resolved commit template.
func PromptOptions(cfg *config.Config, body string) CommitPromptOptions {
	return CommitPromptOptions{
		Language: cfg.Language,
		Scopes:   cfg.Scopes,
		Types:    cfg.Types,
		Body:     body,
	}
}

// NewProvider creates a Provider from the given configuration.
func NewProvider(cfg *config.Config, prompt CommitPromptOptions) (Provider, error) {
	return newProvider(cfg, prompt, os.Getenv)
}

func newProvider(cfg *config.Config, prompt CommitPromptOptions, getenv func(string) string) (Provider, error) {
	name := cfg.Provider
	model := cfg.Model
	if model == "" {
		model = DefaultModel(name)
	}

	apiKey := func() (string, error) {
		env := apiKeyEnv[name]
		key := getenv(env)
		if key == "" {
			return "", fmt.Errorf("%w: %s is not set for provider %q", ErrProviderUnavailable, env, name)
		}
		return key, nil
	}

	switch name {
	case "anthropic":
		key, err := apiKey()
		if err != nil {
			return nil, err
		}
		return NewAnthropicProvider(key, model, prompt), nil
	case "openai":
		key, err := apiKey()
		if err != nil {
			return nil, err
		}
		return NewOpenAIProvider(key, model, cfg.BaseURL, prompt), nil
	case "gemini", "cerebras", "siliconflow":
		key, err := apiKey()
		if err != nil {
			return nil, err
		}
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = providerBaseURLs[name]
		}
		return NewOpenAIProvider(key, model, baseURL, prompt), nil
	case "custom":
		if cfg.BaseURL == "" {
			return nil, fmt.Errorf("%w: custom provider requires base_url", config.ErrInvalidConfig)
		}
		if model == "" {
			return nil, fmt.Errorf("%w: custom provider requires model", config.ErrInvalidConfig)
		}
		key, err := apiKey()
		if err != nil {
			return nil, err
		}
		return NewOpenAIProvider(key, model, cfg.BaseURL, prompt), nil
	case "claude-code":
		return NewClaudeCodeProvider(cfg.Model, prompt), nil
	case "ollama":
		return NewOllamaProvider(cfg.BaseURL, model, nil, prompt), nil
	default:
		return nil, fmt.Errorf("%w: %q (supported: %v)", ErrUnknownProvider, name, ProviderNames())
	}
}
