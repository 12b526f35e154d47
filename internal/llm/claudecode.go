package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

const claudeInstallURL = "https://docs.anthropic.com/en/docs/claude-code"

// ClaudeCodeProvider runs the local Claude Code CLI in print mode. It needs
// no API key of its own; the CLI handles authentication.
type ClaudeCodeProvider struct {
	bin    string
	model  string
	prompt CommitPromptOptions
}

// NewClaudeCodeProvider creates a provider that shells out to the claude
// executable. An empty model lets the CLI pick its default.
func NewClaudeCodeProvider(model string, prompt CommitPromptOptions) *ClaudeCodeProvider {
	return &ClaudeCodeProvider{bin: "claude", model: model, prompt: prompt}
}

func (p *ClaudeCodeProvider) GenerateCommitMessage(ctx context.Context, diff string) (*GeneratedCommit, error) {
	return generateCommit(ctx, p.complete, diff, p.prompt)
}

func (p *ClaudeCodeProvider) GenerateChangelog(ctx context.Context, groupedCommits string) ([]ChangelogSection, error) {
	return generateChangelog(ctx, p.complete, groupedCommits, p.prompt.Language)
}

func (p *ClaudeCodeProvider) args(prompt string) []string {
	args := []string{"-p", prompt, "--output-format", "json", "--max-turns", "1"}
	if p.model != "" {
		args = append(args, "--model", p.model)
	}
	return args
}

func (p *ClaudeCodeProvider) complete(ctx context.Context, prompt string) (string, error) {
	path, err := exec.LookPath(p.bin)
	if err != nil {
		return "", fmt.Errorf("%w: Claude Code CLI not found, install it first: %s", ErrProviderUnavailable, claudeInstallURL)
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, path, p.args(prompt)...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail == "" {
			detail = strings.TrimSpace(stdout.String())
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", fmt.Errorf("%w: claude exited with code %d: %s", ErrProviderCallFailed, exitErr.ExitCode(), detail)
		}
		return "", fmt.Errorf("%w: failed to run claude: %w", ErrProviderCallFailed, err)
	}

	var out struct {
		Result *string `json:"result"`
	}
	if err := json.Unmarshal(stdout.Bytes(), &out); err != nil {
		return "", fmt.Errorf("%w: failed to parse Claude Code CLI output: %v\nOutput: %s",
			ErrMalformedResponse, err, excerpt(stdout.String(), excerptLen))
	}
	if out.Result == nil {
		return "", fmt.Errorf("%w: Claude Code CLI output has no \"result\" field", ErrMalformedResponse)
	}
	return *out.Result, nil
}
