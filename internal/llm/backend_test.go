package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

const commitReply = `{"type":"docs","scope":"","description":"update readme","body":"","is_breaking_change":false}`

func TestOllamaProvider(t *testing.T) {
	t.Parallel()

	var got ollamaRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" || r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		_ = json.NewEncoder(w).Encode(ollamaResponse{Response: commitReply})
	}))
	defer srv.Close()

	p := NewOllamaProvider(srv.URL+"/", "llama3.1", srv.Client(), CommitPromptOptions{})
	msg, err := p.GenerateCommitMessage(context.Background(), "+readme")
	if err != nil {
		t.Fatalf("GenerateCommitMessage() error: %v", err)
	}
	if msg.Type != "docs" || msg.Description != "update readme" {
		t.Fatalf("message got %+v", msg)
	}
	if got.Model != "llama3.1" || got.Stream || got.Format != "json" {
		t.Fatalf("request got %+v", got)
	}
}

func TestOllamaProviderErrorStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"model \"nope\" not found"}`))
	}))
	defer srv.Close()

	p := NewOllamaProvider(srv.URL, "nope", srv.Client(), CommitPromptOptions{})
	_, err := p.GenerateCommitMessage(context.Background(), "d")
	if !errors.Is(err, ErrProviderCallFailed) {
		t.Fatalf("err got %v want ErrProviderCallFailed", err)
	}
}

func TestOllamaProviderUnreachable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	p := NewOllamaProvider(url, "llama3.1", nil, CommitPromptOptions{})
	_, err := p.GenerateCommitMessage(context.Background(), "d")
	if !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("err got %v want ErrProviderUnavailable", err)
	}
}

// fakeClaude writes a shell script standing in for the claude CLI.
func fakeClaude(t *testing.T, script string) *ClaudeCodeProvider {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts not supported")
	}
	bin := filepath.Join(t.TempDir(), "claude")
	if err := os.WriteFile(bin, []byte("#!/bin/sh\n"+script), 0o755); err != nil {
		t.Fatal(err)
	}
	p := NewClaudeCodeProvider("", CommitPromptOptions{})
	p.bin = bin
	return p
}

func TestClaudeCodeProvider(t *testing.T) {
	t.Parallel()

	out, _ := json.Marshal(map[string]string{"result": commitReply})
	p := fakeClaude(t, "cat <<'EOF'\n"+string(out)+"\nEOF\n")
	msg, err := p.GenerateCommitMessage(context.Background(), "d")
	if err != nil {
		t.Fatalf("GenerateCommitMessage() error: %v", err)
	}
	if msg.Type != "docs" {
		t.Fatalf("type got %q want docs", msg.Type)
	}
}

func TestClaudeCodeProviderFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		script string
		want   error
	}{
		{name: "exit code", script: "echo 'not logged in' >&2\nexit 3\n", want: ErrProviderCallFailed},
		{name: "not json", script: "echo hello\n", want: ErrMalformedResponse},
		{name: "no result", script: "echo '{\"type\":\"result\"}'\n", want: ErrMalformedResponse},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			p := fakeClaude(t, tc.script)
			_, err := p.GenerateCommitMessage(context.Background(), "d")
			if !errors.Is(err, tc.want) {
				t.Fatalf("err got %v want %v", err, tc.want)
			}
		})
	}
}

func TestClaudeCodeProviderMissingBinary(t *testing.T) {
	t.Parallel()

	p := NewClaudeCodeProvider("", CommitPromptOptions{})
	p.bin = filepath.Join(t.TempDir(), "no-such-claude")
	_, err := p.GenerateCommitMessage(context.Background(), "d")
	if !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("err got %v want ErrProviderUnavailable", err)
	}
}

func TestClaudeCodeArgs(t *testing.T) {
	t.Parallel()

	p := NewClaudeCodeProvider("opus", CommitPromptOptions{})
	args := p.args("hello")
	want := []string{"-p", "hello", "--output-format", "json", "--max-turns", "1", "--model", "opus"}
	if len(args) != len(want) {
		t.Fatalf("args got %v want %v", args, want)
	}
	for i := range want {
		if args[i] != want[i] {
			t.Fatalf("args got %v want %v", args, want)
		}
	}
}
