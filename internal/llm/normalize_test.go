package llm

import (
	"errors"
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
	}{
		{name: "plain", raw: `{"type":"feat"}`},
		{name: "fenced", raw: "```\n{\"type\":\"feat\"}\n```"},
		{name: "json fence", raw: "```json\n{\"type\":\"feat\"}\n```"},
		{name: "padded", raw: "  \n```json\n  {\"type\": \"feat\"}  \n```\n\n"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := Normalize(tc.raw, "type")
			if err != nil {
				t.Fatalf("Normalize() error: %v", err)
			}
			if got["type"] != "feat" {
				t.Fatalf("type got %v want feat", got["type"])
			}
		})
	}
}

func TestStripFenceIsIdempotent(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{`{"a":1}`, "```json\n{\"a\":1}\n```", "```\n{}\n```"} {
		once := stripFence(raw)
		if twice := stripFence(once); twice != once {
			t.Fatalf("stripFence not idempotent for %q: %q then %q", raw, once, twice)
		}
	}
}

func TestNormalizeRejectsInvalidJSON(t *testing.T) {
	t.Parallel()

	raw := "not json " + strings.Repeat("x", 1000)
	_, err := Normalize(raw)
	if !errors.Is(err, ErrMalformedResponse) {
		t.Fatalf("err got %v want ErrMalformedResponse", err)
	}
	msg := err.Error()
	if !strings.Contains(msg, "Response: not json") {
		t.Fatalf("error missing excerpt: %q", msg)
	}
	if strings.Contains(msg, strings.Repeat("x", 500)) {
		t.Fatalf("excerpt longer than 500 characters")
	}
}

func TestNormalizeMissingKey(t *testing.T) {
	t.Parallel()

	_, err := Normalize(`{"type":"feat"}`, "type", "description")
	if !errors.Is(err, ErrMalformedResponse) {
		t.Fatalf("err got %v want ErrMalformedResponse", err)
	}
	if !strings.Contains(err.Error(), `"description"`) {
		t.Fatalf("error does not name the key: %v", err)
	}
}

func TestNormalizeRejectsNonObject(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"null", "[1,2]", `"text"`} {
		if _, err := Normalize(raw); !errors.Is(err, ErrMalformedResponse) {
			t.Fatalf("Normalize(%q) err got %v want ErrMalformedResponse", raw, err)
		}
	}
}
