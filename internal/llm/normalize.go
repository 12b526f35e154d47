package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

const excerptLen = 500

// Normalize strips an optional markdown code fence from raw, parses the rest
// as a JSON object and checks that every required key is present. Values
// are returned as decoded by encoding/json; no coercion happens here.
func Normalize(raw string, required ...string) (map[string]any, error) {
	text := stripFence(raw)

	var data map[string]any
	if err := json.Unmarshal([]byte(text), &data); err != nil {
		return nil, fmt.Errorf("%w: failed to parse AI response as JSON: %v\nResponse: %s",
			ErrMalformedResponse, err, excerpt(text, excerptLen))
	}
	if data == nil {
		return nil, fmt.Errorf("%w: AI response is null\nResponse: %s", ErrMalformedResponse, excerpt(text, excerptLen))
	}

	for _, key := range required {
		if _, ok := data[key]; !ok {
			return nil, fmt.Errorf("%w: AI response missing required key: %q", ErrMalformedResponse, key)
		}
	}
	return data, nil
}

// stripFence removes a leading ``` or ```json marker and a trailing ```.
func stripFence(raw string) string {
	text := strings.TrimSpace(raw)
	if rest, ok := strings.CutPrefix(text, "```"); ok {
		rest = strings.TrimPrefix(rest, "json")
		text = strings.TrimLeft(rest, " \t\r\n")
	}
	text = strings.TrimSpace(text)
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}

func excerpt(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
