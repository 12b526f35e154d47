package llm

import "errors"

var (
	// ErrProviderUnavailable means the backend cannot be used at all, e.g. a
	// missing API key or a missing executable.
	ErrProviderUnavailable = errors.New("provider unavailable")
	// ErrProviderCallFailed means the backend was reached but the call failed.
	ErrProviderCallFailed = errors.New("provider call failed")
	// ErrMalformedResponse means the backend answered with text that is not
	// the JSON object the prompt asked for.
	ErrMalformedResponse = errors.New("malformed provider response")
	// ErrUnknownProvider is returned by NewProvider for unsupported names.
	ErrUnknownProvider = errors.New("unknown provider")
)
