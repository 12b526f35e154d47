// Package config loads git-ai configuration with a defined load order:
// CLI flags > environment variables > repo .git-ai.toml > global config > defaults.
//
// Environment variables (override config files when set):
//   - GIT_AI_PROVIDER, GIT_AI_MODEL, GIT_AI_BASE_URL, GIT_AI_LANGUAGE
//   - GIT_AI_MAX_DIFF_SIZE (positive integer)
//   - GIT_AI_COMMIT_BODY (auto, always, never)
//   - GIT_AI_CO_AUTHORED_BY (true/1/yes enable, anything else disables)
//   - GIT_AI_TEMPLATE (default template name)
//   - GIT_AI_CONFIG (path of the global config file)
//
// CLI flags are applied by the command layer on top of the loaded Config.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog/log"
)

// LoadOptions configures Load. All fields are optional.
type LoadOptions struct {
	// Dir is where .git-ai.toml discovery starts; empty means the working directory.
	Dir string
	// GlobalPath overrides the global config location.
	GlobalPath string
	// Env is the environment as key=value pairs; nil means os.Environ().
	Env []string
}

// Load builds the resolved configuration. Missing files are skipped.
func Load(opts LoadOptions) (*Config, error) {
	if opts.Env == nil {
		opts.Env = os.Environ()
	}
	env := envMap(opts.Env)
	getenv := func(k string) string { return env[k] }

	cfg := DefaultConfig()

	global := opts.GlobalPath
	if global == "" {
		global = globalPath(getenv)
	}
	if err := mergeFile(cfg, global); err != nil {
		return nil, err
	}

	dir := opts.Dir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		dir = wd
	}
	if repoPath := FindRepoFile(dir); repoPath != "" && repoPath != global {
		if err := mergeFile(cfg, repoPath); err != nil {
			return nil, err
		}
	}

	if err := applyEnv(cfg, getenv); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile returns the defaults overlaid with the single file at path, without
// the global file or environment overrides. A missing file yields defaults.
func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := mergeFile(cfg, path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// mergeFile decodes path on top of cfg. Keys absent from the file keep the
// value of the previous layer.
func mergeFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("%w: read %s: %v", ErrInvalidConfig, path, err)
	}

	layout := fileLayout{GitAI: *cfg}
	md, err := toml.Decode(string(data), &layout)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}
	for _, key := range md.Undecoded() {
		log.Warn().Str("file", path).Str("key", key.String()).Msg("ignoring unknown config key")
	}

	sources := cfg.Sources
	*cfg = layout.GitAI
	cfg.Sources = append(sources, path)
	log.Debug().Str("file", path).Msg("loaded config file")
	return nil
}

const (
	envProvider     = "GIT_AI_PROVIDER"
	envModel        = "GIT_AI_MODEL"
	envBaseURL      = "GIT_AI_BASE_URL"
	envLanguage     = "GIT_AI_LANGUAGE"
	envMaxDiffSize  = "GIT_AI_MAX_DIFF_SIZE"
	envCommitBody   = "GIT_AI_COMMIT_BODY"
	envCoAuthoredBy = "GIT_AI_CO_AUTHORED_BY"
	envTemplate     = "GIT_AI_TEMPLATE"
)

func applyEnv(cfg *Config, getenv func(string) string) error {
	if v := getenv(envProvider); v != "" {
		cfg.Provider = v
	}
	if v := getenv(envModel); v != "" {
		cfg.Model = v
	}
	if v := getenv(envBaseURL); v != "" {
		cfg.BaseURL = v
	}
	if v := getenv(envLanguage); v != "" {
		cfg.Language = v
	}
	if v := getenv(envMaxDiffSize); v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil || n <= 0 {
			return fmt.Errorf("%w: %s must be a positive integer, got %q", ErrInvalidConfig, envMaxDiffSize, v)
		}
		cfg.MaxDiffSize = n
	}
	if v := getenv(envCommitBody); v != "" {
		cfg.Commit.Body = v
	}
	if v := getenv(envCoAuthoredBy); v != "" {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "1", "yes":
			cfg.Commit.Footer.CoAuthoredBy = true
		default:
			cfg.Commit.Footer.CoAuthoredBy = false
		}
	}
	if v := getenv(envTemplate); v != "" {
		cfg.Templates.Default = v
	}
	return nil
}

func envMap(env []string) map[string]string {
	m := make(map[string]string, len(env))
	for _, kv := range env {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		m[k] = v
	}
	return m
}
