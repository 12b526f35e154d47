package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (
	appName    = "git-ai"
	configFile = "config.toml"

	// RepoFileName is looked up from the working directory towards the root.
	RepoFileName = ".git-ai.toml"

	envConfigPath = "GIT_AI_CONFIG"
)

// GlobalPath returns the user-level config file path.
// It respects the GIT_AI_CONFIG env var override.
func GlobalPath() string {
	return globalPath(os.Getenv)
}

func globalPath(getenv func(string) string) string {
	if p := getenv(envConfigPath); p != "" {
		return p
	}
	return filepath.Join(xdg.ConfigHome, appName, configFile)
}

// FindRepoFile walks up from dir looking for .git-ai.toml. It returns "" when
// none exists up to the filesystem root.
func FindRepoFile(dir string) string {
	current, err := filepath.Abs(dir)
	if err != nil {
		return ""
	}
	for {
		candidate := filepath.Join(current, RepoFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
		parent := filepath.Dir(current)
		if parent == current {
			return ""
		}
		current = parent
	}
}
