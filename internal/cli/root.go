package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/tharlesamaro/git-ai/internal/config"
	"github.com/tharlesamaro/git-ai/internal/git"
	"github.com/tharlesamaro/git-ai/internal/llm"
	"github.com/tharlesamaro/git-ai/internal/template"
)

var (
	flagVerbose bool
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:   "git-ai",
	Short: "Draft Conventional Commits messages and changelogs with AI",
	Long: `git-ai reads your staged changes and drafts a Conventional Commits message
with the configured AI provider, and turns commit history into changelog
entries.`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path of the global config file")
}

func Execute() error {
	return rootCmd.Execute()
}

// ExitCode maps an error returned by Execute to a process exit status.
// Configuration and usage problems exit with 2, other failures with 1.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, config.ErrInvalidConfig),
		errors.Is(err, template.ErrUnknownTemplate),
		errors.Is(err, template.ErrInvalidBodyPolicy),
		errors.Is(err, llm.ErrUnknownProvider):
		return 2
	default:
		return 1
	}
}

func setupLogging(cmd *cobra.Command, args []string) error {
	level := zerolog.WarnLevel
	if flagVerbose || os.Getenv("GIT_AI_DEBUG") == "1" {
		level = zerolog.DebugLevel
	}
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
	return nil
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(config.LoadOptions{GlobalPath: flagConfig})
	if err != nil {
		return nil, err
	}
	log.Debug().Strs("sources", cfg.Sources).Str("provider", cfg.Provider).Msg("configuration loaded")
	return cfg, nil
}

func openRepo() (*git.Repo, error) {
	repo := git.Open(".")
	if !repo.IsRepo() {
		return nil, errNotRepo
	}
	return repo, nil
}

var errNotRepo = fmt.Errorf("%w: this directory is not a Git repository", git.ErrRepository)
