package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tharlesamaro/git-ai/internal/config"
	"github.com/tharlesamaro/git-ai/internal/git"
	"github.com/tharlesamaro/git-ai/internal/hook"
	"github.com/tharlesamaro/git-ai/internal/tui"
	"github.com/tharlesamaro/git-ai/internal/tui/setup"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Configure git-ai for this project",
	Long: `Walks you through configuring the AI provider, the language for commit
messages, project scopes and types, the body policy and the commit-msg hook,
then writes .git-ai.toml in the current directory.`,
	Args: cobra.NoArgs,
	RunE: runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, args []string) error {
	if !tui.IsInteractive() {
		return errors.New("setup needs an interactive terminal")
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	repo := git.Open(".")
	inRepo := repo.IsRepo()
	if !inRepo {
		printWarn("Not a Git repository. Skipping hook installation.")
	}

	answers, err := setup.RunWizard(cfg, inRepo)
	if err != nil {
		return fmt.Errorf("setup failed: %w", err)
	}

	path := config.RepoFileName
	existing, err := config.LoadFile(path)
	if err != nil {
		return err
	}
	if err := config.Write(path, answers.Config(existing)); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	if answers.InstallHook {
		if err := installHook(repo, false); err != nil {
			if !errors.Is(err, hook.ErrHookExists) {
				return err
			}
			printWarn("%v", err)
		}
	}

	setup.PrintSummary(path, answers)
	return nil
}
