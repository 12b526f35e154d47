package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/atotto/clipboard"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/tharlesamaro/git-ai/internal/config"
	"github.com/tharlesamaro/git-ai/internal/format"
	"github.com/tharlesamaro/git-ai/internal/git"
	"github.com/tharlesamaro/git-ai/internal/llm"
	"github.com/tharlesamaro/git-ai/internal/template"
	"github.com/tharlesamaro/git-ai/internal/tui"
)

var errNoStagedChanges = errors.New("no staged changes, stage files with git add or pass --all")

var commitFlags struct {
	all      bool
	template string
	noBody   bool
	footers  []string
	dryRun   bool
	copy     bool
	yes      bool
}

var commitCmd = &cobra.Command{
	Use:   "commit",
	Short: "Generate a commit message for the staged changes",
	Example: `  git-ai commit
  git-ai commit --all --template detailed
  git-ai commit --no-body --footer "Refs: #42"
  git-ai commit --dry-run --copy`,
	Args: cobra.NoArgs,
	RunE: runCommit,
}

func init() {
	f := commitCmd.Flags()
	f.BoolVarP(&commitFlags.all, "all", "a", false, "stage all changes before generating")
	f.StringVar(&commitFlags.template, "template", "", "commit template to use (minimal, detailed or a preset)")
	f.BoolVar(&commitFlags.noBody, "no-body", false, "never include a body")
	f.StringArrayVar(&commitFlags.footers, "footer", nil, "extra footer line, repeatable")
	f.BoolVar(&commitFlags.dryRun, "dry-run", false, "show the message without committing")
	f.BoolVar(&commitFlags.copy, "copy", false, "copy the message to the clipboard")
	f.BoolVarP(&commitFlags.yes, "yes", "y", false, "commit without review")
	rootCmd.AddCommand(commitCmd)
}

// resolveTemplate applies the command-line overrides to the selected template.
func resolveTemplate(cfg *config.Config, name string, noBody bool, footers []string) (template.Template, error) {
	tpl, err := template.Resolve(name, cfg)
	if err != nil {
		return template.Template{}, err
	}
	overrides := template.Overrides{ExtraFooterLines: footers}
	if noBody {
		overrides.Body = string(template.BodyNever)
	}
	return tpl.WithOverrides(overrides)
}

// messageGenerator returns a generator producing formatted commit messages
// for diff.
func messageGenerator(provider llm.Provider, diff string, tpl template.Template, cfg *config.Config) tui.Generator {
	return func(ctx context.Context) (string, error) {
		generated, err := provider.GenerateCommitMessage(ctx, diff)
		if err != nil {
			return "", err
		}
		return format.CommitMessage(*generated, tpl, cfg), nil
	}
}

func runCommit(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	repo, err := openRepo()
	if err != nil {
		return err
	}

	tpl, err := resolveTemplate(cfg, commitFlags.template, commitFlags.noBody, commitFlags.footers)
	if err != nil {
		return err
	}

	if commitFlags.all {
		if err := repo.StageAll(); err != nil {
			return err
		}
	}
	staged, err := repo.HasStagedChanges()
	if err != nil {
		return err
	}
	if !staged {
		return errNoStagedChanges
	}

	diff, err := repo.StagedDiff()
	if err != nil {
		return err
	}
	diff, truncated := git.Truncate(diff, cfg.MaxDiffSize)
	if truncated {
		log.Warn().Int("max_diff_size", cfg.MaxDiffSize).Msg("diff truncated before sending to the provider")
	}
	stat, err := repo.StagedStat()
	if err != nil {
		log.Debug().Err(err).Msg("failed to read staged stat")
	}

	provider, err := llm.NewProvider(cfg, llm.PromptOptions(cfg, string(tpl.Body())))
	if err != nil {
		return err
	}
	generate := messageGenerator(provider, diff, tpl, cfg)

	var message string
	if tui.IsInteractive() && !commitFlags.yes {
		message, err = reviewCommit(repo, stat, generate)
	} else {
		message, err = commitDirect(cmd.Context(), repo, stat, generate)
	}
	if err != nil || message == "" {
		return err
	}

	if commitFlags.copy {
		if err := clipboard.WriteAll(message); err != nil {
			log.Warn().Err(err).Msg("failed to copy commit message to clipboard")
		} else {
			printInfo("Commit message copied to clipboard.")
		}
	}
	return nil
}

// reviewCommit runs the interactive review and returns the final message, or
// "" when the user cancelled.
func reviewCommit(repo *git.Repo, stat string, generate tui.Generator) (string, error) {
	opts := tui.Options{Stat: stat, Generate: generate}
	if !commitFlags.dryRun {
		opts.Commit = repo.Commit
	}

	res, err := tui.Run(opts)
	if err != nil {
		return "", fmt.Errorf("failed to run review: %w", err)
	}
	if res.Err != nil {
		return "", res.Err
	}
	if res.Cancelled {
		printWarn("Commit cancelled.")
		return "", nil
	}
	if commitFlags.dryRun {
		fmt.Println(res.Message)
		printInfo("Dry run: no commit was created.")
	}
	return res.Message, nil
}

// commitDirect generates once and commits when --yes is given; otherwise it
// only prints the message.
func commitDirect(ctx context.Context, repo *git.Repo, stat string, generate tui.Generator) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	if stat != "" {
		fmt.Fprintln(os.Stderr, dimStyle.Render(stat))
	}
	message, err := generate(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to generate commit message: %w", err)
	}

	switch {
	case commitFlags.dryRun:
		fmt.Println(message)
		printInfo("Dry run: no commit was created.")
	case commitFlags.yes:
		if err := repo.Commit(message); err != nil {
			return "", fmt.Errorf("failed to create commit: %w", err)
		}
		printPanel("Generated commit message:", message, "#2ECC71")
		printSuccess("✓ Commit created successfully!")
	default:
		fmt.Println(message)
		fmt.Fprintln(os.Stderr, dimStyle.Render("Not a terminal: pass --yes to commit without review."))
	}
	return message, nil
}
