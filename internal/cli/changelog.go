package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/charmbracelet/huh"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/tharlesamaro/git-ai/internal/changelog"
	"github.com/tharlesamaro/git-ai/internal/format"
	"github.com/tharlesamaro/git-ai/internal/git"
	"github.com/tharlesamaro/git-ai/internal/llm"
	"github.com/tharlesamaro/git-ai/internal/tui"
)

var (
	errNoStartRef  = errors.New("could not determine a starting point, use --from to specify a tag or commit hash")
	errTagRequired = errors.New("not a terminal: pass --tag to name the release")
	errNeedConfirm = errors.New("not a terminal: pass --yes to write the changelog or --dry-run to preview it")
)

var changelogFlags struct {
	from   string
	to     string
	tag    string
	dryRun bool
	yes    bool
}

var changelogCmd = &cobra.Command{
	Use:   "changelog",
	Short: "Generate a changelog entry from commits",
	Example: `  git-ai changelog --tag v2.0.0
  git-ai changelog --from v1.0.0 --to v2.0.0
  git-ai changelog --tag v2.0.0 --dry-run`,
	Args: cobra.NoArgs,
	RunE: runChangelog,
}

func init() {
	f := changelogCmd.Flags()
	f.StringVar(&changelogFlags.from, "from", "", "starting reference (tag or commit), defaults to the latest tag")
	f.StringVar(&changelogFlags.to, "to", "HEAD", "ending reference")
	f.StringVar(&changelogFlags.tag, "tag", "", "version tag for the changelog")
	f.BoolVar(&changelogFlags.dryRun, "dry-run", false, "preview without writing to file")
	f.BoolVarP(&changelogFlags.yes, "yes", "y", false, "write without asking for confirmation")
	rootCmd.AddCommand(changelogCmd)
}

// resolveFromRef picks the start of the range: the flag, else the latest
// tag, else the first commit.
func resolveFromRef(repo *git.Repo, from string) (string, error) {
	if from != "" {
		return from, nil
	}
	if tag := repo.LatestTag(); tag != "" {
		printInfo("Using latest tag as starting point: %s", tag)
		return tag, nil
	}
	if first := repo.FirstCommit(); first != "" {
		printInfo("No tags found. Using first commit as starting point.")
		return first, nil
	}
	return "", errNoStartRef
}

func runChangelog(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	repo, err := openRepo()
	if err != nil {
		return err
	}

	interactive := tui.IsInteractive()
	if !interactive && changelogFlags.tag == "" {
		return errTagRequired
	}
	if !interactive && !changelogFlags.dryRun && !changelogFlags.yes {
		return errNeedConfirm
	}

	from, err := resolveFromRef(repo, changelogFlags.from)
	if err != nil {
		return err
	}
	to := changelogFlags.to
	commits, err := repo.CommitsBetween(from, to)
	if err != nil {
		return err
	}
	if len(commits) == 0 {
		printWarn("No commits found between %s and %s.", from, to)
		return nil
	}
	printInfo("Found %d commits between %s and %s.", len(commits), from, to)

	groups := changelog.GroupCommits(commits)
	provider, err := llm.NewProvider(cfg, llm.PromptOptions(cfg, cfg.Commit.Body))
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	fmt.Println(dimStyle.Render("Generating changelog..."))
	sections, err := provider.GenerateChangelog(ctx, changelog.PromptText(groups))
	if err != nil {
		return fmt.Errorf("failed to generate changelog: %w", err)
	}
	log.Debug().Int("sections", len(sections)).Msg("changelog generated")

	tag := changelogFlags.tag
	if tag == "" {
		tag = changelog.SuggestVersion(repo.LatestTag(), commits)
		if err := huh.NewInput().
			Title("What version tag should this changelog use?").
			Value(&tag).
			Validate(func(s string) error {
				if s == "" {
					return errors.New("tag cannot be empty")
				}
				return nil
			}).
			Run(); err != nil {
			return err
		}
	}

	block := format.ChangelogBlock(tag, sections, cfg)
	printPanel("Preview:", block, "#52B0FF")

	if changelogFlags.dryRun {
		printInfo("Dry run complete. No files were written.")
		return nil
	}

	if !changelogFlags.yes {
		write := true
		if err := huh.NewConfirm().
			Title("Write this changelog to file?").
			Value(&write).
			Run(); err != nil {
			return err
		}
		if !write {
			printWarn("Changelog generation cancelled.")
			return nil
		}
	}

	if err := changelog.Prepend(cfg.Changelog.Path, block); err != nil {
		return err
	}
	printSuccess("Changelog written to %s", cfg.Changelog.Path)
	return nil
}
