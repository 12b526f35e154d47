package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tharlesamaro/git-ai/internal/config"
	"github.com/tharlesamaro/git-ai/internal/git"
	"github.com/tharlesamaro/git-ai/internal/hook"
)

var hookForce bool

var hookCmd = &cobra.Command{
	Use:   "hook",
	Short: "Manage the commit-msg hook",
}

var hookInstallCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the commit-msg hook that lints commit messages",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := openRepo()
		if err != nil {
			return err
		}
		return installHook(repo, hookForce)
	},
}

var lintFile string

var lintCmd = &cobra.Command{
	Use:   "lint [message]",
	Short: "Check a commit message against Conventional Commits",
	Long: `Checks a commit message read from --file, from the arguments, or from
stdin when neither is given. With hook.strict enabled, errors make the
command fail; otherwise they are reported as warnings.`,
	RunE: runLint,
}

func init() {
	hookInstallCmd.Flags().BoolVar(&hookForce, "force", false, "replace an existing commit-msg hook")
	hookCmd.AddCommand(hookInstallCmd)
	rootCmd.AddCommand(hookCmd)

	lintCmd.Flags().StringVarP(&lintFile, "file", "f", "", "file holding the commit message")
	rootCmd.AddCommand(lintCmd)
}

func installHook(repo *git.Repo, force bool) error {
	dir, err := repo.HooksDir()
	if err != nil {
		return err
	}
	path, err := hook.Install(dir, force)
	if err != nil {
		return err
	}
	printSuccess("Git hook installed at %s", path)
	return nil
}

// errLintFailed is returned when a strict lint finds errors; the problems
// themselves are already printed.
var errLintFailed = errors.New("commit message does not follow Conventional Commits")

func readLintMessage(cmd *cobra.Command, args []string) (string, error) {
	switch {
	case lintFile != "":
		data, err := os.ReadFile(lintFile)
		if err != nil {
			return "", fmt.Errorf("failed to read commit message: %w", err)
		}
		return string(data), nil
	case len(args) > 0:
		return strings.Join(args, " "), nil
	default:
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read commit message: %w", err)
		}
		return string(data), nil
	}
}

func runLint(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	message, err := readLintMessage(cmd, args)
	if err != nil {
		return err
	}
	return reportLint(cmd.ErrOrStderr(), hook.Lint(message, cfg), cfg.Hook)
}

func reportLint(w io.Writer, problems []hook.Problem, hc config.HookConfig) error {
	for _, p := range problems {
		if !hc.Strict && p.Severity == hook.Error {
			p.Severity = hook.Warning
		}
		style := warnStyle
		if p.Severity == hook.Error {
			style = errorStyle
		}
		fmt.Fprintln(w, style.Render("git-ai: "+p.String()))
	}
	if hc.Strict && hook.HasErrors(problems) {
		return errLintFailed
	}
	return nil
}
