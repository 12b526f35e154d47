// Package setup runs the interactive wizard that writes a repository's
// .git-ai.toml.
package setup

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/tharlesamaro/git-ai/internal/committype"
	"github.com/tharlesamaro/git-ai/internal/config"
	"github.com/tharlesamaro/git-ai/internal/llm"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F05033"))

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF8A65"))
)

// Languages offered by the wizard, in display order.
var languages = []struct{ code, name string }{
	{"en", "English"},
	{"pt-BR", "Português (Brasil)"},
	{"es", "Español"},
	{"fr", "Français"},
	{"de", "Deutsch"},
	{"it", "Italiano"},
	{"ja", "日本語"},
	{"ko", "한국어"},
	{"zh", "中文"},
}

const defaultAllowedTypes = "feat,fix,docs,refactor,test,chore"

// RunWizard asks for the project settings, pre-filled from current. The
// hook question is only asked inside a git repository.
func RunWizard(current *config.Config, inRepo bool) (Answers, error) {
	fmt.Println()
	fmt.Println(titleStyle.Render("git-ai setup"))
	fmt.Println(subtitleStyle.Render("   This wizard will configure your AI-powered Git workflow."))
	fmt.Println()

	a := Answers{
		Provider: current.Provider,
		Model:    current.Model,
		BaseURL:  current.BaseURL,
		Language: current.Language,
		Body:     current.Commit.Body,
	}

	// ── Step 1: Provider ──
	names := llm.ProviderNames()
	displayNames := llm.ProviderDisplayNames()
	providerOptions := make([]huh.Option[string], len(names))
	for i, name := range names {
		providerOptions[i] = huh.NewOption(displayNames[name], name)
	}
	languageOptions := make([]huh.Option[string], len(languages))
	for i, l := range languages {
		languageOptions[i] = huh.NewOption(fmt.Sprintf("%s (%s)", l.name, l.code), l.code)
	}

	if err := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Which AI provider do you want to use?").
			Options(providerOptions...).
			Value(&a.Provider),
		huh.NewSelect[string]().
			Title("Language for commit messages").
			Options(languageOptions...).
			Value(&a.Language),
	)).Run(); err != nil {
		return Answers{}, err
	}

	// ── Step 2: Model and endpoint ──
	var fields []huh.Field
	if a.Provider == "custom" || a.Provider == "ollama" {
		placeholder := "https://api.example.com/v1"
		if a.Provider == "ollama" {
			placeholder = llm.DefaultOllamaURL
		}
		fields = append(fields, huh.NewInput().
			Title("API Base URL").
			Placeholder(placeholder).
			Value(&a.BaseURL).
			Validate(func(s string) error {
				if a.Provider == "custom" && strings.TrimSpace(s) == "" {
					return errors.New("base URL is required for custom provider")
				}
				return nil
			}))
	}
	fields = append(fields, huh.NewInput().
		Title("Model name").
		Description("Leave empty for the provider default.").
		Placeholder(llm.DefaultModel(a.Provider)).
		Value(&a.Model))

	if err := huh.NewForm(huh.NewGroup(fields...)).Run(); err != nil {
		return Answers{}, err
	}

	// ── Step 3: Scopes, types and body ──
	scopes := strings.Join(current.Scopes, ",")
	types := strings.Join(current.Types, ",")
	restrictScopes := len(current.Scopes) > 0
	restrictTypes := len(current.Types) > 0
	if types == "" {
		types = defaultAllowedTypes
	}

	if err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Do you want to define allowed commit scopes for this project?").
				Value(&restrictScopes),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Enter the allowed scopes (comma-separated)").
				Value(&scopes),
		).WithHideFunc(func() bool { return !restrictScopes }),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Do you want to restrict which commit types are allowed?").
				Value(&restrictTypes),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Enter the allowed types (comma-separated)").
				Description(typesHelp()).
				Value(&types),
		).WithHideFunc(func() bool { return !restrictTypes }),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("How should commit message body be handled?").
				Options(
					huh.NewOption("auto: only when the change needs explaining", "auto"),
					huh.NewOption("always: every commit gets a body", "always"),
					huh.NewOption("never: header only", "never"),
				).
				Value(&a.Body),
		),
	).Run(); err != nil {
		return Answers{}, err
	}
	if restrictScopes {
		a.Scopes = ParseList(scopes)
	}
	if restrictTypes {
		a.Types = FilterTypes(ParseList(types))
	}

	// ── Step 4: Hook ──
	if inRepo {
		a.InstallHook = true
		if err := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title("Install a Git hook to validate commit messages?").
				Value(&a.InstallHook),
		)).Run(); err != nil {
			return Answers{}, err
		}
	}

	return a, nil
}

func typesHelp() string {
	var b strings.Builder
	for _, t := range committype.All() {
		b.WriteString(t.String() + " - " + t.Description() + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// PrintSummary prints the outcome of the wizard.
func PrintSummary(path string, a Answers) {
	fmt.Println()
	fmt.Println(titleStyle.Render("✓ Configuration written to " + path))
	fmt.Println()
	fmt.Println(subtitleStyle.Render("Add these environment variables:"))
	fmt.Println()
	for _, line := range EnvHints(a.Provider, a.Language) {
		fmt.Println("  " + line)
	}
	fmt.Println()
	fmt.Println(titleStyle.Render("✓ Setup complete! You can now use:"))
	fmt.Println("  git-ai commit     - Generate AI commit messages")
	fmt.Println("  git-ai changelog  - Generate changelogs")
	fmt.Println()
}

