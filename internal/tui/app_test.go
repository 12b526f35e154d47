package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func step(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func newTestModel(gen Generator, commit Committer) Model {
	return NewModel(Options{Stat: " a.go | 2 +-", Generate: gen, Commit: commit})
}

func staticGenerator(msg string) Generator {
	return func(context.Context) (string, error) { return msg, nil }
}

func TestGeneratedMessageMovesToReview(t *testing.T) {
	t.Parallel()

	m := newTestModel(staticGenerator("feat: add x"), nil)
	m, _ = step(t, m, generatedMsg{id: 0, message: "feat: add x"})
	if m.phase != PhaseReview {
		t.Fatalf("phase got %d want review", m.phase)
	}
	if m.message != "feat: add x" || m.action != actionAccept {
		t.Fatalf("review state got message=%q action=%d", m.message, m.action)
	}
}

func TestStaleGenerationIgnored(t *testing.T) {
	t.Parallel()

	m := newTestModel(staticGenerator("x"), nil)
	m.generationID = 2
	m, _ = step(t, m, generatedMsg{id: 1, message: "old"})
	if m.phase != PhaseLoading || m.message != "" {
		t.Fatalf("stale result applied: phase=%d message=%q", m.phase, m.message)
	}
}

func TestGenerationErrorSelectsRegenerate(t *testing.T) {
	t.Parallel()

	m := newTestModel(staticGenerator(""), nil)
	m, _ = step(t, m, generatedMsg{err: errors.New("boom")})
	if m.phase != PhaseReview || m.action != actionRegenerate {
		t.Fatalf("phase=%d action=%d", m.phase, m.action)
	}

	// Accept does nothing without a message.
	m, cmd := step(t, m, runeKey('a'))
	if m.phase != PhaseReview || cmd != nil {
		t.Fatalf("accept without message changed phase to %d", m.phase)
	}

	m, _ = step(t, m, runeKey('q'))
	res := m.Result()
	if !res.Cancelled || res.Err == nil {
		t.Fatalf("result got %+v", res)
	}
}

func TestAcceptCommits(t *testing.T) {
	t.Parallel()

	var committed string
	commit := func(msg string) error {
		committed = msg
		return nil
	}
	m := newTestModel(staticGenerator("fix: a"), commit)
	m, _ = step(t, m, generatedMsg{message: "fix: a"})

	m, cmd := step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.phase != PhaseCommitting || cmd == nil {
		t.Fatalf("phase got %d want committing", m.phase)
	}

	m, _ = step(t, m, m.doCommit()())
	if committed != "fix: a" {
		t.Fatalf("committed %q", committed)
	}
	res := m.Result()
	if !res.Committed || res.Cancelled || res.Err != nil || res.Message != "fix: a" {
		t.Fatalf("result got %+v", res)
	}
}

func TestCommitFailureReported(t *testing.T) {
	t.Parallel()

	m := newTestModel(staticGenerator("fix: a"), func(string) error { return errors.New("nothing to commit") })
	m, _ = step(t, m, generatedMsg{message: "fix: a"})
	m, _ = step(t, m, runeKey('a'))
	m, _ = step(t, m, m.doCommit()())

	res := m.Result()
	if res.Committed || res.Err == nil {
		t.Fatalf("result got %+v", res)
	}
}

func TestAcceptWithoutCommitterReturnsMessage(t *testing.T) {
	t.Parallel()

	m := newTestModel(staticGenerator("docs: x"), nil)
	m, _ = step(t, m, generatedMsg{message: "docs: x"})
	m, cmd := step(t, m, runeKey('a'))
	if m.phase != PhaseDone || cmd == nil {
		t.Fatalf("phase got %d want done", m.phase)
	}
	res := m.Result()
	if res.Committed || res.Cancelled || res.Message != "docs: x" {
		t.Fatalf("result got %+v", res)
	}
}

func TestEditSavesMessage(t *testing.T) {
	t.Parallel()

	m := newTestModel(staticGenerator("feat: a"), nil)
	m, _ = step(t, m, generatedMsg{message: "feat: a"})
	m, _ = step(t, m, runeKey('e'))
	if m.phase != PhaseEdit || m.editArea.Value() != "feat: a" {
		t.Fatalf("edit state phase=%d value=%q", m.phase, m.editArea.Value())
	}

	m.editArea.SetValue("  feat(ui): add b  ")
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if m.phase != PhaseReview || m.message != "feat(ui): add b" {
		t.Fatalf("after save phase=%d message=%q", m.phase, m.message)
	}

	m, _ = step(t, m, runeKey('e'))
	m.editArea.SetValue("discarded")
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.message != "feat(ui): add b" {
		t.Fatalf("escape kept edits: %q", m.message)
	}
}

func TestRegenerateStartsNewGeneration(t *testing.T) {
	t.Parallel()

	m := newTestModel(staticGenerator("chore: b"), nil)
	m, _ = step(t, m, generatedMsg{message: "chore: a"})
	m, cmd := step(t, m, runeKey('r'))
	if m.phase != PhaseLoading || m.generationID != 1 || m.message != "" || cmd == nil {
		t.Fatalf("regenerate state phase=%d id=%d message=%q", m.phase, m.generationID, m.message)
	}

	got := m.generate()()
	m, _ = step(t, m, got)
	if m.message != "chore: b" {
		t.Fatalf("message got %q want chore: b", m.message)
	}
}

func TestActionCursorWraps(t *testing.T) {
	t.Parallel()

	m := newTestModel(staticGenerator("x"), nil)
	m, _ = step(t, m, generatedMsg{message: "x"})
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.action != actionCancel {
		t.Fatalf("left from accept got %d want cancel", m.action)
	}
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.action != actionAccept {
		t.Fatalf("right from cancel got %d want accept", m.action)
	}
}

func TestCtrlCCancels(t *testing.T) {
	t.Parallel()

	m := newTestModel(staticGenerator("x"), nil)
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !m.Result().Cancelled {
		t.Fatalf("ctrl+c did not cancel")
	}
}
