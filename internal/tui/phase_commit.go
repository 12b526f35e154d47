package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) doCommit() tea.Cmd {
	message := m.message
	commit := m.opts.Commit
	return func() tea.Msg {
		return commitDoneMsg{err: commit(message)}
	}
}

func (m Model) updateCommitting(msg tea.Msg) (tea.Model, tea.Cmd) {
	if done, ok := msg.(commitDoneMsg); ok {
		m.commitErr = done.err
		m.committed = done.err == nil
		m.phase = PhaseDone
		return m, tea.Quit
	}
	return m.spinnerTick(msg)
}

func (m Model) viewCommitting() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")
	b.WriteString(m.spinner.View() + " Committing...")
	return m.renderBox(b.String())
}

func (m Model) updateDone(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) viewDone() string {
	var b strings.Builder
	contentWidth := m.contentWidth()

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	switch {
	case m.commitErr != nil:
		b.WriteString(errorStyle.Render(wrapText(fmt.Sprintf("✗ Failed to create commit: %s", m.commitErr), contentWidth)))
	case m.committed:
		b.WriteString(successStyle.Render("✓ Commit created successfully!"))
		b.WriteString("\n")
		b.WriteString(renderWrappedLine("  ", "  ", firstLine(m.message), highlightStyle, contentWidth))
	default:
		b.WriteString(successStyle.Render("✓ Commit message accepted"))
	}
	b.WriteString("\n")
	return m.renderBox(b.String())
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}
