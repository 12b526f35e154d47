package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	actionAccept = iota
	actionEdit
	actionRegenerate
	actionCancel

	actionCount = 4
)

var actionLabels = [actionCount]string{"Accept", "Edit", "Regenerate", "Cancel"}

func (m Model) updateReview(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.Left):
		m.action = (m.action + actionCount - 1) % actionCount
		return m, nil
	case key.Matches(keyMsg, keys.Right):
		m.action = (m.action + 1) % actionCount
		return m, nil
	case key.Matches(keyMsg, keys.Enter):
		return m.runAction(m.action)
	case key.Matches(keyMsg, keys.Accept):
		return m.runAction(actionAccept)
	case key.Matches(keyMsg, keys.Edit):
		return m.runAction(actionEdit)
	case key.Matches(keyMsg, keys.Regen):
		return m.runAction(actionRegenerate)
	case key.Matches(keyMsg, keys.Cancel), key.Matches(keyMsg, keys.Escape):
		return m.runAction(actionCancel)
	}
	return m, nil
}

func (m Model) runAction(action int) (tea.Model, tea.Cmd) {
	m.action = action
	switch action {
	case actionAccept:
		if m.message == "" {
			return m, nil
		}
		if m.opts.Commit == nil {
			m.phase = PhaseDone
			return m, tea.Quit
		}
		m.phase = PhaseCommitting
		return m, tea.Batch(m.spinner.Tick, m.doCommit())
	case actionEdit:
		m.editArea.SetValue(m.message)
		m.phase = PhaseEdit
		cmd := m.editArea.Focus()
		return m, cmd
	case actionRegenerate:
		return m.regenerate()
	case actionCancel:
		m.cancel()
		m.cancelled = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) viewReview() string {
	var b strings.Builder
	contentWidth := m.contentWidth()

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	if m.genErr != nil {
		b.WriteString(errorStyle.Render(wrapText(fmt.Sprintf("✗ Failed to generate commit message: %s", m.genErr), contentWidth)))
		b.WriteString("\n\n")
	} else {
		b.WriteString("Generated commit message:\n\n")
		b.WriteString(messageStyle.Render(highlightStyle.Render(wrapText(m.message, contentWidth-2))))
		b.WriteString("\n\n")
	}

	options := make([]string, 0, actionCount)
	for i, label := range actionLabels {
		if i == m.action {
			options = append(options, cursorStyle.Render("> ")+selectedStyle.Render(label))
		} else {
			options = append(options, "  "+normalStyle.Render(label))
		}
	}
	b.WriteString(strings.Join(options, "  "))

	b.WriteString(helpStyle.Render("\n\n  ←/→ select • enter confirm • a accept • e edit • r regenerate • q cancel"))
	return m.renderBox(b.String())
}
