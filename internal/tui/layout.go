package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	fallbackContentWidth = 72
	minContentWidth      = 32
	minInputWidth        = 20
)

func (m *Model) resizeInputs() {
	editWidth := max(m.contentWidth()-4, minInputWidth)
	m.editArea.SetWidth(editWidth)

	// Commit messages are short; grow with the terminal but stay compact.
	editHeight := 8
	if m.height > 0 {
		editHeight = min(max(m.height/2, 6), 16)
	}
	m.editArea.SetHeight(editHeight)
}

func (m Model) contentWidth() int {
	if m.width <= 0 {
		return fallbackContentWidth
	}
	return max(m.width-boxStyle.GetHorizontalFrameSize()-2, minContentWidth)
}

func (m Model) renderBox(content string) string {
	style := boxStyle
	if m.width > 2 {
		style = style.MaxWidth(m.width - 2)
	}
	return style.Render(content)
}

func wrapText(text string, width int) string {
	if width <= 0 || text == "" {
		return text
	}

	var b strings.Builder
	lineWidth := 0

	for _, r := range text {
		switch r {
		case '\n':
			b.WriteRune(r)
			lineWidth = 0
			continue
		case '\t':
			r = ' '
		}

		rw := lipgloss.Width(string(r))
		if rw <= 0 {
			continue
		}

		if lineWidth+rw > width {
			b.WriteByte('\n')
			lineWidth = 0
			if r == ' ' {
				continue
			}
		}

		b.WriteRune(r)
		lineWidth += rw
	}

	return strings.TrimRight(b.String(), " ")
}

func renderWrappedLine(prefix, prefixView, text string, style lipgloss.Style, width int) string {
	textWidth := max(width-lipgloss.Width(prefix), 8)

	wrapped := wrapText(text, textWidth)
	lines := strings.Split(wrapped, "\n")
	indent := strings.Repeat(" ", lipgloss.Width(prefix))

	var b strings.Builder
	for i, line := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		if i == 0 {
			b.WriteString(prefixView)
		} else {
			b.WriteString(indent)
		}
		b.WriteString(style.Render(line))
	}
	return b.String()
}
