// Package tui implements the interactive review of a generated commit
// message: accept, edit, regenerate or cancel.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

// Phase represents the current phase of the TUI.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseReview
	PhaseEdit
	PhaseCommitting
	PhaseDone
)

// Generator produces a formatted commit message.
type Generator func(ctx context.Context) (string, error)

// Committer records message as a commit.
type Committer func(message string) error

// Options configures a review session.
type Options struct {
	// Stat is the staged-changes summary shown while generating.
	Stat     string
	Generate Generator
	// Commit may be nil, in which case accepting only returns the message.
	Commit Committer
}

// Result describes how a review session ended.
type Result struct {
	Message   string
	Committed bool
	Cancelled bool
	Err       error
}

// Model is the top-level bubbletea model.
type Model struct {
	phase Phase
	opts  Options

	// Loading
	spinner      spinner.Model
	generationID int

	// Review
	message string
	genErr  error
	action  int

	// Edit
	editArea textarea.Model

	// Result
	committed bool
	cancelled bool
	commitErr error

	// Window
	width  int
	height int

	ctx    context.Context
	cancel context.CancelFunc
}

// generatedMsg carries the outcome of one generation request.
type generatedMsg struct {
	id      int
	message string
	err     error
}

// commitDoneMsg signals the commit operation completed.
type commitDoneMsg struct{ err error }

// NewModel creates a new TUI model.
func NewModel(opts Options) Model {
	ta := textarea.New()
	ta.Placeholder = "Edit commit message..."
	ta.CharLimit = 0
	ta.ShowLineNumbers = false

	ctx, cancel := context.WithCancel(context.Background())

	m := Model{
		phase:    PhaseLoading,
		opts:     opts,
		spinner:  newSpinner(),
		editArea: ta,
		ctx:      ctx,
		cancel:   cancel,
	}
	m.resizeInputs()
	return m
}

func newSpinner() spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = selectedStyle
	return s
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.generate())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeInputs()
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, keys.CtrlC) {
			m.cancel()
			m.cancelled = true
			return m, tea.Quit
		}
	}

	switch m.phase {
	case PhaseLoading:
		return m.updateLoading(msg)
	case PhaseReview:
		return m.updateReview(msg)
	case PhaseEdit:
		return m.updateEdit(msg)
	case PhaseCommitting:
		return m.updateCommitting(msg)
	case PhaseDone:
		return m.updateDone(msg)
	}

	return m, nil
}

func (m Model) View() string {
	switch m.phase {
	case PhaseLoading:
		return m.viewLoading()
	case PhaseReview:
		return m.viewReview()
	case PhaseEdit:
		return m.viewEdit()
	case PhaseCommitting:
		return m.viewCommitting()
	case PhaseDone:
		return m.viewDone()
	}
	return ""
}

func (m Model) generate() tea.Cmd {
	id := m.generationID
	ctx := m.ctx
	gen := m.opts.Generate
	return func() tea.Msg {
		message, err := gen(ctx)
		return generatedMsg{id: id, message: message, err: err}
	}
}

// regenerate discards the current message and starts a new request.
func (m Model) regenerate() (Model, tea.Cmd) {
	m.cancel()
	m.ctx, m.cancel = context.WithCancel(context.Background())
	m.generationID++
	m.message = ""
	m.genErr = nil
	m.action = actionAccept
	m.phase = PhaseLoading
	m.spinner = newSpinner()
	return m, tea.Batch(m.spinner.Tick, m.generate())
}

// Result reports how the session ended.
func (m Model) Result() Result {
	r := Result{Message: m.message, Committed: m.committed, Cancelled: m.cancelled}
	switch {
	case m.commitErr != nil:
		r.Err = m.commitErr
	case m.genErr != nil && m.cancelled && m.message == "":
		r.Err = m.genErr
	}
	return r
}

// Run starts the TUI program and blocks until the user is done.
func Run(opts Options) (Result, error) {
	m := NewModel(opts)

	final, err := tea.NewProgram(m).Run()
	if err != nil {
		m.cancel()
		return Result{}, err
	}
	fm := final.(Model)
	fm.cancel()
	return fm.Result(), nil
}
