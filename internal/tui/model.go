package tui

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	loxerror "github.com/msto63/lox/foundation/core/error"
	loxlog "github.com/msto63/lox/foundation/core/log"
	"github.com/msto63/lox/foundation/lox/scanner"

	"github.com/msto63/lox/internal/render"
	"github.com/msto63/lox/internal/runner"
)

// LineKind classifies a scrollback line
type LineKind int

const (
	LineInput LineKind = iota
	LineOutput
	LineError
	LineSystem
)

// Line is one line of scrollback
type Line struct {
	Kind LineKind
	Text string
}

// Config configures the full-screen session
type Config struct {
	Prompt       string
	ExitCommand  string
	Echo         bool
	Unterminated scanner.Unterminated
	Logger       *loxlog.Logger
}

// Model is the bubbletea model of the interactive session
type Model struct {
	// State
	width    int
	height   int
	ready    bool
	quitting bool

	// Components
	input    textinput.Model
	viewport viewport.Model

	// Session
	runner      *runner.Runner
	stdout      *bytes.Buffer
	stderr      *bytes.Buffer
	lines       []Line
	prompt      string
	exitCommand string
	lastErrors  int
}

// NewModel creates the model with its own runner. Program output and
// diagnostics are captured and appended to the scrollback.
func NewModel(cfg Config) Model {
	if cfg.Prompt == "" {
		cfg.Prompt = "> "
	}
	if cfg.ExitCommand == "" {
		cfg.ExitCommand = "exit"
	}
	if cfg.Logger == nil {
		cfg.Logger = loxlog.Discard()
	}

	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	r := runner.New(runner.Options{
		Stdout:       stdout,
		Stderr:       stderr,
		Unterminated: cfg.Unterminated,
		Logger:       cfg.Logger,
		Renderer:     render.Plain(),
		Echo:         cfg.Echo,
	})

	ti := textinput.New()
	ti.Prompt = cfg.Prompt
	ti.Placeholder = "print 1 + 2;"
	ti.CharLimit = 4000
	ti.Width = 76
	ti.Focus()

	return Model{
		input:       ti,
		viewport:    viewport.New(80, 20),
		runner:      r,
		stdout:      stdout,
		stderr:      stderr,
		prompt:      cfg.Prompt,
		exitCommand: cfg.ExitCommand,
		lines: []Line{{
			Kind: LineSystem,
			Text: fmt.Sprintf("session %s, %q quits", shortID(r.SessionID()), cfg.ExitCommand),
		}},
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit

		case "enter":
			line := strings.TrimSpace(m.input.Value())
			m.input.Reset()
			if line == "" {
				return m, nil
			}
			if line == m.exitCommand {
				m.quitting = true
				return m, tea.Quit
			}
			m.execute(line)
			m.updateContent()
			return m, nil

		case "ctrl+l":
			m.lines = nil
			m.updateContent()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-6, 1)
		m.input.Width = max(msg.Width-6-len(m.prompt), 10)
		m.ready = true
		m.updateContent()
	}

	// Update components
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// execute runs one line and moves captured output into the scrollback
func (m *Model) execute(line string) {
	m.lines = append(m.lines, Line{Kind: LineInput, Text: m.prompt + line})

	result, err := m.runner.Run(line)
	m.lines = append(m.lines, splitLines(LineOutput, m.stdout.String())...)
	m.lines = append(m.lines, splitLines(LineError, m.stderr.String())...)
	m.stdout.Reset()
	m.stderr.Reset()

	m.lastErrors = result.Diagnostics.Len()
	if err != nil {
		m.lines = append(m.lines, Line{Kind: LineError, Text: err.Error()})
		if loxerror.HasCode(err, loxerror.CodeIO) {
			m.lastErrors++
		}
	}
}

// Lines returns the scrollback
func (m Model) Lines() []Line {
	return m.lines
}

// View renders the UI
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}

	var s strings.Builder
	s.WriteString(TitleStyle.Render("lox"))
	s.WriteString("\n")
	s.WriteString(m.viewport.View())
	s.WriteString("\n")
	s.WriteString(FocusedInputStyle.Render(m.input.View()))
	s.WriteString("\n")
	s.WriteString(m.renderStatus())
	return s.String()
}

func (m *Model) renderStatus() string {
	errors := StatusOKStyle.Render("ok")
	if m.lastErrors > 0 {
		errors = StatusErrorStyle.Render(fmt.Sprintf("%d error(s)", m.lastErrors))
	}
	status := StatusBarStyle.Render(fmt.Sprintf("runs: %d", m.runner.Runs()))
	help := RenderHelp("enter: run  ctrl+l: clear  esc: quit")
	return lipgloss.JoinHorizontal(lipgloss.Top, status, " ", errors, "  ", help)
}

func (m *Model) updateContent() {
	var s strings.Builder
	for i, line := range m.lines {
		if i > 0 {
			s.WriteString("\n")
		}
		switch line.Kind {
		case LineInput:
			s.WriteString(InputEchoStyle.Render(line.Text))
		case LineError:
			s.WriteString(ErrorStyle.Render(line.Text))
		case LineSystem:
			s.WriteString(SystemStyle.Render(line.Text))
		default:
			s.WriteString(OutputStyle.Render(line.Text))
		}
	}
	m.viewport.SetContent(s.String())
	m.viewport.GotoBottom()
}

// Run starts the full-screen session and blocks until it ends
func Run(ctx context.Context, cfg Config) error {
	p := tea.NewProgram(NewModel(cfg), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return loxerror.Wrap(err, "terminal session").WithOperation("tui.run")
	}
	return nil
}

func splitLines(kind LineKind, text string) []Line {
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return nil
	}
	parts := strings.Split(text, "\n")
	lines := make([]Line, len(parts))
	for i, p := range parts {
		lines[i] = Line{Kind: kind, Text: p}
	}
	return lines
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
