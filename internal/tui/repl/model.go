// ============================================================================
// numtower - Exact Numeric Tower
// ============================================================================
//
// Package:     repl
// Description: Bubbletea model for the interactive numtower shell
// Author:      Mike Stoffels
// Created:     2026-10-09
// License:     MIT
// ============================================================================

package repl

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/msto63/numtower/foundation/core/config"
	"github.com/msto63/numtower/foundation/core/log"
	"github.com/msto63/numtower/internal/display"
	"github.com/msto63/numtower/internal/history"
	"github.com/msto63/numtower/pkg/formula"
	"github.com/msto63/numtower/pkg/version"
)

const storeTimeout = 2 * time.Second

// Config holds REPL configuration
type Config struct {
	Prompt      string
	MaxLines    int
	RecallLimit int
	Display     display.Options
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return ConfigFrom(config.Default())
}

// ConfigFrom derives the REPL configuration from the application config
func ConfigFrom(cfg *config.Config) Config {
	return Config{
		Prompt:      cfg.REPL.Prompt,
		MaxLines:    cfg.REPL.MaxLines,
		RecallLimit: cfg.History.Limit,
		Display:     display.FromConfig(cfg),
	}
}

// Model is the Bubbletea model for the REPL
type Model struct {
	// State
	width         int
	height        int
	ready         bool
	historyOnline bool

	// Components
	input    textinput.Model
	viewport viewport.Model

	// Evaluation
	cfg     Config
	session *formula.Session
	store   history.Store
	logger  *log.Logger

	// Transcript
	lines []Line

	// Input recall
	recall      []string // oldest first
	recallIndex int      // -1 = new input
	draft       string   // input saved when recall navigation starts
}

// New creates a new REPL model. A nil store disables history, a nil logger
// discards log output.
func New(cfg Config, session *formula.Session, store history.Store, logger *log.Logger) Model {
	if cfg.Prompt == "" {
		cfg.Prompt = DefaultConfig().Prompt
	}
	if store == nil {
		store = history.NopStore{}
	}
	if logger == nil {
		logger = log.Discard()
	}

	ti := textinput.New()
	ti.Prompt = cfg.Prompt
	ti.Placeholder = "expression, name = expression or :help"
	ti.PlaceholderStyle = placeholderStyle
	ti.CharLimit = 4096
	ti.Focus()

	_, disabled := store.(history.NopStore)

	return Model{
		input:         ti,
		cfg:           cfg,
		session:       session,
		store:         store,
		logger:        logger.WithField("component", "repl"),
		historyOnline: !disabled,
		recallIndex:   -1,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.loadRecall,
		tea.EnterAltScreen,
	)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 3 // Title panel
		footerHeight := 7 // Transcript border + input + status bar + help
		viewportHeight := msg.Height - headerHeight - footerHeight
		if viewportHeight < 1 {
			viewportHeight = 1
		}

		if !m.ready {
			m.viewport = viewport.New(msg.Width-4, viewportHeight)
			m.viewport.YPosition = headerHeight
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 4
			m.viewport.Height = viewportHeight
		}
		m.input.Width = msg.Width - 6 - lipgloss.Width(m.cfg.Prompt)
		m.updateViewportContent()

	case recallLoadedMsg:
		if msg.err != nil {
			m.logger.LogError(msg.err)
			m.historyOnline = false
			break
		}
		m.recall = append(msg.inputs, m.recall...)

	case recordedMsg:
		if msg.err != nil {
			m.logger.LogError(msg.err)
			if m.historyOnline {
				m.historyOnline = false
				m.appendLine(LineInfo, "history disabled: "+msg.err.Error())
			}
		}
	}

	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit

	case tea.KeyCtrlL:
		m.lines = nil
		m.updateViewportContent()
		return m, nil

	case tea.KeyEnter:
		input := strings.TrimSpace(m.input.Value())
		m.input.Reset()
		if input == "" {
			return m, nil
		}
		m.remember(input)
		if strings.HasPrefix(input, ":") {
			return m.runCommand(input)
		}
		return m.evaluate(input)

	case tea.KeyUp:
		if len(m.recall) > 0 {
			if m.recallIndex == -1 {
				m.draft = m.input.Value()
				m.recallIndex = len(m.recall) - 1
			} else if m.recallIndex > 0 {
				m.recallIndex--
			}
			m.input.SetValue(m.recall[m.recallIndex])
			m.input.CursorEnd()
		}
		return m, nil

	case tea.KeyDown:
		if m.recallIndex != -1 {
			if m.recallIndex < len(m.recall)-1 {
				m.recallIndex++
				m.input.SetValue(m.recall[m.recallIndex])
			} else {
				m.recallIndex = -1
				m.input.SetValue(m.draft)
			}
			m.input.CursorEnd()
		}
		return m, nil

	case tea.KeyPgUp:
		m.viewport.ViewUp()
		return m, nil

	case tea.KeyPgDown:
		m.viewport.ViewDown()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// evaluate runs one line through the session and records it
func (m Model) evaluate(input string) (tea.Model, tea.Cmd) {
	m.appendLine(LineInput, input)

	res, err := m.session.Eval(input)
	if err != nil {
		m.appendLine(LineError, err.Error())
	} else {
		m.appendLine(LineResult, m.cfg.Display.Assignment(res.Name, res.Value))
	}
	m.updateViewportContent()
	m.viewport.GotoBottom()

	if !m.historyOnline {
		return m, nil
	}
	return m, m.record(history.NewEntry(m.session.ID(), input, res.Value, err))
}

// runCommand executes a colon command
func (m Model) runCommand(input string) (tea.Model, tea.Cmd) {
	fields := strings.Fields(strings.TrimPrefix(input, ":"))
	name := ""
	if len(fields) > 0 {
		name = fields[0]
	}

	m.appendLine(LineInput, input)
	switch name {
	case "q", "quit", "exit":
		return m, tea.Quit

	case "clear":
		m.lines = nil

	case "vars":
		names := m.session.Vars()
		if len(names) == 0 {
			m.appendLine(LineInfo, "no variables")
		}
		for _, n := range names {
			v, _ := m.session.Get(n)
			m.appendLine(LineResult, m.cfg.Display.Assignment(n, v))
		}

	case "reset":
		m.session.Reset()
		m.appendLine(LineInfo, "variables cleared")

	case "mode":
		if len(fields) != 2 {
			m.appendLine(LineInfo, "mode: "+m.cfg.Display.Mode)
			break
		}
		switch mode := strings.ToLower(fields[1]); mode {
		case config.ModeExact, config.ModeFloat, config.ModeBoth:
			m.cfg.Display.Mode = mode
			m.logger.Info("display mode changed", log.Fields{"mode": mode})
			m.appendLine(LineInfo, "mode: "+mode)
		default:
			m.appendLine(LineError, fmt.Sprintf("unknown mode %q, expected exact, float or both", fields[1]))
		}

	case "help":
		for _, text := range helpText() {
			m.appendLine(LineInfo, text)
		}

	default:
		m.appendLine(LineError, fmt.Sprintf("unknown command %q, try :help", input))
	}

	m.updateViewportContent()
	m.viewport.GotoBottom()
	return m, nil
}

func helpText() []string {
	return []string{
		"enter an expression such as 1/3 + 1/6 or sqrt(-4), or assign with x = 2^-1",
		formula.AnsName + " holds the last result",
		"commands: :vars :reset :mode [exact|float|both] :clear :help :quit",
		"functions: " + strings.Join(formula.Functions(), " "),
	}
}

// remember appends input to the recall list unless it repeats the last entry
func (m *Model) remember(input string) {
	if len(m.recall) == 0 || m.recall[len(m.recall)-1] != input {
		m.recall = append(m.recall, input)
	}
	m.recallIndex = -1
	m.draft = ""
}

// appendLine adds a transcript line, dropping the oldest beyond MaxLines
func (m *Model) appendLine(kind LineKind, text string) {
	m.lines = append(m.lines, Line{Kind: kind, Text: text})
	if m.cfg.MaxLines > 0 && len(m.lines) > m.cfg.MaxLines {
		m.lines = m.lines[len(m.lines)-m.cfg.MaxLines:]
	}
}

// record writes entry to the history store
func (m Model) record(entry *history.Entry) tea.Cmd {
	store := m.store
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()
		return recordedMsg{err: store.Record(ctx, entry)}
	}
}

// loadRecall reads previous inputs from the history store
func (m Model) loadRecall() tea.Msg {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	entries, err := m.store.Recent(ctx, history.Filter{Limit: m.cfg.RecallLimit})
	if err != nil {
		return recallLoadedMsg{err: err}
	}
	inputs := make([]string, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		inputs = append(inputs, entries[i].Expression)
	}
	return recallLoadedMsg{inputs: inputs}
}

func (m *Model) updateViewportContent() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderTranscript())
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Starting numtower..."
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(transcriptStyle.Width(m.width - 2).Render(m.viewport.View()))
	b.WriteString("\n")
	b.WriteString(inputBoxStyle.Width(m.width - 2).Render(m.input.View()))
	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")
	b.WriteString(m.renderHelpBar())
	return b.String()
}

func (m Model) renderHeader() string {
	header := lipgloss.JoinHorizontal(lipgloss.Center,
		logoStyle.Render(logo),
		"   ",
		taglineStyle.Render("exact rational and Gaussian arithmetic"),
	)
	return headerStyle.Width(m.width - 4).Render(header)
}

func (m Model) renderTranscript() string {
	var b strings.Builder
	for i, line := range m.lines {
		if i > 0 {
			b.WriteString("\n")
		}
		text := line.Text
		if line.Kind == LineInput {
			text = m.cfg.Prompt + text
		}
		b.WriteString(lineStyles[line.Kind].Render(text))
	}
	return b.String()
}

// renderStatusBar renders mode, session and history state
func (m Model) renderStatusBar() string {
	sessionID := m.session.ID()
	if len(sessionID) > 8 {
		sessionID = sessionID[:8]
	}

	left := labelStyle.Render("mode ") + valueStyle.Render(m.cfg.Display.Mode) +
		labelStyle.Render("  session ") + valueStyle.Render(sessionID)

	var right string
	if m.historyOnline {
		right = onlineStyle.Render("history on")
	} else {
		right = offlineStyle.Render("history off")
	}
	right += labelStyle.Render("  " + version.String())

	space := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if space < 2 {
		space = 2
	}
	return statusStyle.Width(m.width - 2).Render(left + strings.Repeat(" ", space) + right)
}

// renderHelpBar renders the help shortcuts bar
func (m Model) renderHelpBar() string {
	items := []string{
		keyHint("Enter", "evaluate"),
		keyHint("↑/↓", "recall"),
		keyHint("PgUp/PgDn", "scroll"),
		keyHint("Ctrl+L", "clear"),
		keyHint("Ctrl+C", "quit"),
	}
	return hintStyle.Render(strings.Join(items, "  "))
}
