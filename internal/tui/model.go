// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/typist/internal/model"
	"github.com/verte-zerg/typist/internal/session"
	"github.com/verte-zerg/typist/internal/view"
)

// Model implements the Bubble Tea typing UI around a single session.
type Model struct {
	session *session.Session
	input   textinput.Model
	keys    keyMap
	help    help.Model

	width  int
	height int

	results []model.Result
}

var (
	correctStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	incorrectStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	pendingStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	currentWordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	titleStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	footerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	statLabelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	statValueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	statsPanelStyle  = lipgloss.NewStyle().
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
)

// NewModel constructs a typing TUI model hosting s.
func NewModel(s *session.Session) *Model {
	input := textinput.New()
	input.Prompt = "> "
	m := &Model{
		session: s,
		input:   input,
		keys:    newKeyMap(),
		help:    help.New(),
	}
	m.input.Focus()
	m.syncInput()
	return m
}

// Results returns the sessions completed while the model ran.
func (m *Model) Results() []model.Result {
	out := make([]model.Result, len(m.results))
	copy(out, m.results)
	return out
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = contentWidth(msg.Width)
		m.input.Width = contentWidth(msg.Width) - lipgloss.Width(m.input.Prompt) - 1
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Reset):
			return m, m.apply(m.session.Reset())
		case key.Matches(msg, m.keys.Pause):
			m.session.TogglePause()
			return m, m.syncInput()
		case key.Matches(msg, m.keys.Next):
			return m, m.apply(m.session.AdvancePassage())
		}
		return m, m.handleTyping(msg)
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	vm := view.Project(m.session.Snapshot())
	if len(vm.Chars) == 0 {
		return ""
	}
	width := contentWidth(m.width)
	sections := []string{
		titleStyle.Render(fmt.Sprintf("%s  %s", vm.Title, vm.Position)),
		"",
		wrapStyledRunes(buildStyledRunes(vm), width),
		"",
		m.input.View(),
		"",
		renderStats(vm),
		m.renderFooter(vm),
	}
	content := lipgloss.NewStyle().Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m *Model) handleTyping(msg tea.KeyMsg) tea.Cmd {
	before := m.session.Snapshot()
	if view.Project(before).InputDisabled {
		return nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if value := m.input.Value(); value != string(before.Input) {
		m.session.SubmitInput(value)
		if res, ok := m.session.Result(); ok {
			m.results = append(m.results, res)
		}
	}
	return tea.Batch(cmd, m.syncInput())
}

// apply carries out a transition's requested effect.
func (m *Model) apply(effect session.Effect) tea.Cmd {
	cmd := m.syncInput()
	if effect == session.EffectFocusInput {
		return tea.Batch(cmd, m.input.Focus())
	}
	return cmd
}

// syncInput mirrors the session into the input surface and key help.
func (m *Model) syncInput() tea.Cmd {
	st := m.session.Snapshot()
	vm := view.Project(st)
	m.input.Placeholder = vm.Placeholder
	m.input.CharLimit = len(st.Target)
	if m.input.Value() != vm.Input {
		m.input.SetValue(vm.Input)
	}
	for _, c := range vm.Controls {
		if c.Action == view.ActionTogglePause {
			m.keys.Pause.SetEnabled(c.Enabled)
			m.keys.Pause.SetHelp("ctrl+p", strings.ToLower(c.Label))
		}
	}
	if vm.InputDisabled {
		m.input.Blur()
		return nil
	}
	if !m.input.Focused() {
		return m.input.Focus()
	}
	return nil
}

func renderStats(vm view.Model) string {
	stat := func(label, value string) string {
		return statLabelStyle.Render(label+" ") + statValueStyle.Render(value)
	}
	row := strings.Join([]string{
		stat("WPM", fmt.Sprintf("%d", vm.Stats.WordsPerMinute)),
		stat("Accuracy", fmt.Sprintf("%d%%", vm.Stats.AccuracyPercent)),
		stat("Errors", fmt.Sprintf("%d", vm.Stats.ErrorCount)),
	}, "   ")
	return statsPanelStyle.Render(row)
}

func (m *Model) renderFooter(vm view.Model) string {
	segments := []string{
		fmt.Sprintf("Progress %d%%", vm.Progress),
		vm.Status.String(),
	}
	if n := len(m.results); n > 0 {
		segments = append(segments, fmt.Sprintf("Completed %d", n))
	}
	return footerStyle.Render(strings.Join(segments, " · ")) + "\n" + m.help.ShortHelpView(m.keys.ShortHelp())
}

func contentWidth(total int) int {
	if total <= 0 {
		return 0
	}
	w := int(float64(total) * 0.70)
	if w < 1 {
		w = 1
	}
	return w
}
