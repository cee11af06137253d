// Package tui runs the interactive drill loop in the terminal.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/preflop-trainer/internal/preflop"
	"github.com/lox/preflop-trainer/internal/render"
	"github.com/lox/preflop-trainer/internal/session"
	"github.com/lox/preflop-trainer/internal/trainer"
)

// Model is the Bubble Tea model for a drill session
type Model struct {
	sess   *session.Session
	render *render.Renderer
	logger *log.Logger

	keys keyMap
	help help.Model

	scenario  trainer.Scenario
	result    *session.Result
	showRange bool
	quitting  bool

	width  int
	height int
}

// New creates a drill model and deals the first scenario
func New(logger *log.Logger, sess *session.Session, r *render.Renderer) *Model {
	if logger == nil {
		logger = log.Default()
	}
	m := &Model{
		sess:   sess,
		render: r,
		logger: logger.WithPrefix("tui"),
		keys:   defaultKeyMap(),
		help:   help.New(),
	}
	m.scenario = sess.Deal()
	return m
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles key presses and window resizes
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Range):
			if m.result != nil {
				m.showRange = !m.showRange
			}
		case key.Matches(msg, m.keys.Next):
			if m.result != nil {
				m.result = nil
				m.showRange = false
				m.scenario = m.sess.Deal()
			}
		default:
			if action, ok := m.keys.actionFor(msg); ok && m.result == nil {
				m.answer(action)
			}
		}
	}
	return m, nil
}

func (m *Model) answer(action preflop.Action) {
	r, err := m.sess.Answer(action)
	if err != nil {
		m.logger.Warn("Answer rejected", "error", err)
		return
	}
	m.result = &r
}

// View renders the scenario, the verdict once answered and the help bar
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{m.render.Scenario(m.scenario), ""}
	if m.result == nil {
		sections = append(sections, "What do you do?")
	} else {
		sections = append(sections, m.render.Result(*m.result))
		if m.showRange {
			sections = append(sections, "", m.render.Range(m.scenario.RangeData.Category, m.scenario.RangeData.Matrix))
		}
	}
	sections = append(sections, "", m.render.Stats(m.sess.Stats()), "", m.help.View(m.keys))

	return lipgloss.NewStyle().Padding(1, 2).Render(strings.Join(sections, "\n"))
}

// Scenario returns the scenario on screen
func (m *Model) Scenario() trainer.Scenario {
	return m.scenario
}

// Result returns the verdict for the current scenario, if answered
func (m *Model) Result() (session.Result, bool) {
	if m.result == nil {
		return session.Result{}, false
	}
	return *m.result, true
}

// Run starts the drill on the terminal and blocks until the user quits
func Run(logger *log.Logger, sess *session.Session, r *render.Renderer) error {
	_, err := tea.NewProgram(New(logger, sess, r), tea.WithAltScreen()).Run()
	return err
}
