package tui

import (
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/preflop-trainer/internal/preflop"
	"github.com/lox/preflop-trainer/internal/randutil"
	"github.com/lox/preflop-trainer/internal/render"
	"github.com/lox/preflop-trainer/internal/session"
	"github.com/lox/preflop-trainer/internal/trainer"
)

func newTestModel(t *testing.T) (*Model, *session.Session) {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel}) // Quiet logger for tests
	clock := quartz.NewMock(t)
	clock.Set(time.Date(2026, 10, 14, 11, 0, 0, 0, time.UTC))
	gen := trainer.NewGenerator(logger, randutil.New(5), trainer.WithClock(clock))
	sess := session.New(logger, gen, trainer.DefaultTrainingConfig())
	return New(logger, sess, render.NewWithProfile(io.Discard, termenv.Ascii)), sess
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyFor(a preflop.Action) tea.KeyMsg {
	return runes(string(rune('1' + int(a))))
}

func TestModelAnswerAndNext(t *testing.T) {
	m, sess := newTestModel(t)
	first := m.Scenario()
	assert.Contains(t, m.View(), "What do you do?")

	m.Update(keyFor(first.CorrectAction))
	res, ok := m.Result()
	require.True(t, ok)
	assert.Equal(t, session.Best, res.Grade)
	assert.Equal(t, first.ID, res.ScenarioID)
	assert.Contains(t, m.View(), "Correct: "+first.CorrectAction.String())

	// A second answer to the same hand is ignored.
	m.Update(keyFor(first.CorrectAction))
	assert.Equal(t, 1, sess.Stats().Moves)

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	_, ok = m.Result()
	assert.False(t, ok)
	assert.NotEqual(t, first.ID, m.Scenario().ID)
}

func TestModelNextRequiresAnswer(t *testing.T) {
	m, _ := newTestModel(t)
	first := m.Scenario()
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, first.ID, m.Scenario().ID)
}

func TestModelRangeToggle(t *testing.T) {
	m, _ := newTestModel(t)
	m.Update(runes("r"))
	assert.False(t, m.showRange, "range stays hidden until answered")

	m.Update(keyFor(preflop.Fold))
	m.Update(runes("r"))
	assert.True(t, m.showRange)
	assert.Contains(t, m.View(), "raise/jam")

	m.Update(runes("r"))
	assert.False(t, m.showRange)
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t)
	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())

	m, _ = newTestModel(t)
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestNewWithNilLogger(t *testing.T) {
	gen := trainer.NewGenerator(nil, randutil.New(9))
	sess := session.New(nil, gen, trainer.DefaultTrainingConfig())

	var m *Model
	require.NotPanics(t, func() {
		m = New(nil, sess, render.NewWithProfile(io.Discard, termenv.Ascii))
	})
	assert.NotEmpty(t, m.Scenario().ID)
}
