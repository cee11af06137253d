package session

import (
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/preflop-trainer/internal/preflop"
	"github.com/lox/preflop-trainer/internal/randutil"
	"github.com/lox/preflop-trainer/internal/trainer"
)

func newTestSession(t *testing.T, cfg trainer.TrainingConfig) *Session {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
	clock := quartz.NewMock(t)
	clock.Set(time.Date(2026, 10, 14, 10, 0, 0, 0, time.UTC))
	gen := trainer.NewGenerator(logger, randutil.New(21), trainer.WithClock(clock))
	return New(logger, gen, cfg)
}

func TestGradeAnswer(t *testing.T) {
	tests := []struct {
		correct, chosen preflop.Action
		want            Grade
	}{
		{preflop.Raise, preflop.Raise, Best},
		{preflop.Fold, preflop.Fold, Best},
		{preflop.Raise, preflop.AllIn, Inaccuracy},
		{preflop.AllIn, preflop.Raise, Inaccuracy},
		{preflop.Fold, preflop.Call, Wrong},
		{preflop.Call, preflop.Fold, Wrong},
		{preflop.Call, preflop.Raise, Wrong},
		{preflop.Raise, preflop.Call, Wrong},
		{preflop.Fold, preflop.Raise, Blunder},
		{preflop.AllIn, preflop.Fold, Blunder},
		{preflop.Call, preflop.AllIn, Blunder},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, GradeAnswer(tt.correct, tt.chosen), "correct=%s chosen=%s", tt.correct, tt.chosen)
	}
}

func TestStatsAdd(t *testing.T) {
	var s Stats
	s.Add(Result{Mode: preflop.RFI, Grade: Best})
	s.Add(Result{Mode: preflop.RFI, Grade: Best})
	s.Add(Result{Mode: preflop.VsOpen, Grade: Wrong})

	assert.Equal(t, 3, s.Hands)
	assert.Equal(t, 3, s.Moves)
	assert.Equal(t, 2, s.Best)
	assert.Equal(t, 1, s.Wrong)
	assert.Equal(t, 67, s.Score)
	assert.Equal(t, 0, s.Streak)
	assert.Equal(t, 2, s.LongestRun)
	assert.Equal(t, ModeStats{Hands: 2, Best: 2}, s.ByMode["RFI"])
	assert.Equal(t, 0.0, s.ByMode["vs Open"].Accuracy())
	require.NoError(t, s.Validate())

	s.Add(Result{Mode: preflop.PushFold, Grade: Blunder})
	s.Add(Result{Mode: preflop.PushFold, Grade: Inaccuracy})
	assert.Equal(t, 40, s.Score)
	assert.Equal(t, 1, s.Blunder)
	assert.Equal(t, 1, s.Inaccuracy)
	require.NoError(t, s.Validate())
}

func TestStatsValidateCatchesDrift(t *testing.T) {
	s := Stats{Hands: 2, Moves: 2, Best: 1}
	assert.Error(t, s.Validate())
}

func TestSessionDealAndAnswer(t *testing.T) {
	sess := newTestSession(t, trainer.TrainingConfig{PreflopAction: preflop.Any, Players: 6, StackMin: 10, StackMax: 60})

	_, err := sess.Answer(preflop.Fold)
	require.ErrorIs(t, err, ErrNoScenario)

	for range 25 {
		sc := sess.Deal()
		current, ok := sess.Current()
		require.True(t, ok)
		assert.Equal(t, sc.ID, current.ID)

		r, err := sess.Answer(sc.CorrectAction)
		require.NoError(t, err)
		assert.Equal(t, Best, r.Grade)
		assert.Equal(t, sc.ID, r.ScenarioID)
		assert.Equal(t, sc.HandClass().String(), r.Class)

		_, ok = sess.Current()
		assert.False(t, ok)
		_, err = sess.Answer(sc.CorrectAction)
		assert.ErrorIs(t, err, ErrNoScenario)
	}

	stats := sess.Stats()
	assert.Equal(t, 25, stats.Moves)
	assert.Equal(t, 100, stats.Score)
	assert.Equal(t, 25, stats.LongestRun)
	assert.Len(t, sess.History(), 25)
	require.NoError(t, stats.Validate())

	sess.Reset()
	assert.Zero(t, sess.Stats().Moves)
	assert.Empty(t, sess.History())
}

func TestSessionRecordAndConfig(t *testing.T) {
	sess := newTestSession(t, trainer.DefaultTrainingConfig())
	sess.SetConfig(trainer.TrainingConfig{PreflopAction: preflop.PushFold, Players: 9, StackMin: 10, StackMax: 20})
	assert.Equal(t, preflop.PushFold, sess.Config().PreflopAction)

	sc := sess.Deal()
	assert.Equal(t, preflop.PushFold, sc.DrillMode)

	chosen := preflop.Fold
	if sc.CorrectAction == preflop.Fold {
		chosen = preflop.AllIn
	}
	r := sess.Record(sc, chosen)
	assert.Equal(t, Blunder, r.Grade)

	stats := sess.Stats()
	stats.ByMode["mutated"] = ModeStats{Hands: 99}
	_, leaked := sess.Stats().ByMode["mutated"]
	assert.False(t, leaked)
}

func TestSessionHistoryIsBounded(t *testing.T) {
	sess := newTestSession(t, trainer.DefaultTrainingConfig())
	sc := sess.Deal()

	total := 5*HistoryLimit + 7
	for range total {
		sess.Record(sc, preflop.Fold)
	}

	history := sess.History()
	assert.Len(t, history, HistoryLimit)
	assert.Less(t, len(sess.history), 2*HistoryLimit)
	assert.Equal(t, total, sess.Stats().Moves, "stats keep counting past the history limit")
}
