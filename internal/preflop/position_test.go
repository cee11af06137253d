package preflop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivePositions(t *testing.T) {
	for n := 2; n <= 9; n++ {
		seats := ActivePositions(n)
		require.Len(t, seats, n, "players=%d", n)
		assert.Equal(t, SB, seats[0])
		assert.Equal(t, BB, seats[1])

		seen := make(map[Position]bool)
		for i, p := range seats {
			assert.False(t, seen[p], "players=%d duplicate seat %s", n, p)
			seen[p] = true
			if i > 0 {
				assert.Greater(t, p, seats[i-1], "players=%d seats out of acting order", n)
			}
		}
		if n >= 3 {
			assert.Equal(t, BTN, seats[n-1], "players=%d last seat should be the button", n)
		}
	}
}

func TestActivePositionsLabels(t *testing.T) {
	tests := []struct {
		players int
		want    []Position
	}{
		{2, []Position{SB, BB}},
		{3, []Position{SB, BB, BTN}},
		{4, []Position{SB, BB, CO, BTN}},
		{5, []Position{SB, BB, UTG, CO, BTN}},
		{6, []Position{SB, BB, UTG, HJ, CO, BTN}},
		{9, []Position{SB, BB, UTG, UTG1, UTG2, LJ, HJ, CO, BTN}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ActivePositions(tt.players), "players=%d", tt.players)
	}
	assert.Len(t, ActivePositions(12), 9)
	assert.Empty(t, ActivePositions(0))
}

func TestAfterAndNonBlinds(t *testing.T) {
	seats := ActivePositions(6)
	assert.Equal(t, []Position{CO, BTN}, After(seats, HJ))
	assert.Empty(t, After(seats, BTN))
	assert.Nil(t, After(seats, LJ))
	assert.Equal(t, []Position{UTG, HJ, CO, BTN}, NonBlinds(seats))
}

func TestParseLabels(t *testing.T) {
	p, err := ParsePosition("utg+1")
	require.NoError(t, err)
	assert.Equal(t, UTG1, p)
	_, err = ParsePosition("MP")
	assert.Error(t, err)

	a, err := ParseAction("all-in")
	require.NoError(t, err)
	assert.Equal(t, AllIn, a)
	_, err = ParseAction("check")
	assert.Error(t, err)

	for _, m := range append([]Mode{Any}, SupportedModes()...) {
		fromLabel, err := ParseMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, fromLabel)
		fromSlug, err := ParseMode(m.Slug())
		require.NoError(t, err)
		assert.Equal(t, m, fromSlug)
	}
	m, err := ParseMode("vs3bet")
	require.NoError(t, err)
	assert.Equal(t, Vs3Bet, m)
	_, err = ParseMode("vs Limp")
	assert.Error(t, err)
}

func TestActionOrdering(t *testing.T) {
	assert.Less(t, Fold, Call)
	assert.Less(t, Call, Raise)
	assert.Less(t, Raise, AllIn)
	assert.Equal(t, FreqFold, Fold.Frequency())
	assert.Equal(t, FreqCall, Call.Frequency())
	assert.Equal(t, FreqAggressive, Raise.Frequency())
	assert.Equal(t, FreqAggressive, AllIn.Frequency())
}
