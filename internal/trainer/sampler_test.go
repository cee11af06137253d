package trainer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/preflop-trainer/internal/preflop"
	"github.com/lox/preflop-trainer/internal/randutil"
	"github.com/lox/preflop-trainer/poker"
)

func TestFindHandForActionReachable(t *testing.T) {
	rng := randutil.New(11)
	tests := []struct {
		spot   preflop.Spot
		target preflop.Action
	}{
		{preflop.Spot{Mode: preflop.RFI, Hero: preflop.UTG, Stack: 100}, preflop.Raise},
		{preflop.Spot{Mode: preflop.RFI, Hero: preflop.UTG, Stack: 100}, preflop.Fold},
		{preflop.Spot{Mode: preflop.RFI, Hero: preflop.BTN, Stack: 8}, preflop.AllIn},
		{preflop.Spot{Mode: preflop.VsOpen, Hero: preflop.BB, Villain: preflop.BTN, Stack: 40}, preflop.Call},
		{preflop.Spot{Mode: preflop.VsOpen, Hero: preflop.BB, Villain: preflop.BTN, Stack: 40}, preflop.Raise},
		{preflop.Spot{Mode: preflop.VsOpen, Hero: preflop.CO, Villain: preflop.UTG, Stack: 10}, preflop.AllIn},
		{preflop.Spot{Mode: preflop.Vs4Bet, Hero: preflop.BTN, Stack: 80}, preflop.Call},
		{preflop.Spot{Mode: preflop.Vs4Bet, Hero: preflop.BTN, Stack: 80}, preflop.AllIn},
		{preflop.Spot{Mode: preflop.PushFold, Hero: preflop.SB, Stack: 10}, preflop.AllIn},
	}
	for _, tt := range tests {
		t.Run(tt.spot.String()+" "+tt.target.String(), func(t *testing.T) {
			require.True(t, preflop.Reachable(tt.spot, tt.target))
			for range 20 {
				h, found := FindHandForAction(rng, tt.spot, tt.target)
				require.True(t, found)
				assert.True(t, h.Valid())
				assert.Equal(t, tt.target, preflop.EvaluateHand(tt.spot, h))
			}
		})
	}
}

func TestFindHandForActionFallback(t *testing.T) {
	rng := randutil.New(12)

	h, found := FindHandForAction(rng, preflop.Spot{Mode: preflop.RFI, Hero: preflop.BB, Stack: 40}, preflop.Raise)
	assert.False(t, found)
	assert.Equal(t, poker.MustParseHand("AsAh"), h)

	h, found = FindHandForAction(rng, preflop.Spot{Mode: preflop.PushFold, Hero: preflop.BTN, Stack: 10}, preflop.Call)
	assert.False(t, found)
	assert.Equal(t, poker.MustParseHand("7c2d"), h)
}

func TestFallbackHands(t *testing.T) {
	assert.Equal(t, "AsAh", Fallback(preflop.AllIn).String())
	assert.Equal(t, "AsAh", Fallback(preflop.Raise).String())
	assert.Equal(t, "7c2d", Fallback(preflop.Fold).String())
	assert.Equal(t, "7c2d", Fallback(preflop.Call).String())

	// Aces stay aggressive across the opening seats.
	for _, seat := range []preflop.Position{preflop.UTG, preflop.HJ, preflop.CO, preflop.BTN, preflop.SB} {
		for _, stack := range []int{5, 25, 100} {
			assert.True(t, preflop.EvaluateRFI(Fallback(preflop.Raise).Class(), seat, stack).Aggressive())
		}
	}
}

func TestPolicies(t *testing.T) {
	for _, m := range preflop.SupportedModes() {
		p := Policy(m)
		assert.GreaterOrEqual(t, p.Forced, 0.0, m.String())
		assert.LessOrEqual(t, p.Forced, 1.0, m.String())
		if p.Forced > 0 {
			assert.NotEmpty(t, p.Targets, m.String())
		}
	}
	assert.Equal(t, 0.7, Policy(preflop.RFI).Forced)
	assert.Zero(t, Policy(preflop.BlindDefense).Forced)
}
