package trainer

import (
	rand "math/rand/v2"

	"github.com/lox/preflop-trainer/internal/preflop"
	"github.com/lox/preflop-trainer/poker"
)

// MaxAttempts bounds the rejection loop in FindHandForAction
const MaxAttempts = 3000

var (
	fallbackAggressive = poker.MustParseHand("AsAh")
	fallbackPassive    = poker.MustParseHand("7c2d")
)

// Fallback returns the stand-in hand for target: aces for RAISE and ALLIN,
// seven-deuce offsuit for FOLD and CALL.
func Fallback(target preflop.Action) poker.Hand {
	if target.Aggressive() {
		return fallbackAggressive
	}
	return fallbackPassive
}

// FindHandForAction draws uniformly random hands until one evaluates to
// target in spot. It gives up after MaxAttempts draws, or immediately when
// no class reaches target, and returns Fallback(target) with found false.
func FindHandForAction(rng *rand.Rand, spot preflop.Spot, target preflop.Action) (hand poker.Hand, found bool) {
	if !preflop.Reachable(spot, target) {
		return Fallback(target), false
	}
	table := spot.Table()
	for range MaxAttempts {
		h := poker.RandomHand(rng)
		if table.Decide(preflop.ShapeOf(h.Class())).Then == target {
			return h, true
		}
	}
	return Fallback(target), false
}
