package trainer

import (
	"github.com/lox/preflop-trainer/internal/preflop"
)

// SamplingPolicy decides how hero's hand is drawn for a mode. With
// probability Forced a hand is rejection-sampled toward one of Targets,
// otherwise it is dealt uniformly and classified by the evaluator.
type SamplingPolicy struct {
	Forced  float64
	Targets []preflop.Action
}

// Pot sizes and bet amounts in big blinds for each mode's action history
const (
	unopenedPot = 1.5

	openSize   = 2.2
	vsOpenPot  = 3.7
	heroOpen   = 2.5
	threeBet   = 9.0
	vs3BetPot  = 13.0
	fourBetPot = 30.5
	heroThree  = 7.0
	fourBet    = 22.0
	stealSize  = 2.5
	stealPot   = 4.0
)

var samplingPolicies = map[preflop.Mode]SamplingPolicy{
	preflop.RFI:          {Forced: 0.7, Targets: []preflop.Action{preflop.Raise}},
	preflop.VsOpen:       {Forced: 0.6, Targets: []preflop.Action{preflop.Call, preflop.Raise, preflop.AllIn}},
	preflop.Vs3Bet:       {Forced: 1.0, Targets: []preflop.Action{preflop.Raise}},
	preflop.Vs4Bet:       {Forced: 1.0, Targets: []preflop.Action{preflop.Raise}},
	preflop.BlindDefense: {},
	preflop.PushFold:     {},
}

// Policy returns the sampling policy for mode; unknown modes are never forced
func Policy(mode preflop.Mode) SamplingPolicy {
	return samplingPolicies[mode]
}
