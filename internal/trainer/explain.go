package trainer

import (
	"fmt"
	"strings"

	"github.com/lox/preflop-trainer/internal/preflop"
	"github.com/lox/preflop-trainer/poker"
)

type explainArgs struct {
	hand   string
	seat   preflop.Position
	stack  int
	action string
	verb   string
}

var explanations = map[preflop.Mode]func(explainArgs) string{
	preflop.RFI: func(a explainArgs) string {
		return fmt.Sprintf("RFI: in %s with %dbb, %s is %s.", a.seat, a.stack, a.hand, a.action)
	},
	preflop.VsOpen: func(a explainArgs) string {
		flat := "narrow"
		if a.stack < preflop.VsOpenShortStack {
			flat = "gone"
		}
		return fmt.Sprintf("vs Open: at %dbb the flatting range is %s. %s plays as %s.", a.stack, flat, a.hand, a.action)
	},
	preflop.Vs3Bet: func(a explainArgs) string {
		return fmt.Sprintf("vs 3-bet: continuing at %dbb takes discipline. %s is %s.", a.stack, a.hand, a.action)
	},
	preflop.Vs4Bet: func(a explainArgs) string {
		return fmt.Sprintf("vs 4-bet: %dbb deep, %s is %s for value and protection.", a.stack, a.hand, a.action)
	},
	preflop.BlindDefense: func(a explainArgs) string {
		return fmt.Sprintf("Blind Defense: defending the %s with %s at %dbb is %s.", a.seat, a.hand, a.stack, a.action)
	},
	preflop.PushFold: func(a explainArgs) string {
		return fmt.Sprintf("Push/Fold: short at %dbb, %s is a mathematical %s.", a.stack, a.hand, strings.ToLower(a.verb))
	},
}

// Explain returns the explanation shown after hero answers
func Explain(c poker.HandClass, seat preflop.Position, mode preflop.Mode, action preflop.Action, stack int) string {
	a := explainArgs{
		hand:   c.String(),
		seat:   seat,
		stack:  stack,
		action: actionPhrase(action),
		verb:   actionVerb(action),
	}
	if f, ok := explanations[mode]; ok {
		return f(a)
	}
	return fmt.Sprintf("Preflop strategy for %s in %s (%dbb): %s.", a.hand, a.seat, a.stack, a.action)
}

func actionPhrase(a preflop.Action) string {
	switch a {
	case preflop.Fold:
		return "a fold"
	case preflop.Call:
		return "a call"
	case preflop.Raise:
		return "a raise"
	default:
		return "an all-in"
	}
}

func actionVerb(a preflop.Action) string {
	if a == preflop.AllIn {
		return "jam"
	}
	return a.String()
}
