package preflop

import (
	"github.com/lox/preflop-trainer/poker"
)

// Reachable reports whether any of the 169 classes evaluates to target in s
func Reachable(s Spot, target Action) bool {
	t := s.Table()
	for _, c := range poker.AllClasses() {
		if t.Decide(ShapeOf(c)).Then == target {
			return true
		}
	}
	return false
}

// ReachableActions lists the actions some class evaluates to in s, in aggression order
func ReachableActions(s Spot) []Action {
	t := s.Table()
	var seen [4]bool
	for _, c := range poker.AllClasses() {
		seen[t.Decide(ShapeOf(c)).Then] = true
	}
	var out []Action
	for _, a := range AllActions() {
		if seen[a] {
			out = append(out, a)
		}
	}
	return out
}
