package preflop

import (
	"fmt"
	"strings"
)

// Action is a preflop decision, ordered by aggression
type Action int

const (
	Fold Action = iota
	Call
	Raise
	AllIn
)

var actionNames = [...]string{"FOLD", "CALL", "RAISE", "ALLIN"}

// AllActions lists every action in aggression order
func AllActions() []Action {
	return []Action{Fold, Call, Raise, AllIn}
}

// String returns the action label, e.g. "RAISE"
func (a Action) String() string {
	if a < Fold || a > AllIn {
		return fmt.Sprintf("Action(%d)", int(a))
	}
	return actionNames[a]
}

// Aggressive reports whether the action puts more chips in as a raise or shove
func (a Action) Aggressive() bool {
	return a == Raise || a == AllIn
}

// Frequency maps the action to its range display class
func (a Action) Frequency() Frequency {
	switch {
	case a.Aggressive():
		return FreqAggressive
	case a == Call:
		return FreqCall
	default:
		return FreqFold
	}
}

// ParseAction parses an action label ("raise", "all-in", "jam" and "shove" are accepted)
func ParseAction(s string) (Action, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "FOLD", "F":
		return Fold, nil
	case "CALL", "C":
		return Call, nil
	case "RAISE", "R":
		return Raise, nil
	case "ALLIN", "ALL-IN", "ALL IN", "JAM", "SHOVE", "A":
		return AllIn, nil
	}
	return 0, fmt.Errorf("unknown action %q", s)
}

// MarshalText encodes the action label
func (a Action) MarshalText() ([]byte, error) {
	if a < Fold || a > AllIn {
		return nil, fmt.Errorf("invalid action %d", int(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText decodes an action label
func (a *Action) UnmarshalText(b []byte) error {
	parsed, err := ParseAction(string(b))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
