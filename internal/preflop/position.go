package preflop

import (
	"fmt"
	"slices"
	"strings"
)

// Position is a seat in the fixed nine-handed acting cycle
type Position int

const (
	SB Position = iota
	BB
	UTG
	UTG1
	UTG2
	LJ
	HJ
	CO
	BTN
)

// NumPositions is the size of the full nine-handed cycle
const NumPositions = 9

var positionNames = [NumPositions]string{"SB", "BB", "UTG", "UTG1", "UTG2", "LJ", "HJ", "CO", "BTN"}

// AllPositions returns the nine-handed cycle in acting order
func AllPositions() []Position {
	return []Position{SB, BB, UTG, UTG1, UTG2, LJ, HJ, CO, BTN}
}

// String returns the seat label, e.g. "BTN"
func (p Position) String() string {
	if p < SB || p > BTN {
		return fmt.Sprintf("Position(%d)", int(p))
	}
	return positionNames[p]
}

// Blind reports whether the seat posts a blind
func (p Position) Blind() bool {
	return p == SB || p == BB
}

// Late reports whether an open or raise from this seat counts as a late steal
func (p Position) Late() bool {
	return p == CO || p == BTN || p == SB
}

// ParsePosition parses a seat label case-insensitively ("btn", "UTG+1" and "UTG1" are accepted)
func ParsePosition(s string) (Position, error) {
	key := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), "+", ""))
	for i, name := range positionNames {
		if key == name {
			return Position(i), nil
		}
	}
	return 0, fmt.Errorf("unknown position %q", s)
}

// MarshalText encodes the seat label
func (p Position) MarshalText() ([]byte, error) {
	if p < SB || p > BTN {
		return nil, fmt.Errorf("invalid position %d", int(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText decodes a seat label
func (p *Position) UnmarshalText(b []byte) error {
	parsed, err := ParsePosition(string(b))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// ActivePositions returns the seats in play for n players: both blinds plus
// the n-2 seats closest to the button, in acting order. At five to eight
// players the earliest of those seats is first to act and is labelled UTG,
// so 6-max is SB, BB, UTG, HJ, CO, BTN. n above 9 is clamped; n below 2
// yields just the first n blinds.
func ActivePositions(n int) []Position {
	blinds := []Position{SB, BB}
	if n <= 0 {
		return nil
	}
	if n <= 2 {
		return slices.Clone(blinds[:n])
	}
	n = min(n, NumPositions)
	others := []Position{UTG, UTG1, UTG2, LJ, HJ, CO, BTN}
	seats := slices.Clone(others[len(others)-(n-2):])
	if len(seats) >= 3 {
		seats[0] = UTG
	}
	return append(blinds, seats...)
}

// After returns the seats of active that act after p, in order
func After(active []Position, p Position) []Position {
	idx := slices.Index(active, p)
	if idx < 0 {
		return nil
	}
	return slices.Clone(active[idx+1:])
}

// NonBlinds filters the blinds out of active
func NonBlinds(active []Position) []Position {
	var out []Position
	for _, p := range active {
		if !p.Blind() {
			out = append(out, p)
		}
	}
	return out
}
