package preflop

import (
	"fmt"
	"strings"
)

// Mode is a drill mode: the preflop situation hero is asked to act in
type Mode int

const (
	// Any asks the generator to draw one of the supported modes per scenario
	Any Mode = iota
	RFI
	VsOpen
	Vs3Bet
	Vs4Bet
	BlindDefense
	PushFold
)

var modeNames = [...]string{"Any", "RFI", "vs Open", "vs 3bet", "vs 4bet", "Blind Defense", "Push/Fold"}

// SupportedModes lists the concrete drill modes Any draws from
func SupportedModes() []Mode {
	return []Mode{RFI, VsOpen, Vs3Bet, Vs4Bet, BlindDefense, PushFold}
}

// String returns the display label, e.g. "vs 3bet"
func (m Mode) String() string {
	if m < Any || m > PushFold {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// Slug returns a flag-friendly label, e.g. "vs-3bet"
func (m Mode) Slug() string {
	return strings.ToLower(strings.NewReplacer(" ", "-", "/", "-").Replace(m.String()))
}

// Contextual reports whether the mode's evaluator reads a context seat
func (m Mode) Contextual() bool {
	return m == VsOpen || m == Vs3Bet
}

// ParseMode accepts the display label or slug in any case ("vs 3bet", "vs-3bet", "vs3bet", "push/fold")
func ParseMode(s string) (Mode, error) {
	norm := normaliseMode(s)
	for i, name := range modeNames {
		if norm == normaliseMode(name) {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("unknown drill mode %q", s)
}

func normaliseMode(s string) string {
	return strings.ToLower(strings.NewReplacer(" ", "", "-", "", "/", "", "_", "").Replace(strings.TrimSpace(s)))
}

// MarshalText encodes the display label
func (m Mode) MarshalText() ([]byte, error) {
	if m < Any || m > PushFold {
		return nil, fmt.Errorf("invalid mode %d", int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText decodes a display label or slug
func (m *Mode) UnmarshalText(b []byte) error {
	parsed, err := ParseMode(string(b))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
