package poker

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Hand is a player's two hole cards in dealt order
type Hand [2]Card

// NewHand creates a hand from two cards
func NewHand(a, b Card) Hand {
	return Hand{a, b}
}

// ParseHand parses "AsKd" (optionally space separated) into a Hand
func ParseHand(s string) (Hand, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), " ", "")
	if len(s) != 4 {
		return Hand{}, fmt.Errorf("invalid hand string: %q", s)
	}
	a, err := ParseCard(s[:2])
	if err != nil {
		return Hand{}, fmt.Errorf("first card: %w", err)
	}
	b, err := ParseCard(s[2:])
	if err != nil {
		return Hand{}, fmt.Errorf("second card: %w", err)
	}
	h := Hand{a, b}
	if !h.Valid() {
		return Hand{}, fmt.Errorf("duplicate card in hand: %s", s)
	}
	return h, nil
}

// MustParseHand is ParseHand for literals known to be valid
func MustParseHand(s string) Hand {
	h, err := ParseHand(s)
	if err != nil {
		panic(err)
	}
	return h
}

// Valid reports whether both cards are real and distinct
func (h Hand) Valid() bool {
	return h[0].Valid() && h[1].Valid() && h[0] != h[1]
}

// Suited reports whether both cards share a suit
func (h Hand) Suited() bool {
	return h[0].Suit() == h[1].Suit()
}

// Pair reports whether both cards share a rank
func (h Hand) Pair() bool {
	return h[0].Rank() == h[1].Rank()
}

// Class collapses the hand to its canonical starting-hand class
func (h Hand) Class() HandClass {
	return ClassOf(h[0].Rank(), h[1].Rank(), h.Suited())
}

// String returns both cards, e.g. "AsKd"
func (h Hand) String() string {
	return h[0].String() + h[1].String()
}

// MarshalJSON encodes the hand as ["As","Kd"]
func (h Hand) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{h[0].String(), h[1].String()})
}

// UnmarshalJSON decodes ["As","Kd"]
func (h *Hand) UnmarshalJSON(b []byte) error {
	var raw [2]string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	parsed, err := ParseHand(raw[0] + raw[1])
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}
