// Package poker provides card, hole-card and starting-hand-class primitives.
package poker

import (
	"fmt"
	"math/bits"
)

// Card represents a single card as a bit position in a uint64.
// Layout: [13 spades][13 hearts][13 diamonds][13 clubs]
type Card uint64

// Suit constants
const (
	Clubs    uint8 = 0
	Diamonds uint8 = 1
	Hearts   uint8 = 2
	Spades   uint8 = 3
)

// Rank constants (0-12 for 2-A)
const (
	Two   uint8 = 0
	Three uint8 = 1
	Four  uint8 = 2
	Five  uint8 = 3
	Six   uint8 = 4
	Seven uint8 = 5
	Eight uint8 = 6
	Nine  uint8 = 7
	Ten   uint8 = 8
	Jack  uint8 = 9
	Queen uint8 = 10
	King  uint8 = 11
	Ace   uint8 = 12
)

const (
	rankChars = "23456789TJQKA"
	suitChars = "cdhs"
)

// NewCard creates a card from rank and suit
func NewCard(rank, suit uint8) Card {
	offset := suit*13 + rank
	return Card(1) << offset
}

// position returns which bit this card occupies (0-51), or 255 for the zero card
func (c Card) position() uint8 {
	if c == 0 {
		return 255
	}
	return uint8(bits.TrailingZeros64(uint64(c)))
}

// Rank returns the rank of the card (0-12)
func (c Card) Rank() uint8 {
	pos := c.position()
	if pos == 255 {
		return 255
	}
	return pos % 13
}

// Suit returns the suit of the card (0-3)
func (c Card) Suit() uint8 {
	pos := c.position()
	if pos == 255 {
		return 255
	}
	return pos / 13
}

// Value returns the linear rank value 2..14 (ace high)
func (c Card) Value() int {
	return RankValue(c.Rank())
}

// Valid reports whether c names exactly one of the 52 cards
func (c Card) Valid() bool {
	return bits.OnesCount64(uint64(c)) == 1 && c.position() < 52
}

// String returns the string representation (e.g., "As", "Kh")
func (c Card) String() string {
	if !c.Valid() {
		return "??"
	}
	return string(rankChars[c.Rank()]) + string(suitChars[c.Suit()])
}

// MarshalText encodes the card as "As"
func (c Card) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("invalid card %d", uint64(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText decodes a card from "As"
func (c *Card) UnmarshalText(b []byte) error {
	parsed, err := ParseCard(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// RankValue converts the 0-12 rank system to the 2-14 linear order
func RankValue(rank uint8) int {
	return int(rank) + 2
}

// RankChar returns the single-character label for a 0-12 rank
func RankChar(rank uint8) byte {
	if rank > Ace {
		return '?'
	}
	return rankChars[rank]
}

// ParseRank parses a rank character such as 'A' or 't'
func ParseRank(ch byte) (uint8, error) {
	switch ch {
	case '2':
		return Two, nil
	case '3':
		return Three, nil
	case '4':
		return Four, nil
	case '5':
		return Five, nil
	case '6':
		return Six, nil
	case '7':
		return Seven, nil
	case '8':
		return Eight, nil
	case '9':
		return Nine, nil
	case 'T', 't':
		return Ten, nil
	case 'J', 'j':
		return Jack, nil
	case 'Q', 'q':
		return Queen, nil
	case 'K', 'k':
		return King, nil
	case 'A', 'a':
		return Ace, nil
	default:
		return 0, fmt.Errorf("invalid rank: %c", ch)
	}
}

// ParseCard parses a string like "As" into a Card
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("invalid card string: %q", s)
	}

	rank, err := ParseRank(s[0])
	if err != nil {
		return 0, err
	}

	var suit uint8
	switch s[1] {
	case 'c', 'C':
		suit = Clubs
	case 'd', 'D':
		suit = Diamonds
	case 'h', 'H':
		suit = Hearts
	case 's', 'S':
		suit = Spades
	default:
		return 0, fmt.Errorf("invalid suit: %c", s[1])
	}

	return NewCard(rank, suit), nil
}

// MustParseCard is ParseCard for literals known to be valid
func MustParseCard(s string) Card {
	c, err := ParseCard(s)
	if err != nil {
		panic(err)
	}
	return c
}
