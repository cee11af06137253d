package poker

import (
	"fmt"
)

// HandClass is one of the 169 canonical starting hands (e.g., AA, AKs, AKo).
// High and Low hold 0-12 ranks with High >= Low; pairs are never suited.
type HandClass struct {
	High   uint8
	Low    uint8
	Suited bool
}

// NumClasses is the number of canonical starting-hand classes
const NumClasses = 169

// ClassOf canonicalises two ranks and a suitedness flag into a HandClass
func ClassOf(r1, r2 uint8, suited bool) HandClass {
	if r1 < r2 {
		r1, r2 = r2, r1
	}
	if r1 == r2 {
		suited = false
	}
	return HandClass{High: r1, Low: r2, Suited: suited}
}

// ParseClass parses class notation such as "AA", "AKs" or "T9o"
func ParseClass(s string) (HandClass, error) {
	if len(s) < 2 || len(s) > 3 {
		return HandClass{}, fmt.Errorf("invalid hand class notation: %q", s)
	}
	r1, err := ParseRank(s[0])
	if err != nil {
		return HandClass{}, err
	}
	r2, err := ParseRank(s[1])
	if err != nil {
		return HandClass{}, err
	}

	if r1 == r2 {
		if len(s) == 3 {
			return HandClass{}, fmt.Errorf("pocket pairs cannot have suited/offsuit modifier: %s", s)
		}
		return ClassOf(r1, r2, false), nil
	}
	if len(s) == 2 {
		return HandClass{}, fmt.Errorf("unpaired class needs s or o modifier: %s", s)
	}

	switch s[2] {
	case 's', 'S':
		return ClassOf(r1, r2, true), nil
	case 'o', 'O':
		return ClassOf(r1, r2, false), nil
	default:
		return HandClass{}, fmt.Errorf("invalid modifier: %c", s[2])
	}
}

// Pair reports whether the class is a pocket pair
func (c HandClass) Pair() bool {
	return c.High == c.Low
}

// HighValue returns the higher rank on the 2-14 scale
func (c HandClass) HighValue() int {
	return RankValue(c.High)
}

// LowValue returns the lower rank on the 2-14 scale
func (c HandClass) LowValue() int {
	return RankValue(c.Low)
}

// String returns the class notation, e.g. "AKs", "72o", "77"
func (c HandClass) String() string {
	hi, lo := RankChar(c.High), RankChar(c.Low)
	switch {
	case c.Pair():
		return string([]byte{hi, lo})
	case c.Suited:
		return string([]byte{hi, lo, 's'})
	default:
		return string([]byte{hi, lo, 'o'})
	}
}

// Representative returns a concrete hand belonging to the class.
// Suited classes use spades, everything else spades and hearts.
func (c HandClass) Representative() Hand {
	if c.Suited {
		return Hand{NewCard(c.High, Spades), NewCard(c.Low, Spades)}
	}
	return Hand{NewCard(c.High, Spades), NewCard(c.Low, Hearts)}
}

// Combos returns the number of concrete two-card hands in the class
func (c HandClass) Combos() int {
	switch {
	case c.Pair():
		return 6
	case c.Suited:
		return 4
	default:
		return 12
	}
}

// Cell returns the grid coordinates of the class. Rows and columns run A..2;
// the upper triangle holds suited classes, the lower triangle offsuit ones.
func (c HandClass) Cell() (row, col int) {
	hi, lo := int(Ace-c.High), int(Ace-c.Low)
	if c.Suited || c.Pair() {
		return hi, lo
	}
	return lo, hi
}

// ClassAt is the inverse of Cell
func ClassAt(row, col int) HandClass {
	r1, r2 := Ace-uint8(row), Ace-uint8(col)
	return ClassOf(r1, r2, row < col)
}

// AllClasses lists the 169 classes, strongest ranks first: for each high rank
// the pair, then suited and offsuit hands by descending kicker.
func AllClasses() []HandClass {
	classes := make([]HandClass, 0, NumClasses)
	for high := int(Ace); high >= int(Two); high-- {
		for low := high; low >= int(Two); low-- {
			if high == low {
				classes = append(classes, HandClass{High: uint8(high), Low: uint8(low)})
				continue
			}
			classes = append(classes,
				HandClass{High: uint8(high), Low: uint8(low), Suited: true},
				HandClass{High: uint8(high), Low: uint8(low)},
			)
		}
	}
	return classes
}
