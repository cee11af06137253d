package preflop

import (
	"github.com/lox/preflop-trainer/poker"
)

// Frequency is the display class of a matrix cell
type Frequency int

const (
	FreqFold       Frequency = 0
	FreqCall       Frequency = 1
	FreqAggressive Frequency = 2
)

// Matrix is the 13x13 range grid. Rows and columns run A..2; cells above the
// diagonal are suited, below offsuit, the diagonal pairs.
type Matrix [13][13]Frequency

// OpponentStack is the depth OpponentActionMatrix assumes for the queried seat
const OpponentStack = 100

// BuildMatrix classifies every hand class for spot s
func BuildMatrix(s Spot) Matrix {
	t := s.Table()
	var m Matrix
	for row := range 13 {
		for col := range 13 {
			c := poker.ClassAt(row, col)
			m[row][col] = t.Decide(ShapeOf(c)).Then.Frequency()
		}
	}
	return m
}

// At returns the cell for class c
func (m Matrix) At(c poker.HandClass) Frequency {
	row, col := c.Cell()
	return m[row][col]
}

// Hands lists the classes whose cell is at least min, in AllClasses order
func (m Matrix) Hands(min Frequency) []string {
	var out []string
	for _, c := range poker.AllClasses() {
		if m.At(c) >= min {
			out = append(out, c.String())
		}
	}
	return out
}

// Count returns how many classes and combos sit in each frequency class
func (m Matrix) Count() (classes, combos [3]int) {
	for _, c := range poker.AllClasses() {
		f := m.At(c)
		classes[f]++
		combos[f] += c.Combos()
	}
	return classes, combos
}

// OpponentActionMatrix shows what range seat would take action with.
// Only RAISE is modelled, as seat's RFI range at OpponentStack; every other
// action yields an all-fold grid. mode and hero are accepted for callers that
// describe the spot but do not change the result.
func OpponentActionMatrix(seat Position, action Action, mode Mode, hero Position) Matrix {
	if action != Raise {
		return Matrix{}
	}
	return BuildMatrix(Spot{Mode: RFI, Hero: seat, Stack: OpponentStack})
}
