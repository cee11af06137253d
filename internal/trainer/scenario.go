package trainer

import (
	"github.com/lox/preflop-trainer/internal/preflop"
	"github.com/lox/preflop-trainer/poker"
)

// PriorAction is one bet in the history leading up to hero's decision
type PriorAction struct {
	Position preflop.Position `json:"position"`
	Action   preflop.Action   `json:"action"`
	Amount   float64          `json:"amount"`
}

// RangeData is the whole-range view of the scenario's spot
type RangeData struct {
	Category string         `json:"category"`
	Hands    []string       `json:"hands"`
	Matrix   preflop.Matrix `json:"matrix"`
}

// Scenario is one dealt decision. It is built once by a Generator and only
// read afterwards.
type Scenario struct {
	ID              string                   `json:"id"`
	DrillMode       preflop.Mode             `json:"drillMode"`
	HeroPosition    preflop.Position         `json:"heroPosition"`
	HeroHand        poker.Hand               `json:"heroHand"`
	HeroStack       int                      `json:"heroStack"`
	VillainStacks   map[preflop.Position]int `json:"villainStacks"`
	PreviousActions []PriorAction            `json:"previousActions"`
	CorrectAction   preflop.Action           `json:"correctAction"`
	PotSize         float64                  `json:"potSize"`
	Explanation     string                   `json:"explanation"`
	RangeData       RangeData                `json:"rangeData"`

	// Spot is what CorrectAction and the matrix were evaluated against
	Spot preflop.Spot `json:"spot"`
}

// HandClass returns the canonical class of hero's hand
func (s Scenario) HandClass() poker.HandClass {
	return s.HeroHand.Class()
}

// Villain returns the context seat for modes that have one
func (s Scenario) Villain() (preflop.Position, bool) {
	if s.DrillMode == preflop.RFI || s.DrillMode == preflop.PushFold {
		return 0, false
	}
	return s.Spot.Villain, true
}
