package session

import (
	"fmt"

	"github.com/lox/preflop-trainer/internal/preflop"
	"github.com/lox/preflop-trainer/internal/trainer"
	"github.com/lox/preflop-trainer/poker"
)

// Grade classifies how far an answer was from the correct action
type Grade int

const (
	Best Grade = iota
	Inaccuracy
	Wrong
	Blunder
)

var gradeNames = [...]string{"best", "inaccuracy", "wrong", "blunder"}

func (g Grade) String() string {
	if g < Best || g > Blunder {
		return fmt.Sprintf("Grade(%d)", int(g))
	}
	return gradeNames[g]
}

// MarshalText encodes the grade name
func (g Grade) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

// UnmarshalText decodes a grade name
func (g *Grade) UnmarshalText(b []byte) error {
	for i, name := range gradeNames {
		if string(b) == name {
			*g = Grade(i)
			return nil
		}
	}
	return fmt.Errorf("unknown grade %q", b)
}

// GradeAnswer compares chosen against correct. Mixing up RAISE and ALLIN is
// an inaccuracy, any other single step along the aggression order is wrong,
// and anything further is a blunder.
func GradeAnswer(correct, chosen preflop.Action) Grade {
	switch {
	case chosen == correct:
		return Best
	case chosen.Aggressive() && correct.Aggressive():
		return Inaccuracy
	case chosen-correct == 1 || correct-chosen == 1:
		return Wrong
	default:
		return Blunder
	}
}

// Result is one graded answer
type Result struct {
	ScenarioID  string           `json:"scenarioId"`
	Mode        preflop.Mode     `json:"mode"`
	Position    preflop.Position `json:"position"`
	Hand        poker.Hand       `json:"hand"`
	Class       string           `json:"class"`
	Stack       int              `json:"stack"`
	Chosen      preflop.Action   `json:"chosen"`
	Correct     preflop.Action   `json:"correct"`
	Grade       Grade            `json:"grade"`
	Explanation string           `json:"explanation"`
}

// Judge grades chosen against the scenario's correct action
func Judge(s trainer.Scenario, chosen preflop.Action) Result {
	return Result{
		ScenarioID:  s.ID,
		Mode:        s.DrillMode,
		Position:    s.HeroPosition,
		Hand:        s.HeroHand,
		Class:       s.HandClass().String(),
		Stack:       s.HeroStack,
		Chosen:      chosen,
		Correct:     s.CorrectAction,
		Grade:       GradeAnswer(s.CorrectAction, chosen),
		Explanation: s.Explanation,
	}
}
