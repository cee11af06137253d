// Package preflop encodes the trainer's hand-authored preflop decision tables.
//
// Each drill mode has an evaluator mapping a starting-hand class, hero's seat,
// stack depth and, for the facing-raise modes, the raiser's seat to exactly one
// action. Thresholds are ordered rule tables selected by stack band and seat;
// the first matching rule wins and every table ends in a catch-all, so every
// input yields an action. Nothing here is random or stateful.
package preflop

import (
	"fmt"

	"github.com/lox/preflop-trainer/poker"
)

// Spot is everything an evaluator needs besides the hand itself.
// Villain is the context seat: the opener for vs Open and vs 4bet, the
// 3-bettor for vs 3bet and the stealer for Blind Defense.
type Spot struct {
	Mode    Mode     `json:"mode"`
	Hero    Position `json:"hero"`
	Villain Position `json:"villain"`
	Stack   int      `json:"stack"`
}

// String renders the spot as "BTN - RFI (25bb)"
func (s Spot) String() string {
	return fmt.Sprintf("%s - %s (%dbb)", s.Hero, s.Mode, s.Stack)
}

// Table returns the rule table the spot is judged by.
// Any is judged as RFI.
func (s Spot) Table() Table {
	switch s.Mode {
	case VsOpen:
		return vsOpenTable(s.Hero, s.Villain, s.Stack)
	case Vs3Bet:
		return vs3BetTable(s.Villain, s.Stack)
	case Vs4Bet:
		return vs4BetTable(s.Stack)
	case BlindDefense:
		return blindDefenseTable(s.Hero, s.Stack)
	case PushFold:
		return pushFoldTable
	default:
		return rfiTable(s.Hero, s.Stack)
	}
}

// Evaluate returns the action for class c in spot s
func Evaluate(s Spot, c poker.HandClass) Action {
	return s.Table().Decide(ShapeOf(c)).Then
}

// EvaluateHand returns the action for concrete hole cards
func EvaluateHand(s Spot, h poker.Hand) Action {
	return Evaluate(s, h.Class())
}

// Trace returns the rule that decides class c in spot s along with its table name
func Trace(s Spot, c poker.HandClass) (Rule, string) {
	t := s.Table()
	return t.Decide(ShapeOf(c)), t.Name
}

// EvaluateRFI judges an unopened pot from seat
func EvaluateRFI(c poker.HandClass, seat Position, stack int) Action {
	return Evaluate(Spot{Mode: RFI, Hero: seat, Stack: stack}, c)
}

// EvaluateVsOpen judges hero facing an open from opener
func EvaluateVsOpen(c poker.HandClass, hero, opener Position, stack int) Action {
	return Evaluate(Spot{Mode: VsOpen, Hero: hero, Villain: opener, Stack: stack}, c)
}

// EvaluateVs3Bet judges hero's open facing a 3-bet from threeBettor
func EvaluateVs3Bet(c poker.HandClass, hero, threeBettor Position, stack int) Action {
	return Evaluate(Spot{Mode: Vs3Bet, Hero: hero, Villain: threeBettor, Stack: stack}, c)
}

// EvaluateVs4Bet judges hero's 3-bet facing a 4-bet
func EvaluateVs4Bet(c poker.HandClass, hero Position, stack int) Action {
	return Evaluate(Spot{Mode: Vs4Bet, Hero: hero, Stack: stack}, c)
}

// EvaluateBlindDefense judges a blind facing a late steal
func EvaluateBlindDefense(c poker.HandClass, seat Position, stack int) Action {
	return Evaluate(Spot{Mode: BlindDefense, Hero: seat, Stack: stack}, c)
}

// EvaluatePushFold judges a short-stack jam-or-fold spot
func EvaluatePushFold(c poker.HandClass, seat Position, stack int) Action {
	return Evaluate(Spot{Mode: PushFold, Hero: seat, Stack: stack}, c)
}
