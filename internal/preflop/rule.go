package preflop

import (
	"github.com/lox/preflop-trainer/poker"
)

// Shape is the part of a starting hand the rule tables look at.
// High and Low are on the 2-14 scale.
type Shape struct {
	High   int
	Low    int
	Pair   bool
	Suited bool
}

// ShapeOf extracts the shape of a hand class
func ShapeOf(c poker.HandClass) Shape {
	return Shape{
		High:   c.HighValue(),
		Low:    c.LowValue(),
		Pair:   c.Pair(),
		Suited: c.Suited,
	}
}

// Predicate tests a hand shape
type Predicate func(Shape) bool

// Rule maps hands matching When to Then. Name documents the threshold.
type Rule struct {
	Name string
	When Predicate
	Then Action
}

// Table is an ordered rule list; the first matching rule decides.
// Every table ends in a catch-all so evaluation is total.
type Table struct {
	Name  string
	Rules []Rule
}

// Decide returns the first rule matching s
func (t Table) Decide(s Shape) Rule {
	for _, r := range t.Rules {
		if r.When(s) {
			return r
		}
	}
	return Rule{Name: "no rule matched", When: always, Then: Fold}
}

// newTable joins rule groups and appends the catch-all fallback
func newTable(name string, fallback Action, groups ...[]Rule) Table {
	var rules []Rule
	for _, g := range groups {
		rules = append(rules, g...)
	}
	rules = append(rules, Rule{Name: "otherwise", When: always, Then: fallback})
	return Table{Name: name, Rules: rules}
}

// when is shorthand for building a Rule
func when(name string, p Predicate, a Action) Rule {
	return Rule{Name: name, When: p, Then: a}
}

// only returns rules when cond holds, for context-dependent widening
func only(cond bool, rules ...Rule) []Rule {
	if !cond {
		return nil
	}
	return rules
}

func always(Shape) bool { return true }

func anyPair(s Shape) bool { return s.Pair }

func anySuited(s Shape) bool { return s.Suited }

// pairFrom matches pairs of rank v or better
func pairFrom(v int) Predicate {
	return func(s Shape) bool { return s.Pair && s.High >= v }
}

// highWith matches a top card of exactly high with a kicker of at least minLow
func highWith(high, minLow int) Predicate {
	return func(s Shape) bool { return s.High == high && s.Low >= minLow }
}

// lowFrom matches a bottom card of at least v
func lowFrom(v int) Predicate {
	return func(s Shape) bool { return s.Low >= v }
}

// highFrom matches a top card of at least v
func highFrom(v int) Predicate {
	return func(s Shape) bool { return s.High >= v }
}

// suited restricts p to suited hands
func suited(p Predicate) Predicate {
	return func(s Shape) bool { return s.Suited && p(s) }
}

// anyOf matches when at least one predicate does
func anyOf(ps ...Predicate) Predicate {
	return func(s Shape) bool {
		for _, p := range ps {
			if p(s) {
				return true
			}
		}
		return false
	}
}

// allOf matches when every predicate does
func allOf(ps ...Predicate) Predicate {
	return func(s Shape) bool {
		for _, p := range ps {
			if !p(s) {
				return false
			}
		}
		return true
	}
}
