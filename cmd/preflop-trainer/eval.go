package main

import (
	"fmt"
	"os"

	"github.com/lox/preflop-trainer/internal/preflop"
	"github.com/lox/preflop-trainer/internal/trainer"
	"github.com/lox/preflop-trainer/poker"
)

// EvalCmd judges one hand and shows the rule that decided it
type EvalCmd struct {
	Hand string `arg:"" help:"Hole cards (AsKd) or a hand class (AKs, T9o, 77)"`

	SpotFlags `embed:""`
}

// parseHandOrClass accepts either concrete cards or class notation
func parseHandOrClass(s string) (poker.HandClass, error) {
	if h, err := poker.ParseHand(s); err == nil {
		return h.Class(), nil
	}
	c, err := poker.ParseClass(s)
	if err != nil {
		return poker.HandClass{}, fmt.Errorf("%q is neither hole cards nor a hand class", s)
	}
	return c, nil
}

func (c *EvalCmd) Run(g *Globals) error {
	class, err := parseHandOrClass(c.Hand)
	if err != nil {
		return err
	}
	spot, err := c.spot()
	if err != nil {
		return err
	}

	rule, table := preflop.Trace(spot, class)
	fmt.Fprintf(os.Stdout, "%s in %s: %s\n", class, spot, rule.Then)
	fmt.Fprintf(os.Stdout, "Rule:  %s (%s)\n", rule.Name, table)
	fmt.Fprintln(os.Stdout, trainer.Explain(class, spot.Hero, spot.Mode, rule.Then, spot.Stack))
	return nil
}
