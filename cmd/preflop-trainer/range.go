package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/lox/preflop-trainer/internal/preflop"
	"github.com/lox/preflop-trainer/internal/render"
)

// SpotFlags describe one decision point
type SpotFlags struct {
	Mode     string `short:"m" default:"rfi" help:"Drill mode"`
	Position string `short:"p" required:"" help:"Hero seat (UTG, UTG1, UTG2, LJ, HJ, CO, BTN, SB, BB)"`
	Villain  string `default:"UTG" help:"Context seat: opener, 3-bettor or stealer"`
	Stack    int    `short:"s" default:"100" help:"Hero stack in big blinds"`
}

func (f SpotFlags) spot() (preflop.Spot, error) {
	mode, err := preflop.ParseMode(f.Mode)
	if err != nil {
		return preflop.Spot{}, err
	}
	if mode == preflop.Any {
		return preflop.Spot{}, errors.New("a concrete drill mode is required")
	}
	hero, err := preflop.ParsePosition(f.Position)
	if err != nil {
		return preflop.Spot{}, err
	}
	villain, err := preflop.ParsePosition(f.Villain)
	if err != nil {
		return preflop.Spot{}, err
	}
	if f.Stack < 1 {
		return preflop.Spot{}, fmt.Errorf("stack must be positive, got %d", f.Stack)
	}
	return preflop.Spot{Mode: mode, Hero: hero, Villain: villain, Stack: f.Stack}, nil
}

// RangeCmd prints the 13x13 grid for one spot
type RangeCmd struct {
	SpotFlags `embed:""`

	Opponent string `help:"Show the range Position takes this action with instead of hero's range"`
}

func (c *RangeCmd) Run(g *Globals) error {
	spot, err := c.spot()
	if err != nil {
		return err
	}
	r := render.New(os.Stdout)

	if c.Opponent != "" {
		action, err := preflop.ParseAction(c.Opponent)
		if err != nil {
			return err
		}
		m := preflop.OpponentActionMatrix(spot.Hero, action, spot.Mode, spot.Villain)
		fmt.Println(r.Range(fmt.Sprintf("%s %s range", spot.Hero, action), m))
		return nil
	}

	fmt.Println(r.Range(spot.String(), preflop.BuildMatrix(spot)))
	return nil
}
