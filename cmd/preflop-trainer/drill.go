package main

import (
	"fmt"
	"os"

	"github.com/lox/preflop-trainer/internal/render"
	"github.com/lox/preflop-trainer/internal/session"
	"github.com/lox/preflop-trainer/internal/tui"
)

// DrillCmd runs the terminal drill
type DrillCmd struct {
	TrainingFlags `embed:""`

	LogFile string `default:"preflop-trainer.log" help:"File to write logs to while the drill owns the terminal"`
}

func (c *DrillCmd) Run(g *Globals) error {
	cfg, err := g.load()
	if err != nil {
		return err
	}
	tc, err := c.apply(cfg)
	if err != nil {
		return err
	}

	logFile, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}
	defer func() {
		_ = logFile.Close() // Nothing useful to do on failure
	}()

	logger := newLogger(logFile, cfg)
	gen := newGenerator(logger, cfg)
	sess := session.New(logger, gen, tc)
	logger.Info("Starting drill", "mode", tc.PreflopAction, "players", tc.Players,
		"stack_min", tc.StackMin, "stack_max", tc.StackMax)

	r := render.New(os.Stdout)
	if err := tui.Run(logger, sess, r); err != nil {
		return err
	}
	fmt.Println(r.Stats(sess.Stats()))
	return nil
}
