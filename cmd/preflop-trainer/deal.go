package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/coder/quartz"

	"github.com/lox/preflop-trainer/internal/fileutil"
	"github.com/lox/preflop-trainer/internal/render"
	"github.com/lox/preflop-trainer/internal/trainer"
)

// DealCmd prints freshly dealt scenarios with their answers
type DealCmd struct {
	TrainingFlags `embed:""`

	Count   int    `short:"n" default:"1" help:"Number of scenarios to deal"`
	Workers int    `default:"4" help:"Worker goroutines for large batches"`
	JSON    bool   `help:"Print scenarios as JSON lines"`
	Out     string `short:"o" type:"path" help:"Write JSON lines to this file instead of stdout"`
}

func (c *DealCmd) Run(g *Globals) error {
	cfg, err := g.load()
	if err != nil {
		return err
	}
	tc, err := c.apply(cfg)
	if err != nil {
		return err
	}
	logger := stderrLogger(cfg)
	seed := resolveSeed(logger, cfg, quartz.NewReal())

	scenarios, err := trainer.GenerateBatch(context.Background(), logger, tc, c.Count, c.Workers, seed)
	if err != nil {
		return err
	}

	if c.Out != "" {
		if err := fileutil.WriteAtomic(c.Out, 0o644, func(w io.Writer) error {
			return writeScenariosJSON(w, scenarios)
		}); err != nil {
			return err
		}
		logger.Info("Wrote scenarios", "count", len(scenarios), "path", c.Out)
		return nil
	}
	if c.JSON {
		return writeScenariosJSON(os.Stdout, scenarios)
	}
	writeScenarios(os.Stdout, render.New(os.Stdout), scenarios)
	return nil
}

func writeScenariosJSON(w io.Writer, scenarios []trainer.Scenario) error {
	enc := json.NewEncoder(w)
	for _, sc := range scenarios {
		if err := enc.Encode(sc); err != nil {
			return fmt.Errorf("failed to encode scenario %s: %w", sc.ID, err)
		}
	}
	return nil
}

func writeScenarios(w io.Writer, r *render.Renderer, scenarios []trainer.Scenario) {
	for i, sc := range scenarios {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, r.Scenario(sc))
		fmt.Fprintf(w, "Answer: %s\n%s\n", sc.CorrectAction, sc.Explanation)
	}
}
