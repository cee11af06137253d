package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/lox/preflop-trainer/internal/preflop"
)

// AuditCmd runs the exhaustive evaluator sweep
type AuditCmd struct {
	MinStack int `default:"2" help:"Lowest stack to sweep"`
	MaxStack int `default:"200" help:"Highest stack to sweep"`
}

func (c *AuditCmd) Run(g *Globals) error {
	report, err := preflop.Audit(context.Background(), c.MinStack, c.MaxStack)
	if err != nil {
		return err
	}

	fmt.Printf("%d evaluations over stacks %d-%d\n\n", report.Evaluations, report.MinStack, report.MaxStack)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MODE\tFOLD\tCALL\tRAISE\tALLIN")
	for _, mode := range preflop.SupportedModes() {
		counts := report.Actions[mode]
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\n", mode, counts[preflop.Fold], counts[preflop.Call], counts[preflop.Raise], counts[preflop.AllIn])
	}
	return w.Flush()
}
