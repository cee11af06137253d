package preflop

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/lox/preflop-trainer/poker"
)

// AuditReport summarises an exhaustive evaluator sweep
type AuditReport struct {
	MinStack    int
	MaxStack    int
	Evaluations int
	// Actions counts results per mode, indexed by Action
	Actions map[Mode][4]int
}

// Audit evaluates every supported mode over every hero seat, every context
// seat the mode reads, every stack in [minStack, maxStack] and every hand
// class, failing on any result outside the four actions. Modes run in parallel.
func Audit(ctx context.Context, minStack, maxStack int) (*AuditReport, error) {
	if minStack < 1 || maxStack < minStack {
		return nil, fmt.Errorf("invalid stack range [%d, %d]", minStack, maxStack)
	}

	report := &AuditReport{
		MinStack: minStack,
		MaxStack: maxStack,
		Actions:  make(map[Mode][4]int),
	}
	classes := poker.AllClasses()
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	for _, mode := range SupportedModes() {
		g.Go(func() error {
			var counts [4]int
			evaluations := 0
			villains := []Position{SB}
			if mode.Contextual() {
				villains = AllPositions()
			}
			for _, hero := range AllPositions() {
				for _, villain := range villains {
					if err := ctx.Err(); err != nil {
						return err
					}
					for stack := minStack; stack <= maxStack; stack++ {
						spot := Spot{Mode: mode, Hero: hero, Villain: villain, Stack: stack}
						t := spot.Table()
						for _, c := range classes {
							a := t.Decide(ShapeOf(c)).Then
							if a < Fold || a > AllIn {
								return fmt.Errorf("%s %s: evaluator returned %v", spot, c, a)
							}
							counts[a]++
							evaluations++
						}
					}
				}
			}
			mu.Lock()
			report.Actions[mode] = counts
			report.Evaluations += evaluations
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return report, nil
}
