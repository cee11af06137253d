package trainer

import (
	"errors"
	"fmt"

	"github.com/lox/preflop-trainer/internal/preflop"
)

// Seat-count and stack bounds accepted by Validate
const (
	MinPlayers = 2
	MaxPlayers = preflop.NumPositions
)

// TrainingConfig controls scenario generation. Solution and Format are
// carried for display only.
type TrainingConfig struct {
	Solution               string       `json:"solution"`
	Format                 string       `json:"format"`
	Players                int          `json:"players"`
	PreflopAction          preflop.Mode `json:"preflopAction"`
	StackMin               int          `json:"stackMin"`
	StackMax               int          `json:"stackMax"`
	RandomizeVillainStacks bool         `json:"randomizeVillainStacks"`
}

// DefaultTrainingConfig returns a full-ring MTT config drilling every mode at 10-100bb
func DefaultTrainingConfig() TrainingConfig {
	return TrainingConfig{
		Solution:      "MTT",
		Format:        "ChipEV",
		Players:       9,
		PreflopAction: preflop.Any,
		StackMin:      10,
		StackMax:      100,
	}
}

// Validate reports every out-of-domain field
func (c TrainingConfig) Validate() error {
	var errs []error
	if c.Players < MinPlayers || c.Players > MaxPlayers {
		errs = append(errs, fmt.Errorf("players must be between %d and %d, got %d", MinPlayers, MaxPlayers, c.Players))
	}
	if c.StackMin < 1 {
		errs = append(errs, fmt.Errorf("stack_min must be at least 1bb, got %d", c.StackMin))
	}
	if c.StackMax < c.StackMin {
		errs = append(errs, fmt.Errorf("stack_max (%d) must not be below stack_min (%d)", c.StackMax, c.StackMin))
	}
	if c.PreflopAction < preflop.Any || c.PreflopAction > preflop.PushFold {
		errs = append(errs, fmt.Errorf("unknown drill mode %d", int(c.PreflopAction)))
	}
	return errors.Join(errs...)
}

// normalized coerces out-of-domain input into something generatable:
// players are clamped, an inverted stack range is swapped and stacks are
// floored at 1bb. Unknown modes become Any.
func (c TrainingConfig) normalized() TrainingConfig {
	c.Players = max(MinPlayers, min(c.Players, MaxPlayers))
	if c.StackMax < c.StackMin {
		c.StackMin, c.StackMax = c.StackMax, c.StackMin
	}
	c.StackMin = max(c.StackMin, 1)
	c.StackMax = max(c.StackMax, c.StackMin)
	if c.PreflopAction < preflop.Any || c.PreflopAction > preflop.PushFold {
		c.PreflopAction = preflop.Any
	}
	return c
}
