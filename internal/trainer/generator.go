// Package trainer deals preflop drill scenarios: it resolves a drill mode,
// seats and stacks from a TrainingConfig, samples hero's hand, and packages
// the evaluator's answer with the spot's range matrix and an explanation.
package trainer

import (
	rand "math/rand/v2"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/preflop-trainer/internal/preflop"
	"github.com/lox/preflop-trainer/internal/randutil"
	"github.com/lox/preflop-trainer/internal/scenarioid"
	"github.com/lox/preflop-trainer/poker"
)

// Generator deals scenarios from a single random source. It is safe for
// concurrent use; calls are serialised on the source.
type Generator struct {
	mu     sync.Mutex
	rng    *rand.Rand
	clock  quartz.Clock
	ids    *scenarioid.Generator
	logger *log.Logger
}

// Option configures a Generator
type Option func(*Generator)

// WithClock sets the clock scenario identifiers are stamped from
func WithClock(clock quartz.Clock) Option {
	return func(g *Generator) {
		g.clock = clock
	}
}

// NewGenerator creates a generator drawing from rng, or from a clock-seeded
// source when rng is nil. Identifiers draw
// their random bits from rng too, so a seeded rng and a mock clock make
// the whole scenario reproducible.
func NewGenerator(logger *log.Logger, rng *rand.Rand, opts ...Option) *Generator {
	if logger == nil {
		logger = log.Default()
	}
	g := &Generator{
		rng:    rng,
		clock:  quartz.NewReal(),
		logger: logger.WithPrefix("trainer"),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng, _ = randutil.NewFromClock(g.clock)
	}
	g.ids = scenarioid.NewGenerator(g.clock, g.rng)
	return g
}

var defaultGenerator = sync.OnceValue(func() *Generator {
	clock := quartz.NewReal()
	rng, _ := randutil.NewFromClock(clock)
	return NewGenerator(log.Default(), rng, WithClock(clock))
})

// Generate deals a scenario from a process-wide generator seeded from the wall clock
func Generate(cfg TrainingConfig) Scenario {
	return defaultGenerator().Generate(cfg)
}

// deal is a mode's seating, history and sampling context before the hand is known
type deal struct {
	spot   preflop.Spot
	sample preflop.Spot
	prior  []PriorAction
	pot    float64
}

// Generate deals one scenario for cfg. Out-of-domain config is normalised
// rather than rejected; see TrainingConfig.Validate for strict checking.
func (g *Generator) Generate(cfg TrainingConfig) Scenario {
	g.mu.Lock()
	defer g.mu.Unlock()

	cfg = cfg.normalized()
	mode := cfg.PreflopAction
	if mode == preflop.Any {
		mode = pick(g.rng, preflop.SupportedModes())
	}
	active := preflop.ActivePositions(cfg.Players)
	stack := g.drawStack(cfg)
	if mode == preflop.PushFold {
		stack = preflop.PushFoldMinStack + g.rng.IntN(preflop.PushFoldMaxStack-preflop.PushFoldMinStack+1)
	}

	d := g.seat(mode, active, stack)
	hand := g.drawHand(mode, d.sample)
	correct := preflop.EvaluateHand(d.spot, hand)

	villains := make(map[preflop.Position]int, len(active))
	for _, p := range active {
		switch {
		case p == d.spot.Hero || !cfg.RandomizeVillainStacks:
			villains[p] = stack
		default:
			villains[p] = cfg.StackMin + g.rng.IntN(cfg.StackMax-cfg.StackMin+1)
		}
	}

	matrix := preflop.BuildMatrix(d.spot)
	s := Scenario{
		ID:              g.ids.Generate(),
		DrillMode:       mode,
		HeroPosition:    d.spot.Hero,
		HeroHand:        hand,
		HeroStack:       stack,
		VillainStacks:   villains,
		PreviousActions: d.prior,
		CorrectAction:   correct,
		PotSize:         d.pot,
		Explanation:     Explain(hand.Class(), d.spot.Hero, mode, correct, stack),
		RangeData: RangeData{
			Category: d.spot.String(),
			Hands:    matrix.Hands(preflop.FreqCall),
			Matrix:   matrix,
		},
		Spot: d.spot,
	}

	g.logger.Debug("dealt scenario",
		"id", s.ID,
		"mode", mode,
		"position", s.HeroPosition,
		"hand", hand,
		"stack", stack,
		"action", correct)
	return s
}

// drawStack returns a stack in [StackMin, StackMax), or StackMin when the range is a single value
func (g *Generator) drawStack(cfg TrainingConfig) int {
	if cfg.StackMax > cfg.StackMin {
		return cfg.StackMin + g.rng.IntN(cfg.StackMax-cfg.StackMin)
	}
	return cfg.StackMin
}

// drawHand applies the mode's sampling policy against the sample spot
func (g *Generator) drawHand(mode preflop.Mode, sample preflop.Spot) poker.Hand {
	policy := Policy(mode)
	if len(policy.Targets) == 0 || g.rng.Float64() >= policy.Forced {
		return poker.RandomHand(g.rng)
	}
	target := pick(g.rng, policy.Targets)
	hand, found := FindHandForAction(g.rng, sample, target)
	if !found {
		g.logger.Debug("sampler fell back",
			"mode", mode,
			"spot", sample,
			"target", target,
			"hand", hand)
	}
	return hand
}

// seat resolves hero and context seats plus the action history for mode
func (g *Generator) seat(mode preflop.Mode, active []preflop.Position, stack int) deal {
	openers := orDefault(preflop.NonBlinds(active), preflop.SB)

	switch mode {
	case preflop.VsOpen:
		raiser := pick(g.rng, openers)
		hero := pick(g.rng, orDefault(preflop.After(active, raiser), preflop.BB))
		spot := preflop.Spot{Mode: preflop.VsOpen, Hero: hero, Villain: raiser, Stack: stack}
		return deal{
			spot:   spot,
			sample: spot,
			prior:  []PriorAction{{raiser, preflop.Raise, openSize}},
			pot:    vsOpenPot,
		}

	case preflop.Vs3Bet:
		hero := pick(g.rng, openers)
		threeBettor := pick(g.rng, orDefault(preflop.After(active, hero), preflop.BB))
		return deal{
			spot:   preflop.Spot{Mode: preflop.Vs3Bet, Hero: hero, Villain: threeBettor, Stack: stack},
			sample: preflop.Spot{Mode: preflop.RFI, Hero: hero, Stack: stack},
			prior: []PriorAction{
				{hero, preflop.Raise, heroOpen},
				{threeBettor, preflop.Raise, threeBet},
			},
			pot: vs3BetPot,
		}

	case preflop.Vs4Bet:
		candidates := []preflop.Position{preflop.SB}
		if len(active) > 2 {
			candidates = active[:len(active)-2]
		}
		opener := pick(g.rng, candidates)
		hero := pick(g.rng, orDefault(preflop.After(active, opener), preflop.BB))
		return deal{
			spot:   preflop.Spot{Mode: preflop.Vs4Bet, Hero: hero, Villain: opener, Stack: stack},
			sample: preflop.Spot{Mode: preflop.VsOpen, Hero: hero, Villain: opener, Stack: stack},
			prior: []PriorAction{
				{opener, preflop.Raise, openSize},
				{hero, preflop.Raise, heroThree},
				{opener, preflop.Raise, fourBet},
			},
			pot: fourBetPot,
		}

	case preflop.BlindDefense:
		hero := pick(g.rng, []preflop.Position{preflop.SB, preflop.BB})
		var stealers []preflop.Position
		for _, p := range active {
			if p == preflop.CO || p == preflop.BTN {
				stealers = append(stealers, p)
			}
		}
		stealer := preflop.SB
		if len(stealers) > 0 {
			stealer = pick(g.rng, stealers)
		} else {
			hero = preflop.BB
		}
		spot := preflop.Spot{Mode: preflop.BlindDefense, Hero: hero, Villain: stealer, Stack: stack}
		return deal{
			spot:   spot,
			sample: spot,
			prior:  []PriorAction{{stealer, preflop.Raise, stealSize}},
			pot:    stealPot,
		}

	case preflop.PushFold:
		var seats []preflop.Position
		for _, p := range active {
			if p != preflop.BB {
				seats = append(seats, p)
			}
		}
		hero := pick(g.rng, orDefault(seats, preflop.SB))
		spot := preflop.Spot{Mode: preflop.PushFold, Hero: hero, Stack: stack}
		return deal{spot: spot, sample: spot, pot: unopenedPot}

	default:
		hero := pick(g.rng, openers)
		spot := preflop.Spot{Mode: preflop.RFI, Hero: hero, Stack: stack}
		return deal{spot: spot, sample: spot, pot: unopenedPot}
	}
}

func pick[T any](rng *rand.Rand, items []T) T {
	return items[rng.IntN(len(items))]
}

func orDefault(seats []preflop.Position, fallback preflop.Position) []preflop.Position {
	if len(seats) == 0 {
		return []preflop.Position{fallback}
	}
	return seats
}
