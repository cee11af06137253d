package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/joho/godotenv"

	"github.com/lox/preflop-trainer/internal/config"
	"github.com/lox/preflop-trainer/internal/preflop"
	"github.com/lox/preflop-trainer/internal/randutil"
	"github.com/lox/preflop-trainer/internal/trainer"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command
type Globals struct {
	Config   string `short:"c" default:"trainer.hcl" env:"PREFLOP_TRAINER_CONFIG" help:"Path to HCL configuration file"`
	LogLevel string `short:"l" env:"PREFLOP_TRAINER_LOG_LEVEL" help:"Log level (overrides config)"`
	Seed     *int64 `env:"PREFLOP_TRAINER_SEED" help:"Deterministic RNG seed (overrides config)"`
}

type CLI struct {
	Globals

	Version kong.VersionFlag `short:"v" help:"Show version"`
	Drill   DrillCmd         `cmd:"" default:"1" help:"Run the interactive drill"`
	Deal    DealCmd          `cmd:"" help:"Deal scenarios and print them"`
	Range   RangeCmd         `cmd:"" help:"Show the range grid for a spot"`
	Eval    EvalCmd          `cmd:"" help:"Evaluate a single hand in a spot"`
	Audit   AuditCmd         `cmd:"" help:"Sweep every evaluator input and report action counts"`
	Serve   ServeCmd         `cmd:"" help:"Serve the trainer over HTTP and websocket"`
}

func main() {
	// A missing .env is normal
	_ = godotenv.Load()

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("preflop-trainer"),
		kong.Description("Preflop decision trainer for no-limit hold'em"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}

// load reads the config file and applies global overrides
func (g *Globals) load() (*config.Config, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}
	if g.LogLevel != "" {
		cfg.LogLevel = g.LogLevel
	}
	if g.Seed != nil {
		cfg.Seed = g.Seed
	}
	return cfg, nil
}

// newLogger builds the process logger at the configured level
func newLogger(w io.Writer, cfg *config.Config) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           cfg.Level(),
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
}

// resolveSeed returns the config seed, or one taken from the clock
func resolveSeed(logger *log.Logger, cfg *config.Config, clock quartz.Clock) int64 {
	if cfg.Seed != nil {
		logger.Info("Using deterministic seed", "seed", *cfg.Seed)
		return *cfg.Seed
	}
	seed := clock.Now().UnixNano()
	logger.Debug("Using random seed", "seed", seed)
	return seed
}

// newGenerator seeds a generator from the config seed or the clock
func newGenerator(logger *log.Logger, cfg *config.Config) *trainer.Generator {
	clock := quartz.NewReal()
	rng, seed := randutil.Resolve(cfg.Seed, clock)
	logger.Debug("Seeded generator", "seed", seed, "fixed", cfg.Seed != nil)
	return trainer.NewGenerator(logger, rng, trainer.WithClock(clock))
}

// TrainingFlags override the config file's training block
type TrainingFlags struct {
	Mode              string `short:"m" help:"Drill mode (any, rfi, vs-open, vs-3bet, vs-4bet, blind-defense, push-fold)"`
	Players           int    `short:"p" help:"Players at the table (2-9)"`
	StackMin          int    `help:"Minimum hero stack in big blinds"`
	StackMax          int    `help:"Maximum hero stack in big blinds (exclusive)"`
	RandomizeVillains bool   `help:"Give villains their own random stacks"`
}

// apply overlays the flags that were set onto the config's training block
func (f TrainingFlags) apply(cfg *config.Config) (trainer.TrainingConfig, error) {
	tc, err := cfg.TrainerConfig()
	if err != nil {
		return tc, err
	}
	if f.Mode != "" {
		if tc.PreflopAction, err = preflop.ParseMode(f.Mode); err != nil {
			return tc, err
		}
	}
	if f.Players != 0 {
		tc.Players = f.Players
	}
	if f.StackMin != 0 {
		tc.StackMin = f.StackMin
	}
	if f.StackMax != 0 {
		tc.StackMax = f.StackMax
	}
	if f.RandomizeVillains {
		tc.RandomizeVillainStacks = true
	}
	if err := tc.Validate(); err != nil {
		return tc, fmt.Errorf("invalid training config: %w", err)
	}
	return tc, nil
}

func stderrLogger(cfg *config.Config) *log.Logger {
	return newLogger(os.Stderr, cfg)
}
