// Package config loads the trainer's HCL configuration file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/preflop-trainer/internal/preflop"
	"github.com/lox/preflop-trainer/internal/trainer"
)

// DefaultFile is the config path used when none is given
const DefaultFile = "trainer.hcl"

// Config represents the complete trainer configuration
type Config struct {
	LogLevel string          `hcl:"log_level,optional"`
	Seed     *int64          `hcl:"seed,optional"`
	Training *TrainingConfig `hcl:"training,block"`
	Server   *ServerConfig   `hcl:"server,block"`
}

// TrainingConfig is the training block, mirroring trainer.TrainingConfig
type TrainingConfig struct {
	Solution               string `hcl:"solution,optional"`
	Format                 string `hcl:"format,optional"`
	Players                int    `hcl:"players,optional"`
	PreflopAction          string `hcl:"preflop_action,optional"`
	StackMin               int    `hcl:"stack_min,optional"`
	StackMax               int    `hcl:"stack_max,optional"`
	RandomizeVillainStacks bool   `hcl:"randomize_villain_stacks,optional"`
}

// ServerConfig is the server block
type ServerConfig struct {
	Address   string `hcl:"address,optional"`
	CacheSize int    `hcl:"cache_size,optional"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	d := trainer.DefaultTrainingConfig()
	return &Config{
		LogLevel: "info",
		Training: &TrainingConfig{
			Solution:      d.Solution,
			Format:        d.Format,
			Players:       d.Players,
			PreflopAction: d.PreflopAction.String(),
			StackMin:      d.StackMin,
			StackMax:      d.StackMax,
		},
		Server: &ServerConfig{
			Address:   ":8080",
			CacheSize: 1024,
		},
	}
}

// Load reads filename, returning defaults when it does not exist
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source and fills unset values with defaults
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	d := Default()
	if c.LogLevel == "" {
		c.LogLevel = d.LogLevel
	}

	if c.Training == nil {
		c.Training = d.Training
	} else {
		t := c.Training
		if t.Solution == "" {
			t.Solution = d.Training.Solution
		}
		if t.Format == "" {
			t.Format = d.Training.Format
		}
		if t.Players == 0 {
			t.Players = d.Training.Players
		}
		if t.PreflopAction == "" {
			t.PreflopAction = d.Training.PreflopAction
		}
		if t.StackMin == 0 {
			t.StackMin = d.Training.StackMin
		}
		if t.StackMax == 0 {
			t.StackMax = d.Training.StackMax
		}
	}

	if c.Server == nil {
		c.Server = d.Server
	} else {
		if c.Server.Address == "" {
			c.Server.Address = d.Server.Address
		}
		if c.Server.CacheSize == 0 {
			c.Server.CacheSize = d.Server.CacheSize
		}
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	tc, err := c.TrainerConfig()
	if err != nil {
		return err
	}
	if err := tc.Validate(); err != nil {
		return fmt.Errorf("training: %w", err)
	}
	if c.Server.Address == "" {
		return fmt.Errorf("server: address must not be empty")
	}
	if c.Server.CacheSize < 1 {
		return fmt.Errorf("server: cache_size must be positive, got %d", c.Server.CacheSize)
	}
	return nil
}

// TrainerConfig converts the training block for the generator
func (c *Config) TrainerConfig() (trainer.TrainingConfig, error) {
	t := c.Training
	mode, err := preflop.ParseMode(t.PreflopAction)
	if err != nil {
		return trainer.TrainingConfig{}, fmt.Errorf("training: %w", err)
	}
	return trainer.TrainingConfig{
		Solution:               t.Solution,
		Format:                 t.Format,
		Players:                t.Players,
		PreflopAction:          mode,
		StackMin:               t.StackMin,
		StackMax:               t.StackMax,
		RandomizeVillainStacks: t.RandomizeVillainStacks,
	}, nil
}

// Level returns the parsed log level
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
