package main

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/preflop-trainer/internal/config"
	"github.com/lox/preflop-trainer/internal/preflop"
	"github.com/lox/preflop-trainer/internal/render"
	"github.com/lox/preflop-trainer/internal/trainer"
)

func TestParseHandOrClass(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		hasError bool
	}{
		{input: "AsKs", expected: "AKs"},
		{input: "Kd As", expected: "AKo"},
		{input: "7c7d", expected: "77"},
		{input: "T9o", expected: "T9o"},
		{input: "QQ", expected: "QQ"},
		{input: "AK", hasError: true},
		{input: "AsAs", hasError: true},
		{input: "xyz", hasError: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			c, err := parseHandOrClass(tt.input)
			if tt.hasError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, c.String())
		})
	}
}

func TestTrainingFlagsApply(t *testing.T) {
	cfg := config.Default()

	tc, err := TrainingFlags{}.apply(cfg)
	require.NoError(t, err)
	assert.Equal(t, trainer.DefaultTrainingConfig(), tc)

	tc, err = TrainingFlags{Mode: "push-fold", Players: 6, StackMin: 8, StackMax: 15, RandomizeVillains: true}.apply(cfg)
	require.NoError(t, err)
	assert.Equal(t, preflop.PushFold, tc.PreflopAction)
	assert.Equal(t, 6, tc.Players)
	assert.Equal(t, 8, tc.StackMin)
	assert.Equal(t, 15, tc.StackMax)
	assert.True(t, tc.RandomizeVillainStacks)

	_, err = TrainingFlags{Mode: "limp"}.apply(cfg)
	assert.Error(t, err)

	_, err = TrainingFlags{Players: 12}.apply(cfg)
	assert.Error(t, err)
}

func TestSpotFlags(t *testing.T) {
	spot, err := SpotFlags{Mode: "vs-open", Position: "BB", Villain: "BTN", Stack: 40}.spot()
	require.NoError(t, err)
	assert.Equal(t, preflop.Spot{Mode: preflop.VsOpen, Hero: preflop.BB, Villain: preflop.BTN, Stack: 40}, spot)

	_, err = SpotFlags{Mode: "any", Position: "BB", Villain: "UTG", Stack: 40}.spot()
	assert.Error(t, err)

	_, err = SpotFlags{Mode: "rfi", Position: "XX", Villain: "UTG", Stack: 40}.spot()
	assert.Error(t, err)

	_, err = SpotFlags{Mode: "rfi", Position: "BTN", Villain: "UTG", Stack: 0}.spot()
	assert.Error(t, err)
}

func TestCLIParses(t *testing.T) {
	var cli CLI
	parser, err := kong.New(&cli, kong.Name("preflop-trainer"), kong.Exit(func(int) {}), kong.Vars{"version": "test"})
	require.NoError(t, err)

	ctx, err := parser.Parse([]string{"--seed", "7", "deal", "-n", "3", "--mode", "rfi", "--json"})
	require.NoError(t, err)
	assert.Equal(t, "deal", ctx.Command())
	require.NotNil(t, cli.Seed)
	assert.Equal(t, int64(7), *cli.Seed)
	assert.Equal(t, 3, cli.Deal.Count)
	assert.True(t, cli.Deal.JSON)
	assert.Equal(t, "rfi", cli.Deal.Mode)

	ctx, err = parser.Parse([]string{"eval", "AKs", "-p", "BTN", "-s", "20"})
	require.NoError(t, err)
	assert.Equal(t, "eval <hand>", ctx.Command())
	assert.Equal(t, "AKs", cli.Eval.Hand)
	assert.Equal(t, 20, cli.Eval.Stack)
}

func TestWriteScenarios(t *testing.T) {
	logger := log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
	gen := trainer.NewGenerator(logger, nil)
	cfg := trainer.DefaultTrainingConfig()
	cfg.PreflopAction = preflop.RFI
	scenarios := []trainer.Scenario{gen.Generate(cfg), gen.Generate(cfg)}

	var text bytes.Buffer
	writeScenarios(&text, render.NewWithProfile(&text, termenv.Ascii), scenarios)
	out := text.String()
	assert.Equal(t, 2, strings.Count(out, "Answer: "))
	assert.Contains(t, out, scenarios[0].Explanation)

	var lines bytes.Buffer
	require.NoError(t, writeScenariosJSON(&lines, scenarios))
	dec := json.NewDecoder(&lines)
	for _, want := range scenarios {
		var got trainer.Scenario
		require.NoError(t, dec.Decode(&got))
		assert.Equal(t, want.ID, got.ID)
		assert.Equal(t, want.CorrectAction, got.CorrectAction)
	}
}
