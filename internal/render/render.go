// Package render draws scenarios, range matrices and stats as terminal text.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/preflop-trainer/internal/preflop"
	"github.com/lox/preflop-trainer/internal/session"
	"github.com/lox/preflop-trainer/internal/trainer"
	"github.com/lox/preflop-trainer/poker"
)

// Renderer holds styles bound to one output's colour profile
type Renderer struct {
	lg *lipgloss.Renderer

	header     lipgloss.Style
	info       lipgloss.Style
	redCard    lipgloss.Style
	blackCard  lipgloss.Style
	fold       lipgloss.Style
	call       lipgloss.Style
	aggressive lipgloss.Style
	success    lipgloss.Style
	warning    lipgloss.Style
	failure    lipgloss.Style
	box        lipgloss.Style
}

// New creates a renderer detecting w's colour support
func New(w io.Writer) *Renderer {
	return newRenderer(lipgloss.NewRenderer(w))
}

// NewWithProfile creates a renderer forced to profile, e.g. termenv.Ascii for plain text
func NewWithProfile(w io.Writer, profile termenv.Profile) *Renderer {
	return newRenderer(lipgloss.NewRenderer(w, termenv.WithProfile(profile)))
}

func newRenderer(lg *lipgloss.Renderer) *Renderer {
	return &Renderer{
		lg:         lg,
		header:     lg.NewStyle().Foreground(lipgloss.Color("#FAFAFA")).Background(lipgloss.Color("#7D56F4")).Bold(true).Padding(0, 1),
		info:       lg.NewStyle().Foreground(lipgloss.Color("#626262")),
		redCard:    lg.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
		blackCard:  lg.NewStyle().Foreground(lipgloss.Color("#FAFAFA")).Bold(true),
		fold:       lg.NewStyle().Foreground(lipgloss.Color("#626262")),
		call:       lg.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true),
		aggressive: lg.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
		success:    lg.NewStyle().Foreground(lipgloss.Color("#96CEB4")).Bold(true),
		warning:    lg.NewStyle().Foreground(lipgloss.Color("#FFEAA7")).Bold(true),
		failure:    lg.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
		box:        lg.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#626262")).Padding(0, 1),
	}
}

// Card renders one card, red suits in red
func (r *Renderer) Card(c poker.Card) string {
	if c.Suit() == poker.Hearts || c.Suit() == poker.Diamonds {
		return r.redCard.Render(c.String())
	}
	return r.blackCard.Render(c.String())
}

// Hand renders hole cards followed by their class, e.g. "As Kd (AKo)"
func (r *Renderer) Hand(h poker.Hand) string {
	return fmt.Sprintf("%s %s %s", r.Card(h[0]), r.Card(h[1]), r.info.Render("("+h.Class().String()+")"))
}

// Matrix renders the 13x13 grid with each cell coloured by frequency class
func (r *Renderer) Matrix(m preflop.Matrix) string {
	var b strings.Builder
	for row := range 13 {
		cells := make([]string, 13)
		for col := range 13 {
			label := fmt.Sprintf("%-3s", poker.ClassAt(row, col).String())
			cells[col] = r.frequency(m[row][col]).Render(label)
		}
		b.WriteString(strings.Join(cells, " "))
		if row < 12 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Legend explains the matrix colours with class and combo counts
func (r *Renderer) Legend(m preflop.Matrix) string {
	classes, combos := m.Count()
	total := float64(combos[0] + combos[1] + combos[2])
	parts := make([]string, 0, 3)
	for _, f := range []preflop.Frequency{preflop.FreqAggressive, preflop.FreqCall, preflop.FreqFold} {
		parts = append(parts, r.frequency(f).Render(fmt.Sprintf("%s %d hands (%.1f%%)",
			frequencyLabel(f), classes[f], 100*float64(combos[f])/total)))
	}
	return strings.Join(parts, "  ")
}

// Range renders a titled matrix and legend inside a box
func (r *Renderer) Range(title string, m preflop.Matrix) string {
	return r.box.Render(lipgloss.JoinVertical(lipgloss.Left,
		r.header.Render(title),
		"",
		r.Matrix(m),
		"",
		r.Legend(m),
	))
}

func (r *Renderer) frequency(f preflop.Frequency) lipgloss.Style {
	switch f {
	case preflop.FreqAggressive:
		return r.aggressive
	case preflop.FreqCall:
		return r.call
	default:
		return r.fold
	}
}

func frequencyLabel(f preflop.Frequency) string {
	switch f {
	case preflop.FreqAggressive:
		return "raise/jam"
	case preflop.FreqCall:
		return "call"
	default:
		return "fold"
	}
}

// Scenario renders the spot hero faces without revealing the answer
func (r *Renderer) Scenario(s trainer.Scenario) string {
	lines := []string{
		r.header.Render(s.RangeData.Category),
		fmt.Sprintf("Hand:  %s", r.Hand(s.HeroHand)),
		fmt.Sprintf("Pot:   %sbb", formatBB(s.PotSize)),
	}

	if len(s.PreviousActions) == 0 {
		lines = append(lines, "Action: "+r.info.Render("folded to you"))
	} else {
		steps := make([]string, len(s.PreviousActions))
		for i, a := range s.PreviousActions {
			steps[i] = fmt.Sprintf("%s %s %sbb", a.Position, strings.ToLower(a.Action.String()), formatBB(a.Amount))
		}
		lines = append(lines, "Action: "+strings.Join(steps, ", "))
	}

	stacks := make([]string, 0, len(s.VillainStacks))
	for _, p := range preflop.AllPositions() {
		stack, ok := s.VillainStacks[p]
		if !ok {
			continue
		}
		entry := fmt.Sprintf("%s %d", p, stack)
		if p == s.HeroPosition {
			entry = r.success.Render(entry + "*")
		}
		stacks = append(stacks, entry)
	}
	lines = append(lines, "Stacks: "+strings.Join(stacks, " | "))
	return strings.Join(lines, "\n")
}

// Result renders a graded answer and its explanation
func (r *Renderer) Result(res session.Result) string {
	var verdict string
	switch res.Grade {
	case session.Best:
		verdict = r.success.Render("Correct: " + res.Correct.String())
	case session.Inaccuracy:
		verdict = r.warning.Render(fmt.Sprintf("Inaccuracy: %s, best is %s", res.Chosen, res.Correct))
	default:
		verdict = r.failure.Render(fmt.Sprintf("%s: %s, best is %s", titleGrade(res.Grade), res.Chosen, res.Correct))
	}
	return verdict + "\n" + res.Explanation
}

// Stats renders the running tally and per-mode accuracy
func (r *Renderer) Stats(s session.Stats) string {
	lines := []string{fmt.Sprintf("Hands %d  Score %d  Best %d  Inaccuracy %d  Wrong %d  Blunder %d  Streak %d",
		s.Hands, s.Score, s.Best, s.Inaccuracy, s.Wrong, s.Blunder, s.Streak)}
	for _, m := range preflop.SupportedModes() {
		ms, ok := s.ByMode[m.String()]
		if !ok {
			continue
		}
		lines = append(lines, r.info.Render(fmt.Sprintf("  %-13s %3d hands  %5.1f%%", m, ms.Hands, 100*ms.Accuracy())))
	}
	return strings.Join(lines, "\n")
}

func titleGrade(g session.Grade) string {
	name := g.String()
	return strings.ToUpper(name[:1]) + name[1:]
}

// formatBB prints whole amounts without decimals, e.g. "9" or "2.2"
func formatBB(v float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.1f", v), "0"), ".")
}
