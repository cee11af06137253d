package session

import (
	"fmt"
	"maps"
	"math"
)

// ModeStats tracks answers for a single drill mode
type ModeStats struct {
	Hands int `json:"hands"`
	Best  int `json:"best"`
}

// Accuracy returns the share of best answers, 0 for no hands
func (m ModeStats) Accuracy() float64 {
	if m.Hands == 0 {
		return 0
	}
	return float64(m.Best) / float64(m.Hands)
}

// Stats is the running tally shown in the stats panel
type Stats struct {
	Hands      int `json:"hands"`
	Moves      int `json:"moves"`
	Score      int `json:"score"` // round(100 * best / moves)
	Best       int `json:"best"`
	Inaccuracy int `json:"inaccuracy"`
	Wrong      int `json:"wrong"`
	Blunder    int `json:"blunder"`

	Streak     int `json:"streak"`
	LongestRun int `json:"longestRun"`

	ByMode map[string]ModeStats `json:"byMode"`
}

// Add incorporates a graded answer
func (s *Stats) Add(r Result) {
	s.Hands++
	s.Moves++

	switch r.Grade {
	case Best:
		s.Best++
		s.Streak++
		s.LongestRun = max(s.LongestRun, s.Streak)
	case Inaccuracy:
		s.Inaccuracy++
		s.Streak = 0
	case Wrong:
		s.Wrong++
		s.Streak = 0
	default:
		s.Blunder++
		s.Streak = 0
	}
	s.Score = int(math.Round(100 * float64(s.Best) / float64(s.Moves)))

	if s.ByMode == nil {
		s.ByMode = make(map[string]ModeStats)
	}
	key := r.Mode.String()
	m := s.ByMode[key]
	m.Hands++
	if r.Grade == Best {
		m.Best++
	}
	s.ByMode[key] = m
}

// Clone returns a copy that shares no state with s
func (s Stats) Clone() Stats {
	s.ByMode = maps.Clone(s.ByMode)
	return s
}

// Validate checks that the tallies are consistent with each other
func (s *Stats) Validate() error {
	if graded := s.Best + s.Inaccuracy + s.Wrong + s.Blunder; graded != s.Moves {
		return fmt.Errorf("grade total (%d) does not match moves (%d)", graded, s.Moves)
	}
	modeHands := 0
	for _, m := range s.ByMode {
		if m.Best > m.Hands {
			return fmt.Errorf("mode best (%d) exceeds mode hands (%d)", m.Best, m.Hands)
		}
		modeHands += m.Hands
	}
	if modeHands != s.Hands {
		return fmt.Errorf("mode hands total (%d) does not match hands (%d)", modeHands, s.Hands)
	}
	if s.LongestRun > s.Best {
		return fmt.Errorf("longest run (%d) exceeds best answers (%d)", s.LongestRun, s.Best)
	}
	return nil
}
