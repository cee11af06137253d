// Package session tracks a single trainee's drill: the scenario on the
// table, graded answers and running stats.
package session

import (
	"errors"
	"slices"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/lox/preflop-trainer/internal/preflop"
	"github.com/lox/preflop-trainer/internal/trainer"
)

// HistoryLimit is how many graded answers History keeps, oldest dropped first
const HistoryLimit = 1000

// ErrNoScenario is returned when answering with nothing dealt, or twice
var ErrNoScenario = errors.New("no scenario awaiting an answer")

// Session deals from a Generator and grades answers. It is safe for concurrent use.
type Session struct {
	mu      sync.Mutex
	gen     *trainer.Generator
	cfg     trainer.TrainingConfig
	current *trainer.Scenario
	stats   Stats
	history []Result
	logger  *log.Logger
}

// New creates a session dealing cfg scenarios from gen
func New(logger *log.Logger, gen *trainer.Generator, cfg trainer.TrainingConfig) *Session {
	if logger == nil {
		logger = log.Default()
	}
	return &Session{
		gen:    gen,
		cfg:    cfg,
		logger: logger.WithPrefix("session"),
	}
}

// Deal replaces the current scenario with a fresh one
func (s *Session) Deal() trainer.Scenario {
	s.mu.Lock()
	cfg := s.cfg
	s.mu.Unlock()

	sc := s.gen.Generate(cfg)

	s.mu.Lock()
	s.current = &sc
	s.mu.Unlock()
	return sc
}

// Current returns the scenario awaiting an answer
func (s *Session) Current() (trainer.Scenario, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return trainer.Scenario{}, false
	}
	return *s.current, true
}

// Answer grades chosen against the current scenario and clears it
func (s *Session) Answer(chosen preflop.Action) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return Result{}, ErrNoScenario
	}
	r := s.record(*s.current, chosen)
	s.current = nil
	return r, nil
}

// Record grades an answer to any scenario, such as one issued over HTTP
func (s *Session) Record(sc trainer.Scenario, chosen preflop.Action) Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.record(sc, chosen)
}

func (s *Session) record(sc trainer.Scenario, chosen preflop.Action) Result {
	r := Judge(sc, chosen)
	s.stats.Add(r)
	s.history = append(s.history, r)
	if len(s.history) >= 2*HistoryLimit {
		s.history = slices.Clone(s.history[len(s.history)-HistoryLimit:])
	}
	s.logger.Debug("graded answer",
		"id", r.ScenarioID,
		"mode", r.Mode,
		"chosen", r.Chosen,
		"correct", r.Correct,
		"grade", r.Grade,
		"score", s.stats.Score)
	return r
}

// Stats returns a snapshot of the running tally
func (s *Session) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats.Clone()
}

// History returns the last HistoryLimit graded answers in order
func (s *Session) History() []Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.history[max(0, len(s.history)-HistoryLimit):])
}

// Config returns the training config new deals use
func (s *Session) Config() trainer.TrainingConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg
}

// SetConfig changes the config for subsequent deals
func (s *Session) SetConfig(cfg trainer.TrainingConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = cfg
}

// Reset clears stats, history and the current scenario
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stats = Stats{}
	s.history = nil
	s.current = nil
}
