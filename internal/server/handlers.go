package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/lox/preflop-trainer/internal/preflop"
	"github.com/lox/preflop-trainer/internal/session"
	"github.com/lox/preflop-trainer/internal/trainer"
)

type answerRequest struct {
	Action string `json:"action"`
}

type answerResponse struct {
	Result session.Result `json:"result"`
	Stats  session.Stats  `json:"stats"`
}

type rangeResponse struct {
	Category string         `json:"category"`
	Spot     preflop.Spot   `json:"spot"`
	Hands    []string       `json:"hands"`
	Matrix   preflop.Matrix `json:"matrix"`
}

type opponentRangeResponse struct {
	Position preflop.Position `json:"position"`
	Action   preflop.Action   `json:"action"`
	Matrix   preflop.Matrix   `json:"matrix"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (s *Server) handleScenario(w http.ResponseWriter, r *http.Request) {
	cfg, err := trainingFromQuery(s.training, r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	sc := s.gen.Generate(cfg)
	s.issued.Add(sc.ID, sc)
	writeJSON(w, http.StatusOK, sc)
}

func (s *Server) handleAnswer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	sc, ok := s.issued.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Errorf("unknown scenario %q", id))
		return
	}

	var req answerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	action, err := preflop.ParseAction(req.Action)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	// Only the request that takes the scenario out of the cache grades it
	if !s.issued.Remove(id) {
		writeError(w, http.StatusNotFound, fmt.Errorf("scenario %q already answered", id))
		return
	}
	res := s.tally.Record(sc, action)
	writeJSON(w, http.StatusOK, answerResponse{Result: res, Stats: s.tally.Stats()})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.tally.Stats())
}

func (s *Server) handleRange(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	spot := preflop.Spot{Villain: preflop.UTG, Stack: 100}

	mode, err := preflop.ParseMode(q.Get("mode"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if mode == preflop.Any {
		writeError(w, http.StatusBadRequest, errors.New("range needs a concrete drill mode"))
		return
	}
	spot.Mode = mode

	if spot.Hero, err = preflop.ParsePosition(q.Get("position")); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if v := q.Get("villain"); v != "" {
		if spot.Villain, err = preflop.ParsePosition(v); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
	}
	if v := q.Get("stack"); v != "" {
		if spot.Stack, err = positiveInt("stack", v); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
	}

	m := preflop.BuildMatrix(spot)
	writeJSON(w, http.StatusOK, rangeResponse{
		Category: spot.String(),
		Spot:     spot,
		Hands:    m.Hands(preflop.FreqCall),
		Matrix:   m,
	})
}

func (s *Server) handleOpponentRange(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	seat, err := preflop.ParsePosition(q.Get("position"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	action, err := preflop.ParseAction(q.Get("action"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	mode, hero := preflop.RFI, preflop.BB
	if v := q.Get("mode"); v != "" {
		if mode, err = preflop.ParseMode(v); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
	}
	if v := q.Get("hero"); v != "" {
		if hero, err = preflop.ParsePosition(v); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
	}

	writeJSON(w, http.StatusOK, opponentRangeResponse{
		Position: seat,
		Action:   action,
		Matrix:   preflop.OpponentActionMatrix(seat, action, mode, hero),
	})
}

// trainingFromQuery overlays query parameters on base and validates the result
func trainingFromQuery(base trainer.TrainingConfig, q url.Values) (trainer.TrainingConfig, error) {
	cfg := base
	var err error
	if v := q.Get("mode"); v != "" {
		if cfg.PreflopAction, err = preflop.ParseMode(v); err != nil {
			return cfg, err
		}
	}
	if v := q.Get("players"); v != "" {
		if cfg.Players, err = positiveInt("players", v); err != nil {
			return cfg, err
		}
	}
	if v := q.Get("stack_min"); v != "" {
		if cfg.StackMin, err = positiveInt("stack_min", v); err != nil {
			return cfg, err
		}
	}
	if v := q.Get("stack_max"); v != "" {
		if cfg.StackMax, err = positiveInt("stack_max", v); err != nil {
			return cfg, err
		}
	}
	if v := q.Get("randomize_villains"); v != "" {
		if cfg.RandomizeVillainStacks, err = strconv.ParseBool(v); err != nil {
			return cfg, fmt.Errorf("randomize_villains: %w", err)
		}
	}
	return cfg, cfg.Validate()
}

func positiveInt(name, v string) (int, error) {
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	if n < 1 {
		return 0, fmt.Errorf("%s must be positive, got %d", name, n)
	}
	return n, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v) // Client may have gone away
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
