package server

import (
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/lox/preflop-trainer/internal/preflop"
	"github.com/lox/preflop-trainer/internal/session"
	"github.com/lox/preflop-trainer/internal/trainer"
)

// Message types on the drill stream
const (
	TypeScenario = "scenario"
	TypeResult   = "result"
	TypeError    = "error"
)

// Message is a server-to-client frame on /ws
type Message struct {
	Type     string            `json:"type"`
	Scenario *trainer.Scenario `json:"scenario,omitempty"`
	Result   *session.Result   `json:"result,omitempty"`
	Stats    *session.Stats    `json:"stats,omitempty"`
	Error    string            `json:"error,omitempty"`
}

// handleWebSocket runs one drill per connection: push a scenario, read an
// answer, push the graded result, repeat until the client goes away.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	cfg, err := trainingFromQuery(s.training, r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("Failed to upgrade connection", "error", err)
		return
	}
	defer func() {
		_ = conn.Close() // Ignore close errors on teardown
	}()

	sess := session.New(s.logger, s.gen, cfg)
	s.logger.Info("Drill client connected", "remote", r.RemoteAddr)

	sc := sess.Deal()
	if err := conn.WriteJSON(Message{Type: TypeScenario, Scenario: &sc}); err != nil {
		return
	}

	for {
		var req answerRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Warn("Drill client read failed", "error", err)
			}
			break
		}

		action, err := preflop.ParseAction(req.Action)
		if err != nil {
			if err := conn.WriteJSON(Message{Type: TypeError, Error: err.Error()}); err != nil {
				break
			}
			continue
		}

		res, err := sess.Answer(action)
		if err != nil {
			if err := conn.WriteJSON(Message{Type: TypeError, Error: err.Error()}); err != nil {
				break
			}
			continue
		}
		stats := sess.Stats()
		if err := conn.WriteJSON(Message{Type: TypeResult, Result: &res, Stats: &stats}); err != nil {
			break
		}

		next := sess.Deal()
		if err := conn.WriteJSON(Message{Type: TypeScenario, Scenario: &next}); err != nil {
			break
		}
	}

	final := sess.Stats()
	s.logger.Info("Drill client disconnected", "remote", r.RemoteAddr, "moves", final.Moves, "score", final.Score)
}
