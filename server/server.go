// Package server exposes the game over WebSocket: one independent engine
// per connection, driven by a small JSON message protocol.
package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/halvard/dungeon/config"
	"github.com/halvard/dungeon/engine"
	"github.com/halvard/dungeon/types"
)

// ClientMessage is what the browser sends: a game command, or a meta
// request (save, restore).
type ClientMessage struct {
	Input string          `json:"input,omitempty"`
	Meta  string          `json:"meta,omitempty"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// ServerMessage is what the browser receives.
type ServerMessage struct {
	Type    string          `json:"type"` // welcome, output, save, error
	Title   string          `json:"title,omitempty"`
	Intro   string          `json:"intro,omitempty"`
	Lines   []string        `json:"lines,omitempty"`
	Success bool            `json:"success"`
	Moves   int             `json:"moves"`
	Score   int             `json:"score"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
}

// EngineFactory builds a fresh engine for a new session.
type EngineFactory func() (*engine.Engine, error)

// Server runs the WebSocket session endpoint.
type Server struct {
	cfg       *config.Config
	log       *slog.Logger
	newEngine EngineFactory
	mux       *http.ServeMux
}

// New creates a Server. Each accepted connection gets its own engine from
// the factory, so sessions never share world state.
func New(cfg *config.Config, log *slog.Logger, factory EngineFactory) *Server {
	s := &Server{cfg: cfg, log: log, newEngine: factory, mux: http.NewServeMux()}
	s.mux.HandleFunc("/ws", s.handleWS)
	s.mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return s
}

// Handler returns the HTTP handler, for embedding and tests.
func (s *Server) Handler() http.Handler { return s.mux }

// ListenAndServe blocks serving the configured address.
func (s *Server) ListenAndServe() error {
	s.log.Info("server listening", "addr", s.cfg.Server.Addr)
	return http.ListenAndServe(s.cfg.Server.Addr, s.mux)
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			if origin == "" {
				return true // non-browser clients
			}
			return s.cfg.Server.IsOriginAllowed(origin, r.Host)
		},
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("upgrade failed", "remote", r.RemoteAddr, "err", err)
		return
	}
	defer conn.Close()

	eng, err := s.newEngine()
	if err != nil {
		s.log.Error("engine init failed", "err", err)
		writeMessage(conn, ServerMessage{Type: "error", Message: "could not start game"})
		return
	}

	s.log.Info("session started", "remote", r.RemoteAddr)
	s.runSession(conn, eng)
	s.log.Info("session ended", "remote", r.RemoteAddr)
}

func (s *Server) runSession(conn *websocket.Conn, eng *engine.Engine) {
	if s.cfg.Server.MaxMessageSize > 0 {
		conn.SetReadLimit(s.cfg.Server.MaxMessageSize)
	}
	idle := time.Duration(s.cfg.Server.IdleTimeoutSeconds) * time.Second

	// Opening message: game banner plus the starting room.
	look := eng.Execute("look")
	writeMessage(conn, ServerMessage{
		Type:    "welcome",
		Title:   eng.World.Game.Title,
		Intro:   eng.World.Game.Intro,
		Lines:   look.Lines,
		Success: true,
		Moves:   eng.World.Player.Moves,
		Score:   eng.World.Player.Score,
	})

	for {
		if idle > 0 {
			conn.SetReadDeadline(time.Now().Add(idle))
		}
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			writeMessage(conn, ServerMessage{Type: "error", Message: "malformed message"})
			continue
		}

		switch {
		case msg.Meta == "save":
			s.handleSave(conn, eng)
		case msg.Meta == "restore":
			s.handleRestore(conn, eng, msg.Data)
		case msg.Input != "":
			report := eng.Step(msg.Input)
			writeMessage(conn, ServerMessage{
				Type:    "output",
				Lines:   reportLines(report),
				Success: report.Success,
				Moves:   eng.World.Player.Moves,
				Score:   eng.World.Player.Score,
			})
		default:
			writeMessage(conn, ServerMessage{Type: "error", Message: "empty message"})
		}
	}
}

func (s *Server) handleSave(conn *websocket.Conn, eng *engine.Engine) {
	data, err := eng.Save()
	if err != nil {
		s.log.Error("save failed", "err", err)
		writeMessage(conn, ServerMessage{Type: "error", Message: "save failed"})
		return
	}
	writeMessage(conn, ServerMessage{Type: "save", Success: true, Data: data})
}

func (s *Server) handleRestore(conn *websocket.Conn, eng *engine.Engine, data json.RawMessage) {
	if err := eng.Restore(data); err != nil {
		writeMessage(conn, ServerMessage{Type: "error", Message: "restore failed: " + err.Error()})
		return
	}
	look := eng.Execute("look")
	writeMessage(conn, ServerMessage{
		Type:    "output",
		Lines:   append([]string{"Game restored."}, look.Lines...),
		Success: true,
		Moves:   eng.World.Player.Moves,
		Score:   eng.World.Player.Score,
	})
}

// reportLines flattens an execution report into display lines, marking
// skipped commands.
func reportLines(report types.ExecutionReport) []string {
	var lines []string
	for _, r := range report.Results {
		if r.Skipped {
			lines = append(lines, "("+r.Command+" skipped)")
			continue
		}
		lines = append(lines, r.Output.Lines...)
	}
	return lines
}

func writeMessage(conn *websocket.Conn, msg ServerMessage) {
	conn.WriteJSON(msg)
}
