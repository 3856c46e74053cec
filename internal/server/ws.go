package server

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
)

// wsError is sent back on a failed calculation; the connection stays
// open so the client can keep editing.
type wsError struct {
	Error string `json:"error"`
}

// handleWS streams calculations over one connection: each incoming
// calculateRequest message gets one calculateResponse (or wsError)
// message back, in order. Build editors use this to recompute on every
// slider change without per-request HTTP overhead.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("websocket upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}
	defer conn.Close()

	slog.Debug("websocket session opened", "remote", r.RemoteAddr)
	for {
		var req calculateRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				slog.Warn("websocket read failed", "remote", r.RemoteAddr, "error", err)
			}
			return
		}

		resp, err := s.calculate(req)
		if err != nil {
			if err := conn.WriteJSON(wsError{Error: err.Error()}); err != nil {
				slog.Warn("websocket write failed", "remote", r.RemoteAddr, "error", err)
				return
			}
			continue
		}
		if err := conn.WriteJSON(resp); err != nil {
			slog.Warn("websocket write failed", "remote", r.RemoteAddr, "error", err)
			return
		}
	}
}
