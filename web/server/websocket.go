package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

// wsWriteTimeout bounds a single websocket write so a stalled client cannot hold a render open
const wsWriteTimeout = 10 * time.Second

// handleRenderWebSocket streams the same events as handleRender over a websocket,
// one JSON StreamEvent per text message. The connection closes after the final event.
func (s *Server) handleRenderWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied with an HTTP error
		s.logger.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	// The client never sends anything meaningful; reading detects when it goes away
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	events := make(chan StreamEvent, 100)
	go s.streamRender(ctx, r, events)

	for {
		select {
		case event, ok := <-events:
			if !ok {
				conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
				conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, "render finished"))
				return
			}
			conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
			if err := conn.WriteJSON(event); err != nil {
				s.logger.Debug("websocket write failed", "error", err)
				return
			}
		case <-ctx.Done():
			return
		}
	}
}
