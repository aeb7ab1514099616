package ops

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

const (
	_eventBuffer = 16
	_writeWait   = 5 * time.Second
	_pingPeriod  = 15 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// handleEvents streams reservation events as JSON text frames until the
// client goes away or the server stops. Clients never send anything but
// control frames.
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn(r.Context(), "websocket upgrade failed", "error", err, "trace_id", traceIDFrom(r.Context()))
		return
	}
	defer ws.Close()

	feed, cancel := s.feed.Subscribe(_eventBuffer)
	defer cancel()

	gone := make(chan struct{})
	go func() {
		defer close(gone)
		for {
			if _, _, err := ws.NextReader(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(_pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-gone:
			return
		case <-r.Context().Done():
			_ = ws.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, "server stopping"),
				time.Now().Add(_writeWait))
			return
		case e, ok := <-feed:
			if !ok {
				return
			}
			_ = ws.SetWriteDeadline(time.Now().Add(_writeWait))
			if err := ws.WriteJSON(e); err != nil {
				s.logger.Debug(r.Context(), "event stream ended", "error", err)
				return
			}
		case <-ticker.C:
			if err := ws.WriteControl(websocket.PingMessage, nil, time.Now().Add(_writeWait)); err != nil {
				return
			}
		}
	}
}
