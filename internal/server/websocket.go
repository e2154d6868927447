package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/muurk/findar/internal/carousel"
	"github.com/muurk/findar/internal/logging"
	"github.com/muurk/findar/internal/site"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period (must be less than pongWait)
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 1024
)

// clientMessage is one carousel input sent by the browser.
// Index is required for select and ignored otherwise.
type clientMessage struct {
	Action string `json:"action"`
	Index  *int   `json:"index,omitempty"`
}

// errMissingIndex is reported for a select message without an index.
var errMissingIndex = errors.New("select requires an index")

// handleCarouselSocket mounts a carousel for the lifetime of the connection.
func (s *Server) handleCarouselSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.Warn("WebSocket upgrade failed",
			zap.String("remote_addr", r.RemoteAddr),
			zap.Error(err),
		)
		return
	}

	remoteAddr := r.RemoteAddr
	if !s.track(conn, remoteAddr) {
		logging.LogConnection(remoteAddr, "websocket_refused_shutdown")
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
			time.Now().Add(writeWait))
		_ = conn.Close()
		return
	}
	logging.LogConnection(remoteAddr, "websocket_upgraded")

	defer func() {
		s.untrack(conn)
		_ = conn.Close()
		logging.LogConnection(remoteAddr, "websocket_closed")
		s.wg.Done()
	}()

	ctrl, err := site.NewCarousel(s.doc)
	if err != nil {
		s.sendError(conn, remoteAddr, err.Error())
		return
	}

	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	done := make(chan struct{})
	defer close(done)
	go keepAlive(conn, done)

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logging.Info("Connection closed or error reading message",
					zap.String("remote_addr", remoteAddr),
					zap.Error(err),
				)
			}
			return
		}

		var msg clientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			s.sendError(conn, remoteAddr, "invalid message format")
			continue
		}

		if err := s.handleMessage(conn, remoteAddr, ctrl, msg); err != nil {
			logging.Info("Failed to write reply",
				zap.String("remote_addr", remoteAddr),
				zap.Error(err),
			)
			return
		}
	}
}

// handleMessage applies msg to ctrl and writes the reply. Only write errors
// are returned; rejected input is reported to the client.
func (s *Server) handleMessage(conn *websocket.Conn, remoteAddr string, ctrl *site.Carousel, msg clientMessage) error {
	action, err := carousel.ParseAction(msg.Action)
	if err != nil {
		return s.writeMessage(conn, errorMessage{Error: err.Error()})
	}

	ev := carousel.Event{Action: action}
	if action == carousel.ActionSelect {
		if msg.Index == nil {
			return s.writeMessage(conn, errorMessage{Error: errMissingIndex.Error()})
		}
		ev.Index = *msg.Index
	}

	from := ctrl.ActiveIndex()
	if err := ctrl.Apply(ev); err != nil {
		return s.writeMessage(conn, errorMessage{Error: err.Error()})
	}
	logging.LogCarouselEvent(remoteAddr, string(action), from, ctrl.ActiveIndex())

	state, err := s.snapshot(ctrl)
	if err != nil {
		return s.writeMessage(conn, errorMessage{Error: err.Error()})
	}
	return s.writeMessage(conn, state)
}

func (s *Server) writeMessage(conn *websocket.Conn, v any) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(v)
}

func (s *Server) sendError(conn *websocket.Conn, remoteAddr, message string) {
	if err := s.writeMessage(conn, errorMessage{Error: message}); err != nil {
		logging.Debug("Failed to send error",
			zap.String("remote_addr", remoteAddr),
			zap.Error(err),
		)
	}
}

// keepAlive pings the peer until done is closed. WriteControl may run
// concurrently with the reader loop's writes.
func keepAlive(conn *websocket.Conn, done <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}
