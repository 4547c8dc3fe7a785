package api

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"

	"github.com/sinagolchin/SYNTHIUM/internal/engine"
	"github.com/sinagolchin/SYNTHIUM/pkg/models"
)

// broadcastTimeout bounds a single broadcast write to a slow client
const broadcastTimeout = 5 * time.Second

// wsRequest is a client frame. Type selects the action; the remaining
// fields apply to "analyze".
type wsRequest struct {
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
	UserID      string `json:"user_id,omitempty"`
}

// wsFrame is a server frame. Analysis carries the reply to an analyze
// request; Data carries analyses broadcast from the REST endpoint.
type wsFrame struct {
	Type      string                `json:"type"`
	Message   string                `json:"message,omitempty"`
	UserID    string                `json:"user_id,omitempty"`
	Error     string                `json:"error,omitempty"`
	Analysis  *models.StateAnalysis `json:"analysis,omitempty"`
	Data      *models.StateAnalysis `json:"data,omitempty"`
	Timestamp time.Time             `json:"timestamp"`
}

// hub tracks connected websocket clients for broadcasts
type hub struct {
	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
}

func newHub() *hub {
	return &hub{conns: make(map[*websocket.Conn]struct{})}
}

func (h *hub) add(c *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[c] = struct{}{}
}

func (h *hub) remove(c *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns, c)
}

// broadcast pushes a frame to every connected client. Write failures
// are left for each connection's read loop to clean up.
func (h *hub) broadcast(frame wsFrame) {
	data, err := json.Marshal(frame)
	if err != nil {
		return
	}

	h.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(h.conns))
	for c := range h.conns {
		conns = append(conns, c)
	}
	h.mu.Unlock()

	for _, c := range conns {
		ctx, cancel := context.WithTimeout(context.Background(), broadcastTimeout)
		_ = c.Write(ctx, websocket.MessageText, data)
		cancel()
	}
}

// handleWS upgrades the connection and serves ping and analyze frames
// until the client disconnects.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true,
	})
	if err != nil {
		s.logger.Error("websocket accept failed", "error", err)
		return
	}
	defer func() { _ = conn.CloseNow() }()

	s.hub.add(conn)
	defer s.hub.remove(conn)

	ctx := r.Context()
	s.writeFrame(ctx, conn, wsFrame{
		Type:      "connection",
		Message:   "Connected to SYNTHIUM",
		Timestamp: time.Now().UTC(),
	})

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			status := websocket.CloseStatus(err)
			if status != websocket.StatusNormalClosure && status != websocket.StatusGoingAway {
				s.logger.Debug("websocket closed", "error", err)
			}
			return
		}

		var req wsRequest
		if err := json.Unmarshal(data, &req); err != nil {
			s.writeFrame(ctx, conn, wsFrame{
				Type:      "error",
				Error:     "invalid message",
				Timestamp: time.Now().UTC(),
			})
			continue
		}

		switch req.Type {
		case "ping":
			s.writeFrame(ctx, conn, wsFrame{
				Type:      "pong",
				Timestamp: time.Now().UTC(),
			})

		case "analyze":
			userID := req.UserID
			if userID == "" {
				userID = anonymousUser
			}
			analysis, err := s.engine.AnalyzeText(ctx, req.Description, engine.DefaultTopK)
			if err != nil {
				s.writeFrame(ctx, conn, wsFrame{
					Type:      "error",
					Error:     err.Error(),
					Timestamp: time.Now().UTC(),
				})
				continue
			}
			s.writeFrame(ctx, conn, wsFrame{
				Type:      "analysis_result",
				UserID:    userID,
				Analysis:  &analysis,
				Timestamp: time.Now().UTC(),
			})

		default:
			s.writeFrame(ctx, conn, wsFrame{
				Type:      "error",
				Error:     "unknown message type",
				Timestamp: time.Now().UTC(),
			})
		}
	}
}

func (s *Server) writeFrame(ctx context.Context, conn *websocket.Conn, frame wsFrame) {
	data, err := json.Marshal(frame)
	if err != nil {
		return
	}
	if err := conn.Write(ctx, websocket.MessageText, data); err != nil {
		s.logger.Debug("websocket write failed", "error", err)
	}
}
