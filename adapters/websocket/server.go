package websocket

import (
	"context"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/satriahrh/sobesednik/utils/log"
)

// Server relays chat and tts frames over WebSocket with the same semantics
// as the HTTP endpoints.
type Server struct {
	upgrader websocket.Upgrader
	chat     ChatDispatcher
	speaker  Speaker
	hub      *Hub
}

func NewServer(chat ChatDispatcher, speaker Speaker) *Server {
	return &Server{
		upgrader: websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }},
		chat:     chat,
		speaker:  speaker,
		hub:      NewHub(),
	}
}

func (s *Server) RunWebsocketHub() {
	s.hub.Run()
}

func (s *Server) GetHub() *Hub {
	return s.hub
}

// Handler upgrades the request and serves the connection until it closes.
func (s *Server) Handler(c echo.Context) error {
	conn, err := s.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	// The request context ends when the handler returns, so the connection
	// gets its own root carrying only the request id for logs.
	parent := context.Background()
	if id := c.Response().Header().Get(echo.HeaderXRequestID); id != "" {
		parent = log.WithRequestID(parent, id)
	}

	client := NewClient(parent, conn, func(ctx context.Context, message []byte) []byte {
		return handleFrame(ctx, s.chat, s.speaker, message)
	})
	s.hub.Register(client)
	defer s.hub.Unregister(client)

	client.Run()
	log.WithCtx(client.Context()).Info("WebSocket client connected")

	<-client.Context().Done()

	log.WithCtx(client.Context()).Info("WebSocket client disconnected")
	return nil
}
