package main

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gorilla/websocket"

	ws "github.com/satriahrh/sobesednik/adapters/websocket"
	"github.com/satriahrh/sobesednik/domain"
)

// session is one interactive conversation. The server keeps no state, so
// the history lives here and is sent with every chat frame.
type session struct {
	conn        *websocket.Conn
	provider    domain.Provider
	apiKey      string
	personality string
	outDir      string
	history     []domain.ChatMessage
	seq         int
}

func dial(server string) (*websocket.Conn, error) {
	conn, _, err := websocket.DefaultDialer.Dial(server, nil)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", server, err)
	}
	return conn, nil
}

// ask sends one chat frame and records the exchange on success.
func (s *session) ask(message string) (string, error) {
	in := ws.InboundFrame{
		Type: ws.FrameChat,
		ChatRequest: domain.ChatRequest{
			Message:     message,
			Provider:    s.provider,
			APIKey:      s.apiKey,
			Personality: s.personality,
			History:     domain.TrimHistory(s.history),
		},
	}

	out, err := s.roundTrip(in)
	if err != nil {
		return "", err
	}
	if !out.Success {
		return "", fmt.Errorf("%s", out.Error)
	}

	s.record(message, out.Reply)
	return out.Reply, nil
}

func (s *session) record(message, reply string) {
	s.history = append(s.history,
		domain.ChatMessage{Role: domain.UserRole, Content: message},
		domain.ChatMessage{Role: domain.AssistantRole, Content: reply})
}

// speak asks the server to voice text and writes the mp3 into outDir.
func (s *session) speak(text string) (string, error) {
	out, err := s.roundTrip(ws.InboundFrame{Type: ws.FrameTTS, Text: text})
	if err != nil {
		return "", err
	}
	if !out.Success {
		return "", fmt.Errorf("%s", out.Error)
	}

	audio, err := base64.StdEncoding.DecodeString(out.Audio)
	if err != nil {
		return "", fmt.Errorf("decode audio: %w", err)
	}

	path := filepath.Join(s.outDir, fmt.Sprintf("reply-%d.mp3", time.Now().UnixNano()))
	if err := os.WriteFile(path, audio, 0o644); err != nil {
		return "", fmt.Errorf("write audio: %w", err)
	}
	return path, nil
}

func (s *session) roundTrip(in ws.InboundFrame) (ws.OutboundFrame, error) {
	s.seq++
	in.ID = strconv.Itoa(s.seq)

	data, err := sonic.Marshal(in)
	if err != nil {
		return ws.OutboundFrame{}, fmt.Errorf("encode frame: %w", err)
	}
	if err := s.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		return ws.OutboundFrame{}, fmt.Errorf("send frame: %w", err)
	}

	for {
		_, raw, err := s.conn.ReadMessage()
		if err != nil {
			return ws.OutboundFrame{}, fmt.Errorf("read frame: %w", err)
		}
		var out ws.OutboundFrame
		if err := sonic.Unmarshal(raw, &out); err != nil {
			return ws.OutboundFrame{}, fmt.Errorf("decode frame: %w", err)
		}
		if out.ID == in.ID || out.Type == ws.FrameError {
			return out, nil
		}
	}
}
