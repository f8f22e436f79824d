package websocket

import (
	"context"
	"fmt"

	"github.com/bytedance/sonic"

	"github.com/satriahrh/sobesednik/domain"
)

const (
	FrameChat       = "chat"
	FrameTTS        = "tts"
	FrameChatResult = "chat_result"
	FrameTTSResult  = "tts_result"
	FrameError      = "error"
)

// InboundFrame is one client request. Chat frames carry the ChatRequest
// fields inline, tts frames carry text.
type InboundFrame struct {
	Type string `json:"type"`
	ID   string `json:"id,omitempty"`
	domain.ChatRequest
	Text string `json:"text,omitempty"`
}

type OutboundFrame struct {
	Type    string `json:"type"`
	ID      string `json:"id,omitempty"`
	Reply   string `json:"reply,omitempty"`
	Audio   string `json:"audio,omitempty"`
	Error   string `json:"error,omitempty"`
	Success bool   `json:"success"`
}

// ChatDispatcher and Speaker are the use cases a connection can reach.
type ChatDispatcher interface {
	Dispatch(ctx context.Context, req domain.ChatRequest) (string, error)
}

type Speaker interface {
	Speak(ctx context.Context, text string) (string, error)
}

// handleFrame answers one inbound frame. It never fails; problems are
// reported as error frames.
func handleFrame(ctx context.Context, chat ChatDispatcher, speaker Speaker, raw []byte) []byte {
	var in InboundFrame
	var out OutboundFrame

	if err := sonic.Unmarshal(raw, &in); err != nil {
		out = OutboundFrame{Type: FrameError, Error: fmt.Sprintf("invalid frame: %v", err)}
		return encodeFrame(out)
	}

	switch in.Type {
	case FrameChat:
		result := domain.NewChatResult(chat.Dispatch(ctx, in.ChatRequest))
		out = OutboundFrame{Type: FrameChatResult, Reply: result.Reply, Error: result.Error, Success: result.Success}
	case FrameTTS:
		result := domain.NewSpeechResult(speaker.Speak(ctx, in.Text))
		out = OutboundFrame{Type: FrameTTSResult, Audio: result.Audio, Error: result.Error, Success: result.Success}
	default:
		out = OutboundFrame{Type: FrameError, Error: fmt.Sprintf("unknown frame type %q", in.Type)}
	}
	out.ID = in.ID

	return encodeFrame(out)
}

func encodeFrame(frame OutboundFrame) []byte {
	data, err := sonic.Marshal(frame)
	if err != nil {
		// Only plain strings and bools are encoded here.
		return []byte(`{"type":"error","error":"encoding frame failed","success":false}`)
	}
	return data
}
