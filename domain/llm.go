package domain

import "context"

// Llm abstracts one upstream chat-completion provider.
type Llm interface {
	// Complete sends the ordered messages and returns the model's reply.
	// The API key belongs to the caller and is used for this call only.
	Complete(ctx context.Context, messages []ChatMessage, apiKey string) (string, error)
}

type ChatMessage struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

type Role string

const (
	UserRole      Role = "user"
	AssistantRole Role = "assistant"
	SystemRole    Role = "system"
)

// Provider names an upstream chat-completion service.
type Provider string

const (
	ProviderGroq   Provider = "groq"
	ProviderOpenAI Provider = "openai"
	ProviderGoogle Provider = "google"
)

// HistoryWindow is how many trailing history turns are forwarded upstream.
const HistoryWindow = 10

// ChatRequest is one /api/chat call. History is owned by the caller.
type ChatRequest struct {
	Message     string        `json:"message"`
	Provider    Provider      `json:"provider"`
	APIKey      string        `json:"api_key"`
	Personality string        `json:"personality,omitempty"`
	History     []ChatMessage `json:"history,omitempty"`
}

// ChatResult carries either a reply or an error.
type ChatResult struct {
	Reply   string `json:"reply,omitempty"`
	Error   string `json:"error,omitempty"`
	Success bool   `json:"success"`
}

func NewChatResult(reply string, err error) ChatResult {
	if err != nil {
		return ChatResult{Error: err.Error()}
	}
	return ChatResult{Reply: reply, Success: true}
}

// TrimHistory returns the last HistoryWindow turns in their original order.
func TrimHistory(history []ChatMessage) []ChatMessage {
	if len(history) <= HistoryWindow {
		return history
	}
	return history[len(history)-HistoryWindow:]
}
