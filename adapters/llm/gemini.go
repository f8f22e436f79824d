package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/genai"

	"github.com/satriahrh/sobesednik/domain"
)

const geminiModel = "gemini-2.0-flash-exp"

// GeminiClient answers with a single combined prompt. It does not forward
// conversation history, only the system prompt and the newest user message.
type GeminiClient struct {
	baseURL    string
	httpClient *http.Client
}

var _ domain.Llm = (*GeminiClient)(nil)

func NewGemini() *GeminiClient {
	return &GeminiClient{httpClient: &http.Client{Timeout: requestTimeout}}
}

// NewGeminiWithBaseURL points the client at another endpoint, e.g. a proxy.
func NewGeminiWithBaseURL(baseURL string) *GeminiClient {
	g := NewGemini()
	g.baseURL = baseURL
	return g
}

func (g *GeminiClient) Complete(ctx context.Context, messages []domain.ChatMessage, apiKey string) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPClient:  g.httpClient,
		HTTPOptions: genai.HTTPOptions{BaseURL: g.baseURL},
	})
	if err != nil {
		return "", fmt.Errorf("creating genai client: %w", err)
	}

	resp, err := client.Models.GenerateContent(ctx, geminiModel, genai.Text(buildGeminiPrompt(messages)), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", errors.New("empty response text")
	}
	return text, nil
}

// buildGeminiPrompt folds the role text and the last user message into one
// prompt string.
func buildGeminiPrompt(messages []domain.ChatMessage) string {
	var role, message string
	for _, msg := range messages {
		switch msg.Role {
		case domain.SystemRole:
			if role == "" {
				role = msg.Content
			}
		case domain.UserRole:
			message = msg.Content
		}
	}
	return fmt.Sprintf("Роль: %s\n\nОтвечай кратко.\n\n%s", role, message)
}
