package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/satriahrh/sobesednik/domain"
)

const (
	groqBaseURL   = "https://api.groq.com/openai/v1"
	groqModel     = "llama-3.3-70b-versatile"
	openAIBaseURL = "https://api.openai.com/v1"
	openAIModel   = openai.GPT3Dot5Turbo

	maxTokens      = 500
	temperature    = 0.7
	requestTimeout = 30 * time.Second
)

// ChatCompletionClient talks to any OpenAI compatible chat completions API.
type ChatCompletionClient struct {
	baseURL    string
	model      string
	httpClient *http.Client
}

// Ensure ChatCompletionClient implements the Llm interface
var _ domain.Llm = (*ChatCompletionClient)(nil)

func NewGroq() *ChatCompletionClient {
	return NewChatCompletionClient(groqBaseURL, groqModel)
}

func NewOpenAI() *ChatCompletionClient {
	return NewChatCompletionClient(openAIBaseURL, openAIModel)
}

func NewChatCompletionClient(baseURL, model string) *ChatCompletionClient {
	return &ChatCompletionClient{
		baseURL:    baseURL,
		model:      model,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// Complete posts the whole message list and returns the first choice.
func (c *ChatCompletionClient) Complete(ctx context.Context, messages []domain.ChatMessage, apiKey string) (string, error) {
	config := openai.DefaultConfig(apiKey)
	config.BaseURL = c.baseURL
	config.HTTPClient = c.httpClient
	client := openai.NewClientWithConfig(config)

	req := openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    toOpenAIMessages(messages),
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}

	resp, err := client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("create chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("no choices in response")
	}
	content := resp.Choices[0].Message.Content
	if content == "" {
		return "", errors.New("no message content in first choice")
	}

	return content, nil
}

func toOpenAIMessages(messages []domain.ChatMessage) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, len(messages))
	for i, msg := range messages {
		out[i] = openai.ChatCompletionMessage{
			Role:    string(msg.Role),
			Content: msg.Content,
		}
	}
	return out
}
