package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/satriahrh/sobesednik/domain"
)

type capturedRequest struct {
	path   string
	auth   string
	body   map[string]interface{}
	decErr error
}

func newCompletionServer(t *testing.T, status int, response string, captured *capturedRequest) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.path = r.URL.Path
		captured.auth = r.Header.Get("Authorization")
		captured.decErr = json.NewDecoder(r.Body).Decode(&captured.body)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(response))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestChatCompletionClient_Complete(t *testing.T) {
	var captured capturedRequest
	server := newCompletionServer(t, http.StatusOK, `{
		"id": "chatcmpl-1",
		"object": "chat.completion",
		"model": "llama-3.3-70b-versatile",
		"choices": [{"index": 0, "message": {"role": "assistant", "content": "Привет!"}, "finish_reason": "stop"}]
	}`, &captured)

	client := NewChatCompletionClient(server.URL+"/openai/v1", groqModel)
	messages := []domain.ChatMessage{
		{Role: domain.SystemRole, Content: "Ты умный голосовой ассистент, вежливая."},
		{Role: domain.UserRole, Content: "Раньше"},
		{Role: domain.AssistantRole, Content: "Ответ"},
		{Role: domain.UserRole, Content: "Hi"},
	}

	reply, err := client.Complete(context.Background(), messages, "gsk_test")
	if err != nil {
		t.Fatalf("Complete returned error: %v", err)
	}
	if reply != "Привет!" {
		t.Errorf("expected reply 'Привет!', got %q", reply)
	}

	if captured.decErr != nil {
		t.Fatalf("upstream could not decode request: %v", captured.decErr)
	}
	if captured.path != "/openai/v1/chat/completions" {
		t.Errorf("unexpected path %s", captured.path)
	}
	if captured.auth != "Bearer gsk_test" {
		t.Errorf("unexpected Authorization header %q", captured.auth)
	}
	if captured.body["model"] != groqModel {
		t.Errorf("unexpected model %v", captured.body["model"])
	}
	if captured.body["max_tokens"] != float64(500) {
		t.Errorf("unexpected max_tokens %v", captured.body["max_tokens"])
	}
	if temp, ok := captured.body["temperature"].(float64); !ok || temp < 0.69 || temp > 0.71 {
		t.Errorf("unexpected temperature %v", captured.body["temperature"])
	}

	sent, ok := captured.body["messages"].([]interface{})
	if !ok || len(sent) != len(messages) {
		t.Fatalf("expected %d messages, got %v", len(messages), captured.body["messages"])
	}
	for i, raw := range sent {
		msg := raw.(map[string]interface{})
		if msg["role"] != string(messages[i].Role) || msg["content"] != messages[i].Content {
			t.Errorf("message %d: got %v", i, msg)
		}
	}
}

func TestChatCompletionClient_Failures(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		response string
		wantErr  string
	}{
		{
			name:     "no choices",
			status:   http.StatusOK,
			response: `{"id": "x", "choices": []}`,
			wantErr:  "no choices",
		},
		{
			name:     "empty content",
			status:   http.StatusOK,
			response: `{"id": "x", "choices": [{"index": 0, "message": {"role": "assistant"}}]}`,
			wantErr:  "no message content",
		},
		{
			name:     "unauthorized",
			status:   http.StatusUnauthorized,
			response: `{"error": {"message": "Invalid API Key", "type": "invalid_request_error", "code": "invalid_api_key"}}`,
			wantErr:  "Invalid API Key",
		},
		{
			name:     "malformed body",
			status:   http.StatusOK,
			response: `not json`,
			wantErr:  "create chat completion",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var captured capturedRequest
			server := newCompletionServer(t, tt.status, tt.response, &captured)
			client := NewChatCompletionClient(server.URL, openAIModel)

			_, err := client.Complete(context.Background(), []domain.ChatMessage{{Role: domain.UserRole, Content: "Hi"}}, "sk-test")
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %q", tt.wantErr, err.Error())
			}
		})
	}
}

func TestNewProviders(t *testing.T) {
	groq := NewGroq()
	if groq.baseURL != "https://api.groq.com/openai/v1" || groq.model != "llama-3.3-70b-versatile" {
		t.Errorf("unexpected groq client: %+v", groq)
	}
	openAI := NewOpenAI()
	if openAI.baseURL != "https://api.openai.com/v1" || openAI.model != "gpt-3.5-turbo" {
		t.Errorf("unexpected openai client: %+v", openAI)
	}
	if groq.httpClient.Timeout != requestTimeout || openAI.httpClient.Timeout != requestTimeout {
		t.Error("expected request timeout on http clients")
	}
}
