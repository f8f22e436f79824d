package main

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/bytedance/sonic"

	"github.com/satriahrh/sobesednik/domain"
)

// Manual smoke run against a live relay:
//
//	SMOKE_BASE_URL=http://localhost:5000 CHAT_PROVIDER=groq CHAT_API_KEY=... go run ./test/smoke
func main() {
	baseURL := getEnv("SMOKE_BASE_URL", "http://localhost:5000")
	client := &http.Client{Timeout: 60 * time.Second}

	fmt.Println("🚀 Starting relay smoke test...")

	var chat domain.ChatResult
	err := post(client, baseURL+"/api/chat", domain.ChatRequest{
		Message:     "Привет! Как дела?",
		Provider:    domain.Provider(getEnv("CHAT_PROVIDER", "groq")),
		APIKey:      os.Getenv("CHAT_API_KEY"),
		Personality: "Алиса",
	}, &chat)
	if err != nil {
		log.Fatalf("Chat failed: %v", err)
	}
	fmt.Printf("✅ Chat reply: %s\n", chat.Reply)

	var speech domain.SpeechResult
	if err := post(client, baseURL+"/api/tts", domain.SpeechRequest{Text: chat.Reply}, &speech); err != nil {
		log.Fatalf("TTS failed: %v", err)
	}
	fmt.Printf("✅ Audio received: %d base64 chars\n", len(speech.Audio))
}

func post(client *http.Client, url string, body, out interface{}) error {
	payload, err := sonic.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request: %v", err)
	}

	startTime := time.Now()
	resp, err := client.Post(url, "application/json", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to send request: %v", err)
	}
	defer resp.Body.Close()
	fmt.Printf("⏱️  %s completed in %v\n", url, time.Since(startTime))

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status %d: %s", resp.StatusCode, string(respBody))
	}
	return sonic.Unmarshal(respBody, out)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
