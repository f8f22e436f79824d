package domain

import "context"

// Synthesizer turns speech-safe text into compressed audio.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

type SpeechRequest struct {
	Text string `json:"text"`
}

// SpeechResult carries base64 audio or an error.
type SpeechResult struct {
	Audio   string `json:"audio,omitempty"`
	Error   string `json:"error,omitempty"`
	Success bool   `json:"success"`
}

func NewSpeechResult(audio string, err error) SpeechResult {
	if err != nil {
		return SpeechResult{Error: err.Error()}
	}
	return SpeechResult{Audio: audio, Success: true}
}
