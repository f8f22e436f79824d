package usecase

import (
	"context"
	"encoding/base64"

	"go.uber.org/zap"

	"github.com/satriahrh/sobesednik/domain"
	"github.com/satriahrh/sobesednik/utils/log"
	"github.com/satriahrh/sobesednik/utils/text"
)

type SpeechService struct {
	synthesizer domain.Synthesizer
}

func NewSpeechService(synthesizer domain.Synthesizer) *SpeechService {
	return &SpeechService{synthesizer: synthesizer}
}

// Speak sanitizes text and returns base64 encoded audio. Empty sanitized text
// fails with domain.ErrEmptyText without calling the engine.
func (s *SpeechService) Speak(ctx context.Context, raw string) (string, error) {
	clean := text.SanitizeForSpeech(raw)
	if clean == "" {
		return "", domain.ErrEmptyText
	}

	audio, err := s.synthesizer.Synthesize(ctx, clean)
	if err != nil {
		log.WithCtx(ctx).Error("Speech synthesis failed", zap.Error(err))
		return "", domain.NewUpstreamError(err)
	}

	log.WithCtx(ctx).Info("Speech synthesized",
		zap.Int("text_len", len(clean)),
		zap.Int("audio_bytes", len(audio)))
	return base64.StdEncoding.EncodeToString(audio), nil
}
