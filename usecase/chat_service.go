package usecase

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/satriahrh/sobesednik/adapters/hasher"
	"github.com/satriahrh/sobesednik/domain"
	"github.com/satriahrh/sobesednik/utils/log"
)

// DefaultChatTimeout bounds one upstream chat call.
const DefaultChatTimeout = 30 * time.Second

// ChatService picks the provider adapter and builds the prompt for it.
type ChatService struct {
	providers     map[domain.Provider]domain.Llm
	personalities domain.PersonalityRegistry
	hasher        domain.Hasher
	timeout       time.Duration
}

func NewChatService(providers map[domain.Provider]domain.Llm, h domain.Hasher, timeout time.Duration) *ChatService {
	if timeout <= 0 {
		timeout = DefaultChatTimeout
	}
	return &ChatService{
		providers:     providers,
		personalities: domain.Personalities,
		hasher:        h,
		timeout:       timeout,
	}
}

// Dispatch returns the provider's reply. Errors are domain.ErrUnknownProvider
// or a *domain.UpstreamError.
func (s *ChatService) Dispatch(ctx context.Context, req domain.ChatRequest) (reply string, err error) {
	llm, ok := s.providers[req.Provider]
	if !ok {
		log.WithCtx(ctx).Warn("Unknown provider requested", zap.String("provider", string(req.Provider)))
		return "", domain.ErrUnknownProvider
	}

	ctx = log.WithChat(ctx, string(req.Provider), req.Personality)
	messages := s.buildMessages(req)

	log.WithCtx(ctx).Info("Dispatching chat",
		zap.Int("history", len(req.History)),
		zap.Int("forwarded", len(messages)),
		zap.String("key_fingerprint", hasher.Fingerprint(s.hasher, req.APIKey)))

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			log.WithCtx(ctx).Error("Provider panicked", zap.Any("panic", r))
			reply, err = "", domain.NewUpstreamError(fmt.Errorf("provider panic: %v", r))
		}
	}()

	start := time.Now()
	reply, err = llm.Complete(ctx, messages, req.APIKey)
	if err != nil {
		log.WithCtx(ctx).Error("Provider call failed", zap.Error(err), zap.Duration("elapsed", time.Since(start)))
		return "", domain.NewUpstreamError(err)
	}

	log.WithCtx(ctx).Info("Provider replied",
		zap.Int("reply_len", len(reply)),
		zap.Duration("elapsed", time.Since(start)))
	return reply, nil
}

// buildMessages lays out [system] + last history turns + [user message].
func (s *ChatService) buildMessages(req domain.ChatRequest) []domain.ChatMessage {
	history := domain.TrimHistory(req.History)

	messages := make([]domain.ChatMessage, 0, len(history)+2)
	messages = append(messages, domain.ChatMessage{
		Role:    domain.SystemRole,
		Content: s.personalities.Resolve(req.Personality),
	})
	messages = append(messages, history...)
	messages = append(messages, domain.ChatMessage{
		Role:    domain.UserRole,
		Content: req.Message,
	})
	return messages
}
