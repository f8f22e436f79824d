package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/satriahrh/sobesednik/adapters/hasher"
	httpadapter "github.com/satriahrh/sobesednik/adapters/http"
	"github.com/satriahrh/sobesednik/adapters/llm"
	"github.com/satriahrh/sobesednik/adapters/tts"
	"github.com/satriahrh/sobesednik/adapters/websocket"
	"github.com/satriahrh/sobesednik/config"
	"github.com/satriahrh/sobesednik/domain"
	"github.com/satriahrh/sobesednik/usecase"
	"github.com/satriahrh/sobesednik/utils/log"
)

func main() {
	defer log.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.With().Fatal("Invalid configuration", zap.Error(err))
	}
	log.Configure(cfg.Debug)

	chatService := usecase.NewChatService(map[domain.Provider]domain.Llm{
		domain.ProviderGroq:   llm.NewGroq(),
		domain.ProviderOpenAI: llm.NewOpenAI(),
		domain.ProviderGoogle: llm.NewGemini(),
	}, hasher.New(), cfg.ChatTimeout)

	synthesizer, closeSynth, err := newSynthesizer(cfg)
	if err != nil {
		log.With().Fatal("Failed to create speech synthesizer", zap.Error(err))
	}
	defer closeSynth()
	speechService := usecase.NewSpeechService(synthesizer)

	wsServer := websocket.NewServer(chatService, speechService)
	wsServer.RunWebsocketHub()

	e := httpadapter.NewServer(cfg, httpadapter.NewHandler(chatService, speechService, wsServer.GetHub()))
	e.GET("/ws", wsServer.Handler)

	go func() {
		log.With().Info("Starting server",
			zap.String("port", cfg.Port),
			zap.String("tts_engine", cfg.TTSEngine))
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.With().Fatal("Shutting down the server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.With().Info("Server is shutting down...")
	wsServer.GetHub().Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.With().Error("Server forced to shutdown", zap.Error(err))
	}
}

func newSynthesizer(cfg config.Config) (domain.Synthesizer, func(), error) {
	if cfg.TTSEngine == config.TTSEngineGoogle {
		g, err := tts.NewGoogleTTS(context.Background(), cfg.TTSLanguage)
		if err != nil {
			return nil, nil, err
		}
		return g, func() { g.Close() }, nil
	}
	return tts.NewTranslateTTS(cfg.TTSLanguage), func() {}, nil
}
