package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/satriahrh/sobesednik/domain"
	"github.com/satriahrh/sobesednik/usecase"
	"github.com/satriahrh/sobesednik/utils/log"
)

// ClientCounter reports live WebSocket connections for the health check.
type ClientCounter interface {
	ClientCount() int
}

type Handler struct {
	chatService   *usecase.ChatService
	speechService *usecase.SpeechService
	clients       ClientCounter
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Success bool   `json:"success"`
}

// InfoResponse is the portfolio card served at /info.json.
type InfoResponse struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Link        string   `json:"link"`
	Date        string   `json:"date"`
	Tags        []string `json:"tags"`
}

var info = InfoResponse{
	Title:       "🎙️ Свободный Чат",
	Description: "AI собеседник с голосовым управлением и анимированным аватаром. Поддержка Groq, Google Gemini, OpenAI. 7 личностей включая Учителя. Голосовой ввод/вывод на русском языке.",
	Image:       "https://sobesednik.onrender.com/static/preview.jpg",
	Link:        "https://sobesednik.onrender.com",
	Date:        "2026-01-10",
	Tags:        []string{"AI", "Голос", "Go", "Echo"},
}

func NewHandler(chatService *usecase.ChatService, speechService *usecase.SpeechService, clients ClientCounter) *Handler {
	return &Handler{
		chatService:   chatService,
		speechService: speechService,
		clients:       clients,
	}
}

// Register mounts the routes on e.
func (h *Handler) Register(e *echo.Echo) {
	e.GET("/info.json", h.Info)

	api := e.Group("/api")
	api.GET("/health", h.HealthCheck)
	api.POST("/chat", h.Chat)
	api.POST("/tts", h.TextToSpeech)
}

// Chat relays one message to the selected provider.
func (h *Handler) Chat(c echo.Context) error {
	var req domain.ChatRequest
	if err := c.Bind(&req); err != nil {
		return h.bindError(c, err)
	}

	ctx := c.Request().Context()
	reply, err := h.chatService.Dispatch(ctx, req)
	return c.JSON(statusFor(err), domain.NewChatResult(reply, err))
}

// TextToSpeech returns base64 MP3 for the sanitized text.
func (h *Handler) TextToSpeech(c echo.Context) error {
	var req domain.SpeechRequest
	if err := c.Bind(&req); err != nil {
		return h.bindError(c, err)
	}

	ctx := c.Request().Context()
	audio, err := h.speechService.Speak(ctx, req.Text)
	return c.JSON(statusFor(err), domain.NewSpeechResult(audio, err))
}

func (h *Handler) HealthCheck(c echo.Context) error {
	clients := 0
	if h.clients != nil {
		clients = h.clients.ClientCount()
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":     "healthy",
		"timestamp":  time.Now().UTC(),
		"service":    "sobesednik",
		"ws_clients": clients,
	})
}

func (h *Handler) Info(c echo.Context) error {
	return c.JSON(http.StatusOK, info)
}

func (h *Handler) bindError(c echo.Context, err error) error {
	message := err.Error()
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if m, ok := httpErr.Message.(string); ok {
			message = m
		}
	}
	log.WithCtx(c.Request().Context()).Warn("Rejected request body", zap.Error(err))
	return c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

func statusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case domain.IsInputError(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
