package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/gommon/bytes"
	"github.com/subosito/gotenv"
)

const (
	TTSEngineTranslate = "translate"
	TTSEngineGoogle    = "google"
)

type Config struct {
	Port         string
	Debug        bool
	TTSEngine    string
	TTSLanguage  string
	ChatTimeout  time.Duration
	RateLimit    float64
	BodyLimit    string
	AllowOrigins []string
}

// Load reads .env when present and then the process environment.
func Load() (Config, error) {
	gotenv.Load()

	cfg := Config{
		Port:         getEnv("PORT", "5000"),
		Debug:        os.Getenv("DEBUG") == "true",
		TTSEngine:    strings.ToLower(getEnv("TTS_ENGINE", TTSEngineTranslate)),
		TTSLanguage:  getEnv("TTS_LANGUAGE", "ru"),
		ChatTimeout:  30 * time.Second,
		RateLimit:    20,
		BodyLimit:    getEnv("BODY_LIMIT", "10MB"),
		AllowOrigins: []string{"*"},
	}

	if v := os.Getenv("CHAT_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("parsing CHAT_TIMEOUT: %w", err)
		}
		cfg.ChatTimeout = d
	}

	if v := os.Getenv("RATE_LIMIT"); v != "" {
		limit, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Config{}, fmt.Errorf("parsing RATE_LIMIT: %w", err)
		}
		cfg.RateLimit = limit
	}

	if v := os.Getenv("ALLOW_ORIGINS"); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		cfg.AllowOrigins = origins
	}

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("port is required")
	}
	if c.TTSEngine != TTSEngineTranslate && c.TTSEngine != TTSEngineGoogle {
		return fmt.Errorf("unknown TTS engine %q", c.TTSEngine)
	}
	if c.ChatTimeout <= 0 {
		return fmt.Errorf("chat timeout must be positive, got %v", c.ChatTimeout)
	}
	// A limiter burst below one request rejects everything.
	if c.RateLimit < 1 {
		return fmt.Errorf("rate limit must be at least 1 request per second, got %v", c.RateLimit)
	}
	if _, err := bytes.Parse(c.BodyLimit); err != nil {
		return fmt.Errorf("parsing BODY_LIMIT %q: %w", c.BodyLimit, err)
	}
	if len(c.AllowOrigins) == 0 {
		return fmt.Errorf("at least one allowed origin is required")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
