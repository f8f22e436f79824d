package config

import (
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{"PORT", "DEBUG", "TTS_ENGINE", "TTS_LANGUAGE", "CHAT_TIMEOUT", "RATE_LIMIT", "BODY_LIMIT", "ALLOW_ORIGINS"} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Port != "5000" {
		t.Errorf("expected port 5000, got %s", cfg.Port)
	}
	if cfg.TTSEngine != TTSEngineTranslate || cfg.TTSLanguage != "ru" {
		t.Errorf("unexpected TTS settings %s/%s", cfg.TTSEngine, cfg.TTSLanguage)
	}
	if cfg.ChatTimeout != 30*time.Second {
		t.Errorf("expected 30s chat timeout, got %v", cfg.ChatTimeout)
	}
	if len(cfg.AllowOrigins) != 1 || cfg.AllowOrigins[0] != "*" {
		t.Errorf("unexpected origins %v", cfg.AllowOrigins)
	}
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("DEBUG", "true")
	t.Setenv("TTS_ENGINE", "Google")
	t.Setenv("CHAT_TIMEOUT", "5s")
	t.Setenv("RATE_LIMIT", "2.5")
	t.Setenv("ALLOW_ORIGINS", "https://a.example, https://b.example,")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Port != "8080" || !cfg.Debug || cfg.TTSEngine != TTSEngineGoogle {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.ChatTimeout != 5*time.Second || cfg.RateLimit != 2.5 {
		t.Errorf("unexpected limits %v %v", cfg.ChatTimeout, cfg.RateLimit)
	}
	if len(cfg.AllowOrigins) != 2 || cfg.AllowOrigins[1] != "https://b.example" {
		t.Errorf("unexpected origins %v", cfg.AllowOrigins)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"TTS_ENGINE", "espeak"},
		{"CHAT_TIMEOUT", "soon"},
		{"RATE_LIMIT", "-1"},
		{"RATE_LIMIT", "0.5"},
		{"BODY_LIMIT", "10XB"},
		{"BODY_LIMIT", "lots"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)
			if _, err := Load(); err == nil {
				t.Errorf("expected error for %s=%s", tt.key, tt.value)
			}
		})
	}
}

func TestValidate_BodyLimitUnits(t *testing.T) {
	for _, limit := range []string{"10MB", "512K", "1G", "2048"} {
		cfg := Config{
			Port:         "5000",
			TTSEngine:    TTSEngineTranslate,
			ChatTimeout:  time.Second,
			RateLimit:    1,
			BodyLimit:    limit,
			AllowOrigins: []string{"*"},
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("BODY_LIMIT %s rejected: %v", limit, err)
		}
	}
}
