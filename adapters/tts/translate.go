package tts

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/satriahrh/sobesednik/domain"
	"github.com/satriahrh/sobesednik/utils/log"
)

const (
	translateBaseURL = "https://translate.google.com"
	translateClient  = "tw-ob"
	userAgent        = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"

	// The endpoint rejects longer inputs.
	maxChunkRunes  = 100
	requestTimeout = 30 * time.Second
)

// TranslateTTS synthesizes MP3 speech through the Google Translate TTS
// endpoint. It needs no credentials.
type TranslateTTS struct {
	baseURL    string
	language   string
	tempDir    string
	httpClient *http.Client
}

var _ domain.Synthesizer = (*TranslateTTS)(nil)

func NewTranslateTTS(language string) *TranslateTTS {
	return &TranslateTTS{
		baseURL:    translateBaseURL,
		language:   language,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// Synthesize fetches every chunk of text in order and stages the MP3 frames in
// a temp file, which is removed before returning.
func (t *TranslateTTS) Synthesize(ctx context.Context, text string) ([]byte, error) {
	chunks := splitText(text, maxChunkRunes)
	if len(chunks) == 0 {
		return nil, errors.New("no text to synthesize")
	}

	staging, err := os.CreateTemp(t.tempDir, "speech-*.mp3")
	if err != nil {
		return nil, fmt.Errorf("creating staging file: %w", err)
	}
	defer func() {
		staging.Close()
		if err := os.Remove(staging.Name()); err != nil {
			log.WithCtx(ctx).Warn("Failed to remove staging file", zap.String("path", staging.Name()), zap.Error(err))
		}
	}()

	for i, chunk := range chunks {
		if err := t.fetchChunk(ctx, staging, chunk, i, len(chunks)); err != nil {
			return nil, fmt.Errorf("synthesizing chunk %d/%d: %w", i+1, len(chunks), err)
		}
	}

	if _, err := staging.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewinding staging file: %w", err)
	}
	audio, err := io.ReadAll(staging)
	if err != nil {
		return nil, fmt.Errorf("reading staging file: %w", err)
	}

	log.WithCtx(ctx).Debug("Synthesized speech",
		zap.Int("chunks", len(chunks)),
		zap.Int("bytes", len(audio)))

	return audio, nil
}

func (t *TranslateTTS) fetchChunk(ctx context.Context, w io.Writer, chunk string, idx, total int) error {
	query := url.Values{}
	query.Set("ie", "UTF-8")
	query.Set("client", translateClient)
	query.Set("tl", t.language)
	query.Set("ttsspeed", "1")
	query.Set("q", chunk)
	query.Set("total", strconv.Itoa(total))
	query.Set("idx", strconv.Itoa(idx))
	query.Set("textlen", strconv.Itoa(utf8.RuneCountInString(chunk)))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, t.baseURL+"/translate_tts?"+query.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to create HTTP request: %w", err)
	}
	httpReq.Header.Set("User-Agent", userAgent)
	httpReq.Header.Set("Accept", "audio/mpeg")

	resp, err := t.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to execute HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		errorBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("TTS endpoint returned %d: %s", resp.StatusCode, strings.TrimSpace(string(errorBody)))
	}

	if _, err := io.Copy(w, resp.Body); err != nil {
		return fmt.Errorf("reading audio: %w", err)
	}
	return nil
}

// splitText breaks text into pieces of at most limit runes, cutting on spaces
// and splitting single overlong words.
func splitText(text string, limit int) []string {
	var chunks []string
	var current []string
	currentLen := 0

	flush := func() {
		if len(current) > 0 {
			chunks = append(chunks, strings.Join(current, " "))
			current = current[:0]
			currentLen = 0
		}
	}

	for _, word := range strings.Fields(text) {
		for utf8.RuneCountInString(word) > limit {
			flush()
			runes := []rune(word)
			chunks = append(chunks, string(runes[:limit]))
			word = string(runes[limit:])
		}

		wordLen := utf8.RuneCountInString(word)
		if wordLen == 0 {
			continue
		}
		if currentLen > 0 && currentLen+1+wordLen > limit {
			flush()
		}
		if currentLen > 0 {
			currentLen++
		}
		current = append(current, word)
		currentLen += wordLen
	}
	flush()

	return chunks
}
