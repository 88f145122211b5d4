package voice

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	googleTTSURL = "https://translate.google.com/translate_tts"
	// The endpoint rejects long inputs; synthesis is best-effort anyway.
	maxTTSLength = 200
	// The endpoint blocks non-browser user agents.
	browserUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
)

// GoogleTTS synthesizes short pt-BR sentences into MP3 bytes.
type GoogleTTS struct {
	client *http.Client
}

func NewGoogleTTS() *GoogleTTS {
	return &GoogleTTS{
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// Synthesize returns nil bytes without error when the text is too long
// for the endpoint; callers treat missing audio as a soft degrade.
func (g *GoogleTTS) Synthesize(ctx context.Context, text string) ([]byte, error) {
	if text == "" || len([]rune(text)) > maxTTSLength {
		return nil, nil
	}

	params := url.Values{}
	params.Set("ie", "UTF-8")
	params.Set("tl", "pt-BR")
	params.Set("q", text)
	params.Set("client", "tw")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, googleTTSURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", browserUA)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("http %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
