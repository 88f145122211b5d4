// Package voice holds the speech providers. The text-resolution path
// never blocks on them; the transport layer calls them after the answer
// is resolved.
package voice

import (
	"bytes"
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sandevgo/mordomo/internal/config"
)

// Whisper transcribes audio through Groq's OpenAI-compatible audio
// endpoint.
type Whisper struct {
	client *openai.Client
	model  string
}

func NewWhisper(cfg *config.GroqConfig) *Whisper {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	clientCfg.BaseURL = cfg.BaseURL

	return &Whisper{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.STTModel,
	}
}

func (w *Whisper) Transcribe(ctx context.Context, audio []byte, filename string) (string, error) {
	resp, err := w.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    w.model,
		Reader:   bytes.NewReader(audio),
		FilePath: filename,
		Language: "pt",
	})
	if err != nil {
		return "", fmt.Errorf("transcription: %w", err)
	}
	return resp.Text, nil
}
