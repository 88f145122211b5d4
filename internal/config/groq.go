package config

import (
	"context"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/mordomo/pkg/log"
)

type GroqConfig struct {
	APIKey      string        `env:"GROQ_API_KEY,required,notEmpty"`
	BaseURL     string        `env:"GROQ_BASE_URL" envDefault:"https://api.groq.com/openai/v1"`
	Model       string        `env:"GROQ_MODEL" envDefault:"llama-3.3-70b-versatile"`
	STTModel    string        `env:"GROQ_STT_MODEL" envDefault:"whisper-large-v3"`
	Temperature float64       `env:"GROQ_TEMPERATURE" envDefault:"0.4"`
	Timeout     time.Duration `env:"GROQ_TIMEOUT" envDefault:"15s"`
}

func NewGroqConfig(ctx context.Context) *GroqConfig {
	c := &GroqConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Groq config")
	}
	return c
}
