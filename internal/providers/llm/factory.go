package llm

import (
	"context"

	"github.com/sandevgo/mordomo/internal/config"
	"github.com/sandevgo/mordomo/internal/core"
	"github.com/sandevgo/mordomo/pkg/log"
)

// NewProvider creates the AIProvider based on configuration. Groq and
// OpenAI share the same wire protocol, so both map onto the Groq client
// with a different base URL.
func NewProvider(ctx context.Context, cfg *config.GroqConfig) core.AIProvider {
	log.FromCtx(ctx).Info().
		Str("base_url", cfg.BaseURL).
		Str("model", cfg.Model).
		Msg("starting llm provider")

	return NewGroq(cfg)
}
