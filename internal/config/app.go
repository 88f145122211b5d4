package config

import (
	"context"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/mordomo/pkg/log"
)

type AppConfig struct {
	// Session lifecycle
	SessionTTL    time.Duration `env:"SESSION_TTL" envDefault:"30m"`
	SweepInterval time.Duration `env:"SESSION_SWEEP_INTERVAL" envDefault:"5m"`
	// Turn cap per session; the buffer holds twice this to fit
	// user+assistant pairs.
	SessionTurnCap int `env:"SESSION_TURN_CAP" envDefault:"20"`

	// Prompt controls
	HistoryKeyword   string `env:"USE_HISTORY_KEYWORD" envDefault:"RECORDE"`
	PromptTokenLimit int    `env:"PROMPT_TOKEN_LIMIT" envDefault:"3000"`

	// The user base is geographically fixed; never use the host zone.
	Timezone    string `env:"ASSISTANT_TIMEZONE" envDefault:"America/Sao_Paulo"`
	DefaultCity string `env:"DEFAULT_CITY" envDefault:"Brasília"`

	DatabasePath string `env:"DB_PATH" envDefault:"./data/mordomo.db"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	return c
}
