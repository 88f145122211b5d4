package config

import (
	"context"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/mordomo/pkg/log"
)

// WeatherConfig has no required fields: a missing key degrades the weather
// tier to its neutral placeholder instead of crashing resolution.
type WeatherConfig struct {
	APIKey  string        `env:"OPENWEATHER_API_KEY"`
	BaseURL string        `env:"OPENWEATHER_BASE_URL" envDefault:"https://api.openweathermap.org/data/2.5/weather"`
	Timeout time.Duration `env:"OPENWEATHER_TIMEOUT" envDefault:"5s"`
}

func NewWeatherConfig(ctx context.Context) *WeatherConfig {
	c := &WeatherConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Weather config")
	}
	return c
}
