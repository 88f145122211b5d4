package assistant

import (
	"context"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/sandevgo/mordomo/internal/core"
	"github.com/sandevgo/mordomo/internal/providers/weather"
	"github.com/sandevgo/mordomo/pkg/log"
)

// Weather lines fed to the system directive.
const (
	weatherNone        = "Sem dados de clima."
	weatherUnavailable = "Não consegui acessar os satélites de clima no momento."
)

var (
	weatherTriggerRe = regexp.MustCompile(`\b(clima|tempo|temperatura)\b`)
	cityRe           = regexp.MustCompile(`(?i)\bem\s+([a-zA-ZÀ-ú][a-zA-ZÀ-ú\s]*)`)
)

// ContextBlock carries the realtime data rendered into the system
// directive for one turn.
type ContextBlock struct {
	Clock   string
	Weather string
}

type ContextBuilder struct {
	provider    core.WeatherProvider
	dates       *DateFormatter
	defaultCity string
	timeout     time.Duration
}

func NewContextBuilder(provider core.WeatherProvider, dates *DateFormatter, defaultCity string, timeout time.Duration) *ContextBuilder {
	return &ContextBuilder{
		provider:    provider,
		dates:       dates,
		defaultCity: defaultCity,
		timeout:     timeout,
	}
}

// Build assembles the context block. The weather lookup runs only when
// the utterance matches the weather-intent trigger; it is never
// speculative, and any failure degrades to a fixed sentence instead of
// propagating.
func (b *ContextBuilder) Build(ctx context.Context, now time.Time, utterance string) ContextBlock {
	return ContextBlock{
		Clock:   b.dates.Clock(now),
		Weather: b.weatherLine(ctx, utterance),
	}
}

func (b *ContextBuilder) weatherLine(ctx context.Context, utterance string) string {
	lower := strings.ToLower(utterance)
	if !weatherTriggerRe.MatchString(lower) {
		return weatherNone
	}

	city := b.defaultCity
	if m := cityRe.FindStringSubmatch(utterance); m != nil {
		city = strings.TrimSpace(m[1])
	}

	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	w, err := b.provider.Lookup(ctx, city)
	if err != nil {
		if errors.Is(err, weather.ErrNotConfigured) {
			return weatherNone
		}
		log.FromCtx(ctx).Warn().Err(err).Str("city", city).Msg("weather lookup failed")
		return weatherUnavailable
	}

	return fmt.Sprintf("CLIMA EM %s: %d°C, %s. Umidade: %d%%",
		w.PlaceName, int(math.Round(w.TemperatureC)), w.Condition, w.HumidityPct)
}
