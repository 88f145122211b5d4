package main

import (
	"context"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sandevgo/mordomo/internal/config"
	"github.com/sandevgo/mordomo/internal/providers/llm"
	"github.com/sandevgo/mordomo/internal/providers/voice"
	"github.com/sandevgo/mordomo/internal/providers/weather"
	"github.com/sandevgo/mordomo/internal/service/assistant"
	"github.com/sandevgo/mordomo/internal/service/resolve"
	"github.com/sandevgo/mordomo/internal/session"
	"github.com/sandevgo/mordomo/internal/storage/sqlite"
	"github.com/sandevgo/mordomo/internal/transport/httpapi"
	"github.com/sandevgo/mordomo/pkg/log"
	"github.com/sandevgo/mordomo/pkg/srv"
)

func NewServices(ctx context.Context) []srv.Service {
	logger := log.FromCtx(ctx)
	services := make([]srv.Service, 0)

	initEnv(ctx)

	// 1. Configuration
	appCfg := config.NewAppConfig(ctx)
	groqCfg := config.NewGroqConfig(ctx)
	weatherCfg := config.NewWeatherConfig(ctx)
	httpCfg := config.NewHTTPConfig(ctx)

	loc, err := time.LoadLocation(appCfg.Timezone)
	if err != nil {
		logger.Fatal().Err(err).Str("timezone", appCfg.Timezone).Msg("failed to load timezone")
	}

	// 2. Storage (long-term memory gateway)
	db, err := sqlite.NewDB(ctx, appCfg.DatabasePath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize storage")
	}
	services = append(services, srv.NewCleanup(db.Close))

	historyRepo := sqlite.NewHistoryRepo(db)
	appointmentsRepo := sqlite.NewAppointmentsRepo(db)

	// 3. Providers
	aiProvider := llm.NewProvider(ctx, groqCfg)
	weatherProvider := weather.NewOpenWeather(weatherCfg)
	synthesizer := voice.NewGoogleTTS()
	transcriber := voice.NewWhisper(groqCfg)

	// 4. Session store + sweeper
	sessions := session.NewStore(appCfg.SessionTTL, appCfg.SessionTurnCap)
	services = append(services, session.NewSweeper(sessions, appCfg.SweepInterval))

	// 5. Resolution engine
	dates := assistant.NewDateFormatter(loc)
	ctxBuilder := assistant.NewContextBuilder(weatherProvider, dates, appCfg.DefaultCity, weatherCfg.Timeout)
	orchestrator := assistant.NewOrchestrator(ctx, appCfg, aiProvider, historyRepo, appointmentsRepo, ctxBuilder, dates)

	engine := resolve.NewEngine(
		sessions,
		resolve.NewShortcutMatcher(resolve.DefaultShortcuts),
		resolve.NewCannedMatcher(resolve.DefaultCanned),
		orchestrator,
	)

	// 6. Transport
	handler := httpapi.NewHandler(engine, synthesizer, transcriber, weatherProvider, historyRepo, appCfg.DefaultCity)
	services = append(services, httpapi.NewServer(ctx, httpCfg, handler))

	return services
}

func initEnv(ctx context.Context) {
	if _, err := os.Stat(".env"); err != nil {
		return
	}
	if err := godotenv.Load(".env"); err != nil {
		log.FromCtx(ctx).Warn().Err(err).Msg("failed to load .env file")
		return
	}
	log.FromCtx(ctx).Debug().Msg("loaded .env file")
}
