package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/pkoukk/tiktoken-go"
	"github.com/sandevgo/mordomo/internal/config"
	"github.com/sandevgo/mordomo/internal/core"
	"github.com/sandevgo/mordomo/pkg/conv"
	"github.com/sandevgo/mordomo/pkg/log"
	"github.com/sandevgo/mordomo/pkg/retry"
)

const (
	// FallbackText replaces any model, tool or persistence failure. The
	// caller never sees a raw error.
	FallbackText = "Perdoe-me, Senhor. Detectei uma instabilidade temporária nos meus sistemas. Já estou corrigindo."

	idleText       = "Sistemas operacionais e aguardando suas ordens, Senhor."
	agendaEmpty    = "Senhor, sua agenda está completamente livre no momento."
	agendaIntro    = "Senhor, estes são os seus compromissos:"
	confirmCreated = "Com certeza, Senhor. O compromisso %q foi registrado para %s."
)

var errInvalidArgs = errors.New("invalid tool arguments")

// Orchestrator is the model-backed resolution tier: it assembles the
// prompt, issues the completion, executes at most one tool call per turn
// and persists the exchange to long-term memory.
type Orchestrator struct {
	cfg          *config.AppConfig
	ai           core.AIProvider
	history      core.HistoryRepository
	appointments core.AppointmentsRepository
	ctxb         *ContextBuilder
	dates        *DateFormatter
	retrier      *retry.Retrier
	encoder      *tiktoken.Tiktoken
}

func NewOrchestrator(
	ctx context.Context,
	cfg *config.AppConfig,
	ai core.AIProvider,
	history core.HistoryRepository,
	appointments core.AppointmentsRepository,
	ctxb *ContextBuilder,
	dates *DateFormatter,
) *Orchestrator {
	encoder, err := tiktoken.GetEncoding("cl100k_base")
	if err != nil {
		// Token budgeting falls back to a bytes heuristic.
		log.FromCtx(ctx).Warn().Err(err).Msg("failed to load token encoder")
	}

	return &Orchestrator{
		cfg:          cfg,
		ai:           ai,
		history:      history,
		appointments: appointments,
		ctxb:         ctxb,
		dates:        dates,
		retrier:      retry.NewDefaultRetrier(),
		encoder:      encoder,
	}
}

// Resolve runs one model-backed turn. It always returns user-facing text;
// every failure path resolves to FallbackText and a log entry. On total
// failure nothing is written to long-term memory, so an exchange is never
// half-persisted.
func (o *Orchestrator) Resolve(ctx context.Context, utterance string, sessionHistory []core.Turn) string {
	logger := log.FromCtx(ctx)
	now := time.Now().In(o.dates.Location())

	block := o.ctxb.Build(ctx, now, utterance)
	messages := []core.Message{{Role: core.RoleSystem, Content: SystemPrompt(block)}}

	// History gating: prior turns enter the prompt only when the
	// activation keyword is present.
	if strings.Contains(utterance, o.cfg.HistoryKeyword) {
		for _, t := range o.trimToBudget(sessionHistory) {
			messages = append(messages, core.Message{Role: t.Role, Content: t.Content})
		}
	}
	messages = append(messages, core.Message{Role: core.RoleUser, Content: utterance})

	var reply core.Message
	err := o.retrier.Do(ctx, func() error {
		var cerr error
		reply, cerr = o.ai.Chat(ctx, messages, appointmentTools)
		return cerr
	})
	if err != nil {
		logger.Error().Err(err).Msg("completion request failed")
		return FallbackText
	}

	var final string
	if len(reply.ToolCalls) > 0 {
		if len(reply.ToolCalls) > 1 {
			// Known simplification: only the first requested tool runs.
			logger.Warn().Int("ignored", len(reply.ToolCalls)-1).Msg("model requested multiple tools in one turn")
		}

		text, err := o.dispatchTool(ctx, reply.ToolCalls[0], now)
		switch {
		case err == nil:
			final = text
		case errors.Is(err, errInvalidArgs):
			// Skip the tool and fall through to the raw text, if any.
			logger.Warn().Err(err).Msg("tool call rejected")
		default:
			logger.Error().Err(err).Msg("tool execution failed")
			return FallbackText
		}
	}

	if final == "" {
		final = conv.Sanitize(reply.Content)
	}
	if final == "" {
		final = idleText
	}

	if err := o.history.AppendExchange(ctx, utterance, final); err != nil {
		// The turn still completes; only long-term memory is lost.
		logger.Error().Err(err).Msg("failed to persist exchange")
	}

	return final
}

func (o *Orchestrator) dispatchTool(ctx context.Context, call core.ToolCall, now time.Time) (string, error) {
	log.FromCtx(ctx).Info().Str("tool", call.Function.Name).Msg("executing tool")

	switch call.Function.Name {
	case core.ToolCreateAppointment:
		return o.createAppointment(ctx, call.Function.Arguments, now)
	case core.ToolListAppointments:
		return o.listAppointments(ctx, now)
	default:
		return "", fmt.Errorf("%w: unknown tool %q", errInvalidArgs, call.Function.Name)
	}
}

func (o *Orchestrator) createAppointment(ctx context.Context, rawArgs string, now time.Time) (string, error) {
	if rawArgs == "" {
		rawArgs = "{}"
	}

	var args createAppointmentArgs
	if err := json.Unmarshal([]byte(rawArgs), &args); err != nil {
		return "", fmt.Errorf("%w: %v", errInvalidArgs, err)
	}
	if args.Title == "" || args.Details == "" {
		return "", fmt.Errorf("%w: title and details are required", errInvalidArgs)
	}

	// An absent or unparseable timestamp means an unscheduled note, not a
	// rejected tool call.
	var eventTime *time.Time
	if args.EventTime != "" {
		if t, err := time.Parse(time.RFC3339, args.EventTime); err == nil {
			eventTime = &t
		}
	}

	category := args.Category
	if !core.ValidCategory(category) {
		category = core.CategoryCompromisso
	}

	appt, err := o.appointments.CreateAppointment(ctx, args.Title, args.Details, eventTime, category)
	if err != nil {
		return "", fmt.Errorf("create appointment: %w", err)
	}

	return fmt.Sprintf(confirmCreated, appt.Title, o.dates.Humanize(appt.EventTime, now)), nil
}

func (o *Orchestrator) listAppointments(ctx context.Context, now time.Time) (string, error) {
	items, err := o.appointments.ListOpenAppointments(ctx)
	if err != nil {
		return "", fmt.Errorf("list appointments: %w", err)
	}

	// Appointments without an event time are unscheduled notes; they are
	// excluded from the agenda, not shown with a placeholder.
	scheduled := make([]core.Appointment, 0, len(items))
	for _, a := range items {
		if a.EventTime != nil {
			scheduled = append(scheduled, a)
		}
	}
	if len(scheduled) == 0 {
		return agendaEmpty, nil
	}

	sort.Slice(scheduled, func(i, j int) bool {
		return scheduled[i].EventTime.Before(*scheduled[j].EventTime)
	})

	lines := make([]string, 0, len(scheduled))
	for _, a := range scheduled {
		lines = append(lines, fmt.Sprintf("%s — %s", o.dates.Humanize(a.EventTime, now), a.Title))
	}

	return agendaIntro + "\n\n" + strings.Join(lines, "\n"), nil
}

// trimToBudget drops the oldest turns until the gated history fits the
// prompt token budget.
func (o *Orchestrator) trimToBudget(turns []core.Turn) []core.Turn {
	budget := o.cfg.PromptTokenLimit
	if budget <= 0 || len(turns) == 0 {
		return turns
	}

	total := 0
	start := len(turns)
	for i := len(turns) - 1; i >= 0; i-- {
		total += o.countTokens(turns[i].Content)
		if total > budget {
			break
		}
		start = i
	}
	return turns[start:]
}

func (o *Orchestrator) countTokens(text string) int {
	if o.encoder == nil {
		return len(text) / 4
	}
	return len(o.encoder.Encode(text, nil, nil))
}
