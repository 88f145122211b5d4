// Package resolve decides how each utterance is answered: a zero-network
// shortcut action, a canned response, or a full model call. Tiers run in
// that order and short-circuit on the first hit.
package resolve

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sandevgo/mordomo/internal/core"
	"github.com/sandevgo/mordomo/internal/session"
	"github.com/sandevgo/mordomo/pkg/log"
)

// Orchestrator is the model-backed tier. It never fails outward: every
// internal error resolves to in-character fallback text.
type Orchestrator interface {
	Resolve(ctx context.Context, utterance string, history []core.Turn) string
}

type Engine struct {
	sessions  *session.Store
	shortcuts *ShortcutMatcher
	canned    *CannedMatcher
	orch      Orchestrator
}

func NewEngine(sessions *session.Store, shortcuts *ShortcutMatcher, canned *CannedMatcher, orch Orchestrator) *Engine {
	return &Engine{
		sessions:  sessions,
		shortcuts: shortcuts,
		canned:    canned,
		orch:      orch,
	}
}

// Resolve runs one turn. The session lock is held for the whole
// read-modify-append cycle; turns on other session ids interleave freely.
func (e *Engine) Resolve(ctx context.Context, sessionID, utterance string) core.Result {
	release := e.sessions.Lock(sessionID)
	defer release()

	logger := log.FromCtx(ctx)
	now := time.Now()

	if action, ok := e.shortcuts.Match(utterance); ok {
		payload, err := json.Marshal(action)
		if err != nil {
			// Action structs are static; this cannot realistically fail.
			logger.Error().Err(err).Msg("failed to marshal shortcut action")
			return core.Result{Kind: core.KindMessage, Text: fallbackText, SessionID: sessionID}
		}

		logger.Info().Str("app", action.App).Msg("shortcut matched")
		e.appendTurn(sessionID, now, utterance, string(payload))
		return core.Result{Kind: core.KindAction, Text: string(payload), SessionID: sessionID}
	}

	if text, ok := e.canned.Match(utterance); ok {
		logger.Debug().Msg("canned response matched")
		e.appendTurn(sessionID, now, utterance, text)
		return core.Result{Kind: core.KindMessage, Text: text, SessionID: sessionID}
	}

	text := e.orch.Resolve(ctx, utterance, e.sessions.History(sessionID))
	e.appendTurn(sessionID, now, utterance, text)
	return core.Result{Kind: core.KindMessage, Text: text, SessionID: sessionID}
}

func (e *Engine) appendTurn(sessionID string, now time.Time, userText, assistantText string) {
	e.sessions.Append(sessionID,
		core.Turn{Role: core.RoleUser, Content: userText, CreatedAt: now},
		core.Turn{Role: core.RoleAssistant, Content: assistantText, CreatedAt: now},
	)
}

const fallbackText = "Perdoe-me, Senhor. Detectei uma instabilidade temporária nos meus sistemas. Já estou corrigindo."
