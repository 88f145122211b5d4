package resolve

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/sandevgo/mordomo/internal/core"
	"github.com/sandevgo/mordomo/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOrchestrator struct {
	calls   int
	history []core.Turn
	reply   string
}

func (f *fakeOrchestrator) Resolve(ctx context.Context, utterance string, history []core.Turn) string {
	f.calls++
	f.history = history
	return f.reply
}

func newTestEngine(orch Orchestrator) (*Engine, *session.Store) {
	store := session.NewStore(30*time.Minute, 20)
	engine := NewEngine(
		store,
		NewShortcutMatcher(DefaultShortcuts),
		NewCannedMatcher(DefaultCanned),
		orch,
	)
	return engine, store
}

func TestEngine_ShortcutShortCircuits(t *testing.T) {
	orch := &fakeOrchestrator{reply: "não deveria chegar aqui"}
	engine, store := newTestEngine(orch)

	result := engine.Resolve(context.Background(), "s1", "abrir github")

	require.Equal(t, core.KindAction, result.Kind)
	assert.Zero(t, orch.calls, "the model tier must not run on a shortcut hit")

	var action core.Action
	require.NoError(t, json.Unmarshal([]byte(result.Text), &action))
	assert.Equal(t, "openLink", action.Action)
	assert.Equal(t, "GitHub", action.App)

	// Both turns recorded, assistant side holds the serialized payload.
	turns := store.History("s1")
	require.Len(t, turns, 2)
	assert.Equal(t, core.RoleUser, turns[0].Role)
	assert.Equal(t, result.Text, turns[1].Content)
}

func TestEngine_CannedBeforeModel(t *testing.T) {
	orch := &fakeOrchestrator{reply: "não deveria chegar aqui"}
	engine, _ := newTestEngine(orch)

	result := engine.Resolve(context.Background(), "s1", "status do sistema?")

	require.Equal(t, core.KindMessage, result.Kind)
	assert.Zero(t, orch.calls)
	assert.Contains(t, result.Text, "Sistemas online")
}

func TestEngine_FallsThroughToOrchestrator(t *testing.T) {
	orch := &fakeOrchestrator{reply: "Às ordens, Senhor."}
	engine, store := newTestEngine(orch)

	result := engine.Resolve(context.Background(), "s1", "me conte uma novidade")

	require.Equal(t, core.KindMessage, result.Kind)
	assert.Equal(t, 1, orch.calls)
	assert.Equal(t, "Às ordens, Senhor.", result.Text)
	assert.Equal(t, "s1", result.SessionID)
	assert.Len(t, store.History("s1"), 2)
}

func TestEngine_OrchestratorSeesPriorHistory(t *testing.T) {
	orch := &fakeOrchestrator{reply: "ok"}
	engine, _ := newTestEngine(orch)

	engine.Resolve(context.Background(), "s1", "primeira pergunta")
	engine.Resolve(context.Background(), "s1", "segunda pergunta")

	// The second turn must see the first exchange, not its own.
	require.Len(t, orch.history, 2)
	assert.Equal(t, "primeira pergunta", orch.history[0].Content)
}

func TestEngine_SessionsAreIndependent(t *testing.T) {
	orch := &fakeOrchestrator{reply: "ok"}
	engine, store := newTestEngine(orch)

	engine.Resolve(context.Background(), "a", "olá")
	engine.Resolve(context.Background(), "b", "oi")

	assert.Len(t, store.History("a"), 2)
	assert.Len(t, store.History("b"), 2)
}
