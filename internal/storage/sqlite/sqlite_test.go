package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/sandevgo/mordomo/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *testDB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "mordomo_test.db")
	db, err := NewDB(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return &testDB{
		history:      NewHistoryRepo(db),
		appointments: NewAppointmentsRepo(db),
	}
}

type testDB struct {
	history      *HistoryRepo
	appointments *AppointmentsRepo
}

func TestHistoryRepo_AppendAndGet(t *testing.T) {
	ctx := context.Background()
	tdb := newTestDB(t)

	require.NoError(t, tdb.history.AppendExchange(ctx, "bom dia", "Bom dia, Senhor."))
	require.NoError(t, tdb.history.AppendExchange(ctx, "qual o clima?", "Céu limpo."))

	msgs, err := tdb.history.GetHistory(ctx, 50)
	require.NoError(t, err)
	require.Len(t, msgs, 4)

	// Chronological order, role pairs intact.
	assert.Equal(t, core.RoleUser, msgs[0].Role)
	assert.Equal(t, "bom dia", msgs[0].Content)
	assert.Equal(t, core.RoleAssistant, msgs[1].Role)
	assert.Equal(t, "Céu limpo.", msgs[3].Content)
}

func TestHistoryRepo_GetHistoryLimitKeepsNewest(t *testing.T) {
	ctx := context.Background()
	tdb := newTestDB(t)

	require.NoError(t, tdb.history.AppendExchange(ctx, "primeira", "r1"))
	require.NoError(t, tdb.history.AppendExchange(ctx, "segunda", "r2"))
	require.NoError(t, tdb.history.AppendExchange(ctx, "terceira", "r3"))

	msgs, err := tdb.history.GetHistory(ctx, 2)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "terceira", msgs[0].Content)
	assert.Equal(t, "r3", msgs[1].Content)
}

func TestHistoryRepo_EmptyHistory(t *testing.T) {
	tdb := newTestDB(t)

	msgs, err := tdb.history.GetHistory(context.Background(), 50)
	require.NoError(t, err)
	assert.Empty(t, msgs)
}

func TestAppointmentsRepo_CreateAndList(t *testing.T) {
	ctx := context.Background()
	tdb := newTestDB(t)

	event := time.Date(2025, time.June, 3, 9, 0, 0, 0, time.UTC)
	created, err := tdb.appointments.CreateAppointment(ctx, "Dentista", "limpeza", &event, core.CategoryCompromisso)
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	items, err := tdb.appointments.ListOpenAppointments(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)

	got := items[0]
	assert.Equal(t, "Dentista", got.Title)
	assert.Equal(t, "limpeza", got.Details)
	assert.Equal(t, core.CategoryCompromisso, got.Category)
	require.NotNil(t, got.EventTime)
	assert.True(t, got.EventTime.Equal(event))
}

func TestAppointmentsRepo_NullEventTimeRoundTrips(t *testing.T) {
	ctx := context.Background()
	tdb := newTestDB(t)

	_, err := tdb.appointments.CreateAppointment(ctx, "Comprar café", "grão torrado", nil, core.CategoryNota)
	require.NoError(t, err)

	items, err := tdb.appointments.ListOpenAppointments(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Nil(t, items[0].EventTime)
}

func TestAppointmentsRepo_ListSkipsDone(t *testing.T) {
	ctx := context.Background()
	tdb := newTestDB(t)

	open, err := tdb.appointments.CreateAppointment(ctx, "aberto", "d", nil, core.CategoryLembrete)
	require.NoError(t, err)
	done, err := tdb.appointments.CreateAppointment(ctx, "concluído", "d", nil, core.CategoryLembrete)
	require.NoError(t, err)

	_, err = tdb.appointments.db.ExecContext(ctx, `UPDATE appointments SET done = 1 WHERE id = ?`, done.ID)
	require.NoError(t, err)

	items, err := tdb.appointments.ListOpenAppointments(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, open.ID, items[0].ID)
}
