package core

import (
	"context"
	"time"
)

// HistoryRepository is the long-term memory gateway. It is independent of
// the short-lived session store.
type HistoryRepository interface {
	// AppendExchange persists a user utterance and the final assistant
	// answer in one transaction: either both rows land or neither does.
	AppendExchange(ctx context.Context, userContent, assistantContent string) error
	GetHistory(ctx context.Context, limit int) ([]Message, error)
}

type AppointmentsRepository interface {
	CreateAppointment(ctx context.Context, title, details string, eventTime *time.Time, category string) (Appointment, error)
	ListOpenAppointments(ctx context.Context) ([]Appointment, error)
}
