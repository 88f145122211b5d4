package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sandevgo/mordomo/internal/core"
)

type AppointmentsRepo struct {
	db *sql.DB
}

func NewAppointmentsRepo(db *sql.DB) *AppointmentsRepo {
	return &AppointmentsRepo{db: db}
}

func (r *AppointmentsRepo) CreateAppointment(ctx context.Context, title, details string, eventTime *time.Time, category string) (core.Appointment, error) {
	var eventStr sql.NullString
	if eventTime != nil {
		eventStr = sql.NullString{String: eventTime.UTC().Format(time.RFC3339), Valid: true}
	}

	query := `INSERT INTO appointments (title, details, event_time, category) VALUES (?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, title, details, eventStr, category)
	if err != nil {
		return core.Appointment{}, fmt.Errorf("failed to insert appointment: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return core.Appointment{}, err
	}

	return core.Appointment{
		ID:        id,
		Title:     title,
		Details:   details,
		EventTime: eventTime,
		Category:  category,
		CreatedAt: time.Now(),
	}, nil
}

func (r *AppointmentsRepo) ListOpenAppointments(ctx context.Context) ([]core.Appointment, error) {
	query := `SELECT id, title, details, event_time, category, created_at
		FROM appointments WHERE done = 0 ORDER BY created_at DESC LIMIT 50`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query appointments: %w", err)
	}
	defer rows.Close()

	var items []core.Appointment
	for rows.Next() {
		var a core.Appointment
		var eventStr sql.NullString

		if err := rows.Scan(&a.ID, &a.Title, &a.Details, &eventStr, &a.Category, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan appointment: %w", err)
		}

		if eventStr.Valid && eventStr.String != "" {
			if t, err := time.Parse(time.RFC3339, eventStr.String); err == nil {
				a.EventTime = &t
			}
		}
		items = append(items, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
