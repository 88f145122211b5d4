package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sandevgo/mordomo/internal/core"
	"github.com/sandevgo/mordomo/pkg/log"
)

type HistoryRepo struct {
	db *sql.DB
}

func NewHistoryRepo(db *sql.DB) *HistoryRepo {
	return &HistoryRepo{db: db}
}

// AppendExchange writes the user utterance and the assistant answer in a
// single transaction so a turn is never half-persisted.
func (h *HistoryRepo) AppendExchange(ctx context.Context, userContent, assistantContent string) error {
	tx, err := h.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO history (role, content) VALUES (?, ?)`
	if _, err := tx.ExecContext(ctx, query, core.RoleUser, userContent); err != nil {
		return fmt.Errorf("failed to insert user turn: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, core.RoleAssistant, assistantContent); err != nil {
		return fmt.Errorf("failed to insert assistant turn: %w", err)
	}

	return tx.Commit()
}

func (h *HistoryRepo) GetHistory(ctx context.Context, limit int) ([]core.Message, error) {
	// Fetch the LAST 'limit' rows by ordering DESC
	query := `SELECT role, content FROM history ORDER BY id DESC LIMIT ?`

	rows, err := h.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var messages []core.Message
	for rows.Next() {
		var msg core.Message
		if err := rows.Scan(&msg.Role, &msg.Content); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Reverse back to chronological order (oldest -> newest).
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}

	log.FromCtx(ctx).Debug().Int("count", len(messages)).Msg("loaded history rows")
	return messages, nil
}
