package postgres

import (
	"context"
	"fmt"

	"zkwage-settlement/internal/core/domain"
)

// EventRepo implements ports.EventRepository over the append-only
// settlement_events table.
type EventRepo struct {
	pool Pool
}

// NewEventRepo creates a new EventRepo.
func NewEventRepo(pool Pool) *EventRepo {
	return &EventRepo{pool: pool}
}

// Append inserts a settlement event.
func (r *EventRepo) Append(ctx context.Context, ev *domain.SettlementEvent) error {
	query := `INSERT INTO settlement_events (id, event_type, payload, created_at)
		VALUES ($1, $2, $3, $4)`

	_, err := r.pool.Exec(ctx, query, ev.ID, ev.Type, ev.Payload, ev.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert settlement event: %w", err)
	}
	return nil
}

// ListRecent returns up to limit events, newest first.
func (r *EventRepo) ListRecent(ctx context.Context, limit int) ([]domain.SettlementEvent, error) {
	query := `SELECT id, event_type, payload, created_at
		FROM settlement_events ORDER BY created_at DESC LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list settlement events: %w", err)
	}
	defer rows.Close()

	var events []domain.SettlementEvent
	for rows.Next() {
		var ev domain.SettlementEvent
		if err := rows.Scan(&ev.ID, &ev.Type, &ev.Payload, &ev.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan settlement event: %w", err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate settlement events: %w", err)
	}
	return events, nil
}
