package service

import (
	"context"
	"encoding/json"
	"time"

	"zkwage-settlement/internal/core/domain"
	"zkwage-settlement/internal/core/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// EventService implements ports.EventPublisher. Every state transition is
// logged and, when a repository is configured, persisted for downstream
// indexers. Publishing is fire-and-forget: failures are logged, never
// surfaced to the state machine that emitted the event.
type EventService struct {
	repo ports.EventRepository
	log  zerolog.Logger
}

// NewEventService creates a new event publisher.
// If repo is nil, events are only written to the logger.
func NewEventService(repo ports.EventRepository, log zerolog.Logger) *EventService {
	return &EventService{repo: repo, log: log}
}

// Publish records a structured state-transition event.
func (s *EventService) Publish(ctx context.Context, typ domain.EventType, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		s.log.Warn().Err(err).Str("event_type", string(typ)).Msg("failed to marshal event payload")
		return
	}

	s.log.Info().
		Str("event_type", string(typ)).
		RawJSON("payload", data).
		Msg("settlement event")

	if s.repo == nil {
		return
	}

	ev := &domain.SettlementEvent{
		ID:        uuid.New(),
		Type:      typ,
		Payload:   data,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Append(context.WithoutCancel(ctx), ev); err != nil {
		s.log.Warn().Err(err).Str("event_type", string(typ)).Msg("failed to persist settlement event")
	}
}

var _ ports.EventPublisher = (*EventService)(nil)
