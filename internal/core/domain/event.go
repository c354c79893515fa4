package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventType identifies a state transition exposed for downstream indexing.
type EventType string

const (
	EventClaimSettled        EventType = "CLAIM_SETTLED"
	EventClaimRejected       EventType = "CLAIM_REJECTED"
	EventLiquidityAdded      EventType = "LIQUIDITY_ADDED"
	EventLiquidityRemoved    EventType = "LIQUIDITY_REMOVED"
	EventFeesDistributed     EventType = "FEES_DISTRIBUTED"
	EventEmployerRegistered  EventType = "EMPLOYER_REGISTERED"
	EventEmployerWhitelisted EventType = "EMPLOYER_WHITELISTED"
	EventEmployerSlashed     EventType = "EMPLOYER_SLASHED"
	EventStakeChanged        EventType = "STAKE_CHANGED"
)

// SettlementEvent is a single structured state-transition record. The core
// persists no history beyond the nullifier ledger and current balances;
// these events are the feed for read-side indexers.
type SettlementEvent struct {
	ID        uuid.UUID `json:"id"`
	Type      EventType `json:"type"`
	Payload   []byte    `json:"payload"` // JSON
	CreatedAt time.Time `json:"created_at"`
}
