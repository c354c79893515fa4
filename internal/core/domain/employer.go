package domain

import (
	"time"

	"github.com/google/uuid"
)

// Reputation score bounds. Scores live in [0, MaxReputationScore].
const (
	MaxReputationScore int64 = 1000
)

// EmployerAccount is the trust anchor behind every wage claim. A zeroed,
// un-whitelisted account is the terminal "inactive" state; accounts are
// never deleted so the audit trail stays intact.
type EmployerAccount struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	PubKeyCommitment string    `json:"pubkey_commitment"` // binds claims to this employer
	StakeAmount      int64     `json:"stake_amount"`
	ReputationScore  int64     `json:"reputation_score"` // stored score; decays lazily at read
	IsWhitelisted    bool      `json:"is_whitelisted"`
	RegisteredAt     time.Time `json:"registered_at"`
	LastActivityAt   time.Time `json:"last_activity_at"`
	StakeLockUntil   time.Time `json:"stake_lock_until"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// StakeLocked reports whether the stake is still under its lock period.
func (e *EmployerAccount) StakeLocked(now time.Time) bool {
	return now.Before(e.StakeLockUntil)
}
