package service

import (
	"time"

	"zkwage-settlement/internal/core/domain"
	"zkwage-settlement/internal/core/ports"
)

// LinearDecay implements ports.DecayModel: the stored score loses PerDay
// points per full day of employer inactivity, floored at zero. Dormant
// employers are treated with growing caution even absent new evidence.
type LinearDecay struct {
	PerDay int64
}

// NewLinearDecay creates the default reputation decay model.
func NewLinearDecay(perDay int64) *LinearDecay {
	return &LinearDecay{PerDay: perDay}
}

// Decayed returns the read-time reputation. Partial days do not decay.
func (d *LinearDecay) Decayed(stored int64, sinceActivity time.Duration) int64 {
	score := stored
	if d.PerDay > 0 && sinceActivity > 0 {
		score -= d.PerDay * int64(sinceActivity.Hours()/24)
	}
	if score < 0 {
		return 0
	}
	if score > domain.MaxReputationScore {
		return domain.MaxReputationScore
	}
	return score
}

var _ ports.DecayModel = (*LinearDecay)(nil)
