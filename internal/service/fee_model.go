package service

import (
	"zkwage-settlement/internal/core/ports"

	"github.com/shopspring/decimal"
)

const bpsDenominator = 10000

// KinkedFeeModel implements ports.FeeModel with a two-segment curve: a flat
// base rate up to the kink utilization, then a linear ramp from the base
// rate to the max rate at 100% utilization. The ramp makes the marginal fee
// climb as the pool approaches its cap, discouraging disbursements that
// would crowd out later claims.
type KinkedFeeModel struct {
	BaseBps int64
	MaxBps  int64
	KinkBps int64
}

// NewKinkedFeeModel creates the default fee curve.
func NewKinkedFeeModel(baseBps, maxBps, kinkBps int64) *KinkedFeeModel {
	return &KinkedFeeModel{BaseBps: baseBps, MaxBps: maxBps, KinkBps: kinkBps}
}

// Fee returns the disbursement fee for amount at the given post-disbursement
// utilization fraction. Monotone in utilization; clamped to [0, amount].
func (m *KinkedFeeModel) Fee(amount int64, utilization decimal.Decimal) int64 {
	if amount <= 0 {
		return 0
	}

	rateBps := decimal.NewFromInt(m.BaseBps)
	kink := decimal.NewFromInt(m.KinkBps).Div(decimal.NewFromInt(bpsDenominator))

	if utilization.GreaterThan(kink) {
		over := utilization.Sub(kink)
		span := decimal.NewFromInt(1).Sub(kink)
		if span.IsPositive() {
			ramp := decimal.NewFromInt(m.MaxBps - m.BaseBps).Mul(over).Div(span)
			rateBps = rateBps.Add(ramp)
		} else {
			rateBps = decimal.NewFromInt(m.MaxBps)
		}
	}

	fee := decimal.NewFromInt(amount).
		Mul(rateBps).
		Div(decimal.NewFromInt(bpsDenominator)).
		IntPart()

	if fee < 0 {
		return 0
	}
	if fee > amount {
		return amount
	}
	return fee
}

var _ ports.FeeModel = (*KinkedFeeModel)(nil)
