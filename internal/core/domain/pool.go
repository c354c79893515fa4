package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PoolState is the liquidity pool's aggregate balance sheet. Invariants:
// TotalBorrowed <= maxUtilization * TotalLiquidity after every disbursement,
// and TotalLiquidity >= TotalBorrowed always.
type PoolState struct {
	TotalLiquidity     int64     `json:"total_liquidity"` // base units, includes accrued yield
	TotalBorrowed      int64     `json:"total_borrowed"`
	TotalFeesCollected int64     `json:"total_fees_collected"`
	ShareSupply        int64     `json:"share_supply"`
	LastYieldUpdate    time.Time `json:"last_yield_update"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// FreeLiquidity is the portion of the pool not currently disbursed.
func (p *PoolState) FreeLiquidity() int64 {
	return p.TotalLiquidity - p.TotalBorrowed
}

// Utilization returns TotalBorrowed / TotalLiquidity as a decimal fraction,
// zero for an empty pool.
func (p *PoolState) Utilization() decimal.Decimal {
	if p.TotalLiquidity <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(p.TotalBorrowed).Div(decimal.NewFromInt(p.TotalLiquidity))
}

// UtilizationAfter returns the utilization fraction if amount more were
// disbursed, zero for an empty pool.
func (p *PoolState) UtilizationAfter(amount int64) decimal.Decimal {
	if p.TotalLiquidity <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(p.TotalBorrowed + amount).Div(decimal.NewFromInt(p.TotalLiquidity))
}

// ProviderPosition is a liquidity provider's proportional claim on the pool.
// Shares are minted 1:1 on the first deposit into an empty pool, otherwise
// amount * ShareSupply / TotalLiquidity, so the fractional claim (including
// accrued yield and compounded fees) is preserved at redemption time.
type ProviderPosition struct {
	ProviderID  uuid.UUID `json:"provider_id"`
	Shares      int64     `json:"shares"`
	DepositedAt time.Time `json:"deposited_at"`
}

// ShareValue returns the redeemable value of shares against the given pool
// state, truncated to base units.
func ShareValue(shares int64, pool *PoolState) int64 {
	if pool.ShareSupply <= 0 || shares <= 0 {
		return 0
	}
	return decimal.NewFromInt(shares).
		Mul(decimal.NewFromInt(pool.TotalLiquidity)).
		Div(decimal.NewFromInt(pool.ShareSupply)).
		IntPart()
}

// SharesForDeposit returns the shares to mint for a deposit against the
// given pool state.
func SharesForDeposit(amount int64, pool *PoolState) int64 {
	if pool.ShareSupply == 0 || pool.TotalLiquidity == 0 {
		return amount
	}
	return decimal.NewFromInt(amount).
		Mul(decimal.NewFromInt(pool.ShareSupply)).
		Div(decimal.NewFromInt(pool.TotalLiquidity)).
		IntPart()
}
