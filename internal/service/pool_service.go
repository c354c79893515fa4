package service

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"zkwage-settlement/config"
	"zkwage-settlement/internal/core/domain"
	"zkwage-settlement/internal/core/ports"
	"zkwage-settlement/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const secondsPerYear = 365 * 24 * 3600

// poolParams are the runtime-tunable pool parameters, guarded by a mutex so
// admin updates can land while claims are in flight.
type poolParams struct {
	maxUtilizationBps     int64
	earlyWithdrawalFeeBps int64
	annualYieldBps        int64
	performanceFeeBps     int64
	minLockPeriod         time.Duration
}

// PoolServiceImpl implements ports.PoolService. Every state-changing
// operation runs in a database transaction holding the pool row lock, and
// accrues pending yield before touching balances, so no caller ever observes
// pool state across a yield-accrual boundary.
type PoolServiceImpl struct {
	poolRepo     ports.PoolRepository
	providerRepo ports.ProviderRepository
	transactor   ports.DBTransactor
	feeModel     ports.FeeModel
	events       ports.EventPublisher
	log          zerolog.Logger

	mu     sync.RWMutex
	params poolParams

	now func() time.Time
}

// NewPoolService creates a new PoolServiceImpl from config.
func NewPoolService(
	poolRepo ports.PoolRepository,
	providerRepo ports.ProviderRepository,
	transactor ports.DBTransactor,
	feeModel ports.FeeModel,
	events ports.EventPublisher,
	cfg config.PoolConfig,
	log zerolog.Logger,
) *PoolServiceImpl {
	return &PoolServiceImpl{
		poolRepo:     poolRepo,
		providerRepo: providerRepo,
		transactor:   transactor,
		feeModel:     feeModel,
		events:       events,
		log:          log,
		params: poolParams{
			maxUtilizationBps:     cfg.MaxUtilizationBps,
			earlyWithdrawalFeeBps: cfg.EarlyWithdrawalFeeBps,
			annualYieldBps:        cfg.AnnualYieldBps,
			performanceFeeBps:     cfg.PerformanceFeeBps,
			minLockPeriod:         cfg.MinLockPeriod,
		},
		now: func() time.Time { return time.Now().UTC() },
	}
}

// AddLiquidity deposits amount and mints shares per the proportional formula.
func (s *PoolServiceImpl) AddLiquidity(ctx context.Context, providerID uuid.UUID, amount int64) (*ports.AddLiquidityResult, error) {
	if amount <= 0 {
		return nil, apperror.ErrZeroAmount()
	}

	var result *ports.AddLiquidityResult
	err := s.inPoolTx(ctx, func(tx pgx.Tx, pool *domain.PoolState) error {
		shares := domain.SharesForDeposit(amount, pool)
		if shares <= 0 {
			return apperror.ErrZeroAmount()
		}

		now := s.now()
		pool.TotalLiquidity += amount
		pool.ShareSupply += shares

		pos, err := s.providerRepo.GetForUpdate(ctx, tx, providerID)
		if err != nil {
			return apperror.InternalError(fmt.Errorf("lock provider position: %w", err))
		}
		if pos == nil {
			pos = &domain.ProviderPosition{ProviderID: providerID}
		}
		pos.Shares += shares
		// Each deposit restarts the lock window for the whole position.
		pos.DepositedAt = now

		if err := s.providerRepo.Upsert(ctx, tx, pos); err != nil {
			return apperror.InternalError(fmt.Errorf("save provider position: %w", err))
		}

		result = &ports.AddLiquidityResult{
			SharesMinted:  shares,
			TotalShares:   pos.Shares,
			PoolLiquidity: pool.TotalLiquidity,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.events.Publish(ctx, domain.EventLiquidityAdded, map[string]interface{}{
		"provider_id":    providerID,
		"amount":         amount,
		"shares_minted":  result.SharesMinted,
		"pool_liquidity": result.PoolLiquidity,
	})

	s.log.Info().
		Str("provider_id", providerID.String()).
		Int64("amount", amount).
		Int64("shares_minted", result.SharesMinted).
		Msg("liquidity added")

	return result, nil
}

// RemoveLiquidity burns shares and pays out the proportional amount, less an
// early-withdrawal fee inside the lock period.
func (s *PoolServiceImpl) RemoveLiquidity(ctx context.Context, providerID uuid.UUID, shares int64) (*ports.RemoveLiquidityResult, error) {
	if shares <= 0 {
		return nil, apperror.ErrZeroAmount()
	}

	s.mu.RLock()
	earlyFeeBps := s.params.earlyWithdrawalFeeBps
	lockPeriod := s.params.minLockPeriod
	s.mu.RUnlock()

	var result *ports.RemoveLiquidityResult
	err := s.inPoolTx(ctx, func(tx pgx.Tx, pool *domain.PoolState) error {
		pos, err := s.providerRepo.GetForUpdate(ctx, tx, providerID)
		if err != nil {
			return apperror.InternalError(fmt.Errorf("lock provider position: %w", err))
		}
		if pos == nil {
			return apperror.ErrNotFound("Provider position")
		}
		if shares > pos.Shares {
			return apperror.ErrInsufficientShares()
		}

		gross := domain.ShareValue(shares, pool)

		now := s.now()
		var fee int64
		if now.Before(pos.DepositedAt.Add(lockPeriod)) {
			fee = decimal.NewFromInt(gross).
				Mul(decimal.NewFromInt(earlyFeeBps)).
				Div(decimal.NewFromInt(bpsDenominator)).
				IntPart()
		}
		net := gross - fee

		// The fee stays behind in collected fees, but the full gross amount
		// leaves TotalLiquidity, so gross is the bound free liquidity sets.
		if gross > pool.FreeLiquidity() {
			return apperror.ErrInsufficientPoolLiquidity()
		}

		pool.TotalLiquidity -= gross
		pool.TotalFeesCollected += fee
		pool.ShareSupply -= shares

		pos.Shares -= shares
		if pos.Shares == 0 {
			if err := s.providerRepo.Delete(ctx, tx, providerID); err != nil {
				return apperror.InternalError(fmt.Errorf("delete provider position: %w", err))
			}
		} else {
			if err := s.providerRepo.Upsert(ctx, tx, pos); err != nil {
				return apperror.InternalError(fmt.Errorf("save provider position: %w", err))
			}
		}

		result = &ports.RemoveLiquidityResult{
			SharesBurned: shares,
			GrossAmount:  gross,
			Fee:          fee,
			NetAmount:    net,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.events.Publish(ctx, domain.EventLiquidityRemoved, map[string]interface{}{
		"provider_id":   providerID,
		"shares_burned": result.SharesBurned,
		"gross_amount":  result.GrossAmount,
		"fee":           result.Fee,
		"net_amount":    result.NetAmount,
	})

	s.log.Info().
		Str("provider_id", providerID.String()).
		Int64("shares_burned", result.SharesBurned).
		Int64("net_amount", result.NetAmount).
		Msg("liquidity removed")

	return result, nil
}

// Disburse reserves amount for a wage payout, charging the dynamic fee.
// Only the settlement engine holds this service as a ports.Disburser.
func (s *PoolServiceImpl) Disburse(ctx context.Context, amount int64) (*ports.Disbursement, error) {
	if amount <= 0 {
		return nil, apperror.ErrZeroAmount()
	}

	s.mu.RLock()
	maxUtilBps := s.params.maxUtilizationBps
	s.mu.RUnlock()

	var d *ports.Disbursement
	err := s.inPoolTx(ctx, func(tx pgx.Tx, pool *domain.PoolState) error {
		utilAfter := pool.UtilizationAfter(amount)
		maxUtil := decimal.NewFromInt(maxUtilBps).Div(decimal.NewFromInt(bpsDenominator))
		if utilAfter.GreaterThan(maxUtil) {
			return apperror.ErrUtilizationExceeded()
		}

		// Reachable only when the cap allows full utilization or the pool
		// is empty; a cap below 100% already bounds amount by free liquidity.
		if amount > pool.FreeLiquidity() {
			return apperror.ErrInsufficientPoolLiquidity()
		}

		fee := s.feeModel.Fee(amount, utilAfter)

		pool.TotalBorrowed += amount
		pool.TotalFeesCollected += fee

		d = &ports.Disbursement{Gross: amount, Fee: fee, Net: amount - fee}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return d, nil
}

// Repay records an employer repayment against outstanding disbursements.
func (s *PoolServiceImpl) Repay(ctx context.Context, amount int64) error {
	if amount <= 0 {
		return apperror.ErrZeroAmount()
	}

	return s.inPoolTx(ctx, func(tx pgx.Tx, pool *domain.PoolState) error {
		if amount > pool.TotalBorrowed {
			// A repayment above the outstanding total means broken
			// bookkeeping somewhere upstream; refuse to mutate.
			return apperror.InternalError(fmt.Errorf("repay %d exceeds total borrowed %d", amount, pool.TotalBorrowed))
		}
		pool.TotalBorrowed -= amount
		pool.TotalLiquidity += amount
		return nil
	})
}

// ReverseDisbursement undoes a disbursement whose claim lost the nullifier
// race, restoring borrowed total and collected fees exactly.
func (s *PoolServiceImpl) ReverseDisbursement(ctx context.Context, d *ports.Disbursement) error {
	return s.inPoolTx(ctx, func(tx pgx.Tx, pool *domain.PoolState) error {
		if d.Gross > pool.TotalBorrowed || d.Fee > pool.TotalFeesCollected {
			return apperror.InternalError(fmt.Errorf(
				"reverse disbursement gross=%d fee=%d exceeds pool totals borrowed=%d fees=%d",
				d.Gross, d.Fee, pool.TotalBorrowed, pool.TotalFeesCollected))
		}
		pool.TotalBorrowed -= d.Gross
		pool.TotalFeesCollected -= d.Fee
		return nil
	})
}

// DistributeFees sweeps collected fees: the performance cut goes to the
// protocol treasury, the remainder compounds into pool liquidity.
func (s *PoolServiceImpl) DistributeFees(ctx context.Context) (*ports.FeeDistribution, error) {
	s.mu.RLock()
	perfBps := s.params.performanceFeeBps
	s.mu.RUnlock()

	var dist *ports.FeeDistribution
	err := s.inPoolTx(ctx, func(tx pgx.Tx, pool *domain.PoolState) error {
		if pool.TotalFeesCollected <= 0 {
			return apperror.ErrNoFeesToDistribute()
		}

		treasury := decimal.NewFromInt(pool.TotalFeesCollected).
			Mul(decimal.NewFromInt(perfBps)).
			Div(decimal.NewFromInt(bpsDenominator)).
			IntPart()
		compounded := pool.TotalFeesCollected - treasury

		pool.TotalLiquidity += compounded
		pool.TotalFeesCollected = 0

		dist = &ports.FeeDistribution{TreasuryCut: treasury, Compounded: compounded}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.events.Publish(ctx, domain.EventFeesDistributed, dist)

	s.log.Info().
		Int64("treasury_cut", dist.TreasuryCut).
		Int64("compounded", dist.Compounded).
		Msg("fees distributed")

	return dist, nil
}

// Snapshot returns the current persisted pool state (read-only, no accrual).
func (s *PoolServiceImpl) Snapshot(ctx context.Context) (*domain.PoolState, error) {
	pool, err := s.poolRepo.Get(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get pool: %w", err))
	}
	if pool == nil {
		return nil, apperror.ErrNotFound("Liquidity pool")
	}
	return pool, nil
}

// UpdateParams applies a partial parameter update.
func (s *PoolServiceImpl) UpdateParams(_ context.Context, update ports.PoolParamsUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if update.MaxUtilizationBps != nil {
		if *update.MaxUtilizationBps <= 0 || *update.MaxUtilizationBps > bpsDenominator {
			return apperror.Validation("max_utilization_bps must be in (0, 10000]")
		}
		s.params.maxUtilizationBps = *update.MaxUtilizationBps
	}
	if update.EarlyWithdrawalFeeBps != nil {
		if *update.EarlyWithdrawalFeeBps < 0 || *update.EarlyWithdrawalFeeBps > bpsDenominator {
			return apperror.Validation("early_withdrawal_fee_bps must be in [0, 10000]")
		}
		s.params.earlyWithdrawalFeeBps = *update.EarlyWithdrawalFeeBps
	}
	if update.AnnualYieldBps != nil {
		if *update.AnnualYieldBps < 0 {
			return apperror.Validation("annual_yield_bps must be non-negative")
		}
		s.params.annualYieldBps = *update.AnnualYieldBps
	}
	if update.PerformanceFeeBps != nil {
		if *update.PerformanceFeeBps < 0 || *update.PerformanceFeeBps > bpsDenominator {
			return apperror.Validation("performance_fee_bps must be in [0, 10000]")
		}
		s.params.performanceFeeBps = *update.PerformanceFeeBps
	}
	if update.MinLockPeriod != nil {
		if *update.MinLockPeriod < 0 {
			return apperror.Validation("min_lock_period must be non-negative")
		}
		s.params.minLockPeriod = *update.MinLockPeriod
	}
	return nil
}

// inPoolTx runs fn inside a transaction holding the pool row lock, with
// yield accrued first, and persists the mutated state on success.
func (s *PoolServiceImpl) inPoolTx(ctx context.Context, fn func(tx pgx.Tx, pool *domain.PoolState) error) error {
	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	pool, err := s.poolRepo.GetForUpdate(ctx, tx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("lock pool: %w", err))
	}
	if pool == nil {
		return apperror.ErrNotFound("Liquidity pool")
	}

	s.accrueYield(pool)

	if err := fn(tx, pool); err != nil {
		return err
	}

	if pool.TotalLiquidity < pool.TotalBorrowed || pool.TotalLiquidity < 0 || pool.TotalBorrowed < 0 {
		// Never persist a state that breaks the balance-sheet invariant.
		return apperror.InternalError(fmt.Errorf(
			"pool invariant violated: liquidity=%d borrowed=%d", pool.TotalLiquidity, pool.TotalBorrowed))
	}

	pool.UpdatedAt = s.now()
	if err := s.poolRepo.Save(ctx, tx, pool); err != nil {
		return apperror.InternalError(fmt.Errorf("save pool: %w", err))
	}

	if err := tx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}
	return nil
}

// accrueYield folds pending compound yield into pool liquidity. Lazy and
// exact-at-read: no background scheduler needed.
func (s *PoolServiceImpl) accrueYield(pool *domain.PoolState) {
	now := s.now()
	elapsed := now.Sub(pool.LastYieldUpdate)
	if elapsed <= 0 {
		return
	}

	defer func() { pool.LastYieldUpdate = now }()

	if pool.TotalLiquidity <= 0 {
		return
	}

	s.mu.RLock()
	yieldBps := s.params.annualYieldBps
	s.mu.RUnlock()
	if yieldBps <= 0 {
		return
	}

	annualRate := float64(yieldBps) / float64(bpsDenominator)
	years := elapsed.Seconds() / secondsPerYear
	growth := math.Pow(1+annualRate, years)

	grown := decimal.NewFromInt(pool.TotalLiquidity).
		Mul(decimal.NewFromFloat(growth)).
		IntPart()
	if grown > pool.TotalLiquidity {
		pool.TotalLiquidity = grown
	}
}

var _ ports.PoolService = (*PoolServiceImpl)(nil)
