package postgres

import (
	"context"
	"errors"
	"fmt"

	"zkwage-settlement/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// The pool is a single row; poolStateID pins every query to it.
const poolStateID = 1

const poolColumns = `total_liquidity, total_borrowed, total_fees_collected,
	share_supply, last_yield_update, updated_at`

// PoolRepo implements ports.PoolRepository over the single liquidity_pool row.
type PoolRepo struct {
	pool Pool
}

// NewPoolRepo creates a new PoolRepo.
func NewPoolRepo(pool Pool) *PoolRepo {
	return &PoolRepo{pool: pool}
}

// Get fetches the pool state (non-locking read).
func (r *PoolRepo) Get(ctx context.Context) (*domain.PoolState, error) {
	query := `SELECT ` + poolColumns + ` FROM liquidity_pool WHERE id = $1`
	return r.scanOne(r.pool.QueryRow(ctx, query, poolStateID))
}

// GetForUpdate fetches the pool state with pessimistic locking. Every
// state-changing pool operation serializes on this row lock.
// This MUST be called within a transaction.
func (r *PoolRepo) GetForUpdate(ctx context.Context, tx pgx.Tx) (*domain.PoolState, error) {
	query := `SELECT ` + poolColumns + ` FROM liquidity_pool WHERE id = $1 FOR UPDATE`
	return r.scanOne(tx.QueryRow(ctx, query, poolStateID))
}

// Save rewrites the pool state within a transaction.
func (r *PoolRepo) Save(ctx context.Context, tx pgx.Tx, state *domain.PoolState) error {
	query := `UPDATE liquidity_pool SET
		total_liquidity = $1, total_borrowed = $2, total_fees_collected = $3,
		share_supply = $4, last_yield_update = $5, updated_at = $6
		WHERE id = $7`

	tag, err := tx.Exec(ctx, query,
		state.TotalLiquidity, state.TotalBorrowed, state.TotalFeesCollected,
		state.ShareSupply, state.LastYieldUpdate, state.UpdatedAt, poolStateID,
	)
	if err != nil {
		return fmt.Errorf("update pool state: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("pool state row missing")
	}
	return nil
}

func (r *PoolRepo) scanOne(row pgx.Row) (*domain.PoolState, error) {
	s := &domain.PoolState{}
	err := row.Scan(
		&s.TotalLiquidity, &s.TotalBorrowed, &s.TotalFeesCollected,
		&s.ShareSupply, &s.LastYieldUpdate, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan pool state: %w", err)
	}
	return s, nil
}
