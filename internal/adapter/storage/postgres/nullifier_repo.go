package postgres

import (
	"context"
	"errors"
	"fmt"

	"zkwage-settlement/internal/core/domain"
	"zkwage-settlement/pkg/apperror"

	"github.com/jackc/pgx/v5"
)

// NullifierRepo implements ports.NullifierRepository. The nullifiers table
// is append-only; the primary key on token is what makes Commit an atomic
// insert-if-absent under concurrency.
type NullifierRepo struct {
	pool Pool
}

// NewNullifierRepo creates a new NullifierRepo.
func NewNullifierRepo(pool Pool) *NullifierRepo {
	return &NullifierRepo{pool: pool}
}

// IsUsed reports whether the token has already been committed.
func (r *NullifierRepo) IsUsed(ctx context.Context, token string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM nullifiers WHERE token = $1)`

	var used bool
	if err := r.pool.QueryRow(ctx, query, token).Scan(&used); err != nil {
		return false, fmt.Errorf("check nullifier: %w", err)
	}
	return used, nil
}

// Commit inserts the nullifier record. When a concurrent claim already
// committed the same token, the insert affects zero rows and the caller
// gets apperror.ErrAlreadyClaimed.
func (r *NullifierRepo) Commit(ctx context.Context, rec *domain.NullifierRecord) error {
	query := `INSERT INTO nullifiers (token, claim_id, payout_amount, committed_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (token) DO NOTHING`

	tag, err := r.pool.Exec(ctx, query,
		rec.Token, rec.ClaimID, rec.PayoutAmount, rec.CommittedAt,
	)
	if err != nil {
		return fmt.Errorf("insert nullifier: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.ErrAlreadyClaimed()
	}
	return nil
}

// Get fetches a committed nullifier record by token.
func (r *NullifierRepo) Get(ctx context.Context, token string) (*domain.NullifierRecord, error) {
	query := `SELECT token, claim_id, payout_amount, committed_at
		FROM nullifiers WHERE token = $1`

	rec := &domain.NullifierRecord{}
	err := r.pool.QueryRow(ctx, query, token).Scan(
		&rec.Token, &rec.ClaimID, &rec.PayoutAmount, &rec.CommittedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get nullifier: %w", err)
	}
	return rec, nil
}
