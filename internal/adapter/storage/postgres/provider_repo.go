package postgres

import (
	"context"
	"errors"
	"fmt"

	"zkwage-settlement/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ProviderRepo implements ports.ProviderRepository.
type ProviderRepo struct {
	pool Pool
}

// NewProviderRepo creates a new ProviderRepo.
func NewProviderRepo(pool Pool) *ProviderRepo {
	return &ProviderRepo{pool: pool}
}

// GetByID fetches a provider position (non-locking read).
func (r *ProviderRepo) GetByID(ctx context.Context, providerID uuid.UUID) (*domain.ProviderPosition, error) {
	query := `SELECT provider_id, shares, deposited_at
		FROM provider_positions WHERE provider_id = $1`
	return r.scanOne(r.pool.QueryRow(ctx, query, providerID))
}

// GetForUpdate fetches a provider position with pessimistic locking.
// This MUST be called within a transaction.
func (r *ProviderRepo) GetForUpdate(ctx context.Context, tx pgx.Tx, providerID uuid.UUID) (*domain.ProviderPosition, error) {
	query := `SELECT provider_id, shares, deposited_at
		FROM provider_positions WHERE provider_id = $1 FOR UPDATE`
	return r.scanOne(tx.QueryRow(ctx, query, providerID))
}

// Upsert writes a provider position within a transaction.
func (r *ProviderRepo) Upsert(ctx context.Context, tx pgx.Tx, pos *domain.ProviderPosition) error {
	query := `INSERT INTO provider_positions (provider_id, shares, deposited_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (provider_id) DO UPDATE SET
			shares = EXCLUDED.shares, deposited_at = EXCLUDED.deposited_at`

	if _, err := tx.Exec(ctx, query, pos.ProviderID, pos.Shares, pos.DepositedAt); err != nil {
		return fmt.Errorf("upsert provider position: %w", err)
	}
	return nil
}

// Delete removes a fully withdrawn position within a transaction.
func (r *ProviderRepo) Delete(ctx context.Context, tx pgx.Tx, providerID uuid.UUID) error {
	query := `DELETE FROM provider_positions WHERE provider_id = $1`

	if _, err := tx.Exec(ctx, query, providerID); err != nil {
		return fmt.Errorf("delete provider position: %w", err)
	}
	return nil
}

func (r *ProviderRepo) scanOne(row pgx.Row) (*domain.ProviderPosition, error) {
	pos := &domain.ProviderPosition{}
	err := row.Scan(&pos.ProviderID, &pos.Shares, &pos.DepositedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan provider position: %w", err)
	}
	return pos, nil
}
