package postgres

import (
	"context"
	"errors"
	"fmt"

	"zkwage-settlement/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const employerColumns = `id, name, pubkey_commitment, stake_amount, reputation_score,
	is_whitelisted, registered_at, last_activity_at, stake_lock_until, updated_at`

// EmployerRepo implements ports.EmployerRepository.
type EmployerRepo struct {
	pool Pool
}

// NewEmployerRepo creates a new EmployerRepo.
func NewEmployerRepo(pool Pool) *EmployerRepo {
	return &EmployerRepo{pool: pool}
}

// Create inserts a new employer account.
func (r *EmployerRepo) Create(ctx context.Context, e *domain.EmployerAccount) error {
	query := `INSERT INTO employers (` + employerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.pool.Exec(ctx, query,
		e.ID, e.Name, e.PubKeyCommitment, e.StakeAmount, e.ReputationScore,
		e.IsWhitelisted, e.RegisteredAt, e.LastActivityAt, e.StakeLockUntil, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert employer: %w", err)
	}
	return nil
}

// GetByID fetches an employer by its UUID (without locking).
func (r *EmployerRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.EmployerAccount, error) {
	query := `SELECT ` + employerColumns + ` FROM employers WHERE id = $1`
	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

// GetByCommitment fetches an employer by its public key commitment.
func (r *EmployerRepo) GetByCommitment(ctx context.Context, commitment string) (*domain.EmployerAccount, error) {
	query := `SELECT ` + employerColumns + ` FROM employers WHERE pubkey_commitment = $1`
	return r.scanOne(r.pool.QueryRow(ctx, query, commitment))
}

// GetByIDForUpdate fetches an employer with pessimistic locking.
// This MUST be called within a transaction.
func (r *EmployerRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.EmployerAccount, error) {
	query := `SELECT ` + employerColumns + ` FROM employers WHERE id = $1 FOR UPDATE`
	return r.scanOne(tx.QueryRow(ctx, query, id))
}

// Update rewrites the mutable employer fields within a transaction.
func (r *EmployerRepo) Update(ctx context.Context, tx pgx.Tx, e *domain.EmployerAccount) error {
	query := `UPDATE employers SET
		stake_amount = $1, reputation_score = $2, is_whitelisted = $3,
		last_activity_at = $4, stake_lock_until = $5, updated_at = $6
		WHERE id = $7`

	tag, err := tx.Exec(ctx, query,
		e.StakeAmount, e.ReputationScore, e.IsWhitelisted,
		e.LastActivityAt, e.StakeLockUntil, e.UpdatedAt, e.ID,
	)
	if err != nil {
		return fmt.Errorf("update employer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("employer not found: %s", e.ID)
	}
	return nil
}

func (r *EmployerRepo) scanOne(row pgx.Row) (*domain.EmployerAccount, error) {
	e := &domain.EmployerAccount{}
	err := row.Scan(
		&e.ID, &e.Name, &e.PubKeyCommitment, &e.StakeAmount, &e.ReputationScore,
		&e.IsWhitelisted, &e.RegisteredAt, &e.LastActivityAt, &e.StakeLockUntil, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan employer: %w", err)
	}
	return e, nil
}
