package ports

import (
	"context"

	"zkwage-settlement/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// NullifierRepository is the authoritative append-only ledger of paid claims.
// Commit is an atomic insert-if-absent: when two callers race on the same
// token, exactly one insert wins and the loser gets apperror.ErrAlreadyClaimed.
type NullifierRepository interface {
	IsUsed(ctx context.Context, token string) (bool, error)
	Commit(ctx context.Context, rec *domain.NullifierRecord) error
	Get(ctx context.Context, token string) (*domain.NullifierRecord, error)
}

// NullifierCache is the Redis fast path in front of the authoritative ledger.
// It is advisory only: a cache miss falls through to the repository, and a
// cache failure must never block a claim.
type NullifierCache interface {
	Seen(ctx context.Context, token string) (bool, error)
	MarkUsed(ctx context.Context, token string) error
}

// EmployerRepository defines persistence operations for employer accounts.
// Methods accepting pgx.Tx are used inside transaction blocks for pessimistic locking.
type EmployerRepository interface {
	Create(ctx context.Context, e *domain.EmployerAccount) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.EmployerAccount, error)
	GetByCommitment(ctx context.Context, commitment string) (*domain.EmployerAccount, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.EmployerAccount, error)
	Update(ctx context.Context, tx pgx.Tx, e *domain.EmployerAccount) error
}

// PoolRepository persists the single liquidity pool row.
type PoolRepository interface {
	Get(ctx context.Context) (*domain.PoolState, error)
	GetForUpdate(ctx context.Context, tx pgx.Tx) (*domain.PoolState, error)
	Save(ctx context.Context, tx pgx.Tx, state *domain.PoolState) error
}

// ProviderRepository persists liquidity provider positions.
type ProviderRepository interface {
	GetByID(ctx context.Context, providerID uuid.UUID) (*domain.ProviderPosition, error)
	GetForUpdate(ctx context.Context, tx pgx.Tx, providerID uuid.UUID) (*domain.ProviderPosition, error)
	Upsert(ctx context.Context, tx pgx.Tx, pos *domain.ProviderPosition) error
	Delete(ctx context.Context, tx pgx.Tx, providerID uuid.UUID) error
}

// OperatorRepository persists admin/provider operator accounts.
type OperatorRepository interface {
	Create(ctx context.Context, op *domain.Operator) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Operator, error)
	GetByUsername(ctx context.Context, username string) (*domain.Operator, error)
}

// EventRepository persists the structured state-transition stream.
type EventRepository interface {
	Append(ctx context.Context, ev *domain.SettlementEvent) error
	ListRecent(ctx context.Context, limit int) ([]domain.SettlementEvent, error)
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
