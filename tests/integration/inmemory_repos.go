package integration

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"zkwage-settlement/internal/core/domain"
	"zkwage-settlement/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// --- In-Memory Nullifier Repo ---

type inMemoryNullifierRepo struct {
	mu      sync.RWMutex
	records map[string]*domain.NullifierRecord
}

func newInMemoryNullifierRepo() *inMemoryNullifierRepo {
	return &inMemoryNullifierRepo{records: make(map[string]*domain.NullifierRecord)}
}

func (r *inMemoryNullifierRepo) IsUsed(ctx context.Context, token string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.records[token]
	return ok, nil
}

// Commit mirrors the ON CONFLICT DO NOTHING insert: under the write lock
// exactly one racer inserts, the rest get ErrAlreadyClaimed.
func (r *inMemoryNullifierRepo) Commit(ctx context.Context, rec *domain.NullifierRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[rec.Token]; ok {
		return apperror.ErrAlreadyClaimed()
	}
	r.records[rec.Token] = rec
	return nil
}

func (r *inMemoryNullifierRepo) Get(ctx context.Context, token string) (*domain.NullifierRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.records[token]
	if !ok {
		return nil, nil
	}
	return rec, nil
}

// --- In-Memory Employer Repo ---

type inMemoryEmployerRepo struct {
	mu        sync.RWMutex
	employers map[uuid.UUID]*domain.EmployerAccount
}

func newInMemoryEmployerRepo() *inMemoryEmployerRepo {
	return &inMemoryEmployerRepo{employers: make(map[uuid.UUID]*domain.EmployerAccount)}
}

func (r *inMemoryEmployerRepo) Create(ctx context.Context, e *domain.EmployerAccount) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.employers {
		if existing.PubKeyCommitment == e.PubKeyCommitment {
			return fmt.Errorf("commitment already registered")
		}
	}
	cp := *e
	r.employers[e.ID] = &cp
	return nil
}

func (r *inMemoryEmployerRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.EmployerAccount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.employers[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (r *inMemoryEmployerRepo) GetByCommitment(ctx context.Context, commitment string) (*domain.EmployerAccount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.employers {
		if e.PubKeyCommitment == commitment {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryEmployerRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.EmployerAccount, error) {
	return r.GetByID(ctx, id)
}

func (r *inMemoryEmployerRepo) Update(ctx context.Context, tx pgx.Tx, e *domain.EmployerAccount) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.employers[e.ID]; !ok {
		return fmt.Errorf("employer not found")
	}
	cp := *e
	r.employers[e.ID] = &cp
	return nil
}

// --- In-Memory Pool Repo ---

type inMemoryPoolRepo struct {
	mu    sync.RWMutex
	state *domain.PoolState
}

func newInMemoryPoolRepo() *inMemoryPoolRepo {
	return &inMemoryPoolRepo{state: &domain.PoolState{}}
}

func (r *inMemoryPoolRepo) Get(ctx context.Context) (*domain.PoolState, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cp := *r.state
	return &cp, nil
}

func (r *inMemoryPoolRepo) GetForUpdate(ctx context.Context, tx pgx.Tx) (*domain.PoolState, error) {
	return r.Get(ctx)
}

func (r *inMemoryPoolRepo) Save(ctx context.Context, tx pgx.Tx, state *domain.PoolState) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *state
	r.state = &cp
	return nil
}

// --- In-Memory Provider Repo ---

type inMemoryProviderRepo struct {
	mu        sync.RWMutex
	positions map[uuid.UUID]*domain.ProviderPosition
}

func newInMemoryProviderRepo() *inMemoryProviderRepo {
	return &inMemoryProviderRepo{positions: make(map[uuid.UUID]*domain.ProviderPosition)}
}

func (r *inMemoryProviderRepo) GetByID(ctx context.Context, providerID uuid.UUID) (*domain.ProviderPosition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	pos, ok := r.positions[providerID]
	if !ok {
		return nil, nil
	}
	cp := *pos
	return &cp, nil
}

func (r *inMemoryProviderRepo) GetForUpdate(ctx context.Context, tx pgx.Tx, providerID uuid.UUID) (*domain.ProviderPosition, error) {
	return r.GetByID(ctx, providerID)
}

func (r *inMemoryProviderRepo) Upsert(ctx context.Context, tx pgx.Tx, pos *domain.ProviderPosition) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *pos
	r.positions[pos.ProviderID] = &cp
	return nil
}

func (r *inMemoryProviderRepo) Delete(ctx context.Context, tx pgx.Tx, providerID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.positions, providerID)
	return nil
}

// --- In-Memory Operator Repo ---

type inMemoryOperatorRepo struct {
	mu        sync.RWMutex
	operators map[uuid.UUID]*domain.Operator
}

func newInMemoryOperatorRepo() *inMemoryOperatorRepo {
	return &inMemoryOperatorRepo{operators: make(map[uuid.UUID]*domain.Operator)}
}

func (r *inMemoryOperatorRepo) Create(ctx context.Context, op *domain.Operator) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.operators {
		if existing.Username == op.Username {
			return fmt.Errorf("username already exists")
		}
	}
	cp := *op
	r.operators[op.ID] = &cp
	return nil
}

func (r *inMemoryOperatorRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Operator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	op, ok := r.operators[id]
	if !ok {
		return nil, nil
	}
	cp := *op
	return &cp, nil
}

func (r *inMemoryOperatorRepo) GetByUsername(ctx context.Context, username string) (*domain.Operator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, op := range r.operators {
		if op.Username == username {
			cp := *op
			return &cp, nil
		}
	}
	return nil, nil
}

// --- In-Memory Event Repo ---

type inMemoryEventRepo struct {
	mu     sync.RWMutex
	events []domain.SettlementEvent
}

func newInMemoryEventRepo() *inMemoryEventRepo {
	return &inMemoryEventRepo{}
}

func (r *inMemoryEventRepo) Append(ctx context.Context, ev *domain.SettlementEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, *ev)
	return nil
}

func (r *inMemoryEventRepo) ListRecent(ctx context.Context, limit int) ([]domain.SettlementEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.SettlementEvent, len(r.events))
	copy(out, r.events)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *inMemoryEventRepo) countByType(typ domain.EventType) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, ev := range r.events {
		if ev.Type == typ {
			n++
		}
	}
	return n
}

// --- In-Memory Transactor ---

// inMemoryTransactor serializes transaction blocks on a single mutex,
// standing in for the row locks the postgres repos take with FOR UPDATE.
type inMemoryTransactor struct {
	mu sync.Mutex
}

func newInMemoryTransactor() *inMemoryTransactor {
	return &inMemoryTransactor{}
}

func (t *inMemoryTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	t.mu.Lock()
	return &lockedTx{release: &t.mu}, nil
}

// lockedTx releases the transactor lock exactly once, on whichever of
// Commit or Rollback runs first.
type lockedTx struct {
	release *sync.Mutex
	once    sync.Once
}

func (t *lockedTx) done() {
	t.once.Do(t.release.Unlock)
}

func (t *lockedTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *lockedTx) Commit(ctx context.Context) error          { t.done(); return nil }
func (t *lockedTx) Rollback(ctx context.Context) error        { t.done(); return nil }
func (t *lockedTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *lockedTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *lockedTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *lockedTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *lockedTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}
func (t *lockedTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *lockedTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
func (t *lockedTx) Conn() *pgx.Conn { return nil }
