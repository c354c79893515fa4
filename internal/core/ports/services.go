package ports

import (
	"context"
	"time"

	"zkwage-settlement/internal/core/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProofVerifier is the external zero-knowledge verification oracle. It must
// be idempotent and side-effect-free from the engine's perspective; any
// replay guard it keeps internally is redundant with the nullifier ledger.
type ProofVerifier interface {
	Verify(ctx context.Context, proof []byte, inputs domain.PublicInputs) (bool, error)
}

// FeeModel prices a disbursement. utilization is the pool's utilization
// fraction after the disbursement under consideration. Implementations must
// be monotonically non-decreasing in utilization and keep fee in [0, amount].
type FeeModel interface {
	Fee(amount int64, utilization decimal.Decimal) int64
}

// DecayModel computes a read-time reputation from the stored score and the
// time since the employer's last activity. Never negative.
type DecayModel interface {
	Decayed(stored int64, sinceActivity time.Duration) int64
}

// CommitmentScheme binds an employer public key to the commitment embedded
// in claim public inputs.
type CommitmentScheme interface {
	Commit(pubKey []byte) (string, error)
}

// EventPublisher emits structured state-transition events for downstream
// indexing. Emission is best-effort: a publish failure is logged, never
// propagated into the state machine.
type EventPublisher interface {
	Publish(ctx context.Context, typ domain.EventType, payload interface{})
}

// --- Service Ports (Business Logic) ---

// Disburser is the settlement engine's view of the liquidity pool.
type Disburser interface {
	// Disburse reserves amount from the pool, charging the dynamic fee.
	Disburse(ctx context.Context, amount int64) (*Disbursement, error)
	// Repay records an employer repayment: the borrowed total falls and the
	// repaid funds rejoin pool liquidity.
	Repay(ctx context.Context, amount int64) error
	// ReverseDisbursement is the compensating action when a nullifier commit
	// loses a race after a successful disbursement. It must restore the pool
	// exactly, fee included.
	ReverseDisbursement(ctx context.Context, d *Disbursement) error
}

// Disbursement describes a successful pool disbursement.
type Disbursement struct {
	Gross int64 `json:"gross"`
	Fee   int64 `json:"fee"`
	Net   int64 `json:"net"`
}

// EmployerDirectory is the settlement engine's view of the trust store.
type EmployerDirectory interface {
	// ResolveCommitment maps a claim's employer commitment to the registered
	// account. Returns (nil, nil) when no account matches.
	ResolveCommitment(ctx context.Context, commitment string) (*domain.EmployerAccount, error)
	// RecordActivity restarts the employer's inactivity-decay clock after a
	// settled claim.
	RecordActivity(ctx context.Context, id uuid.UUID) error
}

// SettlementService processes wage claims end to end.
type SettlementService interface {
	ClaimWages(ctx context.Context, claim domain.WageClaim) (*domain.ClaimReceipt, error)
	Stats() SettlementStats
	SetPaused(paused bool)
	Paused() bool
	RotateVerifier(v ProofVerifier)
}

// SettlementStats are the engine's aggregate counters.
type SettlementStats struct {
	TotalClaims       int64 `json:"total_claims"`
	TotalWagesClaimed int64 `json:"total_wages_claimed"`
	TotalRejected     int64 `json:"total_rejected"`
}

// PoolService manages the shared liquidity pool.
type PoolService interface {
	Disburser
	AddLiquidity(ctx context.Context, providerID uuid.UUID, amount int64) (*AddLiquidityResult, error)
	RemoveLiquidity(ctx context.Context, providerID uuid.UUID, shares int64) (*RemoveLiquidityResult, error)
	DistributeFees(ctx context.Context) (*FeeDistribution, error)
	Snapshot(ctx context.Context) (*domain.PoolState, error)
	UpdateParams(ctx context.Context, update PoolParamsUpdate) error
}

// AddLiquidityResult reports a completed deposit.
type AddLiquidityResult struct {
	SharesMinted  int64 `json:"shares_minted"`
	TotalShares   int64 `json:"total_shares"`
	PoolLiquidity int64 `json:"pool_liquidity"`
}

// RemoveLiquidityResult reports a completed withdrawal.
type RemoveLiquidityResult struct {
	SharesBurned int64 `json:"shares_burned"`
	GrossAmount  int64 `json:"gross_amount"`
	Fee          int64 `json:"fee"`
	NetAmount    int64 `json:"net_amount"`
}

// FeeDistribution reports a fee sweep: the treasury cut plus the remainder
// compounded back into pool liquidity.
type FeeDistribution struct {
	TreasuryCut int64 `json:"treasury_cut"`
	Compounded  int64 `json:"compounded"`
}

// PoolParamsUpdate carries partial updates to the pool's tunable parameters.
// Nil fields are left unchanged.
type PoolParamsUpdate struct {
	MaxUtilizationBps     *int64         `json:"max_utilization_bps,omitempty"`
	EarlyWithdrawalFeeBps *int64         `json:"early_withdrawal_fee_bps,omitempty"`
	AnnualYieldBps        *int64         `json:"annual_yield_bps,omitempty"`
	PerformanceFeeBps     *int64         `json:"performance_fee_bps,omitempty"`
	MinLockPeriod         *time.Duration `json:"min_lock_period,omitempty"`
}

// EmployerService manages the employer trust store.
type EmployerService interface {
	EmployerDirectory
	Register(ctx context.Context, req RegisterEmployerRequest) (*domain.EmployerAccount, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.EmployerAccount, error)
	SetWhitelist(ctx context.Context, id uuid.UUID, whitelisted bool) (*domain.EmployerAccount, error)
	IncreaseStake(ctx context.Context, id uuid.UUID, amount int64) (*domain.EmployerAccount, error)
	DecreaseStake(ctx context.Context, id uuid.UUID, amount int64) (*domain.EmployerAccount, error)
	Slash(ctx context.Context, id uuid.UUID, amount int64, reason string) (*domain.EmployerAccount, error)
	CurrentReputation(ctx context.Context, id uuid.UUID) (int64, error)
}

// RegisterEmployerRequest holds validated input for employer registration.
type RegisterEmployerRequest struct {
	Name        string
	PubKey      []byte // commitment is derived via the CommitmentScheme
	StakeAmount int64
}

// HashService handles password hashing (Argon2id).
type HashService interface {
	Hash(password string) (string, error)
	Verify(password string, hash string) (bool, error)
}

// TokenService handles JWT token operations for the operator surface.
type TokenService interface {
	Generate(operatorID uuid.UUID, role domain.OperatorRole) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	OperatorID uuid.UUID
	Role       domain.OperatorRole
}

// AuthService defines operator authentication.
type AuthService interface {
	Register(ctx context.Context, req RegisterOperatorRequest) (*domain.Operator, error)
	Login(ctx context.Context, username, password string) (string, time.Time, error) // token, expiry, error
}

// RegisterOperatorRequest holds input for operator registration. Registration
// always creates PROVIDER-role operators; admin accounts are provisioned out
// of band.
type RegisterOperatorRequest struct {
	Username string
	Password string
}
