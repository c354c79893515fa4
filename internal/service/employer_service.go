package service

import (
	"context"
	"fmt"
	"time"

	"zkwage-settlement/config"
	"zkwage-settlement/internal/core/domain"
	"zkwage-settlement/internal/core/ports"
	"zkwage-settlement/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// EmployerServiceImpl implements ports.EmployerService: the trust store of
// staked, reputation-scored employer accounts backing wage claims.
type EmployerServiceImpl struct {
	employerRepo ports.EmployerRepository
	transactor   ports.DBTransactor
	commitments  ports.CommitmentScheme
	decay        ports.DecayModel
	events       ports.EventPublisher
	cfg          config.EmployerConfig
	log          zerolog.Logger

	now func() time.Time
}

// NewEmployerService creates a new EmployerServiceImpl.
func NewEmployerService(
	employerRepo ports.EmployerRepository,
	transactor ports.DBTransactor,
	commitments ports.CommitmentScheme,
	decay ports.DecayModel,
	events ports.EventPublisher,
	cfg config.EmployerConfig,
	log zerolog.Logger,
) *EmployerServiceImpl {
	return &EmployerServiceImpl{
		employerRepo: employerRepo,
		transactor:   transactor,
		commitments:  commitments,
		decay:        decay,
		events:       events,
		cfg:          cfg,
		log:          log,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// Register creates a new employer account. The account starts off the
// whitelist with the default reputation score; whitelisting is a separate
// admin action.
func (s *EmployerServiceImpl) Register(ctx context.Context, req ports.RegisterEmployerRequest) (*domain.EmployerAccount, error) {
	if req.Name == "" {
		return nil, apperror.Validation("employer name is required")
	}
	if len(req.PubKey) == 0 {
		return nil, apperror.Validation("employer public key is required")
	}
	if req.StakeAmount < s.cfg.MinStake {
		return nil, apperror.ErrInsufficientStake()
	}

	commitment, err := s.commitments.Commit(req.PubKey)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("derive commitment: %w", err))
	}

	existing, err := s.employerRepo.GetByCommitment(ctx, commitment)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("check commitment: %w", err))
	}
	if existing != nil {
		return nil, apperror.ErrAlreadyRegistered()
	}

	now := s.now()
	employer := &domain.EmployerAccount{
		ID:               uuid.New(),
		Name:             req.Name,
		PubKeyCommitment: commitment,
		StakeAmount:      req.StakeAmount,
		ReputationScore:  s.cfg.DefaultScore,
		IsWhitelisted:    false,
		RegisteredAt:     now,
		LastActivityAt:   now,
		StakeLockUntil:   now.Add(s.cfg.StakeLockPeriod),
		UpdatedAt:        now,
	}

	if err := s.employerRepo.Create(ctx, employer); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create employer: %w", err))
	}

	s.events.Publish(ctx, domain.EventEmployerRegistered, map[string]interface{}{
		"employer_id": employer.ID,
		"name":        employer.Name,
		"commitment":  employer.PubKeyCommitment,
		"stake":       employer.StakeAmount,
	})

	s.log.Info().
		Str("employer_id", employer.ID.String()).
		Str("commitment", commitment).
		Int64("stake", req.StakeAmount).
		Msg("employer registered")

	return employer, nil
}

// Get returns an employer account by ID.
func (s *EmployerServiceImpl) Get(ctx context.Context, id uuid.UUID) (*domain.EmployerAccount, error) {
	employer, err := s.employerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get employer: %w", err))
	}
	if employer == nil {
		return nil, apperror.ErrEmployerNotFound()
	}
	return employer, nil
}

// ResolveCommitment maps a claim's employer commitment to the registered
// account. (nil, nil) means no account carries that commitment.
func (s *EmployerServiceImpl) ResolveCommitment(ctx context.Context, commitment string) (*domain.EmployerAccount, error) {
	employer, err := s.employerRepo.GetByCommitment(ctx, commitment)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("resolve commitment: %w", err))
	}
	return employer, nil
}

// RecordActivity restarts the employer's inactivity-decay clock without
// changing the account otherwise. The settlement engine calls this after
// every settled claim; a claiming employer is an active employer.
func (s *EmployerServiceImpl) RecordActivity(ctx context.Context, id uuid.UUID) error {
	return s.inEmployerTx(ctx, id, func(pgx.Tx, *domain.EmployerAccount) error { return nil })
}

// SetWhitelist flips an employer's whitelist flag. Enabling requires the
// stake to still be at or above the minimum.
func (s *EmployerServiceImpl) SetWhitelist(ctx context.Context, id uuid.UUID, whitelisted bool) (*domain.EmployerAccount, error) {
	var out *domain.EmployerAccount
	err := s.inEmployerTx(ctx, id, func(tx pgx.Tx, e *domain.EmployerAccount) error {
		if whitelisted && e.StakeAmount < s.cfg.MinStake {
			return apperror.ErrInsufficientStake()
		}
		e.IsWhitelisted = whitelisted
		out = e
		return nil
	})
	if err != nil {
		return nil, err
	}

	if whitelisted {
		s.events.Publish(ctx, domain.EventEmployerWhitelisted, map[string]interface{}{
			"employer_id": id,
		})
	}

	s.log.Info().
		Str("employer_id", id.String()).
		Bool("whitelisted", whitelisted).
		Msg("employer whitelist updated")

	return out, nil
}

// IncreaseStake adds to an employer's stake and restarts the lock window.
func (s *EmployerServiceImpl) IncreaseStake(ctx context.Context, id uuid.UUID, amount int64) (*domain.EmployerAccount, error) {
	if amount <= 0 {
		return nil, apperror.Validation("stake amount must be positive")
	}

	var out *domain.EmployerAccount
	err := s.inEmployerTx(ctx, id, func(tx pgx.Tx, e *domain.EmployerAccount) error {
		e.StakeAmount += amount
		e.StakeLockUntil = s.now().Add(s.cfg.StakeLockPeriod)
		out = e
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishStakeChange(ctx, out, amount)
	return out, nil
}

// DecreaseStake withdraws stake after the lock period. Partial withdrawals
// may not leave the stake strictly between zero and the minimum; a full
// withdrawal is always allowed and removes the employer from the whitelist.
func (s *EmployerServiceImpl) DecreaseStake(ctx context.Context, id uuid.UUID, amount int64) (*domain.EmployerAccount, error) {
	if amount <= 0 {
		return nil, apperror.Validation("stake amount must be positive")
	}

	var out *domain.EmployerAccount
	err := s.inEmployerTx(ctx, id, func(tx pgx.Tx, e *domain.EmployerAccount) error {
		if e.StakeLocked(s.now()) {
			return apperror.ErrStakeLocked()
		}
		if amount > e.StakeAmount {
			return apperror.ErrExceedsStake()
		}
		remaining := e.StakeAmount - amount
		if remaining > 0 && remaining < s.cfg.MinStake {
			return apperror.ErrBelowMinimumStake()
		}
		e.StakeAmount = remaining
		if remaining < s.cfg.MinStake {
			e.IsWhitelisted = false
		}
		out = e
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishStakeChange(ctx, out, -amount)
	return out, nil
}

// Slash confiscates stake from a misbehaving employer and docks reputation
// in proportion to the slashed fraction. Slashing ignores the lock period.
func (s *EmployerServiceImpl) Slash(ctx context.Context, id uuid.UUID, amount int64, reason string) (*domain.EmployerAccount, error) {
	if amount <= 0 {
		return nil, apperror.Validation("slash amount must be positive")
	}

	var out *domain.EmployerAccount
	err := s.inEmployerTx(ctx, id, func(tx pgx.Tx, e *domain.EmployerAccount) error {
		if amount > e.StakeAmount {
			return apperror.ErrExceedsStake()
		}
		// Reputation penalty is proportional to the slashed fraction,
		// scaled so a full slash costs 100 points.
		penalty := amount * 100 / e.StakeAmount
		e.StakeAmount -= amount
		if score := e.ReputationScore - penalty; score > 0 {
			e.ReputationScore = score
		} else {
			e.ReputationScore = 0
		}
		if e.StakeAmount < s.cfg.MinStake {
			e.IsWhitelisted = false
		}
		out = e
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.events.Publish(ctx, domain.EventEmployerSlashed, map[string]interface{}{
		"employer_id": id,
		"amount":      amount,
		"reason":      reason,
	})

	s.log.Warn().
		Str("employer_id", id.String()).
		Int64("amount", amount).
		Str("reason", reason).
		Msg("employer slashed")

	return out, nil
}

// CurrentReputation returns the decay-adjusted reputation at read time. The
// stored score is untouched; decay is applied on the way out.
func (s *EmployerServiceImpl) CurrentReputation(ctx context.Context, id uuid.UUID) (int64, error) {
	employer, err := s.Get(ctx, id)
	if err != nil {
		return 0, err
	}
	return s.decay.Decayed(employer.ReputationScore, s.now().Sub(employer.LastActivityAt)), nil
}

func (s *EmployerServiceImpl) publishStakeChange(ctx context.Context, e *domain.EmployerAccount, delta int64) {
	s.events.Publish(ctx, domain.EventStakeChanged, map[string]interface{}{
		"employer_id": e.ID,
		"delta":       delta,
		"stake":       e.StakeAmount,
	})

	s.log.Info().
		Str("employer_id", e.ID.String()).
		Int64("delta", delta).
		Int64("stake", e.StakeAmount).
		Msg("employer stake changed")
}

// inEmployerTx runs fn against the row-locked employer account and persists
// the mutated account on success.
func (s *EmployerServiceImpl) inEmployerTx(ctx context.Context, id uuid.UUID, fn func(tx pgx.Tx, e *domain.EmployerAccount) error) error {
	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	employer, err := s.employerRepo.GetByIDForUpdate(ctx, tx, id)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("lock employer: %w", err))
	}
	if employer == nil {
		return apperror.ErrEmployerNotFound()
	}

	if err := fn(tx, employer); err != nil {
		return err
	}

	// Every successful mutation counts as employer activity and restarts
	// the reputation decay clock.
	now := s.now()
	employer.LastActivityAt = now
	employer.UpdatedAt = now
	if err := s.employerRepo.Update(ctx, tx, employer); err != nil {
		return apperror.InternalError(fmt.Errorf("update employer: %w", err))
	}

	if err := tx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}
	return nil
}

var _ ports.EmployerService = (*EmployerServiceImpl)(nil)
