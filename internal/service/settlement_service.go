package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"zkwage-settlement/config"
	"zkwage-settlement/internal/core/domain"
	"zkwage-settlement/internal/core/ports"
	"zkwage-settlement/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// verifierSlot wraps the active proof verifier so it can sit behind an
// atomic pointer and be rotated without stalling in-flight claims.
type verifierSlot struct {
	v ports.ProofVerifier
}

// SettlementServiceImpl implements ports.SettlementService. A claim moves
// through validation, replay check, proof verification, employer resolution
// and disbursement before the nullifier commit makes the payout final. The
// commit is the sole serialization point: everything before it is safe to
// race, and a lost race is compensated by reversing the disbursement.
type SettlementServiceImpl struct {
	nullifierRepo  ports.NullifierRepository
	nullifierCache ports.NullifierCache
	employers      ports.EmployerDirectory
	pool           ports.Disburser
	events         ports.EventPublisher
	cfg            config.SettlementConfig
	verifyTimeout  time.Duration
	log            zerolog.Logger

	verifier atomic.Pointer[verifierSlot]
	paused   atomic.Bool

	totalClaims       atomic.Int64
	totalWagesClaimed atomic.Int64
	totalRejected     atomic.Int64

	now func() time.Time
}

// NewSettlementService creates a new SettlementServiceImpl.
func NewSettlementService(
	nullifierRepo ports.NullifierRepository,
	nullifierCache ports.NullifierCache,
	employers ports.EmployerDirectory,
	pool ports.Disburser,
	verifier ports.ProofVerifier,
	events ports.EventPublisher,
	cfg config.SettlementConfig,
	verifyTimeout time.Duration,
	log zerolog.Logger,
) *SettlementServiceImpl {
	s := &SettlementServiceImpl{
		nullifierRepo:  nullifierRepo,
		nullifierCache: nullifierCache,
		employers:      employers,
		pool:           pool,
		events:         events,
		cfg:            cfg,
		verifyTimeout:  verifyTimeout,
		log:            log,
		now:            func() time.Time { return time.Now().UTC() },
	}
	s.verifier.Store(&verifierSlot{v: verifier})
	return s
}

// ClaimWages settles a single wage claim and returns the payout receipt.
func (s *SettlementServiceImpl) ClaimWages(ctx context.Context, claim domain.WageClaim) (*domain.ClaimReceipt, error) {
	if s.paused.Load() {
		return nil, apperror.ErrClaimsPaused()
	}

	if err := s.validate(claim); err != nil {
		return nil, s.reject(ctx, claim, err)
	}

	token := claim.PublicInputs.NullifierToken

	// Replay fast path: the Redis cache is advisory, the ledger decides.
	if seen, err := s.nullifierCache.Seen(ctx, token); err != nil {
		s.log.Warn().Err(err).Msg("nullifier cache unavailable, falling through to ledger")
	} else if seen {
		return nil, s.reject(ctx, claim, apperror.ErrAlreadyClaimed())
	}

	used, err := s.nullifierRepo.IsUsed(ctx, token)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("check nullifier: %w", err))
	}
	if used {
		return nil, s.reject(ctx, claim, apperror.ErrAlreadyClaimed())
	}

	if err := s.verifyProof(ctx, claim); err != nil {
		return nil, s.reject(ctx, claim, err)
	}

	employer, err := s.employers.ResolveCommitment(ctx, claim.PublicInputs.EmployerCommitment)
	if err != nil {
		return nil, err
	}
	if employer == nil {
		return nil, s.reject(ctx, claim, apperror.ErrEmployerNotFound())
	}
	if !employer.IsWhitelisted {
		return nil, s.reject(ctx, claim, apperror.ErrEmployerNotWhitelisted())
	}

	disb, err := s.pool.Disburse(ctx, claim.PublicInputs.Amount)
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			return nil, s.reject(ctx, claim, err)
		}
		return nil, err
	}

	claimID := uuid.New()
	now := s.now()
	rec := &domain.NullifierRecord{
		Token:        token,
		ClaimID:      claimID,
		PayoutAmount: disb.Net,
		CommittedAt:  now,
	}
	if err := s.nullifierRepo.Commit(ctx, rec); err != nil {
		// A concurrent claim on the same nullifier won the insert. The
		// disbursement must be unwound exactly; the claimant gets the
		// same answer as any other replay.
		if revErr := s.pool.ReverseDisbursement(ctx, disb); revErr != nil {
			s.log.Error().Err(revErr).
				Str("nullifier", token).
				Msg("failed to reverse disbursement after lost nullifier race")
		}
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.Code == "CLM_002" {
			return nil, s.reject(ctx, claim, err)
		}
		return nil, apperror.InternalError(fmt.Errorf("commit nullifier: %w", err))
	}

	if err := s.nullifierCache.MarkUsed(ctx, token); err != nil {
		s.log.Warn().Err(err).Str("nullifier", token).Msg("failed to cache nullifier")
	}

	if err := s.employers.RecordActivity(ctx, employer.ID); err != nil {
		s.log.Warn().Err(err).
			Str("employer_id", employer.ID.String()).
			Msg("failed to record employer activity")
	}

	s.totalClaims.Add(1)
	s.totalWagesClaimed.Add(claim.PublicInputs.Amount)

	receipt := &domain.ClaimReceipt{
		ClaimID:            claimID,
		NullifierToken:     token,
		EmployerID:         employer.ID,
		EmployerCommitment: employer.PubKeyCommitment,
		GrossAmount:        disb.Gross,
		Fee:                disb.Fee,
		NetAmount:          disb.Net,
		SettledAt:          now,
	}

	s.events.Publish(ctx, domain.EventClaimSettled, receipt)

	s.log.Info().
		Str("claim_id", claimID.String()).
		Str("employer_id", employer.ID.String()).
		Int64("gross", disb.Gross).
		Int64("net", disb.Net).
		Msg("wage claim settled")

	return receipt, nil
}

// Stats returns the engine's aggregate counters.
func (s *SettlementServiceImpl) Stats() ports.SettlementStats {
	return ports.SettlementStats{
		TotalClaims:       s.totalClaims.Load(),
		TotalWagesClaimed: s.totalWagesClaimed.Load(),
		TotalRejected:     s.totalRejected.Load(),
	}
}

// SetPaused flips the engine-wide pause switch. Paused claims are refused
// before any validation work.
func (s *SettlementServiceImpl) SetPaused(paused bool) {
	s.paused.Store(paused)
	s.log.Warn().Bool("paused", paused).Msg("claim processing pause switch changed")
}

// Paused reports the pause switch.
func (s *SettlementServiceImpl) Paused() bool {
	return s.paused.Load()
}

// RotateVerifier swaps in a new proof verifier. In-flight claims finish
// against the verifier they started with.
func (s *SettlementServiceImpl) RotateVerifier(v ports.ProofVerifier) {
	s.verifier.Store(&verifierSlot{v: v})
	s.log.Info().Msg("proof verifier rotated")
}

func (s *SettlementServiceImpl) validate(claim domain.WageClaim) error {
	if len(claim.Proof) == 0 {
		return apperror.ErrInvalidInput("proof is required")
	}
	if token := claim.PublicInputs.NullifierToken; token == "" || zeroHex(token) {
		return apperror.ErrInvalidInput("nullifier token must be a non-zero field element")
	}
	if commitment := claim.PublicInputs.EmployerCommitment; commitment == "" || zeroHex(commitment) {
		return apperror.ErrInvalidInput("employer commitment must be a non-zero field element")
	}
	amount := claim.PublicInputs.Amount
	if amount < s.cfg.MinWage || amount > s.cfg.MaxWage {
		return apperror.ErrInvalidInput(fmt.Sprintf(
			"amount must be between %d and %d", s.cfg.MinWage, s.cfg.MaxWage))
	}
	return nil
}

// zeroHex reports whether s encodes the zero field element ("0x0", "0000").
func zeroHex(s string) bool {
	s = strings.TrimPrefix(s, "0x")
	if s == "" {
		return false
	}
	for _, c := range s {
		if c != '0' {
			return false
		}
	}
	return true
}

// verifyProof runs the active verifier under the configured deadline. A
// verifier timeout or transport failure is indistinguishable from a bad
// proof to the claimant: the engine fails closed.
func (s *SettlementServiceImpl) verifyProof(ctx context.Context, claim domain.WageClaim) error {
	vctx := ctx
	if s.verifyTimeout > 0 {
		var cancel context.CancelFunc
		vctx, cancel = context.WithTimeout(ctx, s.verifyTimeout)
		defer cancel()
	}

	ok, err := s.verifier.Load().v.Verify(vctx, claim.Proof, claim.PublicInputs)
	if err != nil {
		s.log.Warn().Err(err).
			Str("nullifier", claim.PublicInputs.NullifierToken).
			Msg("proof verification errored")
		return apperror.ErrInvalidProof(err)
	}
	if !ok {
		return apperror.ErrInvalidProof(nil)
	}
	return nil
}

// reject counts and publishes a claim rejection, then returns err unchanged.
func (s *SettlementServiceImpl) reject(ctx context.Context, claim domain.WageClaim, err error) error {
	s.totalRejected.Add(1)

	var code string
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		code = appErr.Code
	}

	s.events.Publish(ctx, domain.EventClaimRejected, map[string]interface{}{
		"nullifier":  claim.PublicInputs.NullifierToken,
		"commitment": claim.PublicInputs.EmployerCommitment,
		"amount":     claim.PublicInputs.Amount,
		"code":       code,
	})

	s.log.Info().
		Str("nullifier", claim.PublicInputs.NullifierToken).
		Str("code", code).
		Msg("wage claim rejected")

	return err
}

var _ ports.SettlementService = (*SettlementServiceImpl)(nil)
