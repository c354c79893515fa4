package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"zkwage-settlement/config"
	"zkwage-settlement/internal/core/domain"
	"zkwage-settlement/internal/core/ports"
	"zkwage-settlement/internal/core/ports/mocks"
	"zkwage-settlement/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testEmployerID = uuid.New()

type settlementTestDeps struct {
	svc            *SettlementServiceImpl
	nullifierRepo  *mocks.MockNullifierRepository
	nullifierCache *mocks.MockNullifierCache
	employers      *mocks.MockEmployerDirectory
	pool           *mocks.MockDisburser
	verifier       *mocks.MockProofVerifier
	events         *mocks.MockEventPublisher
	ctrl           *gomock.Controller
}

var testSettlementConfig = config.SettlementConfig{
	MinWage: 1_000,
	MaxWage: 1_000_000,
}

func setupSettlementService(t *testing.T) *settlementTestDeps {
	ctrl := gomock.NewController(t)
	d := &settlementTestDeps{
		nullifierRepo:  mocks.NewMockNullifierRepository(ctrl),
		nullifierCache: mocks.NewMockNullifierCache(ctrl),
		employers:      mocks.NewMockEmployerDirectory(ctrl),
		pool:           mocks.NewMockDisburser(ctrl),
		verifier:       mocks.NewMockProofVerifier(ctrl),
		events:         mocks.NewMockEventPublisher(ctrl),
		ctrl:           ctrl,
	}
	d.svc = NewSettlementService(
		d.nullifierRepo, d.nullifierCache, d.employers, d.pool,
		d.verifier, d.events, testSettlementConfig, 5*time.Second, zerolog.Nop(),
	)
	return d
}

func testClaim() domain.WageClaim {
	return domain.WageClaim{
		Proof: []byte("groth16-proof-bytes"),
		PublicInputs: domain.PublicInputs{
			NullifierToken:     "nf-abc123",
			Amount:             50_000,
			EmployerCommitment: "0xemployer",
		},
	}
}

func whitelistedEmployer() *domain.EmployerAccount {
	return &domain.EmployerAccount{
		ID:               testEmployerID,
		Name:             "Acme Corp",
		PubKeyCommitment: "0xemployer",
		StakeAmount:      10_000,
		IsWhitelisted:    true,
	}
}

// ==================== ClaimWages Tests ====================

func TestSettlementService_ClaimWages_Success(t *testing.T) {
	d := setupSettlementService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	claim := testClaim()

	d.nullifierCache.EXPECT().Seen(ctx, "nf-abc123").Return(false, nil)
	d.nullifierRepo.EXPECT().IsUsed(ctx, "nf-abc123").Return(false, nil)
	d.verifier.EXPECT().Verify(gomock.Any(), claim.Proof, claim.PublicInputs).Return(true, nil)
	d.employers.EXPECT().ResolveCommitment(ctx, "0xemployer").Return(whitelistedEmployer(), nil)
	d.pool.EXPECT().Disburse(ctx, int64(50_000)).Return(&ports.Disbursement{
		Gross: 50_000, Fee: 50, Net: 49_950,
	}, nil)
	d.nullifierRepo.EXPECT().Commit(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, rec *domain.NullifierRecord) error {
			assert.Equal(t, "nf-abc123", rec.Token)
			assert.Equal(t, int64(49_950), rec.PayoutAmount)
			return nil
		})
	d.nullifierCache.EXPECT().MarkUsed(ctx, "nf-abc123").Return(nil)
	d.employers.EXPECT().RecordActivity(ctx, gomock.Any()).Return(nil)
	d.events.EXPECT().Publish(ctx, domain.EventClaimSettled, gomock.Any())

	receipt, err := d.svc.ClaimWages(ctx, claim)
	require.NoError(t, err)
	assert.Equal(t, int64(50_000), receipt.GrossAmount)
	assert.Equal(t, int64(50), receipt.Fee)
	assert.Equal(t, int64(49_950), receipt.NetAmount)
	assert.Equal(t, "0xemployer", receipt.EmployerCommitment)

	stats := d.svc.Stats()
	assert.Equal(t, int64(1), stats.TotalClaims)
	assert.Equal(t, int64(50_000), stats.TotalWagesClaimed)
	assert.Equal(t, int64(0), stats.TotalRejected)
}

func TestSettlementService_ClaimWages_ValidationFailures(t *testing.T) {
	d := setupSettlementService(t)
	defer d.ctrl.Finish()

	d.events.EXPECT().Publish(gomock.Any(), domain.EventClaimRejected, gomock.Any()).AnyTimes()

	tests := []struct {
		name   string
		mutate func(*domain.WageClaim)
	}{
		{"missing proof", func(c *domain.WageClaim) { c.Proof = nil }},
		{"missing nullifier", func(c *domain.WageClaim) { c.PublicInputs.NullifierToken = "" }},
		{"zero nullifier", func(c *domain.WageClaim) { c.PublicInputs.NullifierToken = "0x0" }},
		{"missing commitment", func(c *domain.WageClaim) { c.PublicInputs.EmployerCommitment = "" }},
		{"zero commitment", func(c *domain.WageClaim) { c.PublicInputs.EmployerCommitment = "0x000000" }},
		{"amount below minimum", func(c *domain.WageClaim) { c.PublicInputs.Amount = 999 }},
		{"amount above maximum", func(c *domain.WageClaim) { c.PublicInputs.Amount = 1_000_001 }},
		{"zero amount", func(c *domain.WageClaim) { c.PublicInputs.Amount = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claim := testClaim()
			tt.mutate(&claim)
			_, err := d.svc.ClaimWages(context.Background(), claim)
			assertAppError(t, err, "CLM_001")
		})
	}

	assert.Equal(t, int64(len(tests)), d.svc.Stats().TotalRejected)
}

func TestSettlementService_ClaimWages_ReplayFromCache(t *testing.T) {
	d := setupSettlementService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	claim := testClaim()

	d.nullifierCache.EXPECT().Seen(ctx, "nf-abc123").Return(true, nil)
	d.events.EXPECT().Publish(ctx, domain.EventClaimRejected, gomock.Any())

	_, err := d.svc.ClaimWages(ctx, claim)
	assertAppError(t, err, "CLM_002")
}

func TestSettlementService_ClaimWages_ReplayFromLedger(t *testing.T) {
	d := setupSettlementService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	claim := testClaim()

	d.nullifierCache.EXPECT().Seen(ctx, "nf-abc123").Return(false, nil)
	d.nullifierRepo.EXPECT().IsUsed(ctx, "nf-abc123").Return(true, nil)
	d.events.EXPECT().Publish(ctx, domain.EventClaimRejected, gomock.Any())

	_, err := d.svc.ClaimWages(ctx, claim)
	assertAppError(t, err, "CLM_002")
}

func TestSettlementService_ClaimWages_CacheFailureFallsThrough(t *testing.T) {
	d := setupSettlementService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	claim := testClaim()

	// Cache down: the ledger still answers and the claim proceeds.
	d.nullifierCache.EXPECT().Seen(ctx, "nf-abc123").Return(false, errors.New("redis down"))
	d.nullifierRepo.EXPECT().IsUsed(ctx, "nf-abc123").Return(false, nil)
	d.verifier.EXPECT().Verify(gomock.Any(), claim.Proof, claim.PublicInputs).Return(true, nil)
	d.employers.EXPECT().ResolveCommitment(ctx, "0xemployer").Return(whitelistedEmployer(), nil)
	d.pool.EXPECT().Disburse(ctx, int64(50_000)).Return(&ports.Disbursement{
		Gross: 50_000, Fee: 50, Net: 49_950,
	}, nil)
	d.nullifierRepo.EXPECT().Commit(ctx, gomock.Any()).Return(nil)
	d.nullifierCache.EXPECT().MarkUsed(ctx, "nf-abc123").Return(errors.New("redis down"))
	d.employers.EXPECT().RecordActivity(ctx, gomock.Any()).Return(nil)
	d.events.EXPECT().Publish(ctx, domain.EventClaimSettled, gomock.Any())

	_, err := d.svc.ClaimWages(ctx, claim)
	require.NoError(t, err)
}

func TestSettlementService_ClaimWages_InvalidProof(t *testing.T) {
	d := setupSettlementService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	claim := testClaim()

	d.nullifierCache.EXPECT().Seen(ctx, "nf-abc123").Return(false, nil)
	d.nullifierRepo.EXPECT().IsUsed(ctx, "nf-abc123").Return(false, nil)
	d.verifier.EXPECT().Verify(gomock.Any(), claim.Proof, claim.PublicInputs).Return(false, nil)
	d.events.EXPECT().Publish(ctx, domain.EventClaimRejected, gomock.Any())

	_, err := d.svc.ClaimWages(ctx, claim)
	assertAppError(t, err, "CLM_003")
}

func TestSettlementService_ClaimWages_VerifierErrorFailsClosed(t *testing.T) {
	d := setupSettlementService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	claim := testClaim()

	d.nullifierCache.EXPECT().Seen(ctx, "nf-abc123").Return(false, nil)
	d.nullifierRepo.EXPECT().IsUsed(ctx, "nf-abc123").Return(false, nil)
	d.verifier.EXPECT().Verify(gomock.Any(), claim.Proof, claim.PublicInputs).
		Return(false, context.DeadlineExceeded)
	d.events.EXPECT().Publish(ctx, domain.EventClaimRejected, gomock.Any())

	// A verifier timeout gets the same rejection as a bad proof.
	_, err := d.svc.ClaimWages(ctx, claim)
	assertAppError(t, err, "CLM_003")
}

func TestSettlementService_ClaimWages_UnknownEmployer(t *testing.T) {
	d := setupSettlementService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	claim := testClaim()

	d.nullifierCache.EXPECT().Seen(ctx, "nf-abc123").Return(false, nil)
	d.nullifierRepo.EXPECT().IsUsed(ctx, "nf-abc123").Return(false, nil)
	d.verifier.EXPECT().Verify(gomock.Any(), claim.Proof, claim.PublicInputs).Return(true, nil)
	d.employers.EXPECT().ResolveCommitment(ctx, "0xemployer").Return(nil, nil)
	d.events.EXPECT().Publish(ctx, domain.EventClaimRejected, gomock.Any())

	_, err := d.svc.ClaimWages(ctx, claim)
	assertAppError(t, err, "CLM_004")
}

func TestSettlementService_ClaimWages_EmployerNotWhitelisted(t *testing.T) {
	d := setupSettlementService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	claim := testClaim()
	employer := whitelistedEmployer()
	employer.IsWhitelisted = false

	d.nullifierCache.EXPECT().Seen(ctx, "nf-abc123").Return(false, nil)
	d.nullifierRepo.EXPECT().IsUsed(ctx, "nf-abc123").Return(false, nil)
	d.verifier.EXPECT().Verify(gomock.Any(), claim.Proof, claim.PublicInputs).Return(true, nil)
	d.employers.EXPECT().ResolveCommitment(ctx, "0xemployer").Return(employer, nil)
	d.events.EXPECT().Publish(ctx, domain.EventClaimRejected, gomock.Any())

	_, err := d.svc.ClaimWages(ctx, claim)
	assertAppError(t, err, "CLM_005")
}

func TestSettlementService_ClaimWages_PoolRefusal(t *testing.T) {
	d := setupSettlementService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	claim := testClaim()

	d.nullifierCache.EXPECT().Seen(ctx, "nf-abc123").Return(false, nil)
	d.nullifierRepo.EXPECT().IsUsed(ctx, "nf-abc123").Return(false, nil)
	d.verifier.EXPECT().Verify(gomock.Any(), claim.Proof, claim.PublicInputs).Return(true, nil)
	d.employers.EXPECT().ResolveCommitment(ctx, "0xemployer").Return(whitelistedEmployer(), nil)
	d.pool.EXPECT().Disburse(ctx, int64(50_000)).Return(nil, apperror.ErrUtilizationExceeded())
	d.events.EXPECT().Publish(ctx, domain.EventClaimRejected, gomock.Any())

	_, err := d.svc.ClaimWages(ctx, claim)
	assertAppError(t, err, "POOL_001")
}

func TestSettlementService_ClaimWages_LostNullifierRaceReversesDisbursement(t *testing.T) {
	d := setupSettlementService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	claim := testClaim()
	disb := &ports.Disbursement{Gross: 50_000, Fee: 50, Net: 49_950}

	d.nullifierCache.EXPECT().Seen(ctx, "nf-abc123").Return(false, nil)
	d.nullifierRepo.EXPECT().IsUsed(ctx, "nf-abc123").Return(false, nil)
	d.verifier.EXPECT().Verify(gomock.Any(), claim.Proof, claim.PublicInputs).Return(true, nil)
	d.employers.EXPECT().ResolveCommitment(ctx, "0xemployer").Return(whitelistedEmployer(), nil)
	d.pool.EXPECT().Disburse(ctx, int64(50_000)).Return(disb, nil)
	// A concurrent claim committed the nullifier first.
	d.nullifierRepo.EXPECT().Commit(ctx, gomock.Any()).Return(apperror.ErrAlreadyClaimed())
	d.pool.EXPECT().ReverseDisbursement(ctx, disb).Return(nil)
	d.events.EXPECT().Publish(ctx, domain.EventClaimRejected, gomock.Any())

	_, err := d.svc.ClaimWages(ctx, claim)
	assertAppError(t, err, "CLM_002")

	stats := d.svc.Stats()
	assert.Equal(t, int64(0), stats.TotalClaims)
	assert.Equal(t, int64(1), stats.TotalRejected)
}

func TestSettlementService_ClaimWages_Paused(t *testing.T) {
	d := setupSettlementService(t)
	defer d.ctrl.Finish()

	d.svc.SetPaused(true)
	require.True(t, d.svc.Paused())

	_, err := d.svc.ClaimWages(context.Background(), testClaim())
	assertAppError(t, err, "CLM_006")

	d.svc.SetPaused(false)
	require.False(t, d.svc.Paused())
}

func TestSettlementService_RotateVerifier(t *testing.T) {
	d := setupSettlementService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	claim := testClaim()
	replacement := mocks.NewMockProofVerifier(d.ctrl)
	d.svc.RotateVerifier(replacement)

	d.nullifierCache.EXPECT().Seen(ctx, "nf-abc123").Return(false, nil)
	d.nullifierRepo.EXPECT().IsUsed(ctx, "nf-abc123").Return(false, nil)
	// Only the replacement verifier is consulted.
	replacement.EXPECT().Verify(gomock.Any(), claim.Proof, claim.PublicInputs).Return(false, nil)
	d.events.EXPECT().Publish(ctx, domain.EventClaimRejected, gomock.Any())

	_, err := d.svc.ClaimWages(ctx, claim)
	assertAppError(t, err, "CLM_003")
}

func assertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, expectedCode, appErr.Code)
}
