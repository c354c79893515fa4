package service

import (
	"context"
	"testing"
	"time"

	"zkwage-settlement/config"
	"zkwage-settlement/internal/core/domain"
	"zkwage-settlement/internal/core/ports"
	"zkwage-settlement/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type employerTestDeps struct {
	svc          *EmployerServiceImpl
	employerRepo *mocks.MockEmployerRepository
	transactor   *mocks.MockDBTransactor
	commitments  *mocks.MockCommitmentScheme
	decay        *mocks.MockDecayModel
	events       *mocks.MockEventPublisher
	ctrl         *gomock.Controller
}

var testEmployerConfig = config.EmployerConfig{
	MinStake:        5_000,
	DefaultScore:    500,
	DecayPerDay:     1,
	StakeLockPeriod: 720 * time.Hour,
}

func setupEmployerService(t *testing.T) *employerTestDeps {
	ctrl := gomock.NewController(t)
	d := &employerTestDeps{
		employerRepo: mocks.NewMockEmployerRepository(ctrl),
		transactor:   mocks.NewMockDBTransactor(ctrl),
		commitments:  mocks.NewMockCommitmentScheme(ctrl),
		decay:        mocks.NewMockDecayModel(ctrl),
		events:       mocks.NewMockEventPublisher(ctrl),
		ctrl:         ctrl,
	}
	d.svc = NewEmployerService(
		d.employerRepo, d.transactor, d.commitments,
		d.decay, d.events, testEmployerConfig, zerolog.Nop(),
	)
	return d
}

func (d *employerTestDeps) freeze() time.Time {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	d.svc.now = func() time.Time { return now }
	return now
}

// ==================== Register Tests ====================

func TestEmployerService_Register_Success(t *testing.T) {
	d := setupEmployerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	now := d.freeze()
	pubKey := []byte("employer-pubkey-bytes")

	d.commitments.EXPECT().Commit(pubKey).Return("0xabc123", nil)
	d.employerRepo.EXPECT().GetByCommitment(ctx, "0xabc123").Return(nil, nil)
	d.employerRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, e *domain.EmployerAccount) error {
			assert.Equal(t, "0xabc123", e.PubKeyCommitment)
			assert.Equal(t, int64(500), e.ReputationScore)
			assert.False(t, e.IsWhitelisted)
			assert.Equal(t, now.Add(720*time.Hour), e.StakeLockUntil)
			return nil
		})
	d.events.EXPECT().Publish(ctx, domain.EventEmployerRegistered, gomock.Any())

	employer, err := d.svc.Register(ctx, ports.RegisterEmployerRequest{
		Name:        "Acme Corp",
		PubKey:      pubKey,
		StakeAmount: 10_000,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10_000), employer.StakeAmount)
	assert.False(t, employer.IsWhitelisted)
}

func TestEmployerService_Register_BelowMinStake(t *testing.T) {
	d := setupEmployerService(t)
	defer d.ctrl.Finish()

	_, err := d.svc.Register(context.Background(), ports.RegisterEmployerRequest{
		Name:        "Acme Corp",
		PubKey:      []byte("pk"),
		StakeAmount: 4_999,
	})
	assertAppError(t, err, "EMP_002")
}

func TestEmployerService_Register_DuplicateCommitment(t *testing.T) {
	d := setupEmployerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.freeze()
	pubKey := []byte("pk")

	d.commitments.EXPECT().Commit(pubKey).Return("0xabc123", nil)
	d.employerRepo.EXPECT().GetByCommitment(ctx, "0xabc123").Return(&domain.EmployerAccount{ID: uuid.New()}, nil)

	_, err := d.svc.Register(ctx, ports.RegisterEmployerRequest{
		Name:        "Acme Corp",
		PubKey:      pubKey,
		StakeAmount: 10_000,
	})
	assertAppError(t, err, "EMP_001")
}

// ==================== Whitelist Tests ====================

func TestEmployerService_SetWhitelist_Enable(t *testing.T) {
	d := setupEmployerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.freeze()
	id := uuid.New()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.employerRepo.EXPECT().GetByIDForUpdate(ctx, tx, id).Return(&domain.EmployerAccount{
		ID:          id,
		StakeAmount: 10_000,
	}, nil)
	d.employerRepo.EXPECT().Update(ctx, tx, gomock.Any()).Return(nil)
	d.events.EXPECT().Publish(ctx, domain.EventEmployerWhitelisted, gomock.Any())

	employer, err := d.svc.SetWhitelist(ctx, id, true)
	require.NoError(t, err)
	assert.True(t, employer.IsWhitelisted)
}

func TestEmployerService_SetWhitelist_EnableBelowMinStake(t *testing.T) {
	d := setupEmployerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.freeze()
	id := uuid.New()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.employerRepo.EXPECT().GetByIDForUpdate(ctx, tx, id).Return(&domain.EmployerAccount{
		ID:          id,
		StakeAmount: 3_000,
	}, nil)

	_, err := d.svc.SetWhitelist(ctx, id, true)
	assertAppError(t, err, "EMP_002")
}

func TestEmployerService_SetWhitelist_NotFound(t *testing.T) {
	d := setupEmployerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.freeze()
	id := uuid.New()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.employerRepo.EXPECT().GetByIDForUpdate(ctx, tx, id).Return(nil, nil)

	_, err := d.svc.SetWhitelist(ctx, id, true)
	assertAppError(t, err, "CLM_004")
}

// ==================== Stake Tests ====================

func TestEmployerService_DecreaseStake_WhileLocked(t *testing.T) {
	d := setupEmployerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	now := d.freeze()
	id := uuid.New()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.employerRepo.EXPECT().GetByIDForUpdate(ctx, tx, id).Return(&domain.EmployerAccount{
		ID:             id,
		StakeAmount:    10_000,
		StakeLockUntil: now.Add(time.Hour),
	}, nil)

	_, err := d.svc.DecreaseStake(ctx, id, 1_000)
	assertAppError(t, err, "EMP_003")
}

func TestEmployerService_DecreaseStake_LeavesDustStake(t *testing.T) {
	d := setupEmployerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	now := d.freeze()
	id := uuid.New()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.employerRepo.EXPECT().GetByIDForUpdate(ctx, tx, id).Return(&domain.EmployerAccount{
		ID:             id,
		StakeAmount:    10_000,
		StakeLockUntil: now.Add(-time.Hour),
	}, nil)

	// 10000 - 7000 = 3000, below the 5000 minimum but not zero.
	_, err := d.svc.DecreaseStake(ctx, id, 7_000)
	assertAppError(t, err, "EMP_004")
}

func TestEmployerService_DecreaseStake_FullExitUnwhitelists(t *testing.T) {
	d := setupEmployerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	now := d.freeze()
	id := uuid.New()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.employerRepo.EXPECT().GetByIDForUpdate(ctx, tx, id).Return(&domain.EmployerAccount{
		ID:             id,
		StakeAmount:    10_000,
		IsWhitelisted:  true,
		StakeLockUntil: now.Add(-time.Hour),
	}, nil)
	d.employerRepo.EXPECT().Update(ctx, tx, gomock.Any()).Return(nil)
	d.events.EXPECT().Publish(ctx, domain.EventStakeChanged, gomock.Any())

	employer, err := d.svc.DecreaseStake(ctx, id, 10_000)
	require.NoError(t, err)
	assert.Equal(t, int64(0), employer.StakeAmount)
	assert.False(t, employer.IsWhitelisted)
}

func TestEmployerService_IncreaseStake_RestartsLock(t *testing.T) {
	d := setupEmployerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	now := d.freeze()
	id := uuid.New()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.employerRepo.EXPECT().GetByIDForUpdate(ctx, tx, id).Return(&domain.EmployerAccount{
		ID:             id,
		StakeAmount:    10_000,
		StakeLockUntil: now.Add(-time.Hour),
	}, nil)
	d.employerRepo.EXPECT().Update(ctx, tx, gomock.Any()).Return(nil)
	d.events.EXPECT().Publish(ctx, domain.EventStakeChanged, gomock.Any())

	employer, err := d.svc.IncreaseStake(ctx, id, 5_000)
	require.NoError(t, err)
	assert.Equal(t, int64(15_000), employer.StakeAmount)
	assert.Equal(t, now.Add(720*time.Hour), employer.StakeLockUntil)
}

func TestEmployerService_IncreaseStake_RestartsDecayClock(t *testing.T) {
	d := setupEmployerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	now := d.freeze()
	id := uuid.New()
	tx := &mockTx{}
	stale := now.Add(-40 * 24 * time.Hour)

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.employerRepo.EXPECT().GetByIDForUpdate(ctx, tx, id).Return(&domain.EmployerAccount{
		ID:             id,
		StakeAmount:    10_000,
		LastActivityAt: stale,
	}, nil)
	d.employerRepo.EXPECT().Update(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, e *domain.EmployerAccount) error {
			assert.Equal(t, now, e.LastActivityAt,
				"a stake change is activity and must restart the decay clock")
			return nil
		})
	d.events.EXPECT().Publish(ctx, domain.EventStakeChanged, gomock.Any())

	_, err := d.svc.IncreaseStake(ctx, id, 5_000)
	require.NoError(t, err)
}

func TestEmployerService_RecordActivity_AdvancesClock(t *testing.T) {
	d := setupEmployerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	now := d.freeze()
	id := uuid.New()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.employerRepo.EXPECT().GetByIDForUpdate(ctx, tx, id).Return(&domain.EmployerAccount{
		ID:              id,
		StakeAmount:     10_000,
		ReputationScore: 500,
		LastActivityAt:  now.Add(-90 * 24 * time.Hour),
	}, nil)
	d.employerRepo.EXPECT().Update(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, e *domain.EmployerAccount) error {
			assert.Equal(t, now, e.LastActivityAt)
			assert.Equal(t, int64(500), e.ReputationScore, "stored score stays untouched")
			assert.Equal(t, int64(10_000), e.StakeAmount)
			return nil
		})

	err := d.svc.RecordActivity(ctx, id)
	require.NoError(t, err)
}

// ==================== Slash Tests ====================

func TestEmployerService_Slash_ProportionalPenalty(t *testing.T) {
	d := setupEmployerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	now := d.freeze()
	id := uuid.New()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.employerRepo.EXPECT().GetByIDForUpdate(ctx, tx, id).Return(&domain.EmployerAccount{
		ID:              id,
		StakeAmount:     10_000,
		ReputationScore: 500,
		IsWhitelisted:   true,
		StakeLockUntil:  now.Add(time.Hour), // slashing ignores the lock
	}, nil)
	d.employerRepo.EXPECT().Update(ctx, tx, gomock.Any()).Return(nil)
	d.events.EXPECT().Publish(ctx, domain.EventEmployerSlashed, gomock.Any())

	// Slashing half the stake costs 50 reputation points.
	employer, err := d.svc.Slash(ctx, id, 5_000, "fraudulent attestation")
	require.NoError(t, err)
	assert.Equal(t, int64(5_000), employer.StakeAmount)
	assert.Equal(t, int64(450), employer.ReputationScore)
	assert.True(t, employer.IsWhitelisted)
}

func TestEmployerService_Slash_BelowMinUnwhitelists(t *testing.T) {
	d := setupEmployerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.freeze()
	id := uuid.New()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.employerRepo.EXPECT().GetByIDForUpdate(ctx, tx, id).Return(&domain.EmployerAccount{
		ID:              id,
		StakeAmount:     6_000,
		ReputationScore: 500,
		IsWhitelisted:   true,
	}, nil)
	d.employerRepo.EXPECT().Update(ctx, tx, gomock.Any()).Return(nil)
	d.events.EXPECT().Publish(ctx, domain.EventEmployerSlashed, gomock.Any())

	employer, err := d.svc.Slash(ctx, id, 2_000, "missed repayment")
	require.NoError(t, err)
	assert.Equal(t, int64(4_000), employer.StakeAmount)
	assert.False(t, employer.IsWhitelisted)
}

func TestEmployerService_Slash_ExceedsStake(t *testing.T) {
	d := setupEmployerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.freeze()
	id := uuid.New()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.employerRepo.EXPECT().GetByIDForUpdate(ctx, tx, id).Return(&domain.EmployerAccount{
		ID:          id,
		StakeAmount: 1_000,
	}, nil)

	_, err := d.svc.Slash(ctx, id, 2_000, "test")
	assertAppError(t, err, "EMP_005")
}

// ==================== Reputation Tests ====================

func TestEmployerService_CurrentReputation_AppliesDecay(t *testing.T) {
	d := setupEmployerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	now := d.freeze()
	id := uuid.New()
	lastActivity := now.Add(-10 * 24 * time.Hour)

	d.employerRepo.EXPECT().GetByID(ctx, id).Return(&domain.EmployerAccount{
		ID:              id,
		ReputationScore: 500,
		LastActivityAt:  lastActivity,
	}, nil)
	d.decay.EXPECT().Decayed(int64(500), 10*24*time.Hour).Return(int64(490))

	score, err := d.svc.CurrentReputation(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(490), score)
}

func TestEmployerService_ResolveCommitment_Miss(t *testing.T) {
	d := setupEmployerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.employerRepo.EXPECT().GetByCommitment(ctx, "0xmissing").Return(nil, nil)

	employer, err := d.svc.ResolveCommitment(ctx, "0xmissing")
	require.NoError(t, err)
	assert.Nil(t, employer)
}
