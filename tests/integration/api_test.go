package integration

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"zkwage-settlement/config"
	httpHandler "zkwage-settlement/internal/adapter/http/handler"
	redisStorage "zkwage-settlement/internal/adapter/storage/redis"
	"zkwage-settlement/internal/adapter/zk"
	"zkwage-settlement/internal/core/domain"
	"zkwage-settlement/internal/core/ports"
	"zkwage-settlement/internal/service"
	"zkwage-settlement/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp builds the full application stack against in-memory storage:
// miniredis behind the real Redis stores, map-backed postgres repos, and a
// stub proof verifier. The HTTP layer, middleware, handlers, and services
// are the production implementations.

const validProofBytes = "integration-valid-proof"

// stubVerifier accepts exactly validProofBytes and rejects everything else.
// Proof cryptography has its own coverage against real gnark artifacts.
type stubVerifier struct{}

func (stubVerifier) Verify(ctx context.Context, proof []byte, inputs domain.PublicInputs) (bool, error) {
	return string(proof) == validProofBytes, nil
}

type testApp struct {
	server    *httptest.Server
	redis     *miniredis.Miniredis
	operators *inMemoryOperatorRepo
	eventRepo *inMemoryEventRepo
	poolRepo  *inMemoryPoolRepo
	hashSvc   ports.HashService
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)

	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})

	// Redis stores
	nullifierCache := redisStorage.NewNullifierCache(rdb)

	// In-memory repos
	nullifierRepo := newInMemoryNullifierRepo()
	employerRepo := newInMemoryEmployerRepo()
	poolRepo := newInMemoryPoolRepo()
	providerRepo := newInMemoryProviderRepo()
	operatorRepo := newInMemoryOperatorRepo()
	eventRepo := newInMemoryEventRepo()
	transactor := newInMemoryTransactor()

	// Core services with real implementations
	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService("test-jwt-secret-key-32bytes!!", 24*time.Hour, "test-issuer")
	commitments := zk.NewPoseidonCommitment()
	feeModel := service.NewKinkedFeeModel(10, 300, 8000)
	decayModel := service.NewLinearDecay(1)
	log := logger.New("error", false)
	events := service.NewEventService(eventRepo, log)

	poolCfg := config.PoolConfig{
		MaxUtilizationBps:     9500,
		BaseFeeBps:            10,
		MaxFeeBps:             300,
		FeeKinkBps:            8000,
		AnnualYieldBps:        400,
		PerformanceFeeBps:     1000,
		EarlyWithdrawalFeeBps: 50,
		MinLockPeriod:         0, // no lock in integration runs
	}
	employerCfg := config.EmployerConfig{
		MinStake:        5000,
		DefaultScore:    500,
		DecayPerDay:     1,
		StakeLockPeriod: 0,
	}
	settlementCfg := config.SettlementConfig{MinWage: 100, MaxWage: 10_000_000}

	authSvc := service.NewAuthService(operatorRepo, hashSvc, tokenSvc, log)
	poolSvc := service.NewPoolService(poolRepo, providerRepo, transactor, feeModel, events, poolCfg, log)
	employerSvc := service.NewEmployerService(employerRepo, transactor, commitments, decayModel, events, employerCfg, log)
	settlementSvc := service.NewSettlementService(
		nullifierRepo, nullifierCache, employerSvc, poolSvc,
		stubVerifier{}, events, settlementCfg, time.Second, log,
	)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc:       authSvc,
		SettlementSvc: settlementSvc,
		PoolSvc:       poolSvc,
		EmployerSvc:   employerSvc,
		TokenSvc:      tokenSvc,
		NullifierRepo: nullifierRepo,
		EventRepo:     eventRepo,
		VerifierFactory: func(raw []byte) (ports.ProofVerifier, error) {
			return stubVerifier{}, nil
		},
		HealthCheckers: []ports.HealthChecker{redisStorage.NewHealthCheck(rdb)},
		Logger:         log,
	})

	return &testApp{
		server:    httptest.NewServer(router),
		redis:     mr,
		operators: operatorRepo,
		eventRepo: eventRepo,
		poolRepo:  poolRepo,
		hashSvc:   hashSvc,
	}
}

func (a *testApp) close() {
	a.server.Close()
	a.redis.Close()
}

// seedAdmin provisions an ADMIN operator directly in the repo, the way
// production admin accounts are created out of band.
func (a *testApp) seedAdmin(t *testing.T, username, password string) {
	t.Helper()
	hash, err := a.hashSvc.Hash(password)
	require.NoError(t, err)
	require.NoError(t, a.operators.Create(context.Background(), &domain.Operator{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		CreatedAt:    time.Now().UTC(),
	}))
}

func (a *testApp) postJSON(t *testing.T, path, token string, body interface{}) (*http.Response, map[string]interface{}) {
	return a.doJSON(t, http.MethodPost, path, token, body)
}

func (a *testApp) doJSON(t *testing.T, method, path, token string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, a.server.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]interface{}
	_ = json.NewDecoder(resp.Body).Decode(&decoded)
	return resp, decoded
}

func (a *testApp) login(t *testing.T, username, password string) string {
	t.Helper()
	resp, body := a.postJSON(t, "/api/v1/auth/login", "", map[string]string{
		"username": username,
		"password": password,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, "login failed: %v", body)
	data := body["data"].(map[string]interface{})
	return data["token"].(string)
}

// registerEmployer registers and whitelists an employer, returning its id
// and derived commitment.
func (a *testApp) registerEmployer(t *testing.T, adminToken, name, pubKeyHex string, stake int64) (string, string) {
	t.Helper()
	resp, body := a.postJSON(t, "/api/v1/employers", adminToken, map[string]interface{}{
		"name":         name,
		"pub_key":      pubKeyHex,
		"stake_amount": stake,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, "employer registration failed: %v", body)
	data := body["data"].(map[string]interface{})
	id := data["id"].(string)
	commitment := data["pubkey_commitment"].(string)

	resp, body = a.doJSON(t, http.MethodPut, "/api/v1/employers/"+id+"/whitelist", adminToken, map[string]bool{"whitelisted": true})
	require.Equal(t, http.StatusOK, resp.StatusCode, "whitelist failed: %v", body)
	return id, commitment
}

func claimBody(nullifier, commitment string, amount int64) map[string]interface{} {
	return map[string]interface{}{
		"proof":               base64.StdEncoding.EncodeToString([]byte(validProofBytes)),
		"nullifier_token":     nullifier,
		"amount":              amount,
		"employer_commitment": commitment,
	}
}

// --- Integration Tests ---

func TestIntegration_HealthCheck(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	resp, err := http.Get(app.server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
}

func TestIntegration_RegisterAndLogin(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	resp, body := app.postJSON(t, "/api/v1/auth/register", "", map[string]string{
		"username": "provider1",
		"password": "StrongPassword123!",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, "register failed: %v", body)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "PROVIDER", data["role"])

	token := app.login(t, "provider1", "StrongPassword123!")
	assert.NotEmpty(t, token)
}

func TestIntegration_FullClaimFlow(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	app.seedAdmin(t, "admin", "AdminPassword123!")
	adminToken := app.login(t, "admin", "AdminPassword123!")

	// Provider funds the pool
	resp, body := app.postJSON(t, "/api/v1/auth/register", "", map[string]string{
		"username": "lp1", "password": "ProviderPass123!",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	providerToken := app.login(t, "lp1", "ProviderPass123!")

	resp, body = app.postJSON(t, "/api/v1/pool/deposits", providerToken, map[string]int64{"amount": 1_000_000})
	require.Equal(t, http.StatusCreated, resp.StatusCode, "deposit failed: %v", body)

	// Admin registers + whitelists an employer
	_, commitment := app.registerEmployer(t, adminToken, "Acme Corp", "0xdeadbeef01", 10_000)

	// Worker settles a claim (no auth: the proof is the credential)
	resp, body = app.postJSON(t, "/api/v1/claims", "", claimBody("0xabc123", commitment, 50_000))
	require.Equal(t, http.StatusCreated, resp.StatusCode, "claim failed: %v", body)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(50_000), data["gross_amount"])
	gross := int64(data["gross_amount"].(float64))
	fee := int64(data["fee"].(float64))
	net := int64(data["net_amount"].(float64))
	assert.Equal(t, gross-fee, net)

	// Replay of the same nullifier is rejected
	resp, body = app.postJSON(t, "/api/v1/claims", "", claimBody("0xabc123", commitment, 50_000))
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "CLM_002", body["error_code"])

	// Ledger lookup reflects the settled claim
	resp, body = app.doJSON(t, http.MethodGet, "/api/v1/claims/0xabc123", adminToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data = body["data"].(map[string]interface{})
	assert.Equal(t, float64(net), data["payout_amount"])

	// Stats reflect one settled, one rejected
	resp, body = app.doJSON(t, http.MethodGet, "/api/v1/claims/stats", adminToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data = body["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["total_claims"])
	assert.Equal(t, float64(1), data["total_rejected"])

	// Pool carries the disbursement as borrowed
	resp, body = app.doJSON(t, http.MethodGet, "/api/v1/pool", providerToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data = body["data"].(map[string]interface{})
	assert.Equal(t, float64(gross), data["total_borrowed"])
}

func TestIntegration_InvalidProofRejected(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	app.seedAdmin(t, "admin", "AdminPassword123!")
	adminToken := app.login(t, "admin", "AdminPassword123!")

	resp, _ := app.postJSON(t, "/api/v1/auth/register", "", map[string]string{
		"username": "lp1", "password": "ProviderPass123!",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	providerToken := app.login(t, "lp1", "ProviderPass123!")
	resp, _ = app.postJSON(t, "/api/v1/pool/deposits", providerToken, map[string]int64{"amount": 1_000_000})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	_, commitment := app.registerEmployer(t, adminToken, "Acme Corp", "0xdeadbeef02", 10_000)

	body := claimBody("0xbadc1a1b", commitment, 50_000)
	body["proof"] = base64.StdEncoding.EncodeToString([]byte("forged-proof"))

	resp, decoded := app.postJSON(t, "/api/v1/claims", "", body)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "CLM_003", decoded["error_code"])

	// Rejected claim must leave the pool untouched
	resp, decoded = app.doJSON(t, http.MethodGet, "/api/v1/pool", providerToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data := decoded["data"].(map[string]interface{})
	assert.Equal(t, float64(0), data["total_borrowed"])
}

func TestIntegration_UnknownCommitmentRejected(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	resp, body := app.postJSON(t, "/api/v1/claims", "", claimBody("0xfeed01", "0x123456", 50_000))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "CLM_004", body["error_code"])
}

func TestIntegration_ProviderCannotUseAdminSurface(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	resp, _ := app.postJSON(t, "/api/v1/auth/register", "", map[string]string{
		"username": "lp1", "password": "ProviderPass123!",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	providerToken := app.login(t, "lp1", "ProviderPass123!")

	resp, body := app.postJSON(t, "/api/v1/employers", providerToken, map[string]interface{}{
		"name": "Rogue Corp", "pub_key": "0xdead", "stake_amount": int64(10_000),
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "AUTH_004", body["error_code"])

	paused := true
	resp, _ = app.doJSON(t, http.MethodPut, "/api/v1/admin/pause", providerToken, map[string]*bool{"paused": &paused})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestIntegration_PauseBlocksClaims(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	app.seedAdmin(t, "admin", "AdminPassword123!")
	adminToken := app.login(t, "admin", "AdminPassword123!")

	resp, _ := app.doJSON(t, http.MethodPut, "/api/v1/admin/pause", adminToken, map[string]bool{"paused": true})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := app.postJSON(t, "/api/v1/claims", "", claimBody("0xaaaa", "0xbbbb", 50_000))
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, "CLM_006", body["error_code"])

	// Unpause restores settlement (which then fails on the unknown employer,
	// proving the request got past the breaker)
	resp, _ = app.doJSON(t, http.MethodPut, "/api/v1/admin/pause", adminToken, map[string]bool{"paused": false})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = app.postJSON(t, "/api/v1/claims", "", claimBody("0xaaaa", "0xbbbb", 50_000))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "CLM_004", body["error_code"])
}

func TestIntegration_WithdrawAfterClaimSettles(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	app.seedAdmin(t, "admin", "AdminPassword123!")
	adminToken := app.login(t, "admin", "AdminPassword123!")

	resp, _ := app.postJSON(t, "/api/v1/auth/register", "", map[string]string{
		"username": "lp1", "password": "ProviderPass123!",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	providerToken := app.login(t, "lp1", "ProviderPass123!")

	resp, body := app.postJSON(t, "/api/v1/pool/deposits", providerToken, map[string]int64{"amount": 100_000})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	shares := int64(body["data"].(map[string]interface{})["shares_minted"].(float64))

	_, commitment := app.registerEmployer(t, adminToken, "Acme Corp", "0xdeadbeef03", 10_000)
	resp, _ = app.postJSON(t, "/api/v1/claims", "", claimBody("0xcc01", commitment, 90_000))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// Nearly all liquidity is borrowed: full withdrawal must be refused
	resp, body = app.postJSON(t, "/api/v1/pool/withdrawals", providerToken, map[string]int64{"shares": shares})
	assert.Equal(t, http.StatusPaymentRequired, resp.StatusCode)
	assert.Equal(t, "POOL_002", body["error_code"])

	// Admin records the employer repayment, freeing liquidity
	resp, _ = app.postJSON(t, "/api/v1/pool/repayments", adminToken, map[string]int64{"amount": 90_000})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = app.postJSON(t, "/api/v1/pool/withdrawals", providerToken, map[string]int64{"shares": shares})
	require.Equal(t, http.StatusOK, resp.StatusCode, "withdrawal failed: %v", body)
	data := body["data"].(map[string]interface{})
	assert.Greater(t, data["net_amount"].(float64), float64(0))
}

func TestIntegration_EventStreamRecordsSettlements(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	app.seedAdmin(t, "admin", "AdminPassword123!")
	adminToken := app.login(t, "admin", "AdminPassword123!")

	resp, _ := app.postJSON(t, "/api/v1/auth/register", "", map[string]string{
		"username": "lp1", "password": "ProviderPass123!",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	providerToken := app.login(t, "lp1", "ProviderPass123!")
	resp, _ = app.postJSON(t, "/api/v1/pool/deposits", providerToken, map[string]int64{"amount": 1_000_000})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	_, commitment := app.registerEmployer(t, adminToken, "Acme Corp", "0xdeadbeef04", 10_000)
	for i := 0; i < 3; i++ {
		resp, _ = app.postJSON(t, "/api/v1/claims", "", claimBody(fmt.Sprintf("0xee%02d", i), commitment, 50_000))
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	assert.Equal(t, 3, app.eventRepo.countByType(domain.EventClaimSettled))

	resp, body := app.doJSON(t, http.MethodGet, "/api/v1/admin/events?limit=10", adminToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	raw, _ := json.Marshal(body)
	assert.Contains(t, string(raw), "CLAIM_SETTLED")
}
