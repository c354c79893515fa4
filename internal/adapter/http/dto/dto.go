package dto

// RegisterRequest is the request body for operator registration.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50,safe_id"`
	Password string `json:"password" binding:"required,min=12,max=128"`
}

// LoginRequest is the request body for operator login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterResponse is the response body for successful registration.
type RegisterResponse struct {
	OperatorID string `json:"operator_id"`
	Username   string `json:"username"`
	Role       string `json:"role"`
}

// LoginResponse is the response body for successful login.
type LoginResponse struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"` // Unix timestamp
}

// ClaimRequest is the request body for a wage claim. Proof is the
// base64-encoded groth16 proof; the remaining fields are its public inputs.
type ClaimRequest struct {
	Proof              string `json:"proof" binding:"required"`
	NullifierToken     string `json:"nullifier_token" binding:"required,hex_field"`
	Amount             int64  `json:"amount" binding:"required,gt=0"`
	EmployerCommitment string `json:"employer_commitment" binding:"required,hex_field"`
}

// ClaimReceiptResponse is the response body for a settled claim.
type ClaimReceiptResponse struct {
	ClaimID            string `json:"claim_id"`
	NullifierToken     string `json:"nullifier_token"`
	EmployerID         string `json:"employer_id"`
	EmployerCommitment string `json:"employer_commitment"`
	GrossAmount        int64  `json:"gross_amount"`
	Fee                int64  `json:"fee"`
	NetAmount          int64  `json:"net_amount"`
	SettledAt          string `json:"settled_at"`
}

// NullifierRecordResponse is the response body for a ledger lookup.
type NullifierRecordResponse struct {
	Token        string `json:"token"`
	ClaimID      string `json:"claim_id"`
	PayoutAmount int64  `json:"payout_amount"`
	CommittedAt  string `json:"committed_at"`
}

// StatsResponse reports the settlement engine's aggregate counters.
type StatsResponse struct {
	TotalClaims       int64 `json:"total_claims"`
	TotalWagesClaimed int64 `json:"total_wages_claimed"`
	TotalRejected     int64 `json:"total_rejected"`
	Paused            bool  `json:"paused"`
}

// DepositRequest is the request body for adding pool liquidity.
type DepositRequest struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
}

// WithdrawRequest is the request body for removing pool liquidity.
type WithdrawRequest struct {
	Shares int64 `json:"shares" binding:"required,gt=0"`
}

// RepayRequest is the request body for recording an employer repayment.
type RepayRequest struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
}

// DepositResponse reports a completed deposit.
type DepositResponse struct {
	SharesMinted  int64 `json:"shares_minted"`
	TotalShares   int64 `json:"total_shares"`
	PoolLiquidity int64 `json:"pool_liquidity"`
}

// WithdrawResponse reports a completed withdrawal.
type WithdrawResponse struct {
	SharesBurned int64 `json:"shares_burned"`
	GrossAmount  int64 `json:"gross_amount"`
	Fee          int64 `json:"fee"`
	NetAmount    int64 `json:"net_amount"`
}

// FeeDistributionResponse reports a fee sweep.
type FeeDistributionResponse struct {
	TreasuryCut int64 `json:"treasury_cut"`
	Compounded  int64 `json:"compounded"`
}

// PoolSnapshotResponse is the pool's balance sheet at read time.
type PoolSnapshotResponse struct {
	TotalLiquidity     int64  `json:"total_liquidity"`
	TotalBorrowed      int64  `json:"total_borrowed"`
	TotalFeesCollected int64  `json:"total_fees_collected"`
	ShareSupply        int64  `json:"share_supply"`
	FreeLiquidity      int64  `json:"free_liquidity"`
	Utilization        string `json:"utilization"` // decimal fraction
	LastYieldUpdate    string `json:"last_yield_update"`
}

// PoolParamsRequest carries partial updates to pool parameters.
// Omitted fields are left unchanged. MinLockPeriod is in seconds.
type PoolParamsRequest struct {
	MaxUtilizationBps     *int64 `json:"max_utilization_bps,omitempty"`
	EarlyWithdrawalFeeBps *int64 `json:"early_withdrawal_fee_bps,omitempty"`
	AnnualYieldBps        *int64 `json:"annual_yield_bps,omitempty"`
	PerformanceFeeBps     *int64 `json:"performance_fee_bps,omitempty"`
	MinLockPeriodSeconds  *int64 `json:"min_lock_period_seconds,omitempty"`
}

// EmployerRegisterRequest is the request body for employer registration.
// PubKey is the employer's hex-encoded public key; its poseidon commitment
// is derived server-side.
type EmployerRegisterRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	PubKey      string `json:"pub_key" binding:"required,hex_field"`
	StakeAmount int64  `json:"stake_amount" binding:"required,gt=0"`
}

// EmployerResponse is the response body for employer account reads.
type EmployerResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	PubKeyCommitment string `json:"pubkey_commitment"`
	StakeAmount      int64  `json:"stake_amount"`
	ReputationScore  int64  `json:"reputation_score"`
	IsWhitelisted    bool   `json:"is_whitelisted"`
	RegisteredAt     string `json:"registered_at"`
	StakeLockUntil   string `json:"stake_lock_until"`
}

// WhitelistRequest toggles an employer's whitelist flag.
type WhitelistRequest struct {
	Whitelisted *bool `json:"whitelisted" binding:"required"`
}

// StakeRequest adjusts an employer's stake.
type StakeRequest struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
}

// SlashRequest penalizes an employer's stake.
type SlashRequest struct {
	Amount int64  `json:"amount" binding:"required,gt=0"`
	Reason string `json:"reason" binding:"required,max=200"`
}

// ReputationResponse reports an employer's decayed reputation.
type ReputationResponse struct {
	EmployerID string `json:"employer_id"`
	Reputation int64  `json:"reputation"`
}

// PauseRequest toggles the settlement engine's circuit breaker.
type PauseRequest struct {
	Paused *bool `json:"paused" binding:"required"`
}

// RotateVerifierRequest swaps the live verification key. VerifyingKey is
// the base64-encoded groth16 key in gnark's serialization.
type RotateVerifierRequest struct {
	VerifyingKey string `json:"verifying_key" binding:"required"`
}

// EventResponse is one entry of the state-transition stream.
type EventResponse struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Payload   any    `json:"payload"`
	CreatedAt string `json:"created_at"`
}
