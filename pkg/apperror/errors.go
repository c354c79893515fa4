package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Claim Settlement (CLM) ----

func ErrInvalidInput(detail string) *AppError {
	return New("CLM_001", fmt.Sprintf("Invalid claim input: %s", detail), http.StatusBadRequest)
}

func ErrAlreadyClaimed() *AppError {
	return New("CLM_002", "Wage claim has already been paid out", http.StatusConflict)
}

// ErrInvalidProof covers both an outright failed verification and a verifier
// that timed out or errored. The cause is wrapped for logs only; callers see
// the same rejection either way (fail closed).
func ErrInvalidProof(err error) *AppError {
	return Wrap("CLM_003", "Proof verification failed", http.StatusUnprocessableEntity, err)
}

func ErrEmployerNotFound() *AppError {
	return New("CLM_004", "No registered employer matches the claim commitment", http.StatusNotFound)
}

func ErrEmployerNotWhitelisted() *AppError {
	return New("CLM_005", "Employer is not whitelisted for claim settlement", http.StatusForbidden)
}

func ErrClaimsPaused() *AppError {
	return New("CLM_006", "Claim processing is paused", http.StatusServiceUnavailable)
}

// ---- Liquidity Pool (POOL) ----

func ErrUtilizationExceeded() *AppError {
	return New("POOL_001", "Disbursement would exceed the pool utilization cap", http.StatusUnprocessableEntity)
}

func ErrInsufficientPoolLiquidity() *AppError {
	return New("POOL_002", "Insufficient free liquidity in the pool", http.StatusPaymentRequired)
}

func ErrZeroAmount() *AppError {
	return New("POOL_003", "Amount must be positive", http.StatusBadRequest)
}

func ErrNoFeesToDistribute() *AppError {
	return New("POOL_004", "No collected fees to distribute", http.StatusConflict)
}

func ErrInsufficientShares() *AppError {
	return New("POOL_005", "Provider holds fewer shares than requested", http.StatusBadRequest)
}

// ---- Employer Trust Store (EMP) ----

func ErrAlreadyRegistered() *AppError {
	return New("EMP_001", "Employer id or commitment is already registered", http.StatusConflict)
}

func ErrInsufficientStake() *AppError {
	return New("EMP_002", "Stake deposit is below the registration minimum", http.StatusBadRequest)
}

func ErrStakeLocked() *AppError {
	return New("EMP_003", "Stake is locked and cannot be withdrawn yet", http.StatusLocked)
}

func ErrBelowMinimumStake() *AppError {
	return New("EMP_004", "Resulting stake would be positive but below the minimum", http.StatusBadRequest)
}

func ErrExceedsStake() *AppError {
	return New("EMP_005", "Slash amount exceeds the employer's stake", http.StatusBadRequest)
}

// ---- Authentication (AUTH) ----

func ErrInvalidCredentials() *AppError {
	return New("AUTH_001", "Invalid credentials", http.StatusUnauthorized)
}

func ErrUsernameExists() *AppError {
	return New("AUTH_002", "Username already exists", http.StatusConflict)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_003", "Invalid or expired token", http.StatusUnauthorized)
}

func ErrForbidden() *AppError {
	return New("AUTH_004", "Operator role does not permit this action", http.StatusForbidden)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a CLM_001-style validation error.
func Validation(message string) *AppError {
	return New("CLM_001", message, http.StatusBadRequest)
}

func ErrNotFound(entity string) *AppError {
	return New("SYS_002", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}
