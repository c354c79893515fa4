package handler

import (
	"time"

	"zkwage-settlement/internal/adapter/http/dto"
	"zkwage-settlement/internal/adapter/http/middleware"
	"zkwage-settlement/internal/core/ports"
	"zkwage-settlement/pkg/apperror"
	"zkwage-settlement/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PoolHandler handles the liquidity provider surface.
type PoolHandler struct {
	poolSvc ports.PoolService
}

// NewPoolHandler creates a new PoolHandler.
func NewPoolHandler(poolSvc ports.PoolService) *PoolHandler {
	return &PoolHandler{poolSvc: poolSvc}
}

// Deposit handles POST /api/v1/pool/deposits.
func (h *PoolHandler) Deposit(c *gin.Context) {
	providerID, ok := operatorID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.poolSvc.AddLiquidity(c.Request.Context(), providerID, req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.DepositResponse{
		SharesMinted:  result.SharesMinted,
		TotalShares:   result.TotalShares,
		PoolLiquidity: result.PoolLiquidity,
	})
}

// Withdraw handles POST /api/v1/pool/withdrawals.
func (h *PoolHandler) Withdraw(c *gin.Context) {
	providerID, ok := operatorID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.poolSvc.RemoveLiquidity(c.Request.Context(), providerID, req.Shares)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.WithdrawResponse{
		SharesBurned: result.SharesBurned,
		GrossAmount:  result.GrossAmount,
		Fee:          result.Fee,
		NetAmount:    result.NetAmount,
	})
}

// Snapshot handles GET /api/v1/pool.
func (h *PoolHandler) Snapshot(c *gin.Context) {
	state, err := h.poolSvc.Snapshot(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.PoolSnapshotResponse{
		TotalLiquidity:     state.TotalLiquidity,
		TotalBorrowed:      state.TotalBorrowed,
		TotalFeesCollected: state.TotalFeesCollected,
		ShareSupply:        state.ShareSupply,
		FreeLiquidity:      state.FreeLiquidity(),
		Utilization:        state.Utilization().StringFixed(6),
		LastYieldUpdate:    state.LastYieldUpdate.Format(time.RFC3339),
	})
}

// Repay handles POST /api/v1/pool/repayments, an employer repayment
// recorded by an admin.
func (h *PoolHandler) Repay(c *gin.Context) {
	var req dto.RepayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.poolSvc.Repay(c.Request.Context(), req.Amount); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"repaid": req.Amount})
}

// DistributeFees handles POST /api/v1/pool/fees/distribute.
func (h *PoolHandler) DistributeFees(c *gin.Context) {
	result, err := h.poolSvc.DistributeFees(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.FeeDistributionResponse{
		TreasuryCut: result.TreasuryCut,
		Compounded:  result.Compounded,
	})
}

// UpdateParams handles PUT /api/v1/pool/params.
func (h *PoolHandler) UpdateParams(c *gin.Context) {
	var req dto.PoolParamsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	update := ports.PoolParamsUpdate{
		MaxUtilizationBps:     req.MaxUtilizationBps,
		EarlyWithdrawalFeeBps: req.EarlyWithdrawalFeeBps,
		AnnualYieldBps:        req.AnnualYieldBps,
		PerformanceFeeBps:     req.PerformanceFeeBps,
	}
	if req.MinLockPeriodSeconds != nil {
		d := time.Duration(*req.MinLockPeriodSeconds) * time.Second
		update.MinLockPeriod = &d
	}

	if err := h.poolSvc.UpdateParams(c.Request.Context(), update); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"updated": true})
}

// operatorID extracts the authenticated operator's UUID from the context.
func operatorID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(middleware.CtxOperatorID)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
