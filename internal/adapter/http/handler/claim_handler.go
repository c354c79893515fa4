package handler

import (
	"encoding/base64"
	"time"

	"zkwage-settlement/internal/adapter/http/dto"
	"zkwage-settlement/internal/core/domain"
	"zkwage-settlement/internal/core/ports"
	"zkwage-settlement/pkg/apperror"
	"zkwage-settlement/pkg/response"

	"github.com/gin-gonic/gin"
)

// ClaimHandler handles the wage claim settlement surface.
type ClaimHandler struct {
	settlementSvc ports.SettlementService
	nullifierRepo ports.NullifierRepository
}

// NewClaimHandler creates a new ClaimHandler.
func NewClaimHandler(settlementSvc ports.SettlementService, nullifierRepo ports.NullifierRepository) *ClaimHandler {
	return &ClaimHandler{settlementSvc: settlementSvc, nullifierRepo: nullifierRepo}
}

// SubmitClaim handles POST /api/v1/claims. The route is unauthenticated:
// a claim authenticates itself through its proof.
func (h *ClaimHandler) SubmitClaim(c *gin.Context) {
	var req dto.ClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	proof, err := base64.StdEncoding.DecodeString(req.Proof)
	if err != nil {
		response.Error(c, apperror.Validation("proof must be base64-encoded"))
		return
	}

	receipt, err := h.settlementSvc.ClaimWages(c.Request.Context(), domain.WageClaim{
		Proof: proof,
		PublicInputs: domain.PublicInputs{
			NullifierToken:     req.NullifierToken,
			Amount:             req.Amount,
			EmployerCommitment: req.EmployerCommitment,
		},
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toClaimReceiptResponse(receipt))
}

// GetClaim handles GET /api/v1/claims/:token, a ledger lookup by
// nullifier token.
func (h *ClaimHandler) GetClaim(c *gin.Context) {
	token := c.Param("token")

	rec, err := h.nullifierRepo.Get(c.Request.Context(), token)
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}
	if rec == nil {
		response.Error(c, apperror.ErrNotFound("Claim"))
		return
	}

	response.OK(c, dto.NullifierRecordResponse{
		Token:        rec.Token,
		ClaimID:      rec.ClaimID.String(),
		PayoutAmount: rec.PayoutAmount,
		CommittedAt:  rec.CommittedAt.Format(time.RFC3339),
	})
}

// Stats handles GET /api/v1/claims/stats.
func (h *ClaimHandler) Stats(c *gin.Context) {
	stats := h.settlementSvc.Stats()
	response.OK(c, dto.StatsResponse{
		TotalClaims:       stats.TotalClaims,
		TotalWagesClaimed: stats.TotalWagesClaimed,
		TotalRejected:     stats.TotalRejected,
		Paused:            h.settlementSvc.Paused(),
	})
}

// toClaimReceiptResponse converts domain.ClaimReceipt to DTO.
func toClaimReceiptResponse(r *domain.ClaimReceipt) dto.ClaimReceiptResponse {
	return dto.ClaimReceiptResponse{
		ClaimID:            r.ClaimID.String(),
		NullifierToken:     r.NullifierToken,
		EmployerID:         r.EmployerID.String(),
		EmployerCommitment: r.EmployerCommitment,
		GrossAmount:        r.GrossAmount,
		Fee:                r.Fee,
		NetAmount:          r.NetAmount,
		SettledAt:          r.SettledAt.Format(time.RFC3339),
	}
}
