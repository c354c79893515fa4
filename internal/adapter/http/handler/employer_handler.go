package handler

import (
	"context"
	"encoding/hex"
	"strings"
	"time"

	"zkwage-settlement/internal/adapter/http/dto"
	"zkwage-settlement/internal/core/domain"
	"zkwage-settlement/internal/core/ports"
	"zkwage-settlement/pkg/apperror"
	"zkwage-settlement/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// EmployerHandler handles the employer trust store surface.
type EmployerHandler struct {
	employerSvc ports.EmployerService
}

// NewEmployerHandler creates a new EmployerHandler.
func NewEmployerHandler(employerSvc ports.EmployerService) *EmployerHandler {
	return &EmployerHandler{employerSvc: employerSvc}
}

// Register handles POST /api/v1/employers.
func (h *EmployerHandler) Register(c *gin.Context) {
	var req dto.EmployerRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	pubKey, err := hex.DecodeString(strings.TrimPrefix(req.PubKey, "0x"))
	if err != nil {
		response.Error(c, apperror.Validation("pub_key must be hex-encoded"))
		return
	}

	acct, err := h.employerSvc.Register(c.Request.Context(), ports.RegisterEmployerRequest{
		Name:        req.Name,
		PubKey:      pubKey,
		StakeAmount: req.StakeAmount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toEmployerResponse(acct))
}

// Get handles GET /api/v1/employers/:id.
func (h *EmployerHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid employer id"))
		return
	}

	acct, err := h.employerSvc.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toEmployerResponse(acct))
}

// SetWhitelist handles PUT /api/v1/employers/:id/whitelist.
func (h *EmployerHandler) SetWhitelist(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid employer id"))
		return
	}

	var req dto.WhitelistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	acct, err := h.employerSvc.SetWhitelist(c.Request.Context(), id, *req.Whitelisted)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toEmployerResponse(acct))
}

// IncreaseStake handles POST /api/v1/employers/:id/stake.
func (h *EmployerHandler) IncreaseStake(c *gin.Context) {
	h.adjustStake(c, h.employerSvc.IncreaseStake)
}

// DecreaseStake handles POST /api/v1/employers/:id/unstake.
func (h *EmployerHandler) DecreaseStake(c *gin.Context) {
	h.adjustStake(c, h.employerSvc.DecreaseStake)
}

func (h *EmployerHandler) adjustStake(c *gin.Context, op func(ctx context.Context, id uuid.UUID, amount int64) (*domain.EmployerAccount, error)) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid employer id"))
		return
	}

	var req dto.StakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	acct, err := op(c.Request.Context(), id, req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toEmployerResponse(acct))
}

// Slash handles POST /api/v1/employers/:id/slash.
func (h *EmployerHandler) Slash(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid employer id"))
		return
	}

	var req dto.SlashRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	acct, err := h.employerSvc.Slash(c.Request.Context(), id, req.Amount, req.Reason)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toEmployerResponse(acct))
}

// Reputation handles GET /api/v1/employers/:id/reputation.
func (h *EmployerHandler) Reputation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid employer id"))
		return
	}

	rep, err := h.employerSvc.CurrentReputation(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ReputationResponse{
		EmployerID: id.String(),
		Reputation: rep,
	})
}

// toEmployerResponse converts domain.EmployerAccount to DTO.
func toEmployerResponse(e *domain.EmployerAccount) dto.EmployerResponse {
	return dto.EmployerResponse{
		ID:               e.ID.String(),
		Name:             e.Name,
		PubKeyCommitment: e.PubKeyCommitment,
		StakeAmount:      e.StakeAmount,
		ReputationScore:  e.ReputationScore,
		IsWhitelisted:    e.IsWhitelisted,
		RegisteredAt:     e.RegisteredAt.Format(time.RFC3339),
		StakeLockUntil:   e.StakeLockUntil.Format(time.RFC3339),
	}
}
