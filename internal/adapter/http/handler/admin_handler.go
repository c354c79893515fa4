package handler

import (
	"encoding/base64"
	"encoding/json"
	"strconv"
	"time"

	"zkwage-settlement/internal/adapter/http/dto"
	"zkwage-settlement/internal/core/ports"
	"zkwage-settlement/pkg/apperror"
	"zkwage-settlement/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// VerifierFactory builds a proof verifier from raw verification key bytes.
type VerifierFactory func(raw []byte) (ports.ProofVerifier, error)

// AdminHandler handles the operational admin surface: the settlement
// circuit breaker, verification key rotation, and the event stream.
type AdminHandler struct {
	settlementSvc   ports.SettlementService
	eventRepo       ports.EventRepository
	verifierFactory VerifierFactory
	log             zerolog.Logger
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(settlementSvc ports.SettlementService, eventRepo ports.EventRepository, vf VerifierFactory, log zerolog.Logger) *AdminHandler {
	return &AdminHandler{
		settlementSvc:   settlementSvc,
		eventRepo:       eventRepo,
		verifierFactory: vf,
		log:             log,
	}
}

// SetPaused handles PUT /api/v1/admin/pause.
func (h *AdminHandler) SetPaused(c *gin.Context) {
	var req dto.PauseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	h.settlementSvc.SetPaused(*req.Paused)
	h.log.Warn().Bool("paused", *req.Paused).Msg("settlement pause toggled")

	response.OK(c, gin.H{"paused": h.settlementSvc.Paused()})
}

// RotateVerifier handles POST /api/v1/admin/verifier. In-flight claims
// finish against the verifier they started with.
func (h *AdminHandler) RotateVerifier(c *gin.Context) {
	var req dto.RotateVerifierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	raw, err := base64.StdEncoding.DecodeString(req.VerifyingKey)
	if err != nil {
		response.Error(c, apperror.Validation("verifying_key must be base64-encoded"))
		return
	}

	verifier, err := h.verifierFactory(raw)
	if err != nil {
		response.Error(c, apperror.Validation("verifying key rejected: "+err.Error()))
		return
	}

	h.settlementSvc.RotateVerifier(verifier)
	h.log.Warn().Msg("verification key rotated")

	response.OK(c, gin.H{"rotated": true})
}

// ListEvents handles GET /api/v1/admin/events?limit=N.
func (h *AdminHandler) ListEvents(c *gin.Context) {
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 500 {
			response.Error(c, apperror.Validation("limit must be in [1, 500]"))
			return
		}
		limit = n
	}

	events, err := h.eventRepo.ListRecent(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}

	items := make([]dto.EventResponse, 0, len(events))
	for _, ev := range events {
		var payload any
		if len(ev.Payload) > 0 {
			if err := json.Unmarshal(ev.Payload, &payload); err != nil {
				payload = string(ev.Payload)
			}
		}
		items = append(items, dto.EventResponse{
			ID:        ev.ID.String(),
			Type:      string(ev.Type),
			Payload:   payload,
			CreatedAt: ev.CreatedAt.Format(time.RFC3339),
		})
	}

	response.OK(c, items)
}
