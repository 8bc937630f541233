package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/stakedraw/stakedraw-backend/internal/middleware"
	"github.com/stakedraw/stakedraw-backend/internal/models"
	"github.com/stakedraw/stakedraw-backend/internal/services"
)

// LotteryHandler handles pool lifecycle and entry HTTP requests
type LotteryHandler struct {
	lotteryService services.LotteryService
}

// NewLotteryHandler creates a new LotteryHandler
func NewLotteryHandler(lotteryService services.LotteryService) *LotteryHandler {
	return &LotteryHandler{
		lotteryService: lotteryService,
	}
}

// statusForError maps categorical operation errors to HTTP status codes.
// Host-dependency failures are retryable and surface as 502.
func statusForError(err error) int {
	switch {
	case errors.Is(err, models.ErrNotOwner):
		return http.StatusForbidden
	case errors.Is(err, models.ErrPoolNotActive):
		return http.StatusNotFound
	case errors.Is(err, models.ErrPoolAlreadyActive),
		errors.Is(err, models.ErrAlreadyEntered),
		errors.Is(err, models.ErrPoolClosed),
		errors.Is(err, models.ErrPoolFull),
		errors.Is(err, models.ErrPoolNotYetEnded),
		errors.Is(err, models.ErrNoParticipants),
		errors.Is(err, models.ErrPoolHasStakes):
		return http.StatusConflict
	case errors.Is(err, models.ErrInvalidShareConfig),
		errors.Is(err, models.ErrInsufficientStake):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrTransferFailed),
		errors.Is(err, models.ErrEntropyUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func tierParam(c *gin.Context) (int, bool) {
	tier, err := strconv.Atoi(c.Param("tier"))
	if err != nil || tier < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tier"})
		return 0, false
	}
	return tier, true
}

// CreatePoolRequest is the payload for POST /pools
type CreatePoolRequest struct {
	Tier            int   `json:"tier" binding:"min=0"`
	MinStake        int64 `json:"minStake" binding:"required,min=1"`
	Duration        int64 `json:"duration" binding:"required,min=1"`
	WinnerShareBps  int64 `json:"winnerShareBps" binding:"min=0"`
	StakingShareBps int64 `json:"stakingShareBps" binding:"min=0"`
}

// CreatePool handles POST /pools
func (h *LotteryHandler) CreatePool(c *gin.Context) {
	var request CreatePoolRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pool, err := h.lotteryService.CreatePool(c.Request.Context(), request.Tier, request.MinStake,
		request.Duration, request.WinnerShareBps, request.StakingShareBps, middleware.CallerAddress(c))
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, pool)
}

// UpdatePoolRequest is the payload for PUT /pools/:tier
type UpdatePoolRequest struct {
	MinStake        int64 `json:"minStake" binding:"required,min=1"`
	Duration        int64 `json:"duration" binding:"required,min=1"`
	WinnerShareBps  int64 `json:"winnerShareBps" binding:"min=0"`
	StakingShareBps int64 `json:"stakingShareBps" binding:"min=0"`
	Force           bool  `json:"force"`
}

// UpdatePool handles PUT /pools/:tier
func (h *LotteryHandler) UpdatePool(c *gin.Context) {
	tier, ok := tierParam(c)
	if !ok {
		return
	}
	var request UpdatePoolRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pool, err := h.lotteryService.UpdatePool(c.Request.Context(), tier, request.MinStake,
		request.Duration, request.WinnerShareBps, request.StakingShareBps, request.Force,
		middleware.CallerAddress(c))
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, pool)
}

// CancelPool handles POST /pools/:tier/cancel
func (h *LotteryHandler) CancelPool(c *gin.Context) {
	tier, ok := tierParam(c)
	if !ok {
		return
	}

	pool, err := h.lotteryService.CancelPool(c.Request.Context(), tier, middleware.CallerAddress(c))
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, pool)
}

// EnterRequest is the payload for POST /pools/:tier/enter
type EnterRequest struct {
	Amount int64 `json:"amount" binding:"required,min=1"`
}

// Enter handles POST /pools/:tier/enter
func (h *LotteryHandler) Enter(c *gin.Context) {
	tier, ok := tierParam(c)
	if !ok {
		return
	}
	var request EnterRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pool, err := h.lotteryService.Enter(c.Request.Context(), tier, request.Amount, middleware.CallerAddress(c))
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, pool)
}

// Close handles POST /pools/:tier/close
func (h *LotteryHandler) Close(c *gin.Context) {
	tier, ok := tierParam(c)
	if !ok {
		return
	}

	result, err := h.lotteryService.Close(c.Request.Context(), tier, middleware.CallerAddress(c))
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetPool handles GET /pools/:tier
func (h *LotteryHandler) GetPool(c *gin.Context) {
	tier, ok := tierParam(c)
	if !ok {
		return
	}

	pool, err := h.lotteryService.GetPool(c.Request.Context(), tier)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, pool)
}

// ListPools handles GET /pools
func (h *LotteryHandler) ListPools(c *gin.Context) {
	pools, err := h.lotteryService.ListPools(c.Request.Context())
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, pools)
}

// GetStake handles GET /pools/:tier/stakes/:address
func (h *LotteryHandler) GetStake(c *gin.Context) {
	tier, ok := tierParam(c)
	if !ok {
		return
	}

	stake, err := h.lotteryService.GetStake(c.Request.Context(), tier, c.Param("address"))
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stake)
}

// GetParticipants handles GET /pools/:tier/participants
func (h *LotteryHandler) GetParticipants(c *gin.Context) {
	tier, ok := tierParam(c)
	if !ok {
		return
	}

	participants, err := h.lotteryService.GetParticipants(c.Request.Context(), tier)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, participants)
}
