package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stakedraw/stakedraw-backend/internal/middleware"
	"github.com/stakedraw/stakedraw-backend/internal/services"
)

// TreasuryHandler handles treasury HTTP requests
type TreasuryHandler struct {
	treasuryService services.TreasuryService
}

// NewTreasuryHandler creates a new TreasuryHandler
func NewTreasuryHandler(treasuryService services.TreasuryService) *TreasuryHandler {
	return &TreasuryHandler{
		treasuryService: treasuryService,
	}
}

// CollectFeeRequest is the payload for POST /treasury/fees
type CollectFeeRequest struct {
	Amount int64 `json:"amount" binding:"required,min=1"`
}

// CollectFee handles POST /treasury/fees
func (h *TreasuryHandler) CollectFee(c *gin.Context) {
	var request CollectFeeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fee, err := h.treasuryService.CollectFee(c.Request.Context(), request.Amount, middleware.CallerAddress(c))
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"fee": fee})
}

// Withdraw handles POST /treasury/withdraw
func (h *TreasuryHandler) Withdraw(c *gin.Context) {
	amount, err := h.treasuryService.Withdraw(c.Request.Context(), middleware.CallerAddress(c))
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"amount": amount})
}

// Balance handles GET /treasury/balance
func (h *TreasuryHandler) Balance(c *gin.Context) {
	balance, err := h.treasuryService.Balance(c.Request.Context())
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"balance": balance})
}
