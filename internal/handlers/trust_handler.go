package handlers

import (
	"net/http"

	"github.com/ArowuTest/blood-donation-backend/internal/apperr"
	"github.com/ArowuTest/blood-donation-backend/internal/query"
	"github.com/ArowuTest/blood-donation-backend/internal/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TrustHandler handles trust-related HTTP requests
type TrustHandler struct {
	trustService services.TrustService
	maxPageSize  int
	logger       *zap.Logger
}

// NewTrustHandler creates a new TrustHandler
func NewTrustHandler(trustService services.TrustService, maxPageSize int, logger *zap.Logger) *TrustHandler {
	return &TrustHandler{
		trustService: trustService,
		maxPageSize:  maxPageSize,
		logger:       logger,
	}
}

func trustFilter(c *gin.Context) query.TrustFilter {
	return query.TrustFilter{
		Status:    c.Query("status"),
		TrustType: c.Query("trustType"),
		City:      c.Query("city"),
	}
}

// GetTrusts handles GET /api/trusts. With ?id= it returns that single trust.
func (h *TrustHandler) GetTrusts(c *gin.Context) {
	if _, ok := c.GetQuery("id"); ok {
		h.GetTrustByID(c)
		return
	}

	page, err := parsePage(c, h.maxPageSize)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	trusts, err := h.trustService.ListTrusts(c.Request.Context(), trustFilter(c), page)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, trusts)
}

// GetTrustByID handles GET /api/trusts/:id
func (h *TrustHandler) GetTrustByID(c *gin.Context) {
	trust, err := h.trustService.GetTrust(c.Request.Context(), resourceID(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, trust)
}

// GetTrustCount handles GET /api/trusts/count
func (h *TrustHandler) GetTrustCount(c *gin.Context) {
	n, err := h.trustService.CountTrusts(c.Request.Context(), trustFilter(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": n})
}

// RegisterTrust handles POST /api/trusts
func (h *TrustHandler) RegisterTrust(c *gin.Context) {
	payload, err := decodeBody(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	trust, err := h.trustService.RegisterTrust(c.Request.Context(), payload)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Trust registered successfully",
		"trust":   trust,
	})
}

// UpdateTrust handles PUT /api/trusts/:id and PUT /api/trusts?id=
func (h *TrustHandler) UpdateTrust(c *gin.Context) {
	id := resourceID(c)
	if id == "" {
		respondError(c, h.logger, apperr.MissingIdentifier("Trust"))
		return
	}

	payload, err := decodeBody(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	if err := h.trustService.UpdateTrust(c.Request.Context(), id, payload); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Trust updated successfully"})
}

// DeleteTrust handles DELETE /api/trusts/:id and DELETE /api/trusts?id=
func (h *TrustHandler) DeleteTrust(c *gin.Context) {
	if err := h.trustService.DeleteTrust(c.Request.Context(), resourceID(c)); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Trust deleted successfully"})
}
