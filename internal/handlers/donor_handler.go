package handlers

import (
	"net/http"

	"github.com/ArowuTest/blood-donation-backend/internal/apperr"
	"github.com/ArowuTest/blood-donation-backend/internal/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DonorHandler handles donor-related HTTP requests
type DonorHandler struct {
	donorService services.DonorService
	maxPageSize  int
	logger       *zap.Logger
}

// NewDonorHandler creates a new DonorHandler
func NewDonorHandler(donorService services.DonorService, maxPageSize int, logger *zap.Logger) *DonorHandler {
	return &DonorHandler{
		donorService: donorService,
		maxPageSize:  maxPageSize,
		logger:       logger,
	}
}

// GetDonors handles GET /api/donors. With ?id= it returns that single donor.
func (h *DonorHandler) GetDonors(c *gin.Context) {
	if _, ok := c.GetQuery("id"); ok {
		h.GetDonorByID(c)
		return
	}

	page, err := parsePage(c, h.maxPageSize)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	donors, err := h.donorService.ListDonors(c.Request.Context(), page)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, donors)
}

// GetDonorByID handles GET /api/donors/:id
func (h *DonorHandler) GetDonorByID(c *gin.Context) {
	donor, err := h.donorService.GetDonor(c.Request.Context(), resourceID(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, donor)
}

// GetDonorCount handles GET /api/donors/count
func (h *DonorHandler) GetDonorCount(c *gin.Context) {
	n, err := h.donorService.CountDonors(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": n})
}

// RegisterDonor handles POST /api/donors
func (h *DonorHandler) RegisterDonor(c *gin.Context) {
	payload, err := decodeBody(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	donor, err := h.donorService.RegisterDonor(c.Request.Context(), payload)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Donor registered successfully",
		"donor":   donor,
	})
}

// UpdateDonor handles PUT /api/donors/:id and PUT /api/donors?id=
func (h *DonorHandler) UpdateDonor(c *gin.Context) {
	id := resourceID(c)
	if id == "" {
		respondError(c, h.logger, apperr.MissingIdentifier("Donor"))
		return
	}

	payload, err := decodeBody(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	if err := h.donorService.UpdateDonor(c.Request.Context(), id, payload); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Donor updated successfully"})
}

// DeleteDonor handles DELETE /api/donors/:id and DELETE /api/donors?id=
func (h *DonorHandler) DeleteDonor(c *gin.Context) {
	if err := h.donorService.DeleteDonor(c.Request.Context(), resourceID(c)); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Donor deleted successfully"})
}
