package handlers

import (
	"net/http"

	"github.com/ArowuTest/blood-donation-backend/internal/apperr"
	"github.com/ArowuTest/blood-donation-backend/internal/query"
	"github.com/ArowuTest/blood-donation-backend/internal/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CampHandler handles camp-related HTTP requests
type CampHandler struct {
	campService services.CampService
	maxPageSize int
	logger      *zap.Logger
}

// NewCampHandler creates a new CampHandler
func NewCampHandler(campService services.CampService, maxPageSize int, logger *zap.Logger) *CampHandler {
	return &CampHandler{
		campService: campService,
		maxPageSize: maxPageSize,
		logger:      logger,
	}
}

func campFilter(c *gin.Context) query.CampFilter {
	return query.CampFilter{
		Status:   c.Query("status"),
		Location: c.Query("location"),
		Date:     c.Query("date"),
	}
}

// GetCamps handles GET /api/camps. With ?id= it returns that single camp.
func (h *CampHandler) GetCamps(c *gin.Context) {
	if _, ok := c.GetQuery("id"); ok {
		h.GetCampByID(c)
		return
	}

	page, err := parsePage(c, h.maxPageSize)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	camps, err := h.campService.ListCamps(c.Request.Context(), campFilter(c), page)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, camps)
}

// GetCampByID handles GET /api/camps/:id
func (h *CampHandler) GetCampByID(c *gin.Context) {
	camp, err := h.campService.GetCamp(c.Request.Context(), resourceID(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, camp)
}

// GetCampCount handles GET /api/camps/count
func (h *CampHandler) GetCampCount(c *gin.Context) {
	n, err := h.campService.CountCamps(c.Request.Context(), campFilter(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": n})
}

// CreateCamp handles POST /api/camps
func (h *CampHandler) CreateCamp(c *gin.Context) {
	payload, err := decodeBody(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	camp, err := h.campService.CreateCamp(c.Request.Context(), payload)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Camp created successfully",
		"camp":    camp,
	})
}

// UpdateCamp handles PUT /api/camps/:id and PUT /api/camps?id=
func (h *CampHandler) UpdateCamp(c *gin.Context) {
	id := resourceID(c)
	if id == "" {
		respondError(c, h.logger, apperr.MissingIdentifier("Camp"))
		return
	}

	payload, err := decodeBody(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	if err := h.campService.UpdateCamp(c.Request.Context(), id, payload); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Camp updated successfully"})
}

// DeleteCamp handles DELETE /api/camps/:id and DELETE /api/camps?id=
func (h *CampHandler) DeleteCamp(c *gin.Context) {
	if err := h.campService.DeleteCamp(c.Request.Context(), resourceID(c)); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Camp deleted successfully"})
}
