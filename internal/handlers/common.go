package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"strings"

	"github.com/ArowuTest/blood-donation-backend/internal/apperr"
	"github.com/ArowuTest/blood-donation-backend/internal/middleware"
	"github.com/ArowuTest/blood-donation-backend/internal/query"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// maxBodyBytes bounds request bodies read by the resource handlers
const maxBodyBytes = 1 << 20

// resourceID reads the id from the path, falling back to the ?id= query parameter
func resourceID(c *gin.Context) string {
	if id := c.Param("id"); id != "" {
		return id
	}
	return strings.TrimSpace(c.Query("id"))
}

// decodeBody reads a JSON object body. Numbers are kept as json.Number so
// integer fields can be told apart from fractional ones.
func decodeBody(c *gin.Context) (map[string]any, error) {
	dec := json.NewDecoder(io.LimitReader(c.Request.Body, maxBodyBytes))
	dec.UseNumber()

	var payload map[string]any
	if err := dec.Decode(&payload); err != nil {
		return nil, apperr.MalformedPayload(err)
	}
	if payload == nil {
		return nil, apperr.MalformedPayload(errors.New("body is not a JSON object"))
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, apperr.MalformedPayload(errors.New("unexpected data after JSON object"))
	}
	return payload, nil
}

// parsePage reads ?page= and ?limit=
func parsePage(c *gin.Context, maxPageSize int) (query.Page, error) {
	return query.ParsePage(c.Query("page"), c.Query("limit"), maxPageSize)
}

// respondError writes err as {"error": message} with its mapped status.
// Store failures are logged; client errors are left to the request log.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	status := apperr.Status(err)
	if apperr.KindOf(err) == apperr.KindStoreFailure {
		logger.Error("store operation failed",
			zap.Error(err),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("request_id", middleware.RequestID(c)))
	}
	_ = c.Error(err)
	c.JSON(status, gin.H{"error": apperr.Message(err)})
}
