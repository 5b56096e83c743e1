// Package apihandlers exposes the scan history over HTTP so dashboards and
// other tools can consume classification results.
package apihandlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"filescope/internal/models"
	"filescope/internal/services"
	"filescope/internal/store"
)

type APIHandler struct {
	Scans *services.ScanService
}

func NewAPIHandler(scans *services.ScanService) *APIHandler {
	return &APIHandler{Scans: scans}
}

// ListScansHandler handles GET /api/v1/scans?limit=N.
func (h *APIHandler) ListScansHandler(c *gin.Context) {
	limit := 20
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			BadRequest(c, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	scans, err := h.Scans.History(c.Request.Context(), limit)
	if err != nil {
		Internal(c, fmt.Sprintf("failed to list scans: %v", err))
		return
	}
	if scans == nil {
		scans = []*models.Scan{}
	}
	c.JSON(http.StatusOK, gin.H{"scans": scans})
}

// GetScanHandler handles GET /api/v1/scans/:id, returning the full
// per-category result.
func (h *APIHandler) GetScanHandler(c *gin.Context) {
	scan, ok := h.loadScan(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, scan)
}

// GetScanSummaryHandler handles GET /api/v1/scans/:id/summary.
func (h *APIHandler) GetScanSummaryHandler(c *gin.Context) {
	scan, ok := h.loadScan(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, models.Summarize(scan.Result, scan.Stats))
}

func (h *APIHandler) loadScan(c *gin.Context) (*models.Scan, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		BadRequest(c, "invalid scan id")
		return nil, false
	}
	scan, err := h.Scans.GetScan(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			NotFound(c, "scan not found")
		} else {
			Internal(c, fmt.Sprintf("failed to load scan: %v", err))
		}
		return nil, false
	}
	return scan, true
}
