package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/babetech/borastock/internal/service/reporting"
)

const defaultReportHistoryLimit = 30

// ReportsHandler exposes the daily report run and its history.
type ReportsHandler struct {
	svc    *reporting.Service
	logger *zap.Logger
}

// NewReportsHandler constructs the HTTP handler adapter.
func NewReportsHandler(svc *reporting.Service, logger *zap.Logger) *ReportsHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportsHandler{svc: svc, logger: logger}
}

// Run triggers an immediate daily report run, outside the schedule.
func (h *ReportsHandler) Run(c *gin.Context) {
	report, err := h.svc.RunDailyReport(c.Request.Context(), time.Now())
	if err != nil {
		h.logger.Error("manual report run failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to run report"})
		return
	}
	c.JSON(http.StatusCreated, report)
}

// History returns the most recent stored reports.
func (h *ReportsHandler) History(c *gin.Context) {
	limit := int64(defaultReportHistoryLimit)
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = parsed
	}

	reports, err := h.svc.History(c.Request.Context(), limit)
	if err != nil {
		h.logger.Error("failed loading report history", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load reports"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reports": reports, "total": len(reports)})
}
