package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/babetech/borastock/internal/domain/models"
	"github.com/babetech/borastock/internal/repository/mongodb"
)

// SettingsHandler serves the company profile and preference settings
// backed by the durable settings store.
type SettingsHandler struct {
	repo   mongodb.Repository
	logger *zap.Logger
}

// NewSettingsHandler constructs the HTTP handler adapter.
func NewSettingsHandler(repo mongodb.Repository, logger *zap.Logger) *SettingsHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SettingsHandler{repo: repo, logger: logger}
}

// GetCompanyInfo returns the stored company profile.
func (h *SettingsHandler) GetCompanyInfo(c *gin.Context) {
	info, err := h.repo.CompanyInfo(c.Request.Context())
	if err != nil {
		h.logger.Error("failed loading company info", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load company info"})
		return
	}
	c.JSON(http.StatusOK, info)
}

// PutCompanyInfo replaces the stored company profile.
func (h *SettingsHandler) PutCompanyInfo(c *gin.Context) {
	var info models.CompanyInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.repo.SaveCompanyInfo(c.Request.Context(), info); err != nil {
		h.logger.Error("failed saving company info", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save company info"})
		return
	}
	c.JSON(http.StatusOK, info)
}

// GetPreferences returns the stored preferences.
func (h *SettingsHandler) GetPreferences(c *gin.Context) {
	prefs, err := h.repo.Preferences(c.Request.Context())
	if err != nil {
		h.logger.Error("failed loading preferences", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load preferences"})
		return
	}
	c.JSON(http.StatusOK, prefs)
}

// PutPreferences replaces the stored preferences.
func (h *SettingsHandler) PutPreferences(c *gin.Context) {
	var prefs models.Preferences
	if err := c.ShouldBindJSON(&prefs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.repo.SavePreferences(c.Request.Context(), prefs); err != nil {
		h.logger.Error("failed saving preferences", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save preferences"})
		return
	}
	c.JSON(http.StatusOK, prefs)
}
