package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/atelier/internal/server/http/dto"
)

// AdminFacade is what the admin dashboard needs.
type AdminFacade interface {
	DashboardFacade
	SettingsFacade
}

// AdminHandler serves the admin dashboard.
type AdminHandler struct {
	facade AdminFacade
}

// NewAdminHandler constructs AdminHandler.
func NewAdminHandler(facade AdminFacade) *AdminHandler {
	return &AdminHandler{facade: facade}
}

// Stats handles GET /api/admin/stats.
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.facade.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.StatsResponse{
		Message: "Dashboard stats fetched successfully",
		Data: dto.StatsData{
			Artworks:   stats.Artworks,
			Orders:     stats.Orders,
			Users:      stats.Users,
			TotalLikes: stats.TotalLikes,
		},
	})
}

// Profile handles GET /api/admin/profile.
func (h *AdminHandler) Profile(c *gin.Context) {
	settings, err := h.facade.Settings(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSettingsResponse(settings))
}

// UpdateProfile handles PUT /api/admin/profile.
func (h *AdminHandler) UpdateProfile(c *gin.Context) {
	var form dto.AboutForm
	if err := c.ShouldBind(&form); err != nil {
		respondMessage(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	settings, err := h.facade.UpdateAbout(c.Request.Context(), form.AboutBio, nil)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SettingsEnvelope{Message: "Profile updated", Settings: dto.NewSettingsResponse(settings)})
}

// Upload handles POST /api/admin/upload; the "type" field selects logo or profile.
func (h *AdminHandler) Upload(c *gin.Context) {
	image, closeImage, err := readImage(c, "image")
	if err != nil {
		respondError(c, err)
		return
	}
	defer closeImage()

	settings, err := h.facade.UploadAsset(c.Request.Context(), c.PostForm("type"), image)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SettingsEnvelope{Message: "Image uploaded", Settings: dto.NewSettingsResponse(settings)})
}

// HealthHandler answers liveness probes.
type HealthHandler struct {
	facade HealthFacade
}

// NewHealthHandler constructs HealthHandler.
func NewHealthHandler(facade HealthFacade) *HealthHandler {
	return &HealthHandler{facade: facade}
}

// Check handles GET /healthz.
func (h *HealthHandler) Check(c *gin.Context) {
	if err := h.facade.Ping(c.Request.Context()); err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
