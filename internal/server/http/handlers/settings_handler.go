package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/atelier/internal/domain/errors"
	"github.com/polkiloo/atelier/internal/domain/model"
	"github.com/polkiloo/atelier/internal/server/http/dto"
)

// SettingsHandler serves the site settings and the about section.
type SettingsHandler struct {
	facade SettingsFacade
}

// NewSettingsHandler constructs SettingsHandler.
func NewSettingsHandler(facade SettingsFacade) *SettingsHandler {
	return &SettingsHandler{facade: facade}
}

// Get handles GET /api/settings.
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.facade.Settings(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSettingsResponse(settings))
}

// Update handles PUT /api/settings. Multipart bodies may carry a "logo" file.
func (h *SettingsHandler) Update(c *gin.Context) {
	patch, err := bindContactPatch(c)
	if err != nil {
		respondError(c, err)
		return
	}
	logo, closeLogo, err := readImage(c, "logo")
	if err != nil {
		respondError(c, err)
		return
	}
	defer closeLogo()

	settings, err := h.facade.UpdateContact(c.Request.Context(), patch, logo)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SettingsEnvelope{Message: "Settings updated", Settings: dto.NewSettingsResponse(settings)})
}

// AddBackground handles POST /api/settings/background.
func (h *SettingsHandler) AddBackground(c *gin.Context) {
	image, closeImage, err := readImage(c, "image")
	if err != nil {
		respondError(c, err)
		return
	}
	defer closeImage()

	settings, err := h.facade.AddBackground(c.Request.Context(), image)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SettingsEnvelope{Message: "Background artwork added", Settings: dto.NewSettingsResponse(settings)})
}

// AddFunFact handles POST /api/settings/funfact.
func (h *SettingsHandler) AddFunFact(c *gin.Context) {
	var req dto.FunFactRequest
	if err := c.ShouldBind(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	settings, err := h.facade.AddFunFact(c.Request.Context(), req.Fact)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SettingsEnvelope{Message: "Fun fact added", Settings: dto.NewSettingsResponse(settings)})
}

// DeleteFunFact handles DELETE /api/settings/funfact/:factId.
func (h *SettingsHandler) DeleteFunFact(c *gin.Context) {
	settings, err := h.facade.DeleteFunFact(c.Request.Context(), c.Param("factId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SettingsEnvelope{Message: "Fun fact deleted", Settings: dto.NewSettingsResponse(settings)})
}

// About handles GET /api/about.
func (h *SettingsHandler) About(c *gin.Context) {
	about, err := h.facade.About(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.AboutResponse{ProfilePicURL: about.ProfilePicURL, AboutBio: about.AboutBio})
}

// UpdateAbout handles PUT /api/about. Multipart bodies may carry an "image" file.
func (h *SettingsHandler) UpdateAbout(c *gin.Context) {
	var form dto.AboutForm
	if err := c.ShouldBind(&form); err != nil {
		respondMessage(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	image, closeImage, err := readImage(c, "image")
	if err != nil {
		respondError(c, err)
		return
	}
	defer closeImage()

	settings, err := h.facade.UpdateAbout(c.Request.Context(), form.AboutBio, image)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SettingsEnvelope{Message: "About section updated successfully", Settings: dto.NewSettingsResponse(settings)})
}

func bindContactPatch(c *gin.Context) (model.ContactPatch, error) {
	if !isMultipart(c) && c.ContentType() != gin.MIMEPOSTForm {
		var body dto.ContactJSON
		if err := c.ShouldBindJSON(&body); err != nil {
			return model.ContactPatch{}, fmt.Errorf("%w: Invalid request body", domainErrors.ErrValidation)
		}
		return model.ContactPatch{
			ContactEmail:      body.ContactEmail,
			ContactPhone:      body.ContactPhone,
			WhatsappNumber:    body.WhatsappNumber,
			InstagramLink:     body.InstagramLink,
			CommissionPricing: body.CommissionPricing,
		}, nil
	}

	var form dto.ContactForm
	if err := c.ShouldBind(&form); err != nil {
		return model.ContactPatch{}, fmt.Errorf("%w: Invalid settings fields", domainErrors.ErrValidation)
	}
	patch := model.ContactPatch{
		ContactEmail:   form.ContactEmail,
		ContactPhone:   form.ContactPhone,
		WhatsappNumber: form.WhatsappNumber,
		InstagramLink:  form.InstagramLink,
	}
	if raw := strings.TrimSpace(form.CommissionPricing); raw != "" {
		if err := json.Unmarshal([]byte(raw), &patch.CommissionPricing); err != nil {
			return model.ContactPatch{}, fmt.Errorf("%w: commissionPricing must be a JSON array", domainErrors.ErrValidation)
		}
	}
	return patch, nil
}
