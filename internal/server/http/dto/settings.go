package dto

import (
	"time"

	"github.com/polkiloo/atelier/internal/domain/model"
)

// ContactForm binds the settings update. CommissionPricing arrives as a JSON
// array string in multipart forms and as a plain array in JSON bodies.
type ContactForm struct {
	ContactEmail      *string `form:"contactEmail" json:"contactEmail"`
	ContactPhone      *string `form:"contactPhone" json:"contactPhone"`
	WhatsappNumber    *string `form:"whatsappNumber" json:"whatsappNumber"`
	InstagramLink     *string `form:"instagramLink" json:"instagramLink"`
	CommissionPricing string  `form:"commissionPricing" json:"-"`
}

// ContactJSON is the JSON flavour of ContactForm.
type ContactJSON struct {
	ContactEmail      *string             `json:"contactEmail"`
	ContactPhone      *string             `json:"contactPhone"`
	WhatsappNumber    *string             `json:"whatsappNumber"`
	InstagramLink     *string             `json:"instagramLink"`
	CommissionPricing []model.PricingTier `json:"commissionPricing"`
}

// AboutForm updates the about section.
type AboutForm struct {
	AboutBio *string `form:"aboutBio" json:"aboutBio"`
}

// FunFactRequest adds a fun fact.
type FunFactRequest struct {
	Fact string `json:"fact" form:"fact"`
}

// FunFactResponse is the JSON view of a fun fact.
type FunFactResponse struct {
	ID        string    `json:"id"`
	Fact      string    `json:"fact"`
	CreatedAt time.Time `json:"createdAt"`
}

// SettingsResponse is the JSON view of the site settings.
type SettingsResponse struct {
	LogoURL            string              `json:"logoUrl"`
	BackgroundArtworks []string            `json:"backgroundArtworks"`
	FunFacts           []FunFactResponse   `json:"funFacts"`
	ProfilePicURL      string              `json:"profilePicUrl"`
	AboutBio           string              `json:"aboutBio"`
	ContactEmail       string              `json:"contactEmail"`
	ContactPhone       string              `json:"contactPhone"`
	WhatsappNumber     string              `json:"whatsappNumber"`
	InstagramLink      string              `json:"instagramLink"`
	CommissionPricing  []model.PricingTier `json:"commissionPricing"`
	UpdatedAt          time.Time           `json:"updatedAt"`
}

// SettingsEnvelope pairs settings with a message.
type SettingsEnvelope struct {
	Message  string           `json:"message"`
	Settings SettingsResponse `json:"settings"`
}

// AboutResponse is the public about section.
type AboutResponse struct {
	ProfilePicURL string `json:"profilePicUrl"`
	AboutBio      string `json:"aboutBio"`
}

// StatsResponse wraps dashboard counters.
type StatsResponse struct {
	Message string    `json:"message"`
	Data    StatsData `json:"data"`
}

// StatsData are the dashboard counters.
type StatsData struct {
	Artworks   int `json:"artworks"`
	Orders     int `json:"orders"`
	Users      int `json:"users"`
	TotalLikes int `json:"totalLikes"`
}

func NewSettingsResponse(s *model.Settings) SettingsResponse {
	resp := SettingsResponse{
		LogoURL:            s.LogoURL,
		BackgroundArtworks: s.BackgroundArtworks,
		FunFacts:           make([]FunFactResponse, 0, len(s.FunFacts)),
		ProfilePicURL:      s.ProfilePicURL,
		AboutBio:           s.AboutBio,
		ContactEmail:       s.ContactEmail,
		ContactPhone:       s.ContactPhone,
		WhatsappNumber:     s.WhatsappNumber,
		InstagramLink:      s.InstagramLink,
		CommissionPricing:  s.CommissionPricing,
		UpdatedAt:          s.UpdatedAt,
	}
	for _, f := range s.FunFacts {
		resp.FunFacts = append(resp.FunFacts, FunFactResponse{ID: f.ID, Fact: f.Fact, CreatedAt: f.CreatedAt})
	}
	if resp.BackgroundArtworks == nil {
		resp.BackgroundArtworks = []string{}
	}
	if resp.CommissionPricing == nil {
		resp.CommissionPricing = []model.PricingTier{}
	}
	return resp
}
