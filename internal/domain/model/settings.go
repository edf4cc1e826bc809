package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultAboutBio is used until the admin writes their own.
const DefaultAboutBio = "Welcome to my art portfolio. This section will soon tell you about my journey."

// Settings is the site-wide singleton.
type Settings struct {
	LogoURL            string
	BackgroundArtworks []string
	FunFacts           []FunFact
	ProfilePicURL      string
	AboutBio           string
	ContactEmail       string
	ContactPhone       string
	WhatsappNumber     string
	InstagramLink      string
	CommissionPricing  []PricingTier
	UpdatedAt          time.Time
}

// FunFact is a short line shown on the landing page.
type FunFact struct {
	ID        string
	Fact      string
	CreatedAt time.Time
}

// PricingTier is one row of the commission price list.
type PricingTier struct {
	Size  string          `json:"size"`
	Price decimal.Decimal `json:"price"`
}

// ContactPatch carries optional settings updates; nil fields are left untouched.
type ContactPatch struct {
	ContactEmail      *string
	ContactPhone      *string
	WhatsappNumber    *string
	InstagramLink     *string
	LogoURL           *string
	CommissionPricing []PricingTier
}

// Stats summarises site activity for the dashboard.
type Stats struct {
	Artworks   int
	Orders     int
	Users      int
	TotalLikes int
}
