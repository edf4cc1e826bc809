package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ArtworkCategory groups gallery entries.
type ArtworkCategory string

const (
	CategorySketch   ArtworkCategory = "sketch"
	CategoryPortrait ArtworkCategory = "portrait"
	CategoryDigital  ArtworkCategory = "digital"
	CategoryPainting ArtworkCategory = "painting"
	CategoryOther    ArtworkCategory = "other"
)

// Valid reports whether the category is known.
func (c ArtworkCategory) Valid() bool {
	switch c {
	case CategorySketch, CategoryPortrait, CategoryDigital, CategoryPainting, CategoryOther:
		return true
	}
	return false
}

// DefaultSizeMedium is shown when the admin leaves the field blank.
const DefaultSizeMedium = "Not specified"

// Artwork is a gallery entry.
type Artwork struct {
	ID            string
	Title         string
	Caption       string
	InstagramLink string
	ImageURL      string
	Category      ArtworkCategory
	ArtistNotes   string
	SizeMedium    string
	Price         decimal.Decimal
	IsAvailable   bool
	IsForSale     bool
	Likes         int
	Comments      []Comment
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Comment is a visitor note attached to an artwork.
type Comment struct {
	ID        string
	User      string
	Text      string
	CreatedAt time.Time
}

// ArtworkFilter narrows catalog listings.
type ArtworkFilter struct {
	Category ArtworkCategory
	ForSale  *bool
	Page     int
	Limit    int
}

// Offset returns the number of rows skipped for the filter page.
func (f ArtworkFilter) Offset() int {
	if f.Page <= 1 {
		return 0
	}
	return (f.Page - 1) * f.Limit
}

// ArtworkPage is a slice of the catalog plus paging totals.
type ArtworkPage struct {
	Artworks   []Artwork
	Total      int
	Page       int
	TotalPages int
}
