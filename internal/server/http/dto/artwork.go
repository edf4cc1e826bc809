package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/atelier/internal/domain/model"
)

// ArtworkForm binds multipart or JSON artwork fields. Pointers distinguish
// an omitted field from an empty one.
type ArtworkForm struct {
	Title         *string `form:"title" json:"title"`
	Caption       *string `form:"caption" json:"caption"`
	InstagramLink *string `form:"instagramLink" json:"instagramLink"`
	Category      *string `form:"category" json:"category"`
	ArtistNotes   *string `form:"artistNotes" json:"artistNotes"`
	SizeMedium    *string `form:"sizeMedium" json:"sizeMedium"`
	Price         *string `form:"price" json:"price"`
	IsForSale     *bool   `form:"isForSale" json:"isForSale"`
	IsAvailable   *bool   `form:"isAvailable" json:"isAvailable"`
}

// ArtworkQuery is the catalog listing query string.
type ArtworkQuery struct {
	Category string `form:"category"`
	ForSale  string `form:"forSale"`
	Page     int    `form:"page"`
	Limit    int    `form:"limit"`
}

// CommentRequest is a visitor comment.
type CommentRequest struct {
	User string `json:"user" form:"user"`
	Text string `json:"text" form:"text"`
}

// CommentResponse is the JSON view of a comment.
type CommentResponse struct {
	ID        string    `json:"id"`
	User      string    `json:"user"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// ArtworkResponse is the JSON view of an artwork.
type ArtworkResponse struct {
	ID            string            `json:"id"`
	Title         string            `json:"title"`
	Caption       string            `json:"caption"`
	InstagramLink string            `json:"instagramLink,omitempty"`
	ImageURL      string            `json:"imageUrl"`
	Category      string            `json:"category"`
	ArtistNotes   string            `json:"artistNotes,omitempty"`
	SizeMedium    string            `json:"sizeMedium"`
	Price         decimal.Decimal   `json:"price"`
	IsAvailable   bool              `json:"isAvailable"`
	IsForSale     bool              `json:"isForSale"`
	Likes         int               `json:"likes"`
	Comments      []CommentResponse `json:"comments"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`
}

// ArtworkEnvelope pairs an artwork with a message.
type ArtworkEnvelope struct {
	Message string          `json:"message"`
	Artwork ArtworkResponse `json:"artwork"`
}

// LikesResponse returns the like counter after an increment.
type LikesResponse struct {
	Likes int `json:"likes"`
}

// CommentsEnvelope returns all comments after a new one was added.
type CommentsEnvelope struct {
	Message  string            `json:"message"`
	Comments []CommentResponse `json:"comments"`
}

// SignatureResponse carries direct upload parameters.
type SignatureResponse struct {
	Timestamp int64  `json:"timestamp"`
	Signature string `json:"signature"`
	APIKey    string `json:"apiKey"`
	CloudName string `json:"cloudName"`
	Folder    string `json:"folder"`
}

func NewCommentResponses(comments []model.Comment) []CommentResponse {
	out := make([]CommentResponse, 0, len(comments))
	for _, c := range comments {
		out = append(out, CommentResponse{ID: c.ID, User: c.User, Text: c.Text, CreatedAt: c.CreatedAt})
	}
	return out
}

func NewArtworkResponse(a model.Artwork) ArtworkResponse {
	return ArtworkResponse{
		ID:            a.ID,
		Title:         a.Title,
		Caption:       a.Caption,
		InstagramLink: a.InstagramLink,
		ImageURL:      a.ImageURL,
		Category:      string(a.Category),
		ArtistNotes:   a.ArtistNotes,
		SizeMedium:    a.SizeMedium,
		Price:         a.Price,
		IsAvailable:   a.IsAvailable,
		IsForSale:     a.IsForSale,
		Likes:         a.Likes,
		Comments:      NewCommentResponses(a.Comments),
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

func NewArtworkResponses(artworks []model.Artwork) []ArtworkResponse {
	out := make([]ArtworkResponse, 0, len(artworks))
	for _, a := range artworks {
		out = append(out, NewArtworkResponse(a))
	}
	return out
}
