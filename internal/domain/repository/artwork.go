package repository

import (
	"context"

	"github.com/polkiloo/atelier/internal/domain/model"
)

// ArtworkRepository describes persistence operations for the catalog.
type ArtworkRepository interface {
	Create(ctx context.Context, artwork model.Artwork) (*model.Artwork, error)
	GetByID(ctx context.Context, id string) (*model.Artwork, error)
	List(ctx context.Context, filter model.ArtworkFilter) ([]model.Artwork, int, error)
	Update(ctx context.Context, artwork model.Artwork) (*model.Artwork, error)
	Delete(ctx context.Context, id string) error
	IncrementLikes(ctx context.Context, id string) (int, error)
	AddComment(ctx context.Context, artworkID string, comment model.Comment) ([]model.Comment, error)
	DeleteComment(ctx context.Context, artworkID, commentID string) error
	Count(ctx context.Context) (int, error)
	TotalLikes(ctx context.Context) (int, error)
}
