package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/polkiloo/atelier/internal/adapter/cloudinary"
	domainErrors "github.com/polkiloo/atelier/internal/domain/errors"
	"github.com/polkiloo/atelier/internal/domain/model"
	"github.com/polkiloo/atelier/internal/domain/repository"
)

const (
	DefaultPageLimit = 12
	MaxPageLimit     = 100

	anonymousCommenter = "Anonymous"
)

// Upload folders used for asset storage.
const (
	FolderArtworks    = "artworks"
	FolderAdminAssets = "admin_assets"
	FolderBackgrounds = "background_artworks"
	FolderReferences  = "order_references"
)

var signableFolders = map[string]bool{
	FolderArtworks:    true,
	FolderAdminAssets: true,
	FolderBackgrounds: true,
	FolderReferences:  true,
}

// Image is an uploaded file waiting to be stored.
type Image struct {
	Filename string
	Content  io.Reader
}

// ArtworkInput carries create and update fields; nil means "not supplied".
type ArtworkInput struct {
	Title         *string
	Caption       *string
	InstagramLink *string
	Category      *model.ArtworkCategory
	ArtistNotes   *string
	SizeMedium    *string
	Price         decimal.NullDecimal
	IsForSale     *bool
	IsAvailable   *bool
}

// ArtworkUseCase manages the public gallery.
type ArtworkUseCase struct {
	artworks repository.ArtworkRepository
	uploader cloudinary.Uploader
	logger   *zap.Logger
}

// NewArtworkUseCase constructs ArtworkUseCase.
func NewArtworkUseCase(artworks repository.ArtworkRepository, uploader cloudinary.Uploader, logger *zap.Logger) *ArtworkUseCase {
	return &ArtworkUseCase{artworks: artworks, uploader: uploader, logger: logger}
}

// List returns one page of the catalog, newest first.
func (u *ArtworkUseCase) List(ctx context.Context, filter model.ArtworkFilter) (*model.ArtworkPage, error) {
	if filter.Category != "" && !filter.Category.Valid() {
		return nil, fmt.Errorf("%w: unknown category %q", domainErrors.ErrValidation, filter.Category)
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	switch {
	case filter.Limit <= 0:
		filter.Limit = DefaultPageLimit
	case filter.Limit > MaxPageLimit:
		filter.Limit = MaxPageLimit
	}

	artworks, total, err := u.artworks.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &model.ArtworkPage{
		Artworks:   artworks,
		Total:      total,
		Page:       filter.Page,
		TotalPages: (total + filter.Limit - 1) / filter.Limit,
	}, nil
}

// Get returns a single artwork with its comments.
func (u *ArtworkUseCase) Get(ctx context.Context, id string) (*model.Artwork, error) {
	artwork, err := u.artworks.GetByID(ctx, id)
	if err != nil {
		return nil, artworkNotFound(err)
	}
	return artwork, nil
}

// Create uploads the image and stores a new artwork.
func (u *ArtworkUseCase) Create(ctx context.Context, in ArtworkInput, image *Image) (*model.Artwork, error) {
	if image == nil {
		return nil, fmt.Errorf("%w: Image required", domainErrors.ErrValidation)
	}

	artwork := model.Artwork{
		Category:   model.CategoryOther,
		SizeMedium: model.DefaultSizeMedium,
		Price:      decimal.Zero,
	}
	applyArtworkInput(&artwork, in)
	if in.IsAvailable == nil {
		artwork.IsAvailable = artwork.IsForSale
	}
	if err := validateArtwork(artwork); err != nil {
		return nil, err
	}

	url, err := u.uploader.Upload(ctx, FolderArtworks, image.Filename, image.Content)
	if err != nil {
		return nil, fmt.Errorf("upload artwork image: %w", err)
	}
	artwork.ImageURL = url

	created, err := u.artworks.Create(ctx, artwork)
	if err != nil {
		return nil, err
	}
	u.logger.Info("artwork created", zap.String("artwork_id", created.ID))
	return created, nil
}

// Update applies a partial change; a new image replaces the old URL.
func (u *ArtworkUseCase) Update(ctx context.Context, id string, in ArtworkInput, image *Image) (*model.Artwork, error) {
	artwork, err := u.artworks.GetByID(ctx, id)
	if err != nil {
		return nil, artworkNotFound(err)
	}
	applyArtworkInput(artwork, in)
	if err := validateArtwork(*artwork); err != nil {
		return nil, err
	}

	if image != nil {
		url, err := u.uploader.Upload(ctx, FolderArtworks, image.Filename, image.Content)
		if err != nil {
			return nil, fmt.Errorf("upload artwork image: %w", err)
		}
		artwork.ImageURL = url
	}

	updated, err := u.artworks.Update(ctx, *artwork)
	if err != nil {
		return nil, artworkNotFound(err)
	}
	return updated, nil
}

// Delete removes an artwork and its comments.
func (u *ArtworkUseCase) Delete(ctx context.Context, id string) error {
	if err := u.artworks.Delete(ctx, id); err != nil {
		return artworkNotFound(err)
	}
	u.logger.Info("artwork deleted", zap.String("artwork_id", id))
	return nil
}

// Like adds one like and returns the new count.
func (u *ArtworkUseCase) Like(ctx context.Context, id string) (int, error) {
	likes, err := u.artworks.IncrementLikes(ctx, id)
	if err != nil {
		return 0, artworkNotFound(err)
	}
	return likes, nil
}

// Comment adds a visitor comment and returns all comments of the artwork.
func (u *ArtworkUseCase) Comment(ctx context.Context, id, user, text string) ([]model.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: Comment text required", domainErrors.ErrValidation)
	}
	user = strings.TrimSpace(user)
	if user == "" {
		user = anonymousCommenter
	}
	comments, err := u.artworks.AddComment(ctx, id, model.Comment{User: user, Text: text})
	if err != nil {
		return nil, artworkNotFound(err)
	}
	return comments, nil
}

// DeleteComment removes a comment from an artwork.
func (u *ArtworkUseCase) DeleteComment(ctx context.Context, artworkID, commentID string) error {
	if err := u.artworks.DeleteComment(ctx, artworkID, commentID); err != nil {
		if domainErrors.Detail(err, domainErrors.ErrNotFound) != "" {
			return err
		}
		return artworkNotFound(err)
	}
	return nil
}

// SignUpload returns direct-upload parameters for one of the known folders.
func (u *ArtworkUseCase) SignUpload(folder string) (*cloudinary.Signature, error) {
	if folder == "" {
		folder = FolderArtworks
	}
	if !signableFolders[folder] {
		return nil, fmt.Errorf("%w: unknown upload folder %q", domainErrors.ErrValidation, folder)
	}
	return u.uploader.SignUpload(folder)
}

func applyArtworkInput(a *model.Artwork, in ArtworkInput) {
	if in.Title != nil {
		a.Title = strings.TrimSpace(*in.Title)
	}
	if in.Caption != nil {
		a.Caption = strings.TrimSpace(*in.Caption)
	}
	if in.InstagramLink != nil {
		a.InstagramLink = strings.TrimSpace(*in.InstagramLink)
	}
	if in.Category != nil && *in.Category != "" {
		a.Category = *in.Category
	}
	if in.ArtistNotes != nil {
		a.ArtistNotes = *in.ArtistNotes
	}
	if in.SizeMedium != nil {
		a.SizeMedium = strings.TrimSpace(*in.SizeMedium)
		if a.SizeMedium == "" {
			a.SizeMedium = model.DefaultSizeMedium
		}
	}
	if in.Price.Valid {
		a.Price = in.Price.Decimal
	}
	if in.IsForSale != nil {
		a.IsForSale = *in.IsForSale
	}
	if in.IsAvailable != nil {
		a.IsAvailable = *in.IsAvailable
	}
}

func validateArtwork(a model.Artwork) error {
	if a.Title == "" || a.Caption == "" {
		return fmt.Errorf("%w: Title and caption are required", domainErrors.ErrValidation)
	}
	if !a.Category.Valid() {
		return fmt.Errorf("%w: unknown category %q", domainErrors.ErrValidation, a.Category)
	}
	if a.Price.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", domainErrors.ErrValidation)
	}
	return nil
}

func artworkNotFound(err error) error {
	if errors.Is(err, domainErrors.ErrNotFound) {
		return fmt.Errorf("%w: Artwork not found", domainErrors.ErrNotFound)
	}
	return err
}
