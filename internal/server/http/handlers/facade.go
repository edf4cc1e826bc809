package handlers

import (
	"context"

	"github.com/polkiloo/atelier/internal/adapter/cloudinary"
	"github.com/polkiloo/atelier/internal/domain/model"
	"github.com/polkiloo/atelier/internal/usecase"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, in usecase.RegisterInput) (*model.User, error)
	Login(ctx context.Context, emailOrPhone, password string) (*model.User, string, error)
	AdminLogin(ctx context.Context, email, password string) (*model.User, string, error)
	Authenticate(ctx context.Context, token string) (model.Principal, error)
}

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	PlaceOrder(ctx context.Context, submitter model.Principal, in usecase.CreateOrderInput) (*model.Order, error)
	SetOrderStatus(ctx context.Context, orderID string, status model.OrderStatus, reason string) (*model.Order, error)
	CancelOrder(ctx context.Context, requester model.Principal, orderID, reason string) (*model.Order, error)
	AllOrders(ctx context.Context) ([]model.Order, error)
	MyOrders(ctx context.Context, requester model.Principal) ([]model.Order, error)
	Order(ctx context.Context, requester model.Principal, orderID string) (*model.Order, error)
}

// ArtworkFacade covers the public catalog and its administration.
type ArtworkFacade interface {
	Artworks(ctx context.Context, filter model.ArtworkFilter) (*model.ArtworkPage, error)
	Artwork(ctx context.Context, id string) (*model.Artwork, error)
	CreateArtwork(ctx context.Context, in usecase.ArtworkInput, image *usecase.Image) (*model.Artwork, error)
	UpdateArtwork(ctx context.Context, id string, in usecase.ArtworkInput, image *usecase.Image) (*model.Artwork, error)
	DeleteArtwork(ctx context.Context, id string) error
	LikeArtwork(ctx context.Context, id string) (int, error)
	CommentArtwork(ctx context.Context, id, user, text string) ([]model.Comment, error)
	DeleteComment(ctx context.Context, artworkID, commentID string) error
	SignUpload(folder string) (*cloudinary.Signature, error)
}

// SettingsFacade manages the site settings singleton.
type SettingsFacade interface {
	Settings(ctx context.Context) (*model.Settings, error)
	About(ctx context.Context) (*usecase.About, error)
	UpdateContact(ctx context.Context, patch model.ContactPatch, logo *usecase.Image) (*model.Settings, error)
	UpdateAbout(ctx context.Context, bio *string, image *usecase.Image) (*model.Settings, error)
	UploadAsset(ctx context.Context, kind string, image *usecase.Image) (*model.Settings, error)
	AddBackground(ctx context.Context, image *usecase.Image) (*model.Settings, error)
	AddFunFact(ctx context.Context, fact string) (*model.Settings, error)
	DeleteFunFact(ctx context.Context, id string) (*model.Settings, error)
}

// DashboardFacade exposes admin counters.
type DashboardFacade interface {
	Stats(ctx context.Context) (*model.Stats, error)
}

// HealthFacade reports dependency health.
type HealthFacade interface {
	Ping(ctx context.Context) error
}

// StudioFacade aggregates the full set of operations used across handlers.
type StudioFacade interface {
	AuthFacade
	OrderFacade
	ArtworkFacade
	SettingsFacade
	DashboardFacade
	HealthFacade
}
