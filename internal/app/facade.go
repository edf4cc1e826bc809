package app

import (
	"context"

	"github.com/polkiloo/atelier/internal/adapter/cloudinary"
	"github.com/polkiloo/atelier/internal/domain/model"
	"github.com/polkiloo/atelier/internal/usecase"
)

// HealthChecker reports whether backing storage is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// StudioFacade gathers the use cases served over HTTP.
type StudioFacade struct {
	auth      *usecase.AuthUseCase
	orders    *usecase.OrderUseCase
	artworks  *usecase.ArtworkUseCase
	settings  *usecase.SettingsUseCase
	dashboard *usecase.DashboardUseCase
	health    HealthChecker
}

func NewStudioFacade(
	auth *usecase.AuthUseCase,
	orders *usecase.OrderUseCase,
	artworks *usecase.ArtworkUseCase,
	settings *usecase.SettingsUseCase,
	dashboard *usecase.DashboardUseCase,
	health HealthChecker,
) *StudioFacade {
	return &StudioFacade{
		auth:      auth,
		orders:    orders,
		artworks:  artworks,
		settings:  settings,
		dashboard: dashboard,
		health:    health,
	}
}

func (f *StudioFacade) Register(ctx context.Context, in usecase.RegisterInput) (*model.User, error) {
	return f.auth.Register(ctx, in)
}

func (f *StudioFacade) Login(ctx context.Context, emailOrPhone, password string) (*model.User, string, error) {
	return f.auth.Login(ctx, emailOrPhone, password)
}

func (f *StudioFacade) AdminLogin(ctx context.Context, email, password string) (*model.User, string, error) {
	return f.auth.AdminLogin(ctx, email, password)
}

func (f *StudioFacade) Authenticate(ctx context.Context, token string) (model.Principal, error) {
	return f.auth.Authenticate(ctx, token)
}

func (f *StudioFacade) PlaceOrder(ctx context.Context, submitter model.Principal, in usecase.CreateOrderInput) (*model.Order, error) {
	return f.orders.Create(ctx, submitter, in)
}

func (f *StudioFacade) SetOrderStatus(ctx context.Context, orderID string, status model.OrderStatus, reason string) (*model.Order, error) {
	return f.orders.AdminSetStatus(ctx, orderID, status, reason)
}

func (f *StudioFacade) CancelOrder(ctx context.Context, requester model.Principal, orderID, reason string) (*model.Order, error) {
	return f.orders.OwnerCancel(ctx, requester, orderID, reason)
}

func (f *StudioFacade) AllOrders(ctx context.Context) ([]model.Order, error) {
	return f.orders.AdminListAll(ctx)
}

func (f *StudioFacade) MyOrders(ctx context.Context, requester model.Principal) ([]model.Order, error) {
	return f.orders.OwnerListMine(ctx, requester)
}

func (f *StudioFacade) Order(ctx context.Context, requester model.Principal, orderID string) (*model.Order, error) {
	return f.orders.Get(ctx, requester, orderID)
}

func (f *StudioFacade) Artworks(ctx context.Context, filter model.ArtworkFilter) (*model.ArtworkPage, error) {
	return f.artworks.List(ctx, filter)
}

func (f *StudioFacade) Artwork(ctx context.Context, id string) (*model.Artwork, error) {
	return f.artworks.Get(ctx, id)
}

func (f *StudioFacade) CreateArtwork(ctx context.Context, in usecase.ArtworkInput, image *usecase.Image) (*model.Artwork, error) {
	return f.artworks.Create(ctx, in, image)
}

func (f *StudioFacade) UpdateArtwork(ctx context.Context, id string, in usecase.ArtworkInput, image *usecase.Image) (*model.Artwork, error) {
	return f.artworks.Update(ctx, id, in, image)
}

func (f *StudioFacade) DeleteArtwork(ctx context.Context, id string) error {
	return f.artworks.Delete(ctx, id)
}

func (f *StudioFacade) LikeArtwork(ctx context.Context, id string) (int, error) {
	return f.artworks.Like(ctx, id)
}

func (f *StudioFacade) CommentArtwork(ctx context.Context, id, user, text string) ([]model.Comment, error) {
	return f.artworks.Comment(ctx, id, user, text)
}

func (f *StudioFacade) DeleteComment(ctx context.Context, artworkID, commentID string) error {
	return f.artworks.DeleteComment(ctx, artworkID, commentID)
}

func (f *StudioFacade) SignUpload(folder string) (*cloudinary.Signature, error) {
	return f.artworks.SignUpload(folder)
}

func (f *StudioFacade) Settings(ctx context.Context) (*model.Settings, error) {
	return f.settings.Get(ctx)
}

func (f *StudioFacade) About(ctx context.Context) (*usecase.About, error) {
	return f.settings.GetAbout(ctx)
}

func (f *StudioFacade) UpdateContact(ctx context.Context, patch model.ContactPatch, logo *usecase.Image) (*model.Settings, error) {
	return f.settings.UpdateContact(ctx, patch, logo)
}

func (f *StudioFacade) UpdateAbout(ctx context.Context, bio *string, image *usecase.Image) (*model.Settings, error) {
	return f.settings.UpdateAbout(ctx, bio, image)
}

func (f *StudioFacade) UploadAsset(ctx context.Context, kind string, image *usecase.Image) (*model.Settings, error) {
	return f.settings.UploadAsset(ctx, kind, image)
}

func (f *StudioFacade) AddBackground(ctx context.Context, image *usecase.Image) (*model.Settings, error) {
	return f.settings.AddBackground(ctx, image)
}

func (f *StudioFacade) AddFunFact(ctx context.Context, fact string) (*model.Settings, error) {
	return f.settings.AddFunFact(ctx, fact)
}

func (f *StudioFacade) DeleteFunFact(ctx context.Context, id string) (*model.Settings, error) {
	return f.settings.DeleteFunFact(ctx, id)
}

func (f *StudioFacade) Stats(ctx context.Context) (*model.Stats, error) {
	return f.dashboard.Stats(ctx)
}

// Ping checks storage health; a facade without a checker is always healthy.
func (f *StudioFacade) Ping(ctx context.Context) error {
	if f.health == nil {
		return nil
	}
	return f.health.HealthCheck(ctx)
}
