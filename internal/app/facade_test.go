package app

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	domainErrors "github.com/polkiloo/atelier/internal/domain/errors"
	"github.com/polkiloo/atelier/internal/domain/model"
	"github.com/polkiloo/atelier/internal/metrics"
	pkgAuth "github.com/polkiloo/atelier/internal/pkg/auth"
	testhelpers "github.com/polkiloo/atelier/internal/test"
	"github.com/polkiloo/atelier/internal/usecase"
)

type healthStub struct{ err error }

func (h healthStub) HealthCheck(context.Context) error { return h.err }

type facadeDeps struct {
	users    *testhelpers.UserRepositoryStub
	orders   *testhelpers.OrderRepositoryStub
	artworks *testhelpers.ArtworkRepositoryStub
	settings *testhelpers.SettingsRepositoryStub
	notifier *testhelpers.NotifierMock
	uploader *testhelpers.UploaderStub
}

func newFacade(health HealthChecker) (*StudioFacade, facadeDeps) {
	deps := facadeDeps{
		users:    testhelpers.NewUserRepositoryStub(),
		orders:   testhelpers.NewOrderRepositoryStub(),
		artworks: testhelpers.NewArtworkRepositoryStub(),
		settings: testhelpers.NewSettingsRepositoryStub(),
		notifier: &testhelpers.NotifierMock{},
		uploader: &testhelpers.UploaderStub{},
	}
	opts := pkgAuth.Options{UserTTL: time.Hour, AdminTTL: time.Minute}
	admin := usecase.AdminCredentials{Email: "admin@studio.test", Password: "secret"}
	logger := zap.NewNop()

	facade := NewStudioFacade(
		usecase.NewAuthUseCase(deps.users, testhelpers.HasherStub{}, &testhelpers.StrategyStub{}, opts, admin, logger),
		usecase.NewOrderUseCase(deps.orders, deps.notifier, metrics.New(), logger),
		usecase.NewArtworkUseCase(deps.artworks, deps.uploader, logger),
		usecase.NewSettingsUseCase(deps.settings, deps.uploader, logger),
		usecase.NewDashboardUseCase(deps.users, deps.orders, deps.artworks),
		health,
	)
	return facade, deps
}

func TestStudioFacadeAuth(t *testing.T) {
	facade, _ := newFacade(nil)
	ctx := context.Background()

	user, err := facade.Register(ctx, usecase.RegisterInput{Email: "ann@example.com", Password: "pw"})
	require.NoError(t, err)

	logged, token, err := facade.Login(ctx, "ann@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, user.ID, logged.ID)

	principal, err := facade.Authenticate(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, principal.UserID)

	admin, _, err := facade.AdminLogin(ctx, "admin@studio.test", "secret")
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, admin.Role)
}

func TestStudioFacadeOrders(t *testing.T) {
	facade, deps := newFacade(nil)
	ctx := context.Background()
	owner := model.Principal{UserID: "u-1", Username: "ann", Email: "ann@example.com", Role: model.RoleUser}

	order, err := facade.PlaceOrder(ctx, owner, usecase.CreateOrderInput{Type: model.OrderTypeCommission, Description: "portrait"})
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusPending, order.Status)

	deps.notifier.On("OrderStatusChanged", mock.Anything, mock.Anything, model.OrderStatusAccepted, "").Return(nil).Once()
	order, err = facade.SetOrderStatus(ctx, order.ID, model.OrderStatusAccepted, "")
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusAccepted, order.Status)

	deps.notifier.On("OrderCancelledByOwner", mock.Anything, mock.Anything, "too slow").Return(nil).Once()
	order, err = facade.CancelOrder(ctx, owner, order.ID, "too slow")
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusCancelled, order.Status)
	deps.notifier.AssertExpectations(t)

	all, err := facade.AllOrders(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	mine, err := facade.MyOrders(ctx, owner)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	got, err := facade.Order(ctx, owner, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)
}

func TestStudioFacadeArtworks(t *testing.T) {
	facade, deps := newFacade(nil)
	ctx := context.Background()
	title, caption := "Dusk", "ink"

	created, err := facade.CreateArtwork(ctx, usecase.ArtworkInput{Title: &title, Caption: &caption},
		&usecase.Image{Filename: "dusk.png", Content: strings.NewReader("x")})
	require.NoError(t, err)
	require.Len(t, deps.uploader.Calls, 1)

	page, err := facade.Artworks(ctx, model.ArtworkFilter{})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Total)

	newTitle := "Dawn"
	updated, err := facade.UpdateArtwork(ctx, created.ID, usecase.ArtworkInput{Title: &newTitle}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Dawn", updated.Title)

	likes, err := facade.LikeArtwork(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, likes)

	comments, err := facade.CommentArtwork(ctx, created.ID, "bo", "nice")
	require.NoError(t, err)
	require.Len(t, comments, 1)
	require.NoError(t, facade.DeleteComment(ctx, created.ID, comments[0].ID))

	got, err := facade.Artwork(ctx, created.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Comments)

	sig, err := facade.SignUpload("")
	require.NoError(t, err)
	assert.Equal(t, usecase.FolderArtworks, sig.Folder)

	require.NoError(t, facade.DeleteArtwork(ctx, created.ID))
	_, err = facade.Artwork(ctx, created.ID)
	assert.ErrorIs(t, err, domainErrors.ErrNotFound)
}

func TestStudioFacadeSettingsAndStats(t *testing.T) {
	facade, _ := newFacade(nil)
	ctx := context.Background()
	img := func() *usecase.Image { return &usecase.Image{Filename: "a.png", Content: strings.NewReader("x")} }

	settings, err := facade.Settings(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultAboutBio, settings.AboutBio)

	email := "hi@studio.test"
	settings, err = facade.UpdateContact(ctx, model.ContactPatch{ContactEmail: &email}, nil)
	require.NoError(t, err)
	assert.Equal(t, email, settings.ContactEmail)

	bio := "I draw"
	_, err = facade.UpdateAbout(ctx, &bio, nil)
	require.NoError(t, err)
	about, err := facade.About(ctx)
	require.NoError(t, err)
	assert.Equal(t, "I draw", about.AboutBio)

	settings, err = facade.UploadAsset(ctx, usecase.AssetLogo, img())
	require.NoError(t, err)
	assert.NotEmpty(t, settings.LogoURL)

	settings, err = facade.AddBackground(ctx, img())
	require.NoError(t, err)
	assert.Len(t, settings.BackgroundArtworks, 1)

	settings, err = facade.AddFunFact(ctx, "tea")
	require.NoError(t, err)
	settings, err = facade.DeleteFunFact(ctx, settings.FunFacts[0].ID)
	require.NoError(t, err)
	assert.Empty(t, settings.FunFacts)

	stats, err := facade.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.Stats{}, *stats)
}

func TestStudioFacadePing(t *testing.T) {
	facade, _ := newFacade(nil)
	assert.NoError(t, facade.Ping(context.Background()))

	down := errors.New("db down")
	facade, _ = newFacade(healthStub{err: down})
	assert.ErrorIs(t, facade.Ping(context.Background()), down)
}
