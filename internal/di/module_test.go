package di

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/polkiloo/atelier/internal/app"
	"github.com/polkiloo/atelier/internal/config"
	"github.com/polkiloo/atelier/internal/domain/repository"
	"github.com/polkiloo/atelier/internal/server/http/handlers"
	"github.com/polkiloo/atelier/internal/storage/postgres"
	"github.com/polkiloo/atelier/internal/test"
)

func TestModuleComposesGraphWithReplacements(t *testing.T) {
	cfg := &config.Config{
		RunAddress:      ":0",
		DatabaseURI:     "postgres://stub",
		JWTSecret:       "secret",
		UserTokenTTL:    time.Hour,
		AdminTokenTTL:   time.Minute,
		StudioName:      "Atelier",
		ShutdownTimeout: time.Millisecond,
		PublicRateLimit: 1,
		PublicRateBurst: 1,
		MaxUploadBytes:  1 << 20,
	}

	storage := &postgres.Storage{}
	var (
		facade  *app.StudioFacade
		bound   handlers.StudioFacade
		checker app.HealthChecker
	)
	fxApp := fx.New(
		fx.NopLogger,
		fx.Supply(context.Background()),
		Module(
			fx.Replace(cfg),
			fx.Replace(zap.NewNop()),
			fx.Replace(storage),
			fx.Replace(repository.UserRepository(test.NewUserRepositoryStub())),
			fx.Replace(repository.OrderRepository(test.NewOrderRepositoryStub())),
			fx.Replace(repository.ArtworkRepository(test.NewArtworkRepositoryStub())),
			fx.Replace(repository.SettingsRepository(test.NewSettingsRepositoryStub())),
		),
		fx.Populate(&facade, &bound, &checker),
	)

	require.NoError(t, fxApp.Err())
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })
	require.NotNil(t, facade)
	assert.Same(t, facade, bound)
	assert.Same(t, storage, checker)
}
