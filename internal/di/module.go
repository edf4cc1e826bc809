package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/atelier/internal/adapter/cloudinary"
	"github.com/polkiloo/atelier/internal/adapter/mailer"
	"github.com/polkiloo/atelier/internal/app"
	"github.com/polkiloo/atelier/internal/config"
	"github.com/polkiloo/atelier/internal/logger"
	"github.com/polkiloo/atelier/internal/metrics"
	"github.com/polkiloo/atelier/internal/notify"
	"github.com/polkiloo/atelier/internal/pkg/auth"
	"github.com/polkiloo/atelier/internal/server/http/handlers"
	"github.com/polkiloo/atelier/internal/server/http/router"
	"github.com/polkiloo/atelier/internal/storage/postgres"
	"github.com/polkiloo/atelier/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		metrics.Module,
		auth.Module,
		postgres.Module,
		cloudinary.Module,
		mailer.Module,
		notify.Module,
		usecase.Module,
		fx.Provide(func(s *postgres.Storage) app.HealthChecker { return s }),
		fx.Provide(func(f *app.StudioFacade) handlers.StudioFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
