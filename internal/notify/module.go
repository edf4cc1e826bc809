package notify

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/polkiloo/atelier/internal/adapter/mailer"
	"github.com/polkiloo/atelier/internal/config"
	"github.com/polkiloo/atelier/internal/metrics"
)

// Module provides the order notification dispatcher.
var Module = fx.Provide(newDispatcher)

type dispatcherParams struct {
	fx.In

	Config  *config.Config
	Mailer  mailer.Mailer
	Metrics *metrics.Metrics `optional:"true"`
	Logger  *zap.Logger
}

func newDispatcher(p dispatcherParams) (*Dispatcher, error) {
	return NewDispatcher(p.Mailer, p.Config.StudioName, p.Metrics, p.Logger.Named("notify"))
}
