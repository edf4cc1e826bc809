package usecase

import (
	"go.uber.org/fx"

	"github.com/polkiloo/atelier/internal/config"
	"github.com/polkiloo/atelier/internal/notify"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	newAdminCredentials,
	newOrderNotifier,
	NewAuthUseCase,
	NewOrderUseCase,
	NewArtworkUseCase,
	NewSettingsUseCase,
	NewDashboardUseCase,
)

func newAdminCredentials(cfg *config.Config) AdminCredentials {
	return AdminCredentials{Email: cfg.AdminEmail, Password: cfg.AdminPassword}
}

func newOrderNotifier(d *notify.Dispatcher) OrderNotifier {
	return d
}
