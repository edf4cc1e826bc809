package auth

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/polkiloo/atelier/internal/config"
)

// Module provides authentication primitives via fx.
var Module = fx.Options(
	fx.Provide(newPasswordHasher),
	fx.Provide(newOptions),
	fx.Provide(newTokenStrategy),
)

// passwordCost matches the cost of hashes already stored by earlier deployments.
const passwordCost = 12

func newPasswordHasher() PasswordHasher {
	return NewBcryptHasher(passwordCost)
}

func newOptions(cfg *config.Config) Options {
	return Options{UserTTL: cfg.UserTokenTTL, AdminTTL: cfg.AdminTokenTTL}.withDefaults()
}

type strategyParams struct {
	fx.In

	Config  *config.Config
	Options Options
	Logger  *zap.Logger
}

func newTokenStrategy(p strategyParams) Strategy {
	if p.Config.UsesDefaultJWTSecret() && p.Logger != nil {
		p.Logger.Warn("JWT_SECRET is not set, tokens are signed with the built-in default secret and can be forged")
	}
	return NewJWTStrategy(p.Config.JWTSecret, p.Options)
}
