package mailer

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/polkiloo/atelier/internal/config"
)

// Module provides the Mailer used for customer notifications.
var Module = fx.Provide(newMailer)

type mailerParams struct {
	fx.In

	Config *config.Config
	Logger *zap.Logger
}

func newMailer(p mailerParams) (Mailer, error) {
	logger := p.Logger.Named("mailer")
	if !p.Config.MailEnabled() {
		logger.Warn("smtp not configured, notifications will only be logged")
		return NewLogMailer(logger), nil
	}
	return NewSMTPMailer(SMTPConfig{
		Host:     p.Config.SMTPHost,
		Port:     p.Config.SMTPPort,
		Username: p.Config.SMTPUsername,
		Password: p.Config.SMTPPassword,
		From:     p.Config.MailFrom,
	}, logger)
}
