package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/polkiloo/atelier/internal/config"
)

func TestNewMailerUsesConfig(t *testing.T) {
	cfg := &config.Config{SMTPHost: "smtp.example.com", SMTPPort: 587, MailFrom: "studio@example.com"}
	m, err := newMailer(mailerParams{Config: cfg, Logger: zap.NewNop()})
	require.NoError(t, err)
	assert.IsType(t, &SMTPMailer{}, m)
}

func TestNewMailerFallsBackToLog(t *testing.T) {
	m, err := newMailer(mailerParams{Config: &config.Config{}, Logger: zap.NewNop()})
	require.NoError(t, err)
	assert.IsType(t, &LogMailer{}, m)
}
