package cloudinary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/polkiloo/atelier/internal/config"
)

func TestNewUploaderUsesConfig(t *testing.T) {
	cfg := &config.Config{CloudinaryCloudName: "studio", CloudinaryAPIKey: "k", CloudinaryAPISecret: "s"}
	uploader, err := newUploader(uploaderParams{Config: cfg, Logger: zap.NewNop()})
	require.NoError(t, err)
	assert.IsType(t, &HTTPClient{}, uploader)
}

func TestNewUploaderFallsBackWhenUnconfigured(t *testing.T) {
	uploader, err := newUploader(uploaderParams{Config: &config.Config{}, Logger: zap.NewNop()})
	require.NoError(t, err)
	assert.IsType(t, Disabled{}, uploader)
}
