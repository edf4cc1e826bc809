package cloudinary

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/polkiloo/atelier/internal/config"
)

// Module exposes the asset uploader to the fx graph.
var Module = fx.Provide(newUploader)

type uploaderParams struct {
	fx.In

	Config *config.Config
	Logger *zap.Logger
}

func newUploader(p uploaderParams) (Uploader, error) {
	logger := p.Logger.Named("cloudinary")
	if !p.Config.CloudinaryEnabled() {
		logger.Warn("cloudinary credentials missing, uploads disabled")
		return Disabled{}, nil
	}
	return NewHTTPClient(DefaultBaseURL, Credentials{
		CloudName: p.Config.CloudinaryCloudName,
		APIKey:    p.Config.CloudinaryAPIKey,
		APISecret: p.Config.CloudinaryAPISecret,
	}, logger)
}
