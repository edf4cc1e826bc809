package repository

import (
	"context"

	"github.com/polkiloo/atelier/internal/domain/model"
)

// SettingsRepository stores the site settings singleton.
type SettingsRepository interface {
	// Get creates the singleton with defaults on first access.
	Get(ctx context.Context) (*model.Settings, error)
	UpdateContact(ctx context.Context, patch model.ContactPatch) (*model.Settings, error)
	SetAboutBio(ctx context.Context, bio string) (*model.Settings, error)
	SetLogo(ctx context.Context, url string) (*model.Settings, error)
	SetProfilePic(ctx context.Context, url string) (*model.Settings, error)
	AddBackground(ctx context.Context, url string) (*model.Settings, error)
	AddFunFact(ctx context.Context, fact model.FunFact) (*model.Settings, error)
	DeleteFunFact(ctx context.Context, id string) (*model.Settings, error)
}
