package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/polkiloo/atelier/internal/adapter/cloudinary"
	domainErrors "github.com/polkiloo/atelier/internal/domain/errors"
	"github.com/polkiloo/atelier/internal/domain/model"
	"github.com/polkiloo/atelier/internal/domain/repository"
)

// Asset kinds accepted by UploadAsset.
const (
	AssetLogo    = "logo"
	AssetProfile = "profile"
)

// About is the public about-page view of the settings.
type About struct {
	ProfilePicURL string
	AboutBio      string
}

// SettingsUseCase manages the site settings singleton.
type SettingsUseCase struct {
	settings repository.SettingsRepository
	uploader cloudinary.Uploader
	logger   *zap.Logger
}

// NewSettingsUseCase constructs SettingsUseCase.
func NewSettingsUseCase(settings repository.SettingsRepository, uploader cloudinary.Uploader, logger *zap.Logger) *SettingsUseCase {
	return &SettingsUseCase{settings: settings, uploader: uploader, logger: logger}
}

// Get returns the settings, creating defaults on first use.
func (u *SettingsUseCase) Get(ctx context.Context) (*model.Settings, error) {
	return u.settings.Get(ctx)
}

// GetAbout returns the about bio and profile picture.
func (u *SettingsUseCase) GetAbout(ctx context.Context) (*About, error) {
	s, err := u.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	return &About{ProfilePicURL: s.ProfilePicURL, AboutBio: s.AboutBio}, nil
}

// UpdateContact changes contact details. Empty fields keep their previous
// value and pricing is replaced only when supplied.
func (u *SettingsUseCase) UpdateContact(ctx context.Context, patch model.ContactPatch, logo *Image) (*model.Settings, error) {
	patch.ContactEmail = nonEmpty(patch.ContactEmail)
	patch.ContactPhone = nonEmpty(patch.ContactPhone)
	patch.WhatsappNumber = nonEmpty(patch.WhatsappNumber)
	patch.InstagramLink = nonEmpty(patch.InstagramLink)
	patch.LogoURL = nonEmpty(patch.LogoURL)

	for i, tier := range patch.CommissionPricing {
		patch.CommissionPricing[i].Size = strings.TrimSpace(tier.Size)
		if patch.CommissionPricing[i].Size == "" {
			return nil, fmt.Errorf("%w: pricing size is required", domainErrors.ErrValidation)
		}
		if tier.Price.IsNegative() {
			return nil, fmt.Errorf("%w: pricing must not be negative", domainErrors.ErrValidation)
		}
	}

	if logo != nil {
		url, err := u.uploader.Upload(ctx, FolderAdminAssets, logo.Filename, logo.Content)
		if err != nil {
			return nil, fmt.Errorf("upload logo: %w", err)
		}
		patch.LogoURL = &url
	}
	return u.settings.UpdateContact(ctx, patch)
}

// UpdateAbout changes the about bio and/or the profile picture.
func (u *SettingsUseCase) UpdateAbout(ctx context.Context, bio *string, image *Image) (*model.Settings, error) {
	var (
		settings *model.Settings
		err      error
	)
	if bio = nonEmpty(bio); bio != nil {
		if settings, err = u.settings.SetAboutBio(ctx, *bio); err != nil {
			return nil, err
		}
	}
	if image != nil {
		url, err := u.uploader.Upload(ctx, FolderAdminAssets, image.Filename, image.Content)
		if err != nil {
			return nil, fmt.Errorf("upload profile picture: %w", err)
		}
		if settings, err = u.settings.SetProfilePic(ctx, url); err != nil {
			return nil, err
		}
	}
	if settings == nil {
		return u.settings.Get(ctx)
	}
	return settings, nil
}

// UploadAsset stores a logo or profile picture.
func (u *SettingsUseCase) UploadAsset(ctx context.Context, kind string, image *Image) (*model.Settings, error) {
	if image == nil {
		return nil, fmt.Errorf("%w: No image uploaded", domainErrors.ErrValidation)
	}
	if kind != AssetLogo && kind != AssetProfile {
		return nil, fmt.Errorf("%w: type must be %q or %q", domainErrors.ErrValidation, AssetLogo, AssetProfile)
	}

	url, err := u.uploader.Upload(ctx, FolderAdminAssets, image.Filename, image.Content)
	if err != nil {
		return nil, fmt.Errorf("upload %s: %w", kind, err)
	}
	if kind == AssetLogo {
		return u.settings.SetLogo(ctx, url)
	}
	return u.settings.SetProfilePic(ctx, url)
}

// AddBackground uploads an image into the landing page slider.
func (u *SettingsUseCase) AddBackground(ctx context.Context, image *Image) (*model.Settings, error) {
	if image == nil {
		return nil, fmt.Errorf("%w: Image required", domainErrors.ErrValidation)
	}
	url, err := u.uploader.Upload(ctx, FolderBackgrounds, image.Filename, image.Content)
	if err != nil {
		return nil, fmt.Errorf("upload background: %w", err)
	}
	return u.settings.AddBackground(ctx, url)
}

// AddFunFact appends a fun fact.
func (u *SettingsUseCase) AddFunFact(ctx context.Context, fact string) (*model.Settings, error) {
	fact = strings.TrimSpace(fact)
	if fact == "" {
		return nil, fmt.Errorf("%w: Fact is required", domainErrors.ErrValidation)
	}
	return u.settings.AddFunFact(ctx, model.FunFact{Fact: fact})
}

// DeleteFunFact removes a fun fact.
func (u *SettingsUseCase) DeleteFunFact(ctx context.Context, id string) (*model.Settings, error) {
	s, err := u.settings.DeleteFunFact(ctx, id)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: Fun fact not found", domainErrors.ErrNotFound)
		}
		return nil, err
	}
	return s, nil
}

func nonEmpty(v *string) *string {
	if v == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*v)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
