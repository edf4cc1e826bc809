package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	domainErrors "github.com/polkiloo/atelier/internal/domain/errors"
	"github.com/polkiloo/atelier/internal/domain/model"
)

type settingsRepository struct {
	storage *Storage
}

const settingsColumns = `logo_url, background_artworks, profile_pic_url, about_bio, contact_email, contact_phone,
                         whatsapp_number, instagram_link, commission_pricing, updated_at`

func (r *settingsRepository) Get(ctx context.Context) (*model.Settings, error) {
	settings, err := r.load(ctx)
	if errors.Is(err, pgx.ErrNoRows) {
		if _, err := r.storage.pool.Exec(ctx, `INSERT INTO settings (id) VALUES (1) ON CONFLICT (id) DO NOTHING`); err != nil {
			return nil, err
		}
		settings, err = r.load(ctx)
	}
	if err != nil {
		return nil, mapError(err)
	}

	facts, err := r.funFacts(ctx)
	if err != nil {
		return nil, err
	}
	settings.FunFacts = facts
	return settings, nil
}

func (r *settingsRepository) UpdateContact(ctx context.Context, patch model.ContactPatch) (*model.Settings, error) {
	const query = `UPDATE settings SET
                       contact_email=COALESCE($1, contact_email),
                       contact_phone=COALESCE($2, contact_phone),
                       whatsapp_number=COALESCE($3, whatsapp_number),
                       instagram_link=COALESCE($4, instagram_link),
                       logo_url=COALESCE($5, logo_url),
                       commission_pricing=COALESCE($6::jsonb, commission_pricing),
                       updated_at=GREATEST(updated_at, NOW())
                   WHERE id=1`
	var pricing any
	if patch.CommissionPricing != nil {
		pricing = patch.CommissionPricing
	}
	if _, err := r.storage.pool.Exec(ctx, query,
		patch.ContactEmail, patch.ContactPhone, patch.WhatsappNumber, patch.InstagramLink, patch.LogoURL, pricing,
	); err != nil {
		return nil, mapError(err)
	}
	return r.Get(ctx)
}

func (r *settingsRepository) SetAboutBio(ctx context.Context, bio string) (*model.Settings, error) {
	return r.exec(ctx, `UPDATE settings SET about_bio=$1, updated_at=GREATEST(updated_at, NOW()) WHERE id=1`, bio)
}

func (r *settingsRepository) SetLogo(ctx context.Context, url string) (*model.Settings, error) {
	return r.exec(ctx, `UPDATE settings SET logo_url=$1, updated_at=GREATEST(updated_at, NOW()) WHERE id=1`, url)
}

func (r *settingsRepository) SetProfilePic(ctx context.Context, url string) (*model.Settings, error) {
	return r.exec(ctx, `UPDATE settings SET profile_pic_url=$1, updated_at=GREATEST(updated_at, NOW()) WHERE id=1`, url)
}

func (r *settingsRepository) AddBackground(ctx context.Context, url string) (*model.Settings, error) {
	return r.exec(ctx, `UPDATE settings SET background_artworks=array_append(background_artworks, $1),
                            updated_at=GREATEST(updated_at, NOW()) WHERE id=1`, url)
}

func (r *settingsRepository) AddFunFact(ctx context.Context, fact model.FunFact) (*model.Settings, error) {
	if fact.ID == "" {
		fact.ID = uuid.NewString()
	}
	if _, err := r.storage.pool.Exec(ctx, `INSERT INTO fun_facts (id, fact) VALUES ($1, $2)`, fact.ID, fact.Fact); err != nil {
		return nil, mapError(err)
	}
	return r.Get(ctx)
}

func (r *settingsRepository) DeleteFunFact(ctx context.Context, id string) (*model.Settings, error) {
	if !validID(id) {
		return nil, domainErrors.ErrNotFound
	}
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM fun_facts WHERE id=$1`, id)
	if err != nil {
		return nil, mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return nil, domainErrors.ErrNotFound
	}
	return r.Get(ctx)
}

func (r *settingsRepository) exec(ctx context.Context, query string, args ...any) (*model.Settings, error) {
	if _, err := r.storage.pool.Exec(ctx, query, args...); err != nil {
		return nil, mapError(err)
	}
	return r.Get(ctx)
}

func (r *settingsRepository) load(ctx context.Context) (*model.Settings, error) {
	var s model.Settings
	err := r.storage.pool.QueryRow(ctx, `SELECT `+settingsColumns+` FROM settings WHERE id=1`).Scan(
		&s.LogoURL, &s.BackgroundArtworks, &s.ProfilePicURL, &s.AboutBio, &s.ContactEmail, &s.ContactPhone,
		&s.WhatsappNumber, &s.InstagramLink, &s.CommissionPricing, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if s.BackgroundArtworks == nil {
		s.BackgroundArtworks = []string{}
	}
	if s.CommissionPricing == nil {
		s.CommissionPricing = []model.PricingTier{}
	}
	return &s, nil
}

func (r *settingsRepository) funFacts(ctx context.Context) ([]model.FunFact, error) {
	rows, err := r.storage.pool.Query(ctx, `SELECT id, fact, created_at FROM fun_facts ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	facts := []model.FunFact{}
	for rows.Next() {
		var f model.FunFact
		if err := rows.Scan(&f.ID, &f.Fact, &f.CreatedAt); err != nil {
			return nil, err
		}
		facts = append(facts, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return facts, nil
}
