package postgres

import (
	"context"
	"strings"

	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/atelier/internal/domain/errors"
	"github.com/polkiloo/atelier/internal/domain/model"
)

type userRepository struct {
	storage *Storage
}

const userColumns = `id, username, COALESCE(email, ''), COALESCE(phone, ''), password_hash, role, profile_image, created_at`

func (r *userRepository) Create(ctx context.Context, user model.User) (*model.User, error) {
	const query = `INSERT INTO users (id, username, email, phone, password_hash, role, profile_image)
                   VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), $5, $6, $7)
                   RETURNING created_at`
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.Role == "" {
		user.Role = model.RoleUser
	}
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	err := r.storage.pool.QueryRow(ctx, query,
		user.ID, user.Username, user.Email, user.Phone, user.PasswordHash, user.Role, user.ProfileImage,
	).Scan(&user.CreatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	return &user, nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	if !validID(id) {
		return nil, domainErrors.ErrNotFound
	}
	return r.scanOne(ctx, `SELECT `+userColumns+` FROM users WHERE id=$1`, id)
}

func (r *userRepository) GetByContact(ctx context.Context, emailOrPhone string) (*model.User, error) {
	value := strings.TrimSpace(emailOrPhone)
	if value == "" {
		return nil, domainErrors.ErrNotFound
	}
	return r.scanOne(ctx, `SELECT `+userColumns+` FROM users WHERE email=$1 OR phone=$2 LIMIT 1`,
		strings.ToLower(value), value)
}

func (r *userRepository) GetAdmin(ctx context.Context) (*model.User, error) {
	return r.scanOne(ctx, `SELECT `+userColumns+` FROM users WHERE role='admin' LIMIT 1`)
}

func (r *userRepository) SetRole(ctx context.Context, id string, role model.Role, passwordHash string) error {
	const query = `UPDATE users SET role=$2, password_hash=COALESCE(NULLIF($3, ''), password_hash) WHERE id=$1`
	if !validID(id) {
		return domainErrors.ErrNotFound
	}
	tag, err := r.storage.pool.Exec(ctx, query, id, role, passwordHash)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *userRepository) Count(ctx context.Context) (int, error) {
	return r.storage.count(ctx, `SELECT COUNT(*) FROM users`)
}

func (r *userRepository) scanOne(ctx context.Context, query string, args ...any) (*model.User, error) {
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, args...).Scan(
		&u.ID, &u.Username, &u.Email, &u.Phone, &u.PasswordHash, &u.Role, &u.ProfileImage, &u.CreatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}
	return &u, nil
}
