package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	domainErrors "github.com/polkiloo/atelier/internal/domain/errors"
	"github.com/polkiloo/atelier/internal/domain/model"
)

type orderRepository struct {
	storage *Storage
}

const orderColumns = `id, user_id, user_name, user_email, artwork_id, type, description, size, medium,
                      budget, deadline, reference_images, status, reason, created_at, updated_at`

func scanOrder(row pgx.Row) (*model.Order, error) {
	var o model.Order
	err := row.Scan(
		&o.ID, &o.UserID, &o.UserName, &o.UserEmail, &o.ArtworkID, &o.Type, &o.Description, &o.Size, &o.Medium,
		&o.Budget, &o.Deadline, &o.ReferenceImages, &o.Status, &o.Reason, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if o.ReferenceImages == nil {
		o.ReferenceImages = []string{}
	}
	return &o, nil
}

func (r *orderRepository) Create(ctx context.Context, order model.Order) (*model.Order, error) {
	const query = `INSERT INTO orders (id, user_id, user_name, user_email, artwork_id, type, description, size, medium,
                                       budget, deadline, reference_images, status)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
                   RETURNING ` + orderColumns
	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	if order.Status == "" {
		order.Status = model.OrderStatusPending
	}
	if order.ReferenceImages == nil {
		order.ReferenceImages = []string{}
	}
	if order.ArtworkID != nil && !validID(*order.ArtworkID) {
		return nil, domainErrors.ErrNotFound
	}
	created, err := scanOrder(r.storage.pool.QueryRow(ctx, query,
		order.ID, order.UserID, order.UserName, order.UserEmail, order.ArtworkID, order.Type, order.Description,
		order.Size, order.Medium, order.Budget, order.Deadline, order.ReferenceImages, order.Status,
	))
	if err != nil {
		return nil, mapError(err)
	}
	return created, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*model.Order, error) {
	if !validID(id) {
		return nil, domainErrors.ErrNotFound
	}
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id=$1`, id))
	if err != nil {
		return nil, mapError(err)
	}
	return order, nil
}

func (r *orderRepository) GetOwned(ctx context.Context, id, userID string) (*model.Order, error) {
	if !validID(id) || !validID(userID) {
		return nil, domainErrors.ErrNotFound
	}
	const query = `SELECT ` + orderColumns + ` FROM orders WHERE id=$1 AND user_id=$2`
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, query, id, userID))
	if err != nil {
		return nil, mapError(err)
	}
	return order, nil
}

func (r *orderRepository) ListAll(ctx context.Context) ([]model.Order, error) {
	return r.list(ctx, `SELECT `+orderColumns+` FROM orders ORDER BY created_at DESC`)
}

func (r *orderRepository) ListByUser(ctx context.Context, userID string) ([]model.Order, error) {
	if !validID(userID) {
		return []model.Order{}, nil
	}
	return r.list(ctx, `SELECT `+orderColumns+` FROM orders WHERE user_id=$1 ORDER BY created_at DESC`, userID)
}

// UpdateStatus never moves updated_at backwards.
func (r *orderRepository) UpdateStatus(ctx context.Context, id string, status model.OrderStatus, reason string) (*model.Order, error) {
	if !validID(id) {
		return nil, domainErrors.ErrNotFound
	}
	const query = `UPDATE orders SET status=$2, reason=$3, updated_at=GREATEST(updated_at, NOW())
                   WHERE id=$1
                   RETURNING ` + orderColumns
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, query, id, status, reason))
	if err != nil {
		return nil, mapError(err)
	}
	return order, nil
}

func (r *orderRepository) Count(ctx context.Context) (int, error) {
	return r.storage.count(ctx, `SELECT COUNT(*) FROM orders`)
}

func (r *orderRepository) list(ctx context.Context, query string, args ...any) ([]model.Order, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []model.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
