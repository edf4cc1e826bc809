package repository

import (
	"context"

	"github.com/polkiloo/atelier/internal/domain/model"
)

// OrderRepository describes persistence operations with orders.
type OrderRepository interface {
	Create(ctx context.Context, order model.Order) (*model.Order, error)
	GetByID(ctx context.Context, id string) (*model.Order, error)
	// GetOwned returns ErrNotFound when the order belongs to another user.
	GetOwned(ctx context.Context, id, userID string) (*model.Order, error)
	ListAll(ctx context.Context) ([]model.Order, error)
	ListByUser(ctx context.Context, userID string) ([]model.Order, error)
	UpdateStatus(ctx context.Context, id string, status model.OrderStatus, reason string) (*model.Order, error)
	Count(ctx context.Context) (int, error)
}
