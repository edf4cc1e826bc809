package usecase

import (
	"context"

	"github.com/polkiloo/atelier/internal/domain/model"
	"github.com/polkiloo/atelier/internal/domain/repository"
)

// DashboardUseCase aggregates site counters for the admin.
type DashboardUseCase struct {
	users    repository.UserRepository
	orders   repository.OrderRepository
	artworks repository.ArtworkRepository
}

// NewDashboardUseCase constructs DashboardUseCase.
func NewDashboardUseCase(users repository.UserRepository, orders repository.OrderRepository, artworks repository.ArtworkRepository) *DashboardUseCase {
	return &DashboardUseCase{users: users, orders: orders, artworks: artworks}
}

// Stats counts artworks, orders, users and likes.
func (u *DashboardUseCase) Stats(ctx context.Context) (*model.Stats, error) {
	var (
		stats model.Stats
		err   error
	)
	if stats.Artworks, err = u.artworks.Count(ctx); err != nil {
		return nil, err
	}
	if stats.Orders, err = u.orders.Count(ctx); err != nil {
		return nil, err
	}
	if stats.Users, err = u.users.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalLikes, err = u.artworks.TotalLikes(ctx); err != nil {
		return nil, err
	}
	return &stats, nil
}
