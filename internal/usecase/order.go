package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	domainErrors "github.com/polkiloo/atelier/internal/domain/errors"
	"github.com/polkiloo/atelier/internal/domain/model"
	"github.com/polkiloo/atelier/internal/domain/repository"
	"github.com/polkiloo/atelier/internal/metrics"
)

// OrderNotifier tells order owners about status changes.
type OrderNotifier interface {
	OrderStatusChanged(ctx context.Context, order model.Order, status model.OrderStatus, reason string) error
	OrderCancelledByOwner(ctx context.Context, order model.Order, reason string) error
}

// CreateOrderInput is the order form submitted by a user.
type CreateOrderInput struct {
	Type            model.OrderType
	ArtworkID       string
	Description     string
	Size            string
	Medium          string
	Budget          decimal.NullDecimal
	Deadline        string
	ReferenceImages []string
}

// ErrWorkStarted is returned when an owner tries to cancel an order the artist already began.
var ErrWorkStarted = fmt.Errorf("%w: You cannot cancel this order as work has already started.", domainErrors.ErrConflict)

// OrderUseCase encapsulates order lifecycle logic.
type OrderUseCase struct {
	orders   repository.OrderRepository
	notifier OrderNotifier
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, notifier OrderNotifier, mtr *metrics.Metrics, logger *zap.Logger) *OrderUseCase {
	return &OrderUseCase{orders: orders, notifier: notifier, metrics: mtr, logger: logger}
}

// Create places a new pending order on behalf of submitter.
func (u *OrderUseCase) Create(ctx context.Context, submitter model.Principal, in CreateOrderInput) (*model.Order, error) {
	in.Description = strings.TrimSpace(in.Description)
	if in.Type == "" || in.Description == "" {
		return nil, fmt.Errorf("%w: Type and description are required.", domainErrors.ErrValidation)
	}
	if !in.Type.Valid() {
		return nil, fmt.Errorf("%w: unknown order type %q", domainErrors.ErrValidation, in.Type)
	}
	if in.Budget.Valid && in.Budget.Decimal.IsNegative() {
		return nil, fmt.Errorf("%w: budget must not be negative", domainErrors.ErrValidation)
	}
	deadline, err := parseDeadline(in.Deadline)
	if err != nil {
		return nil, err
	}

	order := model.Order{
		UserID:          submitter.UserID,
		UserName:        submitter.Username,
		UserEmail:       submitter.Email,
		Type:            in.Type,
		Description:     in.Description,
		Size:            strings.TrimSpace(in.Size),
		Medium:          strings.TrimSpace(in.Medium),
		Budget:          in.Budget,
		Deadline:        deadline,
		ReferenceImages: in.ReferenceImages,
		Status:          model.OrderStatusPending,
	}
	if id := strings.TrimSpace(in.ArtworkID); id != "" {
		order.ArtworkID = &id
	}
	if order.ReferenceImages == nil {
		order.ReferenceImages = []string{}
	}

	created, err := u.orders.Create(ctx, order)
	if err != nil {
		return nil, err
	}
	u.logger.Info("order placed", zap.String("order_id", created.ID), zap.String("user_id", submitter.UserID))
	return created, nil
}

// AdminSetStatus moves an order to any status and notifies the owner unless the order returns to pending.
// Notification failures are logged and never fail the call.
func (u *OrderUseCase) AdminSetStatus(ctx context.Context, orderID string, status model.OrderStatus, reason string) (*model.Order, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domainErrors.ErrValidation, status)
	}

	current, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, orderNotFound(err)
	}

	stored := ""
	if status.KeepsReason() {
		stored = strings.TrimSpace(reason)
	}
	updated, err := u.orders.UpdateStatus(ctx, orderID, status, stored)
	if err != nil {
		return nil, orderNotFound(err)
	}
	u.metrics.OrderTransition(current.Status, status, model.RoleAdmin)
	u.logger.Info("order status changed",
		zap.String("order_id", orderID),
		zap.String("from", string(current.Status)),
		zap.String("to", string(status)),
	)

	if !status.Notifies() {
		return updated, nil
	}
	if err := u.notifier.OrderStatusChanged(ctx, *updated, status, reason); err != nil {
		u.logger.Warn("order notification failed", zap.String("order_id", orderID), zap.Error(err))
	}
	return updated, nil
}

// OwnerCancel cancels the requester's own order unless work has started.
func (u *OrderUseCase) OwnerCancel(ctx context.Context, requester model.Principal, orderID, reason string) (*model.Order, error) {
	current, err := u.orders.GetOwned(ctx, orderID, requester.UserID)
	if err != nil {
		return nil, orderNotFound(err)
	}
	if current.Status.WorkStarted() {
		return nil, ErrWorkStarted
	}

	reason = strings.TrimSpace(reason)
	updated, err := u.orders.UpdateStatus(ctx, orderID, model.OrderStatusCancelled, reason)
	if err != nil {
		return nil, orderNotFound(err)
	}
	u.metrics.OrderTransition(current.Status, model.OrderStatusCancelled, model.RoleUser)
	u.logger.Info("order cancelled by owner", zap.String("order_id", orderID), zap.String("user_id", requester.UserID))

	if err := u.notifier.OrderCancelledByOwner(ctx, *updated, reason); err != nil {
		u.logger.Warn("order notification failed", zap.String("order_id", orderID), zap.Error(err))
	}
	return updated, nil
}

// AdminListAll returns every order newest first.
func (u *OrderUseCase) AdminListAll(ctx context.Context) ([]model.Order, error) {
	return u.orders.ListAll(ctx)
}

// OwnerListMine returns the requester's orders newest first.
func (u *OrderUseCase) OwnerListMine(ctx context.Context, requester model.Principal) ([]model.Order, error) {
	return u.orders.ListByUser(ctx, requester.UserID)
}

// Get returns a single order to its owner or to the admin.
func (u *OrderUseCase) Get(ctx context.Context, requester model.Principal, orderID string) (*model.Order, error) {
	var (
		order *model.Order
		err   error
	)
	if requester.IsAdmin() {
		order, err = u.orders.GetByID(ctx, orderID)
	} else {
		order, err = u.orders.GetOwned(ctx, orderID, requester.UserID)
	}
	if err != nil {
		return nil, orderNotFound(err)
	}
	return order, nil
}

func orderNotFound(err error) error {
	if errors.Is(err, domainErrors.ErrNotFound) {
		return fmt.Errorf("%w: Order not found", domainErrors.ErrNotFound)
	}
	return err
}

var deadlineLayouts = []string{"2006-01-02", time.RFC3339}

func parseDeadline(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	for _, layout := range deadlineLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
			return &day, nil
		}
	}
	return nil, fmt.Errorf("%w: deadline must be a date (YYYY-MM-DD)", domainErrors.ErrValidation)
}
