package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/atelier/internal/domain/model"
)

// CreateOrderRequest is the order form.
type CreateOrderRequest struct {
	Type            string              `json:"type"`
	ArtworkID       string              `json:"artworkId"`
	Description     string              `json:"description"`
	Size            string              `json:"size"`
	Medium          string              `json:"medium"`
	Budget          decimal.NullDecimal `json:"budget"`
	Deadline        string              `json:"deadline"`
	ReferenceImages []string            `json:"referenceImages"`
}

// UpdateOrderStatusRequest is the admin status change.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
	Reason string `json:"reason"`
}

// CancelOrderRequest carries the owner's reason.
type CancelOrderRequest struct {
	Reason string `json:"reason"`
}

// OrderResponse is the JSON view of an order.
type OrderResponse struct {
	ID              string           `json:"id"`
	UserID          string           `json:"userId"`
	UserName        string           `json:"userName"`
	UserEmail       string           `json:"userEmail"`
	ArtworkID       *string          `json:"artworkId,omitempty"`
	Type            string           `json:"type"`
	Description     string           `json:"description"`
	Size            string           `json:"size,omitempty"`
	Medium          string           `json:"medium,omitempty"`
	Budget          *decimal.Decimal `json:"budget,omitempty"`
	Deadline        *string          `json:"deadline,omitempty"`
	ReferenceImages []string         `json:"referenceImages"`
	Status          string           `json:"status"`
	Reason          string           `json:"reason,omitempty"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

// OrderEnvelope pairs an order with a human readable message.
type OrderEnvelope struct {
	Message string        `json:"message"`
	Order   OrderResponse `json:"order"`
}

func NewOrderResponse(o model.Order) OrderResponse {
	resp := OrderResponse{
		ID:              o.ID,
		UserID:          o.UserID,
		UserName:        o.UserName,
		UserEmail:       o.UserEmail,
		ArtworkID:       o.ArtworkID,
		Type:            string(o.Type),
		Description:     o.Description,
		Size:            o.Size,
		Medium:          o.Medium,
		ReferenceImages: o.ReferenceImages,
		Status:          string(o.Status),
		Reason:          o.Reason,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
	if o.Budget.Valid {
		budget := o.Budget.Decimal
		resp.Budget = &budget
	}
	if o.Deadline != nil {
		day := o.Deadline.Format(time.DateOnly)
		resp.Deadline = &day
	}
	if resp.ReferenceImages == nil {
		resp.ReferenceImages = []string{}
	}
	return resp
}

func NewOrderResponses(orders []model.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, NewOrderResponse(o))
	}
	return out
}
