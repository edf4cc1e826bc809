package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderType distinguishes commission requests from purchases of listed artworks.
type OrderType string

const (
	OrderTypeCommission OrderType = "commission"
	OrderTypeArtwork    OrderType = "artwork"
)

// Valid reports whether the type is recognised.
func (t OrderType) Valid() bool {
	switch t {
	case OrderTypeCommission, OrderTypeArtwork:
		return true
	}
	return false
}

// OrderStatus describes order lifecycle.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusAccepted   OrderStatus = "accepted"
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusRejected   OrderStatus = "rejected"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// OrderStatuses lists every status in lifecycle order.
var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusAccepted,
	OrderStatusInProgress,
	OrderStatusCompleted,
	OrderStatusRejected,
	OrderStatusCancelled,
}

// Valid reports whether the status belongs to the enumeration.
func (s OrderStatus) Valid() bool {
	for _, v := range OrderStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// WorkStarted is true once the artist has begun, after which owners cannot cancel.
func (s OrderStatus) WorkStarted() bool {
	return s == OrderStatusInProgress || s == OrderStatusCompleted
}

// KeepsReason reports whether a reason is stored alongside the status.
func (s OrderStatus) KeepsReason() bool {
	return s == OrderStatusRejected || s == OrderStatusCancelled
}

// Notifies reports whether moving an order into this status emails the owner.
func (s OrderStatus) Notifies() bool {
	return s.Valid() && s != OrderStatusPending
}

// Order is a commission or purchase request. UserName and UserEmail are
// captured at creation and never re-synced with the user record.
type Order struct {
	ID              string
	UserID          string
	UserName        string
	UserEmail       string
	ArtworkID       *string
	Type            OrderType
	Description     string
	Size            string
	Medium          string
	Budget          decimal.NullDecimal
	Deadline        *time.Time
	ReferenceImages []string
	Status          OrderStatus
	Reason          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
