package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/atelier/internal/domain/model"
	"github.com/polkiloo/atelier/internal/server/http/dto"
	"github.com/polkiloo/atelier/internal/usecase"
)

// OrderHandler manages order-related endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Create handles POST /api/orders.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.facade.PlaceOrder(c.Request.Context(), CurrentPrincipal(c), usecase.CreateOrderInput{
		Type:            model.OrderType(req.Type),
		ArtworkID:       req.ArtworkID,
		Description:     req.Description,
		Size:            req.Size,
		Medium:          req.Medium,
		Budget:          req.Budget,
		Deadline:        req.Deadline,
		ReferenceImages: req.ReferenceImages,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.OrderEnvelope{Message: "Order placed successfully!", Order: dto.NewOrderResponse(*order)})
}

// Mine handles GET /api/orders/my.
func (h *OrderHandler) Mine(c *gin.Context) {
	orders, err := h.facade.MyOrders(c.Request.Context(), CurrentPrincipal(c))
	if err != nil {
		respondError(c, err)
		return
	}
	if len(orders) == 0 {
		respondMessage(c, http.StatusOK, "You have no orders till now.")
		return
	}

	c.JSON(http.StatusOK, dto.NewOrderResponses(orders))
}

// All handles GET /api/orders.
func (h *OrderHandler) All(c *gin.Context) {
	orders, err := h.facade.AllOrders(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewOrderResponses(orders))
}

// Get handles GET /api/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.facade.Order(c.Request.Context(), CurrentPrincipal(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewOrderResponse(*order))
}

// SetStatus handles PUT /api/orders/:id.
func (h *OrderHandler) SetStatus(c *gin.Context) {
	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.facade.SetOrderStatus(c.Request.Context(), c.Param("id"), model.OrderStatus(req.Status), req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OrderEnvelope{
		Message: "Order status updated to " + string(order.Status),
		Order:   dto.NewOrderResponse(*order),
	})
}

// Cancel handles PUT /api/orders/:id/cancel. The body is optional.
func (h *OrderHandler) Cancel(c *gin.Context) {
	var req dto.CancelOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		respondMessage(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.facade.CancelOrder(c.Request.Context(), CurrentPrincipal(c), c.Param("id"), req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OrderEnvelope{Message: "Order cancelled successfully", Order: dto.NewOrderResponse(*order)})
}
