package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pagemint/pagemint-go/internal/application/services"
	"github.com/pagemint/pagemint-go/internal/domain/entities/rendering"
	"github.com/pagemint/pagemint-go/internal/infrastructure/observability/logging"
	"github.com/pagemint/pagemint-go/internal/presentation/http/middleware"
)

// OrderHandlers handles HTTP requests for order endpoints
type OrderHandlers struct {
	orderService *services.OrderService
	logger       *logging.ChanneledLogger
}

// NewOrderHandlers creates a new order handlers instance
func NewOrderHandlers(orderService *services.OrderService, logger *logging.ChanneledLogger) *OrderHandlers {
	return &OrderHandlers{
		orderService: orderService,
		logger:       logger,
	}
}

// PlaceOrderRequest represents the public order submission body
type PlaceOrderRequest struct {
	ProductID  string            `json:"productId" binding:"required"`
	PageID     string            `json:"pageId"`
	FullName   string            `json:"fullName"`
	Phone      string            `json:"phone"`
	City       string            `json:"city"`
	Address    string            `json:"address"`
	Attributes map[string]string `json:"attributes"`
}

// PostOrder handles POST /api/v1/orders (public, no auth)
func (h *OrderHandlers) PostOrder(c *gin.Context) {
	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	submit := rendering.SubmitEvent{
		Fields: rendering.ContactFields{
			FullName: req.FullName,
			Phone:    req.Phone,
			City:     req.City,
			Address:  req.Address,
		},
		Attributes: req.Attributes,
	}

	order, err := h.orderService.PlaceOrder(req.ProductID, req.PageID, submit)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, order)
}

// GetOrders handles GET /api/v1/orders
func (h *OrderHandlers) GetOrders(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	orders, err := h.orderService.ListForOwner(ownerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, orders)
}

// UpdateStatusRequest represents the status transition body
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// PutOrderStatus handles PUT /api/v1/orders/:id/status
func (h *OrderHandlers) PutOrderStatus(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.orderService.UpdateStatus(c.Param("id"), ownerID, req.Status); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
