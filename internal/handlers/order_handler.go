package handlers

import (
	"net/http"
	"strconv"

	"coffeeshop/internal/services"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderService services.OrderService
}

func NewOrderHandler(orderService services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// GetOrders lists every order with its items and resolved user name.
func (h *OrderHandler) GetOrders(c *gin.Context) {
	reports, err := h.orderService.ListOrders("")
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reports)
}

// GetOrdersByStatus lists orders matching the status path parameter.
func (h *OrderHandler) GetOrdersByStatus(c *gin.Context) {
	status := c.Param("status")

	reports, err := h.orderService.ListOrders(status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reports)
}

// GetOrderCount returns the total number of orders; zero is a valid answer.
func (h *OrderHandler) GetOrderCount(c *gin.Context) {
	count, err := h.orderService.CountOrders()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

// DeleteOrder removes one order and its items.
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	message, err := h.orderService.DeleteOrder(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": message})
}

// GetTopSelling returns the coffee sales ranking, optionally truncated by
// the limit query parameter.
func (h *OrderHandler) GetTopSelling(c *gin.Context) {
	limitParam := c.DefaultQuery("limit", strconv.Itoa(services.DefaultTopSellingLimit))
	limit, err := strconv.Atoi(limitParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
		return
	}

	rows, err := h.orderService.TopSellingCoffees(limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}
