package handlers

import (
	"net/http"

	"coffeeshop/internal/models"
	"coffeeshop/internal/services"

	"github.com/gin-gonic/gin"
)

type CoffeeHandler struct {
	coffeeService services.CoffeeService
}

func NewCoffeeHandler(coffeeService services.CoffeeService) *CoffeeHandler {
	return &CoffeeHandler{coffeeService: coffeeService}
}

type coffeeRequest struct {
	ID          string  `json:"id"`
	AdminID     *uint   `json:"admin_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	CategoryID  *uint   `json:"category_id"`
	Price       float64 `json:"price"`
	Status      string  `json:"status"`
}

func (h *CoffeeHandler) AddCoffee(c *gin.Context) {
	var req coffeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	coffee := &models.Coffee{
		ID:          req.ID,
		AdminID:     req.AdminID,
		Name:        req.Name,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		Price:       req.Price,
		Status:      models.CoffeeStatus(req.Status),
	}

	if err := h.coffeeService.AddCoffee(coffee); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Coffee Added Successfully",
		"coffee_id": coffee.ID,
	})
}

func (h *CoffeeHandler) GetCoffees(c *gin.Context) {
	coffees, err := h.coffeeService.GetCoffees()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, coffees)
}

func (h *CoffeeHandler) UpdateCoffee(c *gin.Context) {
	id := c.Param("coffee_id")

	var req coffeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	coffee, err := h.coffeeService.UpdateCoffee(id, &models.Coffee{
		Name:        req.Name,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		Price:       req.Price,
		Status:      models.CoffeeStatus(req.Status),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Coffee updated successfully",
		"coffee_id": coffee.ID,
		"name":      coffee.Name,
		"price":     coffee.Price,
		"status":    coffee.Status,
	})
}

func (h *CoffeeHandler) DeleteCoffee(c *gin.Context) {
	id := c.Param("coffee_id")

	message, err := h.coffeeService.DeleteCoffee(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": message})
}
