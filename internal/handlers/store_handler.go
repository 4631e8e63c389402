package handlers

import (
	"net/http"
	"strconv"

	"coffeeshop/internal/models"
	"coffeeshop/internal/services"

	"github.com/gin-gonic/gin"
)

type StoreHandler struct {
	storeService services.StoreService
}

func NewStoreHandler(storeService services.StoreService) *StoreHandler {
	return &StoreHandler{storeService: storeService}
}

type storeRequest struct {
	Name            string `json:"name" binding:"required"`
	Address         string `json:"address" binding:"required"`
	PrepTimeMinutes int    `json:"prep_time_minutes"`
	Status          string `json:"status" binding:"required"`
}

func (h *StoreHandler) AddStore(c *gin.Context) {
	var req storeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	store := &models.Store{
		Name:            req.Name,
		Address:         req.Address,
		PrepTimeMinutes: req.PrepTimeMinutes,
		Status:          models.StoreStatus(req.Status),
	}

	if err := h.storeService.AddStore(store); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":           "Store Added Successfully",
		"store_id":          store.ID,
		"name":              store.Name,
		"address":           store.Address,
		"prep_time_minutes": store.PrepTimeMinutes,
		"status":            store.Status,
	})
}

func (h *StoreHandler) UpdateStore(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("store_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid store id"})
		return
	}

	var req storeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	store, err := h.storeService.UpdateStore(uint(id), &models.Store{
		Name:            req.Name,
		Address:         req.Address,
		PrepTimeMinutes: req.PrepTimeMinutes,
		Status:          models.StoreStatus(req.Status),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Store updated successfully",
		"store_id": store.ID,
		"name":     store.Name,
		"address":  store.Address,
		"status":   store.Status,
	})
}

func (h *StoreHandler) GetStores(c *gin.Context) {
	stores, err := h.storeService.GetStores()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stores)
}

func (h *StoreHandler) DeleteStore(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("store_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid store id"})
		return
	}

	message, err := h.storeService.DeleteStore(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": message})
}
