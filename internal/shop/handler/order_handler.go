package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/wrenchworks/shop/internal/shop/service"
)

// OrderHandler serves /api/repairorders.
type OrderHandler struct {
	svc *service.OrderService
}

func NewOrderHandler(svc *service.OrderService) *OrderHandler {
	return &OrderHandler{svc: svc}
}

// List repair orders with customer and vehicle details
// GET /api/repairorders
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.svc.List(c.Request.Context())
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// Get one repair order
// GET /api/repairorders/:id
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}
	order, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// Search orders by customer last name, case-insensitive substring match
// GET /api/repairorders/search?lastName=smith
func (h *OrderHandler) Search(c *gin.Context) {
	lastName := strings.TrimSpace(c.Query("lastName"))
	if lastName == "" {
		BadRequest(c, "lastName query parameter is required")
		return
	}
	orders, err := h.svc.Search(c.Request.Context(), lastName)
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// ByStatus filters orders by status, case-insensitive
// GET /api/repairorders/status/:status
func (h *OrderHandler) ByStatus(c *gin.Context) {
	orders, err := h.svc.ByStatus(c.Request.Context(), c.Param("status"))
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// Create a repair order
// POST /api/repairorders
func (h *OrderHandler) Create(c *gin.Context) {
	var req service.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body: "+err.Error())
		return
	}
	order, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		Fail(c, err)
		return
	}
	Created(c, fmt.Sprintf("/api/repairorders/%d", order.ID), order)
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus changes the status of an existing order
// PATCH /api/repairorders/:id/status
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body: "+err.Error())
		return
	}
	order, err := h.svc.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// Delete one repair order
// DELETE /api/repairorders/:id
func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}
	deleted, err := h.svc.Delete(c.Request.Context(), id)
	if err != nil {
		Fail(c, err)
		return
	}
	if !deleted {
		NotFound(c, fmt.Sprintf("repair order %d not found", id))
		return
	}
	c.Status(http.StatusNoContent)
}
