package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wrenchworks/shop/internal/shop/service"
)

// VehicleHandler serves /api/vehicles.
type VehicleHandler struct {
	svc *service.VehicleService
}

func NewVehicleHandler(svc *service.VehicleService) *VehicleHandler {
	return &VehicleHandler{svc: svc}
}

// List vehicles
// GET /api/vehicles
func (h *VehicleHandler) List(c *gin.Context) {
	vehicles, err := h.svc.List(c.Request.Context())
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, vehicles)
}

// Get one vehicle
// GET /api/vehicles/:id
func (h *VehicleHandler) Get(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}
	vehicle, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, vehicle)
}

// Create a vehicle
// POST /api/vehicles
func (h *VehicleHandler) Create(c *gin.Context) {
	var req service.CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body: "+err.Error())
		return
	}
	vehicle, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		Fail(c, err)
		return
	}
	Created(c, fmt.Sprintf("/api/vehicles/%d", vehicle.ID), vehicle)
}

// Delete a vehicle and cascade to its repair orders
// DELETE /api/vehicles/:id
func (h *VehicleHandler) Delete(c *gin.Context) {
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
		NotFound(c, fmt.Sprintf("vehicle %d not found", id))
		return
	}
	c.Status(http.StatusNoContent)
}

// History returns the vehicle with its repair history and cost totals
// GET /api/vehicles/:id/history
func (h *VehicleHandler) History(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}
	view, err := h.svc.WithHistory(c.Request.Context(), id)
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
