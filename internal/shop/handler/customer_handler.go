package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wrenchworks/shop/internal/shop/service"
)

// CustomerHandler serves /api/customers.
type CustomerHandler struct {
	svc *service.CustomerService
}

func NewCustomerHandler(svc *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{svc: svc}
}

// List customers
// GET /api/customers
func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.svc.List(c.Request.Context())
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

// Get one customer
// GET /api/customers/:id
func (h *CustomerHandler) Get(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}
	customer, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

// Create a customer
// POST /api/customers
func (h *CustomerHandler) Create(c *gin.Context) {
	var req service.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body: "+err.Error())
		return
	}
	customer, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		Fail(c, err)
		return
	}
	Created(c, fmt.Sprintf("/api/customers/%d", customer.ID), customer)
}

// Delete a customer and cascade to its repair orders
// DELETE /api/customers/:id
func (h *CustomerHandler) Delete(c *gin.Context) {
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
		NotFound(c, fmt.Sprintf("customer %d not found", id))
		return
	}
	c.Status(http.StatusNoContent)
}

// Orders returns the customer with all their repair orders
// GET /api/customers/:id/orders
func (h *CustomerHandler) Orders(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}
	view, err := h.svc.WithOrders(c.Request.Context(), id)
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
