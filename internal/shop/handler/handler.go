package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/wrenchworks/shop/internal/shop/entity"
	"github.com/wrenchworks/shop/internal/shop/repository"
	"github.com/wrenchworks/shop/internal/shop/service"
)

// Handlers is the shop handler collection.
type Handlers struct {
	Customer  *CustomerHandler
	Vehicle   *VehicleHandler
	Order     *OrderHandler
	Dashboard *DashboardHandler
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Customer:  NewCustomerHandler(services.Customer),
		Vehicle:   NewVehicleHandler(services.Vehicle),
		Order:     NewOrderHandler(services.Order),
		Dashboard: NewDashboardHandler(services.Dashboard),
	}
}

// === Shared response helpers ===

// Created writes 201 with a Location header pointing at the new resource.
func Created(c *gin.Context, location string, data interface{}) {
	c.Header("Location", location)
	c.JSON(http.StatusCreated, data)
}

func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": message})
}

func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, gin.H{"error": message})
}

// Fail translates the service error taxonomy to a status code:
// validation, reference and status errors are client faults; absence is
// a 404; anything else is a server error with the detail withheld.
func Fail(c *gin.Context, err error) {
	var vErr *service.ValidationError
	var rErr *repository.ReferenceError
	var sErr *entity.StatusError
	switch {
	case errors.As(err, &vErr), errors.As(err, &rErr), errors.As(err, &sErr):
		BadRequest(c, err.Error())
	case errors.Is(err, repository.ErrNotFound):
		NotFound(c, "record not found")
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// IDParam parses the :id path segment; a non-numeric id is a 400.
func IDParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		BadRequest(c, "invalid id")
		return 0, false
	}
	return id, true
}
