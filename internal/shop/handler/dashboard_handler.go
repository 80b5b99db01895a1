package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wrenchworks/shop/internal/shop/service"
)

// DashboardHandler serves /api/dashboard.
type DashboardHandler struct {
	svc *service.DashboardService
}

func NewDashboardHandler(svc *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Statistics returns shop-wide counts, revenue totals and top customers
// GET /api/dashboard/statistics
func (h *DashboardHandler) Statistics(c *gin.Context) {
	stats, err := h.svc.Statistics(c.Request.Context())
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
