package service

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/wrenchworks/shop/internal/shop/repository"
	"gorm.io/gorm"
)

// ValidationError reports a request field rejected before any store
// mutation. Handlers map it to a 400.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// Services is the single entry point presented to the API handlers.
type Services struct {
	Customer  *CustomerService
	Vehicle   *VehicleService
	Order     *OrderService
	Dashboard *DashboardService
}

// NewServices wires the service collection. rdb may be nil; the
// dashboard cache is skipped entirely without Redis.
func NewServices(repos *repository.Repositories, db *gorm.DB, rdb *redis.Client) *Services {
	return &Services{
		Customer:  NewCustomerService(repos.Customer, repos.Order, rdb),
		Vehicle:   NewVehicleService(repos.Vehicle, repos.Order, rdb),
		Order:     NewOrderService(repos.Order, rdb),
		Dashboard: NewDashboardService(db, rdb),
	}
}

// statsCacheKey holds the serialized dashboard statistics. Every
// mutating operation deletes it so reads never observe stale totals.
const statsCacheKey = "shop:dashboard:statistics"

func clearStatsCache(ctx context.Context, rdb *redis.Client) {
	if rdb == nil {
		return
	}
	rdb.Del(ctx, statsCacheKey)
}
