package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/wrenchworks/shop/internal/shop/entity"
	"gorm.io/gorm"
)

// DashboardService computes shop-wide statistics. Reads only; the result
// is a pure function of the current store contents. When Redis is
// configured the serialized result is cached briefly and every mutating
// service deletes the key, so the cache never outlives a write.
type DashboardService struct {
	db  *gorm.DB
	rdb *redis.Client
}

func NewDashboardService(db *gorm.DB, rdb *redis.Client) *DashboardService {
	return &DashboardService{db: db, rdb: rdb}
}

const statsCacheTTL = 30 * time.Second

// StatusCount is one row of the status breakdown.
type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// TopCustomer is one row of the spend ranking.
type TopCustomer struct {
	CustomerID   int     `json:"customer_id"`
	CustomerName string  `json:"customer_name"`
	OrderCount   int64   `json:"order_count"`
	TotalSpent   float64 `json:"total_spent"`
}

// Statistics is the dashboard summary behind GET /api/dashboard/statistics.
type Statistics struct {
	TotalCustomers    int64         `json:"total_customers"`
	TotalVehicles     int64         `json:"total_vehicles"`
	TotalRepairOrders int64         `json:"total_repair_orders"`
	CompletedRevenue  float64       `json:"completed_revenue"`
	PendingRevenue    float64       `json:"pending_revenue"`
	AverageOrderValue float64       `json:"average_order_value"`
	StatusBreakdown   []StatusCount `json:"status_breakdown"`
	TopCustomers      []TopCustomer `json:"top_customers"`
}

// Statistics aggregates the whole store in one read pass.
func (s *DashboardService) Statistics(ctx context.Context) (*Statistics, error) {
	if cached := s.fromCache(ctx); cached != nil {
		return cached, nil
	}

	stats := &Statistics{
		StatusBreakdown: []StatusCount{},
		TopCustomers:    []TopCustomer{},
	}

	if err := s.db.WithContext(ctx).Model(&entity.Customer{}).Count(&stats.TotalCustomers).Error; err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(&entity.Vehicle{}).Count(&stats.TotalVehicles).Error; err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(&entity.RepairOrder{}).Count(&stats.TotalRepairOrders).Error; err != nil {
		return nil, err
	}

	// Pending revenue counts everything not yet Completed and not
	// Cancelled. AVG over zero rows is NULL, hence the COALESCE.
	row := s.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(SUM(CASE WHEN status = ? THEN estimated_cost ELSE 0 END), 0) AS completed,
			COALESCE(SUM(CASE WHEN status NOT IN (?, ?) THEN estimated_cost ELSE 0 END), 0) AS pending,
			COALESCE(AVG(estimated_cost), 0) AS average
		FROM repair_orders
	`, entity.StatusCompleted, entity.StatusCompleted, entity.StatusCancelled).Row()
	if err := row.Scan(&stats.CompletedRevenue, &stats.PendingRevenue, &stats.AverageOrderValue); err != nil {
		return nil, err
	}

	byStatus := map[string]int64{}
	rows, err := s.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*) FROM repair_orders GROUP BY status
	`).Rows()
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var sc StatusCount
		if err := rows.Scan(&sc.Status, &sc.Count); err != nil {
			rows.Close()
			return nil, err
		}
		byStatus[sc.Status] = sc.Count
	}
	rows.Close()
	for _, status := range entity.ValidStatuses {
		if count, ok := byStatus[status]; ok {
			stats.StatusBreakdown = append(stats.StatusBreakdown, StatusCount{Status: status, Count: count})
		}
	}

	// Ties in total spend keep the lower customer id first; ordering
	// among ties is otherwise unspecified.
	rows, err = s.db.WithContext(ctx).Raw(`
		SELECT c.id, c.first_name || ' ' || c.last_name, COUNT(ro.id), SUM(ro.estimated_cost)
		FROM repair_orders ro
		JOIN customers c ON c.id = ro.customer_id
		GROUP BY c.id, c.first_name, c.last_name
		ORDER BY SUM(ro.estimated_cost) DESC, c.id
		LIMIT 5
	`).Rows()
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var tc TopCustomer
		if err := rows.Scan(&tc.CustomerID, &tc.CustomerName, &tc.OrderCount, &tc.TotalSpent); err != nil {
			rows.Close()
			return nil, err
		}
		stats.TopCustomers = append(stats.TopCustomers, tc)
	}
	rows.Close()

	s.toCache(ctx, stats)
	return stats, nil
}

func (s *DashboardService) fromCache(ctx context.Context) *Statistics {
	if s.rdb == nil {
		return nil
	}
	payload, err := s.rdb.Get(ctx, statsCacheKey).Bytes()
	if err != nil {
		return nil
	}
	var stats Statistics
	if err := json.Unmarshal(payload, &stats); err != nil {
		return nil
	}
	return &stats
}

func (s *DashboardService) toCache(ctx context.Context, stats *Statistics) {
	if s.rdb == nil {
		return
	}
	payload, err := json.Marshal(stats)
	if err != nil {
		return
	}
	s.rdb.Set(ctx, statsCacheKey, payload, statsCacheTTL)
}
