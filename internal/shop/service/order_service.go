package service

import (
	"context"
	"strings"

	"github.com/redis/go-redis/v9"
	"github.com/wrenchworks/shop/internal/shop/entity"
	"github.com/wrenchworks/shop/internal/shop/repository"
)

// OrderService validates repair order requests and gates the status
// vocabulary.
type OrderService struct {
	repo *repository.OrderRepository
	rdb  *redis.Client
}

func NewOrderService(repo *repository.OrderRepository, rdb *redis.Client) *OrderService {
	return &OrderService{repo: repo, rdb: rdb}
}

// CreateOrderRequest carries the fields for a new repair order. Status is
// optional and defaults to Open; created_date is never accepted from the
// caller.
type CreateOrderRequest struct {
	CustomerID    int     `json:"customer_id"`
	VehicleID     int     `json:"vehicle_id"`
	Description   string  `json:"description"`
	EstimatedCost float64 `json:"estimated_cost"`
	Status        string  `json:"status"`
}

func (s *OrderService) validate(req *CreateOrderRequest) error {
	req.Description = strings.TrimSpace(req.Description)

	switch {
	case req.CustomerID <= 0:
		return &ValidationError{Reason: "customer_id is required"}
	case req.VehicleID <= 0:
		return &ValidationError{Reason: "vehicle_id is required"}
	case req.Description == "":
		return &ValidationError{Reason: "description is required"}
	case len(req.Description) > 500:
		return &ValidationError{Reason: "description must be at most 500 characters"}
	case req.EstimatedCost < 0:
		return &ValidationError{Reason: "estimated_cost must not be negative"}
	}
	return nil
}

// Create rejects invalid fields before touching the store; the store
// itself rejects unresolvable foreign keys with a ReferenceError.
func (s *OrderService) Create(ctx context.Context, req CreateOrderRequest) (*entity.RepairOrder, error) {
	if err := s.validate(&req); err != nil {
		return nil, err
	}
	status := entity.StatusOpen
	if req.Status != "" {
		canonical, err := entity.CanonicalStatus(req.Status)
		if err != nil {
			return nil, err
		}
		status = canonical
	}

	order := &entity.RepairOrder{
		CustomerID:    req.CustomerID,
		VehicleID:     req.VehicleID,
		Description:   req.Description,
		EstimatedCost: req.EstimatedCost,
		Status:        status,
	}
	if err := s.repo.Create(ctx, order); err != nil {
		return nil, err
	}
	clearStatsCache(ctx, s.rdb)
	return order, nil
}

func (s *OrderService) Get(ctx context.Context, id int) (*entity.RepairOrder, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *OrderService) List(ctx context.Context) ([]entity.RepairOrder, error) {
	return s.repo.FindAll(ctx)
}

// Search matches the customer last name case-insensitively. Blank
// fragments are rejected at the handler before reaching here.
func (s *OrderService) Search(ctx context.Context, lastName string) ([]entity.RepairOrder, error) {
	return s.repo.SearchByCustomerLastName(ctx, lastName)
}

// ByStatus canonicalises the status first, so "completed" and
// "Completed" list the same orders.
func (s *OrderService) ByStatus(ctx context.Context, status string) ([]entity.RepairOrder, error) {
	canonical, err := entity.CanonicalStatus(status)
	if err != nil {
		return nil, err
	}
	return s.repo.FindByStatus(ctx, canonical)
}

// UpdateStatus validates the vocabulary before the store assignment; an
// invalid status never mutates the record.
func (s *OrderService) UpdateStatus(ctx context.Context, id int, status string) (*entity.RepairOrder, error) {
	canonical, err := entity.CanonicalStatus(status)
	if err != nil {
		return nil, err
	}
	order, err := s.repo.UpdateStatus(ctx, id, canonical)
	if err != nil {
		return nil, err
	}
	clearStatsCache(ctx, s.rdb)
	return order, nil
}

// Delete returns false when the id is absent.
func (s *OrderService) Delete(ctx context.Context, id int) (bool, error) {
	ok, err := s.repo.Delete(ctx, id)
	if err == nil && ok {
		clearStatsCache(ctx, s.rdb)
	}
	return ok, err
}
