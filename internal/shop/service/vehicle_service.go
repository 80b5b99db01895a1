package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/wrenchworks/shop/internal/shop/entity"
	"github.com/wrenchworks/shop/internal/shop/repository"
)

// VehicleService validates vehicle requests and builds the repair
// history view.
type VehicleService struct {
	repo      *repository.VehicleRepository
	orderRepo *repository.OrderRepository
	rdb       *redis.Client
}

func NewVehicleService(repo *repository.VehicleRepository, orderRepo *repository.OrderRepository, rdb *redis.Client) *VehicleService {
	return &VehicleService{repo: repo, orderRepo: orderRepo, rdb: rdb}
}

// CreateVehicleRequest carries the fields for a new vehicle.
type CreateVehicleRequest struct {
	Year  int    `json:"year"`
	Make  string `json:"make"`
	Model string `json:"model"`
}

// HistoryEntry is one order row in the vehicle history view.
type HistoryEntry struct {
	ID            int       `json:"id"`
	CreatedDate   time.Time `json:"created_date"`
	Description   string    `json:"description"`
	EstimatedCost float64   `json:"estimated_cost"`
	Status        string    `json:"status"`
	CustomerName  string    `json:"customer_name"`
}

// VehicleHistory is the derived view behind GET /api/vehicles/:id/history.
// RepairHistory is sorted by created date descending.
type VehicleHistory struct {
	ID            int            `json:"id"`
	Year          int            `json:"year"`
	Make          string         `json:"make"`
	Model         string         `json:"model"`
	VehicleInfo   string         `json:"vehicle_info"`
	RepairHistory []HistoryEntry `json:"repair_history"`
	TotalRepairs  int            `json:"total_repairs"`
	TotalCost     float64        `json:"total_cost"`
}

func (s *VehicleService) validate(req *CreateVehicleRequest) error {
	req.Make = strings.TrimSpace(req.Make)
	req.Model = strings.TrimSpace(req.Model)

	maxYear := time.Now().Year() + 1
	switch {
	case req.Year < entity.MinVehicleYear || req.Year > maxYear:
		return &ValidationError{Reason: fmt.Sprintf("year must be between %d and %d", entity.MinVehicleYear, maxYear)}
	case req.Make == "" || req.Model == "":
		return &ValidationError{Reason: "make and model are required"}
	case len(req.Make) > 50 || len(req.Model) > 50:
		return &ValidationError{Reason: "make and model must be at most 50 characters"}
	}
	return nil
}

func (s *VehicleService) Create(ctx context.Context, req CreateVehicleRequest) (*entity.Vehicle, error) {
	if err := s.validate(&req); err != nil {
		return nil, err
	}
	vehicle := &entity.Vehicle{
		Year:  req.Year,
		Make:  req.Make,
		Model: req.Model,
	}
	if err := s.repo.Create(ctx, vehicle); err != nil {
		return nil, err
	}
	clearStatsCache(ctx, s.rdb)
	return vehicle, nil
}

func (s *VehicleService) Get(ctx context.Context, id int) (*entity.Vehicle, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *VehicleService) List(ctx context.Context) ([]entity.Vehicle, error) {
	return s.repo.FindAll(ctx)
}

// Delete cascades to the vehicle's repair orders. Returns false when the
// id is absent.
func (s *VehicleService) Delete(ctx context.Context, id int) (bool, error) {
	ok, err := s.repo.DeleteCascade(ctx, id)
	if err == nil && ok {
		clearStatsCache(ctx, s.rdb)
	}
	return ok, err
}

// WithHistory returns ErrNotFound for an unknown vehicle rather than an
// empty view.
func (s *VehicleService) WithHistory(ctx context.Context, id int) (*VehicleHistory, error) {
	vehicle, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	orders, err := s.orderRepo.FindByVehicle(ctx, id)
	if err != nil {
		return nil, err
	}

	view := &VehicleHistory{
		ID:            vehicle.ID,
		Year:          vehicle.Year,
		Make:          vehicle.Make,
		Model:         vehicle.Model,
		VehicleInfo:   vehicle.DisplayName(),
		RepairHistory: make([]HistoryEntry, 0, len(orders)),
		TotalRepairs:  len(orders),
	}
	for _, o := range orders {
		name := "Unknown Customer"
		if o.Customer != nil {
			name = o.Customer.DisplayName()
		}
		view.RepairHistory = append(view.RepairHistory, HistoryEntry{
			ID:            o.ID,
			CreatedDate:   o.CreatedDate,
			Description:   o.Description,
			EstimatedCost: o.EstimatedCost,
			Status:        o.Status,
			CustomerName:  name,
		})
		view.TotalCost += o.EstimatedCost
	}
	return view, nil
}
