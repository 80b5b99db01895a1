package service

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/wrenchworks/shop/internal/shop/entity"
	"github.com/wrenchworks/shop/internal/shop/repository"
)

// CustomerService validates customer requests and builds the
// customer-with-orders view.
type CustomerService struct {
	repo      *repository.CustomerRepository
	orderRepo *repository.OrderRepository
	rdb       *redis.Client
}

func NewCustomerService(repo *repository.CustomerRepository, orderRepo *repository.OrderRepository, rdb *redis.Client) *CustomerService {
	return &CustomerService{repo: repo, orderRepo: orderRepo, rdb: rdb}
}

// CreateCustomerRequest carries the fields for a new customer.
type CreateCustomerRequest struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
}

// OrderSummary is one order row in the customer-with-orders view.
// Foreign keys are dropped; the vehicle is flattened to a display string.
type OrderSummary struct {
	ID            int       `json:"id"`
	CreatedDate   time.Time `json:"created_date"`
	Description   string    `json:"description"`
	EstimatedCost float64   `json:"estimated_cost"`
	Status        string    `json:"status"`
	VehicleInfo   string    `json:"vehicle_info"`
}

// CustomerWithOrders is the derived view behind GET /api/customers/:id/orders.
type CustomerWithOrders struct {
	ID           int            `json:"id"`
	FirstName    string         `json:"first_name"`
	LastName     string         `json:"last_name"`
	PhoneNumber  string         `json:"phone_number"`
	RepairOrders []OrderSummary `json:"repair_orders"`
}

func (s *CustomerService) validate(req *CreateCustomerRequest) error {
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.PhoneNumber = strings.TrimSpace(req.PhoneNumber)

	switch {
	case req.FirstName == "" || req.LastName == "" || req.PhoneNumber == "":
		return &ValidationError{Reason: "first_name, last_name and phone_number are required"}
	case len(req.FirstName) > 100 || len(req.LastName) > 100:
		return &ValidationError{Reason: "name fields must be at most 100 characters"}
	case len(req.PhoneNumber) > 20:
		return &ValidationError{Reason: "phone_number must be at most 20 characters"}
	}
	return nil
}

func (s *CustomerService) Create(ctx context.Context, req CreateCustomerRequest) (*entity.Customer, error) {
	if err := s.validate(&req); err != nil {
		return nil, err
	}
	customer := &entity.Customer{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
	}
	if err := s.repo.Create(ctx, customer); err != nil {
		return nil, err
	}
	clearStatsCache(ctx, s.rdb)
	return customer, nil
}

func (s *CustomerService) Get(ctx context.Context, id int) (*entity.Customer, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CustomerService) List(ctx context.Context) ([]entity.Customer, error) {
	return s.repo.FindAll(ctx)
}

// Delete cascades to the customer's repair orders. Returns false when the
// id is absent.
func (s *CustomerService) Delete(ctx context.Context, id int) (bool, error) {
	ok, err := s.repo.DeleteCascade(ctx, id)
	if err == nil && ok {
		clearStatsCache(ctx, s.rdb)
	}
	return ok, err
}

// WithOrders returns ErrNotFound for an unknown customer rather than an
// empty view.
func (s *CustomerService) WithOrders(ctx context.Context, id int) (*CustomerWithOrders, error) {
	customer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	orders, err := s.orderRepo.FindByCustomer(ctx, id)
	if err != nil {
		return nil, err
	}

	view := &CustomerWithOrders{
		ID:           customer.ID,
		FirstName:    customer.FirstName,
		LastName:     customer.LastName,
		PhoneNumber:  customer.PhoneNumber,
		RepairOrders: make([]OrderSummary, 0, len(orders)),
	}
	for _, o := range orders {
		info := "Unknown Vehicle"
		if o.Vehicle != nil {
			info = o.Vehicle.DisplayName()
		}
		view.RepairOrders = append(view.RepairOrders, OrderSummary{
			ID:            o.ID,
			CreatedDate:   o.CreatedDate,
			Description:   o.Description,
			EstimatedCost: o.EstimatedCost,
			Status:        o.Status,
			VehicleInfo:   info,
		})
	}
	return view, nil
}
