package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/wrenchworks/shop/internal/shop/entity"
	"gorm.io/gorm"
)

// OrderRepository owns repair order storage. Creation verifies both
// foreign keys inside the insert transaction; a dangling order is never
// persisted.
type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create assigns the id, stamps CreatedDate (any caller-supplied value is
// discarded) and defaults Status to Open. Returns a ReferenceError when
// customer_id or vehicle_id does not resolve.
func (r *OrderRepository) Create(ctx context.Context, order *entity.RepairOrder) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&entity.Customer{}).Where("id = ?", order.CustomerID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return &ReferenceError{Field: "customer_id", ID: order.CustomerID}
		}
		if err := tx.Model(&entity.Vehicle{}).Where("id = ?", order.VehicleID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return &ReferenceError{Field: "vehicle_id", ID: order.VehicleID}
		}

		order.CreatedDate = time.Now()
		if order.Status == "" {
			order.Status = entity.StatusOpen
		}
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		return tx.Preload("Customer").Preload("Vehicle").First(order, order.ID).Error
	})
}

// FindByID returns the order with customer and vehicle attached, or
// ErrNotFound.
func (r *OrderRepository) FindByID(ctx context.Context, id int) (*entity.RepairOrder, error) {
	var order entity.RepairOrder
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Vehicle").
		First(&order, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) FindAll(ctx context.Context) ([]entity.RepairOrder, error) {
	var orders []entity.RepairOrder
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Vehicle").
		Order("id").
		Find(&orders).Error
	return orders, err
}

// FindByStatus filters on the canonical status value. Callers normalise
// input casing first.
func (r *OrderRepository) FindByStatus(ctx context.Context, status string) ([]entity.RepairOrder, error) {
	var orders []entity.RepairOrder
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Vehicle").
		Where("status = ?", status).
		Order("id").
		Find(&orders).Error
	return orders, err
}

// FindByCustomer lists a customer's orders oldest first.
func (r *OrderRepository) FindByCustomer(ctx context.Context, customerID int) ([]entity.RepairOrder, error) {
	var orders []entity.RepairOrder
	err := r.db.WithContext(ctx).
		Preload("Vehicle").
		Where("customer_id = ?", customerID).
		Order("id").
		Find(&orders).Error
	return orders, err
}

// FindByVehicle lists a vehicle's orders most recent first; the repair
// history view depends on this ordering.
func (r *OrderRepository) FindByVehicle(ctx context.Context, vehicleID int) ([]entity.RepairOrder, error) {
	var orders []entity.RepairOrder
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Where("vehicle_id = ?", vehicleID).
		Order("created_date DESC").
		Find(&orders).Error
	return orders, err
}

// SearchByCustomerLastName does a case-insensitive substring match on the
// owning customer's last name. LOWER/LIKE keeps the query portable
// between Postgres and the SQLite test databases.
func (r *OrderRepository) SearchByCustomerLastName(ctx context.Context, fragment string) ([]entity.RepairOrder, error) {
	var orders []entity.RepairOrder
	pattern := "%" + strings.ToLower(fragment) + "%"
	err := r.db.WithContext(ctx).
		Joins("JOIN customers ON customers.id = repair_orders.customer_id").
		Where("LOWER(customers.last_name) LIKE ?", pattern).
		Preload("Customer").
		Preload("Vehicle").
		Order("repair_orders.id").
		Find(&orders).Error
	return orders, err
}

// UpdateStatus assigns an already-canonicalised status and returns the
// updated order, or ErrNotFound. No other field is touched.
func (r *OrderRepository) UpdateStatus(ctx context.Context, id int, status string) (*entity.RepairOrder, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var order entity.RepairOrder
		if err := tx.First(&order, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		return tx.Model(&order).Update("status", status).Error
	})
	if err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

// Delete returns false when the id is absent.
func (r *OrderRepository) Delete(ctx context.Context, id int) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&entity.RepairOrder{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
