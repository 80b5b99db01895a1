package repository

import (
	"context"
	"errors"

	"github.com/wrenchworks/shop/internal/shop/entity"
	"gorm.io/gorm"
)

// CustomerRepository owns customer storage and the customer side of the
// order cascade.
type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// Create persists the customer and assigns its id.
func (r *CustomerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	return r.db.WithContext(ctx).Create(customer).Error
}

// FindByID returns ErrNotFound when the id is absent.
func (r *CustomerRepository) FindByID(ctx context.Context, id int) (*entity.Customer, error) {
	var customer entity.Customer
	err := r.db.WithContext(ctx).First(&customer, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &customer, nil
}

func (r *CustomerRepository) FindAll(ctx context.Context) ([]entity.Customer, error) {
	var customers []entity.Customer
	err := r.db.WithContext(ctx).Order("id").Find(&customers).Error
	return customers, err
}

// DeleteCascade removes the customer and every repair order referencing
// it in one transaction, so a partial cascade is never observable.
// Returns false when the id is absent.
func (r *CustomerRepository) DeleteCascade(ctx context.Context, id int) (bool, error) {
	found := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var customer entity.Customer
		if err := tx.First(&customer, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		if err := tx.Where("customer_id = ?", id).Delete(&entity.RepairOrder{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&customer).Error; err != nil {
			return err
		}
		found = true
		return nil
	})
	return found, err
}
