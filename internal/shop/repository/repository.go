package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a requested id does not exist. Absence is
// an expected outcome; callers map it to a 404, never to a server error.
var ErrNotFound = errors.New("record not found")

// ReferenceError reports a foreign key that did not resolve when
// creating a repair order.
type ReferenceError struct {
	Field string
	ID    int
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%s %d does not exist", e.Field, e.ID)
}

// Repositories is the shop repository collection.
type Repositories struct {
	Customer *CustomerRepository
	Vehicle  *VehicleRepository
	Order    *OrderRepository
}

func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Customer: NewCustomerRepository(db),
		Vehicle:  NewVehicleRepository(db),
		Order:    NewOrderRepository(db),
	}
}
