package repository

import (
	"context"
	"errors"

	"github.com/wrenchworks/shop/internal/shop/entity"
	"gorm.io/gorm"
)

// VehicleRepository owns vehicle storage and the vehicle side of the
// order cascade.
type VehicleRepository struct {
	db *gorm.DB
}

func NewVehicleRepository(db *gorm.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

func (r *VehicleRepository) Create(ctx context.Context, vehicle *entity.Vehicle) error {
	return r.db.WithContext(ctx).Create(vehicle).Error
}

func (r *VehicleRepository) FindByID(ctx context.Context, id int) (*entity.Vehicle, error) {
	var vehicle entity.Vehicle
	err := r.db.WithContext(ctx).First(&vehicle, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &vehicle, nil
}

func (r *VehicleRepository) FindAll(ctx context.Context) ([]entity.Vehicle, error) {
	var vehicles []entity.Vehicle
	err := r.db.WithContext(ctx).Order("id").Find(&vehicles).Error
	return vehicles, err
}

// DeleteCascade removes the vehicle and every repair order referencing
// it in one transaction. Returns false when the id is absent.
func (r *VehicleRepository) DeleteCascade(ctx context.Context, id int) (bool, error) {
	found := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var vehicle entity.Vehicle
		if err := tx.First(&vehicle, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		if err := tx.Where("vehicle_id = ?", id).Delete(&entity.RepairOrder{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&vehicle).Error; err != nil {
			return err
		}
		found = true
		return nil
	})
	return found, err
}
