package entity

import "time"

// RepairOrder links a customer and a vehicle to one unit of shop work.
// CustomerID and VehicleID must resolve at creation time and the store
// rejects orders that would dangle. CreatedDate is set by the store on
// insert and immutable afterwards; Status is the only mutable field.
type RepairOrder struct {
	ID            int       `json:"id" gorm:"primaryKey;autoIncrement"`
	CustomerID    int       `json:"customer_id" gorm:"not null;index"`
	VehicleID     int       `json:"vehicle_id" gorm:"not null;index"`
	CreatedDate   time.Time `json:"created_date" gorm:"not null"`
	Description   string    `json:"description" gorm:"size:500;not null"`
	EstimatedCost float64   `json:"estimated_cost" gorm:"type:decimal(10,2);not null;default:0"`
	Status        string    `json:"status" gorm:"size:20;not null;default:Open"`

	// Lookup joins populated by reads, never persisted as navigation
	// state. FK constraints are RESTRICT; the cascade on customer and
	// vehicle deletion is application-level.
	Customer *Customer `json:"customer,omitempty" gorm:"foreignKey:CustomerID;constraint:OnDelete:RESTRICT"`
	Vehicle  *Vehicle  `json:"vehicle,omitempty" gorm:"foreignKey:VehicleID;constraint:OnDelete:RESTRICT"`
}

func (RepairOrder) TableName() string {
	return "repair_orders"
}
