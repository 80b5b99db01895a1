package entity

import "strconv"

// Vehicle year bounds. MaxYear is relative to the current year and checked
// at validation time, not here.
const MinVehicleYear = 1900

// Vehicle is a vehicle serviced by the shop.
type Vehicle struct {
	ID    int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Year  int    `json:"year" gorm:"not null"`
	Make  string `json:"make" gorm:"size:50;not null"`
	Model string `json:"model" gorm:"size:50;not null"`
}

func (Vehicle) TableName() string {
	return "vehicles"
}

// DisplayName is "{year} {make} {model}", e.g. "2020 Toyota Camry".
func (v Vehicle) DisplayName() string {
	return strconv.Itoa(v.Year) + " " + v.Make + " " + v.Model
}
