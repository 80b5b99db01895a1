package entity

import (
	"time"

	"gorm.io/gorm"
)

// SeedDemoData inserts the demo records used by the console
// walkthrough. It is a no-op on a store that already has customers, so
// restarting the server does not duplicate the seed.
func SeedDemoData(db *gorm.DB) error {
	var n int64
	if err := db.Model(&Customer{}).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	customers := []Customer{
		{FirstName: "John", LastName: "Smith", PhoneNumber: "555-0123"},
		{FirstName: "Jane", LastName: "Johnson", PhoneNumber: "555-0456"},
		{FirstName: "Bob", LastName: "Wilson", PhoneNumber: "555-0789"},
		{FirstName: "Alice", LastName: "Brown", PhoneNumber: "555-0321"},
		{FirstName: "Mike", LastName: "Davis", PhoneNumber: "555-0654"},
	}
	if err := db.Create(&customers).Error; err != nil {
		return err
	}

	vehicles := []Vehicle{
		{Year: 2020, Make: "Toyota", Model: "Camry"},
		{Year: 2019, Make: "Honda", Model: "Civic"},
		{Year: 2021, Make: "Ford", Model: "F-150"},
		{Year: 2018, Make: "Chevrolet", Model: "Malibu"},
		{Year: 2022, Make: "BMW", Model: "X3"},
		{Year: 2020, Make: "Audi", Model: "A4"},
	}
	if err := db.Create(&vehicles).Error; err != nil {
		return err
	}

	now := time.Now()
	orders := []RepairOrder{
		{CustomerID: customers[0].ID, VehicleID: vehicles[0].ID, CreatedDate: now.AddDate(0, 0, -15), Description: "Oil change and brake inspection", EstimatedCost: 150.00, Status: StatusCompleted},
		{CustomerID: customers[1].ID, VehicleID: vehicles[1].ID, CreatedDate: now.AddDate(0, 0, -10), Description: "Transmission repair", EstimatedCost: 2500.00, Status: StatusInProgress},
		{CustomerID: customers[0].ID, VehicleID: vehicles[0].ID, CreatedDate: now.AddDate(0, 0, -5), Description: "Replace air filter and spark plugs", EstimatedCost: 200.00, Status: StatusOpen},
		{CustomerID: customers[2].ID, VehicleID: vehicles[2].ID, CreatedDate: now.AddDate(0, 0, -3), Description: "Tire rotation and alignment", EstimatedCost: 120.00, Status: StatusCompleted},
		{CustomerID: customers[3].ID, VehicleID: vehicles[3].ID, CreatedDate: now.AddDate(0, 0, -7), Description: "Engine diagnostic and repair", EstimatedCost: 800.00, Status: StatusInProgress},
		{CustomerID: customers[1].ID, VehicleID: vehicles[1].ID, CreatedDate: now.AddDate(0, 0, -2), Description: "Battery replacement", EstimatedCost: 180.00, Status: StatusOpen},
		{CustomerID: customers[4].ID, VehicleID: vehicles[4].ID, CreatedDate: now.AddDate(0, 0, -1), Description: "Annual maintenance service", EstimatedCost: 450.00, Status: StatusOpen},
	}
	return db.Create(&orders).Error
}
