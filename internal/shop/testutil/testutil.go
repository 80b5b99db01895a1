package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/wrenchworks/shop/internal/shop/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB opens an isolated SQLite database in the test's temp
// directory and migrates the shop tables. The file is removed with the
// temp dir when the test finishes.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "shop_test.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := entity.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to migrate test tables: %v", err)
	}

	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
	})

	return db
}

// SetupRouter creates a gin test router
func SetupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(gin.Recovery())
	return r
}

// DoRequest executes an HTTP request against the test router
func DoRequest(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		jsonBytes, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(jsonBytes)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, _ := http.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// ParseResponse parses the JSON response body into a map
func ParseResponse(w *httptest.ResponseRecorder) map[string]interface{} {
	var result map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &result)
	return result
}

// ParseResponseList parses a JSON array response body
func ParseResponseList(w *httptest.ResponseRecorder) []map[string]interface{} {
	var result []map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &result)
	return result
}

// SeedCustomer creates a customer record
func SeedCustomer(t *testing.T, db *gorm.DB, first, last, phone string) *entity.Customer {
	t.Helper()
	customer := &entity.Customer{
		FirstName:   first,
		LastName:    last,
		PhoneNumber: phone,
	}
	if err := db.Create(customer).Error; err != nil {
		t.Fatalf("Failed to seed customer: %v", err)
	}
	return customer
}

// SeedVehicle creates a vehicle record
func SeedVehicle(t *testing.T, db *gorm.DB, year int, make, model string) *entity.Vehicle {
	t.Helper()
	vehicle := &entity.Vehicle{
		Year:  year,
		Make:  make,
		Model: model,
	}
	if err := db.Create(vehicle).Error; err != nil {
		t.Fatalf("Failed to seed vehicle: %v", err)
	}
	return vehicle
}

// SeedOrder creates a repair order record
func SeedOrder(t *testing.T, db *gorm.DB, customerID, vehicleID int, description string, cost float64, status string) *entity.RepairOrder {
	t.Helper()
	order := &entity.RepairOrder{
		CustomerID:    customerID,
		VehicleID:     vehicleID,
		CreatedDate:   time.Now(),
		Description:   description,
		EstimatedCost: cost,
		Status:        status,
	}
	if err := db.Create(order).Error; err != nil {
		t.Fatalf("Failed to seed repair order: %v", err)
	}
	return order
}
