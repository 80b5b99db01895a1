package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/wrenchworks/shop/internal/shop/entity"
	"github.com/wrenchworks/shop/internal/shop/repository"
	"github.com/wrenchworks/shop/internal/shop/service"
	"github.com/wrenchworks/shop/internal/shop/testutil"
	"gorm.io/gorm"
)

func setupServices(t *testing.T) (*gorm.DB, *service.Services) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	repos := repository.NewRepositories(db)
	return db, service.NewServices(repos, db, nil)
}

func expectValidationError(t *testing.T, err error, fragment string) {
	t.Helper()
	var vErr *service.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("Expected ValidationError, got %v", err)
	}
	if !strings.Contains(err.Error(), fragment) {
		t.Errorf("Expected error mentioning %q, got %q", fragment, err.Error())
	}
}

func TestCustomerCreateValidation(t *testing.T) {
	_, svc := setupServices(t)
	ctx := context.Background()

	_, err := svc.Customer.Create(ctx, service.CreateCustomerRequest{
		FirstName: "  ", LastName: "Smith", PhoneNumber: "555-0101",
	})
	expectValidationError(t, err, "first_name")

	_, err = svc.Customer.Create(ctx, service.CreateCustomerRequest{
		FirstName: "John", LastName: strings.Repeat("x", 101), PhoneNumber: "555-0101",
	})
	expectValidationError(t, err, "name fields")

	_, err = svc.Customer.Create(ctx, service.CreateCustomerRequest{
		FirstName: "John", LastName: "Smith", PhoneNumber: strings.Repeat("5", 21),
	})
	expectValidationError(t, err, "phone_number")

	customer, err := svc.Customer.Create(ctx, service.CreateCustomerRequest{
		FirstName: "  John ", LastName: "Smith", PhoneNumber: "555-0101",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if customer.FirstName != "John" {
		t.Errorf("Expected trimmed first name, got %q", customer.FirstName)
	}
}

func TestVehicleCreateValidation(t *testing.T) {
	_, svc := setupServices(t)
	ctx := context.Background()

	_, err := svc.Vehicle.Create(ctx, service.CreateVehicleRequest{
		Year: 1899, Make: "Ford", Model: "Model T",
	})
	expectValidationError(t, err, "year")

	_, err = svc.Vehicle.Create(ctx, service.CreateVehicleRequest{
		Year: 2020, Make: "", Model: "Camry",
	})
	expectValidationError(t, err, "make")

	if _, err := svc.Vehicle.Create(ctx, service.CreateVehicleRequest{
		Year: 2020, Make: "Toyota", Model: "Camry",
	}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
}

func TestOrderCreateDefaultsAndStatusInput(t *testing.T) {
	db, svc := setupServices(t)
	ctx := context.Background()

	customer := testutil.SeedCustomer(t, db, "John", "Smith", "555-0101")
	vehicle := testutil.SeedVehicle(t, db, 2020, "Toyota", "Camry")

	order, err := svc.Order.Create(ctx, service.CreateOrderRequest{
		CustomerID: customer.ID, VehicleID: vehicle.ID,
		Description: "Oil change", EstimatedCost: 45,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if order.Status != entity.StatusOpen {
		t.Errorf("Expected default status %q, got %q", entity.StatusOpen, order.Status)
	}

	// Lowercase input is stored in canonical case.
	order2, err := svc.Order.Create(ctx, service.CreateOrderRequest{
		CustomerID: customer.ID, VehicleID: vehicle.ID,
		Description: "Brake pads", EstimatedCost: 180, Status: "in progress",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if order2.Status != entity.StatusInProgress {
		t.Errorf("Expected canonical status %q, got %q", entity.StatusInProgress, order2.Status)
	}

	_, err = svc.Order.Create(ctx, service.CreateOrderRequest{
		CustomerID: customer.ID, VehicleID: vehicle.ID,
		Description: "Bad status", EstimatedCost: 10, Status: "Done",
	})
	var sErr *entity.StatusError
	if !errors.As(err, &sErr) {
		t.Errorf("Expected StatusError, got %v", err)
	}

	_, err = svc.Order.Create(ctx, service.CreateOrderRequest{
		CustomerID: customer.ID, VehicleID: vehicle.ID,
		Description: "Negative", EstimatedCost: -1,
	})
	expectValidationError(t, err, "estimated_cost")
}

func TestOrderUpdateStatusCanonicalises(t *testing.T) {
	db, svc := setupServices(t)
	ctx := context.Background()

	customer := testutil.SeedCustomer(t, db, "John", "Smith", "555-0101")
	vehicle := testutil.SeedVehicle(t, db, 2020, "Toyota", "Camry")
	order := testutil.SeedOrder(t, db, customer.ID, vehicle.ID, "Oil change", 45, entity.StatusOpen)

	updated, err := svc.Order.UpdateStatus(ctx, order.ID, "COMPLETED")
	if err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}
	if updated.Status != entity.StatusCompleted {
		t.Errorf("Expected %q, got %q", entity.StatusCompleted, updated.Status)
	}

	// An invalid status is rejected before the store is touched.
	if _, err := svc.Order.UpdateStatus(ctx, order.ID, "Closed"); err == nil {
		t.Error("Expected an error for an invalid status")
	}
	reloaded, _ := svc.Order.Get(ctx, order.ID)
	if reloaded.Status != entity.StatusCompleted {
		t.Errorf("Status must be unchanged after a rejected update, got %q", reloaded.Status)
	}
}

func TestOrderByStatusCaseInsensitive(t *testing.T) {
	db, svc := setupServices(t)
	ctx := context.Background()

	customer := testutil.SeedCustomer(t, db, "John", "Smith", "555-0101")
	vehicle := testutil.SeedVehicle(t, db, 2020, "Toyota", "Camry")
	testutil.SeedOrder(t, db, customer.ID, vehicle.ID, "Oil change", 45, entity.StatusInProgress)
	testutil.SeedOrder(t, db, customer.ID, vehicle.ID, "Brake pads", 180, entity.StatusOpen)

	orders, err := svc.Order.ByStatus(ctx, "in progress")
	if err != nil {
		t.Fatalf("ByStatus failed: %v", err)
	}
	if len(orders) != 1 || orders[0].Status != entity.StatusInProgress {
		t.Errorf("Expected 1 in-progress order, got %+v", orders)
	}

	if _, err := svc.Order.ByStatus(ctx, "bogus"); err == nil {
		t.Error("Expected an error for an unknown status")
	}
}

func TestCustomerWithOrders(t *testing.T) {
	db, svc := setupServices(t)
	ctx := context.Background()

	customer := testutil.SeedCustomer(t, db, "John", "Smith", "555-0101")
	vehicle := testutil.SeedVehicle(t, db, 2020, "Toyota", "Camry")
	testutil.SeedOrder(t, db, customer.ID, vehicle.ID, "Oil change", 45, entity.StatusOpen)
	testutil.SeedOrder(t, db, customer.ID, vehicle.ID, "Brake pads", 180, entity.StatusCompleted)

	view, err := svc.Customer.WithOrders(ctx, customer.ID)
	if err != nil {
		t.Fatalf("WithOrders failed: %v", err)
	}
	if view.LastName != "Smith" || len(view.RepairOrders) != 2 {
		t.Fatalf("Unexpected view: %+v", view)
	}
	if view.RepairOrders[0].VehicleInfo != "2020 Toyota Camry" {
		t.Errorf("Expected vehicle display string, got %q", view.RepairOrders[0].VehicleInfo)
	}

	if _, err := svc.Customer.WithOrders(ctx, 999); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for a missing customer, got %v", err)
	}
}

func TestVehicleHistoryTotals(t *testing.T) {
	db, svc := setupServices(t)
	ctx := context.Background()

	customer := testutil.SeedCustomer(t, db, "John", "Smith", "555-0101")
	vehicle := testutil.SeedVehicle(t, db, 2020, "Toyota", "Camry")
	testutil.SeedOrder(t, db, customer.ID, vehicle.ID, "Oil change", 45.50, entity.StatusCompleted)
	testutil.SeedOrder(t, db, customer.ID, vehicle.ID, "Brake pads", 180, entity.StatusOpen)

	view, err := svc.Vehicle.WithHistory(ctx, vehicle.ID)
	if err != nil {
		t.Fatalf("WithHistory failed: %v", err)
	}
	if view.VehicleInfo != "2020 Toyota Camry" {
		t.Errorf("Unexpected vehicle info %q", view.VehicleInfo)
	}
	if view.TotalRepairs != 2 {
		t.Errorf("Expected 2 repairs, got %d", view.TotalRepairs)
	}
	if view.TotalCost != 225.50 {
		t.Errorf("Expected total cost 225.50, got %v", view.TotalCost)
	}
	if view.RepairHistory[0].CustomerName != "John Smith" {
		t.Errorf("Expected customer name on history entry, got %q", view.RepairHistory[0].CustomerName)
	}

	if _, err := svc.Vehicle.WithHistory(ctx, 999); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for a missing vehicle, got %v", err)
	}
}

func TestDashboardStatistics(t *testing.T) {
	db, svc := setupServices(t)
	ctx := context.Background()

	smith := testutil.SeedCustomer(t, db, "John", "Smith", "555-0101")
	jones := testutil.SeedCustomer(t, db, "Bob", "Jones", "555-0104")
	vehicle := testutil.SeedVehicle(t, db, 2020, "Toyota", "Camry")

	testutil.SeedOrder(t, db, smith.ID, vehicle.ID, "Oil change", 150, entity.StatusCompleted)
	testutil.SeedOrder(t, db, smith.ID, vehicle.ID, "Engine work", 2500, entity.StatusInProgress)
	testutil.SeedOrder(t, db, jones.ID, vehicle.ID, "Inspection", 200, entity.StatusOpen)

	stats, err := svc.Dashboard.Statistics(ctx)
	if err != nil {
		t.Fatalf("Statistics failed: %v", err)
	}

	if stats.TotalCustomers != 2 || stats.TotalVehicles != 1 || stats.TotalRepairOrders != 3 {
		t.Errorf("Unexpected totals: %+v", stats)
	}
	if stats.CompletedRevenue != 150 {
		t.Errorf("Expected completed revenue 150, got %v", stats.CompletedRevenue)
	}
	// Pending covers everything not completed and not cancelled.
	if stats.PendingRevenue != 2700 {
		t.Errorf("Expected pending revenue 2700, got %v", stats.PendingRevenue)
	}
	if stats.AverageOrderValue != 950 {
		t.Errorf("Expected average order value 950, got %v", stats.AverageOrderValue)
	}

	breakdown := map[string]int64{}
	for _, sc := range stats.StatusBreakdown {
		breakdown[sc.Status] = sc.Count
	}
	if breakdown[entity.StatusCompleted] != 1 || breakdown[entity.StatusInProgress] != 1 || breakdown[entity.StatusOpen] != 1 {
		t.Errorf("Unexpected status breakdown: %+v", stats.StatusBreakdown)
	}

	if len(stats.TopCustomers) != 2 {
		t.Fatalf("Expected 2 top customers, got %d", len(stats.TopCustomers))
	}
	if stats.TopCustomers[0].CustomerName != "John Smith" {
		t.Errorf("Expected John Smith ranked first, got %q", stats.TopCustomers[0].CustomerName)
	}
	if stats.TopCustomers[0].TotalSpent != 2650 || stats.TopCustomers[0].OrderCount != 2 {
		t.Errorf("Unexpected top customer row: %+v", stats.TopCustomers[0])
	}
}

func TestDashboardStatisticsEmptyStore(t *testing.T) {
	_, svc := setupServices(t)

	stats, err := svc.Dashboard.Statistics(context.Background())
	if err != nil {
		t.Fatalf("Statistics failed: %v", err)
	}
	if stats.TotalRepairOrders != 0 || stats.AverageOrderValue != 0 {
		t.Errorf("Expected zeroed statistics, got %+v", stats)
	}
	if len(stats.TopCustomers) != 0 {
		t.Errorf("Expected no top customers, got %+v", stats.TopCustomers)
	}
}
