package entity_test

import (
	"testing"

	"github.com/wrenchworks/shop/internal/shop/entity"
	"github.com/wrenchworks/shop/internal/shop/testutil"
)

func TestSeedDemoData(t *testing.T) {
	db := testutil.SetupTestDB(t)

	if err := entity.SeedDemoData(db); err != nil {
		t.Fatalf("SeedDemoData failed: %v", err)
	}

	var customers, vehicles, orders int64
	db.Model(&entity.Customer{}).Count(&customers)
	db.Model(&entity.Vehicle{}).Count(&vehicles)
	db.Model(&entity.RepairOrder{}).Count(&orders)

	if customers != 5 || vehicles != 6 || orders != 7 {
		t.Fatalf("Unexpected seed counts: %d customers, %d vehicles, %d orders",
			customers, vehicles, orders)
	}

	// Seeding again must not duplicate anything.
	if err := entity.SeedDemoData(db); err != nil {
		t.Fatalf("SeedDemoData failed on rerun: %v", err)
	}
	db.Model(&entity.Customer{}).Count(&customers)
	if customers != 5 {
		t.Errorf("Expected seeding to be skipped, got %d customers", customers)
	}

	var order entity.RepairOrder
	if err := db.First(&order, "status = ?", entity.StatusInProgress).Error; err != nil {
		t.Errorf("Expected an in-progress demo order: %v", err)
	}
}
