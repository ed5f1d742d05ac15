package stats

import (
	"testing"

	"github.com/babetech/borastock/internal/domain/models"
)

func TestComputeEntryStatsExcludesCancelledFromValue(t *testing.T) {
	entries := []models.StockEntry{
		{ID: "E001", Quantity: 50, UnitPrice: 1199.99, TotalValue: 59999.50, Status: models.EntryReceived},
		{ID: "E002", Quantity: 30, UnitPrice: 1299.99, TotalValue: 38999.70, Status: models.EntryCancelled},
	}

	s := ComputeEntryStats(entries)
	if s.TotalEntries != 2 {
		t.Errorf("total = %d, want 2", s.TotalEntries)
	}
	if s.Cancelled != 1 {
		t.Errorf("cancelled count = %d, want 1", s.Cancelled)
	}
	if s.TotalValue != 59999.50 {
		t.Errorf("total value = %v, want 59999.50", s.TotalValue)
	}
}

func TestComputeEntryStatsCounts(t *testing.T) {
	entries := []models.StockEntry{
		{Status: models.EntryPending, TotalValue: 10},
		{Status: models.EntryPending, TotalValue: 20},
		{Status: models.EntryValidated, TotalValue: 30},
		{Status: models.EntryReceived, TotalValue: 40},
	}

	s := ComputeEntryStats(entries)
	if s.Pending != 2 || s.Validated != 1 || s.Received != 1 || s.Cancelled != 0 {
		t.Errorf("counts = %+v", s)
	}
	if s.TotalValue != 100 {
		t.Errorf("total value = %v, want 100", s.TotalValue)
	}
}

func TestComputeEntryStatsEmpty(t *testing.T) {
	s := ComputeEntryStats(nil)
	if s.TotalEntries != 0 || s.TotalValue != 0 {
		t.Errorf("empty stats = %+v", s)
	}
}

func TestComputeExitStats(t *testing.T) {
	exits := []models.StockExit{
		{Status: models.ExitShipped, TotalValue: 2399.98, Urgency: models.UrgencyHigh},
		{Status: models.ExitDelivered, TotalValue: 1299.99, Urgency: models.UrgencyLow},
		{Status: models.ExitCancelled, TotalValue: 500, Urgency: models.UrgencyHigh},
	}

	s := ComputeExitStats(exits)
	if s.TotalExits != 3 {
		t.Errorf("total = %d, want 3", s.TotalExits)
	}
	if s.Shipped != 1 || s.Delivered != 1 || s.Cancelled != 1 {
		t.Errorf("counts = %+v", s)
	}
	if s.Urgent != 2 {
		t.Errorf("urgent = %d, want 2", s.Urgent)
	}
	if want := exits[0].TotalValue + exits[1].TotalValue; s.TotalValue != want {
		t.Errorf("total value = %v, want %v", s.TotalValue, want)
	}
}

func TestComputeStockStats(t *testing.T) {
	items := []models.StockItem{
		{CurrentStock: 25, Price: 1199.99, Status: models.StockInStock},
		{CurrentStock: 8, Price: 899.99, Status: models.StockLowStock},
		{CurrentStock: 0, Price: 1299.99, Status: models.StockOutOfStock},
		{CurrentStock: 150, Price: 249.99, Status: models.StockOverstocked},
	}

	s := ComputeStockStats(items)
	if s.TotalProducts != 4 || s.InStock != 1 || s.LowStock != 1 || s.OutOfStock != 1 || s.Overstocked != 1 {
		t.Errorf("counts = %+v", s)
	}
	if want := 25*1199.99 + 8*899.99 + 150*249.99; s.TotalValue != want {
		t.Errorf("total value = %v, want %v", s.TotalValue, want)
	}
}

func TestComputeSupplierStats(t *testing.T) {
	suppliers := []models.Supplier{
		{Rating: 4.9, TotalValue: 2500000, Status: models.SupplierActive},
		{Rating: 4.1, TotalValue: 580000, Status: models.SupplierPending},
		{Rating: 3.2, TotalValue: 180000, Status: models.SupplierBlocked},
	}

	s := ComputeSupplierStats(suppliers)
	if s.TotalSuppliers != 3 || s.Active != 1 || s.Pending != 1 || s.Blocked != 1 || s.Inactive != 0 {
		t.Errorf("counts = %+v", s)
	}
	if want := (4.9 + 4.1 + 3.2) / 3; s.AverageRating != want {
		t.Errorf("average rating = %v, want %v", s.AverageRating, want)
	}
	if s.TotalValue != 3260000 {
		t.Errorf("total value = %v, want 3260000", s.TotalValue)
	}
}

func TestComputeSupplierStatsEmptyAverageIsZero(t *testing.T) {
	s := ComputeSupplierStats(nil)
	if s.AverageRating != 0 {
		t.Errorf("empty average = %v, want 0", s.AverageRating)
	}
}
