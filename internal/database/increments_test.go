package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"plaza-rent-ledger/internal/store"

	_ "github.com/mattn/go-sqlite3"
)

func createTestLease(t *testing.T, service *Service, tenantId string, percent string) {
	t.Helper()

	_, err := service.CreateLease(context.Background(), store.LeaseParams{
		TenantId:         tenantId,
		StartDate:        time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		DurationMonths:   12,
		IncrementPercent: mustDecimal(t, percent),
		ReminderDays:     30,
	})
	if err != nil {
		t.Fatalf("Failed to create test lease: %v", err)
	}
}

func TestApplyIncrement_FromLease(t *testing.T) {
	// monthlyRent=50000 with lease incrementPercent=10 yields newRent=55000,
	// a history row {50000, 55000, 10}, and an immediate tenant update;
	// already-generated records keep rent=50000.
	service, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	tenant := createTestTenant(t, service, "Increment Shop", "F-01", "50000")
	createTestLease(t, service, tenant.Id, "10")

	if _, err := service.GenerateMonthSheet(ctx, "2025-11"); err != nil {
		t.Fatalf("Generation failed: %v", err)
	}

	entry, err := service.ApplyIncrement(ctx, tenant.Id)
	if err != nil {
		t.Fatalf("ApplyIncrement failed: %v", err)
	}

	if !entry.OldRent.Equal(mustDecimal(t, "50000")) {
		t.Errorf("Expected old rent 50000, got %s", entry.OldRent.String())
	}
	if !entry.NewRent.Equal(mustDecimal(t, "55000")) {
		t.Errorf("Expected new rent 55000, got %s", entry.NewRent.String())
	}
	if !entry.IncrementPercent.Equal(mustDecimal(t, "10")) {
		t.Errorf("Expected increment percent 10, got %s", entry.IncrementPercent.String())
	}

	updated, err := service.GetTenantById(ctx, tenant.Id)
	if err != nil {
		t.Fatalf("GetTenantById failed: %v", err)
	}
	if !updated.MonthlyRent.Equal(mustDecimal(t, "55000")) {
		t.Errorf("Expected tenant rent 55000 immediately, got %s", updated.MonthlyRent.String())
	}

	// The generated November record keeps its snapshot.
	records, err := service.ListRecords(ctx, tenant.Id, "2025-11")
	if err != nil {
		t.Fatalf("ListRecords failed: %v", err)
	}
	if !records[0].Rent.Equal(mustDecimal(t, "50000")) {
		t.Errorf("Expected November rent snapshot 50000, got %s", records[0].Rent.String())
	}

	// But the next sheet uses the new rate.
	result, err := service.GenerateMonthSheet(ctx, "2025-12")
	if err != nil {
		t.Fatalf("December generation failed: %v", err)
	}
	if !result.Generated[0].Rent.Equal(mustDecimal(t, "55000")) {
		t.Errorf("Expected December rent 55000, got %s", result.Generated[0].Rent.String())
	}
}

func TestApplyIncrement_RoundsHalfUp(t *testing.T) {
	service, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	tenant := createTestTenant(t, service, "Rounding Shop", "F-02", "10050")
	createTestLease(t, service, tenant.Id, "5")

	// 10050 * 1.05 = 10552.50, half-up to 10553
	entry, err := service.ApplyIncrement(ctx, tenant.Id)
	if err != nil {
		t.Fatalf("ApplyIncrement failed: %v", err)
	}
	if !entry.NewRent.Equal(mustDecimal(t, "10553")) {
		t.Errorf("Expected new rent 10553, got %s", entry.NewRent.String())
	}
}

func TestApplyIncrement_DefaultWhenNoLease(t *testing.T) {
	service, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	service.defaultIncrement = mustDecimal(t, "8")
	tenant := createTestTenant(t, service, "Default Shop", "F-03", "25000")

	entry, err := service.ApplyIncrement(ctx, tenant.Id)
	if err != nil {
		t.Fatalf("ApplyIncrement failed: %v", err)
	}
	if !entry.NewRent.Equal(mustDecimal(t, "27000")) {
		t.Errorf("Expected new rent 27000, got %s", entry.NewRent.String())
	}
	if !entry.IncrementPercent.Equal(mustDecimal(t, "8")) {
		t.Errorf("Expected default percent 8, got %s", entry.IncrementPercent.String())
	}
}

func TestApplyIncrement_NoLeaseNoDefault(t *testing.T) {
	service, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	tenant := createTestTenant(t, service, "Stuck Shop", "F-04", "25000")

	_, err := service.ApplyIncrement(ctx, tenant.Id)
	if !errors.Is(err, store.ErrInvalidState) {
		t.Errorf("Expected invalid state error, got %v", err)
	}

	// Rent must be untouched after the failed increment.
	unchanged, err := service.GetTenantById(ctx, tenant.Id)
	if err != nil {
		t.Fatalf("GetTenantById failed: %v", err)
	}
	if !unchanged.MonthlyRent.Equal(mustDecimal(t, "25000")) {
		t.Errorf("Expected rent unchanged at 25000, got %s", unchanged.MonthlyRent.String())
	}
}

func TestApplyIncrement_UnknownTenant(t *testing.T) {
	service, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := service.ApplyIncrement(context.Background(), "nonexistent")
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Expected NotFound error, got %v", err)
	}
}

func TestGetRentHistory(t *testing.T) {
	service, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	tenant := createTestTenant(t, service, "History Shop", "F-05", "20000")
	createTestLease(t, service, tenant.Id, "10")

	for i := 0; i < 2; i++ {
		if _, err := service.ApplyIncrement(ctx, tenant.Id); err != nil {
			t.Fatalf("ApplyIncrement %d failed: %v", i, err)
		}
	}

	history, err := service.GetRentHistory(ctx, tenant.Id)
	if err != nil {
		t.Fatalf("GetRentHistory failed: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("Expected 2 history entries, got %d", len(history))
	}
	// 20000 -> 22000 -> 24200
	if !history[0].NewRent.Equal(mustDecimal(t, "22000")) {
		t.Errorf("Expected first entry new rent 22000, got %s", history[0].NewRent.String())
	}
	if !history[1].NewRent.Equal(mustDecimal(t, "24200")) {
		t.Errorf("Expected second entry new rent 24200, got %s", history[1].NewRent.String())
	}
}

func TestApplyIncrement_ZeroPercentLeaseIsNoChange(t *testing.T) {
	// A lease's percent governs even at zero: the increment succeeds,
	// records a no-change history row, and leaves the rent alone.
	service, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	tenant := createTestTenant(t, service, "Frozen Rent", "F-09", "25000")
	createTestLease(t, service, tenant.Id, "0")

	entry, err := service.ApplyIncrement(ctx, tenant.Id)
	if err != nil {
		t.Fatalf("ApplyIncrement failed: %v", err)
	}
	if !entry.NewRent.Equal(entry.OldRent) {
		t.Errorf("Expected no rent change, got %s -> %s", entry.OldRent.String(), entry.NewRent.String())
	}
	if !entry.IncrementPercent.Equal(mustDecimal(t, "0")) {
		t.Errorf("Expected increment percent 0, got %s", entry.IncrementPercent.String())
	}

	updated, err := service.GetTenantById(ctx, tenant.Id)
	if err != nil {
		t.Fatalf("GetTenantById failed: %v", err)
	}
	if !updated.MonthlyRent.Equal(mustDecimal(t, "25000")) {
		t.Errorf("Expected rent unchanged at 25000, got %s", updated.MonthlyRent.String())
	}

	history, err := service.GetRentHistory(ctx, tenant.Id)
	if err != nil {
		t.Fatalf("GetRentHistory failed: %v", err)
	}
	if len(history) != 1 {
		t.Errorf("Expected 1 history entry, got %d", len(history))
	}
}
