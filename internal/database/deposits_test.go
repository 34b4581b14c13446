package database

import (
	"context"
	"errors"
	"testing"

	"plaza-rent-ledger/internal/store"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"
)

func TestAddDepositAdjustment(t *testing.T) {
	service, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	tenant := createTestTenant(t, service, "Deposit Shop", "D-01", "50000")

	for _, adj := range []struct {
		description string
		amount      string
	}{
		{"Broken shutter repair", "15000"},
		{"Signage damage", "5000"},
	} {
		_, err := service.AddDepositAdjustment(ctx, store.DepositAdjustmentParams{
			TenantId:    tenant.Id,
			Description: adj.description,
			Amount:      mustDecimal(t, adj.amount),
		})
		if err != nil {
			t.Fatalf("AddDepositAdjustment failed: %v", err)
		}
	}

	adjustments, err := service.GetDepositAdjustments(ctx, tenant.Id)
	if err != nil {
		t.Fatalf("GetDepositAdjustments failed: %v", err)
	}
	if len(adjustments) != 2 {
		t.Fatalf("Expected 2 adjustments, got %d", len(adjustments))
	}

	total := decimal.Zero
	for _, adjustment := range adjustments {
		total = total.Add(adjustment.Amount)
	}
	if !total.Equal(mustDecimal(t, "20000")) {
		t.Errorf("Expected total adjustments 20000, got %s", total.String())
	}
}

func TestAddDepositAdjustment_Validation(t *testing.T) {
	service, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	tenant := createTestTenant(t, service, "Deposit Shop 2", "D-02", "50000")

	_, err := service.AddDepositAdjustment(ctx, store.DepositAdjustmentParams{
		TenantId: tenant.Id, Description: "", Amount: mustDecimal(t, "100")})
	if !errors.Is(err, store.ErrValidation) {
		t.Errorf("Expected validation error for empty description, got %v", err)
	}

	_, err = service.AddDepositAdjustment(ctx, store.DepositAdjustmentParams{
		TenantId: tenant.Id, Description: "Repair", Amount: mustDecimal(t, "-100")})
	if !errors.Is(err, store.ErrValidation) {
		t.Errorf("Expected validation error for negative amount, got %v", err)
	}

	_, err = service.AddDepositAdjustment(ctx, store.DepositAdjustmentParams{
		TenantId: "nonexistent", Description: "Repair", Amount: mustDecimal(t, "100")})
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Expected NotFound for unknown tenant, got %v", err)
	}
}

func TestDepositAdjustments_DoNotTouchRentLedger(t *testing.T) {
	service, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	tenant := createTestTenant(t, service, "Deposit Shop 3", "D-03", "50000")
	if _, err := service.GenerateMonthSheet(ctx, "2025-11"); err != nil {
		t.Fatalf("Generation failed: %v", err)
	}

	if _, err := service.AddDepositAdjustment(ctx, store.DepositAdjustmentParams{
		TenantId: tenant.Id, Description: "Repair", Amount: mustDecimal(t, "10000")}); err != nil {
		t.Fatalf("AddDepositAdjustment failed: %v", err)
	}

	balance, err := service.ComputeBalance(ctx, tenant.Id, "2025-11")
	if err != nil {
		t.Fatalf("ComputeBalance failed: %v", err)
	}
	if balance == nil || !balance.Equal(mustDecimal(t, "50000")) {
		t.Errorf("Expected rent balance unchanged at 50000, got %v", balance)
	}
}
