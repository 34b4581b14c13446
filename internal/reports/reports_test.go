/**
 * Copyright 2025-present Galaxy Plaza Management
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package reports

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"plaza-rent-ledger/internal/database"
	"plaza-rent-ledger/internal/models"
	"plaza-rent-ledger/internal/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupReportsTest(t *testing.T) (*Service, store.RentStore, func()) {
	t.Helper()

	dbService, err := database.NewService(context.Background(), models.DatabaseConfig{
		Path:         ":memory:",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
		PingTimeout:  5 * time.Second,
	}, models.BillingSettings{DefaultIncrementPercent: decimal.Zero})
	require.NoError(t, err)

	return NewService(dbService), dbService, dbService.Close
}

func addTenant(t *testing.T, db store.RentStore, name, premises, rent, deposit string) *models.Tenant {
	t.Helper()

	tenant, err := db.CreateTenant(context.Background(), store.TenantParams{
		Name:            name,
		Premises:        premises,
		MonthlyRent:     mustDecimal(t, rent),
		SecurityDeposit: mustDecimal(t, deposit),
		EffectiveDate:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return tenant
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()

	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func TestDefaultersAndAdvances(t *testing.T) {
	svc, db, cleanup := setupReportsTest(t)
	defer cleanup()
	ctx := context.Background()

	owing := addTenant(t, db, "Crescent Traders", "G-01", "85000", "0")
	ahead := addTenant(t, db, "Noor Pharmacy", "F-11", "50000", "0")

	_, err := db.GenerateMonthSheet(ctx, "2025-12")
	require.NoError(t, err)

	// ahead pays rent plus 10000 advance
	_, err = db.RecordPayment(ctx, store.PaymentParams{
		TenantId:  ahead.Id,
		MonthYear: "2025-12",
		Amount:    mustDecimal(t, "60000"),
		Method:    models.PaymentCash,
	})
	require.NoError(t, err)

	defaulters, err := svc.Defaulters(ctx, "2025-12")
	require.NoError(t, err)
	require.Len(t, defaulters, 1)
	assert.Equal(t, owing.Id, defaulters[0].TenantId)
	assert.Equal(t, "G-01", defaulters[0].Premises)
	assert.True(t, defaulters[0].Balance.Equal(mustDecimal(t, "85000")))

	advances, err := svc.Advances(ctx, "2025-12")
	require.NoError(t, err)
	require.Len(t, advances, 1)
	assert.Equal(t, ahead.Id, advances[0].TenantId)
	assert.True(t, advances[0].Advance.Equal(mustDecimal(t, "10000")))
}

func TestDefaulters_SortedLargestFirst(t *testing.T) {
	svc, db, cleanup := setupReportsTest(t)
	defer cleanup()
	ctx := context.Background()

	small := addTenant(t, db, "Small Shop", "G-03", "20000", "0")
	big := addTenant(t, db, "Big Store", "G-04", "90000", "0")

	_, err := db.GenerateMonthSheet(ctx, "2026-01")
	require.NoError(t, err)

	defaulters, err := svc.Defaulters(ctx, "2026-01")
	require.NoError(t, err)
	require.Len(t, defaulters, 2)
	assert.Equal(t, big.Id, defaulters[0].TenantId)
	assert.Equal(t, small.Id, defaulters[1].TenantId)
}

func TestDepositStatement(t *testing.T) {
	svc, db, cleanup := setupReportsTest(t)
	defer cleanup()
	ctx := context.Background()

	tenant := addTenant(t, db, "Silk Route Fabrics", "G-02", "97437", "300000")

	_, err := db.AddDepositAdjustment(ctx, store.DepositAdjustmentParams{
		TenantId:    tenant.Id,
		Description: "shutter repair",
		Amount:      mustDecimal(t, "15000"),
	})
	require.NoError(t, err)
	_, err = db.AddDepositAdjustment(ctx, store.DepositAdjustmentParams{
		TenantId:    tenant.Id,
		Description: "electric meter replacement",
		Amount:      mustDecimal(t, "5000"),
	})
	require.NoError(t, err)

	rows, err := svc.DepositStatement(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].TotalDeducted.Equal(mustDecimal(t, "20000")))
	assert.True(t, rows[0].NetHeld.Equal(mustDecimal(t, "280000")))
	assert.Len(t, rows[0].Adjustments, 2)
}

func TestLeaseExpiry(t *testing.T) {
	svc, db, cleanup := setupReportsTest(t)
	defer cleanup()
	ctx := context.Background()
	today := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	expired := addTenant(t, db, "Vacated Vendor", "F-01", "30000", "0")
	_, err := db.CreateLease(ctx, store.LeaseParams{
		TenantId:       expired.Id,
		StartDate:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		DurationMonths: 12,
		ReminderDays:   30,
	})
	require.NoError(t, err)

	ending := addTenant(t, db, "Ending Soon", "F-02", "30000", "0")
	_, err = db.CreateLease(ctx, store.LeaseParams{
		TenantId:       ending.Id,
		StartDate:      time.Date(2025, 9, 20, 0, 0, 0, 0, time.UTC),
		DurationMonths: 6,
		ReminderDays:   30,
	})
	require.NoError(t, err)

	farOut := addTenant(t, db, "Long Runner", "F-03", "30000", "0")
	_, err = db.CreateLease(ctx, store.LeaseParams{
		TenantId:       farOut.Id,
		StartDate:      time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		DurationMonths: 12,
		ReminderDays:   30,
	})
	require.NoError(t, err)

	rows, err := svc.LeaseExpiry(ctx, today, 30)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Sorted by end date: the already-expired lease first.
	assert.Equal(t, expired.Id, rows[0].Lease.TenantId)
	assert.True(t, rows[0].Expired)
	assert.Equal(t, 0, rows[0].DaysLeft)

	assert.Equal(t, ending.Id, rows[1].Lease.TenantId)
	assert.False(t, rows[1].Expired)
	assert.Equal(t, 5, rows[1].DaysLeft)
}

func TestBuildStatement_ReplaysChargesAndPayments(t *testing.T) {
	svc, db, cleanup := setupReportsTest(t)
	defer cleanup()
	ctx := context.Background()

	tenant := addTenant(t, db, "Crescent Traders", "G-01", "85000", "0")

	_, err := db.GenerateMonthSheet(ctx, "2025-11")
	require.NoError(t, err)
	_, err = db.RecordPayment(ctx, store.PaymentParams{
		TenantId:    tenant.Id,
		MonthYear:   "2025-11",
		Amount:      mustDecimal(t, "50000"),
		PaymentDate: time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC),
		Method:      models.PaymentBank,
	})
	require.NoError(t, err)
	_, err = db.GenerateMonthSheet(ctx, "2025-12")
	require.NoError(t, err)

	lines, err := svc.BuildStatement(ctx, tenant.Id)
	require.NoError(t, err)
	require.Len(t, lines, 3)

	assert.Equal(t, "2025-11-01", lines[0].Date)
	assert.True(t, lines[0].Running.Equal(mustDecimal(t, "85000")))

	assert.Equal(t, "2025-11-10", lines[1].Date)
	assert.True(t, lines[1].Credit.Equal(mustDecimal(t, "50000")))
	assert.True(t, lines[1].Running.Equal(mustDecimal(t, "35000")))

	assert.Equal(t, "2025-12-01", lines[2].Date)
	assert.True(t, lines[2].Running.Equal(mustDecimal(t, "120000")))

	// The replayed closing balance matches the stored December balance.
	balance, err := db.ComputeBalance(ctx, tenant.Id, "2025-12")
	require.NoError(t, err)
	require.NotNil(t, balance)
	assert.True(t, lines[2].Running.Equal(*balance))
}

func TestWriteDefaultersCSV(t *testing.T) {
	rows := []DefaulterRow{
		{TenantId: "t1", Name: "Crescent Traders", Premises: "G-01", Contact: "0300-1234567", MonthYear: "2025-12", Balance: decimal.NewFromInt(85000)},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteDefaultersCSV(&buf, rows))

	out := buf.String()
	csvLines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, csvLines, 2)
	assert.Equal(t, "premises,name,contact,month,balance", csvLines[0])
	assert.Equal(t, "G-01,Crescent Traders,0300-1234567,2025-12,85000", csvLines[1])
}

func TestReminderMessage(t *testing.T) {
	msg, err := ReminderMessage(DefaulterRow{
		Name:      "Noor Pharmacy",
		Premises:  "F-11",
		MonthYear: "2025-12",
		Balance:   decimal.NewFromInt(50000),
	}, "Rs.")
	require.NoError(t, err)

	assert.Contains(t, msg, "Dear Noor Pharmacy")
	assert.Contains(t, msg, "rent for 2025-12")
	assert.Contains(t, msg, "Rs. 50000")
}

func TestInvoiceText(t *testing.T) {
	tenant := &models.Tenant{Name: "Crescent Traders", Premises: "G-01"}
	record := &models.RentRecord{
		MonthYear:           "2025-12",
		Rent:                decimal.NewFromInt(97437),
		OutstandingPrevious: decimal.NewFromInt(215309),
		Paid:                decimal.NewFromInt(140000),
		Balance:             decimal.NewFromInt(172746),
	}

	text, err := InvoiceText(tenant, record, "Rs.")
	require.NoError(t, err)

	assert.Contains(t, text, "RENT INVOICE - 2025-12")
	assert.Contains(t, text, "Rs. 172746")
	assert.Contains(t, text, "Premises:  G-01")
}
