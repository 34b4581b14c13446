package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"plaza-rent-ledger/internal/models"
	"plaza-rent-ledger/internal/month"
	"plaza-rent-ledger/internal/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// LedgerService handles rent record operations: sheet generation, payment
// application, and ledger assembly. The roll-forward rule is
// balance = outstanding_previous + rent - paid, carry_forward = balance.
type LedgerService struct {
	db *sql.DB
}

func NewLedgerService(db *sql.DB) *LedgerService {
	return &LedgerService{
		db: db,
	}
}

func (s *LedgerService) InitSchema() error {
	schema := `
	-- Rent Records Table (one row per tenant per month)
	CREATE TABLE IF NOT EXISTS rent_records (
		id TEXT PRIMARY KEY,
		tenant_id TEXT NOT NULL,
		month_year TEXT NOT NULL,
		rent TEXT NOT NULL,
		outstanding_previous TEXT NOT NULL,
		paid TEXT NOT NULL DEFAULT '0',
		balance TEXT NOT NULL,
		carry_forward TEXT NOT NULL,
		version INTEGER NOT NULL DEFAULT 1,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		UNIQUE(tenant_id, month_year)
	);

	CREATE UNIQUE INDEX IF NOT EXISTS idx_rent_records_tenant_month ON rent_records(tenant_id, month_year);
	CREATE INDEX IF NOT EXISTS idx_rent_records_month ON rent_records(month_year);
	CREATE INDEX IF NOT EXISTS idx_rent_records_tenant ON rent_records(tenant_id);

	-- Payments Table (immutable receipts)
	CREATE TABLE IF NOT EXISTS payments (
		id TEXT PRIMARY KEY,
		tenant_id TEXT NOT NULL,
		month_year TEXT NOT NULL,
		amount TEXT NOT NULL,
		payment_date TIMESTAMP NOT NULL,
		method TEXT NOT NULL,
		transaction_no TEXT NOT NULL DEFAULT '',
		deposited_account TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_payments_tenant_month ON payments(tenant_id, month_year);
	CREATE INDEX IF NOT EXISTS idx_payments_tenant ON payments(tenant_id);
	CREATE INDEX IF NOT EXISTS idx_payments_date ON payments(payment_date);
	`

	_, err := s.db.Exec(schema)
	return err
}

// GenerateMonthSheet creates one rent record per active tenant for the given
// month. Tenants that already have a record are skipped, so running the sheet
// twice neither duplicates records nor resets recorded payments. One tenant's
// failure does not abort the batch; it is reported in the result.
func (s *Service) GenerateMonthSheet(ctx context.Context, monthYear string) (*models.MonthSheetResult, error) {
	my, err := month.Parse(monthYear)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrValidation, err)
	}

	tenants, err := s.GetActiveTenants(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load active tenants: %w", err)
	}

	zap.L().Info("Generating month sheet",
		zap.String("month_year", my.String()),
		zap.Int("active_tenants", len(tenants)))

	result := &models.MonthSheetResult{MonthYear: my.String()}
	for _, tenant := range tenants {
		record, created, err := s.ledger.generateTenantRecord(ctx, &tenant, my)
		if err != nil {
			zap.L().Error("Failed to generate rent record",
				zap.String("tenant_id", tenant.Id),
				zap.String("tenant_name", tenant.Name),
				zap.String("month_year", my.String()),
				zap.Error(err))
			result.Failures = append(result.Failures, models.SheetFailure{
				TenantId:   tenant.Id,
				TenantName: tenant.Name,
				Error:      err.Error(),
			})
			continue
		}
		if !created {
			result.Skipped++
			continue
		}
		result.Generated = append(result.Generated, *record)
	}

	zap.L().Info("Month sheet generated",
		zap.String("month_year", my.String()),
		zap.Int("generated", len(result.Generated)),
		zap.Int("skipped", result.Skipped),
		zap.Int("failures", len(result.Failures)))
	return result, nil
}

// generateTenantRecord creates the record for one tenant inside its own
// transaction. Returns created=false when the month already has a record.
func (s *LedgerService) generateTenantRecord(ctx context.Context, tenant *models.Tenant, my month.MonthYear) (*models.RentRecord, bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Idempotency: skip tenants that already have a record for this month.
	var existingId string
	err = tx.QueryRowContext(ctx, `SELECT id FROM rent_records WHERE tenant_id = ? AND month_year = ?`,
		tenant.Id, my.String()).Scan(&existingId)
	if err == nil {
		return nil, false, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, false, fmt.Errorf("failed to check existing record: %w", err)
	}

	// Carry-in comes from the calendar-previous month's carry_forward.
	// Tenants with no prior record (newly added) start at zero.
	outstanding := decimal.Zero
	var carryStr string
	err = tx.QueryRowContext(ctx, `SELECT carry_forward FROM rent_records WHERE tenant_id = ? AND month_year = ?`,
		tenant.Id, my.Prev().String()).Scan(&carryStr)
	if err == nil {
		outstanding, err = decimal.NewFromString(carryStr)
		if err != nil {
			return nil, false, fmt.Errorf("failed to parse carry forward '%s': %w", carryStr, err)
		}
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, false, fmt.Errorf("failed to get previous record: %w", err)
	}

	// Rent is a snapshot of the tenant's current rate; later increments do
	// not retroactively alter this record.
	rent := tenant.MonthlyRent
	balance := outstanding.Add(rent)

	record := &models.RentRecord{
		Id:                  uuid.New().String(),
		TenantId:            tenant.Id,
		MonthYear:           my.String(),
		Rent:                rent,
		OutstandingPrevious: outstanding,
		Paid:                decimal.Zero,
		Balance:             balance,
		CarryForward:        balance,
		Version:             1,
	}

	_, err = tx.ExecContext(ctx, queryInsertRecord,
		record.Id, record.TenantId, record.MonthYear,
		record.Rent.String(), record.OutstandingPrevious.String(),
		record.Paid.String(), record.Balance.String(), record.CarryForward.String())
	if err != nil {
		return nil, false, fmt.Errorf("failed to insert rent record: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, false, fmt.Errorf("failed to commit transaction: %w", err)
	}

	zap.L().Debug("Rent record generated",
		zap.String("tenant_id", tenant.Id),
		zap.String("month_year", my.String()),
		zap.String("outstanding_previous", outstanding.String()),
		zap.String("rent", rent.String()),
		zap.String("balance", balance.String()))
	return record, true, nil
}

// applyPayment adds amount to the record's cumulative paid and recomputes
// balance from outstanding_previous + rent - paid. Recomputing from source
// fields (rather than subtracting from the old balance) keeps repeated or
// out-of-order application correct. A negative balance is valid: the tenant
// has paid in advance. Later months' outstanding_previous is not touched.
func (s *LedgerService) applyPayment(ctx context.Context, tenantId, monthYear string, amount decimal.Decimal) (*models.RentRecord, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var record models.RentRecord
	var rentStr, outstandingStr, paidStr, balanceStr, carryStr string
	err = tx.QueryRowContext(ctx, queryGetRecord, tenantId, monthYear).Scan(
		&record.Id, &record.TenantId, &record.MonthYear,
		&rentStr, &outstandingStr, &paidStr, &balanceStr, &carryStr,
		&record.Version, &record.CreatedAt, &record.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: no rent record for tenant %s in %s", store.ErrNotFound, tenantId, monthYear)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get rent record: %w", err)
	}

	if record.Rent, err = decimal.NewFromString(rentStr); err != nil {
		return nil, fmt.Errorf("failed to parse rent '%s': %w", rentStr, err)
	}
	if record.OutstandingPrevious, err = decimal.NewFromString(outstandingStr); err != nil {
		return nil, fmt.Errorf("failed to parse outstanding previous '%s': %w", outstandingStr, err)
	}
	if record.Paid, err = decimal.NewFromString(paidStr); err != nil {
		return nil, fmt.Errorf("failed to parse paid '%s': %w", paidStr, err)
	}

	newPaid := record.Paid.Add(amount)
	newBalance := record.OutstandingPrevious.Add(record.Rent).Sub(newPaid)

	result, err := tx.ExecContext(ctx, queryUpdateRecordPayment,
		newPaid.String(), newBalance.String(), newBalance.String(),
		tenantId, monthYear, record.Version)
	if err != nil {
		return nil, fmt.Errorf("failed to update rent record: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return nil, fmt.Errorf("rent record update failed - %w", store.ErrConcurrentModification)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	record.Paid = newPaid
	record.Balance = newBalance
	record.CarryForward = newBalance
	record.Version++

	zap.L().Info("Payment applied",
		zap.String("tenant_id", tenantId),
		zap.String("month_year", monthYear),
		zap.String("amount", amount.String()),
		zap.String("paid", newPaid.String()),
		zap.String("balance", newBalance.String()))
	return &record, nil
}

// ListRecords returns rent records filtered by tenant and/or month; both
// filters are optional.
func (s *Service) ListRecords(ctx context.Context, tenantId, monthYear string) ([]models.RentRecord, error) {
	if monthYear != "" && !month.Valid(monthYear) {
		return nil, fmt.Errorf("%w: invalid month %q", store.ErrValidation, monthYear)
	}

	var rows *sql.Rows
	var err error
	switch {
	case tenantId != "" && monthYear != "":
		rows, err = s.db.QueryContext(ctx, queryGetRecord, tenantId, monthYear)
	case tenantId != "":
		rows, err = s.db.QueryContext(ctx, queryGetTenantRecords, tenantId)
	case monthYear != "":
		rows, err = s.db.QueryContext(ctx, queryGetMonthRecords, monthYear)
	default:
		rows, err = s.db.QueryContext(ctx, queryGetAllRecords)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query rent records: %w", err)
	}
	defer func(rows *sql.Rows) {
		if err := rows.Close(); err != nil {
			zap.L().Warn("Failed to close rows", zap.Error(err))
		}
	}(rows)

	return scanRecords(rows)
}

// ComputeBalance returns the stored balance for (tenant, month), or nil when
// no record exists for that month, which is distinct from a zero balance.
func (s *Service) ComputeBalance(ctx context.Context, tenantId, monthYear string) (*decimal.Decimal, error) {
	if !month.Valid(monthYear) {
		return nil, fmt.Errorf("%w: invalid month %q", store.ErrValidation, monthYear)
	}

	var balanceStr string
	err := s.db.QueryRowContext(ctx, `SELECT balance FROM rent_records WHERE tenant_id = ? AND month_year = ?`,
		tenantId, monthYear).Scan(&balanceStr)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get balance: %w", err)
	}

	balance, err := decimal.NewFromString(balanceStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse balance '%s': %w", balanceStr, err)
	}
	return &balance, nil
}

// TenantLedger assembles the chronological statement inputs for one tenant:
// records ascending by month, payments ascending by payment date.
func (s *Service) TenantLedger(ctx context.Context, tenantId string) (*models.TenantLedger, error) {
	if _, err := s.GetTenantById(ctx, tenantId); err != nil {
		return nil, err
	}

	records, err := s.ListRecords(ctx, tenantId, "")
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, queryGetTenantPayments, tenantId)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments: %w", err)
	}
	defer func(rows *sql.Rows) {
		if err := rows.Close(); err != nil {
			zap.L().Warn("Failed to close rows", zap.Error(err))
		}
	}(rows)

	payments, err := scanPayments(rows)
	if err != nil {
		return nil, err
	}

	return &models.TenantLedger{Records: records, Payments: payments}, nil
}

// RecomputeForward re-chains outstanding_previous across a tenant's records
// so that each month's carry-in equals the calendar-previous month's
// carry-forward. Payment application deliberately leaves later months stale;
// this is the explicit opt-in repair. Returns the number of records changed.
func (s *Service) RecomputeForward(ctx context.Context, tenantId string) (int, error) {
	if _, err := s.GetTenantById(ctx, tenantId); err != nil {
		return 0, err
	}

	records, err := s.ListRecords(ctx, tenantId, "")
	if err != nil {
		return 0, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Walk months in order, carrying the corrected closing balance forward.
	// A gap in the months resets the carry-in to zero, matching what sheet
	// generation would have done with no prior record.
	carried := map[string]decimal.Decimal{}
	updated := 0
	for _, record := range records {
		my, err := month.Parse(record.MonthYear)
		if err != nil {
			return 0, fmt.Errorf("stored record has invalid month %q: %w", record.MonthYear, err)
		}

		expected := decimal.Zero
		if carry, ok := carried[my.Prev().String()]; ok {
			expected = carry
		}

		if record.OutstandingPrevious.Equal(expected) {
			carried[record.MonthYear] = record.CarryForward
			continue
		}

		newBalance := expected.Add(record.Rent).Sub(record.Paid)
		result, err := tx.ExecContext(ctx, queryUpdateRecordForward,
			expected.String(), newBalance.String(), newBalance.String(),
			record.Id, record.Version)
		if err != nil {
			return 0, fmt.Errorf("failed to update record %s: %w", record.Id, err)
		}
		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("failed to check rows affected: %w", err)
		}
		if rowsAffected == 0 {
			return 0, fmt.Errorf("record %s update failed - %w", record.Id, store.ErrConcurrentModification)
		}

		carried[record.MonthYear] = newBalance
		updated++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	zap.L().Info("Recomputed forward chain",
		zap.String("tenant_id", tenantId),
		zap.Int("records_updated", updated))
	return updated, nil
}

func scanRecords(rows *sql.Rows) ([]models.RentRecord, error) {
	var records []models.RentRecord
	for rows.Next() {
		var record models.RentRecord
		var rentStr, outstandingStr, paidStr, balanceStr, carryStr string
		err := rows.Scan(&record.Id, &record.TenantId, &record.MonthYear,
			&rentStr, &outstandingStr, &paidStr, &balanceStr, &carryStr,
			&record.Version, &record.CreatedAt, &record.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan rent record: %w", err)
		}

		if record.Rent, err = decimal.NewFromString(rentStr); err != nil {
			return nil, fmt.Errorf("failed to parse rent '%s': %w", rentStr, err)
		}
		if record.OutstandingPrevious, err = decimal.NewFromString(outstandingStr); err != nil {
			return nil, fmt.Errorf("failed to parse outstanding previous '%s': %w", outstandingStr, err)
		}
		if record.Paid, err = decimal.NewFromString(paidStr); err != nil {
			return nil, fmt.Errorf("failed to parse paid '%s': %w", paidStr, err)
		}
		if record.Balance, err = decimal.NewFromString(balanceStr); err != nil {
			return nil, fmt.Errorf("failed to parse balance '%s': %w", balanceStr, err)
		}
		if record.CarryForward, err = decimal.NewFromString(carryStr); err != nil {
			return nil, fmt.Errorf("failed to parse carry forward '%s': %w", carryStr, err)
		}

		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rent record rows: %w", err)
	}
	return records, nil
}
