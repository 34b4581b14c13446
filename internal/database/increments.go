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

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"plaza-rent-ledger/internal/models"
	"plaza-rent-ledger/internal/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var percentBase = decimal.NewFromInt(100)

// ApplyIncrement raises the tenant's monthly rent by the lease's increment
// percent, or the configured default when the tenant has no lease. The new
// rate is rounded half-up to a whole currency unit. The change takes effect
// for future sheet generation only; already-generated records keep their
// snapshot. Fails loudly when the tenant has no lease and no positive
// default is configured; a zero-percent lease is a valid no-change increment.
func (s *Service) ApplyIncrement(ctx context.Context, tenantId string) (*models.RentHistory, error) {
	tenant, err := s.GetTenantById(ctx, tenantId)
	if err != nil {
		return nil, err
	}

	percent := s.defaultIncrement
	hasLease := false
	lease, err := s.GetLeaseByTenant(ctx, tenantId)
	if err == nil {
		hasLease = true
		percent = lease.IncrementPercent
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	// A lease's percent governs even at zero (recorded as a no-change
	// increment); the invalid state is having no lease and no default.
	if !hasLease && !percent.IsPositive() {
		return nil, fmt.Errorf("%w: tenant %s has no lease and no positive default increment is configured",
			store.ErrInvalidState, tenantId)
	}

	oldRent := tenant.MonthlyRent
	// round(rent * (1 + pct/100)) half-up to whole currency units
	newRent := oldRent.Mul(percentBase.Add(percent)).Div(percentBase).Round(0)

	entry := &models.RentHistory{
		Id:               uuid.New().String(),
		TenantId:         tenantId,
		OldRent:          oldRent,
		NewRent:          newRent,
		IncrementPercent: percent,
		EffectiveDate:    time.Now(),
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, queryInsertRentHistory,
		entry.Id, entry.TenantId, entry.OldRent.String(), entry.NewRent.String(),
		entry.IncrementPercent.String(), entry.EffectiveDate)
	if err != nil {
		return nil, fmt.Errorf("unable to insert rent history: %w", err)
	}

	result, err := tx.ExecContext(ctx, queryUpdateTenantRent, newRent.String(), tenantId)
	if err != nil {
		return nil, fmt.Errorf("unable to update tenant rent: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("unable to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return nil, fmt.Errorf("%w: tenant %s", store.ErrNotFound, tenantId)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	zap.L().Info("Rent increment applied",
		zap.String("tenant_id", tenantId),
		zap.String("old_rent", oldRent.String()),
		zap.String("new_rent", newRent.String()),
		zap.String("increment_percent", percent.String()))
	return entry, nil
}

// GetRentHistory returns the append-only rent change log for a tenant,
// oldest first.
func (s *Service) GetRentHistory(ctx context.Context, tenantId string) ([]models.RentHistory, error) {
	rows, err := s.db.QueryContext(ctx, queryGetRentHistory, tenantId)
	if err != nil {
		zap.L().Error("Failed to query rent history", zap.String("tenant_id", tenantId), zap.Error(err))
		return nil, fmt.Errorf("unable to query rent history: %w", err)
	}
	defer func(rows *sql.Rows) {
		if err := rows.Close(); err != nil {
			zap.L().Warn("Failed to close rows", zap.Error(err))
		}
	}(rows)

	var history []models.RentHistory
	for rows.Next() {
		var entry models.RentHistory
		var oldStr, newStr, percentStr string
		err := rows.Scan(&entry.Id, &entry.TenantId, &oldStr, &newStr, &percentStr, &entry.EffectiveDate)
		if err != nil {
			return nil, fmt.Errorf("failed to scan rent history row: %w", err)
		}

		if entry.OldRent, err = decimal.NewFromString(oldStr); err != nil {
			return nil, fmt.Errorf("failed to parse old rent '%s': %w", oldStr, err)
		}
		if entry.NewRent, err = decimal.NewFromString(newStr); err != nil {
			return nil, fmt.Errorf("failed to parse new rent '%s': %w", newStr, err)
		}
		if entry.IncrementPercent, err = decimal.NewFromString(percentStr); err != nil {
			return nil, fmt.Errorf("failed to parse increment percent '%s': %w", percentStr, err)
		}

		history = append(history, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rent history rows: %w", err)
	}
	return history, nil
}
