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

	"plaza-rent-ledger/internal/models"
	"plaza-rent-ledger/internal/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func (s *Service) CreateLease(ctx context.Context, params store.LeaseParams) (*models.Lease, error) {
	if !models.ValidLeaseDuration(params.DurationMonths) {
		return nil, fmt.Errorf("%w: lease duration must be one of %v months, got %d",
			store.ErrValidation, models.LeaseDurations, params.DurationMonths)
	}
	if params.StartDate.IsZero() {
		return nil, fmt.Errorf("%w: lease start date is required", store.ErrValidation)
	}
	if params.IncrementPercent.IsNegative() {
		return nil, fmt.Errorf("%w: increment percent cannot be negative, got %s",
			store.ErrValidation, params.IncrementPercent.String())
	}

	if _, err := s.GetTenantById(ctx, params.TenantId); err != nil {
		return nil, err
	}

	leaseId := uuid.New().String()
	// endDate is derived; it must stay consistent with start + duration.
	endDate := params.StartDate.AddDate(0, params.DurationMonths, 0)

	zap.L().Info("Creating lease",
		zap.String("id", leaseId),
		zap.String("tenant_id", params.TenantId),
		zap.Time("start_date", params.StartDate),
		zap.Time("end_date", endDate),
		zap.Int("duration_months", params.DurationMonths))

	_, err := s.db.ExecContext(ctx, queryInsertLease,
		leaseId, params.TenantId, params.StartDate, endDate,
		params.DurationMonths, params.IncrementPercent.String(),
		params.ReminderDays, string(models.LeaseRunning))
	if err != nil {
		zap.L().Error("Failed to insert lease", zap.String("tenant_id", params.TenantId), zap.Error(err))
		return nil, fmt.Errorf("unable to insert lease: %w", err)
	}

	return s.getLeaseById(ctx, leaseId)
}

func (s *Service) GetLeases(ctx context.Context) ([]models.Lease, error) {
	rows, err := s.db.QueryContext(ctx, queryGetLeases)
	if err != nil {
		zap.L().Error("Failed to query leases", zap.Error(err))
		return nil, fmt.Errorf("unable to query leases: %w", err)
	}
	defer func(rows *sql.Rows) {
		if err := rows.Close(); err != nil {
			zap.L().Warn("Failed to close rows", zap.Error(err))
		}
	}(rows)

	var leases []models.Lease
	for rows.Next() {
		lease, err := scanLease(rows)
		if err != nil {
			return nil, err
		}
		leases = append(leases, *lease)
	}

	if err := rows.Err(); err != nil {
		zap.L().Error("Error during lease row iteration", zap.Error(err))
		return nil, fmt.Errorf("error iterating lease rows: %w", err)
	}

	return leases, nil
}

func (s *Service) GetLeaseByTenant(ctx context.Context, tenantId string) (*models.Lease, error) {
	zap.L().Debug("Querying lease by tenant", zap.String("tenant_id", tenantId))

	lease, err := scanLease(s.db.QueryRowContext(ctx, queryGetLeaseByTenant, tenantId))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: no lease for tenant %s", store.ErrNotFound, tenantId)
		}
		zap.L().Error("Failed to query lease by tenant", zap.String("tenant_id", tenantId), zap.Error(err))
		return nil, fmt.Errorf("unable to query lease by tenant: %w", err)
	}

	return lease, nil
}

func (s *Service) getLeaseById(ctx context.Context, leaseId string) (*models.Lease, error) {
	lease, err := scanLease(s.db.QueryRowContext(ctx, queryGetLeaseById, leaseId))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: lease %s", store.ErrNotFound, leaseId)
		}
		return nil, fmt.Errorf("unable to query lease by ID: %w", err)
	}
	return lease, nil
}

// RenewLease rolls the lease window forward in place: the new term starts
// where the old one ended and runs for the same duration, and the status
// becomes renewed. A renewed lease can expire and be renewed again.
func (s *Service) RenewLease(ctx context.Context, leaseId string) (*models.Lease, error) {
	lease, err := s.getLeaseById(ctx, leaseId)
	if err != nil {
		return nil, err
	}

	newStart := lease.EndDate
	newEnd := newStart.AddDate(0, lease.DurationMonths, 0)

	result, err := s.db.ExecContext(ctx, queryRenewLease, newStart, newEnd, leaseId)
	if err != nil {
		zap.L().Error("Failed to renew lease", zap.String("lease_id", leaseId), zap.Error(err))
		return nil, fmt.Errorf("unable to renew lease: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("unable to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return nil, fmt.Errorf("%w: lease %s", store.ErrNotFound, leaseId)
	}

	zap.L().Info("Lease renewed",
		zap.String("lease_id", leaseId),
		zap.String("tenant_id", lease.TenantId),
		zap.Time("new_start", newStart),
		zap.Time("new_end", newEnd))
	return s.getLeaseById(ctx, leaseId)
}

// SetLeaseStatus is the operator-facing transition, e.g. marking a lease
// expired. Expiry is never applied automatically; reports derive it from
// dates instead of trusting this field.
func (s *Service) SetLeaseStatus(ctx context.Context, leaseId string, status models.LeaseStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: unknown lease status %q", store.ErrValidation, status)
	}

	result, err := s.db.ExecContext(ctx, queryUpdateLeaseStatus, string(status), leaseId)
	if err != nil {
		zap.L().Error("Failed to update lease status", zap.String("lease_id", leaseId), zap.Error(err))
		return fmt.Errorf("unable to update lease status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unable to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: lease %s", store.ErrNotFound, leaseId)
	}

	zap.L().Info("Lease status updated",
		zap.String("lease_id", leaseId),
		zap.String("status", string(status)))
	return nil
}

func scanLease(row rowScanner) (*models.Lease, error) {
	var lease models.Lease
	var percentStr, statusStr string
	err := row.Scan(&lease.Id, &lease.TenantId, &lease.StartDate, &lease.EndDate,
		&lease.DurationMonths, &percentStr, &lease.ReminderDays, &statusStr,
		&lease.CreatedAt, &lease.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if lease.IncrementPercent, err = decimal.NewFromString(percentStr); err != nil {
		return nil, fmt.Errorf("failed to parse increment percent '%s': %w", percentStr, err)
	}
	lease.Status = models.LeaseStatus(statusStr)

	return &lease, nil
}
