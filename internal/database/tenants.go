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

func (s *Service) GetTenants(ctx context.Context) ([]models.Tenant, error) {
	zap.L().Debug("Querying all tenants")
	return s.queryTenants(ctx, queryGetTenants)
}

func (s *Service) GetActiveTenants(ctx context.Context) ([]models.Tenant, error) {
	zap.L().Debug("Querying active tenants")
	return s.queryTenants(ctx, queryGetActiveTenants)
}

func (s *Service) queryTenants(ctx context.Context, query string, args ...any) ([]models.Tenant, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		zap.L().Error("Failed to query tenants", zap.Error(err))
		return nil, fmt.Errorf("unable to query tenants: %w", err)
	}
	defer func(rows *sql.Rows) {
		if err := rows.Close(); err != nil {
			zap.L().Warn("Failed to close rows", zap.Error(err))
		}
	}(rows)

	var tenants []models.Tenant
	for rows.Next() {
		tenant, err := scanTenant(rows)
		if err != nil {
			zap.L().Error("Failed to scan tenant row", zap.Error(err))
			return nil, err
		}
		tenants = append(tenants, *tenant)
	}

	// Check for errors during iteration
	if err := rows.Err(); err != nil {
		zap.L().Error("Error during tenant row iteration", zap.Error(err))
		return nil, fmt.Errorf("error iterating tenant rows: %w", err)
	}

	zap.L().Debug("Retrieved tenants", zap.Int("count", len(tenants)))
	return tenants, nil
}

func (s *Service) GetTenantById(ctx context.Context, tenantId string) (*models.Tenant, error) {
	zap.L().Debug("Querying tenant by ID", zap.String("tenant_id", tenantId))

	row := s.db.QueryRowContext(ctx, queryGetTenantById, tenantId)
	tenant, err := scanTenant(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: tenant %s", store.ErrNotFound, tenantId)
		}
		zap.L().Error("Failed to query tenant by ID", zap.String("tenant_id", tenantId), zap.Error(err))
		return nil, fmt.Errorf("unable to query tenant by ID: %w", err)
	}

	return tenant, nil
}

func (s *Service) GetTenantByPremises(ctx context.Context, premises string) (*models.Tenant, error) {
	zap.L().Debug("Querying tenant by premises", zap.String("premises", premises))

	row := s.db.QueryRowContext(ctx, queryGetTenantByPremises, premises)
	tenant, err := scanTenant(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: premises %s", store.ErrNotFound, premises)
		}
		zap.L().Error("Failed to query tenant by premises", zap.String("premises", premises), zap.Error(err))
		return nil, fmt.Errorf("unable to query tenant by premises: %w", err)
	}

	return tenant, nil
}

func (s *Service) CreateTenant(ctx context.Context, params store.TenantParams) (*models.Tenant, error) {
	if params.Name == "" {
		return nil, fmt.Errorf("%w: tenant name is required", store.ErrValidation)
	}
	if params.Premises == "" {
		return nil, fmt.Errorf("%w: premises code is required", store.ErrValidation)
	}
	if params.MonthlyRent.IsNegative() || params.MonthlyRent.IsZero() {
		return nil, fmt.Errorf("%w: monthly rent must be positive, got %s", store.ErrValidation, params.MonthlyRent.String())
	}
	if params.SecurityDeposit.IsNegative() {
		return nil, fmt.Errorf("%w: security deposit cannot be negative, got %s", store.ErrValidation, params.SecurityDeposit.String())
	}

	tenantId := uuid.New().String()
	effectiveDate := params.EffectiveDate
	if effectiveDate.IsZero() {
		effectiveDate = time.Now()
	}

	zap.L().Info("Creating tenant",
		zap.String("id", tenantId),
		zap.String("name", params.Name),
		zap.String("premises", params.Premises),
		zap.String("monthly_rent", params.MonthlyRent.String()))

	_, err := s.db.ExecContext(ctx, queryInsertTenant,
		tenantId, params.Name, params.Contact, params.Premises,
		params.MonthlyRent.String(), params.SecurityDeposit.String(),
		string(models.TenantActive), effectiveDate)
	if err != nil {
		zap.L().Error("Failed to insert tenant", zap.String("premises", params.Premises), zap.Error(err))
		return nil, fmt.Errorf("unable to insert tenant: %w", err)
	}

	zap.L().Info("Tenant created successfully", zap.String("id", tenantId), zap.String("name", params.Name))
	return s.GetTenantById(ctx, tenantId)
}

func (s *Service) SetTenantStatus(ctx context.Context, tenantId string, status models.TenantStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: unknown tenant status %q", store.ErrValidation, status)
	}

	result, err := s.db.ExecContext(ctx, queryUpdateTenantStatus, string(status), tenantId)
	if err != nil {
		zap.L().Error("Failed to update tenant status", zap.String("tenant_id", tenantId), zap.Error(err))
		return fmt.Errorf("unable to update tenant status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unable to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: tenant %s", store.ErrNotFound, tenantId)
	}

	zap.L().Info("Tenant status updated",
		zap.String("tenant_id", tenantId),
		zap.String("status", string(status)))
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTenant(row rowScanner) (*models.Tenant, error) {
	var tenant models.Tenant
	var rentStr, depositStr, statusStr string
	err := row.Scan(&tenant.Id, &tenant.Name, &tenant.Contact, &tenant.Premises,
		&rentStr, &depositStr, &statusStr,
		&tenant.EffectiveDate, &tenant.CreatedAt, &tenant.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if tenant.MonthlyRent, err = decimal.NewFromString(rentStr); err != nil {
		return nil, fmt.Errorf("failed to parse monthly rent '%s': %w", rentStr, err)
	}
	if tenant.SecurityDeposit, err = decimal.NewFromString(depositStr); err != nil {
		return nil, fmt.Errorf("failed to parse security deposit '%s': %w", depositStr, err)
	}
	tenant.Status = models.TenantStatus(statusStr)

	return &tenant, nil
}
