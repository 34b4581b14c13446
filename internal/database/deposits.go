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
	"fmt"
	"time"

	"plaza-rent-ledger/internal/models"
	"plaza-rent-ledger/internal/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// AddDepositAdjustment logs a deduction against a tenant's security deposit.
// The adjustment ledger is reporting-only and never touches rent records.
func (s *Service) AddDepositAdjustment(ctx context.Context, params store.DepositAdjustmentParams) (*models.DepositAdjustment, error) {
	if params.Description == "" {
		return nil, fmt.Errorf("%w: adjustment description is required", store.ErrValidation)
	}
	if !params.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: adjustment amount must be positive, got %s", store.ErrValidation, params.Amount.String())
	}

	if _, err := s.GetTenantById(ctx, params.TenantId); err != nil {
		return nil, err
	}

	date := params.Date
	if date.IsZero() {
		date = time.Now()
	}

	adjustment := &models.DepositAdjustment{
		Id:          uuid.New().String(),
		TenantId:    params.TenantId,
		Description: params.Description,
		Amount:      params.Amount,
		Date:        date,
	}

	_, err := s.db.ExecContext(ctx, queryInsertDepositAdjustment,
		adjustment.Id, adjustment.TenantId, adjustment.Description,
		adjustment.Amount.String(), adjustment.Date)
	if err != nil {
		zap.L().Error("Failed to insert deposit adjustment", zap.String("tenant_id", params.TenantId), zap.Error(err))
		return nil, fmt.Errorf("unable to insert deposit adjustment: %w", err)
	}

	zap.L().Info("Deposit adjustment recorded",
		zap.String("tenant_id", adjustment.TenantId),
		zap.String("amount", adjustment.Amount.String()),
		zap.String("description", adjustment.Description))
	return adjustment, nil
}

// GetDepositAdjustments returns a tenant's deposit deductions, oldest first.
func (s *Service) GetDepositAdjustments(ctx context.Context, tenantId string) ([]models.DepositAdjustment, error) {
	rows, err := s.db.QueryContext(ctx, queryGetDepositAdjustments, tenantId)
	if err != nil {
		zap.L().Error("Failed to query deposit adjustments", zap.String("tenant_id", tenantId), zap.Error(err))
		return nil, fmt.Errorf("unable to query deposit adjustments: %w", err)
	}
	defer func(rows *sql.Rows) {
		if err := rows.Close(); err != nil {
			zap.L().Warn("Failed to close rows", zap.Error(err))
		}
	}(rows)

	var adjustments []models.DepositAdjustment
	for rows.Next() {
		var adjustment models.DepositAdjustment
		var amountStr string
		err := rows.Scan(&adjustment.Id, &adjustment.TenantId, &adjustment.Description,
			&amountStr, &adjustment.Date)
		if err != nil {
			return nil, fmt.Errorf("failed to scan deposit adjustment row: %w", err)
		}

		if adjustment.Amount, err = decimal.NewFromString(amountStr); err != nil {
			return nil, fmt.Errorf("failed to parse adjustment amount '%s': %w", amountStr, err)
		}

		adjustments = append(adjustments, adjustment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating deposit adjustment rows: %w", err)
	}
	return adjustments, nil
}
