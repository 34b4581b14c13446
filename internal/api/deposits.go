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

package api

import (
	"context"
	"fmt"

	"plaza-rent-ledger/internal/models"
	"plaza-rent-ledger/internal/store"

	"go.uber.org/zap"
)

// AddDepositAdjustment logs a deduction against a tenant's security deposit.
// Adjustments only ever surface in the deposit statement; the rent ledger is
// untouched.
func (s *RentService) AddDepositAdjustment(ctx context.Context, params store.DepositAdjustmentParams) (*models.DepositAdjustment, error) {
	if params.TenantId == "" {
		return nil, fmt.Errorf("tenant_id is required")
	}

	adjustment, err := s.db.AddDepositAdjustment(ctx, params)
	if err != nil {
		zap.L().Error("Failed to add deposit adjustment",
			zap.String("tenant_id", params.TenantId),
			zap.Error(err))
		return nil, err
	}

	return adjustment, nil
}

// GetDepositAdjustments returns a tenant's deposit deductions, oldest first.
func (s *RentService) GetDepositAdjustments(ctx context.Context, tenantId string) ([]models.DepositAdjustment, error) {
	if tenantId == "" {
		return nil, fmt.Errorf("tenant_id is required")
	}

	adjustments, err := s.db.GetDepositAdjustments(ctx, tenantId)
	if err != nil {
		zap.L().Error("Failed to get deposit adjustments",
			zap.String("tenant_id", tenantId),
			zap.Error(err))
		return nil, fmt.Errorf("failed to retrieve deposit adjustments")
	}

	return adjustments, nil
}
