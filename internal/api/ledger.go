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

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// GenerateMonthSheet opens the rent sheet for the given month across all
// active tenants. Per-tenant failures are reported in the result, not as an
// error.
func (s *RentService) GenerateMonthSheet(ctx context.Context, monthYear string) (*models.MonthSheetResult, error) {
	if monthYear == "" {
		return nil, fmt.Errorf("month_year is required")
	}

	result, err := s.db.GenerateMonthSheet(ctx, monthYear)
	if err != nil {
		zap.L().Error("Failed to generate month sheet",
			zap.String("month_year", monthYear),
			zap.Error(err))
		return nil, err
	}

	return result, nil
}

// RecordPayment records a payment receipt and settles it against the
// tenant's rent record for the month.
func (s *RentService) RecordPayment(ctx context.Context, params store.PaymentParams) (*models.Payment, error) {
	if params.TenantId == "" || params.MonthYear == "" {
		return nil, fmt.Errorf("tenant_id and month_year are required")
	}

	payment, err := s.db.RecordPayment(ctx, params)
	if err != nil {
		zap.L().Error("Failed to record payment",
			zap.String("tenant_id", params.TenantId),
			zap.String("month_year", params.MonthYear),
			zap.Error(err))
		return payment, err
	}

	return payment, nil
}

// GetTenantBalance returns the outstanding balance for a tenant and specific
// month, or nil if no rent record exists for that month.
func (s *RentService) GetTenantBalance(ctx context.Context, tenantId, monthYear string) (*decimal.Decimal, error) {
	if tenantId == "" || monthYear == "" {
		return nil, fmt.Errorf("tenant_id and month_year are required")
	}

	balance, err := s.db.ComputeBalance(ctx, tenantId, monthYear)
	if err != nil {
		zap.L().Error("Failed to compute balance",
			zap.String("tenant_id", tenantId),
			zap.String("month_year", monthYear),
			zap.Error(err))
		return nil, fmt.Errorf("failed to retrieve balance")
	}

	return balance, nil
}

// GetTenantLedger returns the full rent and payment history for a tenant.
func (s *RentService) GetTenantLedger(ctx context.Context, tenantId string) (*models.TenantLedger, error) {
	if tenantId == "" {
		return nil, fmt.Errorf("tenant_id is required")
	}

	ledger, err := s.db.TenantLedger(ctx, tenantId)
	if err != nil {
		zap.L().Error("Failed to get tenant ledger",
			zap.String("tenant_id", tenantId),
			zap.Error(err))
		return nil, err
	}

	return ledger, nil
}

// GetRentRecords returns rent records filtered by tenant and/or month. Both
// filters are optional.
func (s *RentService) GetRentRecords(ctx context.Context, tenantId, monthYear string) ([]models.RentRecord, error) {
	records, err := s.db.ListRecords(ctx, tenantId, monthYear)
	if err != nil {
		zap.L().Error("Failed to list rent records",
			zap.String("tenant_id", tenantId),
			zap.String("month_year", monthYear),
			zap.Error(err))
		return nil, fmt.Errorf("failed to retrieve rent records")
	}

	return records, nil
}

// RepairCarryChain recomputes the carry-forward chain for a tenant after an
// out-of-band correction. Returns the number of records updated.
func (s *RentService) RepairCarryChain(ctx context.Context, tenantId string) (int, error) {
	if tenantId == "" {
		return 0, fmt.Errorf("tenant_id is required")
	}

	updated, err := s.db.RecomputeForward(ctx, tenantId)
	if err != nil {
		zap.L().Error("Failed to recompute carry chain",
			zap.String("tenant_id", tenantId),
			zap.Error(err))
		return 0, err
	}

	return updated, nil
}
