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

// RegisterTenant registers a tenant and optionally opens their initial lease
// when durationMonths is non-zero.
func (s *RentService) RegisterTenant(ctx context.Context, params store.TenantParams, lease *store.LeaseParams) (*models.Tenant, error) {
	tenant, err := s.db.CreateTenant(ctx, params)
	if err != nil {
		zap.L().Error("Failed to create tenant",
			zap.String("name", params.Name),
			zap.String("premises", params.Premises),
			zap.Error(err))
		return nil, err
	}

	if lease != nil {
		lease.TenantId = tenant.Id
		if _, err := s.db.CreateLease(ctx, *lease); err != nil {
			zap.L().Error("Failed to create lease for new tenant",
				zap.String("tenant_id", tenant.Id),
				zap.Error(err))
			return tenant, fmt.Errorf("tenant created but lease failed: %w", err)
		}
	}

	return tenant, nil
}

// ApplyRentIncrement raises a tenant's rent by their lease percent, or the
// configured default when no lease covers them.
func (s *RentService) ApplyRentIncrement(ctx context.Context, tenantId string) (*models.RentHistory, error) {
	if tenantId == "" {
		return nil, fmt.Errorf("tenant_id is required")
	}

	history, err := s.db.ApplyIncrement(ctx, tenantId)
	if err != nil {
		zap.L().Error("Failed to apply rent increment",
			zap.String("tenant_id", tenantId),
			zap.Error(err))
		return nil, err
	}

	return history, nil
}

// RenewLease extends a lease for another term of its own duration.
func (s *RentService) RenewLease(ctx context.Context, leaseId string) (*models.Lease, error) {
	if leaseId == "" {
		return nil, fmt.Errorf("lease_id is required")
	}

	lease, err := s.db.RenewLease(ctx, leaseId)
	if err != nil {
		zap.L().Error("Failed to renew lease",
			zap.String("lease_id", leaseId),
			zap.Error(err))
		return nil, err
	}

	return lease, nil
}
