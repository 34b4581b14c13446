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

package common

import (
	"context"
	"fmt"

	"plaza-rent-ledger/internal/store"

	"go.uber.org/zap"
)

// TenantInfo represents simplified tenant information for command-line utilities
type TenantInfo struct {
	Id       string
	Name     string
	Premises string
}

// InitializeTenants retrieves tenants based on an optional premises filter.
// If premisesFilter is provided, returns the single tenant occupying that unit.
// If premisesFilter is empty, returns all active tenants.
func InitializeTenants(ctx context.Context, dbService store.RentStore, premisesFilter string, logger *zap.Logger) ([]TenantInfo, error) {
	var tenants []TenantInfo

	if premisesFilter != "" {
		logger.Info("Looking up tenant by premises", zap.String("premises", premisesFilter))
		tenant, err := dbService.GetTenantByPremises(ctx, premisesFilter)
		if err != nil {
			return nil, fmt.Errorf("tenant not found: %w", err)
		}
		tenants = append(tenants, TenantInfo{
			Id:       tenant.Id,
			Name:     tenant.Name,
			Premises: tenant.Premises,
		})
	} else {
		activeTenants, err := dbService.GetActiveTenants(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get tenants: %w", err)
		}
		for _, t := range activeTenants {
			tenants = append(tenants, TenantInfo{
				Id:       t.Id,
				Name:     t.Name,
				Premises: t.Premises,
			})
		}
	}

	logger.Info("Retrieved tenants", zap.Int("count", len(tenants)))
	return tenants, nil
}
