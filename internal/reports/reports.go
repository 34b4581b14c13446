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
	"context"
	"fmt"
	"sort"
	"time"

	"plaza-rent-ledger/internal/models"
	"plaza-rent-ledger/internal/store"

	"github.com/shopspring/decimal"
)

// Service builds reporting views over the rent ledger. All reports are
// read-only projections; none of them mutate ledger state.
type Service struct {
	db store.RentStore
}

func NewService(db store.RentStore) *Service {
	return &Service{db: db}
}

// DefaulterRow is one tenant owing money for a month.
type DefaulterRow struct {
	TenantId  string
	Name      string
	Premises  string
	Contact   string
	MonthYear string
	Balance   decimal.Decimal
}

// AdvanceRow is one tenant holding a credit (negative balance) for a month.
type AdvanceRow struct {
	TenantId  string
	Name      string
	Premises  string
	MonthYear string
	Advance   decimal.Decimal
}

// DepositStatementRow summarizes a tenant's security deposit position:
// the amount collected, deductions logged against it, and the net held.
type DepositStatementRow struct {
	TenantId        string
	Name            string
	Premises        string
	SecurityDeposit decimal.Decimal
	Adjustments     []models.DepositAdjustment
	TotalDeducted   decimal.Decimal
	NetHeld         decimal.Decimal
}

// LeaseExpiryRow flags a lease that has run out or is inside its reminder
// window. Expiry is derived from the lease dates, not the stored status.
type LeaseExpiryRow struct {
	Lease    models.Lease
	Name     string
	Premises string
	Expired  bool
	DaysLeft int
}

// Defaulters returns tenants with a positive balance for the given month,
// largest balance first.
func (s *Service) Defaulters(ctx context.Context, monthYear string) ([]DefaulterRow, error) {
	records, err := s.db.ListRecords(ctx, "", monthYear)
	if err != nil {
		return nil, fmt.Errorf("failed to list records for %s: %w", monthYear, err)
	}

	tenants, err := s.tenantIndex(ctx)
	if err != nil {
		return nil, err
	}

	var rows []DefaulterRow
	for _, record := range records {
		if !record.Balance.IsPositive() {
			continue
		}
		tenant, ok := tenants[record.TenantId]
		if !ok {
			continue
		}
		rows = append(rows, DefaulterRow{
			TenantId:  record.TenantId,
			Name:      tenant.Name,
			Premises:  tenant.Premises,
			Contact:   tenant.Contact,
			MonthYear: record.MonthYear,
			Balance:   record.Balance,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Balance.GreaterThan(rows[j].Balance)
	})
	return rows, nil
}

// Advances returns tenants whose balance for the given month is negative,
// i.e. they have paid ahead. The advance is reported as a positive amount.
func (s *Service) Advances(ctx context.Context, monthYear string) ([]AdvanceRow, error) {
	records, err := s.db.ListRecords(ctx, "", monthYear)
	if err != nil {
		return nil, fmt.Errorf("failed to list records for %s: %w", monthYear, err)
	}

	tenants, err := s.tenantIndex(ctx)
	if err != nil {
		return nil, err
	}

	var rows []AdvanceRow
	for _, record := range records {
		if !record.Balance.IsNegative() {
			continue
		}
		tenant, ok := tenants[record.TenantId]
		if !ok {
			continue
		}
		rows = append(rows, AdvanceRow{
			TenantId:  record.TenantId,
			Name:      tenant.Name,
			Premises:  tenant.Premises,
			MonthYear: record.MonthYear,
			Advance:   record.Balance.Neg(),
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Advance.GreaterThan(rows[j].Advance)
	})
	return rows, nil
}

// DepositStatement returns the security deposit position for every tenant.
// Deposit adjustments never touch the rent ledger; this is the only view
// that surfaces them against the collected amount.
func (s *Service) DepositStatement(ctx context.Context) ([]DepositStatementRow, error) {
	tenants, err := s.db.GetTenants(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get tenants: %w", err)
	}

	rows := make([]DepositStatementRow, 0, len(tenants))
	for _, tenant := range tenants {
		adjustments, err := s.db.GetDepositAdjustments(ctx, tenant.Id)
		if err != nil {
			return nil, fmt.Errorf("failed to get deposit adjustments for %s: %w", tenant.Id, err)
		}

		total := decimal.Zero
		for _, adj := range adjustments {
			total = total.Add(adj.Amount)
		}

		rows = append(rows, DepositStatementRow{
			TenantId:        tenant.Id,
			Name:            tenant.Name,
			Premises:        tenant.Premises,
			SecurityDeposit: tenant.SecurityDeposit,
			Adjustments:     adjustments,
			TotalDeducted:   total,
			NetHeld:         tenant.SecurityDeposit.Sub(total),
		})
	}
	return rows, nil
}

// LeaseExpiry returns leases that have expired or end within the given
// reminder window, soonest end date first. A lease's own ReminderDays takes
// precedence over defaultReminderDays when set.
func (s *Service) LeaseExpiry(ctx context.Context, today time.Time, defaultReminderDays int) ([]LeaseExpiryRow, error) {
	leases, err := s.db.GetLeases(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get leases: %w", err)
	}

	tenants, err := s.tenantIndex(ctx)
	if err != nil {
		return nil, err
	}

	var rows []LeaseExpiryRow
	for _, lease := range leases {
		reminderDays := defaultReminderDays
		if lease.ReminderDays > 0 {
			reminderDays = lease.ReminderDays
		}

		expired := lease.ExpiredBy(today)
		if !expired && !lease.ExpiringWithin(today, reminderDays) {
			continue
		}

		tenant, ok := tenants[lease.TenantId]
		if !ok {
			continue
		}

		daysLeft := int(lease.EndDate.Sub(today).Hours() / 24)
		if expired {
			daysLeft = 0
		}

		rows = append(rows, LeaseExpiryRow{
			Lease:    lease,
			Name:     tenant.Name,
			Premises: tenant.Premises,
			Expired:  expired,
			DaysLeft: daysLeft,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Lease.EndDate.Before(rows[j].Lease.EndDate)
	})
	return rows, nil
}

func (s *Service) tenantIndex(ctx context.Context) (map[string]models.Tenant, error) {
	tenants, err := s.db.GetTenants(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get tenants: %w", err)
	}

	index := make(map[string]models.Tenant, len(tenants))
	for _, tenant := range tenants {
		index[tenant.Id] = tenant
	}
	return index, nil
}
