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

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TenantStatus enumerates the occupancy states of a tenant.
type TenantStatus string

const (
	TenantActive    TenantStatus = "active"
	TenantVacated   TenantStatus = "vacated"
	TenantSuspended TenantStatus = "suspended"
)

// Valid reports whether the status is one of the known occupancy states.
func (s TenantStatus) Valid() bool {
	switch s {
	case TenantActive, TenantVacated, TenantSuspended:
		return true
	}
	return false
}

// Tenant represents a tenant occupying a premises in the plaza.
// MonthlyRent is the current rate; sheet generation snapshots it per month,
// so later edits never alter already-generated records.
type Tenant struct {
	Id              string          `db:"id"`
	Name            string          `db:"name"`
	Contact         string          `db:"contact"`
	Premises        string          `db:"premises"`
	MonthlyRent     decimal.Decimal `db:"monthly_rent"`
	SecurityDeposit decimal.Decimal `db:"security_deposit"`
	Status          TenantStatus    `db:"status"`
	EffectiveDate   time.Time       `db:"effective_date"`
	CreatedAt       time.Time       `db:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at"`
}
