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

// RentRecord is the ledger entry: one per (tenant, month).
// Balance = OutstandingPrevious + Rent - Paid, and CarryForward always equals
// Balance; it exists as the explicit "this flows to next month" marker.
// Records are never regenerated or deleted; only Paid/Balance/CarryForward
// mutate, and only through payment application.
type RentRecord struct {
	Id                  string          `db:"id"`
	TenantId            string          `db:"tenant_id"`
	MonthYear           string          `db:"month_year"` // zero-padded YYYY-MM
	Rent                decimal.Decimal `db:"rent"`
	OutstandingPrevious decimal.Decimal `db:"outstanding_previous"`
	Paid                decimal.Decimal `db:"paid"`
	Balance             decimal.Decimal `db:"balance"`
	CarryForward        decimal.Decimal `db:"carry_forward"`
	Version             int64           `db:"version"`
	CreatedAt           time.Time       `db:"created_at"`
	UpdatedAt           time.Time       `db:"updated_at"`
}

// PaymentMethod enumerates how a payment was settled.
type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "cash"
	PaymentBank   PaymentMethod = "bank"
	PaymentOnline PaymentMethod = "online"
)

// Valid reports whether the method is a known settlement channel.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentBank, PaymentOnline:
		return true
	}
	return false
}

// Payment is an immutable receipt applied against one (tenant, month) record.
// Multiple payments may target the same month; their amounts sum into the
// record's Paid.
type Payment struct {
	Id               string          `db:"id"`
	TenantId         string          `db:"tenant_id"`
	MonthYear        string          `db:"month_year"`
	Amount           decimal.Decimal `db:"amount"`
	PaymentDate      time.Time       `db:"payment_date"`
	Method           PaymentMethod   `db:"method"`
	TransactionNo    string          `db:"transaction_no"`
	DepositedAccount string          `db:"deposited_account"`
	CreatedAt        time.Time       `db:"created_at"`
}

// RentHistory is an append-only audit entry of a rent change, written
// exclusively by increment application.
type RentHistory struct {
	Id               string          `db:"id"`
	TenantId         string          `db:"tenant_id"`
	OldRent          decimal.Decimal `db:"old_rent"`
	NewRent          decimal.Decimal `db:"new_rent"`
	IncrementPercent decimal.Decimal `db:"increment_percent"`
	EffectiveDate    time.Time       `db:"effective_date"`
}

// DepositAdjustment is an append-only deduction against a tenant's security
// deposit. Reporting-only; it never touches the rent ledger.
type DepositAdjustment struct {
	Id          string          `db:"id"`
	TenantId    string          `db:"tenant_id"`
	Description string          `db:"description"`
	Amount      decimal.Decimal `db:"amount"`
	Date        time.Time       `db:"date"`
}
