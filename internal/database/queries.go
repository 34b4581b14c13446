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

const (
	// Tenant queries
	queryInsertTenant = `
		INSERT INTO tenants (id, name, contact, premises, monthly_rent, security_deposit, status, effective_date)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	queryGetTenants = `
		SELECT id, name, contact, premises, monthly_rent, security_deposit, status, effective_date, created_at, updated_at
		FROM tenants
		ORDER BY premises`

	queryGetActiveTenants = `
		SELECT id, name, contact, premises, monthly_rent, security_deposit, status, effective_date, created_at, updated_at
		FROM tenants
		WHERE status = 'active'
		ORDER BY premises`

	queryGetTenantById = `
		SELECT id, name, contact, premises, monthly_rent, security_deposit, status, effective_date, created_at, updated_at
		FROM tenants
		WHERE id = ?`

	queryGetTenantByPremises = `
		SELECT id, name, contact, premises, monthly_rent, security_deposit, status, effective_date, created_at, updated_at
		FROM tenants
		WHERE premises = ?`

	queryUpdateTenantStatus = `
		UPDATE tenants
		SET status = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`

	queryUpdateTenantRent = `
		UPDATE tenants
		SET monthly_rent = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`

	// Lease queries
	queryInsertLease = `
		INSERT INTO leases (id, tenant_id, start_date, end_date, duration_months, increment_percent, reminder_days, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	queryGetLeases = `
		SELECT id, tenant_id, start_date, end_date, duration_months, increment_percent, reminder_days, status, created_at, updated_at
		FROM leases
		ORDER BY end_date`

	queryGetLeaseById = `
		SELECT id, tenant_id, start_date, end_date, duration_months, increment_percent, reminder_days, status, created_at, updated_at
		FROM leases
		WHERE id = ?`

	queryGetLeaseByTenant = `
		SELECT id, tenant_id, start_date, end_date, duration_months, increment_percent, reminder_days, status, created_at, updated_at
		FROM leases
		WHERE tenant_id = ?
		ORDER BY created_at DESC
		LIMIT 1`

	queryRenewLease = `
		UPDATE leases
		SET start_date = ?, end_date = ?, status = 'renewed', updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`

	queryUpdateLeaseStatus = `
		UPDATE leases
		SET status = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`

	// Rent record queries
	queryInsertRecord = `
		INSERT INTO rent_records (id, tenant_id, month_year, rent, outstanding_previous, paid, balance, carry_forward, version)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, 1)`

	queryGetRecord = `
		SELECT id, tenant_id, month_year, rent, outstanding_previous, paid, balance, carry_forward, version, created_at, updated_at
		FROM rent_records
		WHERE tenant_id = ? AND month_year = ?`

	queryGetTenantRecords = `
		SELECT id, tenant_id, month_year, rent, outstanding_previous, paid, balance, carry_forward, version, created_at, updated_at
		FROM rent_records
		WHERE tenant_id = ?
		ORDER BY month_year`

	queryGetMonthRecords = `
		SELECT id, tenant_id, month_year, rent, outstanding_previous, paid, balance, carry_forward, version, created_at, updated_at
		FROM rent_records
		WHERE month_year = ?
		ORDER BY tenant_id`

	queryGetAllRecords = `
		SELECT id, tenant_id, month_year, rent, outstanding_previous, paid, balance, carry_forward, version, created_at, updated_at
		FROM rent_records
		ORDER BY tenant_id, month_year`

	// Payment application recomputes balance from source fields; the version
	// check guards the read-modify-write on paid.
	queryUpdateRecordPayment = `
		UPDATE rent_records
		SET paid = ?, balance = ?, carry_forward = ?, version = version + 1, updated_at = CURRENT_TIMESTAMP
		WHERE tenant_id = ? AND month_year = ? AND version = ?`

	queryUpdateRecordForward = `
		UPDATE rent_records
		SET outstanding_previous = ?, balance = ?, carry_forward = ?, version = version + 1, updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND version = ?`

	// Payment queries
	queryInsertPayment = `
		INSERT INTO payments (id, tenant_id, month_year, amount, payment_date, method, transaction_no, deposited_account)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	queryGetTenantPayments = `
		SELECT id, tenant_id, month_year, amount, payment_date, method, transaction_no, deposited_account, created_at
		FROM payments
		WHERE tenant_id = ?
		ORDER BY payment_date`

	// Rent history queries
	queryInsertRentHistory = `
		INSERT INTO rent_history (id, tenant_id, old_rent, new_rent, increment_percent, effective_date)
		VALUES (?, ?, ?, ?, ?, ?)`

	queryGetRentHistory = `
		SELECT id, tenant_id, old_rent, new_rent, increment_percent, effective_date
		FROM rent_history
		WHERE tenant_id = ?
		ORDER BY effective_date`

	// Deposit adjustment queries
	queryInsertDepositAdjustment = `
		INSERT INTO deposit_adjustments (id, tenant_id, description, amount, date)
		VALUES (?, ?, ?, ?, ?)`

	queryGetDepositAdjustments = `
		SELECT id, tenant_id, description, amount, date
		FROM deposit_adjustments
		WHERE tenant_id = ?
		ORDER BY date`
)
