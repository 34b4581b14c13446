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

// SheetFailure records one tenant's failure during batch sheet generation.
type SheetFailure struct {
	TenantId   string `json:"tenant_id"`
	TenantName string `json:"tenant_name,omitempty"`
	Error      string `json:"error"`
}

// MonthSheetResult summarizes one GenerateMonthSheet run. A failure for one
// tenant never aborts the batch; it lands in Failures and the run continues.
type MonthSheetResult struct {
	MonthYear string         `json:"month_year"`
	Generated []RentRecord   `json:"generated"`
	Skipped   int            `json:"skipped"` // tenants that already had a record
	Failures  []SheetFailure `json:"failures,omitempty"`
}

// TenantLedger is the assembled chronological view for one tenant: records
// ascending by month, payments ascending by payment date.
type TenantLedger struct {
	Records  []RentRecord `json:"records"`
	Payments []Payment    `json:"payments"`
}
