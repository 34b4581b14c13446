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
	"encoding/csv"
	"io"
)

// WriteDefaultersCSV writes a defaulters report as CSV with a header row.
func WriteDefaultersCSV(w io.Writer, rows []DefaulterRow) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"premises", "name", "contact", "month", "balance"}); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{row.Premises, row.Name, row.Contact, row.MonthYear, row.Balance.String()}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteStatementCSV writes a tenant statement as CSV with a header row.
func WriteStatementCSV(w io.Writer, lines []StatementLine) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"date", "description", "debit", "credit", "running_balance"}); err != nil {
		return err
	}
	for _, line := range lines {
		record := []string{line.Date, line.Description, line.Debit.String(), line.Credit.String(), line.Running.String()}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteDepositStatementCSV writes the deposit position report as CSV.
func WriteDepositStatementCSV(w io.Writer, rows []DepositStatementRow) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"premises", "name", "deposit_collected", "total_deducted", "net_held"}); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{
			row.Premises,
			row.Name,
			row.SecurityDeposit.String(),
			row.TotalDeducted.String(),
			row.NetHeld.String(),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
