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

	"plaza-rent-ledger/internal/models"
	"plaza-rent-ledger/internal/month"

	"github.com/shopspring/decimal"
)

// StatementLine is one dated entry in a tenant statement: either a rent
// charge (Debit) or a payment (Credit), with the running balance after it.
type StatementLine struct {
	Date        string
	Description string
	Debit       decimal.Decimal
	Credit      decimal.Decimal
	Running     decimal.Decimal
}

// BuildStatement replays a tenant's full history as a dated statement:
// each month's rent charge on the first of the month, each payment on its
// payment date, with a running balance. The replay recomputes the balance
// from charges and credits alone, so a drifted carry chain shows up as a
// mismatch against the stored record balances.
func (s *Service) BuildStatement(ctx context.Context, tenantId string) ([]StatementLine, error) {
	ledger, err := s.db.TenantLedger(ctx, tenantId)
	if err != nil {
		return nil, err
	}
	return replayStatement(ledger)
}

func replayStatement(ledger *models.TenantLedger) ([]StatementLine, error) {
	type entry struct {
		date        string
		order       int // charges sort before payments on the same date
		description string
		debit       decimal.Decimal
		credit      decimal.Decimal
	}

	entries := make([]entry, 0, len(ledger.Records)+len(ledger.Payments))
	for _, record := range ledger.Records {
		my, err := month.Parse(record.MonthYear)
		if err != nil {
			return nil, fmt.Errorf("record %s has malformed month %q: %w", record.Id, record.MonthYear, err)
		}
		entries = append(entries, entry{
			date:        my.FirstDay().Format("2006-01-02"),
			order:       0,
			description: fmt.Sprintf("Rent for %s", record.MonthYear),
			debit:       record.Rent,
		})
	}
	for _, payment := range ledger.Payments {
		entries = append(entries, entry{
			date:        payment.PaymentDate.Format("2006-01-02"),
			order:       1,
			description: fmt.Sprintf("Payment (%s) for %s", payment.Method, payment.MonthYear),
			credit:      payment.Amount,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].date != entries[j].date {
			return entries[i].date < entries[j].date
		}
		return entries[i].order < entries[j].order
	})

	lines := make([]StatementLine, 0, len(entries))
	running := decimal.Zero
	for _, e := range entries {
		running = running.Add(e.debit).Sub(e.credit)
		lines = append(lines, StatementLine{
			Date:        e.date,
			Description: e.description,
			Debit:       e.debit,
			Credit:      e.credit,
			Running:     running,
		})
	}
	return lines, nil
}
