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
	"strings"
	"text/template"

	"plaza-rent-ledger/internal/models"

	"github.com/shopspring/decimal"
)

var reminderTemplate = template.Must(template.New("reminder").Parse(
	`Dear {{.Name}},

This is a reminder that rent for {{.MonthYear}} for premises {{.Premises}} is due. The outstanding balance on your account is {{.Currency}} {{.Balance}}.

Kindly arrange payment at your earliest convenience. If you have already paid, please ignore this message.

Galaxy Plaza Management`))

var invoiceTemplate = template.Must(template.New("invoice").Parse(
	`RENT INVOICE - {{.MonthYear}}

Tenant:    {{.Name}}
Premises:  {{.Premises}}

Rent for month:        {{.Currency}} {{.Rent}}
Previous outstanding:  {{.Currency}} {{.Outstanding}}
Paid this month:       {{.Currency}} {{.Paid}}
-----------------------------------------
Balance due:           {{.Currency}} {{.Balance}}

Galaxy Plaza Management`))

type reminderData struct {
	Name      string
	Premises  string
	MonthYear string
	Currency  string
	Balance   decimal.Decimal
}

type invoiceData struct {
	Name        string
	Premises    string
	MonthYear   string
	Currency    string
	Rent        decimal.Decimal
	Outstanding decimal.Decimal
	Paid        decimal.Decimal
	Balance     decimal.Decimal
}

// ReminderMessage renders a payment reminder for one defaulter, suitable for
// sending over WhatsApp or SMS.
func ReminderMessage(row DefaulterRow, currency string) (string, error) {
	var sb strings.Builder
	err := reminderTemplate.Execute(&sb, reminderData{
		Name:      row.Name,
		Premises:  row.Premises,
		MonthYear: row.MonthYear,
		Currency:  currency,
		Balance:   row.Balance,
	})
	if err != nil {
		return "", err
	}
	return sb.String(), nil
}

// InvoiceText renders a plain-text invoice for one tenant's month record.
func InvoiceText(tenant *models.Tenant, record *models.RentRecord, currency string) (string, error) {
	var sb strings.Builder
	err := invoiceTemplate.Execute(&sb, invoiceData{
		Name:        tenant.Name,
		Premises:    tenant.Premises,
		MonthYear:   record.MonthYear,
		Currency:    currency,
		Rent:        record.Rent,
		Outstanding: record.OutstandingPrevious,
		Paid:        record.Paid,
		Balance:     record.Balance,
	})
	if err != nil {
		return "", err
	}
	return sb.String(), nil
}
