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

// LeaseStatus enumerates lease lifecycle states. The stored status is not
// guaranteed to match date-derived expiry; reports compute expiry from
// EndDate independently.
type LeaseStatus string

const (
	LeaseRunning LeaseStatus = "running"
	LeaseExpired LeaseStatus = "expired"
	LeaseRenewed LeaseStatus = "renewed"
)

// Valid reports whether the status is a known lifecycle state.
func (s LeaseStatus) Valid() bool {
	switch s {
	case LeaseRunning, LeaseExpired, LeaseRenewed:
		return true
	}
	return false
}

// LeaseDurations lists the permitted lease terms in months.
var LeaseDurations = []int{6, 12, 24, 36}

// ValidLeaseDuration reports whether months is a permitted lease term.
func ValidLeaseDuration(months int) bool {
	for _, d := range LeaseDurations {
		if months == d {
			return true
		}
	}
	return false
}

// Lease represents one tenancy term. EndDate is derived:
// EndDate = StartDate + DurationMonths. Renewal rewrites the window in place
// (newStart = oldEnd, newEnd = newStart + DurationMonths, status renewed)
// rather than creating a new entity.
type Lease struct {
	Id               string          `db:"id"`
	TenantId         string          `db:"tenant_id"`
	StartDate        time.Time       `db:"start_date"`
	EndDate          time.Time       `db:"end_date"`
	DurationMonths   int             `db:"duration_months"`
	IncrementPercent decimal.Decimal `db:"increment_percent"`
	ReminderDays     int             `db:"reminder_days"`
	Status           LeaseStatus     `db:"status"`
	CreatedAt        time.Time       `db:"created_at"`
	UpdatedAt        time.Time       `db:"updated_at"`
}

// ExpiredBy reports whether the lease term has run out as of the given date,
// regardless of the stored Status field.
func (l *Lease) ExpiredBy(today time.Time) bool {
	return l.EndDate.Before(today)
}

// ExpiringWithin reports whether the lease end falls inside the reminder
// window ending at EndDate, as of the given date.
func (l *Lease) ExpiringWithin(today time.Time, days int) bool {
	if l.ExpiredBy(today) {
		return false
	}
	return !l.EndDate.After(today.AddDate(0, 0, days))
}
