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

// Package month provides the MonthYear value used to key rent records.
// Month arithmetic is done on the calendar, never on the string form, so
// year boundaries behave (2025-12 precedes 2026-01). The zero-padded
// YYYY-MM string form sorts chronologically under plain string order.
package month

import (
	"fmt"
	"time"
)

// MonthYear identifies one billing month.
type MonthYear struct {
	Year  int
	Month time.Month
}

// Parse validates and parses a zero-padded YYYY-MM string.
func Parse(s string) (MonthYear, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return MonthYear{}, fmt.Errorf("invalid month %q: expected YYYY-MM", s)
	}
	return MonthYear{Year: t.Year(), Month: t.Month()}, nil
}

// FromTime returns the MonthYear containing t.
func FromTime(t time.Time) MonthYear {
	return MonthYear{Year: t.Year(), Month: t.Month()}
}

// String returns the zero-padded YYYY-MM form.
func (m MonthYear) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// Prev returns the immediately preceding calendar month.
func (m MonthYear) Prev() MonthYear {
	if m.Month == time.January {
		return MonthYear{Year: m.Year - 1, Month: time.December}
	}
	return MonthYear{Year: m.Year, Month: m.Month - 1}
}

// Next returns the immediately following calendar month.
func (m MonthYear) Next() MonthYear {
	if m.Month == time.December {
		return MonthYear{Year: m.Year + 1, Month: time.January}
	}
	return MonthYear{Year: m.Year, Month: m.Month + 1}
}

// Before reports whether m is chronologically earlier than other.
func (m MonthYear) Before(other MonthYear) bool {
	if m.Year != other.Year {
		return m.Year < other.Year
	}
	return m.Month < other.Month
}

// FirstDay returns midnight UTC on the first day of the month.
func (m MonthYear) FirstDay() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

// Valid reports whether s is a well-formed YYYY-MM string.
func Valid(s string) bool {
	_, err := Parse(s)
	return err == nil
}
