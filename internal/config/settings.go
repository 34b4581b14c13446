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

package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v2"

	"plaza-rent-ledger/internal/models"
)

type settingsFile struct {
	Billing struct {
		DefaultIncrementPercent string `yaml:"default_increment_percent"`
		CurrencySymbol          string `yaml:"currency_symbol"`
	} `yaml:"billing"`
}

// LoadBillingSettings reads billing settings from the given yaml file.
// A missing file is not an error: defaults apply (no default increment,
// "Rs." currency symbol).
func LoadBillingSettings(path string) (*models.BillingSettings, error) {
	settings := &models.BillingSettings{
		DefaultIncrementPercent: decimal.Zero,
		CurrencySymbol:          "Rs.",
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return nil, fmt.Errorf("failed to read settings file %s: %w", path, err)
	}

	var file settingsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse settings file %s: %w", path, err)
	}

	if file.Billing.DefaultIncrementPercent != "" {
		percent, err := decimal.NewFromString(file.Billing.DefaultIncrementPercent)
		if err != nil {
			return nil, fmt.Errorf("invalid default_increment_percent %q: %w", file.Billing.DefaultIncrementPercent, err)
		}
		if percent.IsNegative() {
			return nil, fmt.Errorf("default_increment_percent must not be negative, got %s", percent)
		}
		settings.DefaultIncrementPercent = percent
	}

	if file.Billing.CurrencySymbol != "" {
		settings.CurrencySymbol = file.Billing.CurrencySymbol
	}

	return settings, nil
}
