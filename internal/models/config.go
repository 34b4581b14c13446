package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Config represents the application configuration
type Config struct {
	Database DatabaseConfig
	Billing  BillingConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Path              string
	MaxOpenConns      int
	MaxIdleConns      int
	ConnMaxLifetime   time.Duration
	ConnMaxIdleTime   time.Duration
	PingTimeout       time.Duration
	CreateDemoTenants bool
}

// BillingConfig holds billing-side settings
type BillingConfig struct {
	SettingsFile string
}

// BillingSettings holds the billing rules loaded from the settings file.
type BillingSettings struct {
	DefaultIncrementPercent decimal.Decimal
	CurrencySymbol          string
}
