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

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"plaza-rent-ledger/internal/models"
	"plaza-rent-ledger/internal/store"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Compile-time check: *Service must satisfy store.RentStore.
var _ store.RentStore = (*Service)(nil)

type Service struct {
	db               *sql.DB
	ledger           *LedgerService
	defaultIncrement decimal.Decimal
}

func NewService(ctx context.Context, cfg models.DatabaseConfig, settings models.BillingSettings) (*Service, error) {
	// Validate configuration
	if cfg.Path == "" {
		return nil, fmt.Errorf("database path cannot be empty")
	}
	if cfg.MaxOpenConns <= 0 {
		return nil, fmt.Errorf("max open connections must be positive, got %d", cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns < 0 {
		return nil, fmt.Errorf("max idle connections cannot be negative, got %d", cfg.MaxIdleConns)
	}
	if cfg.PingTimeout <= 0 {
		return nil, fmt.Errorf("ping timeout must be positive, got %v", cfg.PingTimeout)
	}
	if settings.DefaultIncrementPercent.IsNegative() {
		return nil, fmt.Errorf("default increment percent cannot be negative, got %s", settings.DefaultIncrementPercent.String())
	}

	zap.L().Info("Opening SQLite database", zap.String("file", cfg.Path))
	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL&_synchronous=NORMAL&_cache_size=1000")
	if err != nil {
		return nil, fmt.Errorf("unable to open database: %w", err)
	}

	// Set connection timeouts and limits
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	// Test connection with timeout
	pingCtx, cancel := context.WithTimeout(ctx, cfg.PingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		if cerr := db.Close(); cerr != nil {
			return nil, cerr
		}
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}

	ledger := NewLedgerService(db)
	service := &Service{db: db, ledger: ledger, defaultIncrement: settings.DefaultIncrementPercent}
	if err := service.initSchema(cfg.CreateDemoTenants); err != nil {
		if cerr := db.Close(); cerr != nil {
			return nil, cerr
		}
		return nil, fmt.Errorf("unable to initialize schema: %w", err)
	}

	// Initialize ledger schema
	if err := ledger.InitSchema(); err != nil {
		if cerr := db.Close(); cerr != nil {
			return nil, cerr
		}
		return nil, fmt.Errorf("unable to initialize ledger schema: %w", err)
	}

	zap.L().Info("Database service initialized successfully")
	return service, nil
}

func (s *Service) Close() {
	if err := s.db.Close(); err != nil {
		zap.L().Warn("Failed to close database connection", zap.Error(err))
	}
}

func (s *Service) initSchema(createDemoTenants bool) error {
	schema := `
	-- Create tenants table
	CREATE TABLE IF NOT EXISTS tenants (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		contact TEXT NOT NULL DEFAULT '',
		premises TEXT NOT NULL UNIQUE,
		monthly_rent TEXT NOT NULL,
		security_deposit TEXT NOT NULL DEFAULT '0',
		status TEXT NOT NULL DEFAULT 'active',
		effective_date TIMESTAMP NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	-- Create index on premises for faster lookups
	CREATE INDEX IF NOT EXISTS idx_tenants_premises ON tenants(premises);
	-- Create index on status for active-tenant scans
	CREATE INDEX IF NOT EXISTS idx_tenants_status ON tenants(status);

	-- Create leases table (one row per tenancy; renewal rewrites the window)
	CREATE TABLE IF NOT EXISTS leases (
		id TEXT PRIMARY KEY,
		tenant_id TEXT NOT NULL REFERENCES tenants(id) ON DELETE CASCADE,
		start_date TIMESTAMP NOT NULL,
		end_date TIMESTAMP NOT NULL,
		duration_months INTEGER NOT NULL,
		increment_percent TEXT NOT NULL DEFAULT '0',
		reminder_days INTEGER NOT NULL DEFAULT 30,
		status TEXT NOT NULL DEFAULT 'running',
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_leases_tenant_id ON leases(tenant_id);
	CREATE INDEX IF NOT EXISTS idx_leases_end_date ON leases(end_date);

	-- Rent change audit trail (append-only)
	CREATE TABLE IF NOT EXISTS rent_history (
		id TEXT PRIMARY KEY,
		tenant_id TEXT NOT NULL REFERENCES tenants(id) ON DELETE CASCADE,
		old_rent TEXT NOT NULL,
		new_rent TEXT NOT NULL,
		increment_percent TEXT NOT NULL,
		effective_date TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_rent_history_tenant_id ON rent_history(tenant_id);

	-- Security deposit deductions (append-only, reporting only)
	CREATE TABLE IF NOT EXISTS deposit_adjustments (
		id TEXT PRIMARY KEY,
		tenant_id TEXT NOT NULL REFERENCES tenants(id) ON DELETE CASCADE,
		description TEXT NOT NULL,
		amount TEXT NOT NULL,
		date TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_deposit_adjustments_tenant_id ON deposit_adjustments(tenant_id);
	`

	_, err := s.db.Exec(schema)
	if err != nil {
		return err
	}

	// Insert 3 demo tenants for testing if configured to do so
	if createDemoTenants {
		tenants := []struct {
			id       string
			name     string
			premises string
			rent     string
			deposit  string
		}{
			{uuid.New().String(), "Crescent Traders", "G-01", "85000", "250000"},
			{uuid.New().String(), "Silk Route Fabrics", "G-02", "97437", "300000"},
			{uuid.New().String(), "Noor Pharmacy", "F-11", "50000", "150000"},
		}

		for _, tenant := range tenants {
			_, err := s.db.Exec(queryInsertTenant,
				tenant.id, tenant.name, "", tenant.premises, tenant.rent, tenant.deposit,
				string(models.TenantActive), time.Now())
			if err != nil {
				zap.L().Error("Failed to insert demo tenant", zap.String("name", tenant.name), zap.Error(err))
			} else {
				zap.L().Info("Demo tenant created", zap.String("id", tenant.id), zap.String("name", tenant.name))
			}
		}
	} else {
		zap.L().Info("Skipping demo tenant creation (CREATE_DEMO_TENANTS=false)")
	}

	return nil
}
