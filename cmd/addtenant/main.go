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

package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"plaza-rent-ledger/internal/api"
	"plaza-rent-ledger/internal/common"
	"plaza-rent-ledger/internal/config"
	"plaza-rent-ledger/internal/store"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if len(name) < 2 {
		return fmt.Errorf("name must be at least 2 characters")
	}
	return nil
}

func parseAmount(flagName, value string) decimal.Decimal {
	amount, err := decimal.NewFromString(value)
	if err != nil {
		zap.L().Fatal("Invalid amount", zap.String("flag", flagName), zap.String("value", value), zap.Error(err))
	}
	return amount
}

func main() {
	ctx := context.Background()

	_, loggerCleanup := common.InitializeLogger()
	defer loggerCleanup()

	// Parse command line flags
	nameFlag := flag.String("name", "", "Tenant's business name (required)")
	contactFlag := flag.String("contact", "", "Tenant's contact number")
	premisesFlag := flag.String("premises", "", "Premises unit, e.g. G-01 (required)")
	rentFlag := flag.String("rent", "", "Monthly rent amount (required)")
	depositFlag := flag.String("deposit", "0", "Security deposit amount")
	leaseMonthsFlag := flag.Int("lease-months", 0, "Lease duration in months (6, 12, 24 or 36); 0 skips the lease")
	leaseStartFlag := flag.String("lease-start", "", "Lease start date as YYYY-MM-DD (defaults to today)")
	incrementFlag := flag.String("increment-percent", "0", "Yearly increment percent for the lease")
	reminderDaysFlag := flag.Int("reminder-days", 30, "Days before lease end to start expiry reminders")
	flag.Parse()

	// Validate required flags
	if *nameFlag == "" || *premisesFlag == "" || *rentFlag == "" {
		zap.L().Fatal("Required flags: --name, --premises and --rent")
	}

	if err := validateName(*nameFlag); err != nil {
		zap.L().Fatal("Invalid name", zap.Error(err))
	}

	rent := parseAmount("rent", *rentFlag)
	deposit := parseAmount("deposit", *depositFlag)

	var leaseParams *store.LeaseParams
	if *leaseMonthsFlag != 0 {
		startDate := time.Now()
		if *leaseStartFlag != "" {
			parsed, err := time.Parse("2006-01-02", *leaseStartFlag)
			if err != nil {
				zap.L().Fatal("Invalid lease start date, expected YYYY-MM-DD", zap.Error(err))
			}
			startDate = parsed
		}
		leaseParams = &store.LeaseParams{
			StartDate:        startDate,
			DurationMonths:   *leaseMonthsFlag,
			IncrementPercent: parseAmount("increment-percent", *incrementFlag),
			ReminderDays:     *reminderDaysFlag,
		}
	}

	zap.L().Info("Starting tenant registration",
		zap.String("name", *nameFlag),
		zap.String("premises", *premisesFlag))

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		zap.L().Fatal("Failed to load config", zap.Error(err))
	}

	services, err := common.InitializeServices(ctx, cfg)
	if err != nil {
		zap.L().Fatal("Failed to initialize services", zap.Error(err))
	}
	defer services.Close()

	rentService := api.NewRentService(services.DbService)

	tenant, err := rentService.RegisterTenant(ctx, store.TenantParams{
		Name:            *nameFlag,
		Contact:         *contactFlag,
		Premises:        *premisesFlag,
		MonthlyRent:     rent,
		SecurityDeposit: deposit,
		EffectiveDate:   time.Now(),
	}, leaseParams)
	if err != nil {
		zap.L().Fatal("Failed to register tenant", zap.Error(err))
	}

	fmt.Println()
	common.PrintHeader("TENANT REGISTERED", common.DefaultWidth)
	fmt.Printf("ID:        %s\n", tenant.Id)
	fmt.Printf("Name:      %s\n", tenant.Name)
	fmt.Printf("Premises:  %s\n", tenant.Premises)
	fmt.Printf("Rent:      %s\n", common.FormatAmount(services.Settings.CurrencySymbol, tenant.MonthlyRent))
	fmt.Printf("Deposit:   %s\n", common.FormatAmount(services.Settings.CurrencySymbol, tenant.SecurityDeposit))
	common.PrintSeparator("=", common.DefaultWidth)
	fmt.Println()

	if leaseParams != nil {
		lease, err := services.DbService.GetLeaseByTenant(ctx, tenant.Id)
		if err != nil {
			zap.L().Warn("Tenant registered but lease lookup failed", zap.Error(err))
			return
		}
		fmt.Printf("Lease %s: %s to %s (%d months)\n",
			lease.Id,
			lease.StartDate.Format("2006-01-02"),
			lease.EndDate.Format("2006-01-02"),
			lease.DurationMonths)
	}

	zap.L().Info("Tenant registered successfully",
		zap.String("id", tenant.Id),
		zap.String("premises", tenant.Premises))
}
