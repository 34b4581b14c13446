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

func main() {
	ctx := context.Background()

	logger, loggerCleanup := common.InitializeLogger()
	defer loggerCleanup()

	premisesFlag := flag.String("premises", "", "Premises unit of the tenant (required)")
	descriptionFlag := flag.String("description", "", "What the deduction was for (required)")
	amountFlag := flag.String("amount", "", "Deduction amount (required)")
	dateFlag := flag.String("date", "", "Deduction date as YYYY-MM-DD (defaults to today)")
	flag.Parse()

	if *premisesFlag == "" || *descriptionFlag == "" || *amountFlag == "" {
		zap.L().Fatal("Required flags: --premises, --description and --amount")
	}

	amount, err := decimal.NewFromString(*amountFlag)
	if err != nil {
		zap.L().Fatal("Invalid amount", zap.String("value", *amountFlag), zap.Error(err))
	}

	var date time.Time
	if *dateFlag != "" {
		date, err = time.Parse("2006-01-02", *dateFlag)
		if err != nil {
			zap.L().Fatal("Invalid date, expected YYYY-MM-DD", zap.Error(err))
		}
	}

	cfg, err := config.Load()
	if err != nil {
		zap.L().Fatal("Failed to load config", zap.Error(err))
	}

	services, err := common.InitializeServices(ctx, cfg)
	if err != nil {
		zap.L().Fatal("Failed to initialize services", zap.Error(err))
	}
	defer services.Close()

	tenants, err := common.InitializeTenants(ctx, services.DbService, *premisesFlag, logger)
	if err != nil {
		zap.L().Fatal("Failed to find tenant", zap.String("premises", *premisesFlag), zap.Error(err))
	}
	tenant := tenants[0]

	rentService := api.NewRentService(services.DbService)

	adjustment, err := rentService.AddDepositAdjustment(ctx, store.DepositAdjustmentParams{
		TenantId:    tenant.Id,
		Description: *descriptionFlag,
		Amount:      amount,
		Date:        date,
	})
	if err != nil {
		zap.L().Fatal("Failed to add deposit adjustment", zap.Error(err))
	}

	fmt.Println()
	common.PrintHeader("DEPOSIT DEDUCTION RECORDED", common.DefaultWidth)
	fmt.Printf("Tenant:      %s (%s)\n", tenant.Name, tenant.Premises)
	fmt.Printf("Deduction:   %s\n", common.FormatAmount(services.Settings.CurrencySymbol, adjustment.Amount))
	fmt.Printf("Reason:      %s\n", adjustment.Description)
	fmt.Printf("Date:        %s\n", adjustment.Date.Format("2006-01-02"))

	// Show the updated position the way the deposits report computes it.
	adjustments, err := rentService.GetDepositAdjustments(ctx, tenant.Id)
	if err == nil {
		total := decimal.Zero
		for _, adj := range adjustments {
			total = total.Add(adj.Amount)
		}
		fullTenant, err := services.DbService.GetTenantById(ctx, tenant.Id)
		if err == nil {
			fmt.Printf("Net held:    %s\n",
				common.FormatAmount(services.Settings.CurrencySymbol, fullTenant.SecurityDeposit.Sub(total)))
		}
	}
	common.PrintSeparator("=", common.DefaultWidth)
	fmt.Println()

	zap.L().Info("Deposit adjustment recorded",
		zap.String("tenant_id", tenant.Id),
		zap.String("adjustment_id", adjustment.Id),
		zap.String("amount", adjustment.Amount.String()))
}
