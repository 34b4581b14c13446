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
	"errors"
	"flag"
	"fmt"
	"time"

	"plaza-rent-ledger/internal/api"
	"plaza-rent-ledger/internal/common"
	"plaza-rent-ledger/internal/config"
	"plaza-rent-ledger/internal/models"
	"plaza-rent-ledger/internal/store"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	logger, loggerCleanup := common.InitializeLogger()
	defer loggerCleanup()

	premisesFlag := flag.String("premises", "", "Premises unit of the paying tenant (required)")
	monthFlag := flag.String("month", "", "Month the payment settles as YYYY-MM (required)")
	amountFlag := flag.String("amount", "", "Payment amount (required)")
	dateFlag := flag.String("date", "", "Payment date as YYYY-MM-DD (defaults to today)")
	methodFlag := flag.String("method", "cash", "Payment method: cash, bank or online")
	txnFlag := flag.String("txn", "", "Bank or online transaction number")
	accountFlag := flag.String("account", "", "Account the payment was deposited to")
	flag.Parse()

	if *premisesFlag == "" || *monthFlag == "" || *amountFlag == "" {
		zap.L().Fatal("Required flags: --premises, --month and --amount")
	}

	amount, err := decimal.NewFromString(*amountFlag)
	if err != nil {
		zap.L().Fatal("Invalid amount", zap.String("value", *amountFlag), zap.Error(err))
	}

	var paymentDate time.Time
	if *dateFlag != "" {
		paymentDate, err = time.Parse("2006-01-02", *dateFlag)
		if err != nil {
			zap.L().Fatal("Invalid payment date, expected YYYY-MM-DD", zap.Error(err))
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

	payment, err := rentService.RecordPayment(ctx, store.PaymentParams{
		TenantId:         tenant.Id,
		MonthYear:        *monthFlag,
		Amount:           amount,
		PaymentDate:      paymentDate,
		Method:           models.PaymentMethod(*methodFlag),
		TransactionNo:    *txnFlag,
		DepositedAccount: *accountFlag,
	})
	if err != nil {
		if payment != nil {
			// The receipt was stored; only the settlement failed.
			zap.L().Warn("Payment receipt stored but not settled",
				zap.String("payment_id", payment.Id),
				zap.Error(err))
			if errors.Is(err, store.ErrNotFound) {
				fmt.Printf("Receipt %s stored, but no rent sheet exists for %s yet.\n", payment.Id, *monthFlag)
				fmt.Println("Generate the sheet (cmd/sheet) and run a repair (cmd/ledger --repair) to settle it.")
			} else {
				fmt.Printf("Receipt %s stored, but the balance update failed: %v\n", payment.Id, err)
				fmt.Println("Run a repair (cmd/ledger --repair) once the record is fixed.")
			}
			return
		}
		zap.L().Fatal("Failed to record payment", zap.Error(err))
	}

	fmt.Println()
	common.PrintHeader("PAYMENT RECORDED", common.DefaultWidth)
	fmt.Printf("Receipt:   %s\n", payment.Id)
	fmt.Printf("Tenant:    %s (%s)\n", tenant.Name, tenant.Premises)
	fmt.Printf("Month:     %s\n", payment.MonthYear)
	fmt.Printf("Amount:    %s\n", common.FormatAmount(services.Settings.CurrencySymbol, payment.Amount))
	fmt.Printf("Method:    %s\n", payment.Method)
	if payment.TransactionNo != "" {
		fmt.Printf("Txn:       %s\n", payment.TransactionNo)
	}

	balance, err := rentService.GetTenantBalance(ctx, tenant.Id, payment.MonthYear)
	if err == nil && balance != nil {
		fmt.Printf("Balance:   %s\n", common.FormatAmount(services.Settings.CurrencySymbol, *balance))
	}
	common.PrintSeparator("=", common.DefaultWidth)
	fmt.Println()

	zap.L().Info("Payment recorded successfully",
		zap.String("payment_id", payment.Id),
		zap.String("tenant_id", tenant.Id),
		zap.String("month_year", payment.MonthYear))
}
