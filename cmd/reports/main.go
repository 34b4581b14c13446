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
	"os"
	"time"

	"plaza-rent-ledger/internal/common"
	"plaza-rent-ledger/internal/config"
	"plaza-rent-ledger/internal/month"
	"plaza-rent-ledger/internal/reports"

	"go.uber.org/zap"
)

func runDefaulters(ctx context.Context, services *common.Services, reportService *reports.Service, monthYear, csvPath string, reminders bool) {
	rows, err := reportService.Defaulters(ctx, monthYear)
	if err != nil {
		zap.L().Fatal("Failed to build defaulters report", zap.Error(err))
	}

	common.PrintHeader(fmt.Sprintf("DEFAULTERS %s", monthYear), common.DefaultWidth)
	for i, row := range rows {
		isLast := i == len(rows)-1
		fmt.Printf("%s%s  %s  owes %s\n",
			common.BoxPrefix(isLast), row.Premises, row.Name,
			common.FormatAmount(services.Settings.CurrencySymbol, row.Balance))
	}
	common.PrintSeparator("=", common.DefaultWidth)
	fmt.Printf("Total defaulters: %d\n\n", len(rows))

	if reminders {
		for _, row := range rows {
			msg, err := reports.ReminderMessage(row, services.Settings.CurrencySymbol)
			if err != nil {
				zap.L().Error("Failed to render reminder", zap.String("tenant_id", row.TenantId), zap.Error(err))
				continue
			}
			common.PrintBoxSeparator(common.DefaultWidth)
			fmt.Println(msg)
		}
	}

	if csvPath != "" {
		writeCSV(csvPath, func(f *os.File) error {
			return reports.WriteDefaultersCSV(f, rows)
		})
	}
}

func runAdvances(ctx context.Context, services *common.Services, reportService *reports.Service, monthYear string) {
	rows, err := reportService.Advances(ctx, monthYear)
	if err != nil {
		zap.L().Fatal("Failed to build advances report", zap.Error(err))
	}

	common.PrintHeader(fmt.Sprintf("ADVANCES %s", monthYear), common.DefaultWidth)
	for i, row := range rows {
		isLast := i == len(rows)-1
		fmt.Printf("%s%s  %s  in advance %s\n",
			common.BoxPrefix(isLast), row.Premises, row.Name,
			common.FormatAmount(services.Settings.CurrencySymbol, row.Advance))
	}
	common.PrintSeparator("=", common.DefaultWidth)
	fmt.Printf("Tenants in advance: %d\n\n", len(rows))
}

func runDeposits(ctx context.Context, services *common.Services, reportService *reports.Service, csvPath string) {
	rows, err := reportService.DepositStatement(ctx)
	if err != nil {
		zap.L().Fatal("Failed to build deposit statement", zap.Error(err))
	}

	common.PrintHeader("SECURITY DEPOSITS", common.DefaultWidth)
	for i, row := range rows {
		isLast := i == len(rows)-1
		fmt.Printf("%s%s  %s\n", common.BoxPrefix(isLast), row.Premises, row.Name)
		fmt.Printf("%s   collected %s, deducted %s, net held %s\n",
			common.BoxDetailPrefix(isLast),
			row.SecurityDeposit.String(), row.TotalDeducted.String(), row.NetHeld.String())
	}
	common.PrintSeparator("=", common.DefaultWidth)
	fmt.Println()

	if csvPath != "" {
		writeCSV(csvPath, func(f *os.File) error {
			return reports.WriteDepositStatementCSV(f, rows)
		})
	}
}

func runExpiry(ctx context.Context, reportService *reports.Service, reminderDays int) {
	rows, err := reportService.LeaseExpiry(ctx, time.Now(), reminderDays)
	if err != nil {
		zap.L().Fatal("Failed to build lease expiry report", zap.Error(err))
	}

	common.PrintHeader("LEASE EXPIRY", common.DefaultWidth)
	for i, row := range rows {
		isLast := i == len(rows)-1
		if row.Expired {
			fmt.Printf("%s%s  %s  EXPIRED %s\n",
				common.BoxPrefix(isLast), row.Premises, row.Name,
				row.Lease.EndDate.Format("2006-01-02"))
		} else {
			fmt.Printf("%s%s  %s  ends %s (%d days)\n",
				common.BoxPrefix(isLast), row.Premises, row.Name,
				row.Lease.EndDate.Format("2006-01-02"), row.DaysLeft)
		}
	}
	common.PrintSeparator("=", common.DefaultWidth)
	fmt.Printf("Leases needing attention: %d\n\n", len(rows))
}

func writeCSV(path string, write func(*os.File) error) {
	file, err := os.Create(path)
	if err != nil {
		zap.L().Fatal("Failed to create CSV file", zap.String("path", path), zap.Error(err))
	}
	defer file.Close()

	if err := write(file); err != nil {
		zap.L().Fatal("Failed to write CSV", zap.String("path", path), zap.Error(err))
	}
	zap.L().Info("Report written", zap.String("path", path))
}

func main() {
	ctx := context.Background()

	_, loggerCleanup := common.InitializeLogger()
	defer loggerCleanup()

	typeFlag := flag.String("type", "defaulters", "Report type: defaulters, advances, deposits or expiry")
	monthFlag := flag.String("month", "", "Month as YYYY-MM for defaulters/advances (defaults to current month)")
	csvFlag := flag.String("csv", "", "Write the report as CSV to this file")
	remindersFlag := flag.Bool("reminders", false, "Print a reminder message per defaulter")
	daysFlag := flag.Int("days", 30, "Reminder window in days for the expiry report")
	flag.Parse()

	monthYear := *monthFlag
	if monthYear == "" {
		monthYear = month.FromTime(time.Now()).String()
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

	reportService := reports.NewService(services.DbService)

	switch *typeFlag {
	case "defaulters":
		runDefaulters(ctx, services, reportService, monthYear, *csvFlag, *remindersFlag)
	case "advances":
		runAdvances(ctx, services, reportService, monthYear)
	case "deposits":
		runDeposits(ctx, services, reportService, *csvFlag)
	case "expiry":
		runExpiry(ctx, reportService, *daysFlag)
	default:
		zap.L().Fatal("Unknown report type", zap.String("type", *typeFlag))
	}
}
