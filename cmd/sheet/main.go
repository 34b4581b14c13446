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
	"plaza-rent-ledger/internal/month"

	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	_, loggerCleanup := common.InitializeLogger()
	defer loggerCleanup()

	monthFlag := flag.String("month", "", "Month to generate as YYYY-MM (defaults to current month)")
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

	rentService := api.NewRentService(services.DbService)

	zap.L().Info("Generating month sheet", zap.String("month_year", monthYear))
	result, err := rentService.GenerateMonthSheet(ctx, monthYear)
	if err != nil {
		zap.L().Fatal("Failed to generate month sheet", zap.Error(err))
	}

	fmt.Println()
	common.PrintHeader(fmt.Sprintf("RENT SHEET %s", result.MonthYear), common.DefaultWidth)
	for i, record := range result.Generated {
		isLast := i == len(result.Generated)-1 && len(result.Failures) == 0
		fmt.Printf("%stenant %s\n", common.BoxPrefix(isLast), record.TenantId)
		fmt.Printf("%s   rent %s + outstanding %s = balance %s\n",
			common.BoxDetailPrefix(isLast),
			record.Rent.String(),
			record.OutstandingPrevious.String(),
			record.Balance.String())
	}
	for i, failure := range result.Failures {
		isLast := i == len(result.Failures)-1
		fmt.Printf("%s✗ %s (%s): %s\n", common.BoxPrefix(isLast), failure.TenantName, failure.TenantId, failure.Error)
	}
	common.PrintSeparator("=", common.DefaultWidth)
	fmt.Printf("Generated: %d  Skipped (already present): %d  Failed: %d\n\n",
		len(result.Generated), result.Skipped, len(result.Failures))

	if len(result.Failures) > 0 {
		zap.L().Warn("Month sheet generated with some failures",
			zap.String("month_year", result.MonthYear),
			zap.Int("generated", len(result.Generated)),
			zap.Int("failed", len(result.Failures)))
	} else {
		zap.L().Info("Month sheet generated successfully",
			zap.String("month_year", result.MonthYear),
			zap.Int("generated", len(result.Generated)),
			zap.Int("skipped", result.Skipped))
	}
}
