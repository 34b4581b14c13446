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
	"strings"

	"plaza-rent-ledger/internal/api"
	"plaza-rent-ledger/internal/common"
	"plaza-rent-ledger/internal/config"

	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	logger, loggerCleanup := common.InitializeLogger()
	defer loggerCleanup()

	premisesFlag := flag.String("premises", "", "Premises unit to increment (empty applies to all active tenants)")
	flag.Parse()

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
		zap.L().Fatal("Failed to resolve tenants", zap.Error(err))
	}

	rentService := api.NewRentService(services.DbService)

	var applied int
	var failed []string

	fmt.Println()
	common.PrintHeader("RENT INCREMENTS", common.DefaultWidth)
	for i, tenant := range tenants {
		isLast := i == len(tenants)-1
		history, err := rentService.ApplyRentIncrement(ctx, tenant.Id)
		if err != nil {
			failed = append(failed, tenant.Premises)
			fmt.Printf("%s✗ %s (%s): %v\n", common.BoxPrefix(isLast), tenant.Premises, tenant.Name, err)
			continue
		}
		applied++
		fmt.Printf("%s✓ %s (%s): %s -> %s (+%s%%)\n",
			common.BoxPrefix(isLast),
			tenant.Premises, tenant.Name,
			history.OldRent.String(), history.NewRent.String(),
			history.IncrementPercent.String())
	}
	common.PrintSeparator("=", common.DefaultWidth)
	fmt.Printf("Applied: %d  Failed: %d\n\n", applied, len(failed))

	if len(failed) > 0 {
		zap.L().Warn("Rent increments completed with some failures",
			zap.Int("applied", applied),
			zap.String("failed_premises", strings.Join(failed, ", ")))
	} else {
		zap.L().Info("Rent increments applied successfully", zap.Int("applied", applied))
	}
}
