package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"plaza-rent-ledger/internal/api"
	"plaza-rent-ledger/internal/common"
	"plaza-rent-ledger/internal/config"
	"plaza-rent-ledger/internal/reports"

	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	logger, loggerCleanup := common.InitializeLogger()
	defer loggerCleanup()

	premisesFlag := flag.String("premises", "", "Premises unit of the tenant (required)")
	repairFlag := flag.Bool("repair", false, "Recompute the carry-forward chain before printing")
	csvFlag := flag.String("csv", "", "Write the statement as CSV to this file")
	flag.Parse()

	if *premisesFlag == "" {
		zap.L().Fatal("Required flag: --premises")
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
	reportService := reports.NewService(services.DbService)

	if *repairFlag {
		updated, err := rentService.RepairCarryChain(ctx, tenant.Id)
		if err != nil {
			zap.L().Fatal("Failed to repair carry chain", zap.Error(err))
		}
		zap.L().Info("Carry chain recomputed",
			zap.String("tenant_id", tenant.Id),
			zap.Int("records_updated", updated))
	}

	lines, err := reportService.BuildStatement(ctx, tenant.Id)
	if err != nil {
		zap.L().Fatal("Failed to build statement", zap.Error(err))
	}

	fmt.Println()
	common.PrintHeader(fmt.Sprintf("STATEMENT  %s (%s)", tenant.Name, tenant.Premises), common.WideWidth)
	if len(lines) == 0 {
		fmt.Println("No ledger activity for this tenant yet.")
	}
	for _, line := range lines {
		debit, credit := "", ""
		if line.Debit.IsPositive() {
			debit = line.Debit.String()
		}
		if line.Credit.IsPositive() {
			credit = line.Credit.String()
		}
		fmt.Printf("%-12s %-36s %12s %12s %14s\n",
			line.Date, line.Description, debit, credit, line.Running.String())
	}
	common.PrintSeparator("=", common.WideWidth)
	fmt.Println()

	if *csvFlag != "" {
		file, err := os.Create(*csvFlag)
		if err != nil {
			zap.L().Fatal("Failed to create CSV file", zap.String("path", *csvFlag), zap.Error(err))
		}
		defer file.Close()

		if err := reports.WriteStatementCSV(file, lines); err != nil {
			zap.L().Fatal("Failed to write CSV", zap.String("path", *csvFlag), zap.Error(err))
		}
		zap.L().Info("Statement written", zap.String("path", *csvFlag), zap.Int("lines", len(lines)))
	}
}
