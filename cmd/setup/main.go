package main

import (
	"context"
	"flag"
	"fmt"

	"plaza-rent-ledger/internal/common"
	"plaza-rent-ledger/internal/config"

	"go.uber.org/zap"
)

func listTenants(ctx context.Context, services *common.Services) {
	tenants, err := services.DbService.GetTenants(ctx)
	if err != nil {
		zap.L().Fatal("Failed to read tenants from database", zap.Error(err))
	}

	common.PrintHeader("REGISTERED TENANTS", common.DefaultWidth)
	if len(tenants) == 0 {
		fmt.Println("No tenants registered yet. Use cmd/addtenant to register one.")
	}
	for i, tenant := range tenants {
		isLast := i == len(tenants)-1
		fmt.Printf("%s%s  %s (%s)\n", common.BoxPrefix(isLast), tenant.Premises, tenant.Name, tenant.Status)
		fmt.Printf("%s   rent %s, deposit %s\n",
			common.BoxDetailPrefix(isLast),
			common.FormatAmount(services.Settings.CurrencySymbol, tenant.MonthlyRent),
			common.FormatAmount(services.Settings.CurrencySymbol, tenant.SecurityDeposit))
	}
	common.PrintSeparator("=", common.DefaultWidth)
	fmt.Println()
}

func runInit(ctx context.Context, services *common.Services) {
	zap.L().Info("Initializing plaza rent ledger database")

	// NewService already created the schema; just confirm it is reachable
	// and show what is in it.
	listTenants(ctx, services)

	zap.L().Info("Initialization complete")
}

func main() {
	ctx := context.Background()

	_, loggerCleanup := common.InitializeLogger()
	defer loggerCleanup()

	initFlag := flag.Bool("init", false, "Initialize the database")
	flag.Parse()

	// Initialize services at top level
	cfg, err := config.Load()
	if err != nil {
		zap.L().Fatal("Failed to load config", zap.Error(err))
	}

	services, err := common.InitializeServices(ctx, cfg)
	if err != nil {
		zap.L().Fatal("Failed to initialize services", zap.Error(err))
	}
	defer services.Close()

	if *initFlag {
		runInit(ctx, services)
		return
	}

	listTenants(ctx, services)
}
