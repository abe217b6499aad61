package main

import (
	"fmt"
	"os"

	"github.com/diillson/voyage-revenue-go/internal/adapter/driven/aws"
	"github.com/diillson/voyage-revenue-go/internal/adapter/driven/config"
	"github.com/diillson/voyage-revenue-go/internal/adapter/driven/export"
	"github.com/diillson/voyage-revenue-go/internal/adapter/driven/trips"
	"github.com/diillson/voyage-revenue-go/internal/adapter/driving/cli"
	"github.com/diillson/voyage-revenue-go/internal/application/usecase"
	"github.com/diillson/voyage-revenue-go/pkg/console"
	"github.com/diillson/voyage-revenue-go/pkg/version"
)

func main() {
	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version)

	// Inicializa os repositórios
	awsRepo := aws.NewAWSRepository()
	tripRepo := trips.NewTripRepository(awsRepo)
	exportRepo := export.NewExportRepository()
	configRepo := config.NewConfigRepository()
	consoleImpl := console.NewConsole()

	// Inicializa o caso de uso
	revenueUseCase := usecase.NewRevenueUseCase(
		tripRepo,
		awsRepo,
		exportRepo,
		configRepo,
		consoleImpl,
	)

	app.SetRevenueUseCase(revenueUseCase)

	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
