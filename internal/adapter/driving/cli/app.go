package cli

import (
	"context"
	"os"
	"path/filepath"

	"github.com/diillson/voyage-revenue-go/pkg/version"

	"github.com/diillson/voyage-revenue-go/internal/application/usecase"
	"github.com/diillson/voyage-revenue-go/internal/shared/types"
	"github.com/spf13/cobra"
)

// flagsFromConfig são as flags que o arquivo de configuração pode preencher.
var flagsFromConfig = []string{
	"actual", "budget", "start", "end", "profile",
	"variance-policy", "report-name", "report-type", "dir",
}

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd        *cobra.Command
	revenueUseCase *usecase.RevenueUseCase
	version        string
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version: versionStr,
	}

	formattedVersion := version.FormatVersion()

	rootCmd := &cobra.Command{
		Use:          "voyage-revenue",
		Short:        "Voyage revenue recognition: actual vs budget by vessel",
		Version:      formattedVersion,
		SilenceUsage: true,
		RunE:         app.runCommand,
	}

	rootCmd.SetVersionTemplate(`{{printf "Voyage Revenue version: %s\n" .Version}}`)

	flags := rootCmd.Flags()
	flags.StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	flags.StringP("actual", "a", "Actual.csv", "Actual trips dataset (local path or s3://bucket/key)")
	flags.StringP("budget", "b", "Budget.csv", "Budget trips dataset (local path or s3://bucket/key)")
	flags.StringP("start", "s", "2024-01-01", "Reporting window start date (YYYY-MM-DD, exclusive bound)")
	flags.StringP("end", "e", "2024-12-31", "Reporting window end date (YYYY-MM-DD, exclusive bound)")
	flags.StringP("profile", "p", "", "AWS profile used for s3:// datasets")
	flags.String("variance-policy", "strict", "Variance when a vessel is missing on one side: strict or zero-fill")
	flags.StringP("report-name", "n", "", "Specify the base name for the report file (without extension)")
	flags.StringSliceP("report-type", "y", []string{"csv"}, "Specify report types: csv, json, pdf")
	flags.StringP("dir", "d", "", "Directory to save the report files (default: current directory)")
	flags.Bool("details", true, "Display the filtered and computed trips of each dataset")
	flags.Bool("chart", false, "Display the variance by vessel as bars")

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// parseArgs parses command-line arguments into a CLIArgs struct.
func (app *CLIApp) parseArgs() (*types.CLIArgs, error) {
	flags := app.rootCmd.Flags()

	configFile, _ := flags.GetString("config-file")
	actual, _ := flags.GetString("actual")
	budget, _ := flags.GetString("budget")
	start, _ := flags.GetString("start")
	end, _ := flags.GetString("end")
	profile, _ := flags.GetString("profile")
	variancePolicy, _ := flags.GetString("variance-policy")
	reportName, _ := flags.GetString("report-name")
	reportType, _ := flags.GetStringSlice("report-type")
	dir, _ := flags.GetString("dir")
	details, _ := flags.GetBool("details")
	chart, _ := flags.GetBool("chart")

	changed := make(map[string]bool, len(flagsFromConfig))
	for _, name := range flagsFromConfig {
		changed[name] = flags.Changed(name)
	}

	// Sem --dir, usa o diretório atual; o arquivo de configuração ainda pode sobrescrever
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		dir = cwd
	} else {
		absDir, err := filepath.Abs(dir)
		if err != nil {
			return nil, err
		}
		dir = absDir
	}

	args := &types.CLIArgs{
		ConfigFile:     configFile,
		ActualSource:   actual,
		BudgetSource:   budget,
		StartDate:      start,
		EndDate:        end,
		Profile:        profile,
		VariancePolicy: variancePolicy,
		ReportName:     reportName,
		ReportType:     reportType,
		Dir:            dir,
		Details:        details,
		Chart:          chart,
		Changed:        changed,
	}

	return args, nil
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, args []string) error {
	displayWelcomeBanner(app.version)

	go version.CheckLatestVersion(app.version)

	cliArgs, err := app.parseArgs()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return app.revenueUseCase.RunReport(ctx, cliArgs)
}

// SetRevenueUseCase sets the revenue use case for the CLI app.
func (app *CLIApp) SetRevenueUseCase(useCase *usecase.RevenueUseCase) {
	app.revenueUseCase = useCase
}
