package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/diillson/voyage-revenue-go/internal/domain/entity"
	"github.com/diillson/voyage-revenue-go/internal/domain/recognition"
	"github.com/diillson/voyage-revenue-go/internal/domain/repository"
	"github.com/diillson/voyage-revenue-go/internal/shared/types"
)

// RevenueUseCase handles the actual vs budget revenue recognition report.
type RevenueUseCase struct {
	tripRepo   repository.TripRepository
	objectRepo repository.ObjectRepository
	exportRepo repository.ExportRepository
	configRepo repository.ConfigRepository
	console    types.ConsoleInterface

	now   func() time.Time
	newID func() string
}

// NewRevenueUseCase creates a new revenue use case.
// objectRepo pode ser nil quando nenhuma fonte S3 é usada.
func NewRevenueUseCase(
	tripRepo repository.TripRepository,
	objectRepo repository.ObjectRepository,
	exportRepo repository.ExportRepository,
	configRepo repository.ConfigRepository,
	console types.ConsoleInterface,
) *RevenueUseCase {
	return &RevenueUseCase{
		tripRepo:   tripRepo,
		objectRepo: objectRepo,
		exportRepo: exportRepo,
		configRepo: configRepo,
		console:    console,
		now:        time.Now,
		newID:      func() string { return ulid.Make().String() },
	}
}

// datasetResult é o resultado do pipeline de um dataset (load → allocate → aggregate).
type datasetResult struct {
	report entity.DatasetReport
	totals entity.VesselTotals
	err    error
}

// RunReport executa a funcionalidade principal: carrega os datasets, calcula o resumo,
// exibe as tabelas e exporta os relatórios solicitados.
func (uc *RevenueUseCase) RunReport(ctx context.Context, args *types.CLIArgs) error {
	if err := uc.ApplyConfigFile(args); err != nil {
		return err
	}

	status := uc.console.Status("Loading trip datasets...")
	report, err := uc.BuildReport(ctx, args)
	status.Stop()
	if err != nil {
		return err
	}

	uc.console.LogInfo("Reporting window: %s (report %s)", report.Window, report.ID)
	uc.console.Print(uc.renderSummaryTable(report))

	if args.Details {
		for _, ds := range []entity.DatasetReport{report.Actual, report.Budget} {
			uc.console.Printf("\nFiltered and Computed %s Data (%d of %d trips recognized)\n",
				titleCase(ds.Name), ds.Recognized, ds.Loaded)
			uc.console.Print(uc.renderDetailTable(ds.Trips))
		}
	}

	if args.Chart {
		uc.console.DisplayVarianceBars("Variance by Vessel (Actual - Budget)", varianceBars(report.Summary))
	}

	uc.exportReport(report, args)
	return nil
}

// ApplyConfigFile mescla o arquivo de configuração em args.
// Flags passadas explicitamente na linha de comando têm precedência sobre o arquivo.
func (uc *RevenueUseCase) ApplyConfigFile(args *types.CLIArgs) error {
	if args.ConfigFile == "" {
		return nil
	}

	cfg, err := uc.configRepo.LoadConfigFile(args.ConfigFile)
	if err != nil {
		return err
	}

	setString := func(flag string, dst *string, value string) {
		if value != "" && !args.Changed[flag] {
			*dst = value
		}
	}
	setString("actual", &args.ActualSource, cfg.Actual)
	setString("budget", &args.BudgetSource, cfg.Budget)
	setString("start", &args.StartDate, cfg.Start)
	setString("end", &args.EndDate, cfg.End)
	setString("profile", &args.Profile, cfg.Profile)
	setString("variance-policy", &args.VariancePolicy, cfg.VariancePolicy)
	setString("report-name", &args.ReportName, cfg.ReportName)
	setString("dir", &args.Dir, cfg.Dir)

	if len(cfg.ReportType) > 0 && !args.Changed["report-type"] {
		args.ReportType = cfg.ReportType
	}
	args.Columns = cfg.Columns

	uc.console.LogInfo("Loaded configuration from %s", args.ConfigFile)
	return nil
}

// ParseWindow converte as datas de início e fim e valida a janela.
func ParseWindow(start, end string) (entity.ReportingWindow, error) {
	startDate, err := time.Parse(entity.DateLayout, strings.TrimSpace(start))
	if err != nil {
		return entity.ReportingWindow{}, fmt.Errorf("%w: start date %q must be YYYY-MM-DD", types.ErrInvalidWindow, start)
	}
	endDate, err := time.Parse(entity.DateLayout, strings.TrimSpace(end))
	if err != nil {
		return entity.ReportingWindow{}, fmt.Errorf("%w: end date %q must be YYYY-MM-DD", types.ErrInvalidWindow, end)
	}

	window := entity.ReportingWindow{Start: startDate, End: endDate}
	if err := window.Validate(); err != nil {
		return entity.ReportingWindow{}, fmt.Errorf("%w: %v", types.ErrInvalidWindow, err)
	}
	return window, nil
}

// BuildReport valida a entrada, processa actual e budget em paralelo e mescla os resultados.
func (uc *RevenueUseCase) BuildReport(ctx context.Context, args *types.CLIArgs) (entity.RevenueReport, error) {
	window, err := ParseWindow(args.StartDate, args.EndDate)
	if err != nil {
		return entity.RevenueReport{}, err
	}

	policy, err := recognition.ParseVariancePolicy(args.VariancePolicy)
	if err != nil {
		return entity.RevenueReport{}, err
	}

	sources := []types.TripSource{
		{Name: "actual", Location: args.ActualSource, Profile: args.Profile, Columns: args.Columns},
		{Name: "budget", Location: args.BudgetSource, Profile: args.Profile, Columns: args.Columns},
	}
	uc.logS3Identity(ctx, sources)

	// Cada goroutine escreve apenas no seu próprio índice; o merge acontece após o Wait.
	results := make([]datasetResult, len(sources))
	var wg sync.WaitGroup
	for i, src := range sources {
		wg.Add(1)
		go func(i int, src types.TripSource) {
			defer wg.Done()
			results[i] = uc.processDataset(ctx, src, window)
		}(i, src)
	}
	wg.Wait()

	for _, res := range results {
		if res.err != nil {
			return entity.RevenueReport{}, res.err
		}
	}
	actual, budget := results[0], results[1]

	for _, res := range results {
		if res.report.Loaded == 0 {
			uc.console.LogWarning("The %s dataset (%s) has no trips", res.report.Name, res.report.Source)
		} else if res.report.Recognized == 0 {
			uc.console.LogWarning("No %s trips overlap the window %s", res.report.Name, window)
		}
	}

	summary := recognition.MergeVariance(actual.totals, budget.totals, policy)

	return entity.RevenueReport{
		ID:          uc.newID(),
		GeneratedAt: uc.now().UTC(),
		Window:      window,
		Policy:      string(policy),
		Summary:     summary,
		Totals:      recognition.SumSummary(summary),
		Actual:      actual.report,
		Budget:      budget.report,
	}, nil
}

func (uc *RevenueUseCase) processDataset(ctx context.Context, src types.TripSource, window entity.ReportingWindow) datasetResult {
	records, err := uc.tripRepo.LoadTrips(ctx, src)
	if err != nil {
		return datasetResult{err: err}
	}

	trips := recognition.Allocate(records, window)

	return datasetResult{
		report: entity.DatasetReport{
			Name:       src.Name,
			Source:     src.Location,
			Loaded:     len(records),
			Recognized: len(trips),
			Trips:      trips,
		},
		totals: recognition.AggregateByVessel(trips),
	}
}

// logS3Identity registra a conta AWS usada para ler fontes S3. Falhas não são fatais.
func (uc *RevenueUseCase) logS3Identity(ctx context.Context, sources []types.TripSource) {
	if uc.objectRepo == nil {
		return
	}
	for _, src := range sources {
		if !strings.HasPrefix(strings.ToLower(src.Location), "s3://") {
			continue
		}
		accountID, err := uc.objectRepo.GetAccountID(ctx, src.Profile)
		if err != nil {
			uc.console.LogWarning("Could not resolve AWS account for S3 sources: %s", err)
			return
		}
		uc.console.LogInfo("Reading S3 datasets with AWS account %s", accountID)
		return
	}
}

// exportReport exporta o relatório em cada formato solicitado. Falhas são registradas sem abortar.
func (uc *RevenueUseCase) exportReport(report entity.RevenueReport, args *types.CLIArgs) {
	if args.ReportName == "" || len(args.ReportType) == 0 {
		return
	}

	for _, reportType := range args.ReportType {
		switch strings.ToLower(reportType) {
		case "csv":
			csvPaths, err := uc.exportRepo.ExportReportToCSV(report, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to CSV: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to CSV: %s", strings.Join(csvPaths, ", "))
			}
		case "json":
			jsonPath, err := uc.exportRepo.ExportReportToJSON(report, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to JSON: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to JSON: %s", jsonPath)
			}
		case "pdf":
			pdfPath, err := uc.exportRepo.ExportReportToPDF(report, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to PDF: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to PDF: %s", pdfPath)
			}
		default:
			uc.console.LogWarning("Unknown report type %q (expected csv, json or pdf)", reportType)
		}
	}
}

func varianceBars(summary []entity.VesselSummary) []types.VarianceBar {
	bars := make([]types.VarianceBar, 0, len(summary))
	for _, row := range summary {
		if row.Variance == nil {
			continue
		}
		bar := types.VarianceBar{Label: row.Vessel, Variance: *row.Variance}
		if row.Actual != nil {
			bar.Actual = *row.Actual
		}
		if row.Budget != nil {
			bar.Budget = *row.Budget
		}
		bars = append(bars, bar)
	}
	sort.SliceStable(bars, func(i, j int) bool {
		return bars[i].Variance > bars[j].Variance
	})
	return bars
}
