package types

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile     string
	ActualSource   string
	BudgetSource   string
	StartDate      string
	EndDate        string
	Profile        string
	VariancePolicy string
	ReportName     string
	ReportType     []string
	Dir            string
	Details        bool
	Chart          bool

	// Columns sobrescreve os nomes das colunas do CSV; vem apenas do arquivo de configuração.
	Columns ColumnMapping

	// Changed lista as flags definidas explicitamente na linha de comando.
	// Valores do arquivo de configuração não sobrescrevem essas flags.
	Changed map[string]bool
}
