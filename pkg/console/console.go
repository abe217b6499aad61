package console

import (
	"fmt"
	"math"
	"strings"

	"github.com/diillson/voyage-revenue-go/internal/shared/types"
	"github.com/pterm/pterm"
)

// Console é uma implementação do ConsoleInterface.
type Console struct{}

// NewConsole cria um novo Console.
func NewConsole() *Console {
	return &Console{}
}

// Print imprime no console.
func (c *Console) Print(a ...interface{}) {
	fmt.Print(a...)
}

// Printf imprime uma string formatada no console.
func (c *Console) Printf(format string, a ...interface{}) {
	fmt.Printf(format, a...)
}

// Println imprime no console com uma nova linha.
func (c *Console) Println(a ...interface{}) {
	fmt.Println(a...)
}

// LogInfo registra uma mensagem de informação.
func (c *Console) LogInfo(format string, a ...interface{}) {
	pterm.Info.Printfln(format, a...)
}

// LogWarning registra uma mensagem de aviso.
func (c *Console) LogWarning(format string, a ...interface{}) {
	pterm.Warning.Printfln(format, a...)
}

// LogError registra uma mensagem de erro.
func (c *Console) LogError(format string, a ...interface{}) {
	pterm.Error.Printfln(format, a...)
}

// LogSuccess registra uma mensagem de sucesso.
func (c *Console) LogSuccess(format string, a ...interface{}) {
	pterm.Success.Printfln(format, a...)
}

// statusHandle é uma implementação do StatusHandle.
type statusHandle struct {
	spinner *pterm.SpinnerPrinter
}

// Status cria um spinner de status com a mensagem especificada.
func (c *Console) Status(message string) types.StatusHandle {
	spinner, _ := pterm.DefaultSpinner.Start(message)
	return &statusHandle{spinner: spinner}
}

// Update atualiza a mensagem de status.
func (h *statusHandle) Update(message string) {
	if h.spinner != nil {
		h.spinner.UpdateText(message)
	}
}

// Stop pára o spinner de status.
func (h *statusHandle) Stop() {
	if h.spinner != nil {
		h.spinner.Stop()
	}
}

// Table é uma implementação do TableInterface.
type Table struct {
	columns []string
	rows    [][]string
}

// CreateTable cria uma nova tabela.
func (c *Console) CreateTable() types.TableInterface {
	return &Table{
		columns: []string{},
		rows:    [][]string{},
	}
}

// AddColumn adiciona uma coluna à tabela.
func (t *Table) AddColumn(name string, options ...interface{}) {
	t.columns = append(t.columns, name)
}

// AddRow adiciona uma linha à tabela.
func (t *Table) AddRow(cells ...interface{}) {
	// Valores monetários chegam como float64 e são exibidos com 2 casas
	processedCells := make([]string, len(cells))
	for i, cell := range cells {
		switch v := cell.(type) {
		case float64:
			processedCells[i] = fmt.Sprintf("%.2f", v)
		case nil:
			processedCells[i] = ""
		default:
			processedCells[i] = fmt.Sprint(v)
		}
	}
	t.rows = append(t.rows, processedCells)
}

// Render renderiza a tabela como uma string.
func (t *Table) Render() string {
	// Use o pterm para criar uma tabela visualmente agradável
	tableData := pterm.TableData{t.columns}
	for _, row := range t.rows {
		tableData = append(tableData, row)
	}

	table := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithHeaderStyle(pterm.NewStyle(pterm.FgLightCyan)).
		WithData(tableData)

	renderedTable, _ := table.Srender()
	return renderedTable
}

// DisplayVarianceBars exibe a variância (actual - budget) de cada embarcação como barras.
// Barras verdes indicam actual acima do budget; vermelhas, abaixo.
func (c *Console) DisplayVarianceBars(title string, bars []types.VarianceBar) {
	maxAbs := 0.0
	for _, b := range bars {
		if math.Abs(b.Variance) > maxAbs {
			maxAbs = math.Abs(b.Variance)
		}
	}

	if maxAbs == 0 {
		pterm.Warning.Println("All variances are 0.00 for this window")
		return
	}

	tableData := pterm.TableData{
		{"Vessel", "Variance", "", "vs Budget"},
	}

	for _, b := range bars {
		barLength := int((math.Abs(b.Variance) / maxAbs) * 40)
		bar := strings.Repeat("█", barLength)

		barColor := pterm.FgYellow.Sprint(bar)
		amount := pterm.FgYellow.Sprintf("%.2f", b.Variance)
		if b.Variance > 0 {
			barColor = pterm.FgGreen.Sprint(bar)
			amount = pterm.FgGreen.Sprintf("+%.2f", b.Variance)
		} else if b.Variance < 0 {
			barColor = pterm.FgRed.Sprint(bar)
			amount = pterm.FgRed.Sprintf("%.2f", b.Variance)
		}

		change := "N/A"
		if math.Abs(b.Budget) >= 0.01 {
			changePercent := (b.Variance / math.Abs(b.Budget)) * 100.0
			switch {
			case math.Abs(changePercent) > 999:
				if changePercent > 0 {
					change = ">+999%"
				} else {
					change = ">-999%"
				}
			case changePercent > 0:
				change = fmt.Sprintf("+%.2f%%", changePercent)
			default:
				change = fmt.Sprintf("%.2f%%", changePercent)
			}
		}

		tableData = append(tableData, []string{b.Label, amount, barColor, change})
	}

	table := pterm.DefaultTable.WithHasHeader().WithData(tableData)
	renderedTable, _ := table.Srender()

	panel := pterm.DefaultBox.WithTitle(title).WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).Sprint(renderedTable)

	fmt.Println("\n" + panel)
}
