package recognition

import (
	"fmt"
	"sort"
	"strings"

	"github.com/diillson/voyage-revenue-go/internal/domain/entity"
	"github.com/diillson/voyage-revenue-go/internal/shared/types"
)

// VariancePolicy define como a variância é calculada quando falta um dos lados.
type VariancePolicy string

const (
	// PolicyStrict só calcula a variância quando actual e budget estão presentes.
	PolicyStrict VariancePolicy = "strict"
	// PolicyZeroFill trata o lado ausente como 0 no cálculo da variância,
	// mas mantém o próprio lado ausente como nil no resumo.
	PolicyZeroFill VariancePolicy = "zero-fill"
)

// ParseVariancePolicy converte o nome recebido da CLI ou do arquivo de configuração.
// Uma string vazia resulta em PolicyStrict.
func ParseVariancePolicy(name string) (VariancePolicy, error) {
	switch VariancePolicy(strings.ToLower(strings.TrimSpace(name))) {
	case "", PolicyStrict:
		return PolicyStrict, nil
	case PolicyZeroFill:
		return PolicyZeroFill, nil
	default:
		return "", fmt.Errorf("%w: %q (expected %q or %q)", types.ErrUnknownVariancePolicy, name, PolicyStrict, PolicyZeroFill)
	}
}

// MergeVariance faz a união completa (outer join) das chaves de actual e budget,
// ordenada pela chave da embarcação.
func MergeVariance(actual, budget entity.VesselTotals, policy VariancePolicy) []entity.VesselSummary {
	keys := make(map[string]struct{}, len(actual)+len(budget))
	for k := range actual {
		keys[k] = struct{}{}
	}
	for k := range budget {
		keys[k] = struct{}{}
	}

	vessels := make([]string, 0, len(keys))
	for k := range keys {
		vessels = append(vessels, k)
	}
	sort.Strings(vessels)

	summary := make([]entity.VesselSummary, 0, len(vessels))
	for _, vessel := range vessels {
		row := entity.VesselSummary{Vessel: vessel}
		if v, ok := actual[vessel]; ok {
			row.Actual = floatPtr(v)
		}
		if v, ok := budget[vessel]; ok {
			row.Budget = floatPtr(v)
		}
		row.Variance = variance(row.Actual, row.Budget, policy)
		summary = append(summary, row)
	}

	return summary
}

func variance(actual, budget *float64, policy VariancePolicy) *float64 {
	if actual != nil && budget != nil {
		return floatPtr(*actual - *budget)
	}
	if policy != PolicyZeroFill {
		return nil
	}
	var a, b float64
	if actual != nil {
		a = *actual
	}
	if budget != nil {
		b = *budget
	}
	return floatPtr(a - b)
}

// SumSummary calcula a linha de totais. Actual e Budget somam os lados presentes;
// Variance soma somente as variâncias das linhas, então segue a mesma política do
// MergeVariance: em PolicyStrict embarcações de um lado só ficam fora do total.
func SumSummary(summary []entity.VesselSummary) entity.SummaryTotals {
	var totals entity.SummaryTotals
	for _, row := range summary {
		if row.Actual != nil {
			totals.Actual += *row.Actual
		}
		if row.Budget != nil {
			totals.Budget += *row.Budget
		}
		if row.Variance != nil {
			if totals.Variance == nil {
				totals.Variance = floatPtr(0)
			}
			*totals.Variance += *row.Variance
		}
	}
	return totals
}

func floatPtr(v float64) *float64 {
	return &v
}
