// Package recognition implementa o reconhecimento proporcional de receita de viagens
// dentro de uma janela de reporte, a agregação por embarcação e a variância actual vs budget.
//
// Todas as funções são puras: não fazem I/O, não bloqueiam e não mutam as entradas.
package recognition

import (
	"time"

	"github.com/diillson/voyage-revenue-go/internal/domain/entity"
)

// Classify determina qual dos quatro casos de sobreposição estrita se aplica entre a viagem
// [lastDeparture, departure) e a janela [windowStart, windowEnd), e retorna a duração sobreposta.
//
// Todas as comparações são estritas: qualquer empate entre dois instantes não casa nenhum caso,
// então viagens que apenas tocam a borda da janela não são reconhecidas.
// Ordens inválidas (viagem ou janela invertida) retornam false em vez de erro.
func Classify(lastDeparture, departure, windowStart, windowEnd time.Time) (time.Duration, entity.OverlapCase, bool) {
	ld, dep := lastDeparture, departure
	ws, we := windowStart, windowEnd

	switch {
	case ws.Before(ld) && ld.Before(dep) && dep.Before(we):
		return dep.Sub(ld), entity.CaseInside, true
	case ws.Before(ld) && ld.Before(we) && we.Before(dep):
		return we.Sub(ld), entity.CaseTrailing, true
	case ld.Before(ws) && ws.Before(dep) && dep.Before(we):
		return dep.Sub(ws), entity.CaseLeading, true
	case ld.Before(ws) && ws.Before(we) && we.Before(dep):
		return we.Sub(ws), entity.CaseSpanning, true
	}

	return 0, entity.CaseNone, false
}
