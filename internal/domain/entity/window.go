package entity

import (
	"fmt"
	"time"
)

// DateLayout é o formato de data usado na CLI, nos arquivos de configuração e nas exportações.
const DateLayout = "2006-01-02"

// ReportingWindow é o período [Start, End) para o qual a receita é reconhecida.
type ReportingWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Validate checks that Start strictly precedes End.
// The allocation core never calls it; callers validate at the boundary.
func (w ReportingWindow) Validate() error {
	if w.Start.IsZero() || w.End.IsZero() {
		return fmt.Errorf("window dates must be set")
	}
	if !w.Start.Before(w.End) {
		return fmt.Errorf("window start %s must be before end %s",
			w.Start.Format(DateLayout), w.End.Format(DateLayout))
	}
	return nil
}

// String formata a janela como "YYYY-MM-DD to YYYY-MM-DD".
func (w ReportingWindow) String() string {
	return fmt.Sprintf("%s to %s", w.Start.Format(DateLayout), w.End.Format(DateLayout))
}
