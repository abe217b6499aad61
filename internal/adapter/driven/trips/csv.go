package trips

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/diillson/voyage-revenue-go/internal/domain/entity"
	"github.com/diillson/voyage-revenue-go/internal/shared/types"
)

// ParseError descreve um valor inválido numa linha do CSV.
type ParseError struct {
	Source string
	Line   int
	Column string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: column %q: invalid value %q: %v", e.Source, e.Line, e.Column, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02 15:04",
	"01/02/2006",
	"01/02/2006 15:04",
	"2006/01/02",
}

// columnIndex guarda a posição de cada campo no cabeçalho; -1 quando ausente.
type columnIndex struct {
	vessel, tripNo, lastDeparture, departure, totalTime, totalRevenue, details, load int
}

// ReadTrips lê viagens de um CSV com cabeçalho. source é usado apenas nas mensagens de erro.
func ReadTrips(r io.Reader, source string, columns types.ColumnMapping) ([]entity.TripRecord, error) {
	columns = columns.WithDefaults()

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %s", types.ErrEmptyDataset, source)
	}
	if err != nil {
		return nil, fmt.Errorf("error reading CSV header from %s: %w", source, err)
	}

	idx, err := indexHeader(header, columns)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}

	var records []entity.TripRecord
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV from %s: %w", source, err)
		}
		if isBlank(row) {
			continue
		}
		line, _ := reader.FieldPos(0)

		rec, err := parseRow(row, idx, columns)
		if err != nil {
			var pe *ParseError
			if errors.As(err, &pe) {
				pe.Source = source
				pe.Line = line
			}
			return nil, err
		}
		records = append(records, rec)
	}

	return records, nil
}

func indexHeader(header []string, columns types.ColumnMapping) (columnIndex, error) {
	positions := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimPrefix(name, "\ufeff")
		positions[normalizeHeader(name)] = i
	}

	find := func(name string) int {
		if i, ok := positions[normalizeHeader(name)]; ok {
			return i
		}
		return -1
	}

	idx := columnIndex{
		vessel:        find(columns.Vessel),
		tripNo:        find(columns.TripNo),
		lastDeparture: find(columns.LastDeparture),
		departure:     find(columns.Departure),
		totalTime:     find(columns.TotalTripTime),
		totalRevenue:  find(columns.TotalRevenue),
		details:       find(columns.TripDetails),
		load:          find(columns.TotalLoadQuantity),
	}

	required := []struct {
		name string
		pos  int
	}{
		{columns.Vessel, idx.vessel},
		{columns.LastDeparture, idx.lastDeparture},
		{columns.Departure, idx.departure},
		{columns.TotalTripTime, idx.totalTime},
		{columns.TotalRevenue, idx.totalRevenue},
	}
	var missing []string
	for _, col := range required {
		if col.pos < 0 {
			missing = append(missing, col.name)
		}
	}
	if len(missing) > 0 {
		return idx, fmt.Errorf("%w: %s", types.ErrMissingColumn, strings.Join(missing, ", "))
	}

	return idx, nil
}

func parseRow(row []string, idx columnIndex, columns types.ColumnMapping) (entity.TripRecord, error) {
	var rec entity.TripRecord
	var err error

	rec.Vessel = cell(row, idx.vessel)
	if rec.Vessel == "" {
		return rec, &ParseError{Column: columns.Vessel, Err: errors.New("vessel is required")}
	}
	rec.TripNo = cell(row, idx.tripNo)
	rec.TripDetails = cell(row, idx.details)
	rec.TotalLoadQuantity = cell(row, idx.load)

	if rec.LastDeparture, err = parseDate(cell(row, idx.lastDeparture)); err != nil {
		return rec, &ParseError{Column: columns.LastDeparture, Value: cell(row, idx.lastDeparture), Err: err}
	}
	if rec.Departure, err = parseDate(cell(row, idx.departure)); err != nil {
		return rec, &ParseError{Column: columns.Departure, Value: cell(row, idx.departure), Err: err}
	}
	if rec.TotalTripTime, err = parseNumber(cell(row, idx.totalTime)); err != nil {
		return rec, &ParseError{Column: columns.TotalTripTime, Value: cell(row, idx.totalTime), Err: err}
	}
	if rec.TotalTripTime < 0 {
		return rec, &ParseError{Column: columns.TotalTripTime, Value: cell(row, idx.totalTime), Err: errors.New("trip time must not be negative")}
	}
	if rec.TotalRevenue, err = parseNumber(cell(row, idx.totalRevenue)); err != nil {
		return rec, &ParseError{Column: columns.TotalRevenue, Value: cell(row, idx.totalRevenue), Err: err}
	}

	return rec, nil
}

func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, errors.New("date is required")
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.New("unrecognized date format")
}

func parseNumber(value string) (float64, error) {
	cleaned := strings.ReplaceAll(value, ",", "")
	cleaned = strings.TrimSpace(cleaned)
	negative := strings.HasPrefix(cleaned, "-")
	cleaned = strings.TrimPrefix(cleaned, "-")
	cleaned = strings.TrimPrefix(cleaned, "$")
	if cleaned == "" {
		return 0, errors.New("number is required")
	}
	// Apenas um sinal, antes do "$".
	if strings.HasPrefix(cleaned, "-") || strings.HasPrefix(cleaned, "+") {
		return 0, errors.New("malformed sign")
	}

	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, errors.New("not a number")
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errors.New("number must be finite")
	}
	if negative {
		f = -f
	}
	return f, nil
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func isBlank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func normalizeHeader(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}
