package types

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	Actual         string        `json:"actual" yaml:"actual" toml:"actual"`
	Budget         string        `json:"budget" yaml:"budget" toml:"budget"`
	Start          string        `json:"start" yaml:"start" toml:"start"`
	End            string        `json:"end" yaml:"end" toml:"end"`
	Profile        string        `json:"profile" yaml:"profile" toml:"profile"`
	VariancePolicy string        `json:"variance_policy" yaml:"variance_policy" toml:"variance_policy"`
	ReportName     string        `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType     []string      `json:"report_type" yaml:"report_type" toml:"report_type"`
	Dir            string        `json:"dir" yaml:"dir" toml:"dir"`
	Columns        ColumnMapping `json:"columns" yaml:"columns" toml:"columns"`
}

// ColumnMapping define o cabeçalho do CSV usado para cada campo da viagem.
// Campos vazios usam o cabeçalho padrão.
type ColumnMapping struct {
	Vessel            string `json:"vessel" yaml:"vessel" toml:"vessel"`
	TripNo            string `json:"trip_no" yaml:"trip_no" toml:"trip_no"`
	LastDeparture     string `json:"last_departure" yaml:"last_departure" toml:"last_departure"`
	Departure         string `json:"departure" yaml:"departure" toml:"departure"`
	TotalTripTime     string `json:"total_trip_time" yaml:"total_trip_time" toml:"total_trip_time"`
	TotalRevenue      string `json:"total_revenue" yaml:"total_revenue" toml:"total_revenue"`
	TripDetails       string `json:"trip_details" yaml:"trip_details" toml:"trip_details"`
	TotalLoadQuantity string `json:"total_load_quantity" yaml:"total_load_quantity" toml:"total_load_quantity"`
}

// DefaultColumnMapping retorna os cabeçalhos usados pelos arquivos Actual.csv e Budget.csv.
func DefaultColumnMapping() ColumnMapping {
	return ColumnMapping{
		Vessel:            "Vessel",
		TripNo:            "Trip No",
		LastDeparture:     "Last Discharge Port Depart",
		Departure:         "Discharge Port Depart",
		TotalTripTime:     "Total Time",
		TotalRevenue:      "Total Revenue",
		TripDetails:       "Trip Details",
		TotalLoadQuantity: "Total Load Quantity",
	}
}

// WithDefaults preenche os campos vazios com os cabeçalhos padrão.
func (m ColumnMapping) WithDefaults() ColumnMapping {
	d := DefaultColumnMapping()
	pick := func(v, def string) string {
		if v == "" {
			return def
		}
		return v
	}
	return ColumnMapping{
		Vessel:            pick(m.Vessel, d.Vessel),
		TripNo:            pick(m.TripNo, d.TripNo),
		LastDeparture:     pick(m.LastDeparture, d.LastDeparture),
		Departure:         pick(m.Departure, d.Departure),
		TotalTripTime:     pick(m.TotalTripTime, d.TotalTripTime),
		TotalRevenue:      pick(m.TotalRevenue, d.TotalRevenue),
		TripDetails:       pick(m.TripDetails, d.TripDetails),
		TotalLoadQuantity: pick(m.TotalLoadQuantity, d.TotalLoadQuantity),
	}
}

// TripSource identifica um dataset de viagens e como lê-lo.
type TripSource struct {
	Name     string
	Location string
	Profile  string
	Columns  ColumnMapping
}
