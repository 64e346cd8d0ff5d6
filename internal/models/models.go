package models

import (
	"database/sql"
	"time"
)

// NullFloat is a numeric cell that may be missing or non-numeric.
type NullFloat = sql.NullFloat64

// SalesRecord is one car sale. Records are immutable once loaded.
type SalesRecord struct {
	Date     time.Time
	Calendar CalendarKey

	CustomerName string
	Gender       string
	AnnualIncome NullFloat

	DealerName   string
	DealerRegion string

	Company      string
	Model        string
	Color        string
	BodyStyle    string
	Transmission string

	Price NullFloat
}

// RecordView is the JSON shape of a record for sample listings.
type RecordView struct {
	Date         string   `json:"date"`
	CustomerName string   `json:"customer_name"`
	Gender       string   `json:"gender"`
	AnnualIncome *float64 `json:"annual_income"`
	DealerName   string   `json:"dealer_name"`
	DealerRegion string   `json:"dealer_region"`
	Company      string   `json:"company"`
	Model        string   `json:"model"`
	Color        string   `json:"color"`
	BodyStyle    string   `json:"body_style"`
	Transmission string   `json:"transmission"`
	Price        *float64 `json:"price"`
}

func (r SalesRecord) View() RecordView {
	return RecordView{
		Date:         r.Date.Format("2006-01-02"),
		CustomerName: r.CustomerName,
		Gender:       r.Gender,
		AnnualIncome: NullableFloat(r.AnnualIncome),
		DealerName:   r.DealerName,
		DealerRegion: r.DealerRegion,
		Company:      r.Company,
		Model:        r.Model,
		Color:        r.Color,
		BodyStyle:    r.BodyStyle,
		Transmission: r.Transmission,
		Price:        NullableFloat(r.Price),
	}
}

// AllTransmissions is the "no restriction" value of the transmission selector.
const AllTransmissions = "All"

// FilterSelection is the user's current filter state. An empty list means
// the dimension is unrestricted.
type FilterSelection struct {
	Years        []int    `json:"years"`
	Regions      []string `json:"regions"`
	Colors       []string `json:"colors"`
	Brands       []string `json:"brands"`
	Models       []string `json:"models"`
	Transmission string   `json:"transmission"`
}

// TransmissionRestricted reports whether the transmission selector narrows the data.
func (s FilterSelection) TransmissionRestricted() bool {
	return s.Transmission != "" && s.Transmission != AllTransmissions
}

type FilterOptions struct {
	Years         []int    `json:"years"`
	Regions       []string `json:"regions"`
	Colors        []string `json:"colors"`
	Brands        []string `json:"brands"`
	Models        []string `json:"models"`
	Transmissions []string `json:"transmissions"`
}

// FilterWarning flags a selected value that does not occur in the data.
type FilterWarning struct {
	Dimension  string `json:"dimension"`
	Value      string `json:"value"`
	Suggestion string `json:"suggestion,omitempty"`
}

// Summary is the KPI block shown at the top of each page.
type Summary struct {
	TotalSales      int      `json:"total_sales"`
	TotalRevenue    float64  `json:"total_revenue"`
	AverageRevenue  *float64 `json:"average_revenue"`
	MedianPrice     *float64 `json:"median_price"`
	MinPrice        *float64 `json:"min_price"`
	MaxPrice        *float64 `json:"max_price"`
	UniqueCustomers int      `json:"unique_customers"`
	UniqueDealers   int      `json:"unique_dealers"`
	UniqueBrands    int      `json:"unique_brands"`
	TopBrand        *string  `json:"top_brand"`
	TopModel        *string  `json:"top_model"`
	TopColor        *string  `json:"top_color"`
	TopDealer       *string  `json:"top_dealer"`
	TopRegion       *string  `json:"top_region"`
}

// Quality reports data-cleaning diagnostics for the loaded table.
type Quality struct {
	Rows          int            `json:"rows"`
	DroppedRows   int            `json:"dropped_rows"`
	MissingValues map[string]int `json:"missing_values"`
	GenderCounts  map[string]int `json:"gender_counts"`
}

// Panel is one independently computed dashboard chart. Exactly one of
// Data and Error is set.
type Panel struct {
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

type Dashboard struct {
	Records int              `json:"records"`
	Panels  map[string]Panel `json:"panels"`
}
