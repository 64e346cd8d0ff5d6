package engine

import (
	"sort"

	"carsales/internal/models"
)

// Summary computes the KPI block for records.
func Summary(records []models.SalesRecord) models.Summary {
	var revenue moneySum
	for i := range records {
		revenue.add(records[i].Price)
	}

	prices := numericValues(records, models.FieldPrice)
	sort.Float64s(prices)

	s := models.Summary{
		TotalSales:      len(records),
		TotalRevenue:    revenue.float(),
		AverageRevenue:  models.Float(mean(prices)),
		MedianPrice:     models.Float(quantile(prices, 0.5)),
		UniqueCustomers: len(UniqueValues(records, models.DimCustomer)),
		UniqueDealers:   len(UniqueValues(records, models.DimDealer)),
		UniqueBrands:    len(UniqueValues(records, models.DimBrand)),
		TopBrand:        topPtr(records, models.DimBrand),
		TopModel:        topPtr(records, models.DimModel),
		TopColor:        topPtr(records, models.DimColor),
		TopDealer:       topPtr(records, models.DimDealer),
		TopRegion:       topPtr(records, models.DimRegion),
	}
	if len(prices) > 0 {
		s.MinPrice = models.Float(prices[0])
		s.MaxPrice = models.Float(prices[len(prices)-1])
	}
	return s
}

// Quality reports the data-cleaning diagnostics of a loaded store: rows
// dropped at load, missing values per column and the gender breakdown.
func Quality(store *Store) models.Quality {
	q := models.Quality{
		Rows:          store.Len(),
		DroppedRows:   store.Dropped,
		MissingValues: make(map[string]int),
		GenderCounts:  make(map[string]int),
	}

	text := []struct {
		column string
		dim    models.Dimension
	}{
		{"customer_name", models.DimCustomer},
		{"gender", models.DimGender},
		{"dealer_name", models.DimDealer},
		{"dealer_region", models.DimRegion},
		{"company", models.DimBrand},
		{"model", models.DimModel},
		{"color", models.DimColor},
		{"body_style", models.DimBodyStyle},
		{"transmission", models.DimTransmission},
	}

	for i := range store.Records {
		r := &store.Records[i]
		for _, c := range text {
			if c.dim.Value(r) == "" {
				q.MissingValues[c.column]++
			}
		}
		if !r.AnnualIncome.Valid {
			q.MissingValues["annual_income"]++
		}
		if !r.Price.Valid {
			q.MissingValues["price"]++
		}
		if r.Gender != "" {
			q.GenderCounts[r.Gender]++
		}
	}
	return q
}
