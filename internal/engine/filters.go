package engine

import (
	"sort"
	"strconv"

	"github.com/agnivade/levenshtein"

	"carsales/internal/models"
)

// Apply returns the records matching sel, in their original order.
// Dimensions are AND-combined; values within a dimension are OR-combined.
// An empty list leaves its dimension unrestricted.
func Apply(records []models.SalesRecord, sel models.FilterSelection) []models.SalesRecord {
	m := newMatcher(sel)
	out := make([]models.SalesRecord, 0, len(records))
	for i := range records {
		if m.match(&records[i]) {
			out = append(out, records[i])
		}
	}
	return out
}

type matcher struct {
	years        map[int]bool
	regions      map[string]bool
	colors       map[string]bool
	brands       map[string]bool
	models       map[string]bool
	transmission string
}

func newMatcher(sel models.FilterSelection) matcher {
	m := matcher{
		regions: toSet(sel.Regions),
		colors:  toSet(sel.Colors),
		brands:  toSet(sel.Brands),
		models:  toSet(sel.Models),
	}
	if len(sel.Years) > 0 {
		m.years = make(map[int]bool, len(sel.Years))
		for _, y := range sel.Years {
			m.years[y] = true
		}
	}
	if sel.TransmissionRestricted() {
		m.transmission = sel.Transmission
	}
	return m
}

func (m matcher) match(r *models.SalesRecord) bool {
	if m.years != nil && !m.years[r.Calendar.Year] {
		return false
	}
	if m.regions != nil && !m.regions[r.DealerRegion] {
		return false
	}
	if m.colors != nil && !m.colors[r.Color] {
		return false
	}
	if m.brands != nil && !m.brands[r.Company] {
		return false
	}
	if m.transmission != "" && r.Transmission != m.transmission {
		return false
	}
	if m.models != nil && !m.models[r.Model] {
		return false
	}
	return true
}

// toSet returns nil for an empty list so the dimension stays unrestricted.
func toSet(items []string) map[string]bool {
	if len(items) == 0 {
		return nil
	}
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[item] = true
	}
	return set
}

// AvailableModels lists the models selectable under sel: those sold within
// the selected years and regions by the selected brands. Colour,
// transmission and the model list itself do not narrow the choices.
func AvailableModels(records []models.SalesRecord, sel models.FilterSelection) []string {
	scope := Apply(records, models.FilterSelection{
		Years:   sel.Years,
		Regions: sel.Regions,
		Brands:  sel.Brands,
	})
	return UniqueValues(scope, models.DimModel)
}

// Options returns the distinct values offered by the filter controls.
func Options(records []models.SalesRecord) models.FilterOptions {
	seenYears := make(map[int]bool)
	years := []int{}
	for i := range records {
		y := records[i].Calendar.Year
		if !seenYears[y] {
			seenYears[y] = true
			years = append(years, y)
		}
	}
	sort.Ints(years)

	return models.FilterOptions{
		Years:         years,
		Regions:       UniqueValues(records, models.DimRegion),
		Colors:        UniqueValues(records, models.DimColor),
		Brands:        UniqueValues(records, models.DimBrand),
		Models:        UniqueValues(records, models.DimModel),
		Transmissions: append([]string{models.AllTransmissions}, UniqueValues(records, models.DimTransmission)...),
	}
}

// UniqueValues returns the sorted distinct non-empty values of dim.
func UniqueValues(records []models.SalesRecord, dim models.Dimension) []string {
	seen := make(map[string]bool)
	result := []string{}
	for i := range records {
		v := dim.Value(&records[i])
		if v != "" && !seen[v] {
			seen[v] = true
			result = append(result, v)
		}
	}
	sort.Strings(result)
	return result
}

// maxSuggestDistance is the largest normalized edit distance still offered
// as a "did you mean" suggestion.
const maxSuggestDistance = 0.4

// Validate reports selected values that never occur in records, each with
// the closest existing value when one is near enough.
func Validate(records []models.SalesRecord, sel models.FilterSelection) []models.FilterWarning {
	opts := Options(records)
	warnings := []models.FilterWarning{}

	years := make([]string, len(opts.Years))
	for i, y := range opts.Years {
		years[i] = strconv.Itoa(y)
	}
	selectedYears := make([]string, len(sel.Years))
	for i, y := range sel.Years {
		selectedYears[i] = strconv.Itoa(y)
	}

	check := func(dim models.Dimension, selected, known []string) {
		set := toSet(known)
		for _, v := range selected {
			if set[v] {
				continue
			}
			warnings = append(warnings, models.FilterWarning{
				Dimension:  string(dim),
				Value:      v,
				Suggestion: suggest(v, known),
			})
		}
	}
	check(models.DimYear, selectedYears, years)
	check(models.DimRegion, sel.Regions, opts.Regions)
	check(models.DimColor, sel.Colors, opts.Colors)
	check(models.DimBrand, sel.Brands, opts.Brands)
	check(models.DimModel, sel.Models, opts.Models)
	if sel.TransmissionRestricted() {
		check(models.DimTransmission, []string{sel.Transmission}, opts.Transmissions)
	}
	return warnings
}

func suggest(value string, candidates []string) string {
	best := ""
	bestScore := maxSuggestDistance
	for _, c := range candidates {
		maxLen := max(len(value), len(c))
		if maxLen == 0 {
			continue
		}
		score := float64(levenshtein.ComputeDistance(value, c)) / float64(maxLen)
		if score < bestScore {
			best, bestScore = c, score
		}
	}
	return best
}

func sortedStrings(s []string) []string {
	sort.Strings(s)
	return s
}
