package engine

import (
	"fmt"

	"github.com/labstack/gommon/log"

	"carsales/internal/models"
)

// DashboardOptions selects the variable parts of the composite dashboard.
type DashboardOptions struct {
	Granularity models.Granularity
	GrowthFrom  int
	GrowthTo    int
	TopN        int
}

type panelFunc func() (any, error)

func result(r models.AggregationResult, err error) (any, error) { return r, err }

// BuildDashboard computes every chart of the dashboard from one filtered
// subset. Panels are computed independently: an error or panic in one
// becomes that panel's Error and the others are still returned.
func BuildDashboard(records []models.SalesRecord, opts DashboardOptions) models.Dashboard {
	panels := map[string]panelFunc{
		"summary": func() (any, error) { return Summary(records), nil },
		"trend":   func() (any, error) { return result(TimeSeries(records, opts.Granularity)) },
		"growth": func() (any, error) {
			return result(Growth(records, opts.GrowthFrom, opts.GrowthTo, models.Quarter))
		},
		"monthly":           func() (any, error) { return MonthOfYear(records), nil },
		"brand_sales":       func() (any, error) { return Ranking(records, models.DimBrand, Descending, opts.TopN), nil },
		"brand_models":      func() (any, error) { return BrandModels(records, opts.TopN), nil },
		"color_sales":       func() (any, error) { return Ranking(records, models.DimColor, Descending, 0), nil },
		"dealer_sales":      func() (any, error) { return Ranking(records, models.DimDealer, Ascending, opts.TopN), nil },
		"region_sales":      func() (any, error) { return RegionSales(records), nil },
		"region_share":      func() (any, error) { return result(MarketShare(records, models.Month, models.DimRegion)) },
		"price_by_brand":    func() (any, error) { return Distribution(records, models.FieldPrice, models.DimBrand), nil },
		"gender_body_style": func() (any, error) { return CrossTab(records, models.DimGender, models.DimBodyStyle), nil },
	}
	return assemble(len(records), panels)
}

func assemble(n int, panels map[string]panelFunc) models.Dashboard {
	d := models.Dashboard{Records: n, Panels: make(map[string]models.Panel, len(panels))}
	for name, fn := range panels {
		p := isolate(fn)
		if p.Error != "" {
			log.Warnf("dashboard panel %s failed: %s", name, p.Error)
		}
		d.Panels[name] = p
	}
	return d
}

func isolate(fn panelFunc) (p models.Panel) {
	defer func() {
		if r := recover(); r != nil {
			p = models.Panel{Error: fmt.Sprintf("panic: %v", r)}
		}
	}()
	data, err := fn()
	if err != nil {
		return models.Panel{Error: err.Error()}
	}
	return models.Panel{Data: data}
}
