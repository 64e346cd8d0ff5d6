package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"carsales/internal/models"
)

func TestBuildDashboard(t *testing.T) {
	records := []models.SalesRecord{
		sale(t, "1/3/2022", 20000, region("A")),
		sale(t, "1/3/2023", 30000, region("A")),
	}
	d := BuildDashboard(records, DashboardOptions{Granularity: models.Month, GrowthFrom: 2022, GrowthTo: 2023, TopN: 10})
	require.Equal(t, 2, d.Records)
	for name, p := range d.Panels {
		require.Empty(t, p.Error, name)
		require.NotNil(t, p.Data, name)
	}

	growth := d.Panels["growth"].Data.(models.AggregationResult)
	require.InDelta(t, 50.0, metric(t, growth.Rows[0], models.MetricGrowth), 1e-9)
}

func TestBuildDashboardIsolatesFailures(t *testing.T) {
	records := []models.SalesRecord{sale(t, "1/3/2022", 1)}
	d := BuildDashboard(records, DashboardOptions{Granularity: "fortnight"})

	require.Contains(t, d.Panels["trend"].Error, "unknown granularity")
	require.Nil(t, d.Panels["trend"].Data)
	require.Empty(t, d.Panels["summary"].Error)
	require.Equal(t, 1, d.Panels["summary"].Data.(models.Summary).TotalSales)
}

func TestAssembleRecoversPanics(t *testing.T) {
	d := assemble(0, map[string]panelFunc{
		"boom":  func() (any, error) { panic("index out of range") },
		"fails": func() (any, error) { return nil, errors.New("bad input") },
		"ok":    func() (any, error) { return 42, nil },
	})
	require.Equal(t, "panic: index out of range", d.Panels["boom"].Error)
	require.Equal(t, "bad input", d.Panels["fails"].Error)
	require.Equal(t, 42, d.Panels["ok"].Data)
}

func TestBuildDashboardEmptySubset(t *testing.T) {
	d := BuildDashboard(nil, DashboardOptions{Granularity: models.Quarter, GrowthFrom: 2022, GrowthTo: 2023})
	for name, p := range d.Panels {
		require.Empty(t, p.Error, name)
	}
}
