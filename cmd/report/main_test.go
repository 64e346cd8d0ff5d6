package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"carsales/internal/config"
	"carsales/internal/models"
)

const reportCSV = `Date,Customer Name,Gender,Annual Income,Dealer_Name,Company,Model,Transmission,Color,Price ($),Body Style,Dealer_Region
1/3/2022,Avery,Male,10000,Saab-Belle Dodge,Ford,Focus,Auto,Black,20000,SUV,Austin
1/3/2023,Blake,Female,20000,Rabun Used Car Sales,Ford,Mustang,Manual,Red,30000,Sedan,Austin
5/6/2023,Casey,Male,30000,Saab-Belle Dodge,Dodge,Viper,Auto,Black,50000,SUV,Pasco
`

func csvConfig(t *testing.T) config.Config {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sales.csv")
	require.NoError(t, os.WriteFile(path, []byte(reportCSV), 0o644))
	return config.Config{Data: config.DataConfig{Source: config.SourceCSV, Path: path}}
}

func TestRun(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(&out, csvConfig(t), "quarter", "2023", "", "Austn", 5))

	s := out.String()
	require.Contains(t, s, `region "Austn" is not in the data, did you mean "Austin"?`)
	require.Contains(t, s, "Summary")
	require.Contains(t, s, "Top brands")
}

func TestRunErrors(t *testing.T) {
	cfg := csvConfig(t)
	require.Error(t, run(&bytes.Buffer{}, cfg, "fortnight", "", "", "", 5))
	require.Error(t, run(&bytes.Buffer{}, cfg, "month", "twenty", "", "", 5))

	cfg.Data.Path = filepath.Join(t.TempDir(), "missing.csv")
	require.Error(t, run(&bytes.Buffer{}, cfg, "month", "", "", "", 5))
}

func TestResultTable(t *testing.T) {
	res := models.NewResult([]string{"quarter"}, models.MetricCount, models.MetricRevenue)
	res.Add([]string{"2023 Q1"}, map[string]*float64{
		models.MetricCount:   models.Float(2),
		models.MetricRevenue: nil,
	})
	out := resultTable(res)
	require.Contains(t, out, "2023 Q1")
	require.Contains(t, out, "revenue")
	require.Contains(t, out, "-")
	require.Equal(t, "$1234.50", money(models.Float(1234.5)))
}
