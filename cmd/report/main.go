// Command report prints the KPI block, the sales trend and the brand
// ranking of the car sales table to the terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/labstack/gommon/log"

	"carsales/internal/config"
	"carsales/internal/engine"
	"carsales/internal/models"
)

var (
	colorText   = lipgloss.Color("#cdd6f4")
	colorMuted  = lipgloss.Color("#7f849c")
	colorAccent = lipgloss.Color("#fab387")
	colorGreen  = lipgloss.Color("#a6e3a1")

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorAccent).MarginTop(1)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(colorGreen).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Foreground(colorText).Padding(0, 1)
	numberStyle = cellStyle.Align(lipgloss.Right)
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	granularity := flag.String("granularity", cfg.Report.Granularity, "trend bucket: year, quarter or month")
	years := flag.String("year", "", "comma-separated years to include")
	brands := flag.String("brand", "", "comma-separated companies to include")
	regions := flag.String("region", "", "comma-separated dealer regions to include")
	top := flag.Int("top", 10, "number of brands in the ranking")
	flag.Parse()

	log.SetLevel(log.WARN)
	if err := run(os.Stdout, cfg, *granularity, *years, *brands, *regions, *top); err != nil {
		fmt.Fprintln(os.Stderr, "report:", err)
		os.Exit(1)
	}
}

func run(w io.Writer, cfg config.Config, granularity, years, brands, regions string, top int) error {
	g, err := models.ParseGranularity(granularity)
	if err != nil {
		return err
	}
	sel := models.FilterSelection{Brands: split(brands), Regions: split(regions)}
	for _, y := range split(years) {
		year, err := strconv.Atoi(y)
		if err != nil {
			return fmt.Errorf("invalid year %q", y)
		}
		sel.Years = append(sel.Years, year)
	}

	store, err := engine.Open(context.Background(), cfg.Data.Source, cfg.Data.Path, cfg.Data.Table)
	if err != nil {
		return err
	}
	for _, warn := range engine.Validate(store.Records, sel) {
		msg := fmt.Sprintf("%s %q is not in the data", warn.Dimension, warn.Value)
		if warn.Suggestion != "" {
			msg += fmt.Sprintf(", did you mean %q?", warn.Suggestion)
		}
		fmt.Fprintln(w, lipgloss.NewStyle().Foreground(colorMuted).Render(msg))
	}

	records := engine.Apply(store.Records, sel)
	trend, err := engine.TimeSeries(records, g)
	if err != nil {
		return err
	}
	render(w, engine.Summary(records), trend, engine.Ranking(records, models.DimBrand, engine.Descending, top))
	return nil
}

func split(s string) []string {
	var out []string
	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func render(w io.Writer, s models.Summary, trend, ranking models.AggregationResult) {
	fmt.Fprintln(w, titleStyle.Render("Summary"))
	fmt.Fprintln(w, newTable([]string{"Metric", "Value"}, [][]string{
		{"Total sales", strconv.Itoa(s.TotalSales)},
		{"Total revenue", money(&s.TotalRevenue)},
		{"Average price", money(s.AverageRevenue)},
		{"Median price", money(s.MedianPrice)},
		{"Unique customers", strconv.Itoa(s.UniqueCustomers)},
		{"Unique dealers", strconv.Itoa(s.UniqueDealers)},
		{"Top brand", text(s.TopBrand)},
		{"Top model", text(s.TopModel)},
		{"Top region", text(s.TopRegion)},
	}))

	fmt.Fprintln(w, titleStyle.Render("Sales trend"))
	fmt.Fprintln(w, resultTable(trend))

	fmt.Fprintln(w, titleStyle.Render("Top brands"))
	fmt.Fprintln(w, resultTable(ranking))
}

// resultTable lays out an aggregation with one column per key and metric.
func resultTable(res models.AggregationResult) string {
	headers := append(append([]string{}, res.Dimensions...), res.Metrics...)
	rows := make([][]string, 0, res.Len())
	for _, r := range res.Rows {
		row := append([]string{}, r.Key...)
		for _, m := range res.Metrics {
			if m == models.MetricCount {
				row = append(row, number(r.Metrics[m]))
			} else {
				row = append(row, money(r.Metrics[m]))
			}
		}
		rows = append(rows, row)
	}
	return newTable(headers, rows)
}

func newTable(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorMuted)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col > 0:
				return numberStyle
			default:
				return cellStyle
			}
		}).
		String()
}

func money(v *float64) string {
	if v == nil {
		return "-"
	}
	return "$" + strconv.FormatFloat(*v, 'f', 2, 64)
}

func number(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', 0, 64)
}

func text(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}
