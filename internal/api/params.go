package api

import (
	"bytes"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"carsales/internal/engine"
	"carsales/internal/export"
	"carsales/internal/models"
)

func getPaginationParams(c echo.Context, defaultLimit int) (int, int) {
	limit, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil || limit <= 0 {
		limit = defaultLimit
	}
	offset, err := strconv.Atoi(c.QueryParam("offset"))
	if err != nil || offset < 0 {
		offset = 0
	}
	return limit, offset
}

// listParam collects a repeated and/or comma-separated query parameter.
func listParam(c echo.Context, name string) []string {
	var out []string
	for _, raw := range c.QueryParams()[name] {
		for _, v := range strings.Split(raw, ",") {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}

func parseSelection(c echo.Context) (models.FilterSelection, error) {
	sel := models.FilterSelection{
		Regions:      listParam(c, "region"),
		Colors:       listParam(c, "color"),
		Brands:       listParam(c, "brand"),
		Models:       listParam(c, "model"),
		Transmission: strings.TrimSpace(c.QueryParam("transmission")),
	}
	for _, y := range listParam(c, "year") {
		year, err := strconv.Atoi(y)
		if err != nil {
			return models.FilterSelection{}, fmt.Errorf("invalid year %q", y)
		}
		sel.Years = append(sel.Years, year)
	}
	return sel, nil
}

func intParam(c echo.Context, name string, def int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, raw)
	}
	return v, nil
}

func granularityParam(c echo.Context, def models.Granularity) (models.Granularity, error) {
	raw := c.QueryParam("granularity")
	if raw == "" {
		return def, nil
	}
	return models.ParseGranularity(raw)
}

func dimensionParam(c echo.Context, name string, def models.Dimension) (models.Dimension, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return def, nil
	}
	return models.ParseDimension(raw)
}

func fieldParam(c echo.Context) (models.Field, error) {
	raw := c.QueryParam("field")
	if raw == "" {
		return models.FieldPrice, nil
	}
	return models.ParseField(raw)
}

func badRequest(err error) error {
	return echo.NewHTTPError(http.StatusBadRequest, err.Error())
}

func wantsArrow(c echo.Context) (bool, error) {
	switch f := c.QueryParam("format"); f {
	case "", "json":
		return false, nil
	case "arrow":
		return true, nil
	default:
		return false, fmt.Errorf("unsupported format %q", f)
	}
}

// writeResult renders an aggregation as JSON, or as an Arrow IPC stream
// when format=arrow.
func writeResult(c echo.Context, res models.AggregationResult) error {
	arrow, err := wantsArrow(c)
	if err != nil {
		return badRequest(err)
	}
	if !arrow {
		return c.JSON(http.StatusOK, res)
	}
	var buf bytes.Buffer
	if err := export.WriteResult(&buf, res); err != nil {
		return err
	}
	return c.Blob(http.StatusOK, export.ContentType, buf.Bytes())
}

// page cuts rows [offset, offset+limit) out of a count-descending ranking
// and orders the page as requested.
func page(res models.AggregationResult, order engine.SortOrder, limit, offset int) models.AggregationResult {
	out := models.NewResult(res.Dimensions, res.Metrics...)
	total := res.Len()
	if offset >= total {
		return out
	}
	end := offset + min(limit, total-offset)
	out.Rows = append(out.Rows, res.Rows[offset:end]...)
	if order == engine.Ascending {
		sort.SliceStable(out.Rows, func(i, j int) bool {
			a, _ := out.Rows[i].Metric(models.MetricCount)
			b, _ := out.Rows[j].Metric(models.MetricCount)
			return a < b
		})
	}
	return out
}
