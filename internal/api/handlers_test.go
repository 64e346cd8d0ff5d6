package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/apache/arrow/go/v18/arrow/ipc"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"carsales/internal/engine"
	"carsales/internal/export"
	"carsales/internal/models"
)

const salesCSV = `Date,Customer Name,Gender,Annual Income,Dealer_Name,Company,Model,Transmission,Color,Price ($),Body Style,Dealer_Region
1/3/2022,Avery,Male,10000,Saab-Belle Dodge,Ford,Focus,Auto,Black,20000,SUV,Austin
1/3/2023,Blake,Female,20000,Rabun Used Car Sales,Ford,Mustang,Manual,Red,30000,Sedan,Austin
5/6/2023,Casey,Male,30000,Saab-Belle Dodge,Dodge,Viper,Auto,Black,50000,SUV,Pasco
`

func newServer(t *testing.T, loaded bool) (*echo.Echo, *Handler) {
	t.Helper()
	e := echo.New()
	h := NewHandler(Defaults{GrowthFrom: 2022, GrowthTo: 2023})
	h.RegisterRoutes(e)
	if loaded {
		store, err := engine.LoadReader("test", strings.NewReader(salesCSV))
		require.NoError(t, err)
		h.SetStore(store)
	}
	return e, h
}

func get(t *testing.T, e *echo.Echo, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func keysOf(res models.AggregationResult) []string {
	out := make([]string, 0, len(res.Rows))
	for _, r := range res.Rows {
		out = append(out, strings.Join(r.Key, "/"))
	}
	return out
}

func TestLoadingAndFailedStates(t *testing.T) {
	e, h := newServer(t, false)

	rec := get(t, e, "/api/summary")
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	h.SetLoadError(&engine.LoadError{Source: "car sales.csv", Err: errors.New("missing columns: price")})
	rec = get(t, e, "/api/quality")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Contains(t, rec.Body.String(), "missing columns: price")
}

func TestSummaryWithFilters(t *testing.T) {
	e, _ := newServer(t, true)

	rec := get(t, e, "/api/summary")
	require.Equal(t, http.StatusOK, rec.Code)
	s := decode[models.Summary](t, rec)
	require.Equal(t, 3, s.TotalSales)
	require.Equal(t, 100000.0, s.TotalRevenue)
	require.Equal(t, "Ford", *s.TopBrand)

	rec = get(t, e, "/api/summary?year=2023&brand=Ford")
	s = decode[models.Summary](t, rec)
	require.Equal(t, 1, s.TotalSales)

	// Repeated and comma-separated values combine.
	rec = get(t, e, "/api/summary?region=Austin,Pasco&color=Black&color=Red")
	require.Equal(t, 3, decode[models.Summary](t, rec).TotalSales)

	rec = get(t, e, "/api/summary?year=1999")
	s = decode[models.Summary](t, rec)
	require.Zero(t, s.TotalSales)
	require.Nil(t, s.TopBrand)
	require.Nil(t, s.MedianPrice)

	rec = get(t, e, "/api/summary?year=last")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTop(t *testing.T) {
	e, _ := newServer(t, true)

	rec := get(t, e, "/api/top/color")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"dimension":"color","value":"Black"}`, rec.Body.String())

	rec = get(t, e, "/api/top/color?year=2021")
	require.JSONEq(t, `{"dimension":"color","value":null}`, rec.Body.String())

	rec = get(t, e, "/api/top/engine")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, decode[map[string]string](t, rec)["message"], "unknown dimension")
}

func TestTrendAndGrowth(t *testing.T) {
	e, _ := newServer(t, true)

	rec := get(t, e, "/api/sales/trend?granularity=quarter")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, []string{"2022 Q1", "2023 Q1", "2023 Q2"}, keysOf(decode[models.AggregationResult](t, rec)))

	rec = get(t, e, "/api/sales/trend?granularity=week")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = get(t, e, "/api/sales/growth")
	require.Equal(t, http.StatusOK, rec.Code)
	growth := decode[models.AggregationResult](t, rec)
	require.Equal(t, []string{"Q1", "Q2"}, keysOf(growth))
	g, ok := growth.Rows[0].Metric(models.MetricGrowth)
	require.True(t, ok)
	require.InDelta(t, 50.0, g, 1e-9)
	_, ok = growth.Rows[1].Metric(models.MetricGrowth)
	require.False(t, ok)

	rec = get(t, e, "/api/sales/growth?by=year")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRankingPagination(t *testing.T) {
	e, _ := newServer(t, true)

	type envelope struct {
		Data   models.AggregationResult `json:"data"`
		Total  int                      `json:"total"`
		Limit  int                      `json:"limit"`
		Offset int                      `json:"offset"`
	}

	rec := get(t, e, "/api/rankings/brand?order=asc")
	require.Equal(t, http.StatusOK, rec.Code)
	env := decode[envelope](t, rec)
	require.Equal(t, 2, env.Total)
	require.Equal(t, []string{"Dodge", "Ford"}, keysOf(env.Data))

	rec = get(t, e, "/api/rankings/brand?limit=1")
	env = decode[envelope](t, rec)
	require.Equal(t, []string{"Ford"}, keysOf(env.Data))

	rec = get(t, e, "/api/rankings/brand?offset=5")
	env = decode[envelope](t, rec)
	require.Empty(t, env.Data.Rows)

	rec = get(t, e, "/api/rankings/brand?order=sideways")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = get(t, e, "/api/rankings/brand?limit=9223372036854775807&offset=1")
	require.Equal(t, http.StatusOK, rec.Code)
	env = decode[envelope](t, rec)
	require.Equal(t, 2, env.Total)
	require.Equal(t, []string{"Dodge"}, keysOf(env.Data))
}

func TestRankingFormat(t *testing.T) {
	e, _ := newServer(t, true)

	rec := get(t, e, "/api/rankings/brand?format=bogus")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, decode[map[string]string](t, rec)["message"], "unsupported format")

	rec = get(t, e, "/api/rankings/brand?format=arrow")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, export.ContentType, rec.Header().Get(echo.HeaderContentType))
}

func TestRegionSales(t *testing.T) {
	e, _ := newServer(t, true)

	rec := get(t, e, "/api/regions/sales")
	require.Equal(t, http.StatusOK, rec.Code)
	res := decode[models.AggregationResult](t, rec)
	require.Equal(t, []string{"region", "state"}, res.Dimensions)
	require.Equal(t, []string{"Pasco/WA", "Austin/TX"}, keysOf(res))

	rec = get(t, e, "/api/regions/sales?brand=Dodge")
	require.Equal(t, []string{"Pasco/WA"}, keysOf(decode[models.AggregationResult](t, rec)))
}

func TestCrossTabDense(t *testing.T) {
	e, _ := newServer(t, true)

	rec := get(t, e, "/api/crosstab?dense=true")
	require.Equal(t, http.StatusOK, rec.Code)
	grid := decode[models.Grid](t, rec)
	require.Equal(t, []string{"Female", "Male"}, grid.RowLabels)
	require.Equal(t, []string{"SUV", "Sedan"}, grid.ColLabels)
	require.Equal(t, [][]int{{0, 1}, {2, 0}}, grid.Counts)
}

func TestArrowFormat(t *testing.T) {
	e, _ := newServer(t, true)

	rec := get(t, e, "/api/sales/trend?granularity=year&format=arrow")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, export.ContentType, rec.Header().Get(echo.HeaderContentType))

	rdr, err := ipc.NewReader(rec.Body)
	require.NoError(t, err)
	defer rdr.Release()
	require.True(t, rdr.Next())
	require.EqualValues(t, 2, rdr.Record().NumRows())

	rec = get(t, e, "/api/sales/trend?format=xml")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOptionsWarnings(t *testing.T) {
	e, _ := newServer(t, true)

	rec := get(t, e, "/api/options?brand=Ford&region=Austn")
	require.Equal(t, http.StatusOK, rec.Code)
	opts := decode[optionsResponse](t, rec)
	require.Equal(t, []int{2022, 2023}, opts.Years)
	require.Equal(t, []string{"All", "Auto", "Manual"}, opts.Transmissions)
	require.Empty(t, opts.AvailableModels)
	require.Equal(t, []models.FilterWarning{{Dimension: "region", Value: "Austn", Suggestion: "Austin"}}, opts.Warnings)

	rec = get(t, e, "/api/options?brand=Ford")
	opts = decode[optionsResponse](t, rec)
	require.Equal(t, []string{"Focus", "Mustang"}, opts.AvailableModels)
	require.Empty(t, opts.Warnings)
}

func TestHistogramAndDistribution(t *testing.T) {
	e, _ := newServer(t, true)

	for _, bins := range []string{"0", "-3", "1001", "4611686018427387904", "many"} {
		rec := get(t, e, "/api/histogram?bins="+bins)
		require.Equal(t, http.StatusBadRequest, rec.Code, bins)
	}

	rec := get(t, e, "/api/histogram?bins=1000")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = get(t, e, "/api/histogram?field=price&bins=3")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, decode[models.AggregationResult](t, rec).Rows, 3)

	rec = get(t, e, "/api/distribution?field=income&by=gender")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, []string{"Female", "Male"}, keysOf(decode[models.AggregationResult](t, rec)))

	rec = get(t, e, "/api/distribution?field=mileage")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSampleRecordsAndQuality(t *testing.T) {
	e, _ := newServer(t, true)

	rec := get(t, e, "/api/records/sample?limit=2&offset=1")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[struct {
		Data  []models.RecordView `json:"data"`
		Total int                 `json:"total"`
	}](t, rec)
	require.Equal(t, 3, body.Total)
	require.Len(t, body.Data, 2)
	require.Equal(t, "2023-03-01", body.Data[0].Date)

	rec = get(t, e, "/api/records/sample?limit=9223372036854775807&offset=1")
	require.Equal(t, http.StatusOK, rec.Code)
	body.Data = nil
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, 3, body.Total)
	require.Len(t, body.Data, 2)

	rec = get(t, e, "/api/quality")
	require.Equal(t, http.StatusOK, rec.Code)
	q := decode[models.Quality](t, rec)
	require.Equal(t, 3, q.Rows)
	require.Equal(t, map[string]int{"Male": 2, "Female": 1}, q.GenderCounts)
}

func TestDashboard(t *testing.T) {
	e, _ := newServer(t, true)

	rec := get(t, e, "/api/dashboard?granularity=quarter&brand=Ford")
	require.Equal(t, http.StatusOK, rec.Code)
	d := decode[struct {
		Records int                        `json:"records"`
		Panels  map[string]json.RawMessage `json:"panels"`
	}](t, rec)
	require.Equal(t, 2, d.Records)
	require.Contains(t, d.Panels, "summary")
	require.Contains(t, d.Panels, "gender_body_style")
	require.NotContains(t, string(d.Panels["trend"]), `"error"`)

	rec = get(t, e, "/api/dashboard?granularity=decade")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
