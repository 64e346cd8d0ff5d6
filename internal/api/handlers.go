package api

import (
	"fmt"
	"net/http"
	"sync/atomic"

	"github.com/labstack/echo/v4"

	"carsales/internal/engine"
	"carsales/internal/models"
)

// Defaults fill in parameters a request leaves out.
type Defaults struct {
	GrowthFrom int
	GrowthTo   int
	TopN       int
}

// Handler serves the dashboard API. It starts without data; the store is
// published once the background load finishes.
type Handler struct {
	store    atomic.Pointer[engine.Store]
	failure  atomic.Pointer[loadFailure]
	defaults Defaults
}

type loadFailure struct{ err error }

func NewHandler(defaults Defaults) *Handler {
	if defaults.TopN <= 0 {
		defaults.TopN = 10
	}
	return &Handler{defaults: defaults}
}

// SetStore publishes the loaded table to every subsequent request.
func (h *Handler) SetStore(s *engine.Store) { h.store.Store(s) }

// SetLoadError records a fatal load failure. Data endpoints answer 500
// with its message from then on.
func (h *Handler) SetLoadError(err error) { h.failure.Store(&loadFailure{err: err}) }

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")
	api.GET("/options", h.GetOptions)
	api.GET("/summary", h.GetSummary)
	api.GET("/top/:dimension", h.GetTop)
	api.GET("/sales/trend", h.GetTrend)
	api.GET("/sales/growth", h.GetGrowth)
	api.GET("/sales/monthly", h.GetMonthlySales)
	api.GET("/rankings/:dimension", h.GetRanking)
	api.GET("/regions/sales", h.GetRegionSales)
	api.GET("/share", h.GetMarketShare)
	api.GET("/crosstab", h.GetCrossTab)
	api.GET("/distribution", h.GetDistribution)
	api.GET("/histogram", h.GetHistogram)
	api.GET("/brands/models", h.GetBrandModels)
	api.GET("/quality", h.GetQuality)
	api.GET("/records/sample", h.GetSampleRecords)
	api.GET("/dashboard", h.GetDashboard)
}

func (h *Handler) loaded() (*engine.Store, error) {
	if f := h.failure.Load(); f != nil {
		return nil, echo.NewHTTPError(http.StatusInternalServerError, f.err.Error())
	}
	s := h.store.Load()
	if s == nil {
		return nil, echo.NewHTTPError(http.StatusServiceUnavailable, "Data is still loading, try again shortly")
	}
	return s, nil
}

// filtered returns the records matching the request's filter parameters.
func (h *Handler) filtered(c echo.Context) ([]models.SalesRecord, error) {
	s, err := h.loaded()
	if err != nil {
		return nil, err
	}
	sel, err := parseSelection(c)
	if err != nil {
		return nil, badRequest(err)
	}
	return engine.Apply(s.Records, sel), nil
}

// --- HANDLERS ---

type optionsResponse struct {
	models.FilterOptions
	AvailableModels []string               `json:"available_models"`
	Warnings        []models.FilterWarning `json:"warnings"`
}

// GetOptions lists the filter choices
// @Summary Filter options
// @Description Distinct values for every filter, the models available for the current brand, year and region choice, and warnings for selected values absent from the data
// @Tags filters
// @Produce json
// @Param year query []int false "Years" collectionFormat(multi)
// @Param region query []string false "Dealer regions" collectionFormat(multi)
// @Param color query []string false "Colors" collectionFormat(multi)
// @Param brand query []string false "Companies" collectionFormat(multi)
// @Param model query []string false "Models" collectionFormat(multi)
// @Param transmission query string false "Transmission, All for no restriction"
// @Success 200 {object} optionsResponse
// @Failure 400 {object} map[string]interface{} "Invalid parameter"
// @Failure 503 {object} map[string]interface{} "Data is still loading"
// @Router /options [get]
func (h *Handler) GetOptions(c echo.Context) error {
	s, err := h.loaded()
	if err != nil {
		return err
	}
	sel, err := parseSelection(c)
	if err != nil {
		return badRequest(err)
	}
	return c.JSON(http.StatusOK, optionsResponse{
		FilterOptions:   engine.Options(s.Records),
		AvailableModels: engine.AvailableModels(s.Records, sel),
		Warnings:        engine.Validate(s.Records, sel),
	})
}

// GetSummary returns the KPI block
// @Summary KPI summary
// @Description Sales volume, revenue, price statistics and top values of the filtered records
// @Tags sales
// @Produce json
// @Param year query []int false "Years" collectionFormat(multi)
// @Param region query []string false "Dealer regions" collectionFormat(multi)
// @Param color query []string false "Colors" collectionFormat(multi)
// @Param brand query []string false "Companies" collectionFormat(multi)
// @Param model query []string false "Models" collectionFormat(multi)
// @Param transmission query string false "Transmission, All for no restriction"
// @Success 200 {object} models.Summary
// @Failure 400 {object} map[string]interface{} "Invalid parameter"
// @Failure 503 {object} map[string]interface{} "Data is still loading"
// @Router /summary [get]
func (h *Handler) GetSummary(c echo.Context) error {
	records, err := h.filtered(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, engine.Summary(records))
}

// GetTop returns the most frequent value of a dimension
// @Summary Most frequent value
// @Tags sales
// @Produce json
// @Param dimension path string true "Dimension" Enums(region, dealer, brand, model, color, body_style, gender, transmission)
// @Param year query []int false "Years" collectionFormat(multi)
// @Param region query []string false "Dealer regions" collectionFormat(multi)
// @Param color query []string false "Colors" collectionFormat(multi)
// @Param brand query []string false "Companies" collectionFormat(multi)
// @Param model query []string false "Models" collectionFormat(multi)
// @Param transmission query string false "Transmission, All for no restriction"
// @Success 200 {object} map[string]interface{} "value is null when no records match"
// @Failure 400 {object} map[string]interface{} "Invalid parameter"
// @Failure 503 {object} map[string]interface{} "Data is still loading"
// @Router /top/{dimension} [get]
func (h *Handler) GetTop(c echo.Context) error {
	dim, err := models.ParseDimension(c.Param("dimension"))
	if err != nil {
		return badRequest(err)
	}
	records, err := h.filtered(c)
	if err != nil {
		return err
	}
	var value *string
	if v, ok := engine.TopByFrequency(records, dim); ok {
		value = &v
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"dimension": dim,
		"value":     value,
	})
}

// GetTrend returns sales per time bucket
// @Summary Sales trend
// @Description Sales count and revenue per year, quarter or month in chronological order
// @Tags sales
// @Produce json
// @Param granularity query string false "Bucket size" Enums(year, quarter, month) default(month)
// @Param year query []int false "Years" collectionFormat(multi)
// @Param region query []string false "Dealer regions" collectionFormat(multi)
// @Param color query []string false "Colors" collectionFormat(multi)
// @Param brand query []string false "Companies" collectionFormat(multi)
// @Param model query []string false "Models" collectionFormat(multi)
// @Param transmission query string false "Transmission, All for no restriction"
// @Param format query string false "Response format" Enums(json, arrow)
// @Success 200 {object} models.AggregationResult
// @Failure 400 {object} map[string]interface{} "Invalid parameter"
// @Failure 503 {object} map[string]interface{} "Data is still loading"
// @Router /sales/trend [get]
func (h *Handler) GetTrend(c echo.Context) error {
	g, err := granularityParam(c, models.Month)
	if err != nil {
		return badRequest(err)
	}
	records, err := h.filtered(c)
	if err != nil {
		return err
	}
	res, err := engine.TimeSeries(records, g)
	if err != nil {
		return badRequest(err)
	}
	return writeResult(c, res)
}

// GetGrowth compares revenue of two years
// @Summary Year-over-year growth
// @Description Revenue of two years per quarter or month with the growth percentage; growth is null when the earlier revenue is zero or missing
// @Tags sales
// @Produce json
// @Param from query int false "Earlier year"
// @Param to query int false "Later year"
// @Param by query string false "Sub-period" Enums(quarter, month) default(quarter)
// @Param year query []int false "Years" collectionFormat(multi)
// @Param region query []string false "Dealer regions" collectionFormat(multi)
// @Param color query []string false "Colors" collectionFormat(multi)
// @Param brand query []string false "Companies" collectionFormat(multi)
// @Param model query []string false "Models" collectionFormat(multi)
// @Param transmission query string false "Transmission, All for no restriction"
// @Param format query string false "Response format" Enums(json, arrow)
// @Success 200 {object} models.AggregationResult
// @Failure 400 {object} map[string]interface{} "Invalid parameter"
// @Failure 503 {object} map[string]interface{} "Data is still loading"
// @Router /sales/growth [get]
func (h *Handler) GetGrowth(c echo.Context) error {
	from, err := intParam(c, "from", h.defaults.GrowthFrom)
	if err != nil {
		return badRequest(err)
	}
	to, err := intParam(c, "to", h.defaults.GrowthTo)
	if err != nil {
		return badRequest(err)
	}
	by := models.Quarter
	if raw := c.QueryParam("by"); raw != "" {
		if by, err = models.ParseGranularity(raw); err != nil {
			return badRequest(err)
		}
	}
	records, err := h.filtered(c)
	if err != nil {
		return err
	}
	res, err := engine.Growth(records, from, to, by)
	if err != nil {
		return badRequest(err)
	}
	return writeResult(c, res)
}

// GetMonthlySales returns revenue per calendar month
// @Summary Monthly revenue
// @Description Revenue and sales per calendar month summed across years
// @Tags sales
// @Produce json
// @Param year query []int false "Years" collectionFormat(multi)
// @Param region query []string false "Dealer regions" collectionFormat(multi)
// @Param color query []string false "Colors" collectionFormat(multi)
// @Param brand query []string false "Companies" collectionFormat(multi)
// @Param model query []string false "Models" collectionFormat(multi)
// @Param transmission query string false "Transmission, All for no restriction"
// @Param format query string false "Response format" Enums(json, arrow)
// @Success 200 {object} models.AggregationResult
// @Failure 400 {object} map[string]interface{} "Invalid parameter"
// @Failure 503 {object} map[string]interface{} "Data is still loading"
// @Router /sales/monthly [get]
func (h *Handler) GetMonthlySales(c echo.Context) error {
	records, err := h.filtered(c)
	if err != nil {
		return err
	}
	return writeResult(c, engine.MonthOfYear(records))
}

// GetRanking returns one page of a count ranking
// @Summary Ranking by sales count
// @Description Values of a dimension ranked by sales count. The page is taken from the count-descending ranking and then ordered as requested
// @Tags rankings
// @Produce json
// @Param dimension path string true "Dimension"
// @Param order query string false "Sort order of the page" Enums(asc, desc) default(desc)
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Param year query []int false "Years" collectionFormat(multi)
// @Param region query []string false "Dealer regions" collectionFormat(multi)
// @Param color query []string false "Colors" collectionFormat(multi)
// @Param brand query []string false "Companies" collectionFormat(multi)
// @Param model query []string false "Models" collectionFormat(multi)
// @Param transmission query string false "Transmission, All for no restriction"
// @Param format query string false "Response format" Enums(json, arrow)
// @Success 200 {object} map[string]interface{} "data, total, limit and offset"
// @Failure 400 {object} map[string]interface{} "Invalid parameter"
// @Failure 503 {object} map[string]interface{} "Data is still loading"
// @Router /rankings/{dimension} [get]
func (h *Handler) GetRanking(c echo.Context) error {
	dim, err := models.ParseDimension(c.Param("dimension"))
	if err != nil {
		return badRequest(err)
	}
	order, err := engine.ParseSortOrder(c.QueryParam("order"))
	if err != nil {
		return badRequest(err)
	}
	records, err := h.filtered(c)
	if err != nil {
		return err
	}

	ranking := engine.Ranking(records, dim, engine.Descending, 0)
	total := ranking.Len()
	limit, offset := getPaginationParams(c, total)
	data := page(ranking, order, limit, offset)

	arrow, err := wantsArrow(c)
	if err != nil {
		return badRequest(err)
	}
	if arrow {
		return writeResult(c, data)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"data":   data,
		"total":  total,
		"limit":  limit,
		"offset": offset,
	})
}

// GetRegionSales returns sales per dealer region with its state
// @Summary Sales by region
// @Description Dealer regions ordered by ascending sales count, each with its US state code for map charts
// @Tags rankings
// @Produce json
// @Param year query []int false "Years" collectionFormat(multi)
// @Param region query []string false "Dealer regions" collectionFormat(multi)
// @Param color query []string false "Colors" collectionFormat(multi)
// @Param brand query []string false "Companies" collectionFormat(multi)
// @Param model query []string false "Models" collectionFormat(multi)
// @Param transmission query string false "Transmission, All for no restriction"
// @Param format query string false "Response format" Enums(json, arrow)
// @Success 200 {object} models.AggregationResult
// @Failure 400 {object} map[string]interface{} "Invalid parameter"
// @Failure 503 {object} map[string]interface{} "Data is still loading"
// @Router /regions/sales [get]
func (h *Handler) GetRegionSales(c echo.Context) error {
	records, err := h.filtered(c)
	if err != nil {
		return err
	}
	return writeResult(c, engine.RegionSales(records))
}

// GetMarketShare returns category shares per time bucket
// @Summary Market share
// @Tags sales
// @Produce json
// @Param dimension query string false "Category dimension" default(region)
// @Param granularity query string false "Bucket size" Enums(year, quarter, month) default(month)
// @Param year query []int false "Years" collectionFormat(multi)
// @Param region query []string false "Dealer regions" collectionFormat(multi)
// @Param color query []string false "Colors" collectionFormat(multi)
// @Param brand query []string false "Companies" collectionFormat(multi)
// @Param model query []string false "Models" collectionFormat(multi)
// @Param transmission query string false "Transmission, All for no restriction"
// @Param format query string false "Response format" Enums(json, arrow)
// @Success 200 {object} models.AggregationResult
// @Failure 400 {object} map[string]interface{} "Invalid parameter"
// @Failure 503 {object} map[string]interface{} "Data is still loading"
// @Router /share [get]
func (h *Handler) GetMarketShare(c echo.Context) error {
	dim, err := dimensionParam(c, "dimension", models.DimRegion)
	if err != nil {
		return badRequest(err)
	}
	g, err := granularityParam(c, models.Month)
	if err != nil {
		return badRequest(err)
	}
	records, err := h.filtered(c)
	if err != nil {
		return err
	}
	res, err := engine.MarketShare(records, g, dim)
	if err != nil {
		return badRequest(err)
	}
	return writeResult(c, res)
}

// GetCrossTab returns pair counts of two dimensions
// @Summary Cross-tabulation
// @Description Sparse pair counts, or a zero-filled grid when dense=true
// @Tags sales
// @Produce json
// @Param rows query string false "Row dimension" default(gender)
// @Param cols query string false "Column dimension" default(body_style)
// @Param dense query bool false "Return a dense grid"
// @Param year query []int false "Years" collectionFormat(multi)
// @Param region query []string false "Dealer regions" collectionFormat(multi)
// @Param color query []string false "Colors" collectionFormat(multi)
// @Param brand query []string false "Companies" collectionFormat(multi)
// @Param model query []string false "Models" collectionFormat(multi)
// @Param transmission query string false "Transmission, All for no restriction"
// @Param format query string false "Response format" Enums(json, arrow)
// @Success 200 {object} models.AggregationResult
// @Failure 400 {object} map[string]interface{} "Invalid parameter"
// @Failure 503 {object} map[string]interface{} "Data is still loading"
// @Router /crosstab [get]
func (h *Handler) GetCrossTab(c echo.Context) error {
	rowDim, err := dimensionParam(c, "rows", models.DimGender)
	if err != nil {
		return badRequest(err)
	}
	colDim, err := dimensionParam(c, "cols", models.DimBodyStyle)
	if err != nil {
		return badRequest(err)
	}
	records, err := h.filtered(c)
	if err != nil {
		return err
	}
	res := engine.CrossTab(records, rowDim, colDim)
	if c.QueryParam("dense") == "true" {
		return c.JSON(http.StatusOK, engine.Grid(res))
	}
	return writeResult(c, res)
}

// GetDistribution returns box-plot statistics
// @Summary Numeric distribution
// @Description Count, mean, median, quartiles and whisker fences of price or income, optionally per dimension value
// @Tags sales
// @Produce json
// @Param field query string false "Numeric field" Enums(price, income) default(price)
// @Param by query string false "Partition dimension"
// @Param year query []int false "Years" collectionFormat(multi)
// @Param region query []string false "Dealer regions" collectionFormat(multi)
// @Param color query []string false "Colors" collectionFormat(multi)
// @Param brand query []string false "Companies" collectionFormat(multi)
// @Param model query []string false "Models" collectionFormat(multi)
// @Param transmission query string false "Transmission, All for no restriction"
// @Param format query string false "Response format" Enums(json, arrow)
// @Success 200 {object} models.AggregationResult
// @Failure 400 {object} map[string]interface{} "Invalid parameter"
// @Failure 503 {object} map[string]interface{} "Data is still loading"
// @Router /distribution [get]
func (h *Handler) GetDistribution(c echo.Context) error {
	field, err := fieldParam(c)
	if err != nil {
		return badRequest(err)
	}
	by, err := dimensionParam(c, "by", "")
	if err != nil {
		return badRequest(err)
	}
	records, err := h.filtered(c)
	if err != nil {
		return err
	}
	return writeResult(c, engine.Distribution(records, field, by))
}

// GetHistogram returns equal-width bins of a numeric field
// @Summary Histogram
// @Tags sales
// @Produce json
// @Param field query string false "Numeric field" Enums(price, income) default(price)
// @Param bins query int false "Number of bins" minimum(1) maximum(1000) default(20)
// @Param year query []int false "Years" collectionFormat(multi)
// @Param region query []string false "Dealer regions" collectionFormat(multi)
// @Param color query []string false "Colors" collectionFormat(multi)
// @Param brand query []string false "Companies" collectionFormat(multi)
// @Param model query []string false "Models" collectionFormat(multi)
// @Param transmission query string false "Transmission, All for no restriction"
// @Param format query string false "Response format" Enums(json, arrow)
// @Success 200 {object} models.AggregationResult
// @Failure 400 {object} map[string]interface{} "Invalid parameter"
// @Failure 503 {object} map[string]interface{} "Data is still loading"
// @Router /histogram [get]
func (h *Handler) GetHistogram(c echo.Context) error {
	field, err := fieldParam(c)
	if err != nil {
		return badRequest(err)
	}
	bins, err := intParam(c, "bins", engine.DefaultBins)
	if err != nil || bins <= 0 || bins > engine.MaxBins {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("bins must be an integer between 1 and %d", engine.MaxBins))
	}
	records, err := h.filtered(c)
	if err != nil {
		return err
	}
	return writeResult(c, engine.Histogram(records, field, bins))
}

// GetBrandModels returns model counts of the best-selling companies
// @Summary Models per brand
// @Tags rankings
// @Produce json
// @Param limit query int false "Number of companies" default(10)
// @Param year query []int false "Years" collectionFormat(multi)
// @Param region query []string false "Dealer regions" collectionFormat(multi)
// @Param color query []string false "Colors" collectionFormat(multi)
// @Param brand query []string false "Companies" collectionFormat(multi)
// @Param model query []string false "Models" collectionFormat(multi)
// @Param transmission query string false "Transmission, All for no restriction"
// @Param format query string false "Response format" Enums(json, arrow)
// @Success 200 {object} models.AggregationResult
// @Failure 400 {object} map[string]interface{} "Invalid parameter"
// @Failure 503 {object} map[string]interface{} "Data is still loading"
// @Router /brands/models [get]
func (h *Handler) GetBrandModels(c echo.Context) error {
	records, err := h.filtered(c)
	if err != nil {
		return err
	}
	limit, _ := getPaginationParams(c, h.defaults.TopN)
	return writeResult(c, engine.BrandModels(records, limit))
}

// GetQuality reports data-cleaning diagnostics of the whole table
// @Summary Data quality
// @Tags data
// @Produce json
// @Success 200 {object} models.Quality
// @Failure 503 {object} map[string]interface{} "Data is still loading"
// @Router /quality [get]
func (h *Handler) GetQuality(c echo.Context) error {
	s, err := h.loaded()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, engine.Quality(s))
}

// GetSampleRecords returns a page of the filtered records
// @Summary Sample records
// @Tags data
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset"
// @Param year query []int false "Years" collectionFormat(multi)
// @Param region query []string false "Dealer regions" collectionFormat(multi)
// @Param color query []string false "Colors" collectionFormat(multi)
// @Param brand query []string false "Companies" collectionFormat(multi)
// @Param model query []string false "Models" collectionFormat(multi)
// @Param transmission query string false "Transmission, All for no restriction"
// @Success 200 {object} map[string]interface{} "data, total, limit and offset"
// @Failure 400 {object} map[string]interface{} "Invalid parameter"
// @Failure 503 {object} map[string]interface{} "Data is still loading"
// @Router /records/sample [get]
func (h *Handler) GetSampleRecords(c echo.Context) error {
	records, err := h.filtered(c)
	if err != nil {
		return err
	}
	total := len(records)
	limit, offset := getPaginationParams(c, 20)

	views := []models.RecordView{}
	if offset < total {
		end := offset + min(limit, total-offset)
		for _, r := range records[offset:end] {
			views = append(views, r.View())
		}
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"data":   views,
		"total":  total,
		"limit":  limit,
		"offset": offset,
	})
}

// GetDashboard computes every chart for one filter selection
// @Summary Composite dashboard
// @Description Every panel is computed independently; a failing panel carries an error instead of data
// @Tags dashboard
// @Produce json
// @Param granularity query string false "Trend bucket size" Enums(year, quarter, month) default(month)
// @Param year query []int false "Years" collectionFormat(multi)
// @Param region query []string false "Dealer regions" collectionFormat(multi)
// @Param color query []string false "Colors" collectionFormat(multi)
// @Param brand query []string false "Companies" collectionFormat(multi)
// @Param model query []string false "Models" collectionFormat(multi)
// @Param transmission query string false "Transmission, All for no restriction"
// @Success 200 {object} models.Dashboard
// @Failure 400 {object} map[string]interface{} "Invalid parameter"
// @Failure 503 {object} map[string]interface{} "Data is still loading"
// @Router /dashboard [get]
func (h *Handler) GetDashboard(c echo.Context) error {
	g, err := granularityParam(c, models.Month)
	if err != nil {
		return badRequest(err)
	}
	records, err := h.filtered(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, engine.BuildDashboard(records, engine.DashboardOptions{
		Granularity: g,
		GrowthFrom:  h.defaults.GrowthFrom,
		GrowthTo:    h.defaults.GrowthTo,
		TopN:        h.defaults.TopN,
	}))
}
