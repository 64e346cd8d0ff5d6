package engine

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"

	"carsales/internal/models"
)

var ErrUnknownOrder = errors.New("unknown sort order")

type SortOrder string

const (
	Ascending  SortOrder = "asc"
	Descending SortOrder = "desc"
)

func ParseSortOrder(s string) (SortOrder, error) {
	switch s {
	case "", "desc", "descending":
		return Descending, nil
	case "asc", "ascending":
		return Ascending, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownOrder, s)
}

// Histogram bin counts: DefaultBins is used when none is given and
// MaxBins is the largest accepted.
const (
	DefaultBins = 20
	MaxBins     = 1000
)

// tally is the running count and revenue of one group.
type tally struct {
	key     string
	count   int
	revenue moneySum
}

// tallies groups records by key and remembers first-seen order.
type tallies struct {
	index map[string]int
	items []*tally
}

func newTallies() *tallies {
	return &tallies{index: make(map[string]int)}
}

func (t *tallies) add(key string, r *models.SalesRecord) {
	i, ok := t.index[key]
	if !ok {
		i = len(t.items)
		t.index[key] = i
		t.items = append(t.items, &tally{key: key})
	}
	t.items[i].count++
	t.items[i].revenue.add(r.Price)
}

// countBy groups records by dim. Empty values are missing and not grouped.
func countBy(records []models.SalesRecord, dim models.Dimension) *tallies {
	t := newTallies()
	for i := range records {
		if key := dim.Value(&records[i]); key != "" {
			t.add(key, &records[i])
		}
	}
	return t
}

func count(n int) *float64 { return models.Float(float64(n)) }

// TopByFrequency returns the most frequent value of dim. Ties go to the
// value encountered first. ok is false when records is empty.
func TopByFrequency(records []models.SalesRecord, dim models.Dimension) (string, bool) {
	var best *tally
	for _, g := range countBy(records, dim).items {
		if best == nil || g.count > best.count {
			best = g
		}
	}
	if best == nil {
		return "", false
	}
	return best.key, true
}

func topPtr(records []models.SalesRecord, dim models.Dimension) *string {
	if v, ok := TopByFrequency(records, dim); ok {
		return models.String(v)
	}
	return nil
}

func validGranularity(g models.Granularity) error {
	_, err := models.ParseGranularity(string(g))
	return err
}

type periodBucket struct {
	period  models.Period
	count   int
	revenue moneySum
	cats    *tallies
}

// bucketize groups records into periods of granularity g, chronologically.
func bucketize(records []models.SalesRecord, g models.Granularity, dim models.Dimension) []*periodBucket {
	byPeriod := make(map[models.Period]*periodBucket)
	for i := range records {
		p := records[i].Calendar.Bucket(g)
		b := byPeriod[p]
		if b == nil {
			b = &periodBucket{period: p, cats: newTallies()}
			byPeriod[p] = b
		}
		b.count++
		b.revenue.add(records[i].Price)
		if dim != "" {
			if key := dim.Value(&records[i]); key != "" {
				b.cats.add(key, &records[i])
			}
		}
	}

	buckets := make([]*periodBucket, 0, len(byPeriod))
	for _, b := range byPeriod {
		buckets = append(buckets, b)
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].period.Ordinal() < buckets[j].period.Ordinal() })
	return buckets
}

// TimeSeries returns sales volume and revenue per time bucket, in
// chronological order.
func TimeSeries(records []models.SalesRecord, g models.Granularity) (models.AggregationResult, error) {
	if err := validGranularity(g); err != nil {
		return models.AggregationResult{}, err
	}
	res := models.NewResult([]string{string(g)}, models.MetricCount, models.MetricRevenue)
	for _, b := range bucketize(records, g, "") {
		res.Add([]string{b.period.Label()}, map[string]*float64{
			models.MetricCount:   count(b.count),
			models.MetricRevenue: b.revenue.value(),
		})
	}
	return res, nil
}

// Growth compares revenue of two years per quarter or month. Growth is
// (later - earlier) / earlier * 100 and is null when the earlier value is
// zero or either side has no sales in that sub-period.
func Growth(records []models.SalesRecord, earlier, later int, g models.Granularity) (models.AggregationResult, error) {
	if g != models.Quarter && g != models.Month {
		return models.AggregationResult{}, fmt.Errorf("%w: growth is compared per quarter or month, got %q", models.ErrUnknownGranularity, g)
	}

	type yearSub struct{ year, sub int }
	sums := make(map[yearSub]*moneySum)
	present := make(map[int]bool)
	for i := range records {
		k := records[i].Calendar
		if k.Year != earlier && k.Year != later {
			continue
		}
		key := yearSub{k.Year, k.SubPeriod(g)}
		s := sums[key]
		if s == nil {
			s = &moneySum{}
			sums[key] = s
		}
		s.add(records[i].Price)
		present[key.sub] = true
	}

	subs := make([]int, 0, len(present))
	for sub := range present {
		subs = append(subs, sub)
	}
	sort.Ints(subs)

	res := models.NewResult([]string{string(g)}, models.MetricEarlier, models.MetricLater, models.MetricGrowth)
	for _, sub := range subs {
		var e, l *float64
		if s := sums[yearSub{earlier, sub}]; s != nil {
			e = s.value()
		}
		if s := sums[yearSub{later, sub}]; s != nil {
			l = s.value()
		}
		res.Add([]string{models.SubPeriodLabel(g, sub)}, map[string]*float64{
			models.MetricEarlier: e,
			models.MetricLater:   l,
			models.MetricGrowth:  growthRate(e, l),
		})
	}
	return res, nil
}

func growthRate(earlier, later *float64) *float64 {
	if earlier == nil || later == nil || *earlier == 0 {
		return nil
	}
	return models.Float((*later - *earlier) / *earlier * 100)
}

// Ranking counts sales per value of dim, keeps the limit largest (0 keeps
// all) and orders them by count. Ties keep first-seen order.
func Ranking(records []models.SalesRecord, dim models.Dimension, order SortOrder, limit int) models.AggregationResult {
	items := append([]*tally(nil), countBy(records, dim).items...)
	sort.SliceStable(items, func(i, j int) bool { return items[i].count > items[j].count })
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	if order == Ascending {
		sort.SliceStable(items, func(i, j int) bool { return items[i].count < items[j].count })
	}

	res := models.NewResult([]string{string(dim)}, models.MetricCount, models.MetricRevenue)
	for _, g := range items {
		res.Add([]string{g.key}, map[string]*float64{
			models.MetricCount:   count(g.count),
			models.MetricRevenue: g.revenue.value(),
		})
	}
	return res
}

// RegionSales ranks dealer regions by sales count, ascending, with the
// US state of each region for map charts. Unknown regions get an empty state.
func RegionSales(records []models.SalesRecord) models.AggregationResult {
	ranking := Ranking(records, models.DimRegion, Ascending, 0)
	res := models.NewResult([]string{string(models.DimRegion), "state"}, ranking.Metrics...)
	for _, r := range ranking.Rows {
		res.Add([]string{r.Key[0], models.StateOf(r.Key[0])}, r.Metrics)
	}
	return res
}

// MarketShare returns each category's percentage of its time bucket's
// sales. Shares within a bucket sum to 100.
func MarketShare(records []models.SalesRecord, g models.Granularity, dim models.Dimension) (models.AggregationResult, error) {
	if err := validGranularity(g); err != nil {
		return models.AggregationResult{}, err
	}
	res := models.NewResult([]string{string(g), string(dim)}, models.MetricCount, models.MetricShare)
	for _, b := range bucketize(records, g, dim) {
		total := 0
		for _, c := range b.cats.items {
			total += c.count
		}
		cats := append([]*tally(nil), b.cats.items...)
		sort.Slice(cats, func(i, j int) bool { return cats[i].key < cats[j].key })
		for _, c := range cats {
			res.Add([]string{b.period.Label(), c.key}, map[string]*float64{
				models.MetricCount: count(c.count),
				models.MetricShare: models.Float(float64(c.count) / float64(total) * 100),
			})
		}
	}
	return res, nil
}

// CrossTab counts sales per (rowDim, colDim) pair. The result is sparse:
// pairs that never occur are absent. Use Grid for a dense table.
func CrossTab(records []models.SalesRecord, rowDim, colDim models.Dimension) models.AggregationResult {
	pairs := make(map[[2]string]int)
	for i := range records {
		a, b := rowDim.Value(&records[i]), colDim.Value(&records[i])
		if a == "" || b == "" {
			continue
		}
		pairs[[2]string{a, b}]++
	}

	keys := make([][2]string, 0, len(pairs))
	for k := range pairs {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i][0] != keys[j][0] {
			return keys[i][0] < keys[j][0]
		}
		return keys[i][1] < keys[j][1]
	})

	res := models.NewResult([]string{string(rowDim), string(colDim)}, models.MetricCount)
	for _, k := range keys {
		res.Add([]string{k[0], k[1]}, map[string]*float64{models.MetricCount: count(pairs[k])})
	}
	return res
}

// Grid turns a two-dimensional count result into a dense table with
// zero-filled cells.
func Grid(res models.AggregationResult) models.Grid {
	g := models.Grid{RowLabels: []string{}, ColLabels: []string{}, Counts: [][]int{}}
	if len(res.Dimensions) == 2 {
		g.RowDimension, g.ColDimension = res.Dimensions[0], res.Dimensions[1]
	}

	rowIdx := make(map[string]int)
	colIdx := make(map[string]int)
	for _, r := range res.Rows {
		if len(r.Key) != 2 {
			continue
		}
		rowIdx[r.Key[0]] = 0
		colIdx[r.Key[1]] = 0
	}
	for k := range rowIdx {
		g.RowLabels = append(g.RowLabels, k)
	}
	for k := range colIdx {
		g.ColLabels = append(g.ColLabels, k)
	}
	sort.Strings(g.RowLabels)
	sort.Strings(g.ColLabels)
	for i, k := range g.RowLabels {
		rowIdx[k] = i
	}
	for i, k := range g.ColLabels {
		colIdx[k] = i
	}

	g.Counts = make([][]int, len(g.RowLabels))
	for i := range g.Counts {
		g.Counts[i] = make([]int, len(g.ColLabels))
	}
	for _, r := range res.Rows {
		if len(r.Key) != 2 {
			continue
		}
		if v, ok := r.Metric(models.MetricCount); ok {
			g.Counts[rowIdx[r.Key[0]]][colIdx[r.Key[1]]] = int(v)
		}
	}
	return g
}

// distributionMetrics is the column order of Distribution results.
var distributionMetrics = []string{
	models.MetricCount, models.MetricMean, models.MetricMedian, models.MetricMin, models.MetricMax,
	models.MetricQ1, models.MetricQ3, models.MetricLowerFence, models.MetricUpperFence,
}

// Distribution summarises field per value of by, or over all records when
// by is empty. Groups without numeric values get null metrics.
func Distribution(records []models.SalesRecord, field models.Field, by models.Dimension) models.AggregationResult {
	dimName := "all"
	if by != "" {
		dimName = string(by)
	}
	res := models.NewResult([]string{dimName}, distributionMetrics...)
	if len(records) == 0 {
		return res
	}

	groups := make(map[string][]float64)
	for i := range records {
		key := "All"
		if by != "" {
			key = by.Value(&records[i])
			if key == "" {
				continue
			}
		}
		vals, seen := groups[key]
		if !seen {
			vals = []float64{}
		}
		if v, ok := field.Value(&records[i]); ok {
			vals = append(vals, v)
		}
		groups[key] = vals
	}

	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		res.Add([]string{k}, describe(groups[k]))
	}
	return res
}

// MonthOfYear totals revenue per calendar month across all years.
func MonthOfYear(records []models.SalesRecord) models.AggregationResult {
	var months [13]struct {
		count   int
		revenue moneySum
	}
	for i := range records {
		m := records[i].Calendar.Month
		months[m].count++
		months[m].revenue.add(records[i].Price)
	}

	res := models.NewResult([]string{string(models.DimMonth)}, models.MetricRevenue, models.MetricCount)
	for m := 1; m <= 12; m++ {
		if months[m].count == 0 {
			continue
		}
		res.Add([]string{strconv.Itoa(m)}, map[string]*float64{
			models.MetricRevenue: months[m].revenue.value(),
			models.MetricCount:   count(months[m].count),
		})
	}
	return res
}

// BrandModels breaks the limit best-selling companies (0 keeps all) down
// by model, ordered by company total and then model count, both descending.
func BrandModels(records []models.SalesRecord, limit int) models.AggregationResult {
	companies := append([]*tally(nil), countBy(records, models.DimBrand).items...)
	sort.SliceStable(companies, func(i, j int) bool { return companies[i].count > companies[j].count })
	if limit > 0 && len(companies) > limit {
		companies = companies[:limit]
	}
	totals := make(map[string]int, len(companies))
	for _, c := range companies {
		totals[c.key] = c.count
	}

	type pair struct {
		company, model string
		count          int
	}
	index := make(map[[2]string]int)
	var pairs []*pair
	for i := range records {
		r := &records[i]
		if _, ok := totals[r.Company]; !ok || r.Model == "" {
			continue
		}
		k := [2]string{r.Company, r.Model}
		j, ok := index[k]
		if !ok {
			j = len(pairs)
			index[k] = j
			pairs = append(pairs, &pair{company: r.Company, model: r.Model})
		}
		pairs[j].count++
	}
	sort.SliceStable(pairs, func(i, j int) bool {
		ti, tj := totals[pairs[i].company], totals[pairs[j].company]
		if ti != tj {
			return ti > tj
		}
		return pairs[i].count > pairs[j].count
	})

	res := models.NewResult([]string{string(models.DimBrand), string(models.DimModel)}, models.MetricCount, models.MetricBrandTotal)
	for _, p := range pairs {
		res.Add([]string{p.company, p.model}, map[string]*float64{
			models.MetricCount:      count(p.count),
			models.MetricBrandTotal: count(totals[p.company]),
		})
	}
	return res
}

// Histogram counts field values in bins equal-width bins spanning the
// observed range. bins is clamped to [1, MaxBins].
func Histogram(records []models.SalesRecord, field models.Field, bins int) models.AggregationResult {
	res := models.NewResult([]string{"bin"}, models.MetricLower, models.MetricUpper, models.MetricCount)
	values := numericValues(records, field)
	if len(values) == 0 {
		return res
	}
	if bins <= 0 {
		bins = DefaultBins
	}
	bins = min(bins, MaxBins)

	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if lo == hi {
		bins = 1
	}
	width := (hi - lo) / float64(bins)

	counts := make([]int, bins)
	for _, v := range values {
		idx := bins - 1
		if width > 0 {
			idx = min(int((v-lo)/width), bins-1)
		}
		counts[idx]++
	}

	for i, c := range counts {
		lower := lo + float64(i)*width
		upper := lo + float64(i+1)*width
		if i == bins-1 {
			upper = hi
		}
		res.Add([]string{formatBound(lower) + "-" + formatBound(upper)}, map[string]*float64{
			models.MetricLower: models.Float(lower),
			models.MetricUpper: models.Float(upper),
			models.MetricCount: count(c),
		})
	}
	return res
}

func formatBound(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}
