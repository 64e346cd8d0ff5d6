package engine

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"

	"carsales/internal/models"
)

// moneySum accumulates amounts exactly; float addition drifts on long
// columns of cent values.
type moneySum struct {
	total decimal.Decimal
	n     int
}

func (s *moneySum) add(v models.NullFloat) {
	if !v.Valid {
		return
	}
	s.total = s.total.Add(decimal.NewFromFloat(v.Float64))
	s.n++
}

// value is nil when nothing numeric was added.
func (s moneySum) value() *float64 {
	if s.n == 0 {
		return nil
	}
	return models.Float(s.total.InexactFloat64())
}

func (s moneySum) float() float64 {
	return s.total.InexactFloat64()
}

// numericValues collects the present values of field, in record order.
func numericValues(records []models.SalesRecord, field models.Field) []float64 {
	values := make([]float64, 0, len(records))
	for i := range records {
		if v, ok := field.Value(&records[i]); ok {
			values = append(values, v)
		}
	}
	return values
}

// quantile interpolates linearly between the closest ranks of sorted.
func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return math.NaN()
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	frac := pos - float64(lo)
	return sorted[lo] + (sorted[hi]-sorted[lo])*frac
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	var total float64
	for _, v := range values {
		total += v
	}
	return total / float64(len(values))
}

// describe computes the box-plot summary of values. Every metric except
// count is nil for an empty input.
func describe(values []float64) map[string]*float64 {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	n := len(sorted)
	out := map[string]*float64{models.MetricCount: models.Float(float64(n))}
	if n == 0 {
		for _, m := range []string{
			models.MetricMean, models.MetricMedian, models.MetricMin, models.MetricMax,
			models.MetricQ1, models.MetricQ3, models.MetricLowerFence, models.MetricUpperFence,
		} {
			out[m] = nil
		}
		return out
	}

	q1 := quantile(sorted, 0.25)
	q3 := quantile(sorted, 0.75)
	iqr := q3 - q1

	// Fences are the most extreme observations within 1.5 IQR of the box.
	lower, upper := sorted[0], sorted[n-1]
	for _, v := range sorted {
		if v >= q1-1.5*iqr {
			lower = v
			break
		}
	}
	for i := n - 1; i >= 0; i-- {
		if sorted[i] <= q3+1.5*iqr {
			upper = sorted[i]
			break
		}
	}

	out[models.MetricMean] = models.Float(mean(sorted))
	out[models.MetricMedian] = models.Float(quantile(sorted, 0.5))
	out[models.MetricMin] = models.Float(sorted[0])
	out[models.MetricMax] = models.Float(sorted[n-1])
	out[models.MetricQ1] = models.Float(q1)
	out[models.MetricQ3] = models.Float(q3)
	out[models.MetricLowerFence] = models.Float(lower)
	out[models.MetricUpperFence] = models.Float(upper)
	return out
}
