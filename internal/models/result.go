package models

import (
	"database/sql"
	"math"
)

// Metric names shared by the aggregations.
const (
	MetricCount      = "count"
	MetricRevenue    = "revenue"
	MetricShare      = "share"
	MetricEarlier    = "earlier"
	MetricLater      = "later"
	MetricGrowth     = "growth"
	MetricMean       = "mean"
	MetricMedian     = "median"
	MetricMin        = "min"
	MetricMax        = "max"
	MetricQ1         = "q1"
	MetricQ3         = "q3"
	MetricLowerFence = "lower_fence"
	MetricUpperFence = "upper_fence"
	MetricLower      = "lower"
	MetricUpper      = "upper"
	MetricBrandTotal = "brand_total"
)

// Row is one group of an AggregationResult. A nil metric is undefined.
type Row struct {
	Key     []string            `json:"key"`
	Metrics map[string]*float64 `json:"metrics"`
}

// Metric returns the named metric and whether it is defined.
func (r Row) Metric(name string) (float64, bool) {
	v := r.Metrics[name]
	if v == nil {
		return 0, false
	}
	return *v, true
}

// AggregationResult is an ordered sequence of grouped metrics, ready for
// a chart or table. Dimensions names the key columns and Metrics the
// metric columns in display order.
type AggregationResult struct {
	Dimensions []string `json:"dimensions"`
	Metrics    []string `json:"metrics"`
	Rows       []Row    `json:"rows"`
}

func NewResult(dimensions []string, metrics ...string) AggregationResult {
	return AggregationResult{Dimensions: dimensions, Metrics: metrics, Rows: []Row{}}
}

func (r *AggregationResult) Add(key []string, metrics map[string]*float64) {
	r.Rows = append(r.Rows, Row{Key: key, Metrics: metrics})
}

func (r AggregationResult) Len() int { return len(r.Rows) }

// Grid is a dense two-axis count table.
type Grid struct {
	RowDimension string   `json:"row_dimension"`
	ColDimension string   `json:"col_dimension"`
	RowLabels    []string `json:"row_labels"`
	ColLabels    []string `json:"col_labels"`
	Counts       [][]int  `json:"counts"`
}

// Float boxes v, mapping NaN and infinities to nil.
func Float(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

func NullableFloat(n sql.NullFloat64) *float64 {
	if !n.Valid {
		return nil
	}
	return Float(n.Float64)
}

func String(s string) *string { return &s }
