// Package export encodes aggregation results for clients that want columnar
// data instead of JSON.
package export

import (
	"fmt"
	"io"

	"github.com/apache/arrow/go/v18/arrow"
	"github.com/apache/arrow/go/v18/arrow/array"
	"github.com/apache/arrow/go/v18/arrow/ipc"
	"github.com/apache/arrow/go/v18/arrow/memory"

	"carsales/internal/models"
)

// ContentType is the media type of an Arrow IPC stream.
const ContentType = "application/vnd.apache.arrow.stream"

// Schema describes res as one string column per key dimension followed by
// one nullable float64 column per metric.
func Schema(res models.AggregationResult) *arrow.Schema {
	fields := make([]arrow.Field, 0, len(res.Dimensions)+len(res.Metrics))
	for _, d := range res.Dimensions {
		fields = append(fields, arrow.Field{Name: d, Type: arrow.BinaryTypes.String})
	}
	for _, m := range res.Metrics {
		fields = append(fields, arrow.Field{Name: m, Type: arrow.PrimitiveTypes.Float64, Nullable: true})
	}
	return arrow.NewSchema(fields, nil)
}

// WriteResult writes res to w as a single-batch Arrow IPC stream.
// Undefined metrics become Arrow nulls.
func WriteResult(w io.Writer, res models.AggregationResult) error {
	mem := memory.NewGoAllocator()
	schema := Schema(res)

	b := array.NewRecordBuilder(mem, schema)
	defer b.Release()

	nd := len(res.Dimensions)
	for _, row := range res.Rows {
		if len(row.Key) != nd {
			return fmt.Errorf("row key %v does not match dimensions %v", row.Key, res.Dimensions)
		}
		for i, k := range row.Key {
			b.Field(i).(*array.StringBuilder).Append(k)
		}
		for i, m := range res.Metrics {
			fb := b.Field(nd + i).(*array.Float64Builder)
			if v, ok := row.Metric(m); ok {
				fb.Append(v)
			} else {
				fb.AppendNull()
			}
		}
	}

	rec := b.NewRecord()
	defer rec.Release()

	iw := ipc.NewWriter(w, ipc.WithSchema(schema), ipc.WithAllocator(mem))
	if err := iw.Write(rec); err != nil {
		_ = iw.Close()
		return fmt.Errorf("write arrow batch: %w", err)
	}
	return iw.Close()
}
