package export

import (
	"bytes"
	"testing"

	"github.com/apache/arrow/go/v18/arrow/array"
	"github.com/apache/arrow/go/v18/arrow/ipc"
	"github.com/apache/arrow/go/v18/arrow/memory"
	"github.com/stretchr/testify/require"

	"carsales/internal/models"
)

func TestWriteResult(t *testing.T) {
	res := models.NewResult([]string{"quarter"}, models.MetricEarlier, models.MetricLater, models.MetricGrowth)
	res.Add([]string{"Q1"}, map[string]*float64{
		models.MetricEarlier: models.Float(100),
		models.MetricLater:   models.Float(150),
		models.MetricGrowth:  models.Float(50),
	})
	res.Add([]string{"Q2"}, map[string]*float64{
		models.MetricEarlier: nil,
		models.MetricLater:   models.Float(80),
		models.MetricGrowth:  nil,
	})

	var buf bytes.Buffer
	require.NoError(t, WriteResult(&buf, res))

	rdr, err := ipc.NewReader(&buf, ipc.WithAllocator(memory.NewGoAllocator()))
	require.NoError(t, err)
	defer rdr.Release()

	schema := rdr.Schema()
	require.Equal(t, 4, schema.NumFields())
	require.Equal(t, "quarter", schema.Field(0).Name)
	require.Equal(t, "growth", schema.Field(3).Name)

	require.True(t, rdr.Next())
	rec := rdr.Record()
	require.EqualValues(t, 2, rec.NumRows())

	keys := rec.Column(0).(*array.String)
	require.Equal(t, "Q1", keys.Value(0))
	require.Equal(t, "Q2", keys.Value(1))

	growth := rec.Column(3).(*array.Float64)
	require.Equal(t, 50.0, growth.Value(0))
	require.True(t, growth.IsNull(1))

	later := rec.Column(2).(*array.Float64)
	require.Equal(t, 80.0, later.Value(1))
	require.False(t, rdr.Next())
}

func TestWriteResultEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteResult(&buf, models.NewResult([]string{"brand"}, models.MetricCount)))

	rdr, err := ipc.NewReader(&buf)
	require.NoError(t, err)
	defer rdr.Release()
	require.Equal(t, "brand", rdr.Schema().Field(0).Name)
	for rdr.Next() {
		require.EqualValues(t, 0, rdr.Record().NumRows())
	}
}

func TestWriteResultKeyMismatch(t *testing.T) {
	res := models.NewResult([]string{"gender", "body_style"}, models.MetricCount)
	res.Add([]string{"Male"}, map[string]*float64{models.MetricCount: models.Float(1)})
	require.Error(t, WriteResult(&bytes.Buffer{}, res))
}
