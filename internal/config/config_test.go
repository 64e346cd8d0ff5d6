package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CARSALES_CONFIG", "")

	c, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":8080", c.Server.Addr)
	require.Equal(t, SourceCSV, c.Data.Source)
	require.Equal(t, 2022, c.Growth.From)
	require.Equal(t, 2023, c.Growth.To)
	require.Equal(t, "month", c.Report.Granularity)
	require.Equal(t, "info", c.Log.Level)
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "carsales.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
data:
  source: sqlite
  path: /srv/sales.db
  table: sales
growth:
  from: 2021
`), 0o644))

	t.Setenv("CARSALES_CONFIG", path)
	t.Setenv("CARSALES_SERVER_ADDR", ":9090")
	t.Setenv("CARSALES_GROWTH_TO", "2022")

	c, err := Load()
	require.NoError(t, err)
	require.Equal(t, SourceSQLite, c.Data.Source)
	require.Equal(t, "/srv/sales.db", c.Data.Path)
	require.Equal(t, "sales", c.Data.Table)
	require.Equal(t, 2021, c.Growth.From)
	require.Equal(t, 2022, c.Growth.To)
	require.Equal(t, ":9090", c.Server.Addr)
}

func TestLoadRejectsBadSource(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CARSALES_CONFIG", "")
	t.Setenv("CARSALES_DATA_SOURCE", "parquet")

	_, err := Load()
	require.ErrorContains(t, err, "data.source")
}

func TestLoadMissingExplicitFile(t *testing.T) {
	t.Setenv("CARSALES_CONFIG", filepath.Join(t.TempDir(), "nope.toml"))
	_, err := Load()
	require.Error(t, err)
}
