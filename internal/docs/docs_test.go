package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

type parameter struct {
	Name             string `json:"name"`
	In               string `json:"in"`
	Type             string `json:"type"`
	CollectionFormat string `json:"collectionFormat"`
	Maximum          *int   `json:"maximum"`
	Items            *struct {
		Type string `json:"type"`
	} `json:"items"`
}

type operation struct {
	Parameters []parameter         `json:"parameters"`
	Responses  map[string]struct{} `json:"responses"`
}

func readDoc(t *testing.T) (string, map[string]map[string]operation) {
	t.Helper()
	doc, err := swag.ReadDoc()
	require.NoError(t, err)

	var openapi struct {
		BasePath string                          `json:"basePath"`
		Paths    map[string]map[string]operation `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(doc), &openapi))
	return openapi.BasePath, openapi.Paths
}

func paramsByName(op operation) map[string]parameter {
	out := make(map[string]parameter, len(op.Parameters))
	for _, p := range op.Parameters {
		out[p.Name] = p
	}
	return out
}

func TestRegisteredDocIsValidJSON(t *testing.T) {
	basePath, paths := readDoc(t)
	require.Equal(t, "/api", basePath)
	for _, p := range []string{"/summary", "/sales/trend", "/rankings/{dimension}", "/regions/sales", "/dashboard"} {
		require.Contains(t, paths, p)
	}
}

func TestFilterParamsOnDataEndpoints(t *testing.T) {
	_, paths := readDoc(t)
	filters := []string{"year", "region", "color", "brand", "model", "transmission"}

	for path, methods := range paths {
		op := methods["get"]
		params := paramsByName(op)
		if path == "/quality" {
			require.Empty(t, params, path)
			continue
		}
		for _, f := range filters {
			require.Contains(t, params, f, path)
			require.Equal(t, "query", params[f].In, path)
		}
		require.Contains(t, op.Responses, "400", path)
	}

	summary := paramsByName(paths["/summary"]["get"])
	require.Len(t, summary, len(filters))
	require.Equal(t, "array", summary["year"].Type)
	require.Equal(t, "integer", summary["year"].Items.Type)
	require.Equal(t, "multi", summary["brand"].CollectionFormat)
	require.Equal(t, "string", summary["transmission"].Type)
}

func TestHistogramBinsBounded(t *testing.T) {
	_, paths := readDoc(t)
	bins := paramsByName(paths["/histogram"]["get"])["bins"]
	require.Equal(t, "integer", bins.Type)
	require.NotNil(t, bins.Maximum)
	require.Equal(t, 1000, *bins.Maximum)
}
