package engine

import (
	"context"
	"fmt"
)

// Open loads the sales table from a CSV file or a SQLite database,
// depending on kind ("csv" or "sqlite").
func Open(ctx context.Context, kind, path, table string) (*Store, error) {
	switch kind {
	case "csv", "":
		return Load(path)
	case "sqlite":
		return LoadSQLite(ctx, path, table)
	}
	return nil, &LoadError{Source: path, Err: fmt.Errorf("unknown source kind %q", kind)}
}
