package engine

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/labstack/gommon/log"
	"github.com/mattn/go-sqlite3"
)

var tableName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// sqliteColumns are selected in normalized column order. The date is cast
// so the driver hands back the stored text even for DATE, DATETIME and
// TIMESTAMP columns, which it would otherwise turn into time.Time.
const sqliteColumns = `CAST(date AS TEXT), customer_name, gender, annual_income, dealer_name, company, model,
	dealer_region, color, body_style, transmission, price`

// LoadSQLite reads the sales table from a SQLite database opened read-only.
// Values go through the same parsing as CSV cells.
func LoadSQLite(ctx context.Context, path, table string) (*Store, error) {
	start := time.Now()
	source := path + "#" + table

	if !tableName.MatchString(table) {
		return nil, &LoadError{Source: source, Err: fmt.Errorf("invalid table name %q", table)}
	}
	if _, err := os.Stat(path); err != nil {
		return nil, &LoadError{Source: source, Err: err}
	}
	log.Infof("Loading sales data from %s...", source)

	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?mode=ro", path))
	if err != nil {
		return nil, &LoadError{Source: source, Err: err}
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, fmt.Sprintf("SELECT %s FROM %s", sqliteColumns, table))
	if err != nil {
		return nil, &LoadError{Source: source, Err: fmt.Errorf("query: %w", err)}
	}
	defer rows.Close()

	var raw [][]string
	for rows.Next() {
		cells := make([]sql.NullString, numColumns)
		dest := make([]any, numColumns)
		for i := range cells {
			dest[i] = &cells[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, &LoadError{Source: source, Err: fmt.Errorf("scan: %w", err)}
		}
		row := make([]string, numColumns)
		for i, c := range cells {
			row[i] = c.String
		}
		row[colDate] = sqliteDate(row[colDate])
		raw = append(raw, row)
	}
	if err := rows.Err(); err != nil {
		return nil, &LoadError{Source: source, Err: err}
	}

	store, err := buildStore(source, raw, identityColumns)
	if err != nil {
		return nil, err
	}
	log.Infof("Load Complete. Rows: %d. Dropped: %d. Time: %v", store.Len(), store.Dropped, time.Since(start))
	return store, nil
}

// sqliteDate rewrites dates stored in one of the driver's timestamp
// formats into DateLayout. Anything else is returned unchanged.
func sqliteDate(s string) string {
	s = strings.TrimSpace(s)
	if _, err := parseDate(s); err == nil {
		return s
	}
	trimmed := strings.TrimSuffix(s, "Z")
	for _, layout := range sqlite3.SQLiteTimestampFormats {
		if t, err := time.ParseInLocation(layout, trimmed, time.UTC); err == nil {
			return t.Format(DateLayout)
		}
	}
	return s
}
