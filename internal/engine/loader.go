package engine

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/labstack/gommon/log"

	"carsales/internal/models"
)

// DateLayout is the day/month/year format of the source's Date column.
// Zero padding is optional.
const DateLayout = "2/1/2006"

// Column positions of a normalized row.
const (
	colDate = iota
	colCustomer
	colGender
	colIncome
	colDealer
	colCompany
	colModel
	colRegion
	colColor
	colBodyStyle
	colTransmission
	colPrice
	numColumns
)

// headerNames maps normalized header text to column positions.
var headerNames = map[string]int{
	"date":         colDate,
	"customername": colCustomer,
	"gender":       colGender,
	"annualincome": colIncome,
	"dealername":   colDealer,
	"company":      colCompany,
	"model":        colModel,
	"dealerregion": colRegion,
	"color":        colColor,
	"bodystyle":    colBodyStyle,
	"transmission": colTransmission,
	"price":        colPrice,
}

// columns maps each column position to its index in the source row.
type columns [numColumns]int

// identityColumns is used for sources that already return normalized rows.
var identityColumns = func() columns {
	var c columns
	for i := range c {
		c[i] = i
	}
	return c
}()

// normalizeHeader turns "Price ($)" into "price" and "Dealer_Name" into "dealername".
func normalizeHeader(h string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(h) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func mapColumns(header []string) (columns, error) {
	var cols columns
	for i := range cols {
		cols[i] = -1
	}
	for i, h := range header {
		if c, ok := headerNames[normalizeHeader(h)]; ok && cols[c] == -1 {
			cols[c] = i
		}
	}
	var missing []string
	for name, c := range headerNames {
		if cols[c] == -1 {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return cols, fmt.Errorf("missing columns: %s", strings.Join(sortedStrings(missing), ", "))
	}
	return cols, nil
}

// Load reads the sales table from a delimited file.
func Load(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}
	defer f.Close()
	return LoadReader(path, f)
}

// LoadReader reads the sales table from r. Rows whose date does not parse
// are skipped and counted in Store.Dropped.
func LoadReader(source string, r io.Reader) (*Store, error) {
	start := time.Now()
	log.Infof("Loading sales data from %s...", source)

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, &LoadError{Source: source, Err: fmt.Errorf("read header: %w", err)}
	}
	cols, err := mapColumns(header)
	if err != nil {
		return nil, &LoadError{Source: source, Err: err}
	}

	var rows [][]string
	malformed := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				malformed++
				continue
			}
			return nil, &LoadError{Source: source, Err: err}
		}
		rows = append(rows, row)
	}

	store, err := buildStore(source, rows, cols)
	if err != nil {
		return nil, err
	}
	store.Dropped += malformed

	log.Infof("Load Complete. Rows: %d. Dropped: %d. Time: %v", store.Len(), store.Dropped, time.Since(start))
	return store, nil
}

func buildStore(source string, rows [][]string, cols columns) (*Store, error) {
	records, dropped := parseRows(rows, cols)
	if len(records) == 0 {
		return nil, &LoadError{Source: source, Err: ErrNoRows}
	}
	return &Store{Source: source, Records: records, Dropped: dropped}, nil
}

// parseRows converts raw rows in parallel chunks, one per CPU, and compacts
// the survivors in source order.
func parseRows(rows [][]string, cols columns) ([]models.SalesRecord, int) {
	if len(rows) == 0 {
		return nil, 0
	}

	numWorkers := min(runtime.NumCPU(), len(rows))
	chunkSize := (len(rows) + numWorkers - 1) / numWorkers

	parsed := make([]models.SalesRecord, len(rows))
	ok := make([]bool, len(rows))

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		start := i * chunkSize
		end := min(start+chunkSize, len(rows))
		if start >= end {
			break
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for j := start; j < end; j++ {
				parsed[j], ok[j] = parseRow(rows[j], cols)
			}
		}(start, end)
	}
	wg.Wait()

	records := parsed[:0]
	for j := range parsed {
		if ok[j] {
			records = append(records, parsed[j])
		}
	}
	return records, len(rows) - len(records)
}

func parseRow(row []string, cols columns) (models.SalesRecord, bool) {
	field := func(c int) string {
		i := cols[c]
		if i < 0 || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	date, err := parseDate(field(colDate))
	if err != nil {
		return models.SalesRecord{}, false
	}

	return models.SalesRecord{
		Date:         date,
		Calendar:     models.NewCalendarKey(date),
		CustomerName: cleanName(field(colCustomer)),
		Gender:       field(colGender),
		AnnualIncome: parseNumber(field(colIncome)),
		DealerName:   field(colDealer),
		DealerRegion: field(colRegion),
		Company:      field(colCompany),
		Model:        field(colModel),
		Color:        field(colColor),
		BodyStyle:    field(colBodyStyle),
		Transmission: field(colTransmission),
		Price:        parseNumber(field(colPrice)),
	}, true
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// cleanName strips control whitespace inside the name and trims it.
// An empty result means the customer name is missing.
func cleanName(s string) string {
	s = strings.Map(func(r rune) rune {
		switch r {
		case '\n', '\t', '\r':
			return -1
		}
		return r
	}, s)
	return strings.TrimSpace(s)
}

// parseNumber accepts plain or currency-formatted numbers ("$21,000").
// Anything else, including negative amounts, is missing.
func parseNumber(s string) models.NullFloat {
	s = strings.NewReplacer("$", "", ",", "").Replace(strings.TrimSpace(s))
	if s == "" {
		return models.NullFloat{}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return models.NullFloat{}
	}
	return models.NullFloat{Float64: v, Valid: true}
}
