package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var ErrUnknownGranularity = errors.New("unknown granularity")

// Granularity is the size of a time bucket.
type Granularity string

const (
	Year    Granularity = "year"
	Quarter Granularity = "quarter"
	Month   Granularity = "month"
)

func ParseGranularity(s string) (Granularity, error) {
	switch g := Granularity(strings.ToLower(strings.TrimSpace(s))); g {
	case Year, Quarter, Month:
		return g, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownGranularity, s)
}

// CalendarKey holds the calendar attributes derived from a sale date.
// It is computed once at load time.
type CalendarKey struct {
	Year    int `json:"year"`
	Quarter int `json:"quarter"`
	Month   int `json:"month"`
}

func NewCalendarKey(t time.Time) CalendarKey {
	m := int(t.Month())
	return CalendarKey{Year: t.Year(), Quarter: (m-1)/3 + 1, Month: m}
}

// Bucket returns the period of granularity g containing k.
func (k CalendarKey) Bucket(g Granularity) Period {
	switch g {
	case Quarter:
		return Period{Granularity: Quarter, Year: k.Year, Index: k.Quarter}
	case Month:
		return Period{Granularity: Month, Year: k.Year, Index: k.Month}
	default:
		return Period{Granularity: Year, Year: k.Year}
	}
}

// SubPeriod returns the quarter or month index of k, ignoring the year.
func (k CalendarKey) SubPeriod(g Granularity) int {
	if g == Month {
		return k.Month
	}
	return k.Quarter
}

// Period is a time bucket. Index is the quarter (1-4) or month (1-12) and
// zero for whole years.
type Period struct {
	Granularity Granularity
	Year        int
	Index       int
}

// Label renders the period for display: "2023", "2023 Q1" or "Mar 2023".
// Labels do not sort chronologically; use Ordinal for ordering.
func (p Period) Label() string {
	switch p.Granularity {
	case Quarter:
		return fmt.Sprintf("%d Q%d", p.Year, p.Index)
	case Month:
		return fmt.Sprintf("%s %d", time.Month(p.Index).String()[:3], p.Year)
	default:
		return strconv.Itoa(p.Year)
	}
}

// Ordinal orders periods of the same granularity chronologically.
func (p Period) Ordinal() int {
	return p.Year*100 + p.Index
}

// SubPeriodLabel names a quarter or month without its year: "Q1" or "Mar".
func SubPeriodLabel(g Granularity, index int) string {
	if g == Month {
		return time.Month(index).String()[:3]
	}
	return fmt.Sprintf("Q%d", index)
}
