package models

import (
	"errors"
	"sort"
	"testing"
	"time"
)

func TestNewCalendarKey(t *testing.T) {
	cases := []struct {
		date string
		want CalendarKey
	}{
		{"2022-01-01", CalendarKey{2022, 1, 1}},
		{"2022-03-31", CalendarKey{2022, 1, 3}},
		{"2023-04-01", CalendarKey{2023, 2, 4}},
		{"2023-09-15", CalendarKey{2023, 3, 9}},
		{"2023-12-31", CalendarKey{2023, 4, 12}},
	}
	for _, tc := range cases {
		d, _ := time.Parse("2006-01-02", tc.date)
		if got := NewCalendarKey(d); got != tc.want {
			t.Errorf("%s: got %+v, want %+v", tc.date, got, tc.want)
		}
	}
}

func TestPeriodLabels(t *testing.T) {
	k := CalendarKey{Year: 2023, Quarter: 1, Month: 3}
	if l := k.Bucket(Year).Label(); l != "2023" {
		t.Errorf("year label %q", l)
	}
	if l := k.Bucket(Quarter).Label(); l != "2023 Q1" {
		t.Errorf("quarter label %q", l)
	}
	if l := k.Bucket(Month).Label(); l != "Mar 2023" {
		t.Errorf("month label %q", l)
	}
}

func TestPeriodOrdinalIsChronological(t *testing.T) {
	periods := []Period{
		{Month, 2023, 3},
		{Month, 2022, 12},
		{Month, 2023, 2},
		{Month, 2023, 10},
	}
	sort.Slice(periods, func(i, j int) bool { return periods[i].Ordinal() < periods[j].Ordinal() })

	want := []string{"Dec 2022", "Feb 2023", "Mar 2023", "Oct 2023"}
	for i, p := range periods {
		if p.Label() != want[i] {
			t.Errorf("position %d: got %s, want %s", i, p.Label(), want[i])
		}
	}
}

func TestParseGranularity(t *testing.T) {
	g, err := ParseGranularity(" Month ")
	if err != nil || g != Month {
		t.Fatalf("got %q, %v", g, err)
	}
	if _, err := ParseGranularity("week"); !errors.Is(err, ErrUnknownGranularity) {
		t.Fatalf("expected ErrUnknownGranularity, got %v", err)
	}
}

func TestParseDimension(t *testing.T) {
	for in, want := range map[string]Dimension{
		"brand":         DimBrand,
		"Company":       DimBrand,
		"dealer_region": DimRegion,
		"body_style":    DimBodyStyle,
	} {
		got, err := ParseDimension(in)
		if err != nil || got != want {
			t.Errorf("%s: got %q, %v", in, got, err)
		}
	}
	if _, err := ParseDimension("engine"); !errors.Is(err, ErrUnknownDimension) {
		t.Fatalf("expected ErrUnknownDimension, got %v", err)
	}
}

func TestFloatDropsNonFinite(t *testing.T) {
	if Float(1.5) == nil || *Float(1.5) != 1.5 {
		t.Error("finite value lost")
	}
	zero := 0.0
	if Float(1/zero) != nil {
		t.Error("infinity should be nil")
	}
}
