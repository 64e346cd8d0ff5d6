package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrUnknownDimension = errors.New("unknown dimension")
	ErrUnknownField     = errors.New("unknown numeric field")
)

// Dimension is a categorical attribute records can be grouped by.
type Dimension string

const (
	DimYear         Dimension = "year"
	DimQuarter      Dimension = "quarter"
	DimMonth        Dimension = "month"
	DimRegion       Dimension = "region"
	DimDealer       Dimension = "dealer"
	DimBrand        Dimension = "brand"
	DimModel        Dimension = "model"
	DimColor        Dimension = "color"
	DimBodyStyle    Dimension = "body_style"
	DimGender       Dimension = "gender"
	DimTransmission Dimension = "transmission"
	DimCustomer     Dimension = "customer"
)

var dimensionAliases = map[string]Dimension{
	"company":       DimBrand,
	"dealer_name":   DimDealer,
	"dealer_region": DimRegion,
	"bodystyle":     DimBodyStyle,
	"body-style":    DimBodyStyle,
	"customer_name": DimCustomer,
}

func ParseDimension(s string) (Dimension, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	switch d := Dimension(key); d {
	case DimYear, DimQuarter, DimMonth, DimRegion, DimDealer, DimBrand, DimModel,
		DimColor, DimBodyStyle, DimGender, DimTransmission, DimCustomer:
		return d, nil
	}
	if d, ok := dimensionAliases[key]; ok {
		return d, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDimension, s)
}

// Value extracts the dimension's value from r.
func (d Dimension) Value(r *SalesRecord) string {
	switch d {
	case DimYear:
		return strconv.Itoa(r.Calendar.Year)
	case DimQuarter:
		return strconv.Itoa(r.Calendar.Quarter)
	case DimMonth:
		return strconv.Itoa(r.Calendar.Month)
	case DimRegion:
		return r.DealerRegion
	case DimDealer:
		return r.DealerName
	case DimBrand:
		return r.Company
	case DimModel:
		return r.Model
	case DimColor:
		return r.Color
	case DimBodyStyle:
		return r.BodyStyle
	case DimGender:
		return r.Gender
	case DimTransmission:
		return r.Transmission
	case DimCustomer:
		return r.CustomerName
	}
	return ""
}

// Field is a numeric attribute of a record.
type Field string

const (
	FieldPrice  Field = "price"
	FieldIncome Field = "income"
)

func ParseField(s string) (Field, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "price", "price ($)":
		return FieldPrice, nil
	case "income", "annual_income", "annual income":
		return FieldIncome, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, s)
}

// Value returns the field's value and whether it is present.
func (f Field) Value(r *SalesRecord) (float64, bool) {
	switch f {
	case FieldPrice:
		return r.Price.Float64, r.Price.Valid
	case FieldIncome:
		return r.AnnualIncome.Float64, r.AnnualIncome.Valid
	}
	return 0, false
}
