package engine

import (
	"testing"
	"time"

	"carsales/internal/models"
)

type opt func(*models.SalesRecord)

func region(r string) opt { return func(s *models.SalesRecord) { s.DealerRegion = r } }
func brand(b string) opt  { return func(s *models.SalesRecord) { s.Company = b } }
func model(m string) opt  { return func(s *models.SalesRecord) { s.Model = m } }
func color(c string) opt  { return func(s *models.SalesRecord) { s.Color = c } }
func dealer(d string) opt { return func(s *models.SalesRecord) { s.DealerName = d } }
func gender(g string) opt { return func(s *models.SalesRecord) { s.Gender = g } }
func body(b string) opt   { return func(s *models.SalesRecord) { s.BodyStyle = b } }
func gearbox(t string) opt {
	return func(s *models.SalesRecord) { s.Transmission = t }
}
func customer(c string) opt { return func(s *models.SalesRecord) { s.CustomerName = c } }
func noPrice() opt          { return func(s *models.SalesRecord) { s.Price = models.NullFloat{} } }
func income(v float64) opt {
	return func(s *models.SalesRecord) { s.AnnualIncome = models.NullFloat{Float64: v, Valid: true} }
}

// sale builds a record dated with the day/month/year layout.
func sale(t testing.TB, date string, price float64, opts ...opt) models.SalesRecord {
	t.Helper()
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		t.Fatal(err)
	}
	r := models.SalesRecord{
		Date:         d,
		Calendar:     models.NewCalendarKey(d),
		CustomerName: "Customer",
		Gender:       "Male",
		DealerName:   "Progressive Shippers",
		DealerRegion: "Austin",
		Company:      "Ford",
		Model:        "Focus",
		Color:        "Black",
		BodyStyle:    "SUV",
		Transmission: "Auto",
		Price:        models.NullFloat{Float64: price, Valid: true},
	}
	for _, o := range opts {
		o(&r)
	}
	return r
}
