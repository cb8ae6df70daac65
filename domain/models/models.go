package models

// ProductSales is one entry of the top-products ranking.
type ProductSales struct {
	Product string
	Revenue float64
}

// MonthlySales is one "YYYY-MM" bucket of the monthly trend.
type MonthlySales struct {
	YearMonth string
	Revenue   float64
}

// SummaryStats are the headline numbers of the report. AvgOrderValue is NaN
// when the table has no rows. UniqueProducts is nil when no product column is
// configured or present, which is different from a present column with zero
// distinct values.
type SummaryStats struct {
	TotalRows      int
	TotalRevenue   float64
	AvgOrderValue  float64
	UniqueProducts *int
}
