package main

import (
	"fmt"
	"math"
	"sort"

	"salesinsights/config"
	"salesinsights/domain/models"
)

// TopProducts groups rows by product, sums revenue per group and returns the
// n highest groups in descending order. Groups with equal revenue keep their
// first-seen row order so the result is deterministic.
func TopProducts(cfg *config.Config, t Table, n int) ([]models.ProductSales, error) {
	if !t.HasColumn(cfg.ProductColumn) {
		return nil, &MissingColumnError{Column: cfg.ProductColumn}
	}
	if !t.HasColumn(cfg.SalesColumn) {
		return nil, &MissingColumnError{Column: cfg.SalesColumn}
	}

	totals := map[string]float64{}
	var order []string
	for _, row := range t.Rows {
		product := fmt.Sprintf("%v", row[cfg.ProductColumn])
		revenue, _ := toFloat(row[cfg.SalesColumn])
		if _, seen := totals[product]; !seen {
			order = append(order, product)
		}
		totals[product] += revenue
	}

	result := make([]models.ProductSales, 0, len(order))
	for _, product := range order {
		result = append(result, models.ProductSales{Product: product, Revenue: totals[product]})
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Revenue > result[j].Revenue
	})
	if n >= 0 && n < len(result) {
		result = result[:n]
	}
	return result, nil
}

// MonthlyTrends groups rows by the YearMonth bucket and sums revenue per
// bucket, sorted ascending. Lexicographic order on "YYYY-MM" is chronological.
func MonthlyTrends(cfg *config.Config, t Table) ([]models.MonthlySales, error) {
	if !t.HasColumn(YearMonthColumn) {
		return nil, &MissingColumnError{Column: YearMonthColumn}
	}
	if !t.HasColumn(cfg.SalesColumn) {
		return nil, &MissingColumnError{Column: cfg.SalesColumn}
	}

	totals := map[string]float64{}
	for _, row := range t.Rows {
		bucket, ok := row[YearMonthColumn].(string)
		if !ok {
			continue
		}
		revenue, _ := toFloat(row[cfg.SalesColumn])
		totals[bucket] += revenue
	}

	buckets := make([]string, 0, len(totals))
	for bucket := range totals {
		buckets = append(buckets, bucket)
	}
	sort.Strings(buckets)

	result := make([]models.MonthlySales, 0, len(buckets))
	for _, bucket := range buckets {
		result = append(result, models.MonthlySales{YearMonth: bucket, Revenue: totals[bucket]})
	}
	return result, nil
}

// BasicStats computes the headline numbers. The average over zero rows is NaN,
// not a crash and not a silent zero; the unique product count is nil when the
// product column is absent.
func BasicStats(cfg *config.Config, t Table) (models.SummaryStats, error) {
	if !t.HasColumn(cfg.SalesColumn) {
		return models.SummaryStats{}, &MissingColumnError{Column: cfg.SalesColumn}
	}

	stats := models.SummaryStats{TotalRows: t.Len()}
	for _, row := range t.Rows {
		revenue, _ := toFloat(row[cfg.SalesColumn])
		stats.TotalRevenue += revenue
	}
	if stats.TotalRows == 0 {
		stats.AvgOrderValue = math.NaN()
	} else {
		stats.AvgOrderValue = stats.TotalRevenue / float64(stats.TotalRows)
	}

	if t.HasColumn(cfg.ProductColumn) {
		distinct := map[string]struct{}{}
		for _, row := range t.Rows {
			distinct[fmt.Sprintf("%v", row[cfg.ProductColumn])] = struct{}{}
		}
		n := len(distinct)
		stats.UniqueProducts = &n
	}
	return stats, nil
}
